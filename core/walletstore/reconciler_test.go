package walletstore_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vechainkit/walletkit/core/bus"
	"github.com/vechainkit/walletkit/core/kvstore"
	"github.com/vechainkit/walletkit/core/wallet"
	"github.com/vechainkit/walletkit/core/walletstore"
)

const (
	addrA         = "0xf39fd6e51aad88f6f4ce6ab8827279cfffb92266"
	addrAChecksum = "0xf39Fd6e51aad88F6F4ce6aB8827279cffFb92266"
	addrB         = "0x70997970c51812dc3a010c7d01b50e0d17dc79c8"
	addrBChecksum = "0x70997970C51812dc3A010C7d01b50e0d17dc79C8"
)

type testClock struct {
	mu  sync.Mutex
	now time.Time
}

func newTestClock() *testClock {
	return &testClock{now: time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)}
}

func (c *testClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *testClock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.Add(d)
}

func newReconciler(t *testing.T, opts ...walletstore.Option) *walletstore.Reconciler {
	t.Helper()
	r, err := walletstore.New(kvstore.NewMemoryStore(), wallet.NetworkMain, opts...)
	require.NoError(t, err)
	return r
}

func testConnection(address string) wallet.Connection {
	return wallet.Connection{
		Address:   address,
		Source:    wallet.SourcePrivy,
		Method:    "email",
		Timestamp: time.Now(),
	}
}

func TestNew(t *testing.T) {
	t.Parallel()

	t.Run("requires a store", func(t *testing.T) {
		t.Parallel()
		_, err := walletstore.New(nil, wallet.NetworkMain)
		assert.ErrorIs(t, err, walletstore.ErrNoStore)
	})

	t.Run("rejects unknown networks", func(t *testing.T) {
		t.Parallel()
		_, err := walletstore.New(kvstore.NewMemoryStore(), wallet.Network("devnet"))
		assert.Error(t, err)
	})
}

func TestSaveWallet(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	t.Run("stores the checksum form", func(t *testing.T) {
		t.Parallel()

		r := newReconciler(t)
		require.NoError(t, r.SaveWallet(ctx, addrA))

		wallets, err := r.Wallets(ctx)
		require.NoError(t, err)
		require.Len(t, wallets, 1)
		assert.Equal(t, addrAChecksum, wallets[0].Address)
		assert.False(t, wallets[0].IsActive, "save never activates")
	})

	t.Run("rejects malformed addresses", func(t *testing.T) {
		t.Parallel()

		r := newReconciler(t)
		assert.ErrorIs(t, r.SaveWallet(ctx, "0xnope"), wallet.ErrInvalidAddress)
	})

	t.Run("repeat saves keep the first ConnectedAt", func(t *testing.T) {
		t.Parallel()

		clock := newTestClock()
		first := clock.Now()
		r := newReconciler(t, walletstore.WithClock(clock.Now))

		require.NoError(t, r.SaveWallet(ctx, addrA))
		clock.Advance(time.Hour)
		// Case variants of the same address are the same wallet.
		require.NoError(t, r.SaveWallet(ctx, addrAChecksum))

		wallets, err := r.Wallets(ctx)
		require.NoError(t, err)
		require.Len(t, wallets, 1)
		assert.True(t, wallets[0].ConnectedAt.Equal(first))
	})
}

func TestSetActiveWallet(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	t.Run("exactly one wallet is active after switching", func(t *testing.T) {
		t.Parallel()

		r := newReconciler(t)
		require.NoError(t, r.SaveWallet(ctx, addrA))
		require.NoError(t, r.SaveWallet(ctx, addrB))

		require.NoError(t, r.SetActiveWallet(ctx, addrA))
		require.NoError(t, r.SetActiveWallet(ctx, addrB))

		wallets, err := r.Wallets(ctx)
		require.NoError(t, err)
		activeCount := 0
		for _, w := range wallets {
			if w.IsActive {
				activeCount++
				assert.Equal(t, addrBChecksum, w.Address)
			}
		}
		assert.Equal(t, 1, activeCount)

		active, err := r.ActiveWallet(ctx)
		require.NoError(t, err)
		require.NotNil(t, active)
		assert.Equal(t, addrBChecksum, active.Address)
	})

	t.Run("unknown wallet cannot be activated", func(t *testing.T) {
		t.Parallel()

		r := newReconciler(t)
		require.NoError(t, r.SaveWallet(ctx, addrA))
		assert.ErrorIs(t, r.SetActiveWallet(ctx, addrB), walletstore.ErrWalletNotFound)
	})

	t.Run("idempotent reactivation", func(t *testing.T) {
		t.Parallel()

		r := newReconciler(t)
		require.NoError(t, r.SaveWallet(ctx, addrA))
		require.NoError(t, r.SetActiveWallet(ctx, addrA))
		require.NoError(t, r.SetActiveWallet(ctx, addrA))

		active, err := r.ActiveWallet(ctx)
		require.NoError(t, err)
		require.NotNil(t, active)
		assert.Equal(t, addrAChecksum, active.Address)
	})
}

func TestRemoveWallet(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	t.Run("removing the active wallet clears the pointer without promotion", func(t *testing.T) {
		t.Parallel()

		r := newReconciler(t)
		require.NoError(t, r.SaveWallet(ctx, addrA))
		require.NoError(t, r.SaveWallet(ctx, addrB))
		require.NoError(t, r.SetActiveWallet(ctx, addrA))

		require.NoError(t, r.RemoveWallet(ctx, addrA))

		active, err := r.ActiveWallet(ctx)
		require.NoError(t, err)
		assert.Nil(t, active, "no auto-promotion of the remaining wallet")

		wallets, err := r.Wallets(ctx)
		require.NoError(t, err)
		require.Len(t, wallets, 1)
		assert.Equal(t, addrBChecksum, wallets[0].Address)
	})

	t.Run("removing an absent wallet is a no-op", func(t *testing.T) {
		t.Parallel()

		r := newReconciler(t)
		require.NoError(t, r.SaveWallet(ctx, addrA))
		require.NoError(t, r.RemoveWallet(ctx, addrB))

		wallets, err := r.Wallets(ctx)
		require.NoError(t, err)
		assert.Len(t, wallets, 1)
	})

	t.Run("publishes removal and pointer-clear events", func(t *testing.T) {
		t.Parallel()

		events := bus.NewSyncBus()
		var mu sync.Mutex
		var seen []bus.Event
		events.Subscribe("", func(_ context.Context, e bus.Event) error {
			mu.Lock()
			defer mu.Unlock()
			seen = append(seen, e)
			return nil
		})

		r, err := walletstore.New(kvstore.NewMemoryStore(), wallet.NetworkMain, walletstore.WithBus(events))
		require.NoError(t, err)

		require.NoError(t, r.SaveWallet(ctx, addrA))
		require.NoError(t, r.SetActiveWallet(ctx, addrA))
		require.NoError(t, r.RemoveWallet(ctx, addrA))

		mu.Lock()
		defer mu.Unlock()
		require.Len(t, seen, 3)
		var names []string
		for _, e := range seen {
			names = append(names, e.Name)
		}
		assert.Equal(t, []string{"ActiveWalletChanged", "ActiveWalletChanged", "WalletRemoved"}, names)

		cleared, ok := seen[1].Payload.(walletstore.ActiveWalletChanged)
		require.True(t, ok)
		assert.Empty(t, cleared.Address, "pointer clear carries no address")
	})
}

func TestInitializeCurrentWallet(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	t.Run("bootstraps an empty namespace", func(t *testing.T) {
		t.Parallel()

		r := newReconciler(t)
		require.NoError(t, r.InitializeCurrentWallet(ctx, addrA))

		active, err := r.ActiveWallet(ctx)
		require.NoError(t, err)
		require.NotNil(t, active)
		assert.Equal(t, addrAChecksum, active.Address)
	})

	t.Run("never clobbers an existing list", func(t *testing.T) {
		t.Parallel()

		r := newReconciler(t)
		require.NoError(t, r.SaveWallet(ctx, addrA))
		require.NoError(t, r.SetActiveWallet(ctx, addrA))

		require.NoError(t, r.InitializeCurrentWallet(ctx, addrB))

		active, err := r.ActiveWallet(ctx)
		require.NoError(t, err)
		require.NotNil(t, active)
		assert.Equal(t, addrAChecksum, active.Address, "user's choice survives")

		wallets, err := r.Wallets(ctx)
		require.NoError(t, err)
		assert.Len(t, wallets, 1)
	})
}

func TestSyncConnection(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	t.Run("saves and activates the first connection", func(t *testing.T) {
		t.Parallel()

		r := newReconciler(t)
		require.NoError(t, r.SyncConnection(ctx, testConnection(addrA)))

		active, err := r.ActiveWallet(ctx)
		require.NoError(t, err)
		require.NotNil(t, active)
		assert.Equal(t, addrAChecksum, active.Address)
	})

	t.Run("does not steal activation from an existing wallet", func(t *testing.T) {
		t.Parallel()

		r := newReconciler(t)
		require.NoError(t, r.SyncConnection(ctx, testConnection(addrA)))
		require.NoError(t, r.SyncConnection(ctx, testConnection(addrB)))

		active, err := r.ActiveWallet(ctx)
		require.NoError(t, err)
		require.NotNil(t, active)
		assert.Equal(t, addrAChecksum, active.Address)

		wallets, err := r.Wallets(ctx)
		require.NoError(t, err)
		assert.Len(t, wallets, 2)
	})

	t.Run("rejects invalid connections", func(t *testing.T) {
		t.Parallel()

		r := newReconciler(t)
		assert.Error(t, r.SyncConnection(ctx, wallet.Connection{}))
	})

	t.Run("suppresses recently removed wallets", func(t *testing.T) {
		t.Parallel()

		clock := newTestClock()
		r := newReconciler(t, walletstore.WithClock(clock.Now))

		require.NoError(t, r.SyncConnection(ctx, testConnection(addrA)))
		require.NoError(t, r.RemoveWallet(ctx, addrA))

		// Within the window the provider still reports the connection;
		// the removal must win.
		require.NoError(t, r.SyncConnection(ctx, testConnection(addrA)))
		wallets, err := r.Wallets(ctx)
		require.NoError(t, err)
		assert.Empty(t, wallets)

		// After the window the same connection is a genuine reconnect.
		clock.Advance(walletstore.DefaultRemovalWindow + time.Second)
		require.NoError(t, r.SyncConnection(ctx, testConnection(addrA)))
		wallets, err = r.Wallets(ctx)
		require.NoError(t, err)
		assert.Len(t, wallets, 1)
	})
}

func TestNetworkNamespacing(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	store := kvstore.NewMemoryStore()
	main, err := walletstore.New(store, wallet.NetworkMain)
	require.NoError(t, err)
	test, err := walletstore.New(store, wallet.NetworkTest)
	require.NoError(t, err)

	require.NoError(t, main.SyncConnection(ctx, testConnection(addrA)))

	wallets, err := test.Wallets(ctx)
	require.NoError(t, err)
	assert.Empty(t, wallets, "networks share a store but never a namespace")

	require.NoError(t, test.SyncConnection(ctx, testConnection(addrB)))
	mainActive, err := main.ActiveWallet(ctx)
	require.NoError(t, err)
	require.NotNil(t, mainActive)
	assert.Equal(t, addrAChecksum, mainActive.Address)
}
