package kvstore_test

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vechainkit/walletkit/core/kvstore"
)

// runStoreContract exercises the behavior every Store implementation must
// share: miss semantics, round trips, deletion, prefix listing.
func runStoreContract(t *testing.T, store kvstore.Store) {
	t.Helper()
	ctx := context.Background()

	t.Run("missing key returns nil without error", func(t *testing.T) {
		val, err := store.Get(ctx, "absent")
		require.NoError(t, err)
		assert.Nil(t, val)
	})

	t.Run("put then get round trips", func(t *testing.T) {
		require.NoError(t, store.Put(ctx, "wallets:main", []byte(`["0x11"]`)))

		val, err := store.Get(ctx, "wallets:main")
		require.NoError(t, err)
		assert.Equal(t, []byte(`["0x11"]`), val)
	})

	t.Run("put overwrites existing value", func(t *testing.T) {
		require.NoError(t, store.Put(ctx, "wallets:main", []byte(`["0x22"]`)))

		val, err := store.Get(ctx, "wallets:main")
		require.NoError(t, err)
		assert.Equal(t, []byte(`["0x22"]`), val)
	})

	t.Run("del removes the key and tolerates repeats", func(t *testing.T) {
		require.NoError(t, store.Del(ctx, "wallets:main"))
		require.NoError(t, store.Del(ctx, "wallets:main"))

		val, err := store.Get(ctx, "wallets:main")
		require.NoError(t, err)
		assert.Nil(t, val)
	})

	t.Run("list keys filters by prefix", func(t *testing.T) {
		require.NoError(t, store.Put(ctx, "ns:test:wallets", []byte("a")))
		require.NoError(t, store.Put(ctx, "ns:test:active", []byte("b")))
		require.NoError(t, store.Put(ctx, "ns:main:wallets", []byte("c")))

		keys, err := store.ListKeys(ctx, "ns:test:")
		require.NoError(t, err)
		assert.ElementsMatch(t, []string{"ns:test:wallets", "ns:test:active"}, keys)
	})
}

func TestMemoryStore(t *testing.T) {
	t.Parallel()
	runStoreContract(t, kvstore.NewMemoryStore())
}

func TestRedisStore(t *testing.T) {
	t.Parallel()

	srv := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: srv.Addr()})
	t.Cleanup(func() { _ = client.Close() })

	runStoreContract(t, kvstore.NewRedisStore(client, "testkv"))
}

func TestBoltStore(t *testing.T) {
	t.Parallel()

	store, err := kvstore.OpenBoltStore(filepath.Join(t.TempDir(), "walletkit.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })

	runStoreContract(t, store)
}

func TestNoopStore(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	store := kvstore.NewNoopStore()

	require.NoError(t, store.Put(ctx, "k", []byte("v")))

	val, err := store.Get(ctx, "k")
	require.NoError(t, err)
	assert.Nil(t, val, "writes must vanish in degraded mode")

	keys, err := store.ListKeys(ctx, "")
	require.NoError(t, err)
	assert.Empty(t, keys)

	require.NoError(t, store.Del(ctx, "k"))
}
