package walletstore

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"sync"
	"time"

	"github.com/vechainkit/walletkit/core/bus"
	"github.com/vechainkit/walletkit/core/kvstore"
	"github.com/vechainkit/walletkit/core/wallet"
	"github.com/vechainkit/walletkit/pkg/logger"
)

// DefaultRemovalWindow is how long after RemoveWallet a provider-reported
// connection for the same address is suppressed instead of re-saved.
const DefaultRemovalWindow = 5 * time.Second

// Reconciler owns the durable wallet list for one network namespace.
// All mutations go through its methods; the underlying store is never
// written by other components.
type Reconciler struct {
	store         kvstore.Store
	network       wallet.Network
	publisher     *bus.Publisher
	log           *slog.Logger
	now           func() time.Time
	removalWindow time.Duration

	// mu serializes read-modify-write cycles on the stored list and
	// guards the suppression set.
	mu      sync.Mutex
	removed map[string]time.Time
}

// Option configures a Reconciler.
type Option func(*Reconciler)

// WithLogger configures structured logging.
func WithLogger(log *slog.Logger) Option {
	return func(r *Reconciler) {
		if log != nil {
			r.log = log
		}
	}
}

// WithBus publishes WalletRemoved and ActiveWalletChanged events on the
// given transport.
func WithBus(transport bus.Transport) Option {
	return func(r *Reconciler) {
		if transport != nil {
			r.publisher = bus.NewPublisher(transport)
		}
	}
}

// WithClock injects the time source used for ConnectedAt stamps and the
// removal suppression window.
func WithClock(now func() time.Time) Option {
	return func(r *Reconciler) {
		if now != nil {
			r.now = now
		}
	}
}

// WithRemovalWindow overrides the suppression window (default 5s).
func WithRemovalWindow(window time.Duration) Option {
	return func(r *Reconciler) {
		if window > 0 {
			r.removalWindow = window
		}
	}
}

// New creates a Reconciler for the given network namespace.
func New(store kvstore.Store, network wallet.Network, opts ...Option) (*Reconciler, error) {
	if store == nil {
		return nil, ErrNoStore
	}
	if !network.Valid() {
		return nil, fmt.Errorf("unknown network %q", network)
	}

	r := &Reconciler{
		store:         store,
		network:       network,
		log:           slog.New(slog.NewTextHandler(io.Discard, nil)),
		now:           time.Now,
		removalWindow: DefaultRemovalWindow,
		removed:       make(map[string]time.Time),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r, nil
}

func (r *Reconciler) walletsKey() string {
	return fmt.Sprintf("walletkit:%s:wallets", r.network)
}

func (r *Reconciler) activeKey() string {
	return fmt.Sprintf("walletkit:%s:active", r.network)
}

// Wallets returns all stored wallets for the namespace.
func (r *Reconciler) Wallets(ctx context.Context) ([]wallet.StoredWallet, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.loadWallets(ctx)
}

// ActiveWallet returns the active wallet record, or nil when none is active.
func (r *Reconciler) ActiveWallet(ctx context.Context) (*wallet.StoredWallet, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	address, err := r.activePointer(ctx)
	if err != nil || address == "" {
		return nil, err
	}

	wallets, err := r.loadWallets(ctx)
	if err != nil {
		return nil, err
	}
	for _, w := range wallets {
		if wallet.SameAddress(w.Address, address) {
			return &w, nil
		}
	}
	return nil, nil
}

// SaveWallet upserts a wallet record. The first-seen ConnectedAt survives
// repeat saves, and active flags are never touched: activation is always an
// explicit SetActiveWallet call.
func (r *Reconciler) SaveWallet(ctx context.Context, address string) error {
	addr, err := wallet.NormalizeAddress(address)
	if err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	return r.saveLocked(ctx, addr)
}

func (r *Reconciler) saveLocked(ctx context.Context, addr string) error {
	wallets, err := r.loadWallets(ctx)
	if err != nil {
		return err
	}

	for _, w := range wallets {
		if wallet.SameAddress(w.Address, addr) {
			return nil // already stored, keep ConnectedAt
		}
	}

	wallets = append(wallets, wallet.StoredWallet{
		Address:     addr,
		ConnectedAt: r.now(),
	})
	return r.storeWallets(ctx, wallets)
}

// SetActiveWallet makes exactly one record active, unconditionally
// overwriting any previous active flag, and writes the fast-path active
// pointer. Idempotent: repeating the call changes nothing.
func (r *Reconciler) SetActiveWallet(ctx context.Context, address string) error {
	addr, err := wallet.NormalizeAddress(address)
	if err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	return r.activateLocked(ctx, addr)
}

func (r *Reconciler) activateLocked(ctx context.Context, addr string) error {
	wallets, err := r.loadWallets(ctx)
	if err != nil {
		return err
	}

	found := false
	for i := range wallets {
		match := wallet.SameAddress(wallets[i].Address, addr)
		wallets[i].IsActive = match
		found = found || match
	}
	if !found {
		return fmt.Errorf("%w: %s", ErrWalletNotFound, addr)
	}

	if err := r.storeWallets(ctx, wallets); err != nil {
		return err
	}
	if err := r.store.Put(ctx, r.activeKey(), []byte(addr)); err != nil {
		return fmt.Errorf("walletstore: write active pointer: %w", err)
	}

	r.publish(ctx, ActiveWalletChanged{Address: addr, Network: r.network})
	r.log.Debug("active wallet changed", logger.Address(addr), logger.Network(string(r.network)))
	return nil
}

// RemoveWallet deletes the record. If it was active the pointer is cleared
// without promoting another wallet. The address enters the suppression set
// so a live provider connection observed in the same tick is not re-saved
// as if newly connected.
func (r *Reconciler) RemoveWallet(ctx context.Context, address string) error {
	addr, err := wallet.NormalizeAddress(address)
	if err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	wallets, err := r.loadWallets(ctx)
	if err != nil {
		return err
	}

	kept := wallets[:0]
	removedAny := false
	wasActive := false
	for _, w := range wallets {
		if wallet.SameAddress(w.Address, addr) {
			removedAny = true
			wasActive = wasActive || w.IsActive
			continue
		}
		kept = append(kept, w)
	}
	if !removedAny {
		return nil
	}

	if err := r.storeWallets(ctx, kept); err != nil {
		return err
	}

	if wasActive {
		if err := r.store.Del(ctx, r.activeKey()); err != nil {
			return fmt.Errorf("walletstore: clear active pointer: %w", err)
		}
		r.publish(ctx, ActiveWalletChanged{Network: r.network})
	}

	r.removed[addr] = r.now()
	r.publish(ctx, WalletRemoved{Address: addr, Network: r.network})
	r.log.Debug("wallet removed", logger.Address(addr), logger.Network(string(r.network)))
	return nil
}

// InitializeCurrentWallet is the bootstrap path for the first-ever
// connection: when the namespace has no wallets yet it saves and activates
// the address. Any other time it is a no-op, so it never clobbers a user's
// wallet-switch choice.
func (r *Reconciler) InitializeCurrentWallet(ctx context.Context, address string) error {
	addr, err := wallet.NormalizeAddress(address)
	if err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	wallets, err := r.loadWallets(ctx)
	if err != nil {
		return err
	}
	if len(wallets) > 0 {
		return nil
	}

	if err := r.saveLocked(ctx, addr); err != nil {
		return err
	}
	return r.activateLocked(ctx, addr)
}

// SyncConnection reconciles a live provider connection with the stored
// list: new addresses are saved, and activated when nothing else is active.
// Connections for recently removed addresses are suppressed entirely.
func (r *Reconciler) SyncConnection(ctx context.Context, conn wallet.Connection) error {
	if err := conn.Validate(); err != nil {
		return err
	}
	addr, err := wallet.NormalizeAddress(conn.Address)
	if err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if r.recentlyRemovedLocked(addr) {
		r.log.Debug("suppressed re-save of removed wallet", logger.Address(addr))
		return nil
	}

	if err := r.saveLocked(ctx, addr); err != nil {
		return err
	}

	active, err := r.activePointer(ctx)
	if err != nil {
		return err
	}
	if active == "" {
		return r.activateLocked(ctx, addr)
	}
	return nil
}

func (r *Reconciler) recentlyRemovedLocked(addr string) bool {
	removedAt, ok := r.removed[addr]
	if !ok {
		return false
	}
	if r.now().Sub(removedAt) > r.removalWindow {
		delete(r.removed, addr)
		return false
	}
	return true
}

func (r *Reconciler) activePointer(ctx context.Context) (string, error) {
	val, err := r.store.Get(ctx, r.activeKey())
	if err != nil {
		return "", fmt.Errorf("walletstore: read active pointer: %w", err)
	}
	return string(val), nil
}

func (r *Reconciler) loadWallets(ctx context.Context) ([]wallet.StoredWallet, error) {
	data, err := r.store.Get(ctx, r.walletsKey())
	if err != nil {
		return nil, fmt.Errorf("walletstore: read wallets: %w", err)
	}
	if len(data) == 0 {
		return nil, nil
	}

	var wallets []wallet.StoredWallet
	if err := json.Unmarshal(data, &wallets); err != nil {
		return nil, fmt.Errorf("walletstore: decode wallets: %w", err)
	}
	return wallets, nil
}

func (r *Reconciler) storeWallets(ctx context.Context, wallets []wallet.StoredWallet) error {
	data, err := json.Marshal(wallets)
	if err != nil {
		return fmt.Errorf("walletstore: encode wallets: %w", err)
	}
	if err := r.store.Put(ctx, r.walletsKey(), data); err != nil {
		return fmt.Errorf("walletstore: write wallets: %w", err)
	}
	return nil
}

func (r *Reconciler) publish(ctx context.Context, payload any) {
	if r.publisher == nil {
		return
	}
	if err := r.publisher.Publish(ctx, payload); err != nil {
		r.log.Warn("failed to publish wallet event", logger.Error(err))
	}
}
