package auth

import (
	"context"
	"log/slog"
	"time"

	"github.com/vechainkit/walletkit/core/bus"
	"github.com/vechainkit/walletkit/core/wallet"
)

// Config holds the host-application settings the manager checks method
// availability against. Fields carry env tags so hosts can populate it via
// core/config.Load.
type Config struct {
	// PrivyAppID enables the hosted email and OAuth methods.
	PrivyAppID string `env:"WALLETKIT_PRIVY_APP_ID"`
	// CrossAppID names the trusted application for ecosystem login.
	CrossAppID string `env:"WALLETKIT_CROSS_APP_ID"`
	// DappKitNodeURL enables the dappkit method once implemented.
	DappKitNodeURL string `env:"WALLETKIT_DAPPKIT_NODE_URL"`
	// Network selects the namespace for persisted wallet state.
	Network wallet.Network `env:"WALLETKIT_NETWORK" envDefault:"main"`
	// SessionTTL is the idle timeout after which sessions are swept.
	SessionTTL time.Duration `env:"WALLETKIT_SESSION_TTL" envDefault:"10m"`
	// SweepInterval is how often the background expiry sweep runs.
	SweepInterval time.Duration `env:"WALLETKIT_SWEEP_INTERVAL" envDefault:"5m"`
}

const (
	// DefaultSessionTTL is the default session idle timeout.
	DefaultSessionTTL = 10 * time.Minute
	// DefaultSweepInterval is the default expiry sweep cadence.
	DefaultSweepInterval = 5 * time.Minute
)

// Registrar receives successful connections for durable registration.
// *walletstore.Reconciler satisfies it.
type Registrar interface {
	SyncConnection(ctx context.Context, conn wallet.Connection) error
}

// Option configures a Manager.
type Option func(*Manager)

// WithConfig sets the host-application configuration.
func WithConfig(cfg Config) Option {
	return func(m *Manager) {
		m.cfg = cfg
		if cfg.SessionTTL > 0 {
			m.ttl = cfg.SessionTTL
		}
		if cfg.SweepInterval > 0 {
			m.sweepInterval = cfg.SweepInterval
		}
	}
}

// WithHostedClient injects the hosted auth provider client, enabling the
// email and OAuth methods.
func WithHostedClient(client HostedClient) Option {
	return func(m *Manager) {
		m.hosted = client
	}
}

// WithBus sets the transport lifecycle events are published on.
func WithBus(transport bus.Transport) Option {
	return func(m *Manager) {
		if transport != nil {
			m.publisher = bus.NewPublisher(transport)
		}
	}
}

// WithLogger configures structured logging.
func WithLogger(log *slog.Logger) Option {
	return func(m *Manager) {
		if log != nil {
			m.log = log
		}
	}
}

// WithSessionTTL overrides the session idle timeout (default 10m).
func WithSessionTTL(ttl time.Duration) Option {
	return func(m *Manager) {
		if ttl > 0 {
			m.ttl = ttl
		}
	}
}

// WithSweepInterval overrides the expiry sweep cadence (default 5m).
// Zero disables the background sweep; ClearExpiredSessions stays available.
func WithSweepInterval(interval time.Duration) Option {
	return func(m *Manager) {
		m.sweepInterval = interval
	}
}

// WithClock injects the time source, letting tests drive expiry without
// real timers.
func WithClock(now func() time.Time) Option {
	return func(m *Manager) {
		if now != nil {
			m.now = now
		}
	}
}

// WithRegistrar wires successful connections into the multi-wallet
// reconciler (or any other durable registry).
func WithRegistrar(r Registrar) Option {
	return func(m *Manager) {
		m.registrar = r
	}
}
