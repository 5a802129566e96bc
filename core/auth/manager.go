package auth

import (
	"context"
	"io"
	"log/slog"
	"sync"
	"time"

	"github.com/vechainkit/walletkit/core/bus"
	"github.com/vechainkit/walletkit/core/wallet"
	"github.com/vechainkit/walletkit/pkg/logger"
)

// Manager is the single authority over authentication sessions. It owns the
// session store, dispatches to the adapter matching the requested method,
// advances each session through its lifecycle, publishes typed events, and
// normalizes successful results into wallet connections.
//
// All state is keyed by session id; multiple sessions may be in flight
// concurrently and never interfere. Public authenticate operations catch
// every failure at the boundary, classify it, and return a failed Result —
// they do not return raw provider errors, so callers need no try/catch
// discipline around them.
type Manager struct {
	store     Store
	cfg       Config
	hosted    HostedClient
	crossApp  *crossAppAdapter
	adapters  map[Method]Adapter
	registrar Registrar
	publisher *bus.Publisher
	log       *slog.Logger

	ttl           time.Duration
	sweepInterval time.Duration
	now           func() time.Time

	done      chan struct{}
	closeOnce sync.Once
	wg        sync.WaitGroup
}

// Result is the outcome of an authenticate operation.
type Result struct {
	Success bool `json:"success"`
	// SessionID identifies the session this result belongs to.
	SessionID string `json:"session_id"`
	// Connection is set when Success is true.
	Connection *wallet.Connection `json:"connection,omitempty"`
	// RequiresVerification is set when the flow awaits a second step.
	RequiresVerification bool              `json:"requires_verification,omitempty"`
	VerificationData     map[string]string `json:"verification_data,omitempty"`
	// RedirectURL is set when the UI must drive a redirect or popup.
	RedirectURL string `json:"redirect_url,omitempty"`
	// Error is set when Success is false.
	Error *Error `json:"error,omitempty"`
}

// New creates a Manager over the given session store. The background expiry
// sweep starts immediately unless the sweep interval is zero; Close stops it.
func New(store Store, opts ...Option) *Manager {
	m := &Manager{
		store:         store,
		log:           slog.New(slog.NewTextHandler(io.Discard, nil)),
		ttl:           DefaultSessionTTL,
		sweepInterval: DefaultSweepInterval,
		now:           time.Now,
		done:          make(chan struct{}),
	}

	for _, opt := range opts {
		opt(m)
	}

	m.crossApp = &crossAppAdapter{appID: m.cfg.CrossAppID}
	m.adapters = map[Method]Adapter{
		MethodEmail:         &emailAdapter{client: m.hosted},
		MethodGoogle:        &oauthAdapter{client: m.hosted},
		MethodPasskey:       passkeyAdapter{},
		MethodVeChain:       m.crossApp,
		MethodEcosystem:     m.crossApp,
		MethodDappKit:       stubAdapter{method: MethodDappKit, configured: m.cfg.DappKitNodeURL != ""},
		MethodWalletConnect: stubAdapter{method: MethodWalletConnect},
	}

	if m.sweepInterval > 0 {
		m.wg.Add(1)
		go m.sweepLoop()
	}

	return m
}

// Close stops the background sweep. Sessions already stored stay readable.
func (m *Manager) Close() {
	m.closeOnce.Do(func() {
		close(m.done)
		m.wg.Wait()
	})
}

func (m *Manager) sweepLoop() {
	defer m.wg.Done()

	ticker := time.NewTicker(m.sweepInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			removed := m.ClearExpiredSessions(context.Background())
			if removed > 0 {
				m.log.Debug("expired auth sessions removed", logger.Count(removed))
			}
		case <-m.done:
			return
		}
	}
}

// SetCrossAppProvider injects the ecosystem cross-app provider, enabling
// the vechain method. Safe to call at any time, including after sessions
// have started.
func (m *Manager) SetCrossAppProvider(p CrossAppProvider) {
	m.crossApp.setProvider(p)
}

// EmailParams are the inputs of AuthenticateWithEmail.
type EmailParams struct {
	Email string
	Code  string
}

// AuthenticateWithEmail runs the hosted email OTP flow. Without a code it
// sends the OTP and leaves the session awaiting verification; with a code
// it verifies and resolves the wallet.
func (m *Manager) AuthenticateWithEmail(ctx context.Context, p EmailParams) *Result {
	sess, res := m.begin(ctx, MethodEmail)
	if res != nil {
		return res
	}

	params := Params{Email: p.Email, Code: p.Code}
	if p.Code != "" {
		return m.runCompletion(ctx, sess, params)
	}

	outcome, err := m.adapters[MethodEmail].Initiate(ctx, params)
	if err != nil {
		return m.fail(ctx, sess, err)
	}
	return m.awaitVerification(ctx, sess, outcome.VerificationData, "")
}

// OAuthParams are the inputs of AuthenticateWithOAuth.
type OAuthParams struct {
	Provider    OAuthProvider
	RedirectURL string
}

// AuthenticateWithOAuth generates the provider redirect URL for the UI to
// drive. It never completes synchronously; the host calls CompleteOAuthFlow
// once it observes the redirect return.
func (m *Manager) AuthenticateWithOAuth(ctx context.Context, p OAuthParams) *Result {
	sess, res := m.begin(ctx, MethodGoogle)
	if res != nil {
		return res
	}

	outcome, err := m.adapters[MethodGoogle].Initiate(ctx, Params{Provider: p.Provider, RedirectURL: p.RedirectURL})
	if err != nil {
		return m.fail(ctx, sess, err)
	}

	data := map[string]string{"provider": string(p.Provider)}
	return m.awaitVerification(ctx, sess, data, outcome.RedirectURL)
}

// CompleteOAuthFlow exchanges the authorization code after the UI observed
// the redirect return. It requires no continuity with the session that
// generated the URL — calling it from a fresh page load is the normal case —
// so it creates its own session record.
func (m *Manager) CompleteOAuthFlow(ctx context.Context, provider OAuthProvider, code string) *Result {
	sess, res := m.begin(ctx, MethodGoogle)
	if res != nil {
		return res
	}
	return m.runCompletion(ctx, sess, Params{Provider: provider, Code: code})
}

// AuthenticateWithPasskey always reports a configuration error: the
// WebAuthn ceremony must be driven by the presentation layer, and the core
// refuses to pretend otherwise.
func (m *Manager) AuthenticateWithPasskey(ctx context.Context) *Result {
	sess, res := m.begin(ctx, MethodPasskey)
	if res != nil {
		return res
	}
	_, err := m.adapters[MethodPasskey].Initiate(ctx, Params{})
	return m.fail(ctx, sess, err)
}

// AuthenticateWithVeChain performs the ecosystem cross-app delegated login.
// It fails with a configuration error naming SetCrossAppProvider when no
// provider has been injected.
func (m *Manager) AuthenticateWithVeChain(ctx context.Context) *Result {
	sess, res := m.begin(ctx, MethodVeChain)
	if res != nil {
		return res
	}
	return m.runCompletion(ctx, sess, Params{})
}

// AuthenticateWithDappKit is a reserved extension point; it currently
// always fails and callers must not assume it succeeds.
func (m *Manager) AuthenticateWithDappKit(ctx context.Context) *Result {
	sess, res := m.begin(ctx, MethodDappKit)
	if res != nil {
		return res
	}
	_, err := m.adapters[MethodDappKit].Initiate(ctx, Params{})
	return m.fail(ctx, sess, err)
}

// AuthState returns the session record, or nil when no record exists
// (never created, cleared, or swept).
func (m *Manager) AuthState(ctx context.Context, sessionID string) *Session {
	sess, err := m.store.Get(ctx, sessionID)
	if err != nil {
		return nil
	}
	return &sess
}

// ClearAuthState removes a session record, terminal or not.
func (m *Manager) ClearAuthState(ctx context.Context, sessionID string) {
	if err := m.store.Delete(ctx, sessionID); err != nil {
		m.log.Warn("failed to clear auth session", logger.SessionID(sessionID), logger.Error(err))
	}
}

// ActiveSessions returns all sessions not in a terminal step.
func (m *Manager) ActiveSessions(ctx context.Context) []Session {
	sessions, err := m.store.Active(ctx)
	if err != nil {
		m.log.Warn("failed to list active sessions", logger.Error(err))
		return nil
	}
	return sessions
}

// ClearExpiredSessions removes every session whose last mutation is strictly
// older than the session TTL and returns how many were removed. The
// background sweep calls this on its interval; hosts may also call it
// directly.
func (m *Manager) ClearExpiredSessions(ctx context.Context) int {
	cutoff := m.now().Add(-m.ttl)
	removed, err := m.store.DeleteOlderThan(ctx, cutoff)
	if err != nil {
		m.log.Warn("expiry sweep failed", logger.Error(err))
		return 0
	}
	return removed
}

// IsMethodAvailable reports whether the method's provider client is
// configured and initialized. Pure capability check: no I/O, never panics.
func (m *Manager) IsMethodAvailable(method Method) bool {
	adapter, ok := m.adapters[method]
	if !ok {
		return false
	}
	switch method {
	case MethodEmail, MethodGoogle:
		return adapter.Available() && m.cfg.PrivyAppID != ""
	default:
		return adapter.Available()
	}
}

// begin creates the session record and publishes AuthStarted. When the
// method has no registered adapter it fails the session immediately.
func (m *Manager) begin(ctx context.Context, method Method) (Session, *Result) {
	sess := newSession(method, m.now())
	m.saveSession(ctx, sess)
	m.publish(ctx, AuthStarted{SessionID: sess.ID, Method: method})

	if _, ok := m.adapters[method]; !ok {
		return Session{}, m.fail(ctx, sess, configError(string(method)+" authentication is not configured"))
	}
	return sess, nil
}

// runCompletion drives a session through pending into a terminal step via
// the adapter's Complete call.
func (m *Manager) runCompletion(ctx context.Context, sess Session, p Params) *Result {
	sess = sess.withStep(StepPending, m.now())
	m.saveSession(ctx, sess)
	m.publish(ctx, AuthStep{SessionID: sess.ID, Method: sess.Method, Step: StepPending})

	outcome, err := m.adapters[sess.Method].Complete(ctx, p)
	if err != nil {
		return m.fail(ctx, sess, err)
	}
	return m.succeed(ctx, sess, outcome.Connection)
}

// awaitVerification parks the session in the verification step and hands
// control back to the UI.
func (m *Manager) awaitVerification(ctx context.Context, sess Session, data map[string]string, redirectURL string) *Result {
	sess = sess.withStep(StepVerification, m.now())
	for k, v := range data {
		sess.Data[k] = v
	}
	m.saveSession(ctx, sess)
	m.publish(ctx, AuthVerification{SessionID: sess.ID, Method: sess.Method, Data: data})

	return &Result{
		SessionID:            sess.ID,
		RequiresVerification: true,
		VerificationData:     data,
		RedirectURL:          redirectURL,
	}
}

// succeed normalizes the adapter's connection and finalizes the session.
// An invalid address from a provider is a failure, not a success.
func (m *Manager) succeed(ctx context.Context, sess Session, conn wallet.Connection) *Result {
	address, err := wallet.NormalizeAddress(conn.Address)
	if err != nil {
		return m.fail(ctx, sess, err)
	}
	conn.Address = address
	conn.Method = string(sess.Method)
	conn.Timestamp = m.now()

	sess = sess.withStep(StepCompleted, m.now())
	sess.Data["address"] = address
	m.saveSession(ctx, sess)
	m.publish(ctx, AuthSucceeded{SessionID: sess.ID, Method: sess.Method, Connection: conn})

	if m.registrar != nil {
		if err := m.registrar.SyncConnection(ctx, conn); err != nil {
			// Registration is best-effort: the authentication itself
			// succeeded and the host can retry the sync.
			m.log.Warn("failed to register connection",
				logger.SessionID(sess.ID), logger.Address(address), logger.Error(err))
		}
	}

	m.log.Info("authentication succeeded",
		logger.SessionID(sess.ID), logger.Method(string(sess.Method)), logger.Address(address))

	return &Result{Success: true, SessionID: sess.ID, Connection: &conn}
}

// fail classifies the error, finalizes the session as failed, and returns
// a failed result. This is the single conversion point from raw provider
// errors into the taxonomy.
func (m *Manager) fail(ctx context.Context, sess Session, err error) *Result {
	authErr := Classify(sess.Method, err)

	sess = sess.withFailure(authErr, m.now())
	m.saveSession(ctx, sess)
	m.publish(ctx, AuthFailed{SessionID: sess.ID, Method: sess.Method, Error: authErr})

	m.log.Info("authentication failed",
		logger.SessionID(sess.ID), logger.Method(string(sess.Method)), logger.Error(authErr))

	return &Result{SessionID: sess.ID, Error: authErr}
}

// saveSession persists the whole record. Save is an upsert, so a completion
// arriving after the sweep removed its record simply re-creates it in its
// terminal step rather than erroring on a missing entry.
func (m *Manager) saveSession(ctx context.Context, sess Session) {
	if err := m.store.Save(ctx, sess); err != nil {
		m.log.Warn("failed to save auth session", logger.SessionID(sess.ID), logger.Error(err))
	}
}

func (m *Manager) publish(ctx context.Context, payload any) {
	if m.publisher == nil {
		return
	}
	if err := m.publisher.Publish(ctx, payload); err != nil {
		m.log.Warn("failed to publish auth event", logger.Error(err))
	}
}
