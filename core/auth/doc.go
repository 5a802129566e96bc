// Package auth implements the multi-provider authentication core of
// walletkit: one state machine unifying hosted email OTP, hosted OAuth,
// passkey, ecosystem cross-app, and native wallet login mechanisms behind a
// single Manager.
//
// # Sessions
//
// Every authenticate call creates an ephemeral Session keyed by a generated
// id and advances it through:
//
//	initiated -> verification -> pending -> completed | failed
//	          \-> pending
//	          \-> failed (adapter not configured)
//
// completed and failed are terminal: the manager never mutates a session
// again under the same id unless ClearAuthState removed it first. Sessions
// whose last mutation is older than the session TTL (default 10 minutes)
// are removed by ClearExpiredSessions, which also runs on a background
// interval (default 5 minutes) for the life of the Manager.
//
// Because every mutation replaces the whole record, concurrent sessions
// never interfere: the expiry sweep and a second authenticate call touch
// disjoint map entries. An adapter call that resolves after its session was
// swept re-creates the record in its terminal step — completions are never
// lost, and late resolutions never panic on a missing entry.
//
// # Adapters
//
// Each login mechanism implements the Adapter contract
// (Initiate/Complete/Available). Adapters speak their provider's protocol
// and return raw provider errors; the manager alone classifies failures
// into the taxonomy below, which keeps classification consistent across
// providers.
//
// # Error classification
//
// Classification is a deterministic, case-insensitive substring heuristic
// over the raw message:
//
//	"rejected", "cancelled"              -> user_rejection        (not retryable)
//	"popup", "blocked"                   -> popup_blocked         (retryable)
//	"network", "timeout"                 -> network_error         (retryable)
//	"configuration", "not initialized"   -> configuration_error   (retryable)
//	anything else                        -> unknown               (retryable)
//
// Adapters with precise knowledge may return a pre-classified *Error, which
// passes through the heuristic untouched.
//
// # Events
//
// Each transition publishes a typed event (AuthStarted, AuthVerification,
// AuthStep, AuthSucceeded, AuthFailed) on the configured bus. Exactly one
// of AuthSucceeded or AuthFailed is published per settled authenticate
// call. Events for one session arrive in transition order; nothing is
// guaranteed across sessions.
//
// # Usage
//
//	store := auth.NewMemoryStore()
//	events := bus.NewSyncBus()
//
//	manager := auth.New(store,
//		auth.WithConfig(cfg),
//		auth.WithHostedClient(privyClient),
//		auth.WithBus(events),
//		auth.WithRegistrar(reconciler),
//	)
//	defer manager.Close()
//
//	res := manager.AuthenticateWithEmail(ctx, auth.EmailParams{Email: "a@b.com"})
//	if res.RequiresVerification {
//		// prompt the user for the emailed code, then:
//		res = manager.AuthenticateWithEmail(ctx, auth.EmailParams{Email: "a@b.com", Code: code})
//	}
//	if res.Success {
//		fmt.Println("connected:", res.Connection.Address)
//	}
package auth
