package auth

import (
	"context"

	"github.com/vechainkit/walletkit/core/wallet"
)

// Params carries the caller-supplied inputs of an authentication attempt.
// Each adapter reads only the fields its protocol uses.
type Params struct {
	// Email and Code drive the hosted email OTP flow.
	Email string
	Code  string
	// Provider and RedirectURL drive the hosted OAuth flow; Code carries
	// the authorization code on completion.
	Provider    OAuthProvider
	RedirectURL string
}

// OutcomeKind tags the variant an adapter produced.
type OutcomeKind int

const (
	// OutcomeConnection means the flow finished with a wallet connection.
	OutcomeConnection OutcomeKind = iota
	// OutcomeVerification means a second step (code entry) is required.
	OutcomeVerification
	// OutcomeRedirect means the UI must drive a redirect or popup.
	OutcomeRedirect
)

// Outcome is the tagged result of a successful adapter call.
type Outcome struct {
	Kind             OutcomeKind
	Connection       wallet.Connection
	VerificationData map[string]string
	RedirectURL      string
}

// Adapter implements one login mechanism behind a uniform contract.
//
// Adapters return provider-native errors untouched: classification into the
// error taxonomy happens once, in the manager, never in adapters. Adapters
// that depend on UI-only capabilities refuse to run and return a
// configuration error naming the presentation-layer responsibility.
type Adapter interface {
	// Method returns the login mechanism this adapter serves.
	Method() Method
	// Available reports whether the adapter's provider client is
	// configured and initialized. Pure check, no I/O.
	Available() bool
	// Initiate starts the flow.
	Initiate(ctx context.Context, p Params) (Outcome, error)
	// Complete finishes a two-step flow. It must be idempotent-safe for
	// duplicate invocations with the same input: completing the same
	// valid code twice must not provision a second wallet.
	Complete(ctx context.Context, p Params) (Outcome, error)
}
