package auth

import "github.com/vechainkit/walletkit/core/wallet"

// Lifecycle events published on the configured bus. Events for a single
// session are published in strict transition order; no ordering holds
// between sessions.

// AuthStarted is published when a session record is created.
type AuthStarted struct {
	SessionID string `json:"session_id"`
	Method    Method `json:"method"`
}

// AuthVerification is published when a flow needs a second step from the
// user (code entry, redirect return).
type AuthVerification struct {
	SessionID string            `json:"session_id"`
	Method    Method            `json:"method"`
	Data      map[string]string `json:"data,omitempty"`
}

// AuthStep is published on intermediate transitions (pending).
type AuthStep struct {
	SessionID string `json:"session_id"`
	Method    Method `json:"method"`
	Step      Step   `json:"step"`
}

// AuthSucceeded is published exactly once for a session that completes.
type AuthSucceeded struct {
	SessionID  string            `json:"session_id"`
	Method     Method            `json:"method"`
	Connection wallet.Connection `json:"connection"`
}

// AuthFailed is published exactly once for a session that fails.
type AuthFailed struct {
	SessionID string `json:"session_id"`
	Method    Method `json:"method"`
	Error     *Error `json:"error"`
}
