package auth

// Method identifies a login mechanism.
type Method string

const (
	// MethodEmail is the hosted email OTP flow.
	MethodEmail Method = "email"
	// MethodGoogle is OAuth via the hosted provider.
	MethodGoogle Method = "google"
	// MethodPasskey is WebAuthn; the ceremony runs in the presentation layer.
	MethodPasskey Method = "passkey"
	// MethodVeChain is the ecosystem cross-app delegated login.
	MethodVeChain Method = "vechain"
	// MethodEcosystem is an alias route for cross-app delegated login.
	MethodEcosystem Method = "ecosystem"
	// MethodDappKit is the native dappkit wallet connection (reserved).
	MethodDappKit Method = "dappkit"
	// MethodWalletConnect is the walletconnect protocol (reserved).
	MethodWalletConnect Method = "walletconnect"
)

// OAuthProvider names a provider behind the hosted OAuth flow.
type OAuthProvider string

const (
	OAuthGoogle OAuthProvider = "google"
	OAuthApple  OAuthProvider = "apple"
	OAuthX      OAuthProvider = "twitter"
)

// Step is a session's position in the authentication state machine.
//
//	(none) -> initiated -> verification -> pending -> completed | failed
//	                    \-> pending
//	                    \-> failed (adapter not configured)
type Step string

const (
	StepInitiated    Step = "initiated"
	StepVerification Step = "verification"
	StepPending      Step = "pending"
	StepCompleted    Step = "completed"
	StepFailed       Step = "failed"
)

// Terminal reports whether no further transition can follow the step.
func (s Step) Terminal() bool {
	return s == StepCompleted || s == StepFailed
}
