package auth

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/vechainkit/walletkit/core/wallet"
)

// CrossAppResult is what the ecosystem cross-app provider reports back.
type CrossAppResult struct {
	Success bool
	Address string
	AppID   string
	Err     string
}

// CrossAppProvider is the ecosystem delegated-login capability. It is
// injected at runtime via Manager.SetCrossAppProvider; its absence is a
// valid, detectable configuration state.
type CrossAppProvider interface {
	Login(ctx context.Context, appID string) (CrossAppResult, error)
}

// crossAppAdapter delegates authentication to an application the hosted
// provider already trusts.
type crossAppAdapter struct {
	mu       sync.RWMutex
	provider CrossAppProvider
	appID    string
}

var _ Adapter = (*crossAppAdapter)(nil)

func (a *crossAppAdapter) Method() Method { return MethodVeChain }

func (a *crossAppAdapter) Available() bool {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return a.provider != nil && a.appID != ""
}

func (a *crossAppAdapter) setProvider(p CrossAppProvider) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.provider = p
}

// Initiate performs the delegated login in one round trip.
func (a *crossAppAdapter) Initiate(ctx context.Context, _ Params) (Outcome, error) {
	a.mu.RLock()
	provider, appID := a.provider, a.appID
	a.mu.RUnlock()

	if provider == nil {
		return Outcome{}, configError("cross-app provider not configured: call SetCrossAppProvider before authenticating with vechain")
	}

	result, err := provider.Login(ctx, appID)
	if err != nil {
		return Outcome{}, err
	}
	if !result.Success {
		if result.Err == "" {
			result.Err = "cross-app login failed"
		}
		return Outcome{}, errors.New(result.Err)
	}
	if result.Address == "" {
		return Outcome{}, errors.New("cross-app provider returned no address")
	}

	return Outcome{
		Kind: OutcomeConnection,
		Connection: wallet.Connection{
			Address:  result.Address,
			Source:   wallet.SourceCrossApp,
			Metadata: map[string]string{"app_id": result.AppID},
		},
	}, nil
}

// Complete is unused: cross-app login has no second step.
func (a *crossAppAdapter) Complete(ctx context.Context, p Params) (Outcome, error) {
	return a.Initiate(ctx, p)
}

// passkeyAdapter refuses to run headlessly: a WebAuthn ceremony needs the
// browser credential APIs that only the presentation layer can reach.
type passkeyAdapter struct{}

var _ Adapter = passkeyAdapter{}

func (passkeyAdapter) Method() Method  { return MethodPasskey }
func (passkeyAdapter) Available() bool { return false }

func (passkeyAdapter) Initiate(context.Context, Params) (Outcome, error) {
	return Outcome{}, configError("passkey authentication requires the WebAuthn ceremony to be driven by the presentation layer")
}

func (a passkeyAdapter) Complete(ctx context.Context, p Params) (Outcome, error) {
	return a.Initiate(ctx, p)
}

// stubAdapter covers reserved extension points (dappkit, walletconnect):
// availability follows configuration, but every call fails explicitly
// rather than silently no-opping.
type stubAdapter struct {
	method     Method
	configured bool
}

var _ Adapter = stubAdapter{}

func (a stubAdapter) Method() Method  { return a.method }
func (a stubAdapter) Available() bool { return a.configured }

func (a stubAdapter) Initiate(context.Context, Params) (Outcome, error) {
	return Outcome{}, configError(fmt.Sprintf("%s authentication is not yet implemented", a.method))
}

func (a stubAdapter) Complete(ctx context.Context, p Params) (Outcome, error) {
	return a.Initiate(ctx, p)
}
