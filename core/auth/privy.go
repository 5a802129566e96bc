package auth

import (
	"context"
	"errors"
	"fmt"

	"github.com/vechainkit/walletkit/core/wallet"
)

// LinkedAccount is one identity attached to a hosted-provider user.
type LinkedAccount struct {
	Type    string `json:"type"` // "wallet", "email", "google_oauth", ...
	Address string `json:"address,omitempty"`
}

// User is the hosted provider's user record.
type User struct {
	ID             string          `json:"id"`
	Email          string          `json:"email,omitempty"`
	LinkedAccounts []LinkedAccount `json:"linked_accounts,omitempty"`
}

// WalletAddress returns the address of the first linked wallet account, or
// "" when the identity has no wallet yet.
func (u *User) WalletAddress() string {
	if u == nil {
		return ""
	}
	for _, acc := range u.LinkedAccounts {
		if acc.Type == "wallet" && acc.Address != "" {
			return acc.Address
		}
	}
	return ""
}

// HostedClient is the hosted auth provider (Privy) capability.
// Implementations live in the host application; the SDK only consumes the
// contract.
type HostedClient interface {
	SendEmailCode(ctx context.Context, email string) error
	LoginWithEmailCode(ctx context.Context, email, code string) (*User, error)
	GenerateOAuthURL(ctx context.Context, provider OAuthProvider, redirectURL string) (string, error)
	LoginWithOAuthCode(ctx context.Context, code string, provider OAuthProvider) (*User, error)
	// CreateEmbeddedWallet provisions a wallet for an identity lacking
	// one. Create-if-absent: calling it for a user that already has a
	// wallet returns the user unchanged.
	CreateEmbeddedWallet(ctx context.Context, userID string) (*User, error)
}

// emailAdapter implements the hosted email OTP flow.
type emailAdapter struct {
	client HostedClient
}

var _ Adapter = (*emailAdapter)(nil)

func (a *emailAdapter) Method() Method { return MethodEmail }

func (a *emailAdapter) Available() bool { return a.client != nil }

// Initiate sends the verification code. A call that already carries a code
// is routed straight to Complete.
func (a *emailAdapter) Initiate(ctx context.Context, p Params) (Outcome, error) {
	if p.Code != "" {
		return a.Complete(ctx, p)
	}
	if a.client == nil {
		return Outcome{}, configError("hosted auth provider is not configured")
	}
	if p.Email == "" {
		return Outcome{}, errors.New("email is required")
	}
	if err := a.client.SendEmailCode(ctx, p.Email); err != nil {
		return Outcome{}, err
	}
	return Outcome{
		Kind:             OutcomeVerification,
		VerificationData: map[string]string{"email": p.Email},
	}, nil
}

// Complete verifies the code and resolves the identity to a wallet.
func (a *emailAdapter) Complete(ctx context.Context, p Params) (Outcome, error) {
	if a.client == nil {
		return Outcome{}, configError("hosted auth provider is not configured")
	}
	user, err := a.client.LoginWithEmailCode(ctx, p.Email, p.Code)
	if err != nil {
		return Outcome{}, err
	}
	return hostedConnection(ctx, a.client, user)
}

// oauthAdapter implements OAuth via the hosted provider. Initiate never
// completes synchronously: it always hands the UI a redirect URL.
type oauthAdapter struct {
	client HostedClient
}

var _ Adapter = (*oauthAdapter)(nil)

func (a *oauthAdapter) Method() Method { return MethodGoogle }

func (a *oauthAdapter) Available() bool { return a.client != nil }

func (a *oauthAdapter) Initiate(ctx context.Context, p Params) (Outcome, error) {
	if a.client == nil {
		return Outcome{}, configError("hosted auth provider is not configured")
	}
	provider := p.Provider
	if provider == "" {
		provider = OAuthGoogle
	}
	url, err := a.client.GenerateOAuthURL(ctx, provider, p.RedirectURL)
	if err != nil {
		return Outcome{}, err
	}
	return Outcome{Kind: OutcomeRedirect, RedirectURL: url}, nil
}

// Complete exchanges the authorization code observed by the UI after the
// redirect returns. It needs no state from Initiate, so it is safe to call
// from a fresh page load.
func (a *oauthAdapter) Complete(ctx context.Context, p Params) (Outcome, error) {
	if a.client == nil {
		return Outcome{}, configError("hosted auth provider is not configured")
	}
	provider := p.Provider
	if provider == "" {
		provider = OAuthGoogle
	}
	user, err := a.client.LoginWithOAuthCode(ctx, p.Code, provider)
	if err != nil {
		return Outcome{}, err
	}
	return hostedConnection(ctx, a.client, user)
}

// hostedConnection resolves a hosted user to a wallet connection,
// provisioning an embedded wallet when the identity has none.
func hostedConnection(ctx context.Context, client HostedClient, user *User) (Outcome, error) {
	if user == nil {
		return Outcome{}, errors.New("hosted provider returned no user")
	}

	if user.WalletAddress() == "" {
		provisioned, err := client.CreateEmbeddedWallet(ctx, user.ID)
		if err != nil {
			return Outcome{}, fmt.Errorf("provision embedded wallet: %w", err)
		}
		user = provisioned
	}

	address := user.WalletAddress()
	if address == "" {
		return Outcome{}, errors.New("hosted identity has no wallet after provisioning")
	}

	metadata := map[string]string{"user_id": user.ID}
	if user.Email != "" {
		metadata["email"] = user.Email
	}

	return Outcome{
		Kind: OutcomeConnection,
		Connection: wallet.Connection{
			Address:  address,
			Source:   wallet.SourcePrivy,
			Metadata: metadata,
		},
	}, nil
}
