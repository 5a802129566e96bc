package wallet

import (
	"errors"
	"time"
)

// Source identifies which class of provider produced a connection.
type Source string

const (
	// SourcePrivy covers the hosted embedded-wallet provider
	// (email OTP and OAuth logins).
	SourcePrivy Source = "privy"
	// SourceCrossApp covers ecosystem cross-app delegated logins.
	SourceCrossApp Source = "cross-app"
	// SourceWallet covers native wallet connections (dappkit, walletconnect).
	SourceWallet Source = "wallet"
)

// ErrEmptyAddress is returned by Connection.Validate when the address is missing.
var ErrEmptyAddress = errors.New("connection address is empty")

// Connection is the canonical result of a successful authentication.
// It is immutable once produced: switching accounts yields a new Connection,
// never a mutation of an existing one.
type Connection struct {
	// Address is the normalized (EIP-55 checksum) wallet address.
	Address string `json:"address"`
	// ChainID identifies the chain the wallet is connected to.
	ChainID string `json:"chain_id,omitempty"`
	// Source is the adapter class that produced the connection.
	Source Source `json:"source"`
	// Method is the specific login method used (email, google, vechain, ...).
	Method string `json:"method"`
	// Timestamp records when the connection was established.
	Timestamp time.Time `json:"timestamp"`
	// Metadata carries free-form provider details: user id, email, app id.
	Metadata map[string]string `json:"metadata,omitempty"`
}

// Validate reports whether the connection is well-formed enough to be
// considered a successful authentication result.
func (c Connection) Validate() error {
	if c.Address == "" {
		return ErrEmptyAddress
	}
	if !IsValidAddress(c.Address) {
		return ErrInvalidAddress
	}
	return nil
}

// StoredWallet is the durable record of a previously connected wallet.
// At most one record per address exists within a network namespace, and at
// most one record carries IsActive=true at any time.
type StoredWallet struct {
	Address string `json:"address"`
	// ConnectedAt is the first-seen timestamp; it survives re-saves.
	ConnectedAt time.Time `json:"connected_at"`
	IsActive    bool      `json:"is_active"`
}
