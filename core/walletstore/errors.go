package walletstore

import "errors"

var (
	// ErrWalletNotFound is returned when activating an address that was
	// never saved.
	ErrWalletNotFound = errors.New("wallet not found in store")

	// ErrNoStore is returned by New when no key-value store is provided.
	ErrNoStore = errors.New("key-value store is required")
)
