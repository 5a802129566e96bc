package walletstore

import "github.com/vechainkit/walletkit/core/wallet"

// WalletRemoved is published when a wallet is explicitly removed. Hosts
// listening for provider connections should treat it as a signal that the
// address disappearing from the store was intentional.
type WalletRemoved struct {
	Address string         `json:"address"`
	Network wallet.Network `json:"network"`
}

// ActiveWalletChanged is published when the active pointer moves to a new
// address or is cleared (empty Address).
type ActiveWalletChanged struct {
	Address string         `json:"address"`
	Network wallet.Network `json:"network"`
}
