package wallet

import (
	"fmt"
	"strings"
)

// Network identifies the network namespace a wallet belongs to.
// Persisted wallet state is partitioned by network so that wallets from
// different networks never collide.
type Network string

const (
	NetworkMain Network = "main"
	NetworkTest Network = "test"
	NetworkSolo Network = "solo"
)

// ParseNetwork converts a string into a Network, case-insensitively.
func ParseNetwork(s string) (Network, error) {
	switch Network(strings.ToLower(strings.TrimSpace(s))) {
	case NetworkMain:
		return NetworkMain, nil
	case NetworkTest:
		return NetworkTest, nil
	case NetworkSolo:
		return NetworkSolo, nil
	default:
		return "", fmt.Errorf("unknown network %q", s)
	}
}

// String implements fmt.Stringer.
func (n Network) String() string { return string(n) }

// Valid reports whether n is one of the known networks.
func (n Network) Valid() bool {
	switch n {
	case NetworkMain, NetworkTest, NetworkSolo:
		return true
	}
	return false
}
