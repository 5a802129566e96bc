package wallet

import (
	"errors"
	"fmt"

	"github.com/ethereum/go-ethereum/common"
)

// ErrInvalidAddress is returned when a string is not a syntactically valid
// 0x-prefixed 20-byte hex address.
var ErrInvalidAddress = errors.New("invalid wallet address")

// IsValidAddress reports whether s is a syntactically valid hex address.
func IsValidAddress(s string) bool {
	return common.IsHexAddress(s)
}

// NormalizeAddress validates s and returns its EIP-55 checksum form.
// All address comparisons inside the SDK happen on normalized addresses,
// so records never duplicate on casing alone.
func NormalizeAddress(s string) (string, error) {
	if !common.IsHexAddress(s) {
		return "", fmt.Errorf("%w: %q", ErrInvalidAddress, s)
	}
	return common.HexToAddress(s).Hex(), nil
}

// MustNormalizeAddress is NormalizeAddress that panics on invalid input.
// Intended for tests and compile-time-known constants.
func MustNormalizeAddress(s string) string {
	addr, err := NormalizeAddress(s)
	if err != nil {
		panic(err)
	}
	return addr
}

// SameAddress reports whether two addresses refer to the same account,
// ignoring checksum casing. Invalid inputs never compare equal.
func SameAddress(a, b string) bool {
	if !common.IsHexAddress(a) || !common.IsHexAddress(b) {
		return false
	}
	return common.HexToAddress(a) == common.HexToAddress(b)
}
