// Package wallet defines the shared value types of the walletkit SDK:
// wallet addresses, networks, and the canonical results of a successful
// authentication.
//
// # Core Types
//
//   - Connection: immutable record of a successful authentication
//     (address, chain, source, method, metadata)
//   - StoredWallet: durable record of a previously connected wallet
//   - Network: network namespace (main, test, solo) used to partition
//     persisted wallet state
//   - Source: which class of provider produced a connection
//
// # Addresses
//
// Addresses are 20-byte hex identifiers in the 0x form. The package
// validates and normalizes them to their EIP-55 checksum representation so
// that the rest of the SDK can compare addresses byte-for-byte:
//
//	addr, err := wallet.NormalizeAddress("0xf39fd6e51aad88f6f4ce6ab8827279cfffb92266")
//	if err != nil {
//		// not a syntactically valid address
//	}
//
// # Immutability
//
// A Connection is never mutated after it is produced. Switching accounts
// yields a new Connection value; consumers may freely retain old ones.
package wallet
