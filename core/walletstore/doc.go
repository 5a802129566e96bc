// Package walletstore maintains the durable list of previously connected
// wallets and the single "active wallet" pointer, and reconciles both
// against the live provider connection.
//
// State lives in a kvstore.Store under keys partitioned by network
// namespace (walletkit:<network>:wallets, walletkit:<network>:active), so
// wallets from different networks never collide. All addresses are
// normalized before comparison; records never duplicate on casing.
//
// # Invariants
//
//   - at most one StoredWallet per address within a namespace
//   - exactly one or zero records carry IsActive=true
//   - ConnectedAt is first-seen time and survives re-saves
//   - removing a wallet never auto-promotes another one to active
//
// # Reconciliation
//
// SyncConnection is the entry point the authentication manager (and hosts,
// after a page reload or provider-side account switch) feed live
// connections through. A freshly removed wallet is not resurrected when the
// provider still reports it as connected: RemoveWallet records the address
// in a short-lived suppression set that SyncConnection consults, so only an
// explicit new save can bring it back.
package walletstore
