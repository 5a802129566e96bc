// Package kvstore provides the persistent key-value capability consumed by
// walletkit components that need durable state (the multi-wallet registry,
// most notably).
//
// The capability is deliberately small: Get, Put, Del, ListKeys. Hosts pick
// the implementation that matches their execution context:
//
//   - MemoryStore: process-local map, good default for tests and ephemeral use
//   - NoopStore: degraded mode for contexts with no storage at all; every
//     operation succeeds and reads return nothing, no errors are ever thrown
//   - RedisStore: shared durable storage over a redis client
//   - BoltStore: single-file embedded storage over bbolt
//
// Missing keys are not errors: Get returns (nil, nil) so callers branch on
// data presence rather than error identity.
//
// Example:
//
//	store := kvstore.NewMemoryStore()
//	if err := store.Put(ctx, "walletkit:main:active", []byte(addr)); err != nil {
//		return err
//	}
//	val, err := store.Get(ctx, "walletkit:main:active")
package kvstore
