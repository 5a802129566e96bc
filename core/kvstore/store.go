package kvstore

import "context"

// Store is the persistent key-value capability.
// Implementations must be safe for concurrent use.
//
// Get returns (nil, nil) for missing keys; Del of a missing key is a no-op.
type Store interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Put(ctx context.Context, key string, value []byte) error
	Del(ctx context.Context, key string) error
	// ListKeys returns all keys with the given prefix, in unspecified order.
	ListKeys(ctx context.Context, prefix string) ([]string, error)
}
