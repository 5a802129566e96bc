package kvstore

import "context"

// NoopStore is the degraded-mode Store for execution contexts without any
// persistence (server-side rendering, headless test harnesses). Every
// operation succeeds, writes vanish, and reads return nothing. It exists so
// components built on Store never have to special-case a missing backend.
type NoopStore struct{}

var _ Store = NoopStore{}

// NewNoopStore returns the no-op store.
func NewNoopStore() NoopStore { return NoopStore{} }

// Get implements Store; it always reports a missing key.
func (NoopStore) Get(context.Context, string) ([]byte, error) { return nil, nil }

// Put implements Store; the value is discarded.
func (NoopStore) Put(context.Context, string, []byte) error { return nil }

// Del implements Store.
func (NoopStore) Del(context.Context, string) error { return nil }

// ListKeys implements Store; it always reports an empty namespace.
func (NoopStore) ListKeys(context.Context, string) ([]string, error) { return nil, nil }
