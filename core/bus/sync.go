package bus

import (
	"context"
	"errors"
	"fmt"
	"sync"
)

// Handler consumes an envelope. Handlers are matched by event name.
type Handler func(ctx context.Context, event Event) error

// SyncBus is a subscriber-list transport that executes handlers inline in
// the dispatching goroutine. Events dispatched from one goroutine reach
// every handler in dispatch order, which preserves the per-session ordering
// the authentication manager promises.
type SyncBus struct {
	mu       sync.RWMutex
	handlers map[string][]Handler
}

var _ Transport = (*SyncBus)(nil)

// NewSyncBus creates an empty synchronous bus.
func NewSyncBus() *SyncBus {
	return &SyncBus{handlers: make(map[string][]Handler)}
}

// Subscribe registers a handler for events with the given name.
// An empty name subscribes to every event.
func (b *SyncBus) Subscribe(name string, h Handler) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.handlers[name] = append(b.handlers[name], h)
}

// Dispatch implements Transport. Handler panics are converted to errors so
// one misbehaving subscriber cannot take down the publisher; all handler
// errors are aggregated.
func (b *SyncBus) Dispatch(ctx context.Context, event Event) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	b.mu.RLock()
	handlers := make([]Handler, 0, len(b.handlers[event.Name])+len(b.handlers[""]))
	handlers = append(handlers, b.handlers[event.Name]...)
	handlers = append(handlers, b.handlers[""]...)
	b.mu.RUnlock()

	var errs []error
	for _, h := range handlers {
		if err := safeHandle(ctx, h, event); err != nil {
			errs = append(errs, fmt.Errorf("handler for %s failed: %w", event.Name, err))
		}
	}
	return errors.Join(errs...)
}

func safeHandle(ctx context.Context, h Handler, event Event) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("handler panic: %v", r)
		}
	}()
	return h(ctx, event)
}

// On subscribes a typed handler to a SyncBus. The event name is derived from
// the payload type the same way publishing derives it, so the two sides
// cannot drift apart.
func On[T any](b *SyncBus, fn func(ctx context.Context, payload T) error) {
	var zero T
	b.Subscribe(eventName(zero), func(ctx context.Context, event Event) error {
		payload, ok := event.Payload.(T)
		if !ok {
			return fmt.Errorf("unexpected payload type %T for event %s", event.Payload, event.Name)
		}
		return fn(ctx, payload)
	})
}
