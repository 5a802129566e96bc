package bus

import (
	"context"
	"io"
	"log/slog"
	"sync"
)

// DefaultChannelBufferSize is the default buffer size for ChannelBus.
const DefaultChannelBufferSize = 100

// ChannelBus is a buffered in-memory channel transport. Consumers drain the
// Events channel from their own goroutine; publishers block only when the
// buffer is full and the context allows waiting.
type ChannelBus struct {
	ch     chan Event
	logger *slog.Logger
	mu     sync.RWMutex
	closed bool
}

var _ Transport = (*ChannelBus)(nil)

// ChannelBusOption configures a ChannelBus.
type ChannelBusOption func(*ChannelBus)

// WithBufferSize sets the channel buffer size. Default is 100.
func WithBufferSize(size int) ChannelBusOption {
	return func(b *ChannelBus) {
		if size > 0 {
			b.ch = make(chan Event, size)
		}
	}
}

// WithChannelLogger configures structured logging for the bus.
func WithChannelLogger(logger *slog.Logger) ChannelBusOption {
	return func(b *ChannelBus) {
		if logger != nil {
			b.logger = logger
		}
	}
}

// NewChannelBus creates a buffered channel transport.
func NewChannelBus(opts ...ChannelBusOption) *ChannelBus {
	b := &ChannelBus{
		ch:     make(chan Event, DefaultChannelBufferSize),
		logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// Dispatch implements Transport. It queues the envelope, waiting on the
// context when the buffer is full.
func (b *ChannelBus) Dispatch(ctx context.Context, event Event) error {
	b.mu.RLock()
	defer b.mu.RUnlock()

	if b.closed {
		return ErrClosed
	}

	select {
	case b.ch <- event:
		b.logger.DebugContext(ctx, "event queued", slog.String("event", event.Name))
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Events returns the read side of the bus. The channel closes after Close.
func (b *ChannelBus) Events() <-chan Event {
	return b.ch
}

// Close shuts the bus down. Subsequent Dispatch calls return ErrClosed and
// the Events channel closes once drained.
func (b *ChannelBus) Close() error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.closed {
		return ErrClosed
	}
	b.closed = true
	close(b.ch)
	return nil
}
