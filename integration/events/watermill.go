package events

import (
	"encoding/json"
	"io"
	"log/slog"
	"sync"

	"github.com/ThreeDotsLabs/watermill/message"

	"github.com/vechainkit/walletkit/core/bus"
	"github.com/vechainkit/walletkit/pkg/logger"
)

// DefaultTopicPrefix prefixes every bridged topic.
const DefaultTopicPrefix = "walletkit.auth"

// Source is the read side of an event feed; *bus.ChannelBus satisfies it.
type Source interface {
	Events() <-chan bus.Event
}

// Bridge pumps envelopes from an in-process feed into a watermill
// publisher. It stops when the feed closes or Close is called.
type Bridge struct {
	source    Source
	publisher message.Publisher
	prefix    string
	log       *slog.Logger

	done      chan struct{}
	closeOnce sync.Once
	wg        sync.WaitGroup
}

// Option configures a Bridge.
type Option func(*Bridge)

// WithTopicPrefix overrides the topic prefix (default "walletkit.auth").
func WithTopicPrefix(prefix string) Option {
	return func(b *Bridge) {
		if prefix != "" {
			b.prefix = prefix
		}
	}
}

// WithLogger configures structured logging.
func WithLogger(log *slog.Logger) Option {
	return func(b *Bridge) {
		if log != nil {
			b.log = log
		}
	}
}

// NewBridge starts pumping events from source into publisher. Each envelope
// becomes one message on topic "<prefix>.<event name>", with the envelope
// ID as the message UUID and the JSON-encoded envelope as the payload.
func NewBridge(source Source, publisher message.Publisher, opts ...Option) *Bridge {
	b := &Bridge{
		source:    source,
		publisher: publisher,
		prefix:    DefaultTopicPrefix,
		log:       slog.New(slog.NewTextHandler(io.Discard, nil)),
		done:      make(chan struct{}),
	}
	for _, opt := range opts {
		opt(b)
	}

	b.wg.Add(1)
	go b.pump()
	return b
}

func (b *Bridge) pump() {
	defer b.wg.Done()

	for {
		select {
		case event, ok := <-b.source.Events():
			if !ok {
				return
			}
			b.forward(event)
		case <-b.done:
			return
		}
	}
}

func (b *Bridge) forward(event bus.Event) {
	payload, err := json.Marshal(event)
	if err != nil {
		b.log.Warn("failed to encode event", logger.EventName(event.Name), logger.Error(err))
		return
	}

	topic := b.prefix + "." + event.Name
	msg := message.NewMessage(event.ID, payload)
	if err := b.publisher.Publish(topic, msg); err != nil {
		b.log.Warn("failed to publish event", logger.EventName(event.Name), logger.Error(err))
	}
}

// Close stops the pump. It does not close the watermill publisher, which
// the host owns.
func (b *Bridge) Close() {
	b.closeOnce.Do(func() {
		close(b.done)
		b.wg.Wait()
	})
}
