package bus

import "context"

// Transport accepts stamped envelopes for delivery.
type Transport interface {
	// Dispatch delivers an envelope. Sync transports run handlers before
	// returning; async transports queue and return immediately.
	Dispatch(ctx context.Context, event Event) error
}

// Publisher stamps payloads into envelopes and hands them to a transport.
// It is stateless and safe for concurrent use.
type Publisher struct {
	transport Transport
}

// NewPublisher creates a publisher over the given transport.
func NewPublisher(transport Transport) *Publisher {
	return &Publisher{transport: transport}
}

// Publish wraps the payload in an envelope and dispatches it.
// For SyncBus the returned error aggregates handler errors; for ChannelBus
// it only reflects dispatch failures.
func (p *Publisher) Publish(ctx context.Context, payload any) error {
	return p.transport.Dispatch(ctx, NewEvent(payload))
}
