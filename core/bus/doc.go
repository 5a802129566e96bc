// Package bus provides the in-process event plumbing between the walletkit
// core and its presentation layer. The authentication manager publishes
// typed lifecycle events; UI and logging layers subscribe to them instead of
// polling session state.
//
// # Components
//
//   - Event: envelope with ID, name, payload, and creation time; the name is
//     derived from the payload type
//   - Publisher: stateless client that stamps envelopes and hands them to a
//     Transport
//   - SyncBus: subscriber-list transport executing handlers inline in the
//     publisher's goroutine — publish order is delivery order, which is what
//     gives auth events their strict per-session ordering
//   - ChannelBus: buffered channel transport for consumers that drain events
//     from their own goroutine (the watermill bridge, for one)
//
// # Ordering
//
// Both transports deliver a single publisher's events in publish order. No
// ordering is guaranteed between events published from different goroutines.
//
// Example:
//
//	b := bus.NewSyncBus()
//	bus.On(b, func(ctx context.Context, e auth.AuthSucceeded) error {
//		render(e.SessionID)
//		return nil
//	})
//
//	publisher := bus.NewPublisher(b)
//	_ = publisher.Publish(ctx, auth.AuthSucceeded{SessionID: id})
package bus
