// Package events bridges the in-process walletkit event bus to external
// message brokers through watermill.
//
// The Bridge drains a ChannelBus feed in a background goroutine and
// republishes every envelope as a watermill message, one topic per event
// name. Any watermill publisher works: go-channel for tests, redis streams
// or kafka in production.
//
//	feed := bus.NewChannelBus()
//	bridge := events.NewBridge(feed, watermillPublisher)
//	defer bridge.Close()
//
//	manager := auth.New(store, auth.WithBus(feed))
package events
