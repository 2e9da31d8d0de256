// Package broadcast provides a generic in-process pub/sub messaging system.
//
// A Broadcaster delivers messages to every active subscriber. Delivery is
// non-blocking: each subscriber owns a buffered channel, and when that buffer
// is full further messages are dropped for that subscriber instead of slowing
// down the broadcaster or the other subscribers. A misbehaving consumer can
// therefore lose messages but can never poison delivery for anyone else.
//
// Basic usage:
//
//	broadcaster := broadcast.NewMemoryBroadcaster[string](100)
//	defer broadcaster.Close()
//
//	sub := broadcaster.Subscribe(ctx)
//	defer sub.Close()
//
//	go func() {
//		for msg := range sub.Receive(ctx) {
//			fmt.Println(msg.Data)
//		}
//	}()
//
//	broadcaster.Broadcast(ctx, broadcast.Message[string]{Data: "hello"})
//
// Subscriptions are tied to their context: cancelling the context passed to
// Subscribe removes the subscriber and closes its channel. All types are safe
// for concurrent use.
package broadcast
