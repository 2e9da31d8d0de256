package broadcast

import "context"

// Message wraps a broadcast payload. The generic parameter keeps delivery
// type-safe end to end.
type Message[T any] struct {
	Data T
}

// Broadcaster sends messages to all current subscribers.
type Broadcaster[T any] interface {
	// Broadcast delivers the message to every active subscriber without blocking.
	Broadcast(ctx context.Context, msg Message[T]) error
	// Subscribe registers a new subscriber that lives until its context is
	// cancelled or Close is called on it.
	Subscribe(ctx context.Context) Subscriber[T]
	// Close shuts down the broadcaster and all subscribers.
	Close() error
}

// Subscriber receives broadcast messages.
type Subscriber[T any] interface {
	// Receive returns the channel messages are delivered on. The channel is
	// closed when the subscriber or the broadcaster shuts down.
	Receive(ctx context.Context) <-chan Message[T]
	// Close removes the subscriber from the broadcaster.
	Close() error
}
