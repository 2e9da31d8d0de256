package signal

import (
	"context"

	"github.com/flashlingo/flashlingo-go/pkg/broadcast"
)

// Bus is the process-wide broadcaster for session signals. One Bus is created
// at application root and handed to every component that publishes or
// subscribes; there is no ambient singleton.
type Bus struct {
	broadcaster *broadcast.MemoryBroadcaster[Signal]
}

// NewBus creates a signal bus. bufferSize bounds how many undelivered signals
// each subscriber may queue; zero or negative selects the broadcast default.
func NewBus(bufferSize int) *Bus {
	return &Bus{broadcaster: broadcast.NewMemoryBroadcaster[Signal](bufferSize)}
}

// Publish emits a signal of the given kind to all current subscribers.
// Fire-and-forget: it does not wait for subscribers to process the signal.
func (b *Bus) Publish(ctx context.Context, kind Kind, reason string) error {
	return b.broadcaster.Broadcast(ctx, broadcast.Message[Signal]{Data: New(kind, reason)})
}

// Subscribe registers a subscriber that receives every signal published while
// its context remains live.
func (b *Bus) Subscribe(ctx context.Context) broadcast.Subscriber[Signal] {
	return b.broadcaster.Subscribe(ctx)
}

// Close shuts the bus down, closing all subscriber channels.
func (b *Bus) Close() error {
	return b.broadcaster.Close()
}
