package broadcast

import (
	"context"
	"sync"
)

// DefaultBufferSize is the per-subscriber channel buffer used when
// NewMemoryBroadcaster is called with a non-positive size.
const DefaultBufferSize = 100

// MemoryBroadcaster is an in-memory Broadcaster implementation backed by one
// buffered channel per subscriber. It is optimized for read-heavy broadcast
// workloads with infrequent subscription changes.
type MemoryBroadcaster[T any] struct {
	mu         sync.RWMutex
	subs       map[*memorySubscriber[T]]struct{}
	bufferSize int
	closed     bool
}

// NewMemoryBroadcaster creates a broadcaster whose subscribers buffer up to
// bufferSize messages each.
func NewMemoryBroadcaster[T any](bufferSize int) *MemoryBroadcaster[T] {
	if bufferSize <= 0 {
		bufferSize = DefaultBufferSize
	}
	return &MemoryBroadcaster[T]{
		subs:       make(map[*memorySubscriber[T]]struct{}),
		bufferSize: bufferSize,
	}
}

// Broadcast delivers the message to every active subscriber. Subscribers whose
// buffers are full miss the message; Broadcast never blocks on a slow consumer.
func (b *MemoryBroadcaster[T]) Broadcast(ctx context.Context, msg Message[T]) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	b.mu.RLock()
	defer b.mu.RUnlock()

	if b.closed {
		return ErrBroadcasterClosed
	}

	for sub := range b.subs {
		select {
		case sub.ch <- msg:
		default:
			// Buffer full, drop for this subscriber only.
		}
	}
	return nil
}

// Subscribe registers a new subscriber. The subscription is removed when ctx
// is cancelled or when Close is called on the returned Subscriber.
func (b *MemoryBroadcaster[T]) Subscribe(ctx context.Context) Subscriber[T] {
	sub := &memorySubscriber[T]{
		parent: b,
		ch:     make(chan Message[T], b.bufferSize),
	}

	b.mu.Lock()
	if b.closed {
		b.mu.Unlock()
		close(sub.ch)
		sub.closed = true
		return sub
	}
	b.subs[sub] = struct{}{}
	b.mu.Unlock()

	go func() {
		<-ctx.Done()
		_ = sub.Close()
	}()

	return sub
}

// Close shuts down the broadcaster and closes every subscriber channel.
func (b *MemoryBroadcaster[T]) Close() error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.closed {
		return nil
	}
	b.closed = true
	for sub := range b.subs {
		sub.markClosed()
		delete(b.subs, sub)
	}
	return nil
}

type memorySubscriber[T any] struct {
	parent *MemoryBroadcaster[T]
	ch     chan Message[T]

	mu     sync.Mutex
	closed bool
}

// Receive returns the delivery channel. The ctx parameter is accepted for
// interface symmetry; lifetime is governed by the context passed to Subscribe.
func (s *memorySubscriber[T]) Receive(_ context.Context) <-chan Message[T] {
	return s.ch
}

// Close removes the subscriber from its broadcaster and closes the channel.
// Safe to call multiple times.
func (s *memorySubscriber[T]) Close() error {
	s.parent.mu.Lock()
	delete(s.parent.subs, s)
	s.parent.mu.Unlock()

	s.markClosed()
	return nil
}

func (s *memorySubscriber[T]) markClosed() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.closed {
		s.closed = true
		close(s.ch)
	}
}
