package broadcast_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/flashlingo/flashlingo-go/pkg/broadcast"
)

func receiveOne[T any](t *testing.T, sub broadcast.Subscriber[T]) broadcast.Message[T] {
	t.Helper()
	select {
	case msg, ok := <-sub.Receive(context.Background()):
		require.True(t, ok, "subscriber channel closed unexpectedly")
		return msg
	case <-time.After(time.Second):
		t.Fatal("timed out waiting for message")
		return broadcast.Message[T]{}
	}
}

func TestMemoryBroadcaster_Broadcast(t *testing.T) {
	t.Parallel()

	t.Run("delivers to all subscribers", func(t *testing.T) {
		t.Parallel()

		b := broadcast.NewMemoryBroadcaster[string](10)
		defer b.Close()

		ctx := context.Background()
		sub1 := b.Subscribe(ctx)
		sub2 := b.Subscribe(ctx)

		require.NoError(t, b.Broadcast(ctx, broadcast.Message[string]{Data: "hello"}))

		assert.Equal(t, "hello", receiveOne(t, sub1).Data)
		assert.Equal(t, "hello", receiveOne(t, sub2).Data)
	})

	t.Run("succeeds with zero subscribers", func(t *testing.T) {
		t.Parallel()

		b := broadcast.NewMemoryBroadcaster[int](10)
		defer b.Close()

		require.NoError(t, b.Broadcast(context.Background(), broadcast.Message[int]{Data: 42}))
	})

	t.Run("slow consumer does not block broadcast", func(t *testing.T) {
		t.Parallel()

		b := broadcast.NewMemoryBroadcaster[int](1)
		defer b.Close()

		ctx := context.Background()
		slow := b.Subscribe(ctx)
		fast := b.Subscribe(ctx)

		// Fill the slow subscriber's buffer, then keep broadcasting.
		for i := range 5 {
			require.NoError(t, b.Broadcast(ctx, broadcast.Message[int]{Data: i}))
		}

		// The fast subscriber still receives the first message, the slow one
		// kept only what fit in its buffer.
		assert.Equal(t, 0, receiveOne(t, fast).Data)
		assert.Equal(t, 0, receiveOne(t, slow).Data)
	})

	t.Run("returns error after close", func(t *testing.T) {
		t.Parallel()

		b := broadcast.NewMemoryBroadcaster[string](10)
		require.NoError(t, b.Close())

		err := b.Broadcast(context.Background(), broadcast.Message[string]{Data: "x"})
		assert.ErrorIs(t, err, broadcast.ErrBroadcasterClosed)
	})
}

func TestMemoryBroadcaster_Subscribe(t *testing.T) {
	t.Parallel()

	t.Run("context cancellation removes subscriber", func(t *testing.T) {
		t.Parallel()

		b := broadcast.NewMemoryBroadcaster[string](10)
		defer b.Close()

		ctx, cancel := context.WithCancel(context.Background())
		sub := b.Subscribe(ctx)
		cancel()

		select {
		case _, ok := <-sub.Receive(context.Background()):
			assert.False(t, ok, "channel should be closed after cancellation")
		case <-time.After(time.Second):
			t.Fatal("subscriber channel not closed after context cancellation")
		}
	})

	t.Run("subscribe after close yields closed channel", func(t *testing.T) {
		t.Parallel()

		b := broadcast.NewMemoryBroadcaster[string](10)
		require.NoError(t, b.Close())

		sub := b.Subscribe(context.Background())
		_, ok := <-sub.Receive(context.Background())
		assert.False(t, ok)
	})

	t.Run("closed subscriber stops receiving", func(t *testing.T) {
		t.Parallel()

		b := broadcast.NewMemoryBroadcaster[string](10)
		defer b.Close()

		ctx := context.Background()
		sub := b.Subscribe(ctx)
		require.NoError(t, sub.Close())
		require.NoError(t, sub.Close()) // Close is idempotent.

		require.NoError(t, b.Broadcast(ctx, broadcast.Message[string]{Data: "late"}))

		_, ok := <-sub.Receive(ctx)
		assert.False(t, ok)
	})
}

func TestMemoryBroadcaster_Close(t *testing.T) {
	t.Parallel()

	b := broadcast.NewMemoryBroadcaster[string](10)
	sub := b.Subscribe(context.Background())

	require.NoError(t, b.Close())
	require.NoError(t, b.Close()) // Idempotent.

	_, ok := <-sub.Receive(context.Background())
	assert.False(t, ok)
}
