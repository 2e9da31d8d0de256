package broadcast

import "errors"

var (
	// ErrBroadcasterClosed is returned when broadcasting on a closed broadcaster.
	ErrBroadcasterClosed = errors.New("broadcaster is closed")
	// ErrSubscriberClosed is returned by custom implementations when a
	// subscriber has been closed.
	ErrSubscriberClosed = errors.New("subscriber is closed")
)
