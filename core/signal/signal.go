package signal

import (
	"time"

	"github.com/google/uuid"
)

// Kind identifies a session signal. The set is closed: consumers can switch
// exhaustively over it.
type Kind string

const (
	// KindSessionEnded is published after a logout has completed and session
	// state is already cleared.
	KindSessionEnded Kind = "session-ended"

	// KindSessionInvalidated asks the session store to clear itself because a
	// consumer detected that the current credential was rejected.
	KindSessionInvalidated Kind = "session-invalidated"
)

// Signal is the payload delivered to every subscriber.
type Signal struct {
	ID        uuid.UUID
	Kind      Kind
	Reason    string
	EmittedAt time.Time
}

// New creates a signal of the given kind with a generated ID and timestamp.
func New(kind Kind, reason string) Signal {
	return Signal{
		ID:        uuid.New(),
		Kind:      kind,
		Reason:    reason,
		EmittedAt: time.Now(),
	}
}
