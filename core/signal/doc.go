// Package signal defines the process-wide session signals and the bus that
// carries them.
//
// Signals form a closed set: SessionEnded is published when a logout
// completes, SessionInvalidated when any component (typically the HTTP API
// client seeing a 401) needs the session store to clear itself outside of an
// explicit logout. Each signal carries a typed payload instead of a bare
// string event name, so subscribers never have to guess at shapes.
//
// Publishing is fire-and-forget with 0..N subscribers; ordering between
// subscribers is unspecified, and a stuck subscriber never blocks delivery to
// the others (see pkg/broadcast).
package signal
