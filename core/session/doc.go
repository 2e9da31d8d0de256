// Package session is the single source of truth for the client's
// authentication state.
//
// A Store owns the current Session: the bearer token, the resolved user
// profile, and a lifecycle status. All reads and writes of the durably
// persisted token go through the Store; consumers read state through
// race-free snapshots returned by Current.
//
// # Lifecycle
//
// A Store starts uninitialized. Initialize runs exactly once: if durable
// storage holds a token the Store behaves as if Login had been called with
// it, otherwise it settles on anonymous immediately without any network call.
// Login persists the token, moves to loading, and asks the profile resolver
// for the user's identity; success yields authenticated, any failure clears
// the durable token and yields anonymous with a human-readable LastError.
// Resolution failures are never retried automatically; the user must
// re-authenticate.
//
// # Invalidation
//
// The Store is always a subscriber of the session-invalidated signal: run
// Listen in a goroutine and any component (typically the HTTP API client
// seeing a 401) can force the equivalent of a logout without touching the
// Store directly. Both logout and forced invalidation publish session-ended
// so independent parts of the application can reset themselves.
//
// # Concurrent logins
//
// If a second Login is issued while a previous resolution is still in
// flight, the stale result is discarded: a resolution is applied only when
// the token it resolved still matches the Store's current token.
//
// # Durable storage
//
// TokenStore abstracts the single persisted key holding the bearer token.
// The package ships an in-memory store for tests, a file store for CLI and
// desktop deployments, and a Redis store for server-side deployments that
// hold a session on behalf of a browser user.
package session
