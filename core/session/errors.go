package session

import "errors"

var (
	// ErrEmptyToken is returned when Login is called without a token.
	ErrEmptyToken = errors.New("empty bearer token")
	// ErrSuperseded is returned when a login's resolution result was discarded
	// because a newer login or logout changed the session in the meantime.
	ErrSuperseded = errors.New("login superseded by a newer session change")
	// ErrTokenStorage is returned when durable token storage cannot be read
	// or written.
	ErrTokenStorage = errors.New("token storage failure")
	// ErrAlreadyInitialized is returned by Initialize after the first call.
	ErrAlreadyInitialized = errors.New("session store already initialized")
)
