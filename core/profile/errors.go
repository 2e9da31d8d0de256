package profile

import "errors"

var (
	// ErrAuthenticationFailed is returned when the profile endpoint rejects
	// the credential with a 401 or 403 status.
	ErrAuthenticationFailed = errors.New("authentication failed")
	// ErrTransientFailure is returned on network errors and non-auth error
	// statuses from the profile endpoint.
	ErrTransientFailure = errors.New("transient profile resolution failure")
	// ErrEmptyToken is returned when Resolve is called without a token.
	ErrEmptyToken = errors.New("empty bearer token")
)
