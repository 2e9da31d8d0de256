package apiclient

import "errors"

var (
	// ErrUnauthorized is returned when the API rejects the credential with a
	// 401. The client has already published session-invalidated by the time
	// this error is returned.
	ErrUnauthorized = errors.New("api rejected credential")
	// ErrForbidden is returned on a 403: the credential is valid but lacks
	// the required role.
	ErrForbidden = errors.New("insufficient permissions")
	// ErrNotFound is returned on a 404.
	ErrNotFound = errors.New("resource not found")
	// ErrRequestFailed is returned on any other non-2xx response.
	ErrRequestFailed = errors.New("api request failed")
	// ErrInvalidCredentials is returned when a password login is rejected.
	ErrInvalidCredentials = errors.New("invalid email or password")
)

func isUnauthorized(err error) bool {
	return errors.Is(err, ErrUnauthorized)
}
