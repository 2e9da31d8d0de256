package session

import "github.com/flashlingo/flashlingo-go/core/profile"

// Status is the lifecycle state of the client session.
type Status string

const (
	// StatusUninitialized is the state before Initialize has run.
	StatusUninitialized Status = "uninitialized"
	// StatusLoading means a profile resolution is in flight.
	StatusLoading Status = "loading"
	// StatusAuthenticated means the token was accepted and a profile is present.
	StatusAuthenticated Status = "authenticated"
	// StatusAnonymous means no valid credential is held.
	StatusAnonymous Status = "anonymous"
	// StatusError means durable token storage itself failed during Initialize.
	StatusError Status = "error"
)

// Session is an immutable snapshot of the store's state. Authenticated
// sessions always carry both a token and a profile; anonymous sessions carry
// neither.
type Session struct {
	Token     string
	Profile   *profile.UserProfile
	Status    Status
	LastError string
}

// IsAuthenticated reports whether the session holds an accepted credential.
func (s Session) IsAuthenticated() bool {
	return s.Status == StatusAuthenticated
}

// IsPending reports whether the session's state is not yet known. Guarded
// views must neither render nor redirect while pending.
func (s Session) IsPending() bool {
	return s.Status == StatusUninitialized || s.Status == StatusLoading
}

// Role returns the profile role, or RoleUser when no profile is present.
func (s Session) Role() profile.Role {
	if s.Profile == nil {
		return profile.RoleUser
	}
	return s.Profile.Role
}
