package profile

import "time"

// Role classifies what a user may access.
type Role string

const (
	RoleUser  Role = "user"
	RoleAdmin Role = "admin"
)

// UserProfile describes the authenticated user. Profiles are immutable once
// fetched: a re-fetch replaces the whole value, fields are never mutated
// individually.
type UserProfile struct {
	ID        int64
	Email     string
	Username  string // optional, empty when the user never set one
	Role      Role
	CreatedAt time.Time
}

// IsAdmin reports whether the profile carries the admin role.
func (p UserProfile) IsAdmin() bool {
	return p.Role == RoleAdmin
}

// DisplayName returns the username when set, falling back to the email.
func (p UserProfile) DisplayName() string {
	if p.Username != "" {
		return p.Username
	}
	return p.Email
}
