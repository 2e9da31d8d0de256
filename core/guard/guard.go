package guard

import (
	"github.com/flashlingo/flashlingo-go/core/profile"
	"github.com/flashlingo/flashlingo-go/core/session"
)

// Requirement declares what a view demands of the session. Requirements are
// declared statically per view and never mutated at runtime.
type Requirement struct {
	RequireAuthenticated bool
	RequiredRole         *profile.Role
}

// RequireAuthentication is a requirement that only demands a logged-in user.
func RequireAuthentication() Requirement {
	return Requirement{RequireAuthenticated: true}
}

// RequireRole demands a logged-in user with the given role.
func RequireRole(role profile.Role) Requirement {
	return Requirement{RequireAuthenticated: true, RequiredRole: &role}
}

// Action is the kind of decision the gate produced.
type Action string

const (
	// ActionShow allows the guarded view to render.
	ActionShow Action = "show"
	// ActionRedirectToLogin sends the visitor to the login view.
	ActionRedirectToLogin Action = "redirect-to-login"
	// ActionRedirectToRoleHome sends the user to their own role's home view.
	ActionRedirectToRoleHome Action = "redirect-to-role-home"
	// ActionPending means session state is not yet known; the caller renders a
	// loading indicator and must neither show the view nor redirect.
	ActionPending Action = "pending"
)

// Decision is the gate's verdict. Role is populated only for
// ActionRedirectToRoleHome and names the user's own role.
type Decision struct {
	Action Action
	Role   profile.Role
}

// Decide evaluates the requirement against the session snapshot.
//
// Checks run in strict order: pending before authentication, authentication
// before role. A role mismatch redirects the user to their own role's home
// view rather than an error page.
func Decide(sess session.Session, req Requirement) Decision {
	if sess.IsPending() {
		return Decision{Action: ActionPending}
	}

	if req.RequireAuthenticated && !sess.IsAuthenticated() {
		return Decision{Action: ActionRedirectToLogin}
	}

	if req.RequiredRole != nil {
		// A role demand implies authentication even when the requirement was
		// built by hand without RequireAuthenticated.
		if sess.Profile == nil {
			return Decision{Action: ActionRedirectToLogin}
		}
		if *req.RequiredRole != sess.Profile.Role {
			return Decision{Action: ActionRedirectToRoleHome, Role: sess.Profile.Role}
		}
	}

	return Decision{Action: ActionShow}
}
