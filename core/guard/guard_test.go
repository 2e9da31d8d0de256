package guard_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/flashlingo/flashlingo-go/core/guard"
	"github.com/flashlingo/flashlingo-go/core/profile"
	"github.com/flashlingo/flashlingo-go/core/session"
)

func authenticatedSession(role profile.Role) session.Session {
	return session.Session{
		Token:   "tok",
		Profile: &profile.UserProfile{ID: 1, Email: "u@example.com", Role: role},
		Status:  session.StatusAuthenticated,
	}
}

func TestDecide(t *testing.T) {
	t.Parallel()

	t.Run("pending while loading regardless of requirement", func(t *testing.T) {
		t.Parallel()

		requirements := []guard.Requirement{
			{},
			guard.RequireAuthentication(),
			guard.RequireRole(profile.RoleAdmin),
		}
		for _, req := range requirements {
			d := guard.Decide(session.Session{Status: session.StatusLoading}, req)
			assert.Equal(t, guard.ActionPending, d.Action)
		}
	})

	t.Run("pending while uninitialized", func(t *testing.T) {
		t.Parallel()

		d := guard.Decide(session.Session{Status: session.StatusUninitialized}, guard.RequireAuthentication())
		assert.Equal(t, guard.ActionPending, d.Action)
	})

	t.Run("anonymous visitor is sent to login", func(t *testing.T) {
		t.Parallel()

		d := guard.Decide(session.Session{Status: session.StatusAnonymous}, guard.RequireAuthentication())
		assert.Equal(t, guard.ActionRedirectToLogin, d.Action)
	})

	t.Run("never shows a protected view to a non-authenticated session", func(t *testing.T) {
		t.Parallel()

		statuses := []session.Status{
			session.StatusUninitialized,
			session.StatusLoading,
			session.StatusAnonymous,
			session.StatusError,
		}
		for _, status := range statuses {
			d := guard.Decide(session.Session{Status: status}, guard.RequireAuthentication())
			assert.NotEqual(t, guard.ActionShow, d.Action, "status %s must not render", status)
		}
	})

	t.Run("authenticated user sees unrestricted view", func(t *testing.T) {
		t.Parallel()

		d := guard.Decide(authenticatedSession(profile.RoleUser), guard.RequireAuthentication())
		assert.Equal(t, guard.ActionShow, d.Action)
	})

	t.Run("role mismatch redirects to the user's own role home", func(t *testing.T) {
		t.Parallel()

		d := guard.Decide(authenticatedSession(profile.RoleUser), guard.RequireRole(profile.RoleAdmin))
		assert.Equal(t, guard.ActionRedirectToRoleHome, d.Action)
		assert.Equal(t, profile.RoleUser, d.Role)
	})

	t.Run("admin on a user view is sent to admin home", func(t *testing.T) {
		t.Parallel()

		d := guard.Decide(authenticatedSession(profile.RoleAdmin), guard.RequireRole(profile.RoleUser))
		assert.Equal(t, guard.ActionRedirectToRoleHome, d.Action)
		assert.Equal(t, profile.RoleAdmin, d.Role)
	})

	t.Run("matching role renders", func(t *testing.T) {
		t.Parallel()

		d := guard.Decide(authenticatedSession(profile.RoleAdmin), guard.RequireRole(profile.RoleAdmin))
		assert.Equal(t, guard.ActionShow, d.Action)
	})

	t.Run("role demand without a profile is sent to login", func(t *testing.T) {
		t.Parallel()

		admin := profile.RoleAdmin
		req := guard.Requirement{RequiredRole: &admin}
		d := guard.Decide(session.Session{Status: session.StatusAnonymous}, req)
		assert.Equal(t, guard.ActionRedirectToLogin, d.Action)
	})

	t.Run("open view renders for anonymous visitor", func(t *testing.T) {
		t.Parallel()

		d := guard.Decide(session.Session{Status: session.StatusAnonymous}, guard.Requirement{})
		assert.Equal(t, guard.ActionShow, d.Action)
	})
}

func TestRegistry(t *testing.T) {
	t.Parallel()

	t.Run("returns registered requirement", func(t *testing.T) {
		t.Parallel()

		reg := guard.NewRegistry()
		reg.Register("admin-dashboard", guard.RequireRole(profile.RoleAdmin))

		req, err := reg.For("admin-dashboard")
		require.NoError(t, err)
		assert.True(t, req.RequireAuthenticated)
		require.NotNil(t, req.RequiredRole)
		assert.Equal(t, profile.RoleAdmin, *req.RequiredRole)
	})

	t.Run("unregistered view fails loudly", func(t *testing.T) {
		t.Parallel()

		reg := guard.NewRegistry()
		_, err := reg.For("missing")
		assert.ErrorIs(t, err, guard.ErrNoRequirement)
	})

	t.Run("duplicate registration panics", func(t *testing.T) {
		t.Parallel()

		reg := guard.NewRegistry()
		reg.Register("dashboard", guard.RequireAuthentication())
		assert.Panics(t, func() {
			reg.Register("dashboard", guard.RequireAuthentication())
		})
	})
}
