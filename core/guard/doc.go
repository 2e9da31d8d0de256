// Package guard decides whether a protected view may render.
//
// Decide is a pure function over a session snapshot and a static per-view
// Requirement; the navigation side effect belongs to a thin adapter at the
// presentation boundary (see cmd/flashlingo for one). Keeping the policy pure
// makes it unit-testable without any rendering environment.
//
// The evaluation order is load-bearing: a pending session is reported as
// Pending before any authentication check, so a not-yet-resolved session is
// never misclassified as unauthenticated and bounced to the login view.
package guard
