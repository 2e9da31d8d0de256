// Package profile resolves a bearer token into the authenticated user's
// profile.
//
// The resolver performs a single GET against the service's profile endpoint
// with the token attached as a bearer credential. Failures are classified into
// exactly two kinds: ErrAuthenticationFailed for a 401/403 response, and
// ErrTransientFailure for network errors and every other non-2xx status. No
// finer distinction is made and the resolver never retries; retry policy, if
// any, belongs to the caller.
//
//	resolver := profile.NewResolver("https://api.flashlingo.app",
//		profile.WithTimeout(10*time.Second),
//	)
//
//	p, err := resolver.Resolve(ctx, token)
//	switch {
//	case errors.Is(err, profile.ErrAuthenticationFailed):
//		// credential rejected, clear the session
//	case errors.Is(err, profile.ErrTransientFailure):
//		// network or server trouble
//	}
package profile
