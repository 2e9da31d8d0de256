package guard

import "errors"

// ErrNoRequirement is returned when the registry is consulted for a view that
// was never registered. This is a programmer error: every guarded view must
// declare its requirement statically.
var ErrNoRequirement = errors.New("no guard requirement registered for view")
