package guard

import (
	"fmt"
	"sync"
)

// Registry maps view names to their static requirements. Registration happens
// once at startup; lookups are read-only afterwards.
type Registry struct {
	mu           sync.RWMutex
	requirements map[string]Requirement
}

// NewRegistry creates an empty requirement registry.
func NewRegistry() *Registry {
	return &Registry{requirements: make(map[string]Requirement)}
}

// Register declares the requirement for a view. Registering the same view
// twice panics: requirements are static and a duplicate means two call sites
// disagree about the view's policy.
func (r *Registry) Register(view string, req Requirement) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, exists := r.requirements[view]; exists {
		panic(fmt.Sprintf("guard: requirement for view %q registered twice", view))
	}
	r.requirements[view] = req
}

// For returns the requirement declared for a view, or ErrNoRequirement when
// the view was never registered.
func (r *Registry) For(view string) (Requirement, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	req, ok := r.requirements[view]
	if !ok {
		return Requirement{}, fmt.Errorf("%w: %s", ErrNoRequirement, view)
	}
	return req, nil
}
