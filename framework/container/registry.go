package container

import (
	"sort"
	"sync"
)

// ── String-keyed registry ────────────────────────────────────────────────────

// Registry is the simplest container variant: a string-keyed instance map.
// Register overwrites unconditionally, and Get reports absence through ok —
// a missing key is not an error kind.
//
// The type-keyed Container builds on the same shape; Registry exists for the
// cases where the key is a name rather than a type (named singletons,
// configuration objects, handler tables).
type Registry struct {
	mu    sync.RWMutex
	items map[string]any
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{items: make(map[string]any)}
}

// Register stores v under key, overwriting any prior value, and returns the
// registry for chaining.
//
//	reg := container.NewRegistry().
//	    Register("clock", clock).
//	    Register("greeter", greeter)
func (r *Registry) Register(key string, v any) *Registry {
	r.mu.Lock()
	r.items[key] = v
	r.mu.Unlock()
	return r
}

// Get returns the value stored under key.
func (r *Registry) Get(key string) (any, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	v, ok := r.items[key]
	return v, ok
}

// Has reports whether key is registered.
func (r *Registry) Has(key string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	_, ok := r.items[key]
	return ok
}

// Forget removes key. Removing an absent key is a no-op.
func (r *Registry) Forget(key string) {
	r.mu.Lock()
	delete(r.items, key)
	r.mu.Unlock()
}

// Keys returns the registered keys, sorted for stable listings.
func (r *Registry) Keys() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	keys := make([]string, 0, len(r.items))
	for k := range r.items {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Len returns the number of registered entries.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.items)
}
