package registry

import (
	"sync"
)

// Registry is a generic, thread-safe, append-only collection that
// preserves insertion order
type Registry[T any] interface {
	// Register appends an item to the registry
	Register(item T)

	// All returns a snapshot of every item in registration order
	All() []T

	// Filter returns the items matching keep, in registration order
	Filter(keep func(T) bool) []T

	// Count returns the number of registered items
	Count() int
}

// registry is the internal implementation of Registry
type registry[T any] struct {
	mu    sync.RWMutex
	items []T
}

// New creates a new Registry instance
func New[T any]() Registry[T] {
	return &registry[T]{}
}

// Register appends an item to the registry
func (r *registry[T]) Register(item T) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.items = append(r.items, item)
}

// All returns a snapshot of every item in registration order
func (r *registry[T]) All() []T {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]T, len(r.items))
	copy(out, r.items)
	return out
}

// Filter returns the items matching keep, in registration order
func (r *registry[T]) Filter(keep func(T) bool) []T {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var out []T
	for _, item := range r.items {
		if keep(item) {
			out = append(out, item)
		}
	}
	return out
}

// Count returns the number of registered items
func (r *registry[T]) Count() int {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return len(r.items)
}
