// Package slot provides a single-assignment container. A Slot is written
// exactly once before any reader starts and is read-only afterwards, which
// is what lets concurrent parts share the parsed input without locking.
package slot

import (
	"sync/atomic"

	"github.com/fluxehub/AdventOfCode2025/pkg/errors"
)

// Slot holds one value of type T that can be set once.
// The zero value is an empty slot ready to use.
type Slot[T any] struct {
	value atomic.Pointer[T]
}

// Set stores v. A second call panics with an INVARIANT error.
func (s *Slot[T]) Set(v T) {
	if !s.value.CompareAndSwap(nil, &v) {
		panic(errors.New(errors.ErrInvariant, "slot already populated"))
	}
}

// Get returns the stored value. Calling Get on an empty slot panics with an
// INVARIANT error.
func (s *Slot[T]) Get() T {
	p := s.value.Load()
	if p == nil {
		panic(errors.New(errors.ErrInvariant, "slot read before population"))
	}
	return *p
}

// IsSet reports whether the slot has been populated
func (s *Slot[T]) IsSet() bool {
	return s.value.Load() != nil
}
