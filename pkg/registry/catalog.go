package registry

import (
	"sort"
)

// Catalog groups one registry per descriptor variant
type Catalog struct {
	parses  Registry[ParseEntry]
	parts   Registry[PartEntry]
	benches Registry[BenchEntry]
}

// NewCatalog creates an empty catalog
func NewCatalog() *Catalog {
	return &Catalog{
		parses:  New[ParseEntry](),
		parts:   New[PartEntry](),
		benches: New[BenchEntry](),
	}
}

var defaultCatalog = NewCatalog()

// Default returns the process-wide catalog that day modules register into
// from their init() functions.
func Default() *Catalog {
	return defaultCatalog
}

// Submit inserts a descriptor into the catalog. Registration cannot fail.
func Submit[T Descriptor](c *Catalog, item T) {
	switch v := any(item).(type) {
	case ParseEntry:
		c.parses.Register(v)
	case PartEntry:
		c.parts.Register(v)
	case BenchEntry:
		c.benches.Register(v)
	}
}

// Query returns every descriptor of one variant in registration order.
func Query[T Descriptor](c *Catalog) []T {
	var zero T
	switch any(zero).(type) {
	case ParseEntry:
		return any(c.parses.All()).([]T)
	case PartEntry:
		return any(c.parts.All()).([]T)
	case BenchEntry:
		return any(c.benches.All()).([]T)
	}
	return nil
}

// QueryDay returns the descriptors of one variant registered for day, in
// registration order.
func QueryDay[T Descriptor](c *Catalog, day int) []T {
	var out []T
	for _, item := range Query[T](c) {
		if dayOf(item) == day {
			out = append(out, item)
		}
	}
	return out
}

// Days returns the sorted distinct days that registered any component
func (c *Catalog) Days() []int {
	seen := make(map[int]struct{})
	for _, e := range c.parses.All() {
		seen[e.Day] = struct{}{}
	}
	for _, e := range c.parts.All() {
		seen[e.Day] = struct{}{}
	}

	days := make([]int, 0, len(seen))
	for d := range seen {
		days = append(days, d)
	}
	sort.Ints(days)
	return days
}

// HasDay reports whether anything was registered for day
func (c *Catalog) HasDay(day int) bool {
	for _, d := range c.Days() {
		if d == day {
			return true
		}
	}
	return false
}

func dayOf(item any) int {
	switch v := item.(type) {
	case ParseEntry:
		return v.Day
	case PartEntry:
		return v.Day
	case BenchEntry:
		return v.Day
	}
	return 0
}
