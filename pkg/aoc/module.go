package aoc

import (
	"fmt"

	"github.com/fluxehub/AdventOfCode2025/pkg/registry"
)

// PartNumber identifies one of the two parts of a day
type PartNumber int

const (
	One PartNumber = 1
	Two PartNumber = 2
)

// Module binds a day number to the catalog its components register into.
type Module struct {
	day       int
	catalog   *registry.Catalog
	hasParser bool
}

// Day declares a day module registering into the process-wide catalog.
func Day(n int) *Module {
	return DayIn(registry.Default(), n)
}

// DayIn declares a day module registering into c.
func DayIn(c *registry.Catalog, n int) *Module {
	if n < 1 {
		panic(fmt.Sprintf("invalid day number %d", n))
	}
	return &Module{day: n, catalog: c}
}

// Number returns the day number
func (m *Module) Number() int {
	return m.day
}

func (m *Module) claimParser() {
	if m.hasParser {
		panic(fmt.Sprintf("day %d already declares a parse stage", m.day))
	}
	m.hasParser = true
}
