// Package dag is a small directed graph with integer node ids, enough for
// counting paths in puzzle inputs.
package dag

import (
	"github.com/fluxehub/AdventOfCode2025/pkg/errors"
)

// Graph is a directed graph whose nodes are numbered from zero in insertion
// order. Parallel edges are kept; each one counts as a separate path.
type Graph struct {
	out [][]int
	in  []int
}

// New creates an empty graph
func New() *Graph {
	return &Graph{}
}

// AddNode adds a node and returns its id
func (g *Graph) AddNode() int {
	g.out = append(g.out, nil)
	g.in = append(g.in, 0)
	return len(g.out) - 1
}

// AddEdge adds an edge from -> to
func (g *Graph) AddEdge(from, to int) {
	g.out[from] = append(g.out[from], to)
	g.in[to]++
}

// Len returns the number of nodes
func (g *Graph) Len() int {
	return len(g.out)
}

// Successors returns the targets of the edges leaving n
func (g *Graph) Successors(n int) []int {
	return g.out[n]
}

// InDegree returns the number of edges entering n
func (g *Graph) InDegree(n int) int {
	return g.in[n]
}

// TopoSort orders the nodes so every edge points forward. It fails when the
// graph has a cycle.
func (g *Graph) TopoSort() ([]int, error) {
	indeg := make([]int, len(g.in))
	copy(indeg, g.in)

	queue := make([]int, 0, len(g.out))
	for n, d := range indeg {
		if d == 0 {
			queue = append(queue, n)
		}
	}

	order := make([]int, 0, len(g.out))
	for len(queue) > 0 {
		n := queue[0]
		queue = queue[1:]
		order = append(order, n)
		for _, m := range g.out[n] {
			indeg[m]--
			if indeg[m] == 0 {
				queue = append(queue, m)
			}
		}
	}

	if len(order) != len(g.out) {
		return nil, errors.New(errors.ErrInvalidInput, "graph has a cycle")
	}
	return order, nil
}

// CountPaths returns the number of distinct paths from start to end
func (g *Graph) CountPaths(start, end int) (int, error) {
	order, err := g.TopoSort()
	if err != nil {
		return 0, err
	}

	paths := make([]int, g.Len())
	paths[start] = 1
	for _, n := range order {
		for _, m := range g.out[n] {
			paths[m] += paths[n]
		}
	}
	return paths[end], nil
}
