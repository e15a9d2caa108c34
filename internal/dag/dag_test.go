package dag

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fluxehub/AdventOfCode2025/pkg/errors"
)

// diamond builds a -> b, a -> c, b -> d, c -> d
func diamond() (*Graph, int, int) {
	g := New()
	a, b, c, d := g.AddNode(), g.AddNode(), g.AddNode(), g.AddNode()
	g.AddEdge(a, b)
	g.AddEdge(a, c)
	g.AddEdge(b, d)
	g.AddEdge(c, d)
	return g, a, d
}

func TestTopoSort(t *testing.T) {
	g, _, _ := diamond()
	order, err := g.TopoSort()
	require.NoError(t, err)
	require.Len(t, order, 4)

	pos := make(map[int]int)
	for i, n := range order {
		pos[n] = i
	}
	for n := 0; n < g.Len(); n++ {
		for _, m := range g.Successors(n) {
			assert.Less(t, pos[n], pos[m], "edge %d -> %d", n, m)
		}
	}
}

func TestTopoSort_Cycle(t *testing.T) {
	g := New()
	a, b := g.AddNode(), g.AddNode()
	g.AddEdge(a, b)
	g.AddEdge(b, a)

	_, err := g.TopoSort()
	assert.True(t, errors.IsErrorCode(err, errors.ErrInvalidInput))
}

func TestCountPaths(t *testing.T) {
	g, start, end := diamond()
	n, err := g.CountPaths(start, end)
	require.NoError(t, err)
	assert.Equal(t, 2, n)

	n, err = g.CountPaths(end, start)
	require.NoError(t, err)
	assert.Zero(t, n)

	assert.Equal(t, 2, g.InDegree(end))
}
