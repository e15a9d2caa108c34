// Package day11 solves day 11: counting data paths through the reactor.
package day11

import (
	"fmt"
	"iter"
	"strings"

	"github.com/fluxehub/AdventOfCode2025/internal/dag"
	"github.com/fluxehub/AdventOfCode2025/pkg/aoc"
)

type devices = aoc.Tuple2[*dag.Graph, map[string]int]

func parseDevices(lines iter.Seq[string]) (devices, error) {
	g := dag.New()
	ids := map[string]int{}
	node := func(name string) int {
		id, ok := ids[name]
		if !ok {
			id = g.AddNode()
			ids[name] = id
		}
		return id
	}

	for line := range lines {
		source, outputs, ok := strings.Cut(line, ":")
		if !ok || source == "" {
			return devices{}, fmt.Errorf("malformed device %q", line)
		}
		from := node(source)
		for _, name := range strings.Fields(outputs) {
			g.AddEdge(from, node(name))
		}
	}
	return aoc.Pair(g, ids), nil
}

func lookup(ids map[string]int, names ...string) ([]int, error) {
	out := make([]int, len(names))
	for i, name := range names {
		id, ok := ids[name]
		if !ok {
			return nil, fmt.Errorf("no device named %q", name)
		}
		out[i] = id
	}
	return out, nil
}

func countPaths(g *dag.Graph, ids map[string]int) (int, error) {
	n, err := lookup(ids, "you", "out")
	if err != nil {
		return 0, err
	}
	return g.CountPaths(n[0], n[1])
}

// countPathsViaConverters counts paths from svr to out that visit both fft
// and dac. Each node tracks path counts per subset of the two visited.
func countPathsViaConverters(g *dag.Graph, ids map[string]int) (int, error) {
	n, err := lookup(ids, "svr", "out", "fft", "dac")
	if err != nil {
		return 0, err
	}
	start, end, fft, dac := n[0], n[1], n[2], n[3]

	order, err := g.TopoSort()
	if err != nil {
		return 0, err
	}

	paths := make([][4]int, g.Len())
	paths[start][0] = 1
	for _, node := range order {
		for _, next := range g.Successors(node) {
			var bit int
			switch next {
			case fft:
				bit = 1
			case dac:
				bit = 2
			}
			for mask, count := range paths[node] {
				paths[next][mask|bit] += count
			}
		}
	}
	return paths[end][3], nil
}

func init() {
	p := aoc.ParseLines(aoc.Day(11), parseDevices)
	aoc.Part2(p, aoc.One, countPaths)
	aoc.Part2(p, aoc.Two, countPathsViaConverters)
}
