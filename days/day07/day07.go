// Package day07 solves day 7: tachyon beam splitters.
//
// The manifold is turned into a graph whose nodes are the splitters a beam
// actually reaches, plus a start node and an end node collecting every
// beam that leaves the bottom.
package day07

import (
	"iter"
	"strings"

	"github.com/fluxehub/AdventOfCode2025/internal/dag"
	"github.com/fluxehub/AdventOfCode2025/pkg/aoc"
)

type manifold = aoc.Tuple3[int, int, *dag.Graph]

func parseManifold(lines iter.Seq[string]) (manifold, error) {
	g := dag.New()
	start := g.AddNode()

	// beams maps a column to the nodes whose beams travel down it
	beams := map[int][]int{}
	for line := range lines {
		if strings.Trim(line, ".") == "" {
			continue
		}

		next := map[int][]int{}
		hit := map[int]bool{}
		for x, c := range line {
			switch c {
			case 'S':
				next[x] = []int{start}
			case '^':
				prev, ok := beams[x]
				if !ok {
					continue
				}
				hit[x] = true
				node := g.AddNode()
				for _, p := range prev {
					g.AddEdge(p, node)
				}
				if x > 0 {
					next[x-1] = append(next[x-1], node)
				}
				next[x+1] = append(next[x+1], node)
			}
		}
		for x, nodes := range beams {
			if !hit[x] {
				next[x] = append(next[x], nodes...)
			}
		}
		beams = next
	}

	end := g.AddNode()
	for _, nodes := range beams {
		for _, n := range nodes {
			g.AddEdge(n, end)
		}
	}
	return aoc.Triple(start, end, g), nil
}

// countSplits counts splitters hit by at least one beam
func countSplits(_, _ int, g *dag.Graph) (int, error) {
	n := 0
	for node := range g.Len() {
		if g.InDegree(node) > 0 {
			n++
		}
	}
	// the end node is not a splitter
	return n - 1, nil
}

func countTimelines(start, end int, g *dag.Graph) (int, error) {
	return g.CountPaths(start, end)
}

func init() {
	p := aoc.ParseLines(aoc.Day(7), parseManifold)
	aoc.Part3(p, aoc.One, countSplits)
	aoc.Part3(p, aoc.Two, countTimelines)
}
