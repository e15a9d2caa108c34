// Package day04 solves day 4: forklifts clearing rolls of paper.
package day04

import (
	"errors"
	"iter"

	"github.com/fluxehub/AdventOfCode2025/pkg/aoc"
)

type point struct{ x, y int }

// floor is the set of tiles holding a roll of paper
type floor struct {
	width, height int
	paper         map[point]struct{}
}

func parseFloor(lines iter.Seq[string]) (*floor, error) {
	f := &floor{paper: make(map[point]struct{})}
	for line := range lines {
		for x, c := range line {
			if c == '@' {
				f.paper[point{x, f.height}] = struct{}{}
			}
		}
		f.width = max(f.width, len(line))
		f.height++
	}
	if f.height == 0 {
		return nil, errors.New("empty floor")
	}
	return f, nil
}

// adjacent counts rolls in the eight tiles around p
func adjacent(paper map[point]struct{}, p point) int {
	n := 0
	for dy := -1; dy <= 1; dy++ {
		for dx := -1; dx <= 1; dx++ {
			if dx == 0 && dy == 0 {
				continue
			}
			if _, ok := paper[point{p.x + dx, p.y + dy}]; ok {
				n++
			}
		}
	}
	return n
}

func accessible(paper map[point]struct{}, p point) bool {
	return adjacent(paper, p) < 4
}

func countAccessible(f *floor) (int, error) {
	n := 0
	for p := range f.paper {
		if accessible(f.paper, p) {
			n++
		}
	}
	return n, nil
}

// removeAll keeps removing every accessible roll until none is left and
// returns how many were removed.
func removeAll(f *floor) (int, error) {
	paper := make(map[point]struct{}, len(f.paper))
	for p := range f.paper {
		paper[p] = struct{}{}
	}

	for {
		next := make(map[point]struct{}, len(paper))
		for p := range paper {
			if !accessible(paper, p) {
				next[p] = struct{}{}
			}
		}
		if len(next) == len(paper) {
			return len(f.paper) - len(paper), nil
		}
		paper = next
	}
}

func init() {
	p := aoc.ParseLines(aoc.Day(4), parseFloor)
	aoc.Part(p, aoc.One, countAccessible)
	aoc.Part(p, aoc.Two, removeAll)
}
