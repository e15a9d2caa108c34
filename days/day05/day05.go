// Package day05 solves day 5: fresh ingredient id ranges.
package day05

import (
	"cmp"
	"errors"
	"fmt"
	"slices"
	"sort"
	"strconv"
	"strings"

	"github.com/fluxehub/AdventOfCode2025/pkg/aoc"
)

// span is an inclusive id range
type span struct{ lo, hi uint64 }

// rangeSet is a sorted list of disjoint, non-adjacent spans
type rangeSet []span

func newRangeSet(spans []span) rangeSet {
	slices.SortFunc(spans, func(a, b span) int {
		return cmp.Compare(a.lo, b.lo)
	})

	var set rangeSet
	for _, s := range spans {
		if n := len(set); n > 0 && s.lo <= set[n-1].hi+1 {
			set[n-1].hi = max(set[n-1].hi, s.hi)
			continue
		}
		set = append(set, s)
	}
	return set
}

func (r rangeSet) contains(id uint64) bool {
	i := sort.Search(len(r), func(i int) bool { return r[i].hi >= id })
	return i < len(r) && r[i].lo <= id
}

func (r rangeSet) size() uint64 {
	var total uint64
	for _, s := range r {
		total += s.hi - s.lo + 1
	}
	return total
}

func parseInventory(text string) (aoc.Tuple2[rangeSet, []uint64], error) {
	var zero aoc.Tuple2[rangeSet, []uint64]

	rangeList, idList, ok := strings.Cut(strings.ReplaceAll(text, "\r\n", "\n"), "\n\n")
	if !ok {
		return zero, errors.New("missing blank line between ranges and ids")
	}

	var spans []span
	for line := range aoc.Lines(rangeList) {
		start, end, ok := strings.Cut(line, "-")
		if !ok {
			return zero, fmt.Errorf("invalid range %q", line)
		}
		lo, err := strconv.ParseUint(start, 10, 64)
		if err != nil {
			return zero, err
		}
		hi, err := strconv.ParseUint(end, 10, 64)
		if err != nil {
			return zero, err
		}
		spans = append(spans, span{lo, hi})
	}

	var ids []uint64
	for line := range aoc.Lines(idList) {
		id, err := strconv.ParseUint(line, 10, 64)
		if err != nil {
			return zero, err
		}
		ids = append(ids, id)
	}

	return aoc.Pair(newRangeSet(spans), ids), nil
}

func countFresh(fresh rangeSet, ids []uint64) (int, error) {
	n := 0
	for _, id := range ids {
		if fresh.contains(id) {
			n++
		}
	}
	return n, nil
}

func countAllFresh(fresh rangeSet, _ []uint64) (uint64, error) {
	return fresh.size(), nil
}

func init() {
	p := aoc.ParseText(aoc.Day(5), parseInventory)
	aoc.Part2(p, aoc.One, countFresh)
	aoc.Part2(p, aoc.Two, countAllFresh)
}
