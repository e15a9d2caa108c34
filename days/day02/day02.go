// Package day02 solves day 2: invalid product ids made of repeated digits.
package day02

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/fluxehub/AdventOfCode2025/pkg/aoc"
)

// parseIDs expands "11-22,95-115" into every id of every range
func parseIDs(text string) ([]uint64, error) {
	var ids []uint64
	for _, r := range strings.Split(text, ",") {
		start, end, ok := strings.Cut(r, "-")
		if !ok {
			return nil, fmt.Errorf("missing separator in %q", r)
		}
		lo, err := strconv.ParseUint(strings.TrimSpace(start), 10, 64)
		if err != nil {
			return nil, err
		}
		hi, err := strconv.ParseUint(strings.TrimSpace(end), 10, 64)
		if err != nil {
			return nil, err
		}
		for id := lo; id <= hi; id++ {
			ids = append(ids, id)
		}
	}
	return ids, nil
}

func isDoubled(id uint64) bool {
	s := strconv.FormatUint(id, 10)
	return s[:len(s)/2] == s[len(s)/2:]
}

func isRepeating(id uint64) bool {
	s := strconv.FormatUint(id, 10)
	for size := 1; size <= len(s)/2; size++ {
		if strings.Repeat(s[:size], len(s)/size) == s {
			return true
		}
	}
	return false
}

func sumWhere(ids []uint64, pred func(uint64) bool) uint64 {
	var total uint64
	for _, id := range ids {
		if pred(id) {
			total += id
		}
	}
	return total
}

func sumDoubled(ids []uint64) (uint64, error) {
	return sumWhere(ids, isDoubled), nil
}

func sumRepeating(ids []uint64) (uint64, error) {
	return sumWhere(ids, isRepeating), nil
}

func init() {
	p := aoc.ParseText(aoc.Day(2), parseIDs)
	aoc.Part(p, aoc.One, sumDoubled)
	aoc.Part(p, aoc.Two, sumRepeating)
}
