// Package day03 solves day 3: picking the largest joltage from battery banks.
package day03

import (
	"fmt"
	"strings"

	"github.com/fluxehub/AdventOfCode2025/pkg/aoc"
)

func parseBank(line string) ([]int, error) {
	line = strings.TrimSpace(line)
	bank := make([]int, 0, len(line))
	for _, c := range line {
		if c < '0' || c > '9' {
			return nil, fmt.Errorf("invalid digit %q", c)
		}
		bank = append(bank, int(c-'0'))
	}
	return bank, nil
}

// maxJoltage picks digits batteries, in order, forming the largest number.
// Each digit is the first maximum that still leaves room for the rest.
func maxJoltage(bank []int, digits int) uint64 {
	var joltage uint64
	start := 0
	for remaining := digits - 1; remaining >= 0; remaining-- {
		best := start
		for i := start; i < len(bank)-remaining; i++ {
			if bank[i] > bank[best] {
				best = i
			}
		}
		joltage = joltage*10 + uint64(bank[best])
		start = best + 1
	}
	return joltage
}

func totalJoltage(digits int) func([][]int) (uint64, error) {
	return func(banks [][]int) (uint64, error) {
		var total uint64
		for i, bank := range banks {
			if len(bank) < digits {
				return 0, fmt.Errorf("bank %d has %d batteries, need %d", i+1, len(bank), digits)
			}
			total += maxJoltage(bank, digits)
		}
		return total, nil
	}
}

func init() {
	p := aoc.ParseLine(aoc.Day(3), parseBank)
	aoc.Part(p, aoc.One, totalJoltage(2))
	aoc.Part(p, aoc.Two, totalJoltage(12))
}
