// Package day01 solves day 1: a combination dial turned left and right.
package day01

import (
	"fmt"
	"strconv"

	"github.com/fluxehub/AdventOfCode2025/pkg/aoc"
)

const (
	dialSize  = 100
	dialStart = 50
)

// parseStep turns "L68" into -68 and "R48" into 48
func parseStep(line string) (int, error) {
	if len(line) < 2 {
		return 0, fmt.Errorf("invalid rotation %q", line)
	}
	amount, err := strconv.Atoi(line[1:])
	if err != nil {
		return 0, err
	}
	switch line[0] {
	case 'L':
		return -amount, nil
	case 'R':
		return amount, nil
	default:
		return 0, fmt.Errorf("invalid direction in %q", line)
	}
}

func mod(a, m int) int {
	return ((a % m) + m) % m
}

// countZeros counts rotations that leave the dial on zero
func countZeros(steps []int) (int, error) {
	dial, zeros := dialStart, 0
	for _, step := range steps {
		dial = mod(dial+step, dialSize)
		if dial == 0 {
			zeros++
		}
	}
	return zeros, nil
}

// countPassesThroughZero counts every click that lands on zero, including
// those in the middle of a rotation.
func countPassesThroughZero(steps []int) (int, error) {
	dial, zeros := dialStart, 0
	for _, step := range steps {
		toZero := dial
		switch {
		case dial == 0:
			toZero = dialSize
		case step > 0:
			toZero = dialSize - dial
		}

		if rest := abs(step) - toZero; rest >= 0 {
			zeros += 1 + rest/dialSize
		}
		dial = mod(dial+step, dialSize)
	}
	return zeros, nil
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}

func init() {
	p := aoc.ParseLine(aoc.Day(1), parseStep)
	aoc.Part(p, aoc.One, countZeros)
	aoc.Part(p, aoc.Two, countPassesThroughZero)
}
