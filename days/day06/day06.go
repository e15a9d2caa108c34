// Package day06 solves day 6: cephalopod math worksheets.
package day06

import (
	"fmt"
	"strconv"
	"strings"
	"unicode"

	"github.com/fluxehub/AdventOfCode2025/pkg/aoc"
)

type operator func(a, b uint64) uint64

func add(a, b uint64) uint64 { return a + b }
func mul(a, b uint64) uint64 { return a * b }

func parseOperator(s string) (operator, error) {
	switch s {
	case "+":
		return add, nil
	case "*":
		return mul, nil
	default:
		return nil, fmt.Errorf("invalid operator %q", s)
	}
}

func fold(values []uint64, op operator) uint64 {
	acc := values[0]
	for _, v := range values[1:] {
		acc = op(acc, v)
	}
	return acc
}

// sumColumns reads each problem top to bottom in whitespace separated
// columns, with the operator on the last line.
func sumColumns(text string) (uint64, error) {
	var rows [][]uint64
	var ops []operator

	for line := range aoc.Lines(text) {
		fields := strings.Fields(line)
		if len(fields) == 0 {
			continue
		}
		if !unicode.IsDigit(rune(fields[0][0])) {
			ops = ops[:0]
			for _, f := range fields {
				op, err := parseOperator(f)
				if err != nil {
					return 0, err
				}
				ops = append(ops, op)
			}
			continue
		}

		row := make([]uint64, 0, len(fields))
		for _, f := range fields {
			v, err := strconv.ParseUint(f, 10, 64)
			if err != nil {
				return 0, err
			}
			row = append(row, v)
		}
		rows = append(rows, row)
	}

	cols, err := aoc.Transpose(rows)
	if err != nil {
		return 0, err
	}
	if len(cols) != len(ops) {
		return 0, fmt.Errorf("%d columns but %d operators", len(cols), len(ops))
	}

	var total uint64
	for i, col := range cols {
		total += fold(col, ops[i])
	}
	return total, nil
}

// sumCephalopod reads numbers column by column, right to left within a
// problem. Problems are separated by blank columns; the operator sits under
// the first column of each problem.
func sumCephalopod(text string) (uint64, error) {
	lines := aoc.SplitLines(text)
	width := 0
	for _, line := range lines {
		width = max(width, len(line))
	}

	grid := make([][]byte, len(lines))
	for i, line := range lines {
		grid[i] = []byte(line + strings.Repeat(" ", width-len(line)))
	}
	rotated, err := aoc.Transpose(grid)
	if err != nil {
		return 0, err
	}

	var total uint64
	var problem []string
	flush := func() error {
		if len(problem) == 0 {
			return nil
		}
		v, err := solveProblem(problem)
		if err != nil {
			return err
		}
		total += v
		problem = problem[:0]
		return nil
	}

	for _, col := range rotated {
		s := string(col)
		if strings.TrimSpace(s) == "" {
			if err := flush(); err != nil {
				return 0, err
			}
			continue
		}
		problem = append(problem, s)
	}
	if err := flush(); err != nil {
		return 0, err
	}
	return total, nil
}

func solveProblem(columns []string) (uint64, error) {
	first := columns[0]
	op, err := parseOperator(first[len(first)-1:])
	if err != nil {
		return 0, err
	}

	values := make([]uint64, 0, len(columns))
	for i, col := range columns {
		if i == 0 {
			col = col[:len(col)-1]
		}
		v, err := strconv.ParseUint(strings.TrimSpace(col), 10, 64)
		if err != nil {
			return 0, err
		}
		values = append(values, v)
	}
	return fold(values, op), nil
}

func init() {
	p := aoc.Raw(aoc.Day(6))
	aoc.Part(p, aoc.One, sumColumns)
	aoc.Part(p, aoc.Two, sumCephalopod)
}
