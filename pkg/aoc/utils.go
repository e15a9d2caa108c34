package aoc

import (
	"fmt"
)

// Transpose swaps rows and columns. All rows must have the same length.
func Transpose[T any](rows [][]T) ([][]T, error) {
	if len(rows) == 0 {
		return nil, nil
	}

	width := len(rows[0])
	out := make([][]T, width)
	for col := range out {
		out[col] = make([]T, len(rows))
	}
	for r, row := range rows {
		if len(row) != width {
			return nil, fmt.Errorf("row %d has length %d, want %d", r, len(row), width)
		}
		for c, v := range row {
			out[c][r] = v
		}
	}
	return out, nil
}
