package aoc

import (
	"iter"
	"slices"
	"strings"
)

// Lines yields the lines of text without their terminators. A trailing
// "\r" is stripped, a final newline does not produce an empty line, and
// empty text yields nothing. The sequence can be ranged over more than once.
func Lines(text string) iter.Seq[string] {
	return func(yield func(string) bool) {
		rest := text
		for len(rest) > 0 {
			line, tail, found := strings.Cut(rest, "\n")
			if !yield(strings.TrimSuffix(line, "\r")) || !found {
				return
			}
			rest = tail
		}
	}
}

// SplitLines collects Lines(text)
func SplitLines(text string) []string {
	return slices.Collect(Lines(text))
}
