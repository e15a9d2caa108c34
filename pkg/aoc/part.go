package aoc

import (
	"fmt"

	"github.com/fluxehub/AdventOfCode2025/pkg/errors"
	"github.com/fluxehub/AdventOfCode2025/pkg/registry"
)

// Part attaches a part taking the whole parsed value.
func Part[T, R any](p *Parser[T], n PartNumber, fn func(T) (R, error)) {
	register(p, n, fn)
}

// Part2 attaches a part whose two arguments bind the fields of a Tuple2.
func Part2[T1, T2, R any](p *Parser[Tuple2[T1, T2]], n PartNumber, fn func(T1, T2) (R, error)) {
	register(p, n, func(v Tuple2[T1, T2]) (R, error) {
		return fn(v.First, v.Second)
	})
}

// Part3 attaches a part whose three arguments bind the fields of a Tuple3.
func Part3[T1, T2, T3, R any](p *Parser[Tuple3[T1, T2, T3]], n PartNumber, fn func(T1, T2, T3) (R, error)) {
	register(p, n, func(v Tuple3[T1, T2, T3]) (R, error) {
		return fn(v.First, v.Second, v.Third)
	})
}

// register builds the run and bench adapters around one underlying call
// and submits both.
func register[T, R any](p *Parser[T], n PartNumber, call func(T) (R, error)) {
	if n != One && n != Two {
		panic(fmt.Sprintf("invalid part number %d", n))
	}
	day := p.module.day

	registry.Submit(p.module.catalog, registry.PartEntry{
		Day:  day,
		Part: int(n),
		Run: func() (string, error) {
			return solve(day, n, call, p.data.Get())
		},
	})

	registry.Submit(p.module.catalog, registry.BenchEntry{
		Day:  day,
		Part: int(n),
		Run: func(text string) (string, error) {
			v, err := p.Parse(text)
			if err != nil {
				return "", err
			}
			return solve(day, n, call, v)
		},
	})
}

func solve[T, R any](day int, n PartNumber, call func(T) (R, error), v T) (string, error) {
	result, err := call(v)
	if err != nil {
		return "", errors.Wrapf(err, errors.ErrPart, "day %d part %d failed", day, n).
			WithDetail("day", day).
			WithDetail("part", int(n))
	}
	return render(result), nil
}

// render converts a part result to its display text
func render(v any) string {
	return fmt.Sprint(v)
}
