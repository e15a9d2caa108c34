package aoc

import (
	"fmt"
	"iter"

	"github.com/fluxehub/AdventOfCode2025/pkg/errors"
	"github.com/fluxehub/AdventOfCode2025/pkg/registry"
	"github.com/fluxehub/AdventOfCode2025/pkg/slot"
)

// Parser is the canonical parse stage of a day. Parts are attached to it.
type Parser[T any] struct {
	module *Module
	parse  func(text string) (T, error)
	data   slot.Slot[T]
}

// ParseText declares a parse stage applied to the whole input.
func ParseText[T any](m *Module, fn func(text string) (T, error)) *Parser[T] {
	return newParser(m, fn)
}

// ParseLine declares a parse stage applied to every line. The parsed value
// holds one element per line in input order; the first failing line stops
// parsing.
func ParseLine[T any](m *Module, fn func(line string) (T, error)) *Parser[[]T] {
	return newParser(m, func(text string) ([]T, error) {
		out := []T{}
		n := 0
		for line := range Lines(text) {
			n++
			v, err := fn(line)
			if err != nil {
				return nil, fmt.Errorf("line %d: %w", n, err)
			}
			out = append(out, v)
		}
		return out, nil
	})
}

// ParseLines declares a parse stage receiving the sequence of input lines.
func ParseLines[T any](m *Module, fn func(lines iter.Seq[string]) (T, error)) *Parser[T] {
	return newParser(m, func(text string) (T, error) {
		return fn(Lines(text))
	})
}

// Raw declares a day without a parse stage; parts receive the raw text.
func Raw(m *Module) *Parser[string] {
	return newParser(m, func(text string) (string, error) {
		return text, nil
	})
}

func newParser[T any](m *Module, parse func(string) (T, error)) *Parser[T] {
	m.claimParser()

	p := &Parser[T]{module: m, parse: parse}
	registry.Submit(m.catalog, registry.ParseEntry{
		Day:      m.day,
		Populate: p.populate,
	})
	return p
}

// Parse runs the canonical parse function. It is pure: it never touches
// the slot and returns the same value for the same text.
func (p *Parser[T]) Parse(text string) (T, error) {
	v, err := p.parse(text)
	if err != nil {
		var zero T
		return zero, parseError(p.module.day, err)
	}
	return v, nil
}

// populate parses text and performs the one write into the slot.
func (p *Parser[T]) populate(text string) error {
	v, err := p.Parse(text)
	if err != nil {
		return err
	}
	p.data.Set(v)
	return nil
}

func parseError(day int, err error) error {
	return errors.Wrap(err, errors.ErrParse, "unable to parse input").
		WithDetail("day", day)
}
