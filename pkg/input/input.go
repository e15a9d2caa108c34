package input

import (
	"context"
)

// Source selects which input text a day runs against
type Source int

const (
	// Real is the user's puzzle input, fetched and cached on first use
	Real Source = iota
	// Example is a locally stored example
	Example
)

func (s Source) String() string {
	if s == Example {
		return "example"
	}
	return "real"
}

// Provider returns raw input text for a day
type Provider interface {
	Acquire(ctx context.Context, day int, source Source) (string, error)
}

// Static is a Provider serving fixed texts, keyed by day
type Static map[int]string

// Acquire implements Provider. The source is ignored.
func (s Static) Acquire(_ context.Context, day int, _ Source) (string, error) {
	text, ok := s[day]
	if !ok {
		return "", errNoInput(day)
	}
	return text, nil
}
