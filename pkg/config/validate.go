package config

import (
	"github.com/fluxehub/AdventOfCode2025/pkg/errors"
)

// Validate checks values that would make the runner misbehave
func (c *Config) Validate() error {
	switch {
	case c.Year < 2015:
		return errors.Newf(errors.ErrConfigValid, "year %d is before the first event", c.Year)
	case c.Input.Dir == "":
		return errors.New(errors.ErrConfigValid, "input.dir must not be empty")
	case c.Bench.WarmUp < 0:
		return errors.New(errors.ErrConfigValid, "bench.warm_up must not be negative")
	case c.Bench.Measurement <= 0:
		return errors.New(errors.ErrConfigValid, "bench.measurement must be positive")
	case c.Bench.Samples < 2:
		return errors.Newf(errors.ErrConfigValid, "bench.samples must be at least 2, got %d", c.Bench.Samples)
	case c.Bench.Confidence <= 0 || c.Bench.Confidence >= 1:
		return errors.Newf(errors.ErrConfigValid, "bench.confidence must be in (0, 1), got %g", c.Bench.Confidence)
	}
	return nil
}
