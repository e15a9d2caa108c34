package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/fluxehub/AdventOfCode2025/pkg/errors"
)

func validConfig() *Config {
	return &Config{
		Year:  2025,
		Input: InputConfig{Dir: ".input"},
		Bench: BenchConfig{
			WarmUp:      time.Second,
			Measurement: time.Second,
			Samples:     10,
			Confidence:  0.95,
		},
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
		valid  bool
	}{
		{"valid", func(*Config) {}, true},
		{"zero warm up", func(c *Config) { c.Bench.WarmUp = 0 }, true},
		{"early year", func(c *Config) { c.Year = 2014 }, false},
		{"empty input dir", func(c *Config) { c.Input.Dir = "" }, false},
		{"negative warm up", func(c *Config) { c.Bench.WarmUp = -time.Second }, false},
		{"zero measurement", func(c *Config) { c.Bench.Measurement = 0 }, false},
		{"one sample", func(c *Config) { c.Bench.Samples = 1 }, false},
		{"confidence one", func(c *Config) { c.Bench.Confidence = 1 }, false},
		{"confidence zero", func(c *Config) { c.Bench.Confidence = 0 }, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validConfig()
			tt.mutate(cfg)
			err := cfg.Validate()
			if tt.valid {
				assert.NoError(t, err)
				return
			}
			assert.True(t, errors.IsErrorCode(err, errors.ErrConfigValid), "got %v", err)
		})
	}
}
