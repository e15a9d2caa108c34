package config

import (
	"time"
)

// Config is the fully resolved runner configuration
type Config struct {
	Year  int         `koanf:"year"`
	Input InputConfig `koanf:"input"`
	Bench BenchConfig `koanf:"bench"`
	Days  DaysConfig  `koanf:"days"`
}

// InputConfig controls where puzzle input is read, cached and fetched from
type InputConfig struct {
	Dir         string        `koanf:"dir"`
	BaseURL     string        `koanf:"base_url"`
	Session     string        `koanf:"session"`
	SessionFile string        `koanf:"session_file"`
	Timeout     time.Duration `koanf:"timeout"`
	UserAgent   string        `koanf:"user_agent"`
}

// BenchConfig controls the benchmark harness
type BenchConfig struct {
	WarmUp      time.Duration `koanf:"warm_up"`
	Measurement time.Duration `koanf:"measurement"`
	Samples     int           `koanf:"samples"`
	Confidence  float64       `koanf:"confidence"`
	Format      string        `koanf:"format"`
}

// DaysConfig locates the day module tree
type DaysConfig struct {
	Dir string `koanf:"dir"`
}

// ToMap returns the configuration keyed the way the files are, with
// durations rendered as strings so the result round-trips through Load.
func (c *Config) ToMap() map[string]interface{} {
	return map[string]interface{}{
		"year": c.Year,
		"input": map[string]interface{}{
			"dir":          c.Input.Dir,
			"base_url":     c.Input.BaseURL,
			"session":      c.Input.Session,
			"session_file": c.Input.SessionFile,
			"timeout":      c.Input.Timeout.String(),
			"user_agent":   c.Input.UserAgent,
		},
		"bench": map[string]interface{}{
			"warm_up":     c.Bench.WarmUp.String(),
			"measurement": c.Bench.Measurement.String(),
			"samples":     c.Bench.Samples,
			"confidence":  c.Bench.Confidence,
			"format":      c.Bench.Format,
		},
		"days": map[string]interface{}{
			"dir": c.Days.Dir,
		},
	}
}
