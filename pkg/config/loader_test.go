package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fluxehub/AdventOfCode2025/pkg/errors"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load(LoadOptions{ProjectDir: t.TempDir(), SkipUserFile: true})
	require.NoError(t, err)

	assert.Equal(t, 2025, cfg.Year)
	assert.Equal(t, ".input", cfg.Input.Dir)
	assert.Equal(t, "https://adventofcode.com", cfg.Input.BaseURL)
	assert.Equal(t, ".session", cfg.Input.SessionFile)
	assert.Equal(t, 30*time.Second, cfg.Input.Timeout)
	assert.Equal(t, 3*time.Second, cfg.Bench.WarmUp)
	assert.Equal(t, 10*time.Second, cfg.Bench.Measurement)
	assert.Equal(t, 100, cfg.Bench.Samples)
	assert.InDelta(t, 0.95, cfg.Bench.Confidence, 1e-9)
	assert.Equal(t, "days", cfg.Days.Dir)
}

func TestLoad_Layers(t *testing.T) {
	dir := t.TempDir()
	project := `
year = 2024

[bench]
warm_up = "500ms"
samples = 20
`
	require.NoError(t, os.WriteFile(filepath.Join(dir, ProjectFileName), []byte(project), 0644))

	explicit := filepath.Join(dir, "other.toml")
	require.NoError(t, os.WriteFile(explicit, []byte("[bench]\nsamples = 30\n"), 0644))

	t.Setenv("AOC_BENCH_MEASUREMENT", "2s")
	t.Setenv("AOC_INPUT_SESSION", "abc123")

	cfg, err := Load(LoadOptions{
		ProjectDir:   dir,
		ConfigFile:   explicit,
		SkipUserFile: true,
		Overrides:    map[string]interface{}{"bench.confidence": 0.99},
	})
	require.NoError(t, err)

	assert.Equal(t, 2024, cfg.Year)
	assert.Equal(t, 500*time.Millisecond, cfg.Bench.WarmUp)
	assert.Equal(t, 30, cfg.Bench.Samples)
	assert.Equal(t, 2*time.Second, cfg.Bench.Measurement)
	assert.Equal(t, "abc123", cfg.Input.Session)
	assert.InDelta(t, 0.99, cfg.Bench.Confidence, 1e-9)
}

func TestLoad_UserFile(t *testing.T) {
	home := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(home, "aoc"), 0755))
	require.NoError(t, os.WriteFile(filepath.Join(home, UserFileName), []byte("year = 2023\n"), 0644))
	t.Setenv("XDG_CONFIG_HOME", home)
	reloadXDG(t)

	cfg, err := Load(LoadOptions{ProjectDir: t.TempDir()})
	require.NoError(t, err)
	assert.Equal(t, 2023, cfg.Year)
}

func TestLoad_MissingExplicitFile(t *testing.T) {
	_, err := Load(LoadOptions{
		ProjectDir:   t.TempDir(),
		ConfigFile:   filepath.Join(t.TempDir(), "nope.toml"),
		SkipUserFile: true,
	})
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrConfigLoad))
}

func TestLoad_MalformedFile(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, ProjectFileName), []byte("year = [unterminated"), 0644))

	_, err := Load(LoadOptions{ProjectDir: dir, SkipUserFile: true})
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrConfigLoad))
}

func TestLoad_InvalidValues(t *testing.T) {
	_, err := Load(LoadOptions{
		ProjectDir:   t.TempDir(),
		SkipUserFile: true,
		Overrides:    map[string]interface{}{"bench.samples": 1},
	})
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrConfigValid))
}

func TestEnvKey(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"AOC_YEAR", "year"},
		{"AOC_BENCH_SAMPLES", "bench.samples"},
		{"AOC_BENCH_WARM_UP", "bench.warm_up"},
		{"AOC_INPUT_BASE_URL", "input.base_url"},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, envKey(tt.in))
		})
	}
}
