package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerate_RoundTrip(t *testing.T) {
	dir := t.TempDir()
	cfg, err := Load(LoadOptions{
		ProjectDir:   dir,
		SkipUserFile: true,
		Overrides:    map[string]interface{}{"bench.samples": 42, "input.session": "secret"},
	})
	require.NoError(t, err)

	out, err := Generate(cfg)
	require.NoError(t, err)
	assert.NotContains(t, string(out), "secret")
	assert.Contains(t, string(out), "warm_up = '3s'")

	require.NoError(t, os.WriteFile(filepath.Join(dir, ProjectFileName), out, 0644))
	reloaded, err := Load(LoadOptions{ProjectDir: dir, SkipUserFile: true})
	require.NoError(t, err)

	assert.Equal(t, 42, reloaded.Bench.Samples)
	assert.Equal(t, cfg.Bench.WarmUp, reloaded.Bench.WarmUp)
	assert.Equal(t, cfg.Input.Timeout, reloaded.Input.Timeout)
	assert.Empty(t, reloaded.Input.Session)
}
