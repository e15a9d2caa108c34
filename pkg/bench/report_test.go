package bench

import (
	"bytes"
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/fluxehub/AdventOfCode2025/pkg/ui"
)

func sampleResults() []Result {
	return []Result{{
		Label:      "day01 part 1",
		Value:      "12",
		Samples:    100,
		Iterations: 50,
		Mean:       1210 * time.Microsecond,
		CILow:      1203 * time.Microsecond,
		CIHigh:     1218800 * time.Nanosecond,
	}}
}

func TestRender_Text(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Render(&buf, ui.FormatText, sampleResults()))
	assert.Equal(t,
		"day01 part 1         time:   [1.2030 ms 1.2100 ms 1.2188 ms]  value: 12\n",
		buf.String())
}

func TestRender_Terminal(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Render(&buf, ui.FormatTerminal, sampleResults()))
	assert.Contains(t, buf.String(), "day01 part 1")
	assert.Contains(t, buf.String(), "1.2100 ms")
}

func TestRender_JSON(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Render(&buf, ui.FormatJSON, sampleResults()))

	var decoded []map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))
	require.Len(t, decoded, 1)
	assert.Equal(t, "day01 part 1", decoded[0]["label"])
	assert.Equal(t, float64(1210000), decoded[0]["mean_ns"])
}

func TestRender_YAML(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Render(&buf, ui.FormatYAML, sampleResults()))

	var decoded []map[string]interface{}
	require.NoError(t, yaml.Unmarshal(buf.Bytes(), &decoded))
	require.Len(t, decoded, 1)
	assert.Equal(t, "12", decoded[0]["value"])
	assert.Equal(t, 100, decoded[0]["samples"])
}

func TestFormatDuration(t *testing.T) {
	tests := []struct {
		in   time.Duration
		want string
	}{
		{512, "512.0000 ns"},
		{1500, "1.5000 µs"},
		{2 * time.Millisecond, "2.0000 ms"},
		{1500 * time.Millisecond, "1.5000 s"},
	}
	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			assert.Equal(t, tt.want, FormatDuration(tt.in))
		})
	}
}
