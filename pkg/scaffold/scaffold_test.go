package scaffold

import (
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fluxehub/AdventOfCode2025/pkg/errors"
)

const testModule = "example.com/puzzles"

func newProject(t *testing.T) afero.Fs {
	t.Helper()
	fs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fs, "/proj/go.mod", []byte("module "+testModule+"\n\ngo 1.23.0\n"), 0644))
	require.NoError(t, fs.MkdirAll("/proj/days", 0755))
	return fs
}

func TestParseDay(t *testing.T) {
	tests := []struct {
		in      string
		want    int
		wantErr bool
	}{
		{in: "7", want: 7},
		{in: "day7", want: 7},
		{in: "day07", want: 7},
		{in: "Day11", want: 11},
		{in: "25", want: 25},
		{in: "0", wantErr: true},
		{in: "26", wantErr: true},
		{in: "dayx", wantErr: true},
		{in: "", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseDay(tt.in)
			if tt.wantErr {
				assert.True(t, errors.IsErrorCode(err, errors.ErrInvalidInput))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestName(t *testing.T) {
	assert.Equal(t, "day03", Name(3))
	assert.Equal(t, "day12", Name(12))
}

func TestGenerate(t *testing.T) {
	fs := newProject(t)
	require.NoError(t, afero.WriteFile(fs, "/proj/days/day11/day11.go", []byte("package day11\n"), 0644))
	require.NoError(t, afero.WriteFile(fs, "/proj/days/day02/day02.go", []byte("package day02\n"), 0644))
	require.NoError(t, fs.MkdirAll("/proj/days/day05", 0755))
	require.NoError(t, fs.MkdirAll("/proj/days/notes", 0755))

	days, err := Generate(fs, "/proj")
	require.NoError(t, err)
	assert.Equal(t, []int{2, 11}, days)

	src, err := afero.ReadFile(fs, "/proj/days/days.go")
	require.NoError(t, err)
	assert.Equal(t, `// Code generated by aocgen. DO NOT EDIT.

// Package days links every day module into the aoc binary.
package days

import (
	_ "example.com/puzzles/days/day02"
	_ "example.com/puzzles/days/day11"
)
`, string(src))
}

func TestGenerate_NoDays(t *testing.T) {
	fs := newProject(t)

	days, err := Generate(fs, "/proj")
	require.NoError(t, err)
	assert.Empty(t, days)

	src, err := afero.ReadFile(fs, "/proj/days/days.go")
	require.NoError(t, err)
	assert.Contains(t, string(src), "package days")
	assert.NotContains(t, string(src), "import")
}

func TestGenerate_MissingGoMod(t *testing.T) {
	_, err := Generate(afero.NewMemMapFs(), "/nowhere")
	assert.True(t, errors.IsErrorCode(err, errors.ErrNotFound))
}

func TestNewDay(t *testing.T) {
	fs := newProject(t)

	path, err := NewDay(fs, "/proj", 7)
	require.NoError(t, err)
	assert.Equal(t, "/proj/days/day07/day07.go", path)

	src, err := afero.ReadFile(fs, path)
	require.NoError(t, err)
	assert.Contains(t, string(src), "package day07")
	assert.Contains(t, string(src), "aoc.Raw(aoc.Day(7))")

	bootstrap, err := afero.ReadFile(fs, "/proj/days/days.go")
	require.NoError(t, err)
	assert.Contains(t, string(bootstrap), `_ "example.com/puzzles/days/day07"`)

	_, err = NewDay(fs, "/proj", 7)
	assert.True(t, errors.IsErrorCode(err, errors.ErrAlreadyExists))
}
