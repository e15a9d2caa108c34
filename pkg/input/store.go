package input

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/afero"

	"github.com/fluxehub/AdventOfCode2025/pkg/errors"
	"github.com/fluxehub/AdventOfCode2025/pkg/logging"
)

// Fetcher downloads the real input of a day
type Fetcher interface {
	Fetch(ctx context.Context, day int) (string, error)
}

// Store is the file-backed Provider
type Store struct {
	fs      afero.Fs
	dir     string
	fetcher Fetcher
}

// NewStore creates a store rooted at dir. fetcher may be nil, in which case
// uncached real input is an error.
func NewStore(fs afero.Fs, dir string, fetcher Fetcher) *Store {
	return &Store{fs: fs, dir: dir, fetcher: fetcher}
}

// ExamplePath returns the path of a day's example file
func (s *Store) ExamplePath(day int) string {
	return filepath.Join(s.dir, fmt.Sprintf("day%d_example", day))
}

// CachePath returns the path of a day's cached real input
func (s *Store) CachePath(day int) string {
	return filepath.Join(s.dir, fmt.Sprintf("day%d", day))
}

// Acquire implements Provider
func (s *Store) Acquire(ctx context.Context, day int, source Source) (string, error) {
	logger := logging.GetLogger("input").With().Int("day", day).Str("source", source.String()).Logger()

	if source == Example {
		text, err := afero.ReadFile(s.fs, s.ExamplePath(day))
		if err != nil {
			return "", errors.Wrapf(err, errors.ErrInput, "no example input for day %d", day).
				WithDetail("path", s.ExamplePath(day))
		}
		logger.Debug().Int("bytes", len(text)).Msg("Read example input")
		return string(text), nil
	}

	text, err := afero.ReadFile(s.fs, s.CachePath(day))
	if err == nil {
		logger.Debug().Int("bytes", len(text)).Msg("Read cached input")
		return string(text), nil
	}
	if !os.IsNotExist(err) {
		return "", errors.Wrapf(err, errors.ErrInput, "failed to read cached input for day %d", day)
	}

	if s.fetcher == nil {
		return "", errNoInput(day)
	}
	logger.Info().Msg("Fetching input")
	fetched, err := s.fetcher.Fetch(ctx, day)
	if err != nil {
		return "", err
	}

	if err := s.write(s.CachePath(day), strings.NewReader(fetched)); err != nil {
		return "", err
	}
	logger.Debug().Str("path", s.CachePath(day)).Msg("Cached input")
	return fetched, nil
}

// HasExample reports whether a day's example file exists
func (s *Store) HasExample(day int) bool {
	ok, err := afero.Exists(s.fs, s.ExamplePath(day))
	return err == nil && ok
}

// SaveExample stores everything read from r as a day's example input
func (s *Store) SaveExample(day int, r io.Reader) error {
	return s.write(s.ExamplePath(day), r)
}

func (s *Store) write(path string, r io.Reader) error {
	if err := s.fs.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return errors.Wrapf(err, errors.ErrInput, "failed to create %s", filepath.Dir(path))
	}
	if err := afero.WriteReader(s.fs, path, r); err != nil {
		return errors.Wrapf(err, errors.ErrInput, "failed to write %s", path)
	}
	return nil
}

func errNoInput(day int) error {
	return errors.Newf(errors.ErrInput, "no input available for day %d", day)
}
