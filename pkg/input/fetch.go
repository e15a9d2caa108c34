package input

import (
	"context"
	"net/http"
	"os"
	"strconv"
	"strings"
	"time"

	"resty.dev/v3"

	"github.com/fluxehub/AdventOfCode2025/pkg/errors"
)

// FetchConfig configures the remote fetcher
type FetchConfig struct {
	BaseURL   string
	Year      int
	Session   string
	Timeout   time.Duration
	UserAgent string
}

// HTTPFetcher downloads puzzle input with a session cookie
type HTTPFetcher struct {
	client  *resty.Client
	year    int
	session string
}

// NewHTTPFetcher creates a fetcher. The session token is checked lazily so
// runs against cached or example input never need one.
func NewHTTPFetcher(cfg FetchConfig) *HTTPFetcher {
	client := resty.New().
		SetBaseURL(strings.TrimSuffix(cfg.BaseURL, "/")).
		SetTimeout(cfg.Timeout)
	if cfg.UserAgent != "" {
		client.SetHeader("User-Agent", cfg.UserAgent)
	}
	return &HTTPFetcher{client: client, year: cfg.Year, session: cfg.Session}
}

// Close releases the underlying client
func (f *HTTPFetcher) Close() error {
	return f.client.Close()
}

// Fetch implements Fetcher
func (f *HTTPFetcher) Fetch(ctx context.Context, day int) (string, error) {
	if f.session == "" {
		return "", errors.New(errors.ErrConfigValid, "no session token configured; set input.session, AOC_INPUT_SESSION or the session file")
	}

	resp, err := f.client.R().
		SetContext(ctx).
		SetCookie(&http.Cookie{Name: "session", Value: f.session}).
		SetPathParams(map[string]string{
			"year": strconv.Itoa(f.year),
			"day":  strconv.Itoa(day),
		}).
		Get("/{year}/day/{day}/input")
	if err != nil {
		return "", errors.Wrapf(err, errors.ErrInput, "failed to fetch input for day %d", day)
	}
	if resp.StatusCode() >= http.StatusBadRequest {
		return "", errors.Newf(errors.ErrInput, "fetching input for day %d returned %s", day, resp.Status()).
			WithDetail("status", resp.StatusCode())
	}
	return resp.String(), nil
}

// ReadSession returns the token in path, trimmed. A missing file yields an
// empty token.
func ReadSession(path string) (string, error) {
	if path == "" {
		return "", nil
	}
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return "", nil
	}
	if err != nil {
		return "", errors.Wrapf(err, errors.ErrConfigLoad, "failed to read session file %s", path)
	}
	return strings.TrimSpace(string(data)), nil
}
