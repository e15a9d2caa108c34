package bench

import (
	"context"
	"fmt"
	"math"
	"time"

	"github.com/montanaflynn/stats"

	"github.com/fluxehub/AdventOfCode2025/pkg/errors"
	"github.com/fluxehub/AdventOfCode2025/pkg/logging"
)

// Func is the bench adapter signature: parse and solve from raw text
type Func func(text string) (string, error)

// Config controls one benchmark run
type Config struct {
	WarmUp      time.Duration
	Measurement time.Duration
	Samples     int
	Confidence  float64
}

// DefaultConfig mirrors the embedded configuration defaults
func DefaultConfig() Config {
	return Config{
		WarmUp:      3 * time.Second,
		Measurement: 10 * time.Second,
		Samples:     100,
		Confidence:  0.95,
	}
}

// Result summarises the samples of one bench adapter
type Result struct {
	Label      string        `json:"label" yaml:"label"`
	Value      string        `json:"value" yaml:"value"`
	Samples    int           `json:"samples" yaml:"samples"`
	Iterations int           `json:"iterations" yaml:"iterations"`
	Mean       time.Duration `json:"mean_ns" yaml:"mean"`
	StdDev     time.Duration `json:"stddev_ns" yaml:"stddev"`
	Median     time.Duration `json:"median_ns" yaml:"median"`
	Min        time.Duration `json:"min_ns" yaml:"min"`
	Max        time.Duration `json:"max_ns" yaml:"max"`
	CILow      time.Duration `json:"ci_low_ns" yaml:"ci_low"`
	CIHigh     time.Duration `json:"ci_high_ns" yaml:"ci_high"`
}

// Label formats the report label of a day's part
func Label(day, part int) string {
	return fmt.Sprintf("day%02d part %d", day, part)
}

// Harness runs benchmarks with a fixed configuration
type Harness struct {
	cfg Config
	now func() time.Time
}

// New creates a harness. The configuration must have at least two samples
// and a positive measurement time.
func New(cfg Config) (*Harness, error) {
	if cfg.Samples < 2 {
		return nil, errors.Newf(errors.ErrInvalidInput, "bench needs at least 2 samples, got %d", cfg.Samples)
	}
	if cfg.Measurement <= 0 {
		return nil, errors.New(errors.ErrInvalidInput, "bench measurement time must be positive")
	}
	if cfg.Confidence <= 0 || cfg.Confidence >= 1 {
		return nil, errors.Newf(errors.ErrInvalidInput, "bench confidence must be in (0, 1), got %g", cfg.Confidence)
	}
	return &Harness{cfg: cfg, now: time.Now}, nil
}

// Run benchmarks fn against text. Any adapter error aborts the run, as does
// an adapter that renders different values for the same input.
func (h *Harness) Run(ctx context.Context, label, text string, fn Func) (*Result, error) {
	logger := logging.GetLogger("bench").With().Str("label", label).Logger()

	value, estimate, err := h.warmUp(ctx, label, text, fn)
	if err != nil {
		if errors.IsErrorCode(err, errors.ErrInvariant) || ctx.Err() != nil {
			return nil, err
		}
		return nil, errors.Wrapf(err, errors.ErrBench, "%s failed", label)
	}

	iters := h.iterations(estimate)
	logger.Debug().
		Dur("estimate", estimate).
		Int("iterations", iters).
		Int("samples", h.cfg.Samples).
		Msg("Warm-up complete")

	samples := make(stats.Float64Data, 0, h.cfg.Samples)
	for i := 0; i < h.cfg.Samples; i++ {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		start := h.now()
		for j := 0; j < iters; j++ {
			got, err := fn(text)
			if err != nil {
				return nil, errors.Wrapf(err, errors.ErrBench, "%s failed", label)
			}
			if got != value {
				return nil, impure(label, value, got)
			}
		}
		elapsed := h.now().Sub(start)
		samples = append(samples, float64(elapsed)/float64(iters))
	}

	result, err := summarise(samples, h.cfg.Confidence)
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrBench, "%s statistics", label)
	}
	result.Label = label
	result.Value = value
	result.Iterations = iters

	logger.Info().Dur("mean", result.Mean).Msg("Benchmark complete")
	return result, nil
}

// warmUp runs fn until the warm-up time elapses, at least once, and returns
// the rendered value with the per-iteration cost estimate.
func (h *Harness) warmUp(ctx context.Context, label, text string, fn Func) (string, time.Duration, error) {
	value, err := fn(text)
	if err != nil {
		return "", 0, err
	}

	count := 1
	start := h.now()
	elapsed := time.Duration(0)
	for elapsed < h.cfg.WarmUp {
		if err := ctx.Err(); err != nil {
			return "", 0, err
		}
		got, err := fn(text)
		if err != nil {
			return "", 0, err
		}
		if got != value {
			return "", 0, impure(label, value, got)
		}
		count++
		elapsed = h.now().Sub(start)
	}

	if count == 1 {
		// Nothing was timed; measure one more call.
		start = h.now()
		if _, err := fn(text); err != nil {
			return "", 0, err
		}
		return value, h.now().Sub(start), nil
	}
	return value, elapsed / time.Duration(count-1), nil
}

// iterations sizes each sample so that all samples together take about the
// measurement time.
func (h *Harness) iterations(estimate time.Duration) int {
	if estimate <= 0 {
		estimate = time.Nanosecond
	}
	perSample := h.cfg.Measurement / time.Duration(h.cfg.Samples)
	return max(1, int(perSample/estimate))
}

func impure(label, first, second string) error {
	return errors.Newf(errors.ErrInvariant, "%s: bench adapter rendered %q then %q for the same input", label, first, second)
}

func summarise(samples stats.Float64Data, confidence float64) (*Result, error) {
	mean, err := stats.Mean(samples)
	if err != nil {
		return nil, err
	}
	stddev, err := stats.StandardDeviationSample(samples)
	if err != nil {
		return nil, err
	}
	median, err := stats.Median(samples)
	if err != nil {
		return nil, err
	}
	lo, err := stats.Min(samples)
	if err != nil {
		return nil, err
	}
	hi, err := stats.Max(samples)
	if err != nil {
		return nil, err
	}

	low, high := confidenceInterval(mean, stddev, len(samples), confidence)
	return &Result{
		Samples: len(samples),
		Mean:    time.Duration(mean),
		StdDev:  time.Duration(stddev),
		Median:  time.Duration(median),
		Min:     time.Duration(lo),
		Max:     time.Duration(hi),
		CILow:   time.Duration(low),
		CIHigh:  time.Duration(high),
	}, nil
}

// confidenceInterval is the two-sided normal-approximation interval for the
// mean of n samples.
func confidenceInterval(mean, stddev float64, n int, confidence float64) (float64, float64) {
	z := stats.NormPpf(1-(1-confidence)/2, 0, 1)
	margin := z * stddev / math.Sqrt(float64(n))
	return max(0, mean-margin), mean + margin
}
