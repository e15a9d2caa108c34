package engine

import (
	"cmp"
	"context"
	"fmt"
	"io"
	"os"
	"slices"

	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"

	"github.com/fluxehub/AdventOfCode2025/pkg/bench"
	"github.com/fluxehub/AdventOfCode2025/pkg/errors"
	"github.com/fluxehub/AdventOfCode2025/pkg/input"
	"github.com/fluxehub/AdventOfCode2025/pkg/logging"
	"github.com/fluxehub/AdventOfCode2025/pkg/registry"
	"github.com/fluxehub/AdventOfCode2025/pkg/ui"
)

// Mode selects what the engine does with the input
type Mode int

const (
	// ModeRun solves every part once and prints the answers
	ModeRun Mode = iota
	// ModeBench times every part
	ModeBench
)

func (m Mode) String() string {
	if m == ModeBench {
		return "bench"
	}
	return "run"
}

// State is a step of the engine state machine
type State int

const (
	StateIdle State = iota
	StateInputAcquired
	StateParsed
	StatePartsRunning
	StateBenchRunning
	StateDone
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateInputAcquired:
		return "input-acquired"
	case StateParsed:
		return "parsed"
	case StatePartsRunning:
		return "parts-running"
	case StateBenchRunning:
		return "bench-running"
	case StateDone:
		return "done"
	default:
		return "unknown"
	}
}

// Options contains configuration for the engine
type Options struct {
	Day      int
	Mode     Mode
	Source   input.Source
	Provider input.Provider

	// Catalog defaults to registry.Default()
	Catalog *registry.Catalog

	Bench bench.Config

	// Format applies to bench reports only. Answers are always plain.
	Format ui.Format

	// Out defaults to os.Stdout
	Out io.Writer
}

// Engine runs a single day once
type Engine struct {
	opts   Options
	state  State
	logger zerolog.Logger
}

// New creates an engine
func New(opts Options) *Engine {
	if opts.Catalog == nil {
		opts.Catalog = registry.Default()
	}
	if opts.Out == nil {
		opts.Out = os.Stdout
	}
	return &Engine{
		opts:  opts,
		state: StateIdle,
		logger: logging.GetLogger("engine").With().
			Int("day", opts.Day).
			Str("mode", opts.Mode.String()).
			Logger(),
	}
}

// State returns the current state
func (e *Engine) State() State {
	return e.state
}

// Run executes the day in the configured mode
func (e *Engine) Run(ctx context.Context) error {
	if e.state != StateIdle {
		return errors.Newf(errors.ErrInvariant, "engine already ran (state %s)", e.state)
	}
	if !e.opts.Catalog.HasDay(e.opts.Day) {
		return errors.Newf(errors.ErrNotFound, "day %d has no registered solution", e.opts.Day).
			WithDetail("day", e.opts.Day)
	}
	if e.opts.Provider == nil {
		return errors.New(errors.ErrInternal, "no input provider configured")
	}

	done := logging.LogOperationStart(e.logger, "run day")
	defer done()

	text, err := e.opts.Provider.Acquire(ctx, e.opts.Day, e.opts.Source)
	if err != nil {
		return inputError(e.opts.Day, err)
	}
	e.transition(StateInputAcquired)

	if e.opts.Mode == ModeBench {
		return e.runBench(ctx, text)
	}
	return e.runParts(text)
}

func (e *Engine) runParts(text string) error {
	for _, entry := range registry.QueryDay[registry.ParseEntry](e.opts.Catalog, e.opts.Day) {
		if err := entry.Populate(text); err != nil {
			return err
		}
	}
	e.transition(StateParsed)

	parts := sortByPart(registry.QueryDay[registry.PartEntry](e.opts.Catalog, e.opts.Day))
	e.transition(StatePartsRunning)

	results := make([]string, len(parts))
	var g errgroup.Group
	for i, part := range parts {
		g.Go(func() error {
			value, err := part.Run()
			if err != nil {
				return err
			}
			e.logger.Debug().Int("part", part.Part).Msg("Part finished")
			results[i] = value
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	for i, part := range parts {
		if _, err := fmt.Fprintf(e.opts.Out, "Part %d: %s\n", part.Part, results[i]); err != nil {
			return errors.Wrap(err, errors.ErrInternal, "failed to write output")
		}
	}
	e.transition(StateDone)
	return nil
}

func (e *Engine) runBench(ctx context.Context, text string) error {
	harness, err := bench.New(e.opts.Bench)
	if err != nil {
		return err
	}

	entries := sortByPart(registry.QueryDay[registry.BenchEntry](e.opts.Catalog, e.opts.Day))
	e.transition(StateBenchRunning)

	format := ui.Resolve(e.opts.Format, e.opts.Out)
	streaming := format == ui.FormatText || format == ui.FormatTerminal

	var results []bench.Result
	for _, entry := range entries {
		label := bench.Label(entry.Day, entry.Part)
		result, err := harness.Run(ctx, label, text, entry.Run)
		if err != nil {
			return err
		}
		if streaming {
			if err := bench.Render(e.opts.Out, format, []bench.Result{*result}); err != nil {
				return errors.Wrap(err, errors.ErrInternal, "failed to write report")
			}
			continue
		}
		results = append(results, *result)
	}

	if !streaming {
		if err := bench.Render(e.opts.Out, format, results); err != nil {
			return errors.Wrap(err, errors.ErrInternal, "failed to write report")
		}
	}
	e.transition(StateDone)
	return nil
}

func (e *Engine) transition(to State) {
	e.logger.Debug().Str("from", e.state.String()).Str("to", to.String()).Msg("State transition")
	e.state = to
}

// sortByPart orders entries by part number, keeping registration order
// between equal numbers.
func sortByPart[T interface{ PartNumber() int }](entries []T) []T {
	slices.SortStableFunc(entries, func(a, b T) int {
		return cmp.Compare(a.PartNumber(), b.PartNumber())
	})
	return entries
}

// inputError keeps coded provider errors as they are and tags the rest
func inputError(day int, err error) error {
	if _, ok := errors.As(err); ok {
		return err
	}
	return errors.Wrapf(err, errors.ErrInput, "failed to acquire input for day %d", day)
}
