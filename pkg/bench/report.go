package bench

import (
	"encoding/json"
	"fmt"
	"io"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/fluxehub/AdventOfCode2025/pkg/ui"
)

// Render writes results in the given format. FormatAuto must already have
// been resolved by the caller.
func Render(w io.Writer, format ui.Format, results []Result) error {
	switch format {
	case ui.FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(results)
	case ui.FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(results); err != nil {
			return err
		}
		return enc.Close()
	case ui.FormatTerminal:
		for _, r := range results {
			if _, err := fmt.Fprintln(w, styledLine(r)); err != nil {
				return err
			}
		}
		return nil
	default:
		for _, r := range results {
			if _, err := fmt.Fprintln(w, plainLine(r)); err != nil {
				return err
			}
		}
		return nil
	}
}

// plainLine renders a criterion style summary line:
//
//	day01 part 1            time:   [1.2030 ms 1.2101 ms 1.2188 ms]  value: 12
func plainLine(r Result) string {
	return fmt.Sprintf("%-20s time:   [%s %s %s]  value: %s",
		r.Label,
		FormatDuration(r.CILow), FormatDuration(r.Mean), FormatDuration(r.CIHigh),
		r.Value)
}

func styledLine(r Result) string {
	interval := ui.GetStyle("Interval")
	return fmt.Sprintf("%s time:   [%s %s %s]  value: %s",
		ui.GetStyle("Label").Width(20).Render(r.Label),
		interval.Render(FormatDuration(r.CILow)),
		ui.GetStyle("Value").Render(FormatDuration(r.Mean)),
		interval.Render(FormatDuration(r.CIHigh)),
		ui.GetStyle("Answer").Render(r.Value))
}

// FormatDuration prints d with four decimals in the largest unit that
// keeps the value at or above one.
func FormatDuration(d time.Duration) string {
	ns := float64(d)
	switch {
	case ns >= float64(time.Second):
		return fmt.Sprintf("%.4f s", ns/float64(time.Second))
	case ns >= float64(time.Millisecond):
		return fmt.Sprintf("%.4f ms", ns/float64(time.Millisecond))
	case ns >= float64(time.Microsecond):
		return fmt.Sprintf("%.4f µs", ns/float64(time.Microsecond))
	default:
		return fmt.Sprintf("%.4f ns", ns)
	}
}
