package cli

import (
	"github.com/spf13/cobra"

	"github.com/fluxehub/AdventOfCode2025/pkg/bench"
	"github.com/fluxehub/AdventOfCode2025/pkg/engine"
	"github.com/fluxehub/AdventOfCode2025/pkg/input"
	"github.com/fluxehub/AdventOfCode2025/pkg/scaffold"
	"github.com/fluxehub/AdventOfCode2025/pkg/ui"
)

func newBenchCmd(a *app) *cobra.Command {
	var example bool

	cmd := &cobra.Command{
		Use:     "bench <day>",
		Short:   MsgBenchShort,
		Long:    MsgBenchLong,
		Example: MsgBenchExample,
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			day, err := scaffold.ParseDay(args[0])
			if err != nil {
				return err
			}
			format, err := ui.ParseFormat(a.cfg.Bench.Format)
			if err != nil {
				return err
			}

			store, closeStore, err := a.store()
			if err != nil {
				return err
			}
			defer closeStore()

			source := input.Real
			if example {
				source = input.Example
				if err := a.ensureExample(cmd, store, day); err != nil {
					return err
				}
			}

			return engine.New(engine.Options{
				Day:      day,
				Mode:     engine.ModeBench,
				Source:   source,
				Provider: store,
				Catalog:  a.env.Catalog,
				Bench: bench.Config{
					WarmUp:      a.cfg.Bench.WarmUp,
					Measurement: a.cfg.Bench.Measurement,
					Samples:     a.cfg.Bench.Samples,
					Confidence:  a.cfg.Bench.Confidence,
				},
				Format: format,
				Out:    cmd.OutOrStdout(),
			}).Run(cmd.Context())
		},
	}

	// Defaults come from configuration; only changed flags override it.
	cmd.Flags().BoolVar(&example, "example", false, MsgFlagExample)
	cmd.Flags().Duration("warm-up", 0, MsgFlagWarmUp)
	cmd.Flags().Duration("measurement", 0, MsgFlagMeasurement)
	cmd.Flags().Int("samples", 0, MsgFlagSamples)
	cmd.Flags().Float64("confidence", 0, MsgFlagConfidence)
	cmd.Flags().String("format", "", MsgFlagFormat)
	return cmd
}
