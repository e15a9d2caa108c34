package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/fluxehub/AdventOfCode2025/pkg/engine"
	"github.com/fluxehub/AdventOfCode2025/pkg/input"
	"github.com/fluxehub/AdventOfCode2025/pkg/scaffold"
)

func newRunCmd(a *app) *cobra.Command {
	var example bool

	cmd := &cobra.Command{
		Use:     "run <day>",
		Short:   MsgRunShort,
		Example: MsgRunExample,
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runDay(cmd, args[0], example)
		},
	}
	cmd.Flags().BoolVar(&example, "example", false, MsgFlagExample)
	return cmd
}

func (a *app) runDay(cmd *cobra.Command, arg string, example bool) error {
	day, err := scaffold.ParseDay(arg)
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
		Mode:     engine.ModeRun,
		Source:   source,
		Provider: store,
		Catalog:  a.env.Catalog,
		Out:      cmd.OutOrStdout(),
	}).Run(cmd.Context())
}

// ensureExample asks for the example input on stdin when none is stored.
// Unregistered days are left for the engine to report.
func (a *app) ensureExample(cmd *cobra.Command, store *input.Store, day int) error {
	if store.HasExample(day) || !a.env.Catalog.HasDay(day) {
		return nil
	}
	_, _ = fmt.Fprintf(cmd.ErrOrStderr(), MsgExamplePrompt, day)
	if err := store.SaveExample(day, a.env.Stdin); err != nil {
		return err
	}
	_, _ = fmt.Fprintf(cmd.ErrOrStderr(), MsgExampleSaved, store.ExamplePath(day))
	return nil
}
