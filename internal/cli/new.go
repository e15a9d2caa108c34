package cli

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/fluxehub/AdventOfCode2025/pkg/scaffold"
	"github.com/fluxehub/AdventOfCode2025/pkg/ui"
)

func newNewCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "new <day>",
		Short: MsgNewShort,
		Long:  MsgNewLong,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			day, err := scaffold.ParseDay(args[0])
			if err != nil {
				return err
			}

			path, err := scaffold.NewDay(a.env.Fs, a.env.Root, day)
			if err != nil {
				return err
			}

			rel, err := filepath.Rel(a.env.Root, path)
			if err != nil {
				rel = path
			}
			out := cmd.OutOrStdout()
			format := ui.Resolve(ui.FormatAuto, out)
			ui.RenderMessage(out, format, "Success", fmt.Sprintf(MsgDayCreated, rel))
			ui.RenderMessage(out, format, "Muted", MsgRebuildHint)
			return nil
		},
	}
}
