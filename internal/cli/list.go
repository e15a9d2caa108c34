package cli

import (
	"fmt"
	"io"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/fluxehub/AdventOfCode2025/pkg/input"
	"github.com/fluxehub/AdventOfCode2025/pkg/registry"
	"github.com/fluxehub/AdventOfCode2025/pkg/ui"
)

func newListCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: MsgListShort,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			store := input.NewStore(a.env.Fs, a.path(a.cfg.Input.Dir), nil)
			return listDays(cmd.OutOrStdout(), a.env.Catalog, store)
		},
	}
}

func listDays(out io.Writer, c *registry.Catalog, store *input.Store) error {
	days := c.Days()
	if len(days) == 0 {
		_, err := fmt.Fprintln(out, MsgNoDays)
		return err
	}

	rows := make([][]string, 0, len(days))
	for _, day := range days {
		parts := registry.QueryDay[registry.PartEntry](c, day)
		example := MsgNo
		if store.HasExample(day) {
			example = MsgYes
		}
		rows = append(rows, []string{strconv.Itoa(day), strconv.Itoa(len(parts)), example})
	}

	header := []string{MsgListHeaderDay, MsgListHeaderPart, MsgListHeaderEx}
	return ui.RenderTable(out, ui.Resolve(ui.FormatAuto, out), header, rows)
}
