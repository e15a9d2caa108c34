package ui

import (
	"fmt"
	"io"
	"strings"

	"github.com/pterm/pterm"
)

// RenderTable writes header and rows as a table. Terminal output gets a
// pterm table; everything else gets tab separated columns.
func RenderTable(w io.Writer, format Format, header []string, rows [][]string) error {
	if format != FormatTerminal {
		lines := make([]string, 0, len(rows)+1)
		lines = append(lines, strings.Join(header, "\t"))
		for _, row := range rows {
			lines = append(lines, strings.Join(row, "\t"))
		}
		_, err := fmt.Fprintln(w, strings.Join(lines, "\n"))
		return err
	}

	data := pterm.TableData{header}
	data = append(data, rows...)
	out, err := pterm.DefaultTable.WithHasHeader().WithData(data).Srender()
	if err != nil {
		return fmt.Errorf("failed to render table: %w", err)
	}
	_, err = fmt.Fprintln(w, out)
	return err
}
