// Package ui holds the presentation helpers shared by the aoc commands:
// output format selection, the lipgloss style registry, pterm tables and
// error rendering. Machine formats (json, yaml) bypass all of it.
package ui

import (
	"fmt"
	"io"

	"github.com/pterm/pterm"

	"github.com/fluxehub/AdventOfCode2025/pkg/errors"
)

// RenderError writes err to w, leading with its code when it carries one
func RenderError(w io.Writer, format Format, err error) {
	code := errors.GetErrorCode(err)
	if format != FormatTerminal {
		_, _ = fmt.Fprintf(w, "Error: %v\n", err)
		return
	}
	if code != errors.ErrUnknown {
		_, _ = fmt.Fprintf(w, "%s %s %s\n",
			pterm.Error.Prefix.Text,
			pterm.Error.MessageStyle.Sprint(string(code)),
			err.Error())
		return
	}
	_, _ = fmt.Fprintf(w, "%s %s\n", pterm.Error.Prefix.Text, pterm.Error.MessageStyle.Sprint(err.Error()))
}

// RenderMessage writes a one-line status message using the named style
func RenderMessage(w io.Writer, format Format, style, msg string) {
	if format == FormatTerminal {
		msg = GetStyle(style).Render(msg)
	}
	_, _ = fmt.Fprintln(w, msg)
}
