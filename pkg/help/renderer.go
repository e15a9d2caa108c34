package help

import (
	"github.com/charmbracelet/glamour"
)

// Renderer formats topic content for display. ext is the topic file
// extension, including the dot.
type Renderer interface {
	Render(content, ext string) string
}

// PlainRenderer returns content unchanged
type PlainRenderer struct{}

// Render implements Renderer
func (PlainRenderer) Render(content, _ string) string {
	return content
}

// GlamourRenderer renders markdown topics for a terminal
type GlamourRenderer struct {
	// Style is a glamour style name or path; empty means auto detect
	Style string
	// Width wraps output; zero keeps glamour's default
	Width int
}

// Render implements Renderer. Non-markdown topics, and anything glamour
// fails on, come back unchanged.
func (r GlamourRenderer) Render(content, ext string) string {
	if ext != ".md" {
		return content
	}

	var opts []glamour.TermRendererOption
	if r.Style == "" || r.Style == "auto" {
		opts = append(opts, glamour.WithAutoStyle())
	} else {
		opts = append(opts, glamour.WithStylePath(r.Style))
	}
	if r.Width > 0 {
		opts = append(opts, glamour.WithWordWrap(r.Width))
	}

	tr, err := glamour.NewTermRenderer(opts...)
	if err != nil {
		return content
	}
	out, err := tr.Render(content)
	if err != nil {
		return content
	}
	return out
}
