package ui

import (
	"github.com/charmbracelet/glamour"
)

// MarkdownRenderer renders markdown for the terminal with glamour
type MarkdownRenderer struct {
	Style string // "auto", "dark", "light", "notty" or a path to a style file
	Width int    // word wrap width, 0 keeps glamour's default
}

// NewMarkdownRenderer creates a renderer that picks its style from the terminal
func NewMarkdownRenderer() *MarkdownRenderer {
	return &MarkdownRenderer{Style: "auto"}
}

// NewPlainMarkdownRenderer creates a renderer that emits no escape sequences
func NewPlainMarkdownRenderer() *MarkdownRenderer {
	return &MarkdownRenderer{Style: "notty"}
}

// Render converts markdown to terminal output.
// The raw markdown is returned when glamour fails.
func (r *MarkdownRenderer) Render(content string) string {
	var options []glamour.TermRendererOption

	switch r.Style {
	case "", "auto":
		options = append(options, glamour.WithAutoStyle())
	case "dark", "light", "notty", "ascii", "dracula", "pink", "tokyo-night":
		options = append(options, glamour.WithStandardStyle(r.Style))
	default:
		options = append(options, glamour.WithStylePath(r.Style))
	}

	if r.Width > 0 {
		options = append(options, glamour.WithWordWrap(r.Width))
	}

	renderer, err := glamour.NewTermRenderer(options...)
	if err != nil {
		return content
	}

	rendered, err := renderer.Render(content)
	if err != nil {
		return content
	}
	return rendered
}
