package output

import (
	"fmt"

	"github.com/charmbracelet/glamour"
)

// PrettyFormatter renders the markdown report with terminal styling.
type PrettyFormatter struct {
	Style string // glamour standard style; empty means "dark"
	Width int    // word wrap; zero means 100
}

func (p PrettyFormatter) Name() string { return "pretty" }

func (p PrettyFormatter) Format(r *Report) ([]byte, error) {
	md, err := MarkdownFormatter{}.Format(r)
	if err != nil {
		return nil, err
	}
	style := p.Style
	if style == "" {
		style = "dark"
	}
	width := p.Width
	if width <= 0 {
		width = 100
	}
	renderer, err := glamour.NewTermRenderer(
		glamour.WithStandardStyle(style),
		glamour.WithWordWrap(width),
	)
	if err != nil {
		return nil, fmt.Errorf("create terminal renderer: %w", err)
	}
	out, err := renderer.RenderBytes(md)
	if err != nil {
		return nil, fmt.Errorf("render markdown: %w", err)
	}
	return out, nil
}
