package components

import (
	"strings"

	"github.com/charmbracelet/glamour"
)

const defaultMarkdownWrap = 80

// Markdown renders untrusted markdown for the terminal, wrapped to fit a box
// on a terminal width cells wide. Rendering errors fall back to the
// sanitized source.
func Markdown(md string, width int) string {
	md = SanitizeText(md)
	if strings.TrimSpace(md) == "" {
		return ""
	}

	wrap := BoxContentWidth(width)
	if wrap <= 0 {
		wrap = defaultMarkdownWrap
	}
	renderer, err := glamour.NewTermRenderer(
		glamour.WithStandardStyle("dark"),
		glamour.WithWordWrap(wrap),
	)
	if err != nil {
		return md
	}
	out, err := renderer.Render(md)
	if err != nil {
		return md
	}
	return strings.Trim(out, "\n")
}
