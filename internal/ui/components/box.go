package components

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

const (
	minBoxWidth = 40
	maxBoxWidth = 80
)

var (
	borderColor = lipgloss.Color("#273540")

	boxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(borderColor).
			Padding(1, 2)

	boxTitleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#7f57b4")).
			Bold(true)

	errorBoxStyle = boxStyle.
			BorderForeground(lipgloss.Color("#7a2f3a"))

	errorTitleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#e06c75")).
			Bold(true)

	errorTextStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#d6b5b5"))
)

// boxWidth is the outer width of a box on a terminal termWidth cells wide:
// 70% of the terminal within [40, 80], never wider than the terminal.
// Zero means unconstrained.
func boxWidth(termWidth int) int {
	if termWidth <= 0 {
		return 0
	}
	w := min(max(termWidth*70/100, minBoxWidth), maxBoxWidth)
	return min(w, termWidth)
}

func renderBox(style lipgloss.Style, content string, termWidth int) string {
	if w := boxWidth(termWidth); w > 0 {
		style = style.Width(max(w-style.GetHorizontalBorderSize(), 1))
	}
	return style.Render(content)
}

// Box renders content inside a rounded border.
func Box(content string, width int) string {
	return renderBox(boxStyle, content, width)
}

// BoxContentWidth is the usable text width inside a Box.
func BoxContentWidth(width int) int {
	w := boxWidth(width)
	if w == 0 {
		return 0
	}
	return max(w-boxStyle.GetHorizontalFrameSize(), 0)
}

// TitledBox renders a Box with title set into its top border.
func TitledBox(title, content string, width int) string {
	boxed := Box(content, width)
	if title == "" {
		return boxed
	}
	lines := strings.Split(boxed, "\n")
	lines[0] = titleBorder(title, lipgloss.Width(lines[0]), borderColor, boxTitleStyle)
	return strings.Join(lines, "\n")
}

// ErrorBox renders message in a red box headed by title.
func ErrorBox(title, message string, width int) string {
	body := errorTextStyle.Render(message)
	if title != "" {
		body = errorTitleStyle.Render(SanitizeOneLine(title)) + "\n\n" + body
	}
	return renderBox(errorBoxStyle, body, width)
}

func titleBorder(title string, width int, color lipgloss.Color, style lipgloss.Style) string {
	b := lipgloss.RoundedBorder()
	edge := lipgloss.NewStyle().Foreground(color)
	inner := width - 2
	if inner < 4 {
		return edge.Render(b.TopLeft + strings.Repeat(b.Top, max(inner, 0)) + b.TopRight)
	}

	label := " " + truncateRunes(SanitizeOneLine(title), inner-2) + " "
	rest := inner - lipgloss.Width(label)
	left := rest / 2
	return edge.Render(b.TopLeft+strings.Repeat(b.Top, left)) +
		style.Render(label) +
		edge.Render(strings.Repeat(b.Top, rest-left)+b.TopRight)
}

// Indent prefixes every line of s with spaces.
func Indent(s string, spaces int) string {
	pad := strings.Repeat(" ", spaces)
	return pad + strings.ReplaceAll(s, "\n", "\n"+pad)
}
