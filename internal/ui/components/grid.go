package components

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Column is one column of a Grid. Width counts cells excluding separators.
type Column struct {
	Header string
	Width  int
	Align  lipgloss.Position
}

const (
	gridMargin = 2
	gridSep    = "│"
	gridCross  = "┼"
	gridRule   = "─"
)

var (
	gridRuleStyle = lipgloss.NewStyle().
			Foreground(borderColor)

	gridHeaderStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#436b77")).
			Bold(true)

	gridActiveStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#d7d9da")).
			Background(lipgloss.Color("#1f2530")).
			Bold(true)
)

// Grid renders a header, a rule and one line per row, each exactly width
// cells wide. The last column absorbs any spare width. Row active is
// highlighted; pass -1 for none.
func Grid(columns []Column, rows [][]string, width, active int) string {
	if width <= 0 || len(columns) == 0 {
		return ""
	}
	cols := fitColumns(columns, width)

	headers := make([]string, len(cols))
	for i, c := range cols {
		headers[i] = c.Header
	}

	lines := make([]string, 0, len(rows)+2)
	lines = append(lines, gridLine(cols, headers, width, gridHeaderStyle))
	lines = append(lines, ruleLine(cols, width))
	for i, row := range rows {
		style := lipgloss.NewStyle()
		if i == active {
			style = gridActiveStyle
		}
		lines = append(lines, gridLine(cols, row, width, style))
	}
	return strings.Join(lines, "\n")
}

func fitColumns(columns []Column, width int) []Column {
	cols := make([]Column, len(columns))
	copy(cols, columns)

	used := gridMargin + (len(cols)-1)*lipgloss.Width(gridSep)
	for i := range cols {
		cols[i].Width = max(cols[i].Width, 1)
		used += cols[i].Width
	}
	last := &cols[len(cols)-1]
	last.Width = max(last.Width+width-used, 1)
	return cols
}

func gridLine(cols []Column, cells []string, width int, style lipgloss.Style) string {
	parts := make([]string, len(cols))
	for i, c := range cols {
		text := ""
		if i < len(cells) {
			text = cells[i]
		}
		parts[i] = style.Inline(true).Render(align(ClampTextWidth(text, c.Width), c.Width, c.Align))
	}
	sep := gridRuleStyle.Inline(true).Render(gridSep)
	return padRight(strings.Repeat(" ", gridMargin)+strings.Join(parts, sep), width)
}

func ruleLine(cols []Column, width int) string {
	segs := make([]string, len(cols))
	for i, c := range cols {
		segs[i] = strings.Repeat(gridRule, c.Width)
	}
	line := strings.Repeat(" ", gridMargin) + strings.Join(segs, gridCross)
	return gridRuleStyle.Inline(true).Render(padRight(line, width))
}
