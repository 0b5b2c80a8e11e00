package components

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

const hintGap = "   "

var (
	keyCapStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#16161d")).
			Background(lipgloss.Color("#888ba4")).
			Bold(true).
			Padding(0, 1)

	hintDescStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#9ba0bf"))

	pagerStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#436b77")).
			Bold(true)

	pagerNavStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#16161d")).
			Background(lipgloss.Color("#7f57b4")).
			Bold(true).
			Padding(0, 1)
)

// Hint renders one key binding as a key cap followed by its description.
func Hint(key, desc string) string {
	return keyCapStyle.Render(key) + " " + hintDescStyle.Render(desc)
}

// StatusBar packs hints into centered rows no wider than width.
func StatusBar(hints []string, width int) string {
	rows := packHints(hints, width)
	if width > 0 {
		for i, row := range rows {
			rows[i] = lipgloss.PlaceHorizontal(width, lipgloss.Center, row)
		}
	}
	return strings.Join(rows, "\n")
}

// packHints greedily fills rows left to right. A non-positive width puts
// everything on one row.
func packHints(hints []string, width int) []string {
	var (
		rows []string
		cur  strings.Builder
	)
	for _, h := range hints {
		if cur.Len() > 0 && width > 0 && lipgloss.Width(cur.String()+hintGap+h) > width {
			rows = append(rows, cur.String())
			cur.Reset()
		}
		if cur.Len() > 0 {
			cur.WriteString(hintGap)
		}
		cur.WriteString(h)
	}
	if cur.Len() > 0 {
		rows = append(rows, cur.String())
	}
	return rows
}

// Pager renders the page indicator with a Previous and Next control shown
// only when that direction is available.
func Pager(number, pages int, hasPrevious, hasNext bool) string {
	parts := make([]string, 0, 3)
	if hasPrevious {
		parts = append(parts, pagerNavStyle.Render("← Previous"))
	}
	parts = append(parts, pagerStyle.Render(fmt.Sprintf("Page %d/%d", number, pages)))
	if hasNext {
		parts = append(parts, pagerNavStyle.Render("Next →"))
	}
	return strings.Join(parts, "  ")
}
