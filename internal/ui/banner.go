package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

const bannerArt = `
  ___ __ _ _ __ __| | (_)___| |_
 / __/ _' | '__/ _' | | / __| __|
| (_| (_| | | | (_| | | \__ \ |_
 \___\__,_|_|  \__,_|_|_|___/\__|`

const bannerSubtitle = "Tagged Cards • Search and Page"

// RenderBanner returns the styled ASCII banner.
func RenderBanner() string {
	lines := strings.Split(bannerArt, "\n")
	baseStyle := lipgloss.NewStyle().Foreground(ColorPrimary)

	maxWidth := 0
	for _, line := range lines {
		if w := lipgloss.Width(line); w > maxWidth {
			maxWidth = w
		}
	}

	var b strings.Builder
	for _, line := range lines {
		if line == "" {
			continue
		}
		b.WriteString(baseStyle.Render(line))
		b.WriteString("\n")
	}

	subtitleWidth := lipgloss.Width(bannerSubtitle)
	blockWidth := maxWidth
	if blockWidth < subtitleWidth {
		blockWidth = subtitleWidth
	}

	subtitle := lipgloss.NewStyle().
		Foreground(ColorMuted).
		Width(blockWidth).
		Align(lipgloss.Center).
		Render(bannerSubtitle)

	underline := lipgloss.NewStyle().
		Foreground(ColorBorder).
		Width(blockWidth).
		Align(lipgloss.Center).
		Render(strings.Repeat("─", subtitleWidth))

	return "\n" + b.String() + "\n" + subtitle + "\n" + underline + "\n"
}
