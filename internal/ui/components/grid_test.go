package components

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGridRendersHeaderRuleAndRows(t *testing.T) {
	cols := []Column{
		{Header: "ID", Width: 4},
		{Header: "Name", Width: 10},
	}
	out := Grid(cols, [][]string{{"1", "Boot"}, {"2", "Sandal"}}, 40, -1)

	lines := strings.Split(out, "\n")
	require.Len(t, lines, 4)
	assert.Contains(t, lines[0], "Name")
	assert.Contains(t, lines[1], "┼")
	assert.Contains(t, lines[2], "Boot")
	assert.Contains(t, lines[3], "Sandal")
	for _, line := range lines {
		assert.Equal(t, 40, lipgloss.Width(line))
	}
}

func TestGridEmptyInputs(t *testing.T) {
	assert.Equal(t, "", Grid([]Column{{Header: "A", Width: 3}}, nil, 0, -1))
	assert.Equal(t, "", Grid(nil, [][]string{{"x"}}, 20, -1))
}

func TestGridClampsLongCells(t *testing.T) {
	cols := []Column{{Header: "Tags", Width: 8}}
	out := Grid(cols, [][]string{{strings.Repeat("shoes ", 20)}}, 12, 0)
	for _, line := range strings.Split(out, "\n") {
		assert.Equal(t, 12, lipgloss.Width(line))
	}
}

func TestGridRightAlign(t *testing.T) {
	cols := []Column{{Header: "#", Width: 4, Align: lipgloss.Right}, {Header: "ID", Width: 4}}
	out := SanitizeText(Grid(cols, [][]string{{"7", "a"}}, 20, -1))
	lines := strings.Split(out, "\n")
	assert.True(t, strings.HasPrefix(lines[2], "     7│a"), lines[2])
}

func TestGridSanitizesCells(t *testing.T) {
	cols := []Column{{Header: "Name", Width: 20}}
	out := Grid(cols, [][]string{{"evil\x1b]0;title\x07name"}}, 30, -1)
	assert.NotContains(t, out, "\x1b]")
	assert.Contains(t, out, "evilname")
}

func TestFitColumnsGivesSpareWidthToLast(t *testing.T) {
	cols := fitColumns([]Column{{Width: 4}, {Width: 0}}, 20)
	assert.Equal(t, 4, cols[0].Width)
	assert.Equal(t, 13, cols[1].Width)
}
