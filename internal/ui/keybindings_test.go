package ui

import (
	"testing"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
)

func runeKey(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func TestIsQuit(t *testing.T) {
	assert.True(t, isQuit(tea.KeyMsg{Type: tea.KeyCtrlC}))
	assert.True(t, isQuit(runeKey('q')))
	assert.False(t, isQuit(runeKey('a')))
}

func TestIsForceQuit(t *testing.T) {
	assert.True(t, isForceQuit(tea.KeyMsg{Type: tea.KeyCtrlC}))
	assert.False(t, isForceQuit(runeKey('q')))
}

func TestIsEnter(t *testing.T) {
	assert.True(t, isEnter(tea.KeyMsg{Type: tea.KeyEnter}))
	assert.False(t, isEnter(tea.KeyMsg{Type: tea.KeySpace}))
}

func TestIsBack(t *testing.T) {
	assert.True(t, isBack(tea.KeyMsg{Type: tea.KeyEsc}))
	assert.False(t, isBack(tea.KeyMsg{Type: tea.KeyEnter}))
}

func TestDefaultKeyMapArrows(t *testing.T) {
	keys := defaultKeyMap(false)
	assert.True(t, key.Matches(tea.KeyMsg{Type: tea.KeyRight}, keys.Next))
	assert.True(t, key.Matches(runeKey('n'), keys.Next))
	assert.True(t, key.Matches(tea.KeyMsg{Type: tea.KeyLeft}, keys.Previous))
	assert.True(t, key.Matches(runeKey('p'), keys.Previous))
	assert.False(t, key.Matches(runeKey('l'), keys.Next))
	assert.False(t, key.Matches(runeKey('j'), keys.Down))
}

func TestDefaultKeyMapVim(t *testing.T) {
	keys := defaultKeyMap(true)
	assert.True(t, key.Matches(runeKey('l'), keys.Next))
	assert.True(t, key.Matches(runeKey('h'), keys.Previous))
	assert.True(t, key.Matches(runeKey('j'), keys.Down))
	assert.True(t, key.Matches(runeKey('k'), keys.Up))
	assert.True(t, key.Matches(tea.KeyMsg{Type: tea.KeyDown}, keys.Down))
}

func TestHintUsesBindingHelp(t *testing.T) {
	out := hint(defaultKeyMap(false).Search)
	assert.Contains(t, out, "Search")
	assert.Contains(t, out, "/")
}
