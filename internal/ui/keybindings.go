package ui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/gravitrone/cardlist/internal/ui/components"
)

// --- Key Helpers ---

func isKey(msg tea.KeyMsg, keys ...string) bool {
	for _, k := range keys {
		if msg.String() == k {
			return true
		}
	}
	return false
}

func isQuit(msg tea.KeyMsg) bool {
	return isKey(msg, "q", "ctrl+c")
}

func isForceQuit(msg tea.KeyMsg) bool {
	return isKey(msg, "ctrl+c")
}

func isBack(msg tea.KeyMsg) bool {
	if msg.Type == tea.KeyEsc {
		return true
	}
	return isKey(msg, "esc", "escape", "ctrl+[")
}

func isEnter(msg tea.KeyMsg) bool {
	return isKey(msg, "enter", "return")
}

// --- Key Map ---

// keyMap holds the card list bindings. Help text feeds the status bar.
type keyMap struct {
	Search   key.Binding
	Clear    key.Binding
	Previous key.Binding
	Next     key.Binding
	Up       key.Binding
	Down     key.Binding
	Open     key.Binding
	Back     key.Binding
	Help     key.Binding
	Quit     key.Binding
}

func defaultKeyMap(vim bool) keyMap {
	prev := []string{"left", "p"}
	next := []string{"right", "n"}
	up := []string{"up"}
	down := []string{"down"}
	if vim {
		prev = append(prev, "h")
		next = append(next, "l")
		up = append(up, "k")
		down = append(down, "j")
	}
	return keyMap{
		Search: key.NewBinding(
			key.WithKeys("/"),
			key.WithHelp("/", "Search"),
		),
		Clear: key.NewBinding(
			key.WithKeys("ctrl+u"),
			key.WithHelp("ctrl+u", "Clear"),
		),
		Previous: key.NewBinding(
			key.WithKeys(prev...),
			key.WithHelp("←", "Previous"),
		),
		Next: key.NewBinding(
			key.WithKeys(next...),
			key.WithHelp("→", "Next"),
		),
		Up: key.NewBinding(
			key.WithKeys(up...),
			key.WithHelp("↑", "Up"),
		),
		Down: key.NewBinding(
			key.WithKeys(down...),
			key.WithHelp("↓", "Down"),
		),
		Open: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "Open"),
		),
		Back: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "Back"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "Help"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "Quit"),
		),
	}
}

// hint renders a binding as a status bar segment.
func hint(b key.Binding) string {
	h := b.Help()
	return components.Hint(h.Key, h.Desc)
}
