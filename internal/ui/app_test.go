package ui

import (
	"context"
	"errors"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gravitrone/cardlist/internal/catalog"
	"github.com/gravitrone/cardlist/internal/ui/components"
)

type fakeSource struct {
	records []catalog.Record
	err     error
	calls   int
}

func (f *fakeSource) Records(ctx context.Context) ([]catalog.Record, error) {
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	return f.records, nil
}

func step(t *testing.T, m tea.Model, msg tea.Msg) (App, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	app, ok := next.(App)
	require.True(t, ok)
	return app, cmd
}

func loadedApp(t *testing.T, records []catalog.Record) App {
	t.Helper()
	src := &fakeSource{records: records}
	app := NewApp(src, Options{})
	app, _ = step(t, app, tea.WindowSizeMsg{Width: 120, Height: 40})
	msg := app.Init()()
	app, _ = step(t, app, msg)
	require.NotNil(t, app.cards)
	return app
}

func isQuitCmd(cmd tea.Cmd) bool {
	if cmd == nil {
		return false
	}
	_, ok := cmd().(tea.QuitMsg)
	return ok
}

func TestAppInitLoadsDataset(t *testing.T) {
	src := &fakeSource{records: cardRecords(12, 3)}
	app := NewApp(src, Options{})
	assert.Contains(t, components.SanitizeText(app.View()), "Loading...")

	msg := app.Init()()
	loaded, ok := msg.(datasetLoadedMsg)
	require.True(t, ok)
	assert.Len(t, loaded.records, 12)
	assert.Equal(t, 1, src.calls)

	app, cmd := step(t, app, msg)
	assert.NotNil(t, cmd)
	assert.False(t, app.loading)
	require.NotNil(t, app.toast)
	assert.Equal(t, "Loaded 12 records.", app.toast.text)

	out := components.SanitizeText(app.View())
	assert.Contains(t, out, "Page 1/2")
	assert.Contains(t, out, "Loaded 12 records.")

	app, _ = step(t, app, clearToastMsg{})
	assert.Nil(t, app.toast)
}

func TestAppLoadErrorShowsErrorBox(t *testing.T) {
	app := NewApp(&fakeSource{err: errors.New("boom")}, Options{})
	msg := app.Init()()
	app, _ = step(t, app, msg)

	assert.Nil(t, app.cards)
	assert.Equal(t, "load dataset: boom", app.err)
	out := components.SanitizeText(app.View())
	assert.Contains(t, out, "Error")
	assert.Contains(t, out, "load dataset: boom")
}

func TestAppNilSource(t *testing.T) {
	app := NewApp(nil, Options{})
	app, _ = step(t, app, app.Init()())
	assert.Equal(t, "no dataset source configured", app.err)
}

func TestAppHelpToggle(t *testing.T) {
	app := loadedApp(t, cardRecords(15, 0))

	app, _ = step(t, app, runeKey('?'))
	require.True(t, app.helpOpen)
	assert.Contains(t, components.SanitizeText(app.View()), "Previous page")

	// navigation is ignored while help is open
	app, _ = step(t, app, tea.KeyMsg{Type: tea.KeyRight})
	assert.Equal(t, 0, app.cards.ctrl.Session().Offset)

	app, _ = step(t, app, tea.KeyMsg{Type: tea.KeyEsc})
	assert.False(t, app.helpOpen)
}

func TestAppQuit(t *testing.T) {
	app := loadedApp(t, cardRecords(3, 0))
	_, cmd := step(t, app, runeKey('q'))
	assert.True(t, isQuitCmd(cmd))

	_, cmd = step(t, app, tea.KeyMsg{Type: tea.KeyCtrlC})
	assert.True(t, isQuitCmd(cmd))
}

func TestAppSearchModeSwallowsQuitAndHelp(t *testing.T) {
	app := loadedApp(t, cardRecords(3, 0))
	app, _ = step(t, app, runeKey('/'))
	require.True(t, app.cards.Searching())

	app, cmd := step(t, app, runeKey('q'))
	assert.False(t, isQuitCmd(cmd))
	app, _ = step(t, app, runeKey('?'))
	assert.False(t, app.helpOpen)
	assert.Equal(t, "q?", app.cards.ctrl.Session().SearchTerm)

	_, cmd = step(t, app, tea.KeyMsg{Type: tea.KeyCtrlC})
	assert.True(t, isQuitCmd(cmd))
}

func TestAppDelegatesNavigation(t *testing.T) {
	app := loadedApp(t, cardRecords(25, 0))
	app, _ = step(t, app, tea.KeyMsg{Type: tea.KeyRight})
	app, _ = step(t, app, tea.KeyMsg{Type: tea.KeyRight})
	app, _ = step(t, app, tea.KeyMsg{Type: tea.KeyRight})
	assert.Equal(t, 20, app.cards.ctrl.Session().Offset)

	hints := app.statusHints()
	assert.NotContains(t, hints, hint(app.keys.Next))
	assert.Contains(t, hints, hint(app.keys.Previous))
}

func TestAppKeysBeforeLoadAreIgnored(t *testing.T) {
	app := NewApp(&fakeSource{}, Options{})
	app, cmd := step(t, app, tea.KeyMsg{Type: tea.KeyRight})
	assert.Nil(t, cmd)
	assert.Nil(t, app.cards)
	assert.Equal(t, []string{hint(app.keys.Quit)}, app.statusHints())
}

func TestCenterBlockUniform(t *testing.T) {
	assert.Equal(t, "ab", centerBlockUniform("ab", 0))
	assert.Equal(t, "   ab\n   cd", centerBlockUniform("ab\ncd", 8))
	assert.Equal(t, "  ab\n\n  cd", centerBlockUniform("ab\n\ncd", 6))
	assert.Equal(t, "abcdef", centerBlockUniform("abcdef", 4))
}
