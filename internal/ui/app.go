package ui

import (
	"context"
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"go.uber.org/zap"

	"github.com/gravitrone/cardlist/internal/catalog"
	"github.com/gravitrone/cardlist/internal/ui/components"
	"github.com/gravitrone/cardlist/internal/view"
)

const loadTimeout = 30 * time.Second

// --- Messages ---

type errMsg struct{ err error }
type clearToastMsg struct{}
type datasetLoadedMsg struct {
	records []catalog.Record
}

type appToast struct {
	level string
	text  string
}

// --- App Model ---

// Options configure the root model.
type Options struct {
	VimKeys bool
	Logger  *zap.Logger
}

// App is the root TUI model. It loads the dataset once, then hands every
// key press to the card list.
type App struct {
	source   catalog.Source
	logger   *zap.Logger
	keys     keyMap
	width    int
	height   int
	loading  bool
	err      string
	helpOpen bool
	toast    *appToast

	cards *CardListModel
}

// NewApp creates the root application model.
func NewApp(source catalog.Source, opts Options) App {
	logger := opts.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	return App{
		source:  source,
		logger:  logger,
		keys:    defaultKeyMap(opts.VimKeys),
		loading: true,
	}
}

func (a App) Init() tea.Cmd {
	return a.loadDatasetCmd()
}

func (a App) loadDatasetCmd() tea.Cmd {
	source := a.source
	return func() tea.Msg {
		if source == nil {
			return errMsg{err: fmt.Errorf("no dataset source configured")}
		}
		ctx, cancel := context.WithTimeout(context.Background(), loadTimeout)
		defer cancel()
		records, err := source.Records(ctx)
		if err != nil {
			return errMsg{err: fmt.Errorf("load dataset: %w", err)}
		}
		return datasetLoadedMsg{records: records}
	}
}

func (a App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		if a.cards != nil {
			a.cards.width = msg.Width
			a.cards.height = msg.Height
		}
		return a, nil

	case errMsg:
		a.loading = false
		a.err = msg.err.Error()
		a.logger.Error("dataset load failed", zap.Error(msg.err))
		return a, nil
	case clearToastMsg:
		a.toast = nil
		return a, nil
	case datasetLoadedMsg:
		a.loading = false
		a.err = ""
		ctrl := view.NewController(msg.records, view.WithLogger(a.logger))
		cards := NewCardListModel(ctrl, a.keys)
		cards.width = a.width
		cards.height = a.height
		a.cards = &cards
		return a, a.setToast("success", fmt.Sprintf("Loaded %d records.", len(msg.records)))

	case tea.KeyMsg:
		if isForceQuit(msg) {
			return a, tea.Quit
		}
		if a.helpOpen {
			if isBack(msg) || isKey(msg, "?") {
				a.helpOpen = false
			}
			return a, nil
		}
		searching := a.cards != nil && a.cards.Searching()
		if !searching {
			if isKey(msg, "?") {
				a.helpOpen = true
				return a, nil
			}
			if isQuit(msg) {
				return a, tea.Quit
			}
		}
	}

	if a.cards == nil {
		return a, nil
	}
	cards, cmd := a.cards.Update(msg)
	a.cards = &cards
	return a, cmd
}

func (a App) View() string {
	banner := centerBlockUniform(RenderBanner(), a.width)

	var content string
	switch {
	case a.helpOpen:
		content = a.renderHelp()
	case a.loading:
		content = components.Indent(components.TitledBox("Cards", MutedStyle.Render("Loading..."), a.width), 1)
	case a.cards != nil:
		content = a.cards.View()
	}
	content = centerBlockUniform(content, a.width)

	hints := components.StatusBar(a.statusHints(), a.width)

	feedback := ""
	if a.err != "" {
		feedback = "\n\n" + centerBlockUniform(components.ErrorBox("Error", a.err, a.width), a.width)
	} else if a.toast != nil {
		feedback = "\n\n" + centerBlockUniform(a.renderToast(), a.width)
	}

	return fmt.Sprintf("%s\n%s\n\n\n%s%s", banner, content, hints, feedback)
}

func (a App) statusHints() []string {
	if a.helpOpen {
		return []string{hint(a.keys.Back)}
	}
	if a.cards == nil {
		return []string{hint(a.keys.Quit)}
	}
	return a.cards.statusHints()
}

func (a App) renderHelp() string {
	bindings := []struct {
		keys string
		desc string
	}{
		{a.keys.Search.Help().Key, "Filter cards by tag (case-insensitive substring)"},
		{a.keys.Clear.Help().Key, "Clear the filter"},
		{strings.Join(a.keys.Previous.Keys(), "/"), "Previous page"},
		{strings.Join(a.keys.Next.Keys(), "/"), "Next page"},
		{strings.Join(a.keys.Up.Keys(), "/") + " " + strings.Join(a.keys.Down.Keys(), "/"), "Move selection"},
		{a.keys.Open.Help().Key, "Open the selected card"},
		{a.keys.Back.Help().Key, "Leave search, close a card, or clear the filter"},
		{a.keys.Quit.Help().Key, "Quit"},
	}
	lines := make([]string, 0, len(bindings)+2)
	lines = append(lines, MutedStyle.Render("esc to close"))
	lines = append(lines, "")
	for _, b := range bindings {
		lines = append(lines, "  "+components.Hint(b.keys, b.desc))
	}
	return components.Indent(components.TitledBox("Help", strings.Join(lines, "\n"), a.width), 1)
}

func (a *App) setToast(level, text string) tea.Cmd {
	a.toast = &appToast{
		level: level,
		text:  components.SanitizeOneLine(text),
	}
	return tea.Tick(2500*time.Millisecond, func(time.Time) tea.Msg {
		return clearToastMsg{}
	})
}

func (a App) renderToast() string {
	if a.toast == nil {
		return ""
	}
	switch a.toast.level {
	case "success":
		return components.TitledBox("Success", SuccessStyle.Render(a.toast.text), a.width)
	case "error":
		return components.ErrorBox("Error", a.toast.text, a.width)
	}
	return components.TitledBox("Info", a.toast.text, a.width)
}

func centerBlockUniform(s string, width int) string {
	if width <= 0 {
		return s
	}
	lines := strings.Split(s, "\n")
	maxWidth := 0
	for _, line := range lines {
		w := lipgloss.Width(line)
		if w > maxWidth {
			maxWidth = w
		}
	}
	if maxWidth <= 0 || maxWidth >= width {
		return s
	}
	pad := (width - maxWidth) / 2
	if pad <= 0 {
		return s
	}
	prefix := strings.Repeat(" ", pad)
	for i := range lines {
		if lines[i] != "" {
			lines[i] = prefix + lines[i]
		}
	}
	return strings.Join(lines, "\n")
}
