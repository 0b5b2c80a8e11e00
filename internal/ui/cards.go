package ui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/gravitrone/cardlist/internal/catalog"
	"github.com/gravitrone/cardlist/internal/ui/components"
	"github.com/gravitrone/cardlist/internal/view"
)

const fallbackGridWidth = 72

// CardListModel renders the current page of a view.Controller and turns
// key presses into controller actions.
type CardListModel struct {
	ctrl      *view.Controller
	keys      keyMap
	input     textinput.Model
	searching bool
	cursor    *components.Cursor
	detail    *catalog.Record
	width     int
	height    int
}

// NewCardListModel builds the card list UI over a controller.
func NewCardListModel(ctrl *view.Controller, keys keyMap) CardListModel {
	input := textinput.New()
	input.Placeholder = "Filter by tag..."
	input.Prompt = "/ "
	input.CharLimit = 100
	input.Width = 40

	return CardListModel{
		ctrl:   ctrl,
		keys:   keys,
		input:  input,
		cursor: components.NewCursor(len(ctrl.CurrentPage().Visible)),
	}
}

func (m CardListModel) Init() tea.Cmd {
	return nil
}

func (m CardListModel) Update(msg tea.Msg) (CardListModel, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		if m.searching {
			var cmd tea.Cmd
			m.input, cmd = m.input.Update(msg)
			return m, cmd
		}
		return m, nil
	}

	if m.detail != nil {
		if isBack(keyMsg) || isEnter(keyMsg) {
			m.detail = nil
		}
		return m, nil
	}
	if m.searching {
		return m.updateSearch(keyMsg)
	}

	switch {
	case key.Matches(keyMsg, m.keys.Search):
		m.searching = true
		return m, m.input.Focus()
	case key.Matches(keyMsg, m.keys.Clear):
		m.applySearch("")
	case isBack(keyMsg):
		if m.ctrl.Session().SearchTerm != "" {
			m.applySearch("")
		}
	case key.Matches(keyMsg, m.keys.Next):
		if m.ctrl.GoNext() {
			m.resetCursor()
		}
	case key.Matches(keyMsg, m.keys.Previous):
		if m.ctrl.GoPrevious() {
			m.resetCursor()
		}
	case key.Matches(keyMsg, m.keys.Down):
		m.cursor.Down()
	case key.Matches(keyMsg, m.keys.Up):
		m.cursor.Up()
	case key.Matches(keyMsg, m.keys.Open):
		visible := m.ctrl.CurrentPage().Visible
		if idx := m.cursor.Selected(); idx >= 0 && idx < len(visible) {
			rec := visible[idx]
			m.detail = &rec
		}
	}
	return m, nil
}

func (m CardListModel) updateSearch(msg tea.KeyMsg) (CardListModel, tea.Cmd) {
	switch {
	case isBack(msg), isEnter(msg):
		m.searching = false
		m.input.Blur()
		return m, nil
	case key.Matches(msg, m.keys.Clear):
		m.input.SetValue("")
		m.applySearch("")
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	if value := m.input.Value(); value != m.ctrl.Session().SearchTerm {
		m.applySearch(value)
	}
	return m, cmd
}

func (m *CardListModel) applySearch(term string) {
	if m.input.Value() != term {
		m.input.SetValue(term)
	}
	m.ctrl.SetSearchTerm(term)
	m.resetCursor()
}

func (m *CardListModel) resetCursor() {
	m.cursor.Reset(len(m.ctrl.CurrentPage().Visible))
}

// Searching reports whether the search input has focus.
func (m CardListModel) Searching() bool {
	return m.searching
}

// InDetail reports whether a single card is open.
func (m CardListModel) InDetail() bool {
	return m.detail != nil
}

func (m CardListModel) View() string {
	if m.detail != nil {
		return m.renderDetail(*m.detail)
	}

	page := m.ctrl.CurrentPage()

	var b strings.Builder
	b.WriteString(m.renderSearchLine())
	b.WriteString("\n\n")

	switch {
	case len(m.ctrl.Dataset()) == 0:
		b.WriteString(MutedStyle.Render("No records."))
	case len(page.Visible) == 0:
		b.WriteString(MutedStyle.Render("No matches."))
	default:
		b.WriteString(m.renderGrid(page))
	}

	b.WriteString("\n\n")
	b.WriteString(components.Pager(page.Number(), page.Pages(), page.HasPrevious, page.HasNext))

	return components.Indent(components.TitledBox("Cards", b.String(), m.width), 1)
}

func (m CardListModel) renderSearchLine() string {
	if m.searching {
		return m.input.View()
	}
	term := m.ctrl.Session().SearchTerm
	if term == "" {
		return MutedStyle.Render("Press / to filter by tag.")
	}
	return "Filter: " + AccentStyle.Render(components.SanitizeOneLine(term)) +
		MutedStyle.Render(fmt.Sprintf("  (%d of %d)", len(m.ctrl.Filtered()), len(m.ctrl.Dataset())))
}

func (m CardListModel) renderGrid(page view.Page) string {
	tableWidth := components.BoxContentWidth(m.width)
	if tableWidth <= 0 {
		tableWidth = fallbackGridWidth
	}
	cols := []components.Column{
		{Header: "#", Width: 4, Align: lipgloss.Right},
		{Header: "ID", Width: 10},
		{Header: "Name", Width: 22},
		{Header: "Tags", Width: 20},
	}
	rows := make([][]string, 0, len(page.Visible))
	for i, rec := range page.Visible {
		rows = append(rows, []string{
			strconv.Itoa(page.Offset + i + 1),
			rec.ID,
			rec.Name(),
			strings.Join(rec.Tags.Titles(), ", "),
		})
	}
	return components.Grid(cols, rows, tableWidth, m.cursor.Selected())
}

func (m CardListModel) renderDetail(rec catalog.Record) string {
	card := components.Fields("Card", []components.Field{
		{Label: "ID", Value: rec.ID},
		{Label: "Name", Value: rec.Name()},
		{Label: "Tags", Value: strconv.Itoa(len(rec.Tags))},
	}, m.width)

	description, _ := rec.Attrs["description"].(string)

	// id and tags are in the card; a non-empty description renders as markdown.
	attrs := make(map[string]any, len(rec.Attrs))
	for k, v := range rec.Attrs {
		if k != "id" && k != "tags" && (k != "description" || description == "") {
			attrs[k] = v
		}
	}

	var b strings.Builder
	b.WriteString(card)
	b.WriteString("\n")
	b.WriteString(components.Chips(rec.Tags.Titles()))
	if md := components.Markdown(description, m.width); md != "" {
		b.WriteString("\n")
		b.WriteString(components.TitledBox("Description", md, m.width))
	}
	if extra := components.Attributes(attrs, m.width); extra != "" {
		b.WriteString("\n")
		b.WriteString(extra)
	}
	return components.Indent(b.String(), 1)
}

// statusHints lists the bindings usable in the current state. Previous and
// Next only appear when the page allows them.
func (m CardListModel) statusHints() []string {
	switch {
	case m.detail != nil:
		return []string{hint(m.keys.Back)}
	case m.searching:
		return []string{
			components.Hint("enter", "Apply"),
			hint(m.keys.Clear),
			hint(m.keys.Back),
		}
	}

	page := m.ctrl.CurrentPage()
	hints := []string{hint(m.keys.Search)}
	if page.HasPrevious {
		hints = append(hints, hint(m.keys.Previous))
	}
	if page.HasNext {
		hints = append(hints, hint(m.keys.Next))
	}
	if len(page.Visible) > 0 {
		hints = append(hints, hint(m.keys.Open))
	}
	return append(hints, hint(m.keys.Help), hint(m.keys.Quit))
}
