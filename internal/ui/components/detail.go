package components

import (
	"encoding/json"
	"fmt"
	"sort"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

const maxFieldLabel = 16

var (
	fieldLabelStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#436b77")).
			Bold(true)

	fieldValueStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#d7d9da"))

	chipStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#16161d")).
			Background(lipgloss.Color("#436b77")).
			Padding(0, 1)

	noneStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#9ba0bf"))
)

// Field is one labelled value on a detail card.
type Field struct {
	Label string
	Value string
}

// Fields renders labels and values in two aligned columns inside a titled box.
func Fields(title string, fields []Field, width int) string {
	if len(fields) == 0 {
		return ""
	}

	labelWidth := 0
	for _, f := range fields {
		labelWidth = max(labelWidth, lipgloss.Width(SanitizeOneLine(f.Label)))
	}
	labelWidth = min(labelWidth, maxFieldLabel)

	valueWidth := 0
	if inner := BoxContentWidth(width); inner > 0 {
		valueWidth = max(inner-labelWidth-2, 4)
	}

	lines := make([]string, len(fields))
	for i, f := range fields {
		label := padRight(ClampTextWidth(f.Label, labelWidth), labelWidth)
		lines[i] = fieldLabelStyle.Render(label) + "  " + fieldValueStyle.Render(ClampTextWidth(f.Value, valueWidth))
	}
	return TitledBox(title, strings.Join(lines, "\n"), width)
}

// Attributes renders a record's raw attribute map, keys sorted and nested
// objects indented. It returns "" for an empty map.
func Attributes(attrs map[string]any, width int) string {
	if len(attrs) == 0 {
		return ""
	}
	return TitledBox("Attributes", strings.Join(attributeLines(attrs, ""), "\n"), width)
}

func attributeLines(attrs map[string]any, indent string) []string {
	keys := make([]string, 0, len(attrs))
	for k := range attrs {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	lines := make([]string, 0, len(keys))
	for _, k := range keys {
		key := SanitizeOneLine(k)
		if nested, ok := attrs[k].(map[string]any); ok && len(nested) > 0 {
			lines = append(lines, indent+key+":")
			lines = append(lines, attributeLines(nested, indent+"  ")...)
			continue
		}
		lines = append(lines, indent+key+": "+SanitizeOneLine(attributeValue(attrs[k])))
	}
	return lines
}

func attributeValue(v any) string {
	switch typed := v.(type) {
	case nil:
		return "null"
	case string:
		return typed
	case []any, map[string]any:
		encoded, err := json.Marshal(typed)
		if err != nil {
			return fmt.Sprint(typed)
		}
		return string(encoded)
	}
	return fmt.Sprint(v)
}

// Chips renders labels as inline badges, or "none" when there are none.
func Chips(labels []string) string {
	if len(labels) == 0 {
		return noneStyle.Render("none")
	}
	chips := make([]string, len(labels))
	for i, label := range labels {
		chips[i] = chipStyle.Render(SanitizeOneLine(label))
	}
	return strings.Join(chips, " ")
}
