package catalog

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"
)

// --- Tags ---

// TagKind identifies which shape a tag was decoded from.
type TagKind int

const (
	// TagInvalid marks an entry with no usable title. It never matches a search.
	TagInvalid TagKind = iota
	// TagText is a bare string tag.
	TagText
	// TagObject is an object tag exposing a title.
	TagObject
)

// Tag is a label attached to a record, either a bare string or an object with a title.
type Tag struct {
	Kind  TagKind
	Text  string
	Attrs map[string]any
	// Raw is the entry as decoded, kept for TagInvalid so it encodes back unchanged.
	Raw json.RawMessage
}

// TextTag builds a bare string tag.
func TextTag(text string) Tag {
	return Tag{Kind: TagText, Text: text}
}

// ObjectTag builds an object tag with the given title.
func ObjectTag(title string) Tag {
	return Tag{Kind: TagObject, Text: title, Attrs: map[string]any{"title": title}}
}

// Title returns the display title, or "" when the tag has none.
func (t Tag) Title() string {
	if t.Kind == TagInvalid {
		return ""
	}
	return t.Text
}

func (t *Tag) UnmarshalJSON(data []byte) error {
	trimmed := bytes.TrimSpace(data)
	raw := json.RawMessage(bytes.Clone(trimmed))
	if bytes.Equal(trimmed, []byte("null")) {
		*t = Tag{Kind: TagInvalid, Raw: raw}
		return nil
	}
	var s string
	if err := json.Unmarshal(trimmed, &s); err == nil {
		*t = TextTag(s)
		return nil
	}
	var m map[string]any
	if err := json.Unmarshal(trimmed, &m); err == nil {
		if title, ok := m["title"].(string); ok {
			*t = Tag{Kind: TagObject, Text: title, Attrs: m}
			return nil
		}
		*t = Tag{Kind: TagInvalid, Attrs: m, Raw: raw}
		return nil
	}
	*t = Tag{Kind: TagInvalid, Raw: raw}
	return nil
}

func (t Tag) MarshalJSON() ([]byte, error) {
	switch t.Kind {
	case TagText:
		return json.Marshal(t.Text)
	case TagObject:
		if t.Attrs != nil {
			return json.Marshal(t.Attrs)
		}
		return json.Marshal(map[string]any{"title": t.Text})
	}
	if len(t.Raw) > 0 {
		return t.Raw, nil
	}
	if t.Attrs != nil {
		return json.Marshal(t.Attrs)
	}
	return []byte("null"), nil
}

// Tags is a record's ordered tag list.
type Tags []Tag

// UnmarshalJSON never fails: anything other than an array decodes to nil.
func (ts *Tags) UnmarshalJSON(data []byte) error {
	var raw []json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil || raw == nil {
		*ts = nil
		return nil
	}
	out := make(Tags, len(raw))
	for i, item := range raw {
		_ = out[i].UnmarshalJSON(item)
	}
	*ts = out
	return nil
}

// Titles returns the non-empty tag titles in order.
func (ts Tags) Titles() []string {
	out := make([]string, 0, len(ts))
	for _, t := range ts {
		if title := t.Title(); title != "" {
			out = append(out, title)
		}
	}
	return out
}

// --- Record ---

// Record is one opaque dataset item. Attrs holds every decoded field so the
// record passes through unchanged; ID and Tags are the only fields read.
type Record struct {
	ID    string
	Tags  Tags
	Attrs map[string]any
}

// Name returns the best display label for the record.
func (r Record) Name() string {
	for _, key := range []string{"name", "title"} {
		if v, ok := r.Attrs[key].(string); ok && strings.TrimSpace(v) != "" {
			return v
		}
	}
	return r.ID
}

func (r *Record) UnmarshalJSON(data []byte) error {
	trimmed := bytes.TrimSpace(data)
	if bytes.Equal(trimmed, []byte("null")) {
		return nil
	}
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(trimmed, &raw); err != nil {
		return fmt.Errorf("decode record: %w", err)
	}
	var attrs map[string]any
	if err := json.Unmarshal(trimmed, &attrs); err != nil {
		return fmt.Errorf("decode record: %w", err)
	}

	rec := Record{Attrs: attrs}
	if id, ok := raw["id"]; ok {
		rec.ID = decodeID(id)
	}
	if tags, ok := raw["tags"]; ok {
		_ = rec.Tags.UnmarshalJSON(tags)
	}
	*r = rec
	return nil
}

// MarshalJSON writes the decoded fields back as they were. The id is only
// added when the record had none.
func (r Record) MarshalJSON() ([]byte, error) {
	out := make(map[string]any, len(r.Attrs)+2)
	for k, v := range r.Attrs {
		out[k] = v
	}
	if _, ok := out["id"]; !ok {
		out["id"] = r.ID
	}
	if r.Tags != nil {
		out["tags"] = r.Tags
	}
	return json.Marshal(out)
}

func decodeID(raw json.RawMessage) string {
	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		return strings.TrimSpace(s)
	}
	var n json.Number
	if err := json.Unmarshal(raw, &n); err == nil {
		return n.String()
	}
	return ""
}
