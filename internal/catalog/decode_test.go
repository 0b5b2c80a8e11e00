package catalog

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormatForPath(t *testing.T) {
	cases := map[string]Format{
		"data.json":     FormatJSON,
		"data.YAML":     FormatYAML,
		"data.yml":      FormatYAML,
		"nested/a.toml": FormatTOML,
	}
	for path, want := range cases {
		got, err := FormatForPath(path)
		require.NoError(t, err, path)
		assert.Equal(t, want, got, path)
	}

	_, err := FormatForPath("data.csv")
	assert.ErrorIs(t, err, ErrUnsupportedFormat)
}

func TestDecodeJSONArrayAndEnvelopes(t *testing.T) {
	records, err := Decode([]byte(`[{"id": "a"}, {"id": "b"}]`), FormatJSON)
	require.NoError(t, err)
	assert.Len(t, records, 2)

	for _, key := range []string{"data", "records", "products", "items"} {
		doc := `{"` + key + `": [{"id": "a", "tags": ["x"]}]}`
		records, err := Decode([]byte(doc), FormatJSON)
		require.NoError(t, err, key)
		require.Len(t, records, 1, key)
		assert.Equal(t, "a", records[0].ID)
	}
}

func TestDecodeEmptyArrayIsValid(t *testing.T) {
	records, err := Decode([]byte(`[]`), FormatJSON)
	require.NoError(t, err)
	assert.Empty(t, records)
}

func TestDecodeWithoutRecordsErrors(t *testing.T) {
	_, err := Decode([]byte(`{"other": []}`), FormatJSON)
	assert.ErrorIs(t, err, ErrNoRecords)

	_, err = Decode([]byte("   "), FormatJSON)
	assert.ErrorIs(t, err, ErrNoRecords)
}

func TestDecodeAssignsPositionalIDs(t *testing.T) {
	records, err := Decode([]byte(`[{"name": "a"}, {"id": "x"}, null]`), FormatJSON)
	require.NoError(t, err)
	require.Len(t, records, 3)
	assert.Equal(t, "#1", records[0].ID)
	assert.Equal(t, "x", records[1].ID)
	assert.Equal(t, "#3", records[2].ID)
}

func TestDecodePositionalIDsNeverCollide(t *testing.T) {
	records, err := Decode([]byte(`[{"id": "2"}, {"name": "b"}, {"id": "#3"}, {"name": "d"}, {"name": "e"}]`), FormatJSON)
	require.NoError(t, err)
	require.Len(t, records, 5)
	assert.Equal(t, "2", records[0].ID)
	assert.Equal(t, "#2", records[1].ID)
	assert.Equal(t, "#3", records[2].ID)
	assert.Equal(t, "#4", records[3].ID)
	assert.Equal(t, "#5", records[4].ID)

	records, err = Decode([]byte(`[{"id": "#2"}, {"name": "b"}]`), FormatJSON)
	require.NoError(t, err)
	assert.Equal(t, "##2", records[1].ID)
}

func TestDecodeRejectsDuplicateIDs(t *testing.T) {
	_, err := Decode([]byte(`[{"id": "a"}, {"id": "a"}]`), FormatJSON)
	assert.ErrorIs(t, err, ErrDuplicateID)
	assert.Contains(t, err.Error(), `"a"`)
}

func TestDecodeYAML(t *testing.T) {
	doc := `
products:
  - id: p-1
    name: Sandal
    tags: [shoes, {title: Summer}]
  - id: p-2
    tags: hats
`
	records, err := Decode([]byte(doc), FormatYAML)
	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.Equal(t, []string{"shoes", "Summer"}, records[0].Tags.Titles())
	assert.Nil(t, records[1].Tags)
}

func TestDecodeTOML(t *testing.T) {
	doc := `
[[records]]
id = "p-1"
name = "Boot"
tags = ["shoes", "winter"]

[[records]]
id = "p-2"
tags = [{ title = "Red" }]
`
	records, err := Decode([]byte(doc), FormatTOML)
	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.Equal(t, "Boot", records[0].Name())
	assert.Equal(t, []string{"Red"}, records[1].Tags.Titles())
}

func TestDecodeInvalidYAML(t *testing.T) {
	_, err := Decode([]byte("invalid: yaml: content:"), FormatYAML)
	assert.Error(t, err)
}

func TestFileSourceRecords(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "products.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"data": [{"id": "1", "tags": ["shoes"]}]}`), 0600))

	records, err := FileSource{Path: path}.Records(context.Background())
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, "1", records[0].ID)
}

func TestFileSourceMissingFile(t *testing.T) {
	_, err := FileSource{Path: filepath.Join(t.TempDir(), "missing.json")}.Records(context.Background())
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestFileSourceCanceledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := FileSource{Path: "unused.json"}.Records(ctx)
	assert.ErrorIs(t, err, context.Canceled)
}
