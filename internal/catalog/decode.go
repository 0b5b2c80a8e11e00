package catalog

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"path/filepath"
	"strconv"
	"strings"

	toml "github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// Format is a dataset document encoding.
type Format string

const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
	FormatTOML Format = "toml"
)

var (
	// ErrUnsupportedFormat is returned for dataset files with an unknown extension.
	ErrUnsupportedFormat = errors.New("unsupported dataset format")
	// ErrNoRecords is returned when a document has neither a top-level array nor a known envelope key.
	ErrNoRecords = errors.New("no records found in document")
	// ErrDuplicateID is returned when two records share an id.
	ErrDuplicateID = errors.New("duplicate record id")
)

// envelopeKeys are the object keys that may wrap the record array, in lookup order.
var envelopeKeys = []string{"data", "records", "products", "items"}

// FormatForPath picks the dataset format from a file extension.
func FormatForPath(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return FormatJSON, nil
	case ".yaml", ".yml":
		return FormatYAML, nil
	case ".toml":
		return FormatTOML, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnsupportedFormat, filepath.Ext(path))
}

// Decode parses a dataset document. Records without an id get a positional
// id such as "#3"; duplicate ids are rejected.
func Decode(data []byte, format Format) ([]Record, error) {
	var (
		normalized []byte
		err        error
	)
	switch format {
	case FormatJSON:
		normalized = data
	case FormatYAML:
		normalized, err = yamlToJSON(data)
	case FormatTOML:
		normalized, err = tomlToJSON(data)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, format)
	}
	if err != nil {
		return nil, err
	}

	records, err := decodeJSON(normalized)
	if err != nil {
		return nil, err
	}
	return assignIDs(records)
}

func decodeJSON(data []byte) ([]Record, error) {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 {
		return nil, fmt.Errorf("decode dataset: %w", ErrNoRecords)
	}
	if trimmed[0] == '[' {
		var records []Record
		if err := json.Unmarshal(trimmed, &records); err != nil {
			return nil, fmt.Errorf("decode dataset: %w", err)
		}
		return records, nil
	}

	var envelope map[string]json.RawMessage
	if err := json.Unmarshal(trimmed, &envelope); err != nil {
		return nil, fmt.Errorf("decode dataset: %w", err)
	}
	for _, key := range envelopeKeys {
		raw, ok := envelope[key]
		if !ok {
			continue
		}
		var records []Record
		if err := json.Unmarshal(raw, &records); err != nil {
			return nil, fmt.Errorf("decode dataset %q: %w", key, err)
		}
		return records, nil
	}
	return nil, fmt.Errorf("decode dataset: %w", ErrNoRecords)
}

func yamlToJSON(data []byte) ([]byte, error) {
	var doc any
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parse yaml dataset: %w", err)
	}
	out, err := json.Marshal(doc)
	if err != nil {
		return nil, fmt.Errorf("normalize yaml dataset: %w", err)
	}
	return out, nil
}

func tomlToJSON(data []byte) ([]byte, error) {
	var doc map[string]any
	if err := toml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parse toml dataset: %w", err)
	}
	out, err := json.Marshal(doc)
	if err != nil {
		return nil, fmt.Errorf("normalize toml dataset: %w", err)
	}
	return out, nil
}

// assignIDs rejects duplicate explicit ids, then gives every record without
// one a positional id "#N" (N is its 1-based position). Positional ids skip
// over any explicit id they would collide with by adding another '#'.
func assignIDs(records []Record) ([]Record, error) {
	seen := make(map[string]int, len(records))
	for i := range records {
		id := records[i].ID
		if id == "" {
			continue
		}
		if prev, ok := seen[id]; ok {
			return nil, fmt.Errorf("%w: %q at positions %d and %d", ErrDuplicateID, id, prev+1, i+1)
		}
		seen[id] = i
	}
	for i := range records {
		if records[i].ID != "" {
			continue
		}
		id := "#" + strconv.Itoa(i+1)
		for {
			if _, taken := seen[id]; !taken {
				break
			}
			id = "#" + id
		}
		records[i].ID = id
		seen[id] = i
	}
	return records, nil
}
