package catalog

import (
	"context"
	"fmt"
	"os"

	"go.uber.org/zap"
)

// Source supplies the full dataset once at session start.
type Source interface {
	Records(ctx context.Context) ([]Record, error)
}

// FileSource reads a dataset from a local JSON, YAML or TOML file.
type FileSource struct {
	Path   string
	Logger *zap.Logger
}

// Records loads and decodes the file.
func (s FileSource) Records(ctx context.Context) ([]Record, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	records, err := LoadFile(s.Path)
	if err != nil {
		return nil, err
	}
	if s.Logger != nil {
		s.Logger.Info("dataset loaded", zap.String("path", s.Path), zap.Int("records", len(records)))
	}
	return records, nil
}

// LoadFile reads a dataset file, picking the format from its extension.
func LoadFile(path string) ([]Record, error) {
	format, err := FormatForPath(path)
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read dataset: %w", err)
	}
	return Decode(data, format)
}
