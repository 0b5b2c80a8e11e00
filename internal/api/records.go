package api

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/gravitrone/cardlist/internal/catalog"
)

// ListRecords fetches the full dataset from /api/records.
func (c *Client) ListRecords(ctx context.Context, params QueryParams) ([]catalog.Record, error) {
	data, err := c.get(ctx, buildQuery("/api/records", params))
	if err != nil {
		return nil, err
	}
	records, err := catalog.Decode(data, catalog.FormatJSON)
	if err != nil {
		return nil, fmt.Errorf("decode response: %w", err)
	}
	return records, nil
}

// RecordSource adapts a Client into a catalog.Source.
type RecordSource struct {
	Client *Client
	Params QueryParams
	Logger *zap.Logger
}

// Records fetches the dataset once.
func (s RecordSource) Records(ctx context.Context) ([]catalog.Record, error) {
	records, err := s.Client.ListRecords(ctx, s.Params)
	if err != nil {
		return nil, fmt.Errorf("list records: %w", err)
	}
	if s.Logger != nil {
		s.Logger.Info("dataset fetched", zap.String("url", s.Client.BaseURL()), zap.Int("records", len(records)))
	}
	return records, nil
}
