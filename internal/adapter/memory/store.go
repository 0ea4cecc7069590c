// Package memory serves the fixed dashboard fixture from process memory.
package memory

import (
	"context"
	"maps"
	"slices"

	"insights-api/internal/core/domain"
)

// Store implements port.CampaignRepository and port.MetricsSource over the
// in-process fixture. The fixture is never mutated; every call returns
// fresh copies so callers may sort or modify what they get.
type Store struct{}

// NewStore returns a fixture-backed store.
func NewStore() *Store { return &Store{} }

// ListCampaigns returns all campaigns in id order.
func (s *Store) ListCampaigns(ctx context.Context) ([]domain.Campaign, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return Campaigns(), nil
}

// Metrics returns the KPI snapshots.
func (s *Store) Metrics(ctx context.Context) (domain.MetricSet, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return maps.Clone(metrics), nil
}

// Charts returns the chart series.
func (s *Store) Charts(ctx context.Context) (domain.ChartSeries, error) {
	if err := ctx.Err(); err != nil {
		return domain.ChartSeries{}, err
	}
	return domain.ChartSeries{
		Revenue:     slices.Clone(charts.Revenue),
		Traffic:     slices.Clone(charts.Traffic),
		Conversions: slices.Clone(charts.Conversions),
	}, nil
}
