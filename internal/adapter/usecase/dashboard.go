package usecase

import (
	"context"
	"fmt"
	"net/url"

	"golang.org/x/sync/errgroup"

	"insights-api/internal/core/domain"
	"insights-api/internal/core/port"
	"insights-api/internal/core/query"
)

// DashboardService serves the read-only dashboard data. It implements
// port.DashboardUseCase on top of the repository ports and the query engine.
type DashboardService struct {
	campaigns port.CampaignRepository
	metrics   port.MetricsSource
}

// NewDashboardService wires the dashboard use case to its data sources.
func NewDashboardService(campaigns port.CampaignRepository, metrics port.MetricsSource) *DashboardService {
	return &DashboardService{campaigns: campaigns, metrics: metrics}
}

// Metrics returns the KPI snapshots.
func (s *DashboardService) Metrics(ctx context.Context) (domain.MetricSet, error) {
	m, err := s.metrics.Metrics(ctx)
	if err != nil {
		return nil, fmt.Errorf("load metrics: %w", err)
	}
	return m, nil
}

// Charts returns the chart series.
func (s *DashboardService) Charts(ctx context.Context) (domain.ChartSeries, error) {
	c, err := s.metrics.Charts(ctx)
	if err != nil {
		return domain.ChartSeries{}, fmt.Errorf("load charts: %w", err)
	}
	return c, nil
}

// QueryCampaigns filters, sorts and pages every campaign row.
func (s *DashboardService) QueryCampaigns(ctx context.Context, spec query.Spec) (domain.CampaignPage, error) {
	rows, err := s.campaigns.ListCampaigns(ctx)
	if err != nil {
		return domain.CampaignPage{}, fmt.Errorf("list campaigns: %w", err)
	}
	return query.Run(rows, spec), nil
}

// Overview loads metrics, charts and the default table page concurrently.
// The first failure cancels the remaining loads.
func (s *DashboardService) Overview(ctx context.Context) (*port.Overview, error) {
	var out port.Overview
	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() (err error) {
		out.Metrics, err = s.Metrics(ctx)
		return err
	})
	g.Go(func() (err error) {
		out.Charts, err = s.Charts(ctx)
		return err
	})
	g.Go(func() (err error) {
		out.Table, err = s.QueryCampaigns(ctx, query.ParseValues(url.Values{}))
		return err
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return &out, nil
}
