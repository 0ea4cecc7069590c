package port

import (
	"context"

	"insights-api/internal/core/domain"
)

// CampaignRepository is the outbound port listing campaign table rows.
// Implementations must be safe for concurrent use and must return a slice
// the caller owns: the query engine filters and sorts it freely.
type CampaignRepository interface {
	// ListCampaigns returns every campaign row in storage order.
	ListCampaigns(ctx context.Context) ([]domain.Campaign, error)
}

// MetricsSource provides the dashboard KPI snapshots and chart series.
type MetricsSource interface {
	// Metrics returns the snapshot of every tracked KPI keyed by name.
	Metrics(ctx context.Context) (domain.MetricSet, error)
	// Charts returns the revenue, traffic and conversion series.
	Charts(ctx context.Context) (domain.ChartSeries, error)
}

// TextGenerator is the outbound port to a generative-text model.
type TextGenerator interface {
	// Generate sends prompt together with the JSON rendering of context and
	// returns the model's text verbatim. It returns an error wrapping
	// domain.ErrConfiguration when generation is disabled and a
	// *domain.UpstreamError when the provider fails.
	Generate(ctx context.Context, prompt string, context any) (string, error)
}
