package port

import (
	"context"
	"time"

	"insights-api/internal/core/domain"
	"insights-api/internal/core/query"
)

// DashboardUseCase is the primary port for the read-only dashboard data.
type DashboardUseCase interface {
	// Metrics returns the KPI snapshots.
	Metrics(ctx context.Context) (domain.MetricSet, error)
	// Charts returns the chart series.
	Charts(ctx context.Context) (domain.ChartSeries, error)
	// QueryCampaigns filters, sorts and paginates the campaign table.
	// The query is normalized before use so any input is accepted.
	QueryCampaigns(ctx context.Context, spec query.Spec) (domain.CampaignPage, error)
	// Overview loads metrics, charts and the default table page together.
	Overview(ctx context.Context) (*Overview, error)
}

// AssistantUseCase is the primary port for AI-assisted analysis.
type AssistantUseCase interface {
	// Analyze runs the template selected by req.Type over req.Metrics.
	Analyze(ctx context.Context, req AnalysisReq) (*AnalysisResp, error)
	// Chat answers a free-form question in the context of the dashboard.
	Chat(ctx context.Context, req ChatReq) (*ChatResp, error)
	// Insights runs an analysis and classifies its output into insights.
	Insights(ctx context.Context, req AnalysisReq) (*InsightsResp, error)
	// Predictions runs the prediction template and classifies its output.
	Predictions(ctx context.Context, req PredictionReq) (*PredictionsResp, error)
}

// Overview is the combined payload of the dashboard landing page.
type Overview struct {
	Metrics domain.MetricSet    `json:"metrics"`
	Charts  domain.ChartSeries  `json:"charts"`
	Table   domain.CampaignPage `json:"table"`
}

// AnalysisReq selects an analysis template and its input data. Metrics is
// passed to the model as JSON and may be any shape the client sends.
type AnalysisReq struct {
	Metrics map[string]any
	Type    string
}

// AnalysisResp carries the raw model answer for the resolved type.
type AnalysisResp struct {
	Analysis  string
	Type      string
	Timestamp time.Time
}

// ChatReq is one user turn plus the client-held conversation history.
type ChatReq struct {
	Message string
	Context map[string]any
	History []domain.ChatMessage
}

// ChatResp is the assistant's answer to a ChatReq.
type ChatResp struct {
	Response       string
	ConversationID string
	Timestamp      time.Time
}

// InsightsResp holds classified insights and the text they came from.
type InsightsResp struct {
	Insights  []domain.Insight
	Analysis  string
	Type      string
	Timestamp time.Time
}

// PredictionReq asks for forecasts over Timeframe (e.g. "next 30 days").
type PredictionReq struct {
	Metrics   map[string]any
	Timeframe string
}

// PredictionsResp holds classified predictions and the text they came from.
type PredictionsResp struct {
	Predictions []domain.Prediction
	Analysis    string
	Timeframe   string
	Timestamp   time.Time
}
