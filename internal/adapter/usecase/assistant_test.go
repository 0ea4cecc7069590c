package usecase

import (
	"context"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"insights-api/internal/core/classify"
	"insights-api/internal/core/domain"
	"insights-api/internal/core/port"
	"insights-api/internal/core/port/mocks"
)

var fixedNow = time.Date(2024, 7, 15, 12, 0, 0, 0, time.UTC)

func newAssistant(gen port.TextGenerator) *AssistantService {
	s := NewAssistantService(gen, classify.NewDefault())
	s.now = func() time.Time { return fixedNow }
	s.newID = func() string { return "conv-1" }
	return s
}

func sampleMetrics() map[string]any {
	return map[string]any{
		"revenue":     map[string]any{"current": 124500.0, "growth": 5.3},
		"users":       map[string]any{"current": 45678.0, "growth": 5.7},
		"conversions": map[string]any{"current": 2345.0, "growth": 7.1},
		"growth":      map[string]any{"current": 12.4, "growth": -2.1},
	}
}

func TestAnalyzeMetricsTemplate(t *testing.T) {
	gen := mocks.NewMockTextGenerator(t)

	gen.EXPECT().
		Generate(mock.Anything, mock.AnythingOfType("string"), mock.Anything).
		Run(func(_ context.Context, prompt string, data interface{}) {
			assert.Contains(t, prompt, "Revenue: $124,500.00 (+5.3% growth)")
			assert.Contains(t, prompt, "Users: 45,678 (+5.7% growth)")
			assert.Contains(t, prompt, "Conversions: 2,345 (+7.1% growth)")
			assert.Contains(t, prompt, "Growth Rate: 12.4% (-2.1% change)")
			assert.Contains(t, data, "metrics")
		}).
		Return("analysis", nil)

	resp, err := newAssistant(gen).Analyze(context.Background(), port.AnalysisReq{Metrics: sampleMetrics(), Type: "metrics"})

	require.NoError(t, err)
	assert.Equal(t, &port.AnalysisResp{Analysis: "analysis", Type: AnalysisMetrics, Timestamp: fixedNow}, resp)
}

func TestAnalyzeTemplates(t *testing.T) {
	tests := []struct {
		typ      string
		wantType string
		phrase   string
		ctxKey   string
	}{
		{"predictions", AnalysisPredictions, "next 3 months", "historicalData"},
		{"campaigns", AnalysisCampaigns, "Campaign Data: ", "campaignData"},
		{"anomalies", AnalysisAnomalies, "Please identify:", "data"},
		{"customers", AnalysisCustomers, "Retention strategies", "userData"},
		{"market", AnalysisMarket, "Threat assessment", "marketData"},
		{"content", AnalysisContent, "SEO recommendations", "contentData"},
		{"roi", AnalysisROI, "ROI Data: ", "roiData"},
		{"unknown", AnalysisMetrics, "Analyze the following marketing metrics", "metrics"},
		{"", AnalysisMetrics, "Predicted trends for the next month", "metrics"},
	}
	for _, tt := range tests {
		t.Run(fmt.Sprintf("type=%q", tt.typ), func(t *testing.T) {
			gen := mocks.NewMockTextGenerator(t)
			gen.EXPECT().
				Generate(mock.Anything, mock.MatchedBy(func(p string) bool {
					return strings.Contains(p, tt.phrase)
				}), mock.MatchedBy(func(d map[string]any) bool {
					_, ok := d[tt.ctxKey]
					return ok
				})).
				Return("ok", nil)

			resp, err := newAssistant(gen).Analyze(context.Background(), port.AnalysisReq{Metrics: map[string]any{"x": 1}, Type: tt.typ})

			require.NoError(t, err)
			assert.Equal(t, tt.wantType, resp.Type)
		})
	}
}

func TestAnalyzePropagatesErrors(t *testing.T) {
	gen := mocks.NewMockTextGenerator(t)
	gen.EXPECT().
		Generate(mock.Anything, mock.Anything, mock.Anything).
		Return("", fmt.Errorf("gemini: %w", domain.ErrConfiguration))

	_, err := newAssistant(gen).Analyze(context.Background(), port.AnalysisReq{Type: "roi"})

	require.ErrorIs(t, err, domain.ErrConfiguration)
	assert.Contains(t, err.Error(), "analyze roi")
}

func TestChat(t *testing.T) {
	history := make([]domain.ChatMessage, 14)
	for i := range history {
		history[i] = domain.ChatMessage{ID: fmt.Sprint(i), Role: domain.RoleUser, Content: fmt.Sprintf("turn-%d", i)}
	}

	gen := mocks.NewMockTextGenerator(t)
	gen.EXPECT().
		Generate(mock.Anything, mock.AnythingOfType("string"), mock.Anything).
		Run(func(_ context.Context, prompt string, data interface{}) {
			assert.Contains(t, prompt, "Current user message: How is revenue?")
			assert.Contains(t, prompt, `Context data: {"page":"dashboard"}`)
			assert.NotContains(t, prompt, "turn-3\"")
			assert.Contains(t, prompt, "turn-4")

			full := data.(map[string]any)
			assert.Equal(t, "dashboard", full["page"])
			assert.Equal(t, "How is revenue?", full["currentMessage"])
			assert.Len(t, full["conversationHistory"], MaxHistory)
		}).
		Return("Revenue is up.", nil)

	req := port.ChatReq{
		Message: "  How is revenue?  ",
		Context: map[string]any{"page": "dashboard"},
		History: history,
	}
	resp, err := newAssistant(gen).Chat(context.Background(), req)

	require.NoError(t, err)
	assert.Equal(t, &port.ChatResp{Response: "Revenue is up.", ConversationID: "conv-1", Timestamp: fixedNow}, resp)
	assert.NotContains(t, req.Context, "currentMessage", "caller context must not be modified")
}

func TestChatRejectsEmptyMessage(t *testing.T) {
	gen := mocks.NewMockTextGenerator(t)

	_, err := newAssistant(gen).Chat(context.Background(), port.ChatReq{Message: "   "})

	require.ErrorIs(t, err, domain.ErrInvalidRequest)
}

func TestChatDefaultIDIsUUID(t *testing.T) {
	gen := mocks.NewMockTextGenerator(t)
	gen.EXPECT().Generate(mock.Anything, mock.Anything, mock.Anything).Return("hi", nil)

	resp, err := NewAssistantService(gen, classify.NewDefault()).Chat(context.Background(), port.ChatReq{Message: "hello"})

	require.NoError(t, err)
	assert.Len(t, resp.ConversationID, 36)
}

func TestInsights(t *testing.T) {
	gen := mocks.NewMockTextGenerator(t)
	gen.EXPECT().
		Generate(mock.Anything, mock.Anything, mock.Anything).
		Return("Summary\n1. Revenue is growing\nThings look great\n2. Risk of churn\nWatch user decline", nil)

	resp, err := newAssistant(gen).Insights(context.Background(), port.AnalysisReq{Metrics: sampleMetrics(), Type: "metrics"})

	require.NoError(t, err)
	require.Len(t, resp.Insights, 2)
	assert.Equal(t, domain.CategoryInfo, resp.Insights[0].Category)
	assert.Equal(t, domain.CategoryWarning, resp.Insights[1].Category)
	assert.Equal(t, AnalysisMetrics, resp.Type)
	assert.Equal(t, fixedNow, resp.Timestamp)
}

func TestPredictions(t *testing.T) {
	gen := mocks.NewMockTextGenerator(t)
	gen.EXPECT().
		Generate(mock.Anything, mock.MatchedBy(func(p string) bool {
			return strings.Contains(p, "predict future trends for the next 6 months")
		}), mock.Anything).
		Return("1. Revenue\nLikely increase", nil)

	resp, err := newAssistant(gen).Predictions(context.Background(), port.PredictionReq{Metrics: sampleMetrics(), Timeframe: "6months"})

	require.NoError(t, err)
	require.Len(t, resp.Predictions, 1)
	assert.Equal(t, domain.Prediction{
		Title:       "Revenue",
		Description: "Likely increase",
		Confidence:  domain.ConfidenceHigh,
		Trend:       domain.DirectionUp,
		Icon:        "dollar-sign",
	}, resp.Predictions[0])
	assert.Equal(t, "6months", resp.Timeframe)
}

func TestPredictionsUnknownTimeframe(t *testing.T) {
	gen := mocks.NewMockTextGenerator(t)
	gen.EXPECT().Generate(mock.Anything, mock.Anything, mock.Anything).Return("no list", nil)

	resp, err := newAssistant(gen).Predictions(context.Background(), port.PredictionReq{Timeframe: "decade"})

	require.NoError(t, err)
	assert.Empty(t, resp.Predictions)
	assert.Equal(t, DefaultTimeframe, resp.Timeframe)
}
