package usecase

import (
	"encoding/json"
	"fmt"
	"strings"

	"insights-api/internal/core/domain"
	"insights-api/internal/format"
)

// Analysis types accepted by AssistantService.Analyze.
const (
	AnalysisMetrics     = "metrics"
	AnalysisPredictions = "predictions"
	AnalysisCampaigns   = "campaigns"
	AnalysisAnomalies   = "anomalies"
	AnalysisCustomers   = "customers"
	AnalysisMarket      = "market"
	AnalysisContent     = "content"
	AnalysisROI         = "roi"
)

// DefaultTimeframe is used when a prediction request names none or an
// unknown one.
const DefaultTimeframe = "3months"

var timeframes = map[string]string{
	"1month":  "next month",
	"3months": "next 3 months",
	"6months": "next 6 months",
	"1year":   "next year",
}

// prompt is a rendered template: the instruction and the context object
// sent alongside it.
type prompt struct {
	text    string
	context map[string]any
}

type template func(data map[string]any) prompt

var templates = map[string]template{
	AnalysisMetrics:     metricsTemplate,
	AnalysisPredictions: func(d map[string]any) prompt { return predictionsTemplate(d, DefaultTimeframe) },
	AnalysisCampaigns: dataTemplate(
		"Analyze these campaign performance metrics and provide optimization recommendations:",
		"Campaign Data", "campaignData", "Please provide:",
		"Top performing campaigns analysis",
		"Underperforming campaigns with improvement suggestions",
		"Budget allocation recommendations",
		"A/B testing suggestions",
		"Creative optimization tips"),
	AnalysisAnomalies: dataTemplate(
		"Analyze this data for potential anomalies or unusual patterns:",
		"Data", "data", "Please identify:",
		"Any unusual spikes or drops",
		"Potential data quality issues",
		"Seasonal vs. actual anomalies",
		"Recommended actions for each anomaly"),
	AnalysisCustomers: dataTemplate(
		"Analyze this user behavior data and provide customer insights:",
		"User Data", "userData", "Please provide:",
		"Customer segmentation insights",
		"User journey analysis",
		"Conversion funnel optimization",
		"Personalization opportunities",
		"Retention strategies"),
	AnalysisMarket: dataTemplate(
		"Analyze these market trends and provide competitive insights:",
		"Market Data", "marketData", "Please provide:",
		"Market position analysis",
		"Competitive advantages",
		"Market opportunities",
		"Threat assessment",
		"Strategic recommendations"),
	AnalysisContent: dataTemplate(
		"Analyze this content performance data and provide optimization recommendations:",
		"Content Data", "contentData", "Please provide:",
		"Best performing content types",
		"Content optimization suggestions",
		"SEO recommendations",
		"Content calendar suggestions",
		"Engagement improvement tips"),
	AnalysisROI: dataTemplate(
		"Analyze this ROI data and provide investment recommendations:",
		"ROI Data", "roiData", "Please provide:",
		"ROI performance analysis",
		"Investment optimization suggestions",
		"Channel performance ranking",
		"Budget reallocation recommendations",
		"Future investment strategies"),
}

// ResolveType maps t to a known analysis type, falling back to metrics.
func ResolveType(t string) string {
	if _, ok := templates[t]; ok {
		return t
	}
	return AnalysisMetrics
}

// ResolveTimeframe maps tf to a known timeframe id, falling back to
// DefaultTimeframe.
func ResolveTimeframe(tf string) string {
	if _, ok := timeframes[tf]; ok {
		return tf
	}
	return DefaultTimeframe
}

func metricsTemplate(data map[string]any) prompt {
	text := fmt.Sprintf(`Analyze the following marketing metrics and provide insights:

Revenue: %s (%s growth)
Users: %s (%s growth)
Conversions: %s (%s growth)
Growth Rate: %s%% (%s change)

Please provide:
%s`,
		format.Currency(metricField(data, domain.MetricRevenue, "current")),
		format.Percentage(metricField(data, domain.MetricRevenue, "growth")),
		format.Number(metricField(data, domain.MetricUsers, "current")),
		format.Percentage(metricField(data, domain.MetricUsers, "growth")),
		format.Number(metricField(data, domain.MetricConversions, "current")),
		format.Percentage(metricField(data, domain.MetricConversions, "growth")),
		format.Number(metricField(data, domain.MetricGrowth, "current")),
		format.Percentage(metricField(data, domain.MetricGrowth, "growth")),
		numbered(
			"Key performance insights",
			"Areas of concern or opportunity",
			"Recommendations for improvement",
			"Predicted trends for the next month"),
	)
	return prompt{text: text, context: map[string]any{"metrics": data}}
}

func predictionsTemplate(data map[string]any, timeframe string) prompt {
	horizon := timeframes[ResolveTimeframe(timeframe)]
	text := fmt.Sprintf(`Based on the following historical data, predict future trends for the %s:

Historical Data: %s

Please provide:
%s`,
		horizon,
		toJSON(data),
		numbered(
			"Revenue predictions with confidence intervals",
			"User growth projections",
			"Conversion rate forecasts",
			"Seasonal trends and patterns",
			"Risk factors to consider"),
	)
	return prompt{text: text, context: map[string]any{"historicalData": data}}
}

// dataTemplate builds a template that embeds the input as JSON under label
// and passes it as context under key.
func dataTemplate(intro, label, key, ask string, points ...string) template {
	return func(data map[string]any) prompt {
		text := fmt.Sprintf("%s\n\n%s: %s\n\n%s\n%s", intro, label, toJSON(data), ask, numbered(points...))
		return prompt{text: text, context: map[string]any{key: data}}
	}
}

func chatTemplate(message string, history []domain.ChatMessage, context map[string]any) string {
	return fmt.Sprintf(`You are an AI analytics assistant for ADmyBRAND Insights.

Previous conversation context: %s

Current user message: %s

Context data: %s

Please provide a helpful, professional response that:
%s

Keep your response concise but comprehensive.`,
		toJSON(history),
		message,
		toJSON(context),
		numbered(
			"Directly addresses the user's question",
			"Provides actionable insights based on the data",
			"Suggests relevant next steps",
			"Maintains a conversational but professional tone"),
	)
}

func numbered(points ...string) string {
	var b strings.Builder
	for i, p := range points {
		if i > 0 {
			b.WriteByte('\n')
		}
		fmt.Fprintf(&b, "%d. %s", i+1, p)
	}
	return b.String()
}

// metricField reads data[metric][field] as a number. Missing or non-numeric
// values read as zero.
func metricField(data map[string]any, metric, field string) float64 {
	m, ok := data[metric].(map[string]any)
	if !ok {
		return 0
	}
	switch v := m[field].(type) {
	case float64:
		return v
	case json.Number:
		f, _ := v.Float64()
		return f
	case int:
		return float64(v)
	case int64:
		return float64(v)
	}
	return 0
}

func toJSON(v any) string {
	b, err := json.Marshal(v)
	if err != nil {
		return "null"
	}
	return string(b)
}
