package domain

// Trend is the direction a metric moved compared to the previous period.
type Trend string

const (
	TrendUp   Trend = "up"
	TrendDown Trend = "down"
)

// TrendOf reports the direction of a growth percentage. Zero growth counts
// as up.
func TrendOf(growth float64) Trend {
	if growth < 0 {
		return TrendDown
	}
	return TrendUp
}

// Metric names tracked on the dashboard.
const (
	MetricRevenue     = "revenue"
	MetricUsers       = "users"
	MetricConversions = "conversions"
	MetricGrowth      = "growth"
)

// MetricSnapshot bundles the current and previous value of a KPI with the
// growth between them in percent.
type MetricSnapshot struct {
	Current       float64 `json:"current"`
	Previous      float64 `json:"previous"`
	GrowthPercent float64 `json:"growth"`
	Trend         Trend   `json:"trend"`
}

// MetricSet maps a metric name to its snapshot.
type MetricSet map[string]MetricSnapshot

// MonthlyPoint is a value for a calendar month label (Jan, Feb, ...).
type MonthlyPoint struct {
	Month string  `json:"month"`
	Value float64 `json:"value"`
}

// SourceShare is the percentage of traffic attributed to one source.
type SourceShare struct {
	Source string  `json:"source"`
	Value  float64 `json:"value"`
}

// DailyPoint is a value for a weekday label (Mon, Tue, ...).
type DailyPoint struct {
	Day   string  `json:"day"`
	Value float64 `json:"value"`
}

// ChartSeries holds the series rendered by the dashboard charts.
type ChartSeries struct {
	Revenue     []MonthlyPoint `json:"revenue"`
	Traffic     []SourceShare  `json:"traffic"`
	Conversions []DailyPoint   `json:"conversions"`
}
