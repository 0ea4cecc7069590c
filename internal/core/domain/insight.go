package domain

// Insight categories.
const (
	CategoryPositive    = "positive"
	CategoryWarning     = "warning"
	CategoryOpportunity = "opportunity"
	CategoryInfo        = "info"
)

// Prediction confidence levels.
const (
	ConfidenceHigh   = "high"
	ConfidenceMedium = "medium"
	ConfidenceLow    = "low"
)

// Prediction trend directions.
const (
	DirectionUp     = "up"
	DirectionDown   = "down"
	DirectionStable = "stable"
)

// Insight is a structured observation extracted from free-form AI output.
type Insight struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Category    string `json:"category"`
	Icon        string `json:"icon"`
}

// Prediction is a structured forecast extracted from free-form AI output.
type Prediction struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Confidence  string `json:"confidence"`
	Trend       string `json:"trend"`
	Icon        string `json:"icon"`
}
