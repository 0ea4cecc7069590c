package domain

// Campaign is one row of advertising campaign performance. Money fields
// are plain currency units, CTR is a percentage and Date is an ISO-8601
// calendar date (YYYY-MM-DD) so it sorts lexically.
type Campaign struct {
	ID          int64   `json:"id"`
	Name        string  `json:"campaign"`
	Clicks      int64   `json:"clicks"`
	Impressions int64   `json:"impressions"`
	CTR         float64 `json:"ctr"`
	CPC         float64 `json:"cpc"`
	Spend       float64 `json:"spend"`
	Conversions int64   `json:"conversions"`
	Revenue     float64 `json:"revenue"`
	Date        string  `json:"date"`
}

// Pagination describes where a page sits in the filtered result set.
type Pagination struct {
	Page       int `json:"page"`
	Limit      int `json:"limit"`
	Total      int `json:"total"`
	TotalPages int `json:"totalPages"`
}

// CampaignPage is a single page of campaigns plus its pagination metadata.
type CampaignPage struct {
	Data       []Campaign `json:"data"`
	Pagination Pagination `json:"pagination"`
}
