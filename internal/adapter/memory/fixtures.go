package memory

import "insights-api/internal/core/domain"

var campaigns = []domain.Campaign{
	{ID: 1, Name: "Summer Sale 2024", Clicks: 15420, Impressions: 89000, CTR: 17.3, CPC: 0.85, Spend: 13107, Conversions: 234, Revenue: 18750, Date: "2024-07-15"},
	{ID: 2, Name: "Brand Awareness Q2", Clicks: 8920, Impressions: 67000, CTR: 13.3, CPC: 1.20, Spend: 10704, Conversions: 156, Revenue: 12480, Date: "2024-07-14"},
	{ID: 3, Name: "Product Launch", Clicks: 12340, Impressions: 78000, CTR: 15.8, CPC: 0.95, Spend: 11723, Conversions: 198, Revenue: 15840, Date: "2024-07-13"},
	{ID: 4, Name: "Holiday Special", Clicks: 18760, Impressions: 95000, CTR: 19.7, CPC: 0.75, Spend: 14070, Conversions: 289, Revenue: 23120, Date: "2024-07-12"},
	{ID: 5, Name: "Retargeting Ads", Clicks: 6540, Impressions: 45000, CTR: 14.5, CPC: 1.10, Spend: 7194, Conversions: 98, Revenue: 7840, Date: "2024-07-11"},
	{ID: 6, Name: "Social Media Boost", Clicks: 11230, Impressions: 72000, CTR: 15.6, CPC: 0.90, Spend: 10107, Conversions: 167, Revenue: 13360, Date: "2024-07-10"},
	{ID: 7, Name: "Email Campaign", Clicks: 8760, Impressions: 58000, CTR: 15.1, CPC: 1.05, Spend: 9198, Conversions: 134, Revenue: 10720, Date: "2024-07-09"},
	{ID: 8, Name: "Influencer Partnership", Clicks: 14320, Impressions: 82000, CTR: 17.5, CPC: 0.80, Spend: 11456, Conversions: 201, Revenue: 16080, Date: "2024-07-08"},
	{ID: 9, Name: "Video Ads", Clicks: 9870, Impressions: 65000, CTR: 15.2, CPC: 1.15, Spend: 11350, Conversions: 145, Revenue: 11600, Date: "2024-07-07"},
	{ID: 10, Name: "Mobile Optimization", Clicks: 16540, Impressions: 92000, CTR: 18.0, CPC: 0.70, Spend: 11578, Conversions: 245, Revenue: 19600, Date: "2024-07-06"},
}

var metrics = domain.MetricSet{
	domain.MetricRevenue:     snapshot(124500, 118200, 5.3),
	domain.MetricUsers:       snapshot(45678, 43210, 5.7),
	domain.MetricConversions: snapshot(2345, 2189, 7.1),
	domain.MetricGrowth:      snapshot(12.4, 10.8, 14.8),
}

func snapshot(current, previous, growth float64) domain.MetricSnapshot {
	return domain.MetricSnapshot{Current: current, Previous: previous, GrowthPercent: growth, Trend: domain.TrendOf(growth)}
}

var charts = domain.ChartSeries{
	Revenue: []domain.MonthlyPoint{
		{Month: "Jan", Value: 85000},
		{Month: "Feb", Value: 92000},
		{Month: "Mar", Value: 98000},
		{Month: "Apr", Value: 105000},
		{Month: "May", Value: 112000},
		{Month: "Jun", Value: 118000},
		{Month: "Jul", Value: 124500},
	},
	Traffic: []domain.SourceShare{
		{Source: "Organic", Value: 45},
		{Source: "Direct", Value: 25},
		{Source: "Social", Value: 20},
		{Source: "Referral", Value: 10},
	},
	Conversions: []domain.DailyPoint{
		{Day: "Mon", Value: 120},
		{Day: "Tue", Value: 145},
		{Day: "Wed", Value: 132},
		{Day: "Thu", Value: 168},
		{Day: "Fri", Value: 189},
		{Day: "Sat", Value: 156},
		{Day: "Sun", Value: 134},
	},
}

// Campaigns returns a copy of the fixed campaign fixture. It is also the
// seed used for the Postgres store.
func Campaigns() []domain.Campaign {
	out := make([]domain.Campaign, len(campaigns))
	copy(out, campaigns)
	return out
}
