package model

// AnalyticsOverview aggregates the dashboard's headline numbers. The
// live counters (sessions, conversions) come from consumed
// tryon.completed events; the remaining figures are seeded by the
// analytics collaborator.
type AnalyticsOverview struct {
	TotalUsers     int
	ActiveSessions int
	TotalTryOns    int
	ConversionRate float64
	Engagement     []EngagementPoint
	CategoryShare  []CategoryShare
}

// EngagementPoint is one day of the weekly engagement series.
type EngagementPoint struct {
	Day         string
	Sessions    int
	Conversions int
}

// CategoryShare is the try-on share of one product category, in percent.
type CategoryShare struct {
	Category string
	Percent  int
}
