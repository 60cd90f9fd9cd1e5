package domain

// LeadThresholds defines the score floors for the hot/warm/cold buckets.
// The two legacy dashboard implementations disagreed on the warm floor
// (60 vs 50), so it is configurable (WARM_LEAD_FLOOR) rather than silently
// picked; 60 is the default until product settles the question.
type LeadThresholds struct {
	Hot  int
	Warm int
}

// DefaultLeadThresholds matches the in-memory legacy behavior.
func DefaultLeadThresholds() LeadThresholds {
	return LeadThresholds{Hot: 80, Warm: 60}
}

// Bucket classifies a lead score into exactly one of "hot", "warm", "cold".
func (t LeadThresholds) Bucket(score int) string {
	switch {
	case score >= t.Hot:
		return "hot"
	case score >= t.Warm:
		return "warm"
	default:
		return "cold"
	}
}

// LeadScores are the per-bucket contact counts.
type LeadScores struct {
	Hot  int `json:"hot"`
	Warm int `json:"warm"`
	Cold int `json:"cold"`
}

// GrowthMetrics are month-over-month trend figures. There is no historical
// snapshot store yet, so these are served as fixed placeholders.
type GrowthMetrics struct {
	Campaigns   string `json:"campaigns"`
	Leads       string `json:"leads"`
	Conversions string `json:"conversions"`
	ROI         string `json:"roi"`
}

// GrowthPlaceholder is returned by every backend until trend computation
// lands. TODO: replace with real month-over-month deltas once a metrics
// snapshot collection exists.
func GrowthPlaceholder() GrowthMetrics {
	return GrowthMetrics{
		Campaigns:   "+8.2%",
		Leads:       "+23.1%",
		Conversions: "+1.2%",
		ROI:         "+45.3%",
	}
}

// DashboardMetrics is the aggregate KPI payload for GET /api/dashboard/metrics.
//
// TotalLeads is the number of CRM contacts, not the sum of campaign-reported
// lead counters; the two definitions coexisted in the legacy dashboards and
// contact count is the one the overview cards rendered.
type DashboardMetrics struct {
	ActiveCampaigns int           `json:"activeCampaigns"`
	TotalLeads      int           `json:"totalLeads"`
	ConversionRate  string        `json:"conversionRate"`
	ROI             string        `json:"roi"`
	LeadScores      LeadScores    `json:"leadScores"`
	Growth          GrowthMetrics `json:"growth"`
}
