package schema

import "time"

const DashboardMetricCollection = "dashboardMetric"

type RiskLevel string

const (
	RiskLevelLow      RiskLevel = "low"
	RiskLevelMedium   RiskLevel = "medium"
	RiskLevelHigh     RiskLevel = "high"
	RiskLevelCritical RiskLevel = "critical"
)

type Trend string

const (
	TrendIncreasing Trend = "increasing"
	TrendStable     Trend = "stable"
	TrendDecreasing Trend = "decreasing"
)

// BayesianParameter is the outbreak probability assessment. All fields except
// the likelihood ratio are probabilities in [0,1].
type BayesianParameter struct {
	PriorProbability     float64    `json:"prior_probability" bson:"prior_probability"`
	LikelihoodRatio      float64    `json:"likelihood_ratio" bson:"likelihood_ratio"`
	PosteriorProbability float64    `json:"posterior_probability" bson:"posterior_probability"`
	ConfidenceInterval   [2]float64 `json:"confidence_interval" bson:"confidence_interval"`
}

type HotspotData struct {
	Building    string    `json:"building" bson:"building"`
	Room        string    `json:"room" bson:"room"`
	ReportCount int       `json:"report_count" bson:"report_count"`
	RiskLevel   RiskLevel `json:"risk_level" bson:"risk_level"`
	LastUpdated time.Time `json:"last_updated" bson:"last_updated"`
}

// PredictionPoint is one day of the forecast series. Historical points carry
// the observed count in every field; future points carry the model output
// with its bounds.
type PredictionPoint struct {
	Date       string `json:"date" bson:"date"`
	Confirmed  int    `json:"confirmed" bson:"confirmed"`
	Predicted  int    `json:"predicted" bson:"predicted"`
	LowerBound int    `json:"lower_bound" bson:"lower_bound"`
	UpperBound int    `json:"upper_bound" bson:"upper_bound"`
}

type RiskScore struct {
	Building       string `json:"building" bson:"building"`
	Room           string `json:"room" bson:"room"`
	Score          int    `json:"score" bson:"score"`
	Trend          Trend  `json:"trend" bson:"trend"`
	PredictedCases int    `json:"predicted_cases" bson:"predicted_cases"`
}

type DashboardStats struct {
	TotalReportsToday int     `json:"total_reports_today" bson:"total_reports_today"`
	ConfirmedCases    int     `json:"confirmed_cases" bson:"confirmed_cases"`
	SuspectedCases    int     `json:"suspected_cases" bson:"suspected_cases"`
	ActiveHotspots    int     `json:"active_hotspots" bson:"active_hotspots"`
	WeeklyGrowthRate  float64 `json:"weekly_growth_rate" bson:"weekly_growth_rate"`
}

// DashboardMetrics is the full bundle served to the admin dashboard. It is
// recomputed from a single report snapshot so the panels always reconcile.
type DashboardMetrics struct {
	Stats       DashboardStats    `json:"stats" bson:"stats"`
	Hotspots    []HotspotData     `json:"hotspots" bson:"hotspots"`
	Predictions []PredictionPoint `json:"predictions" bson:"predictions"`
	Bayesian    BayesianParameter `json:"bayesian" bson:"bayesian"`
	RiskScores  []RiskScore       `json:"risk_scores" bson:"risk_scores"`
	LastUpdate  int64             `json:"last_update" bson:"last_update"`
}
