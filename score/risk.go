package score

import (
	"math"

	"github.com/schoolhealth/monitor-api/schema"
)

const (
	riskCountWeight     = 0.4
	riskRecentWeight    = 0.3
	riskConfirmedWeight = 0.3
)

// RiskScore combines total, recent and confirmed report counts into a
// 0-100 score. Each component is clamped to 100 before weighting and the
// weights sum to 1, so the result needs no further clamping.
func RiskScore(reportCount, recentCount, confirmedCount int) int {
	countScore := math.Min(100, float64(reportCount)*20)
	recentScore := math.Min(100, float64(recentCount)*30)
	confirmedScore := math.Min(100, float64(confirmedCount)*40)

	return int(math.Round(
		countScore*riskCountWeight +
			recentScore*riskRecentWeight +
			confirmedScore*riskConfirmedWeight))
}

// AnalyzeTrend compares the most recent value against the mean of the last
// up-to-5 values. Fewer than two values, or a zero mean, is not enough
// signal and reads as stable.
func AnalyzeTrend(values []int) schema.Trend {
	if len(values) < 2 {
		return schema.TrendStable
	}

	recent := values
	if len(recent) > 5 {
		recent = recent[len(recent)-5:]
	}

	sum := 0
	for _, v := range recent {
		sum += v
	}
	mean := float64(sum) / float64(len(recent))
	if mean == 0 {
		return schema.TrendStable
	}

	last := float64(recent[len(recent)-1])
	percentDiff := (last - mean) / mean * 100

	switch {
	case percentDiff > 10:
		return schema.TrendIncreasing
	case percentDiff < -10:
		return schema.TrendDecreasing
	default:
		return schema.TrendStable
	}
}
