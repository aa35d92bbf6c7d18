package score

import (
	"sort"
	"time"

	"github.com/schoolhealth/monitor-api/schema"
)

func dayStart(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// DailyOnsetCounts buckets reports by the calendar day of onset over the
// trailing window ending at now. Days without reports appear as zero so the
// series has one point per day.
func DailyOnsetCounts(reports []schema.HealthReport, now time.Time, window int) []DailyCount {
	end := dayStart(now)
	start := end.AddDate(0, 0, -(window - 1))

	buckets := make(map[string]int)
	for _, r := range reports {
		day := dayStart(r.DateOfOnset.In(now.Location()))
		if day.Before(start) || day.After(end) {
			continue
		}
		buckets[day.Format("2006-01-02")]++
	}

	series := make([]DailyCount, 0, window)
	for day := start; !day.After(end); day = day.AddDate(0, 0, 1) {
		series = append(series, DailyCount{
			Date:  day,
			Count: buckets[day.Format("2006-01-02")],
		})
	}
	return series
}

// RiskScores computes the per-location risk records for a snapshot, ordered
// by descending score with building/room as tie breaker.
func RiskScores(reports []schema.HealthReport, now time.Time, cfg Config) []schema.RiskScore {
	byLocation := make(map[schema.LocationKey][]schema.HealthReport)
	for _, r := range reports {
		key := r.Location.Key()
		byLocation[key] = append(byLocation[key], r)
	}

	scores := make([]schema.RiskScore, 0, len(byLocation))
	for key, locReports := range byLocation {
		recent := 0
		confirmed := 0
		for _, r := range locReports {
			if now.Sub(r.Timestamp) <= cfg.RecentWindow {
				recent++
			}
			if r.ConfirmedDisease {
				confirmed++
			}
		}

		daily := DailyOnsetCounts(locReports, now, cfg.HistoryWindow)
		counts := make([]int, 0, len(daily))
		for _, day := range daily {
			counts = append(counts, day.Count)
		}

		predicted := 0
		if next := Forecast(counts, 1, cfg); len(next) > 0 {
			predicted = next[0]
		}

		scores = append(scores, schema.RiskScore{
			Building:       key.Building,
			Room:           key.Room,
			Score:          RiskScore(len(locReports), recent, confirmed),
			Trend:          AnalyzeTrend(counts),
			PredictedCases: predicted,
		})
	}

	sort.Slice(scores, func(i, j int) bool {
		if scores[i].Score != scores[j].Score {
			return scores[i].Score > scores[j].Score
		}
		if scores[i].Building != scores[j].Building {
			return scores[i].Building < scores[j].Building
		}
		return scores[i].Room < scores[j].Room
	})

	return scores
}

// Stats summarizes the snapshot for the dashboard header cards.
func Stats(reports []schema.HealthReport, hotspots []schema.HotspotData, now time.Time) schema.DashboardStats {
	today := dayStart(now)

	var totalToday, confirmed int
	var thisWeek, lastWeek int
	weekAgo := now.AddDate(0, 0, -7)
	twoWeeksAgo := now.AddDate(0, 0, -14)

	for _, r := range reports {
		ts := r.Timestamp.In(now.Location())
		if !ts.Before(today) {
			totalToday++
		}
		if r.ConfirmedDisease {
			confirmed++
		}
		if ts.After(weekAgo) {
			thisWeek++
		} else if ts.After(twoWeeksAgo) {
			lastWeek++
		}
	}

	active := 0
	for _, h := range hotspots {
		if h.RiskLevel != schema.RiskLevelLow {
			active++
		}
	}

	return schema.DashboardStats{
		TotalReportsToday: totalToday,
		ConfirmedCases:    confirmed,
		SuspectedCases:    len(reports) - confirmed,
		ActiveHotspots:    active,
		WeeklyGrowthRate:  ChangeRate(float64(thisWeek), float64(lastWeek)),
	}
}

// CalculateDashboard turns one immutable report snapshot into the complete
// metrics bundle. Every panel derives from the same slice, so the totals
// reconcile, and the result is identical across calls for a fixed snapshot
// and clock.
func CalculateDashboard(reports []schema.HealthReport, now time.Time, cfg Config) *schema.DashboardMetrics {
	hotspots := Hotspots(reports, cfg.Thresholds, now)
	daily := DailyOnsetCounts(reports, now, cfg.HistoryWindow)

	return &schema.DashboardMetrics{
		Stats:       Stats(reports, hotspots, now),
		Hotspots:    hotspots,
		Predictions: PredictionSeries(daily, now, cfg),
		Bayesian:    CalculateBayesian(reports, cfg),
		RiskScores:  RiskScores(reports, now, cfg),
		LastUpdate:  now.Unix(),
	}
}
