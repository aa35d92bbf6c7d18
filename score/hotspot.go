package score

import (
	"sort"
	"time"

	"github.com/schoolhealth/monitor-api/schema"
)

// DetectHotspots groups reports by building and room. Every location seen in
// the snapshot gets one entry; a location with no reports is absent, never a
// zero-count record. All reports count equally regardless of age or status.
func DetectHotspots(reports []schema.HealthReport) map[schema.LocationKey]int {
	counts := make(map[schema.LocationKey]int)
	for _, r := range reports {
		counts[r.Location.Key()]++
	}
	return counts
}

// ClassifyRiskLevel maps a report count onto a discrete risk level using the
// configured ordered thresholds.
func ClassifyRiskLevel(count int, t Thresholds) schema.RiskLevel {
	switch {
	case count >= t.Critical:
		return schema.RiskLevelCritical
	case count >= t.High:
		return schema.RiskLevelHigh
	case count >= t.Medium:
		return schema.RiskLevelMedium
	default:
		return schema.RiskLevelLow
	}
}

// Hotspots builds the classified hotspot records for a snapshot, sorted by
// building then room so repeated calls over the same snapshot produce
// identical output.
func Hotspots(reports []schema.HealthReport, t Thresholds, now time.Time) []schema.HotspotData {
	counts := DetectHotspots(reports)

	hotspots := make([]schema.HotspotData, 0, len(counts))
	for key, count := range counts {
		hotspots = append(hotspots, schema.HotspotData{
			Building:    key.Building,
			Room:        key.Room,
			ReportCount: count,
			RiskLevel:   ClassifyRiskLevel(count, t),
			LastUpdated: now,
		})
	}

	sort.Slice(hotspots, func(i, j int) bool {
		if hotspots[i].Building != hotspots[j].Building {
			return hotspots[i].Building < hotspots[j].Building
		}
		return hotspots[i].Room < hotspots[j].Room
	})

	return hotspots
}
