package score_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/schoolhealth/monitor-api/schema"
	"github.com/schoolhealth/monitor-api/score"
)

func reportAt(building, room string) schema.HealthReport {
	return schema.HealthReport{
		Location: schema.ReportLocation{Building: building, Room: room},
	}
}

func TestDetectHotspots(t *testing.T) {
	reports := []schema.HealthReport{
		reportAt("Main Building", "201"),
		reportAt("Main Building", "201"),
		reportAt("Main Building", "201"),
		reportAt("Science Building", "Lab-1"),
	}

	counts := score.DetectHotspots(reports)

	assert.Len(t, counts, 2)
	assert.Equal(t, 3, counts[schema.LocationKey{Building: "Main Building", Room: "201"}])
	assert.Equal(t, 1, counts[schema.LocationKey{Building: "Science Building", Room: "Lab-1"}])

	_, ok := counts[schema.LocationKey{Building: "Arts Building", Room: "401"}]
	assert.False(t, ok, "a location without reports must not appear")
}

func TestClassifyRiskLevel(t *testing.T) {
	cases := []struct {
		count    int
		expected schema.RiskLevel
	}{
		{0, schema.RiskLevelLow},
		{1, schema.RiskLevelMedium},
		{2, schema.RiskLevelMedium},
		{3, schema.RiskLevelHigh},
		{4, schema.RiskLevelCritical},
		{10, schema.RiskLevelCritical},
	}

	for _, c := range cases {
		assert.Equal(t, c.expected, score.ClassifyRiskLevel(c.count, score.DefaultThresholds), "count %d", c.count)
	}
}

func TestHotspotsSortedAndClassified(t *testing.T) {
	now := time.Now()
	reports := []schema.HealthReport{
		reportAt("Science Building", "Lab-1"),
		reportAt("Main Building", "201"),
		reportAt("Main Building", "201"),
		reportAt("Main Building", "201"),
		reportAt("Arts Building", "401"),
	}

	hotspots := score.Hotspots(reports, score.DefaultThresholds, now)

	assert.Len(t, hotspots, 3)
	assert.Equal(t, "Arts Building", hotspots[0].Building)
	assert.Equal(t, "Main Building", hotspots[1].Building)
	assert.Equal(t, "Science Building", hotspots[2].Building)

	assert.Equal(t, schema.RiskLevelHigh, hotspots[1].RiskLevel)
	assert.Equal(t, 3, hotspots[1].ReportCount)
	assert.Equal(t, schema.RiskLevelMedium, hotspots[0].RiskLevel)
	assert.Equal(t, now, hotspots[0].LastUpdated)
}
