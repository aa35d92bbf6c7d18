package score_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/schoolhealth/monitor-api/schema"
	"github.com/schoolhealth/monitor-api/score"
)

type riskScoreTestCase struct {
	reportCount    int
	recentCount    int
	confirmedCount int
	expected       int
}

func TestRiskScore(t *testing.T) {
	cases := []riskScoreTestCase{
		{0, 0, 0, 0},
		{3, 2, 0, 42},
		{1, 1, 1, 29},
		// every component clamps at 100 before weighting
		{10, 10, 10, 100},
		{5, 0, 0, 40},
		{0, 4, 0, 30},
		{0, 0, 3, 30},
	}

	for _, c := range cases {
		got := score.RiskScore(c.reportCount, c.recentCount, c.confirmedCount)
		assert.Equal(t, c.expected, got, "counts %d/%d/%d", c.reportCount, c.recentCount, c.confirmedCount)
		assert.GreaterOrEqual(t, got, 0)
		assert.LessOrEqual(t, got, 100)
	}
}

func TestAnalyzeTrend(t *testing.T) {
	cases := []struct {
		values   []int
		expected schema.Trend
	}{
		{nil, schema.TrendStable},
		{[]int{7}, schema.TrendStable},
		{[]int{10, 10, 10, 10, 15}, schema.TrendIncreasing},
		{[]int{10, 10, 10, 10, 10}, schema.TrendStable},
		{[]int{10, 10, 10, 10, 5}, schema.TrendDecreasing},
		// only the last five values count
		{[]int{100, 100, 10, 10, 10, 10, 15}, schema.TrendIncreasing},
		// a zero mean carries no signal
		{[]int{0, 0, 0, 0, 0}, schema.TrendStable},
	}

	for _, c := range cases {
		assert.Equal(t, c.expected, score.AnalyzeTrend(c.values), "values %v", c.values)
	}
}

func TestChangeRate(t *testing.T) {
	cases := []struct {
		new      float64
		old      float64
		expected float64
	}{
		{0, 0, 0},
		{10, 10, 0},
		{0, 10, -100},
		{10, 0, 100},
		{3, 5, -40},
		{3, 2, 50},
	}

	for _, c := range cases {
		assert.Equal(t, c.expected, score.ChangeRate(c.new, c.old))
	}
}
