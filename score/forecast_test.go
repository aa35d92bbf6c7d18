package score_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/schoolhealth/monitor-api/score"
)

func TestForecastDampedTrendRecursion(t *testing.T) {
	cfg := score.DefaultConfig()
	historical := []int{5, 6, 7, 8, 9, 10, 12}

	// trend = 12-10 = 2
	// step1: raw = 14,    smoothed = 0.3*14    + 0.7*12    = 12.6   -> 13
	// step2: raw = 14.4,  smoothed = 0.3*14.4  + 0.7*12.6  = 13.14  -> 13
	// step3: raw = 14.76, smoothed = 0.3*14.76 + 0.7*13.14 = 13.626 -> 14
	assert.Equal(t, []int{13, 13, 14}, score.Forecast(historical, 3, cfg))
}

func TestForecastDeterminism(t *testing.T) {
	cfg := score.DefaultConfig()
	historical := []int{5, 6, 7, 8, 9, 10, 12}

	first := score.Forecast(historical, cfg.ForecastHorizon, cfg)
	second := score.Forecast(historical, cfg.ForecastHorizon, cfg)

	assert.Equal(t, first, second, "same input must give byte-identical output")
	assert.Len(t, first, cfg.ForecastHorizon)
}

func TestForecastDegenerateHistory(t *testing.T) {
	cfg := score.DefaultConfig()

	assert.Equal(t, []int{0, 0, 0}, score.Forecast(nil, 3, cfg), "no history projects zero")
	assert.Equal(t, []int{7, 7, 7}, score.Forecast([]int{7}, 3, cfg), "a single point has no trend")
	assert.Empty(t, score.Forecast([]int{1, 2, 3}, 0, cfg))

	// a collapsing series must never go negative
	for _, p := range score.Forecast([]int{9, 0}, 5, cfg) {
		assert.GreaterOrEqual(t, p, 0)
	}
}

func TestForecastBounds(t *testing.T) {
	lower, upper := score.ForecastBounds(13, 0.3)
	assert.Equal(t, 9, lower)
	assert.Equal(t, 17, upper)

	lower, upper = score.ForecastBounds(0, 0.3)
	assert.Equal(t, 0, lower)
	assert.Equal(t, 0, upper)
}

func TestPredictionSeries(t *testing.T) {
	cfg := score.DefaultConfig()
	cfg.ForecastHorizon = 3
	now := time.Date(2026, 3, 9, 10, 0, 0, 0, time.UTC)

	history := make([]score.DailyCount, 0, 7)
	counts := []int{5, 6, 7, 8, 9, 10, 12}
	for i, c := range counts {
		history = append(history, score.DailyCount{
			Date:  now.AddDate(0, 0, i-6),
			Count: c,
		})
	}

	points := score.PredictionSeries(history, now, cfg)

	assert.Len(t, points, 10)

	// known days carry the observed value everywhere
	for i := 0; i < 7; i++ {
		assert.Equal(t, counts[i], points[i].Confirmed)
		assert.Equal(t, counts[i], points[i].Predicted)
		assert.Equal(t, counts[i], points[i].LowerBound)
		assert.Equal(t, counts[i], points[i].UpperBound)
	}

	assert.Equal(t, "2026-03-10", points[7].Date)
	assert.Equal(t, 13, points[7].Predicted)
	assert.Equal(t, 9, points[7].LowerBound)
	assert.Equal(t, 17, points[7].UpperBound)

	assert.Equal(t, "2026-03-11", points[8].Date)
	assert.Equal(t, 13, points[8].Predicted)

	assert.Equal(t, "2026-03-12", points[9].Date)
	assert.Equal(t, 14, points[9].Predicted)
	assert.Equal(t, 9, points[9].LowerBound)
	assert.Equal(t, 19, points[9].UpperBound)
}
