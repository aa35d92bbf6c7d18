package score

import (
	"math"
	"time"

	"github.com/schoolhealth/monitor-api/schema"
)

// DailyCount is one calendar day of confirmed report counts.
type DailyCount struct {
	Date  time.Time
	Count int
}

// Forecast projects future daily case counts with damped trend exponential
// smoothing. The trend shrinks by the decay factor at every step so the
// projection flattens instead of extrapolating linearly forever. The
// recursion is deterministic: same inputs, same constants, same output.
func Forecast(historical []int, horizonDays int, cfg Config) []int {
	predictions := make([]int, 0, horizonDays)
	if horizonDays <= 0 {
		return predictions
	}

	lastValue := float64(0)
	trend := float64(0)
	if n := len(historical); n > 0 {
		lastValue = float64(historical[n-1])
		if n > 1 {
			trend = float64(historical[n-1] - historical[n-2])
		}
	}

	for i := 0; i < horizonDays; i++ {
		predicted := lastValue + trend
		smoothed := cfg.SmoothingAlpha*predicted + (1-cfg.SmoothingAlpha)*lastValue

		predictions = append(predictions, int(math.Max(0, math.Round(smoothed))))
		lastValue = smoothed
		trend = trend * cfg.TrendDecay
	}

	return predictions
}

// ForecastBounds returns the uncertainty band around a prediction. This is a
// fixed ratio band, not a statistically derived interval.
func ForecastBounds(predicted int, ratio float64) (lower, upper int) {
	lower = int(math.Floor(float64(predicted) * (1 - ratio)))
	if lower < 0 {
		lower = 0
	}
	upper = int(math.Ceil(float64(predicted) * (1 + ratio)))
	return lower, upper
}

// PredictionSeries concatenates the historical window with the forecast
// horizon. Historical points carry the observed count in every field since
// there is no uncertainty on known data.
func PredictionSeries(history []DailyCount, now time.Time, cfg Config) []schema.PredictionPoint {
	points := make([]schema.PredictionPoint, 0, len(history)+cfg.ForecastHorizon)

	counts := make([]int, 0, len(history))
	for _, day := range history {
		counts = append(counts, day.Count)
		points = append(points, schema.PredictionPoint{
			Date:       day.Date.Format("2006-01-02"),
			Confirmed:  day.Count,
			Predicted:  day.Count,
			LowerBound: day.Count,
			UpperBound: day.Count,
		})
	}

	start := now
	if len(history) > 0 {
		start = history[len(history)-1].Date
	}

	for i, predicted := range Forecast(counts, cfg.ForecastHorizon, cfg) {
		lower, upper := ForecastBounds(predicted, cfg.BoundRatio)
		points = append(points, schema.PredictionPoint{
			Date:       start.AddDate(0, 0, i+1).Format("2006-01-02"),
			Predicted:  predicted,
			LowerBound: lower,
			UpperBound: upper,
		})
	}

	return points
}
