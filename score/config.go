package score

import (
	"fmt"
	"time"

	"github.com/spf13/viper"
)

const (
	DefaultPriorProbability     = 0.15
	DefaultBaselineSeverityRate = 0.10
	DefaultConfidenceMargin     = 0.07
	DefaultSmoothingAlpha       = 0.3
	DefaultTrendDecay           = 0.9
	DefaultBoundRatio           = 0.3
	DefaultForecastHorizon      = 14
	DefaultHistoryWindow        = 7
	DefaultRecentWindow         = 48 * time.Hour
)

// Thresholds are the hotspot classification boundaries. A location counts as
// critical at or above Critical, high at or above High, medium at or above
// Medium, and low below that.
type Thresholds struct {
	Critical int
	High     int
	Medium   int
}

var DefaultThresholds = Thresholds{Critical: 4, High: 3, Medium: 1}

// Config carries every analytics tunable. It is immutable after load; all
// computations are pure functions of a report snapshot and a Config.
type Config struct {
	PriorProbability     float64
	BaselineSeverityRate float64
	ConfidenceMargin     float64
	SmoothingAlpha       float64
	TrendDecay           float64
	BoundRatio           float64
	ForecastHorizon      int
	HistoryWindow        int
	RecentWindow         time.Duration
	Thresholds           Thresholds
}

func DefaultConfig() Config {
	return Config{
		PriorProbability:     DefaultPriorProbability,
		BaselineSeverityRate: DefaultBaselineSeverityRate,
		ConfidenceMargin:     DefaultConfidenceMargin,
		SmoothingAlpha:       DefaultSmoothingAlpha,
		TrendDecay:           DefaultTrendDecay,
		BoundRatio:           DefaultBoundRatio,
		ForecastHorizon:      DefaultForecastHorizon,
		HistoryWindow:        DefaultHistoryWindow,
		RecentWindow:         DefaultRecentWindow,
		Thresholds:           DefaultThresholds,
	}
}

// ConfigFromViper reads overrides from the `score.*` config keys and
// validates them. Invalid tunables are rejected here, at load time, never
// per call.
func ConfigFromViper() (Config, error) {
	c := DefaultConfig()

	if viper.IsSet("score.prior") {
		c.PriorProbability = viper.GetFloat64("score.prior")
	}
	if viper.IsSet("score.baseline_severity") {
		c.BaselineSeverityRate = viper.GetFloat64("score.baseline_severity")
	}
	if viper.IsSet("score.confidence_margin") {
		c.ConfidenceMargin = viper.GetFloat64("score.confidence_margin")
	}
	if viper.IsSet("score.alpha") {
		c.SmoothingAlpha = viper.GetFloat64("score.alpha")
	}
	if viper.IsSet("score.trend_decay") {
		c.TrendDecay = viper.GetFloat64("score.trend_decay")
	}
	if viper.IsSet("score.bound_ratio") {
		c.BoundRatio = viper.GetFloat64("score.bound_ratio")
	}
	if viper.IsSet("score.horizon") {
		c.ForecastHorizon = viper.GetInt("score.horizon")
	}
	if viper.IsSet("score.history_window") {
		c.HistoryWindow = viper.GetInt("score.history_window")
	}
	if viper.IsSet("score.recent_window") {
		c.RecentWindow = viper.GetDuration("score.recent_window")
	}
	if viper.IsSet("score.threshold.critical") {
		c.Thresholds.Critical = viper.GetInt("score.threshold.critical")
	}
	if viper.IsSet("score.threshold.high") {
		c.Thresholds.High = viper.GetInt("score.threshold.high")
	}
	if viper.IsSet("score.threshold.medium") {
		c.Thresholds.Medium = viper.GetInt("score.threshold.medium")
	}

	if err := c.Valid(); err != nil {
		return Config{}, err
	}
	return c, nil
}

func (c Config) Valid() error {
	if c.PriorProbability < 0 || c.PriorProbability > 1 {
		return fmt.Errorf("prior probability %f out of [0,1]", c.PriorProbability)
	}
	if c.BaselineSeverityRate <= 0 || c.BaselineSeverityRate > 1 {
		return fmt.Errorf("baseline severity rate %f out of (0,1]", c.BaselineSeverityRate)
	}
	if c.ConfidenceMargin < 0 || c.ConfidenceMargin > 1 {
		return fmt.Errorf("confidence margin %f out of [0,1]", c.ConfidenceMargin)
	}
	if c.SmoothingAlpha < 0 || c.SmoothingAlpha > 1 {
		return fmt.Errorf("smoothing alpha %f out of [0,1]", c.SmoothingAlpha)
	}
	if c.TrendDecay < 0 || c.TrendDecay > 1 {
		return fmt.Errorf("trend decay %f out of [0,1]", c.TrendDecay)
	}
	if c.BoundRatio < 0 || c.BoundRatio >= 1 {
		return fmt.Errorf("bound ratio %f out of [0,1)", c.BoundRatio)
	}
	if c.ForecastHorizon <= 0 {
		return fmt.Errorf("forecast horizon %d is not positive", c.ForecastHorizon)
	}
	if c.HistoryWindow <= 0 {
		return fmt.Errorf("history window %d is not positive", c.HistoryWindow)
	}
	if c.RecentWindow <= 0 {
		return fmt.Errorf("recent window %s is not positive", c.RecentWindow)
	}
	if c.Thresholds.Critical < c.Thresholds.High ||
		c.Thresholds.High < c.Thresholds.Medium ||
		c.Thresholds.Medium < 1 {
		return fmt.Errorf("hotspot thresholds %+v are not ordered", c.Thresholds)
	}
	return nil
}
