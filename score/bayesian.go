package score

import (
	"math"

	"github.com/schoolhealth/monitor-api/schema"
)

// CalculateBayesian updates the outbreak probability from the severe-case
// rate of the current report snapshot. With no severe evidence the
// likelihood ratio stays at 1.0 so the posterior equals the prior; it is
// never 0, which would collapse the posterior.
func CalculateBayesian(reports []schema.HealthReport, cfg Config) schema.BayesianParameter {
	total := len(reports)
	severe := 0
	for _, r := range reports {
		if r.Severity == schema.SeveritySevere {
			severe++
		}
	}

	observedSeverity := float64(0)
	if total > 0 {
		observedSeverity = float64(severe) / float64(total)
	}

	likelihoodRatio := float64(1)
	if observedSeverity > 0 {
		likelihoodRatio = observedSeverity / cfg.BaselineSeverityRate
	}

	posterior := (likelihoodRatio * cfg.PriorProbability) /
		(likelihoodRatio*cfg.PriorProbability + (1 - cfg.PriorProbability))

	return schema.BayesianParameter{
		PriorProbability:     cfg.PriorProbability,
		LikelihoodRatio:      likelihoodRatio,
		PosteriorProbability: posterior,
		ConfidenceInterval: [2]float64{
			math.Max(0, posterior-cfg.ConfidenceMargin),
			math.Min(1, posterior+cfg.ConfidenceMargin),
		},
	}
}
