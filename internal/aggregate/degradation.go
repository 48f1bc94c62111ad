package aggregate

import (
	"math"

	"github.com/testforge/testforge/internal/metrics"
	"github.com/testforge/testforge/internal/models"
)

// Default severity thresholds, in percentage points.
const (
	DefaultSeverityHigh   = 20.0
	DefaultSeverityMedium = 10.0
)

// SeverityPolicy classifies an Easy→Hard drop. Only the CSR and FC drops
// feed the classification; RSR, SVR and coverage are reported but ignored.
type SeverityPolicy struct {
	High   float64 `yaml:"high,omitempty"`
	Medium float64 `yaml:"medium,omitempty"`
}

// DefaultSeverityPolicy returns the 20/10 point thresholds.
func DefaultSeverityPolicy() SeverityPolicy {
	return SeverityPolicy{High: DefaultSeverityHigh, Medium: DefaultSeverityMedium}
}

// Classify maps a drop in points to a severity. Both bounds are exclusive.
func (p SeverityPolicy) Classify(drop float64) models.Severity {
	switch {
	case drop > p.High:
		return models.SeverityHigh
	case drop > p.Medium:
		return models.SeverityMedium
	default:
		return models.SeverityLow
	}
}

// Degradation computes Easy minus Hard drops from by-complexity aggregates.
// It reports false when either endpoint is missing, which callers must keep
// distinct from a zero drop.
func Degradation(byComplexity []models.DimensionAggregate, policy SeverityPolicy) (models.DegradationMetrics, bool) {
	easy, ok := findValue(byComplexity, models.ComplexityEasy)
	if !ok {
		return models.DegradationMetrics{}, false
	}
	hard, ok := findValue(byComplexity, models.ComplexityHard)
	if !ok {
		return models.DegradationMetrics{}, false
	}

	d := models.DegradationMetrics{
		CSRDrop:      metrics.Round2(easy.CSRPercentage - hard.CSRPercentage),
		RSRDrop:      metrics.Round2(easy.RSRPercentage - hard.RSRPercentage),
		SVRDrop:      metrics.Round2(easy.SVRPercentage - hard.SVRPercentage),
		FCDrop:       metrics.Round2(easy.FCPercentage - hard.FCPercentage),
		CoverageDrop: metrics.Round2(easy.AvgLineCoverage - hard.AvgLineCoverage),
	}
	d.Severity = policy.Classify(math.Max(math.Abs(d.CSRDrop), math.Abs(d.FCDrop)))
	return d, true
}

func findValue(aggs []models.DimensionAggregate, value string) (models.DimensionAggregate, bool) {
	for _, a := range aggs {
		if a.Value == value {
			return a, true
		}
	}
	return models.DimensionAggregate{}, false
}
