package aggregate

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/testforge/testforge/internal/models"
)

func complexityAgg(value string, csr, fc float64) models.DimensionAggregate {
	return models.DimensionAggregate{
		Dimension: models.DimensionComplexity,
		Value:     value,
		RateBundle: models.RateBundle{
			CSRPercentage:   csr,
			RSRPercentage:   csr - 5,
			SVRPercentage:   csr - 10,
			FCPercentage:    fc,
			AvgLineCoverage: fc + 20,
		},
	}
}

func TestDegradation_Unavailable(t *testing.T) {
	tests := []struct {
		name string
		aggs []models.DimensionAggregate
	}{
		{"empty", nil},
		{"missing_hard", []models.DimensionAggregate{complexityAgg("Easy", 90, 60), complexityAgg("Moderate", 80, 50)}},
		{"missing_easy", []models.DimensionAggregate{complexityAgg("Moderate", 80, 50), complexityAgg("Hard", 70, 40)}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := Degradation(tt.aggs, DefaultSeverityPolicy())
			assert.False(t, ok)
			assert.Equal(t, models.DegradationMetrics{}, got)
		})
	}
}

func TestDegradation_Drops(t *testing.T) {
	aggs := []models.DimensionAggregate{
		complexityAgg("Easy", 90.123, 60.004),
		complexityAgg("Moderate", 80, 50),
		complexityAgg("Hard", 72.1, 55.001),
	}

	got, ok := Degradation(aggs, DefaultSeverityPolicy())

	require.True(t, ok)
	assert.InDelta(t, 18.02, got.CSRDrop, delta)
	assert.InDelta(t, 18.02, got.RSRDrop, delta)
	assert.InDelta(t, 18.02, got.SVRDrop, delta)
	assert.InDelta(t, 5.0, got.FCDrop, delta)
	assert.InDelta(t, 5.0, got.CoverageDrop, delta)
	assert.Equal(t, models.SeverityMedium, got.Severity)
}

func TestDegradation_Severity(t *testing.T) {
	tests := []struct {
		name     string
		easy     [2]float64
		hard     [2]float64
		policy   SeverityPolicy
		severity models.Severity
	}{
		{"csr_high", [2]float64{90, 60}, [2]float64{65, 55}, DefaultSeverityPolicy(), models.SeverityHigh},
		{"fc_high", [2]float64{90, 60}, [2]float64{85, 30}, DefaultSeverityPolicy(), models.SeverityHigh},
		{"medium", [2]float64{90, 60}, [2]float64{75, 55}, DefaultSeverityPolicy(), models.SeverityMedium},
		{"low", [2]float64{90, 60}, [2]float64{85, 55}, DefaultSeverityPolicy(), models.SeverityLow},
		{"boundary_is_exclusive", [2]float64{90, 60}, [2]float64{70, 50}, DefaultSeverityPolicy(), models.SeverityMedium},
		{"improvement_counts_by_magnitude", [2]float64{50, 40}, [2]float64{80, 45}, DefaultSeverityPolicy(), models.SeverityHigh},
		{"custom_policy", [2]float64{90, 60}, [2]float64{85, 55}, SeverityPolicy{High: 4, Medium: 2}, models.SeverityHigh},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			aggs := []models.DimensionAggregate{
				complexityAgg("Easy", tt.easy[0], tt.easy[1]),
				complexityAgg("Hard", tt.hard[0], tt.hard[1]),
			}
			got, ok := Degradation(aggs, tt.policy)
			require.True(t, ok)
			assert.Equal(t, tt.severity, got.Severity)
		})
	}
}

func TestDegradation_FromByComplexity(t *testing.T) {
	set := []models.SetRow{
		setRow("A", 100, 90, 80, 70, complexity("Easy")),
		setRow("A", 100, 40, 30, 20, complexity("Hard")),
	}

	got, ok := Degradation(ByComplexity(set, nil), DefaultSeverityPolicy())

	require.True(t, ok)
	assert.InDelta(t, 50.0, got.CSRDrop, delta)
	assert.Equal(t, models.SeverityHigh, got.Severity)

	_, ok = Degradation(ByComplexity(set[:1], nil), DefaultSeverityPolicy())
	assert.False(t, ok)
}
