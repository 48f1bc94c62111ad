package aggregate

import (
	"github.com/testforge/testforge/internal/metrics"
	"github.com/testforge/testforge/internal/models"
)

// SetTotals are the summed counts of a group of test-set rows.
type SetTotals struct {
	TotalExpected     int
	Compiled          int
	RuntimeSuccess    int
	SemanticallyValid int
}

// SumSet adds up the counts of rows.
func SumSet(rows []models.SetRow) SetTotals {
	var t SetTotals
	for _, r := range rows {
		t.TotalExpected += r.TotalExpected
		t.Compiled += r.Compiled
		t.RuntimeSuccess += r.RuntimeSuccess
		t.SemanticallyValid += r.SemanticallyValid
	}
	return t
}

// CSR is compiled over total expected.
func (t SetTotals) CSR() float64 { return metrics.Rate(t.Compiled, t.TotalExpected) }

// RSR is runtime successes over compiled suites.
func (t SetTotals) RSR() float64 { return metrics.Rate(t.RuntimeSuccess, t.Compiled) }

// SVR is semantically valid suites over runtime successes.
func (t SetTotals) SVR() float64 { return metrics.Rate(t.SemanticallyValid, t.RuntimeSuccess) }

// ValidShare is semantically valid suites over total expected (O4).
func (t SetTotals) ValidShare() float64 {
	return metrics.Rate(t.SemanticallyValid, t.TotalExpected)
}

// CaseTotals are the summed counts of a group of test-case rows together with
// their coverage weighted by functionally correct cases.
type CaseTotals struct {
	TotalTestCases           int
	FunctionallyCorrectCases int
	AvgLineCoverage          float64
}

// SumCase adds up the counts of rows. Coverage is only measured on
// functionally correct cases, so each row's coverage is weighted by its
// functionally correct case count.
func SumCase(rows []models.CaseRow) CaseTotals {
	var t CaseTotals
	coverage := make([]float64, 0, len(rows))
	weights := make([]float64, 0, len(rows))
	for _, r := range rows {
		t.TotalTestCases += r.TotalTestCases
		t.FunctionallyCorrectCases += r.FunctionallyCorrectCases
		coverage = append(coverage, r.AvgLineCoverage)
		weights = append(weights, float64(r.FunctionallyCorrectCases))
	}
	t.AvgLineCoverage = metrics.WeightedMean(coverage, weights)
	return t
}

// FC is functionally correct cases over all test cases.
func (t CaseTotals) FC() float64 {
	return metrics.Rate(t.FunctionallyCorrectCases, t.TotalTestCases)
}

// bundle builds the rate bundle for one group from both families.
func bundle(s SetTotals, c CaseTotals) models.RateBundle {
	return models.RateBundle{
		CSRPercentage:   s.CSR(),
		RSRPercentage:   s.RSR(),
		SVRPercentage:   s.SVR(),
		FCPercentage:    c.FC(),
		AvgLineCoverage: c.AvgLineCoverage,
	}
}
