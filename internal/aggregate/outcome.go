package aggregate

import (
	"cmp"
	"log/slog"
	"math"
	"slices"

	"github.com/testforge/testforge/internal/metrics"
	"github.com/testforge/testforge/internal/models"
)

// MaxRoundingResidual is the largest correction NormalizeToSum100 should ever
// need for four values rounded to hundredths. A bigger residual means the
// counts themselves are inconsistent.
const MaxRoundingResidual = 0.05

// Partition is the four-way outcome split of a set of test suites:
// fails to compile, fails at runtime, semantically invalid, valid.
type Partition struct {
	TotalExpected int
	Counts        [4]int
	Percentages   [4]float64
}

// NewPartition derives the outcome classes from summed counts. All four
// counts come from the same totals, so they always add up to TotalExpected.
// Percentages are rounded to hundredths and corrected to sum to 100.
func NewPartition(t SetTotals) Partition {
	p := Partition{
		TotalExpected: t.TotalExpected,
		Counts: [4]int{
			t.TotalExpected - t.Compiled,
			t.Compiled - t.RuntimeSuccess,
			t.RuntimeSuccess - t.SemanticallyValid,
			t.SemanticallyValid,
		},
	}

	var raw [4]float64
	for i, c := range p.Counts {
		raw[i] = metrics.Rate(c, t.TotalExpected)
	}

	var residual float64
	p.Percentages, residual = metrics.NormalizeToSum100(raw)
	if math.Abs(residual) > MaxRoundingResidual {
		slog.Warn("Outcome percentages needed more than a rounding correction",
			"residual", residual,
			"total_expected", t.TotalExpected,
			"counts", p.Counts)
	}
	return p
}

// Outcomes computes the outcome partition per LLM, most valid suites first.
func Outcomes(setRows []models.SetRow) []models.OutcomeMetrics {
	groups := GroupBy(setRows, By[models.SetRow](models.DimensionLLM))

	out := make([]models.OutcomeMetrics, 0, groups.Len())
	for _, llm := range groups.Keys() {
		p := NewPartition(SumSet(groups.Rows(llm)))
		out = append(out, models.OutcomeMetrics{
			LLM:           llm,
			TotalExpected: p.TotalExpected,
			O1Percentage:  p.Percentages[0],
			O2Percentage:  p.Percentages[1],
			O3Percentage:  p.Percentages[2],
			O4Percentage:  p.Percentages[3],
			O1Count:       p.Counts[0],
			O2Count:       p.Counts[1],
			O3Count:       p.Counts[2],
			O4Count:       p.Counts[3],
		})
	}

	slices.SortStableFunc(out, func(a, b models.OutcomeMetrics) int {
		return cmp.Compare(b.O4Percentage, a.O4Percentage)
	})
	return out
}

// OutcomesByComplexity always returns Easy, Moderate and Hard, with zeros for
// buckets that have no rows, followed by any unrecognized complexities.
func OutcomesByComplexity(setRows []models.SetRow) []models.OutcomeBreakdown {
	groups := GroupBy(setRows, By[models.SetRow](models.DimensionComplexity))

	keys := make([]string, 0, len(models.Complexities)+groups.Len())
	for _, c := range models.Complexities {
		keys = append(keys, c.Value)
	}
	keys = unionKeys(keys, groups.Keys())

	out := make([]models.OutcomeBreakdown, 0, len(keys))
	for _, k := range keys {
		out = append(out, breakdown(models.DimensionComplexity, k, groups.Rows(k)))
	}
	return out
}

// OutcomesByTestType computes the outcome partition per test type, most
// valid suites first.
func OutcomesByTestType(setRows []models.SetRow) []models.OutcomeBreakdown {
	return outcomesBy(models.DimensionTestType, setRows)
}

// OutcomesByPrompt computes the outcome partition per prompting strategy,
// most valid suites first.
func OutcomesByPrompt(setRows []models.SetRow) []models.OutcomeBreakdown {
	return outcomesBy(models.DimensionPrompt, setRows)
}

func outcomesBy(dim models.Dimension, setRows []models.SetRow) []models.OutcomeBreakdown {
	groups := GroupBy(setRows, By[models.SetRow](dim))

	out := make([]models.OutcomeBreakdown, 0, groups.Len())
	for _, k := range groups.Keys() {
		out = append(out, breakdown(dim, k, groups.Rows(k)))
	}

	slices.SortStableFunc(out, func(a, b models.OutcomeBreakdown) int {
		return cmp.Compare(b.O4Percentage, a.O4Percentage)
	})
	return out
}

func breakdown(dim models.Dimension, value string, rows []models.SetRow) models.OutcomeBreakdown {
	p := NewPartition(SumSet(rows))
	return models.OutcomeBreakdown{
		Dimension:     dim,
		Value:         value,
		O1Percentage:  p.Percentages[0],
		O2Percentage:  p.Percentages[1],
		O3Percentage:  p.Percentages[2],
		O4Percentage:  p.Percentages[3],
		TotalExpected: p.TotalExpected,
	}
}
