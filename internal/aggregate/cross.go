package aggregate

import (
	"github.com/testforge/testforge/internal/metrics"
	"github.com/testforge/testforge/internal/models"
)

// O4ByLLMAnd computes the valid-suite share for every (LLM, dim) pair seen in
// setRows, rounded to hundredths, in first-seen order.
func O4ByLLMAnd(dim models.Dimension, setRows []models.SetRow) []models.CrossO4 {
	groups := GroupBy(setRows, ByPair[models.SetRow](models.DimensionLLM, dim))

	out := make([]models.CrossO4, 0, groups.Len())
	for _, k := range groups.Keys() {
		t := SumSet(groups.Rows(k))
		out = append(out, models.CrossO4{
			LLM:           k.A,
			Dimension:     dim,
			Value:         k.B,
			O4Percentage:  metrics.Round2(t.ValidShare()),
			TotalExpected: t.TotalExpected,
		})
	}
	return out
}

// O4ByLLMAndTestType is O4ByLLMAnd over test types.
func O4ByLLMAndTestType(setRows []models.SetRow) []models.CrossO4 {
	return O4ByLLMAnd(models.DimensionTestType, setRows)
}

// O4ByLLMAndComplexity is O4ByLLMAnd over complexities.
func O4ByLLMAndComplexity(setRows []models.SetRow) []models.CrossO4 {
	return O4ByLLMAnd(models.DimensionComplexity, setRows)
}

// O4ByLLMAndPrompt is O4ByLLMAnd over prompting strategies.
func O4ByLLMAndPrompt(setRows []models.SetRow) []models.CrossO4 {
	return O4ByLLMAnd(models.DimensionPrompt, setRows)
}

// FCCoverageByLLMAndComplexity computes FC% and weighted coverage for every
// (LLM, complexity) pair, rounded to hundredths.
func FCCoverageByLLMAndComplexity(caseRows []models.CaseRow) []models.CrossFC {
	return fcByLLMAnd(models.DimensionComplexity, caseRows, true)
}

// FCByLLMAndPrompt computes FC% for every (LLM, prompt) pair, rounded to
// hundredths.
func FCByLLMAndPrompt(caseRows []models.CaseRow) []models.CrossFC {
	return fcByLLMAnd(models.DimensionPrompt, caseRows, false)
}

func fcByLLMAnd(dim models.Dimension, caseRows []models.CaseRow, withCoverage bool) []models.CrossFC {
	groups := GroupBy(caseRows, ByPair[models.CaseRow](models.DimensionLLM, dim))

	out := make([]models.CrossFC, 0, groups.Len())
	for _, k := range groups.Keys() {
		t := SumCase(groups.Rows(k))
		c := models.CrossFC{
			LLM:          k.A,
			Dimension:    dim,
			Value:        k.B,
			FCPercentage: metrics.Round2(t.FC()),
		}
		if withCoverage {
			cov := metrics.Round2(t.AvgLineCoverage)
			c.AvgLineCoverage = &cov
		}
		out = append(out, c)
	}
	return out
}

// Heatmap computes the FC% cell for every (LLM, test type) pair. Values are
// not rounded; the renderer picks its own precision.
func Heatmap(caseRows []models.CaseRow) []models.HeatmapCell {
	groups := GroupBy(caseRows, ByPair[models.CaseRow](models.DimensionLLM, models.DimensionTestType))

	out := make([]models.HeatmapCell, 0, groups.Len())
	for _, k := range groups.Keys() {
		out = append(out, models.HeatmapCell{
			LLM:      k.A,
			TestType: k.B,
			Value:    SumCase(groups.Rows(k)).FC(),
		})
	}
	return out
}
