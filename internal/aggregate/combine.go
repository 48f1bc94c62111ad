package aggregate

import (
	"cmp"
	"slices"

	"github.com/testforge/testforge/internal/models"
)

// Combine merges test-set and test-case aggregates per LLM. A model present
// in only one input still gets a record, with zeros for the other side.
// Results are ordered best FC% first.
func Combine(setRows []models.SetRow, caseRows []models.CaseRow) []models.CombinedMetrics {
	setGroups := GroupBy(setRows, By[models.SetRow](models.DimensionLLM))
	caseGroups := GroupBy(caseRows, By[models.CaseRow](models.DimensionLLM))

	llms := unionKeys(setGroups.Keys(), caseGroups.Keys())
	out := make([]models.CombinedMetrics, 0, len(llms))
	for _, llm := range llms {
		s := SumSet(setGroups.Rows(llm))
		c := SumCase(caseGroups.Rows(llm))
		out = append(out, models.CombinedMetrics{
			LLM:                      llm,
			CSRPercentage:            s.CSR(),
			RSRPercentage:            s.RSR(),
			SVRPercentage:            s.SVR(),
			FCPercentage:             c.FC(),
			AvgLineCoverage:          c.AvgLineCoverage,
			FunctionallyCorrectCases: c.FunctionallyCorrectCases,
			TotalTestCases:           c.TotalTestCases,
		})
	}

	slices.SortStableFunc(out, func(a, b models.CombinedMetrics) int {
		return cmp.Compare(b.FCPercentage, a.FCPercentage)
	})
	return out
}
