package aggregate

import (
	"cmp"
	"slices"

	"github.com/testforge/testforge/internal/models"
)

// ByDimension aggregates both row families by dim, returning one entry per
// value seen in either input, in first-seen order.
func ByDimension(dim models.Dimension, setRows []models.SetRow, caseRows []models.CaseRow) []models.DimensionAggregate {
	setGroups := GroupBy(setRows, By[models.SetRow](dim))
	caseGroups := GroupBy(caseRows, By[models.CaseRow](dim))

	keys := unionKeys(setGroups.Keys(), caseGroups.Keys())
	out := make([]models.DimensionAggregate, 0, len(keys))
	for _, k := range keys {
		out = append(out, models.DimensionAggregate{
			Dimension:  dim,
			Value:      k,
			RateBundle: bundle(SumSet(setGroups.Rows(k)), SumCase(caseGroups.Rows(k))),
		})
	}
	return out
}

// ByLLM aggregates by model. The test-case view ranks by FC%; the test-set
// and outcome views rank by SVR%, then CSR%.
func ByLLM(setRows []models.SetRow, caseRows []models.CaseRow, view models.View) []models.DimensionAggregate {
	out := ByDimension(models.DimensionLLM, setRows, caseRows)
	if view == models.ViewTestCase {
		sortByFCDesc(out)
		return out
	}
	slices.SortStableFunc(out, func(a, b models.DimensionAggregate) int {
		if c := cmp.Compare(b.SVRPercentage, a.SVRPercentage); c != 0 {
			return c
		}
		return cmp.Compare(b.CSRPercentage, a.CSRPercentage)
	})
	return out
}

// ByComplexity aggregates by problem complexity in Easy, Moderate, Hard
// order. Unrecognized complexities follow in first-seen order.
func ByComplexity(setRows []models.SetRow, caseRows []models.CaseRow) []models.DimensionAggregate {
	out := ByDimension(models.DimensionComplexity, setRows, caseRows)
	slices.SortStableFunc(out, func(a, b models.DimensionAggregate) int {
		return compareComplexity(a.Value, b.Value)
	})
	return out
}

// ByTestType aggregates by test type, best FC% first.
func ByTestType(setRows []models.SetRow, caseRows []models.CaseRow) []models.DimensionAggregate {
	out := ByDimension(models.DimensionTestType, setRows, caseRows)
	sortByFCDesc(out)
	return out
}

// ByPrompt aggregates by prompting strategy, best FC% first.
func ByPrompt(setRows []models.SetRow, caseRows []models.CaseRow) []models.DimensionAggregate {
	out := ByDimension(models.DimensionPrompt, setRows, caseRows)
	sortByFCDesc(out)
	return out
}

func sortByFCDesc(out []models.DimensionAggregate) {
	slices.SortStableFunc(out, func(a, b models.DimensionAggregate) int {
		return cmp.Compare(b.FCPercentage, a.FCPercentage)
	})
}

// compareComplexity orders known complexities semantically and puts unknown
// ones after them without reordering among themselves.
func compareComplexity(a, b string) int {
	ra, okA := models.ComplexityRank(a)
	rb, okB := models.ComplexityRank(b)
	switch {
	case okA && okB:
		return cmp.Compare(ra, rb)
	case okA:
		return -1
	case okB:
		return 1
	}
	return 0
}
