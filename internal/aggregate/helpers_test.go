package aggregate

import "github.com/testforge/testforge/internal/models"

const delta = 1e-9

type dim struct {
	d models.Dimension
	v string
}

func prompt(v string) dim     { return dim{models.DimensionPrompt, v} }
func testType(v string) dim   { return dim{models.DimensionTestType, v} }
func complexity(v string) dim { return dim{models.DimensionComplexity, v} }

func setRow(llm string, total, compiled, runtime, valid int, dims ...dim) models.SetRow {
	r := models.SetRow{
		LLM:               llm,
		TotalExpected:     total,
		Compiled:          compiled,
		RuntimeSuccess:    runtime,
		SemanticallyValid: valid,
	}
	for _, d := range dims {
		r.Dimensions = r.Dimensions.With(d.d, d.v)
	}
	return r
}

func caseRow(llm string, total, correct int, coverage float64, dims ...dim) models.CaseRow {
	r := models.CaseRow{
		LLM:                      llm,
		TotalTestCases:           total,
		FunctionallyCorrectCases: correct,
		AvgLineCoverage:          coverage,
	}
	for _, d := range dims {
		r.Dimensions = r.Dimensions.With(d.d, d.v)
	}
	return r
}

func values(aggs []models.DimensionAggregate) []string {
	out := make([]string, 0, len(aggs))
	for _, a := range aggs {
		out = append(out, a.Value)
	}
	return out
}
