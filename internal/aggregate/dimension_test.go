package aggregate

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/testforge/testforge/internal/models"
)

func TestByDimension_RecomputesFromCounts(t *testing.T) {
	// per-row CSRs are 100% and 0%; the group CSR is 10/100, not 50%
	rows := []models.SetRow{
		setRow("A", 10, 10, 10, 10, complexity("Easy")),
		setRow("A", 90, 0, 0, 0, complexity("Easy")),
	}
	rows[0].CSRPercentage = 100
	rows[1].CSRPercentage = 0

	got := ByDimension(models.DimensionComplexity, rows, nil)

	require.Len(t, got, 1)
	assert.InDelta(t, 10.0, got[0].CSRPercentage, delta)
	assert.InDelta(t, 100.0, got[0].RSRPercentage, delta)
	assert.InDelta(t, 100.0, got[0].SVRPercentage, delta)
}

func TestByDimension_RateDenominators(t *testing.T) {
	rows := []models.SetRow{setRow("A", 200, 100, 50, 10, prompt("zero_shot"))}

	got := ByDimension(models.DimensionPrompt, rows, nil)

	require.Len(t, got, 1)
	assert.InDelta(t, 50.0, got[0].CSRPercentage, delta, "compiled / total_expected")
	assert.InDelta(t, 50.0, got[0].RSRPercentage, delta, "runtime_success / compiled")
	assert.InDelta(t, 20.0, got[0].SVRPercentage, delta, "semantically_valid / runtime_success")
}

func TestByDimension_WeightedCoverage(t *testing.T) {
	rows := []models.CaseRow{
		caseRow("A", 10, 1, 90, testType("standard")),
		caseRow("A", 100, 99, 10, testType("standard")),
	}

	got := ByDimension(models.DimensionTestType, nil, rows)

	require.Len(t, got, 1)
	assert.InDelta(t, 10.8, got[0].AvgLineCoverage, delta)
	assert.InDelta(t, 100.0/110*100, got[0].FCPercentage, delta)
}

func TestByDimension_ZeroDenominators(t *testing.T) {
	rows := []models.SetRow{setRow("A", 0, 0, 0, 0, prompt("few_shot"))}
	cases := []models.CaseRow{caseRow("A", 0, 0, 75, prompt("few_shot"))}

	got := ByDimension(models.DimensionPrompt, rows, cases)

	require.Len(t, got, 1)
	assert.Equal(t, models.RateBundle{}, got[0].RateBundle)
}

func TestByDimension_ValuesFromEitherInput(t *testing.T) {
	set := []models.SetRow{setRow("A", 10, 5, 5, 5, prompt("zero_shot"))}
	cases := []models.CaseRow{caseRow("A", 10, 5, 50, prompt("few_shot"))}

	got := ByDimension(models.DimensionPrompt, set, cases)

	require.Len(t, got, 2)
	assert.Equal(t, "zero_shot", got[0].Value)
	assert.InDelta(t, 0.0, got[0].FCPercentage, delta)
	assert.Equal(t, "few_shot", got[1].Value)
	assert.InDelta(t, 0.0, got[1].CSRPercentage, delta)
	assert.InDelta(t, 50.0, got[1].FCPercentage, delta)
}

func TestByDimension_UnknownValuesPassThrough(t *testing.T) {
	set := []models.SetRow{
		setRow("GPT-9", 10, 10, 10, 10, testType("fuzz")),
	}

	byType := ByTestType(set, nil)
	require.Len(t, byType, 1)
	assert.Equal(t, "fuzz", byType[0].Value)

	byLLM := ByLLM(set, nil, models.ViewTestSet)
	require.Len(t, byLLM, 1)
	assert.Equal(t, "GPT-9", byLLM[0].Value)
}

func TestByComplexity_SemanticOrder(t *testing.T) {
	tests := []struct {
		name  string
		order []string
	}{
		{"reversed", []string{"Hard", "Moderate", "Easy"}},
		{"shuffled", []string{"Moderate", "Hard", "Easy"}},
		{"alphabetical", []string{"Easy", "Hard", "Moderate"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var set []models.SetRow
			for _, c := range tt.order {
				set = append(set, setRow("A", 10, 5, 5, 5, complexity(c)))
			}
			got := ByComplexity(set, nil)
			assert.Equal(t, []string{"Easy", "Moderate", "Hard"}, values(got))
		})
	}
}

func TestByComplexity_UnknownAfterKnown(t *testing.T) {
	set := []models.SetRow{
		setRow("A", 1, 1, 1, 1, complexity("Extreme")),
		setRow("A", 1, 1, 1, 1, complexity("Hard")),
		setRow("A", 1, 1, 1, 1, complexity("Trivial")),
		setRow("A", 1, 1, 1, 1, complexity("Easy")),
	}

	got := ByComplexity(set, nil)

	assert.Equal(t, []string{"Easy", "Hard", "Extreme", "Trivial"}, values(got))
}

func TestByTestTypeAndPrompt_SortedByFC(t *testing.T) {
	cases := []models.CaseRow{
		caseRow("A", 100, 20, 50, testType("standard"), prompt("zero_shot")),
		caseRow("A", 100, 60, 50, testType("boundary"), prompt("few_shot")),
		caseRow("A", 100, 40, 50, testType("mix"), prompt("chain_of_thought")),
	}

	assert.Equal(t, []string{"boundary", "mix", "standard"}, values(ByTestType(nil, cases)))
	assert.Equal(t, []string{"few_shot", "chain_of_thought", "zero_shot"}, values(ByPrompt(nil, cases)))
}

func TestByLLM_RankingPerView(t *testing.T) {
	set := []models.SetRow{
		setRow("A", 100, 90, 80, 70), // SVR 87.5
		setRow("B", 100, 50, 50, 50), // SVR 100
		setRow("C", 100, 60, 60, 60), // SVR 100, higher CSR than B
	}
	cases := []models.CaseRow{
		caseRow("A", 100, 80, 50),
		caseRow("B", 100, 10, 50),
		caseRow("C", 100, 40, 50),
	}

	assert.Equal(t, []string{"C", "B", "A"}, values(ByLLM(set, cases, models.ViewTestSet)))
	assert.Equal(t, []string{"C", "B", "A"}, values(ByLLM(set, cases, models.ViewOutcomes)))
	assert.Equal(t, []string{"A", "C", "B"}, values(ByLLM(set, cases, models.ViewTestCase)))
}

func TestByLLM_IgnoresOptionalDimensions(t *testing.T) {
	set := []models.SetRow{
		setRow("A", 10, 10, 10, 10, complexity("Easy")),
		setRow("A", 10, 0, 0, 0),
	}

	got := ByLLM(set, nil, models.ViewTestSet)

	require.Len(t, got, 1)
	assert.Equal(t, models.DimensionLLM, got[0].Dimension)
	assert.InDelta(t, 50.0, got[0].CSRPercentage, delta)
}

func TestByDimension_Idempotent(t *testing.T) {
	set := []models.SetRow{
		setRow("A", 30, 20, 10, 5, prompt("zero_shot")),
		setRow("B", 30, 25, 20, 15, prompt("few_shot")),
	}
	cases := []models.CaseRow{caseRow("A", 33, 11, 71.3, prompt("zero_shot"))}

	assert.Equal(t, ByPrompt(set, cases), ByPrompt(set, cases))
}
