package aggregate

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/testforge/testforge/internal/models"
)

func TestO4ByLLMAndTestType(t *testing.T) {
	rows := []models.SetRow{
		setRow("A", 30, 20, 15, 10, testType("standard")),
		setRow("A", 60, 50, 40, 10, testType("standard")),
		setRow("A", 10, 10, 10, 10, testType("boundary")),
		setRow("B", 10, 10, 10, 5),
	}

	got := O4ByLLMAndTestType(rows)

	require.Len(t, got, 2)
	assert.Equal(t, "A", got[0].LLM)
	assert.Equal(t, "standard", got[0].Value)
	assert.Equal(t, models.DimensionTestType, got[0].Dimension)
	assert.Equal(t, 90, got[0].TotalExpected)
	assert.InDelta(t, 22.22, got[0].O4Percentage, delta)
	assert.Equal(t, "boundary", got[1].Value)
	assert.InDelta(t, 100.0, got[1].O4Percentage, delta)
}

func TestO4ByLLMAndComplexityAndPrompt(t *testing.T) {
	rows := []models.SetRow{
		setRow("A", 3, 3, 3, 2, complexity("Easy"), prompt("few_shot")),
		setRow("B", 3, 3, 3, 1, complexity("Easy"), prompt("few_shot")),
	}

	byComplexity := O4ByLLMAndComplexity(rows)
	require.Len(t, byComplexity, 2)
	assert.InDelta(t, 66.67, byComplexity[0].O4Percentage, delta)
	assert.InDelta(t, 33.33, byComplexity[1].O4Percentage, delta)

	byPrompt := O4ByLLMAndPrompt(rows)
	require.Len(t, byPrompt, 2)
	assert.Equal(t, models.DimensionPrompt, byPrompt[0].Dimension)
	assert.Equal(t, "few_shot", byPrompt[1].Value)
}

func TestFCCoverageByLLMAndComplexity(t *testing.T) {
	rows := []models.CaseRow{
		caseRow("A", 10, 1, 90, complexity("Hard")),
		caseRow("A", 200, 99, 10, complexity("Hard")),
		caseRow("A", 10, 0, 80, complexity("Easy")),
	}

	got := FCCoverageByLLMAndComplexity(rows)

	require.Len(t, got, 2)
	assert.Equal(t, "Hard", got[0].Value)
	assert.InDelta(t, 47.62, got[0].FCPercentage, delta)
	require.NotNil(t, got[0].AvgLineCoverage)
	assert.InDelta(t, 10.8, *got[0].AvgLineCoverage, delta)

	// no functionally correct cases means no coverage weight at all
	require.NotNil(t, got[1].AvgLineCoverage)
	assert.InDelta(t, 0.0, *got[1].AvgLineCoverage, delta)
}

func TestFCByLLMAndPrompt(t *testing.T) {
	rows := []models.CaseRow{
		caseRow("A", 3, 1, 50, prompt("zero_shot")),
		caseRow("A", 3, 1, 50),
	}

	got := FCByLLMAndPrompt(rows)

	require.Len(t, got, 1)
	assert.InDelta(t, 33.33, got[0].FCPercentage, delta)
	assert.Nil(t, got[0].AvgLineCoverage)
}

func TestHeatmap(t *testing.T) {
	rows := []models.CaseRow{
		caseRow("A", 3, 1, 50, testType("standard")),
		caseRow("A", 3, 2, 50, testType("boundary")),
		caseRow("B", 0, 0, 0, testType("standard")),
		caseRow("B", 5, 5, 90),
	}

	got := Heatmap(rows)

	require.Len(t, got, 3)
	assert.Equal(t, "A", got[0].LLM)
	assert.Equal(t, "standard", got[0].TestType)
	assert.InDelta(t, 100.0/3, got[0].Value, delta)
	assert.InDelta(t, 200.0/3, got[1].Value, delta)
	assert.Equal(t, "B", got[2].LLM)
	assert.InDelta(t, 0.0, got[2].Value, delta)
}
