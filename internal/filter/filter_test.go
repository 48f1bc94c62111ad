package filter

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/testforge/testforge/internal/models"
)

func set(llm string, dims ...[2]string) models.SetRow {
	r := models.SetRow{LLM: llm, TotalExpected: 1}
	for _, d := range dims {
		r.Dimensions = r.Dimensions.With(models.Dimension(d[0]), d[1])
	}
	return r
}

func TestNew(t *testing.T) {
	s := New()

	assert.False(t, s.Active())
	assert.Equal(t, models.ViewTestSet, s.View)
	assert.Equal(t, "Java", s.Language)
	assert.Equal(t, "all", s.String())
}

func TestApplySet(t *testing.T) {
	rows := []models.SetRow{
		set("A", [2]string{"prompt_type", "few_shot"}, [2]string{"complexity", "Easy"}),
		set("A", [2]string{"prompt_type", "zero_shot"}, [2]string{"complexity", "Easy"}),
		set("B", [2]string{"prompt_type", "few_shot"}, [2]string{"complexity", "Hard"}),
		set("A"),
	}

	tests := []struct {
		name  string
		state State
		want  []int
	}{
		{"no predicates", New(), []int{0, 1, 2, 3}},
		{"llm", State{LLM: "A"}, []int{0, 1, 3}},
		{"prompt", State{PromptType: "few_shot"}, []int{0, 2, 3}},
		{"llm and complexity", State{LLM: "A", Complexity: "Easy"}, []int{0, 1, 3}},
		{"all predicates", State{LLM: "B", PromptType: "few_shot", Complexity: "Hard", TestType: "mix"}, []int{2}},
		{"nothing matches", State{LLM: "C"}, nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.state.ApplySet(rows)
			want := make([]models.SetRow, 0, len(tt.want))
			for _, i := range tt.want {
				want = append(want, rows[i])
			}
			assert.ElementsMatch(t, want, got)
		})
	}
}

func TestApplyCase_KeepsRowsLackingDimension(t *testing.T) {
	rows := []models.CaseRow{
		{LLM: "A", Dimensions: models.Dimensions{}.With(models.DimensionTestType, "boundary")},
		{LLM: "A", Dimensions: models.Dimensions{}.With(models.DimensionTestType, "standard")},
		{LLM: "A"},
	}

	got := State{TestType: "boundary"}.ApplyCase(rows)

	require.Len(t, got, 2)
	assert.Equal(t, rows[0], got[0])
	assert.Equal(t, rows[2], got[1])
}

func TestApply_DoesNotModifyInput(t *testing.T) {
	rows := []models.SetRow{set("A"), set("B")}

	_ = State{LLM: "B"}.ApplySet(rows)

	assert.Equal(t, "A", rows[0].LLM)
	assert.Equal(t, "B", rows[1].LLM)
}

func TestSetAndClear(t *testing.T) {
	s := New()
	s.View = models.ViewOutcomes
	s.Set(models.DimensionLLM, "Qwen3:4b")
	s.Set(models.DimensionPrompt, "few_shot")
	s.Set(models.DimensionTestType, "mix")
	s.Set(models.DimensionComplexity, "Hard")

	assert.True(t, s.Active())
	assert.Equal(t, "llm=Qwen3:4b prompt_type=few_shot test_type=mix complexity=Hard", s.String())

	s.Set(models.DimensionTestType, "ALL")
	assert.Empty(t, s.TestType)

	s.Clear()
	assert.False(t, s.Active())
	assert.Equal(t, models.ViewOutcomes, s.View)
	assert.Equal(t, "Java", s.Language)
}

func TestParse(t *testing.T) {
	s, err := Parse("qwen3:32b", "Chain-of-Thought", "mixed", "hard", "test-case")
	require.NoError(t, err)

	assert.Equal(t, "Qwen3:32b", s.LLM)
	assert.Equal(t, "chain_of_thought", s.PromptType)
	assert.Equal(t, "mix", s.TestType)
	assert.Equal(t, "Hard", s.Complexity)
	assert.Equal(t, models.ViewTestCase, s.View)
}

func TestParse_AllAndEmpty(t *testing.T) {
	s, err := Parse("all", "", "All", "", "")
	require.NoError(t, err)

	assert.False(t, s.Active())
	assert.Equal(t, models.ViewTestSet, s.View)
}

func TestParse_Errors(t *testing.T) {
	_, err := Parse("gpt-4o", "few_shot", "fuzz", "", "charts")
	require.Error(t, err)

	msg := err.Error()
	assert.Contains(t, msg, `unknown llm "gpt-4o"`)
	assert.Contains(t, msg, `unknown test_type "fuzz"`)
	assert.Contains(t, msg, `unknown view "charts"`)
	assert.NotContains(t, msg, "prompt_type")
}

func TestChoices(t *testing.T) {
	assert.Equal(t, []string{"all", "standard", "boundary", "mix"}, Choices(models.DimensionTestType))
	assert.Equal(t, []string{"all", "Easy", "Moderate", "Hard"}, Choices(models.DimensionComplexity))
}
