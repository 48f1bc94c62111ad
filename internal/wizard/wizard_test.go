package wizard

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/testforge/testforge/internal/filter"
	"github.com/testforge/testforge/internal/models"
)

func TestDimensionOptions(t *testing.T) {
	opts := dimensionOptions(models.DimensionPrompt)

	keys := make([]string, 0, len(opts))
	values := make([]string, 0, len(opts))
	for _, o := range opts {
		keys = append(keys, o.Key)
		values = append(values, o.Value)
	}
	assert.Equal(t, []string{"All", "Zero-Shot", "Few-Shot", "Chain-of-Thought"}, keys)
	assert.Equal(t, []string{"all", "zero_shot", "few_shot", "chain_of_thought"}, values)
}

func TestViewOptions(t *testing.T) {
	opts := viewOptions()

	assert.Len(t, opts, 3)
	assert.Equal(t, "test-set", opts[0].Value)
	assert.Equal(t, "outcomes", opts[2].Value)
}

func TestSelectionsFrom(t *testing.T) {
	sel := selectionsFrom(filter.State{Complexity: "Hard"})

	assert.Equal(t, selections{
		View:       "test-set",
		LLM:        "all",
		PromptType: "all",
		TestType:   "all",
		Complexity: "Hard",
	}, sel)
}

func TestSelectionsState(t *testing.T) {
	base := filter.New()
	base.LLM = "Qwen3:4b"

	got := selections{
		View:       "outcomes",
		LLM:        "all",
		PromptType: "few_shot",
		TestType:   "all",
		Complexity: "Easy",
	}.state(base)

	assert.Equal(t, models.ViewOutcomes, got.View)
	assert.Empty(t, got.LLM)
	assert.Equal(t, "few_shot", got.PromptType)
	assert.Empty(t, got.TestType)
	assert.Equal(t, "Easy", got.Complexity)
	assert.Equal(t, "Java", got.Language)
}

func TestSelectionsRoundTrip(t *testing.T) {
	s := filter.New()
	s.View = models.ViewTestCase
	s.TestType = "mix"

	assert.Equal(t, s, selectionsFrom(s).state(s))
}
