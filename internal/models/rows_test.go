package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDimensions_LookupDistinguishesMissingFromEmpty(t *testing.T) {
	var d Dimensions

	_, ok := d.Lookup(DimensionPrompt)
	assert.False(t, ok)

	d = d.With(DimensionPrompt, "")
	v, ok := d.Lookup(DimensionPrompt)
	assert.True(t, ok)
	assert.Empty(t, v)

	_, ok = d.Lookup(DimensionTestType)
	assert.False(t, ok)
}

func TestDimensions_WithDoesNotAlias(t *testing.T) {
	base := Dimensions{}.With(DimensionComplexity, "Easy")
	changed := base.With(DimensionComplexity, "Hard")

	v, _ := base.Lookup(DimensionComplexity)
	assert.Equal(t, "Easy", v)
	v, _ = changed.Lookup(DimensionComplexity)
	assert.Equal(t, "Hard", v)
}

func TestRowKey(t *testing.T) {
	s := SetRow{LLM: "Qwen3:4b", Dimensions: Dimensions{}.With(DimensionTestType, "mix")}

	v, ok := s.Key(DimensionLLM)
	assert.True(t, ok)
	assert.Equal(t, "Qwen3:4b", v)

	v, ok = s.Key(DimensionTestType)
	assert.True(t, ok)
	assert.Equal(t, "mix", v)

	_, ok = s.Key(DimensionPrompt)
	assert.False(t, ok)

	c := CaseRow{LLM: "Qwen3:32b"}
	v, ok = c.Key(DimensionLLM)
	assert.True(t, ok)
	assert.Equal(t, "Qwen3:32b", v)
	_, ok = c.Key(DimensionComplexity)
	assert.False(t, ok)
}

func TestSetRow_JSONOmitsMissingDimensions(t *testing.T) {
	r := SetRow{LLM: "A", TotalExpected: 3, Dimensions: Dimensions{}.With(DimensionPrompt, "few_shot")}

	data, err := json.Marshal(r)
	require.NoError(t, err)

	var m map[string]any
	require.NoError(t, json.Unmarshal(data, &m))
	assert.Equal(t, "few_shot", m["prompt_type"])
	assert.NotContains(t, m, "test_type")
	assert.NotContains(t, m, "complexity")
}
