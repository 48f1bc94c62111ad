package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLabel(t *testing.T) {
	tests := []struct {
		dim   Dimension
		value string
		want  string
	}{
		{DimensionPrompt, "chain_of_thought", "Chain-of-Thought"},
		{DimensionTestType, "mix", "Mixed"},
		{DimensionLLM, "Qwen3:4b", "Qwen 3 (4B)"},
		{DimensionComplexity, "Hard", "Hard"},
		{DimensionPrompt, "Few-Shot", "Few-Shot"},
		{DimensionPrompt, "self_consistency", "self_consistency"},
		{Dimension("nope"), "x", "x"},
	}
	for _, tt := range tests {
		t.Run(string(tt.dim)+"/"+tt.value, func(t *testing.T) {
			assert.Equal(t, tt.want, Label(tt.dim, tt.value))
		})
	}
}

func TestNormalize(t *testing.T) {
	assert.Equal(t, "few_shot", NormalizePrompt("Few-Shot"))
	assert.Equal(t, "chain_of_thought", NormalizePrompt(" chain-of-thought "))
	assert.Equal(t, "zero_shot", NormalizePrompt("zero_shot"))

	assert.Equal(t, "mix", NormalizeTestType("Mixed"))
	assert.Equal(t, "mix", NormalizeTestType("mix"))
	assert.Equal(t, "boundary", NormalizeTestType("BOUNDARY"))
}

func TestResolve(t *testing.T) {
	tests := []struct {
		name   string
		dim    Dimension
		in     string
		want   string
		wantOK bool
	}{
		{"prompt value", DimensionPrompt, "few_shot", "few_shot", true},
		{"prompt dashed", DimensionPrompt, "chain-of-thought", "chain_of_thought", true},
		{"prompt label", DimensionPrompt, "Zero-Shot", "zero_shot", true},
		{"test type long form", DimensionTestType, "mixed", "mix", true},
		{"llm value any case", DimensionLLM, "qwen3:32b", "Qwen3:32b", true},
		{"llm label", DimensionLLM, "Llama 3.3 (70B)", "Llama3.3:70b", true},
		{"complexity lower", DimensionComplexity, "moderate", "Moderate", true},
		{"unknown", DimensionComplexity, "Extreme", "", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := Resolve(tt.dim, tt.in)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestComplexityRank(t *testing.T) {
	r, ok := ComplexityRank("Easy")
	assert.True(t, ok)
	assert.Equal(t, 0, r)

	r, ok = ComplexityRank("Hard")
	assert.True(t, ok)
	assert.Equal(t, 2, r)

	_, ok = ComplexityRank("easy")
	assert.False(t, ok)
}

func TestIsKnown(t *testing.T) {
	assert.True(t, IsKnown(DimensionTestType, "boundary"))
	assert.False(t, IsKnown(DimensionTestType, "Boundary"))
	assert.False(t, IsKnown(DimensionLLM, "gpt-4o"))
}
