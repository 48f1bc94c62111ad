package models

import "strings"

// Option is one known value of a dimension together with its display label.
type Option struct {
	Value string
	Label string
}

// Known dimension values. The aggregation engine does not validate against
// these; they drive labels, flag validation and the fixed complexity order.
var (
	LLMs = []Option{
		{"Llama3.3:70b", "Llama 3.3 (70B)"},
		{"Qwen2.5-coder:14b", "Qwen 2.5 Coder (14B)"},
		{"Qwen3:4b", "Qwen 3 (4B)"},
		{"Qwen3:32b", "Qwen 3 (32B)"},
	}

	PromptTypes = []Option{
		{"zero_shot", "Zero-Shot"},
		{"few_shot", "Few-Shot"},
		{"chain_of_thought", "Chain-of-Thought"},
	}

	TestTypes = []Option{
		{"standard", "Standard"},
		{"boundary", "Boundary"},
		{"mix", "Mixed"},
	}

	Complexities = []Option{
		{ComplexityEasy, ComplexityEasy},
		{ComplexityModerate, ComplexityModerate},
		{ComplexityHard, ComplexityHard},
	}
)

const (
	ComplexityEasy     = "Easy"
	ComplexityModerate = "Moderate"
	ComplexityHard     = "Hard"
)

// SourceLanguage is the language of the programs under test. Only Java is
// benchmarked today.
const SourceLanguage = "Java"

// OptionsFor returns the known values of dim.
func OptionsFor(dim Dimension) []Option {
	switch dim {
	case DimensionLLM:
		return LLMs
	case DimensionPrompt:
		return PromptTypes
	case DimensionTestType:
		return TestTypes
	case DimensionComplexity:
		return Complexities
	}
	return nil
}

// Label returns the display label for value, or value itself when unknown.
func Label(dim Dimension, value string) string {
	for _, o := range OptionsFor(dim) {
		if o.Value == value || o.Label == value {
			return o.Label
		}
	}
	return value
}

// IsKnown reports whether value is one of the known values of dim.
func IsKnown(dim Dimension, value string) bool {
	for _, o := range OptionsFor(dim) {
		if o.Value == value {
			return true
		}
	}
	return false
}

// ComplexityRank returns the position of c in the Easy, Moderate, Hard order
// and false for any other value.
func ComplexityRank(c string) (int, bool) {
	for i, o := range Complexities {
		if o.Value == c {
			return i, true
		}
	}
	return 0, false
}

// NormalizePrompt canonicalizes a prompt type spelling: lower case with
// underscores, so "Few-Shot" becomes "few_shot".
func NormalizePrompt(s string) string {
	return strings.ReplaceAll(strings.ToLower(strings.TrimSpace(s)), "-", "_")
}

// NormalizeTestType canonicalizes a test type spelling: lower case, with the
// long form "mixed" folded to "mix".
func NormalizeTestType(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "mixed" {
		return "mix"
	}
	return s
}

// Resolve maps user input to the known value of dim. It accepts the value or
// its label in any case, after the dimension's normalization.
func Resolve(dim Dimension, s string) (string, bool) {
	in := strings.TrimSpace(s)
	switch dim {
	case DimensionPrompt:
		in = NormalizePrompt(in)
	case DimensionTestType:
		in = NormalizeTestType(in)
	}
	for _, o := range OptionsFor(dim) {
		if strings.EqualFold(o.Value, in) || strings.EqualFold(o.Label, s) {
			return o.Value, true
		}
	}
	return "", false
}
