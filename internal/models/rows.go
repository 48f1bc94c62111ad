package models

// Dimension names one of the categorical axes a row can be keyed by.
type Dimension string

const (
	DimensionLLM        Dimension = "llm"
	DimensionPrompt     Dimension = "prompt_type"
	DimensionTestType   Dimension = "test_type"
	DimensionComplexity Dimension = "complexity"
)

// Dimensions holds the optional categorical fields of a row. Which slots are
// set depends on the granularity file the row came from; a nil slot means the
// column did not exist, not that the value was empty.
type Dimensions struct {
	PromptType *string `json:"prompt_type,omitempty" yaml:"prompt_type,omitempty" mapstructure:"prompt_type"`
	TestType   *string `json:"test_type,omitempty" yaml:"test_type,omitempty" mapstructure:"test_type"`
	Complexity *string `json:"complexity,omitempty" yaml:"complexity,omitempty" mapstructure:"complexity"`
}

// Lookup returns the value of an optional dimension and whether the row
// carries it. DimensionLLM is not optional and always reports false here.
func (d Dimensions) Lookup(dim Dimension) (string, bool) {
	var p *string
	switch dim {
	case DimensionPrompt:
		p = d.PromptType
	case DimensionTestType:
		p = d.TestType
	case DimensionComplexity:
		p = d.Complexity
	}
	if p == nil {
		return "", false
	}
	return *p, true
}

// With returns a copy of d with dim set to value.
func (d Dimensions) With(dim Dimension, value string) Dimensions {
	v := value
	switch dim {
	case DimensionPrompt:
		d.PromptType = &v
	case DimensionTestType:
		d.TestType = &v
	case DimensionComplexity:
		d.Complexity = &v
	}
	return d
}

// SetRow is one row of test-set metrics: whole generated suites and how far
// each got through compile, run and semantic checks.
type SetRow struct {
	LLM               string `json:"llm" yaml:"llm" mapstructure:"llm"`
	TotalExpected     int    `json:"total_expected" yaml:"total_expected" mapstructure:"total_expected"`
	Compiled          int    `json:"compiled" yaml:"compiled" mapstructure:"compiled"`
	RuntimeSuccess    int    `json:"runtime_success" yaml:"runtime_success" mapstructure:"runtime_success"`
	SemanticallyValid int    `json:"semantically_valid" yaml:"semantically_valid" mapstructure:"semantically_valid"`

	// Pre-computed by the source. Only meaningful for this single row.
	CSRPercentage float64 `json:"csr_percentage" yaml:"csr_percentage" mapstructure:"csr_percentage"`
	RSRPercentage float64 `json:"rsr_percentage" yaml:"rsr_percentage" mapstructure:"rsr_percentage"`
	SVRPercentage float64 `json:"svr_percentage" yaml:"svr_percentage" mapstructure:"svr_percentage"`

	Dimensions `yaml:",inline" mapstructure:",squash"`
}

// Key returns the row's value for dim and whether the row carries it.
func (r SetRow) Key(dim Dimension) (string, bool) {
	if dim == DimensionLLM {
		return r.LLM, true
	}
	return r.Lookup(dim)
}

// CaseRow is one row of test-case metrics: individual test cases and the
// coverage achieved by the functionally correct ones.
type CaseRow struct {
	LLM                      string  `json:"llm" yaml:"llm" mapstructure:"llm"`
	TotalTestCases           int     `json:"total_test_cases" yaml:"total_test_cases" mapstructure:"total_test_cases"`
	FunctionallyCorrectCases int     `json:"functionally_correct_cases" yaml:"functionally_correct_cases" mapstructure:"functionally_correct_cases"`
	AvgLineCoverage          float64 `json:"avg_line_coverage" yaml:"avg_line_coverage" mapstructure:"avg_line_coverage"`

	// Pre-computed by the source. Only meaningful for this single row.
	FCPercentage float64 `json:"fc_percentage" yaml:"fc_percentage" mapstructure:"fc_percentage"`

	Dimensions `yaml:",inline" mapstructure:",squash"`
}

// Key returns the row's value for dim and whether the row carries it.
func (r CaseRow) Key(dim Dimension) (string, bool) {
	if dim == DimensionLLM {
		return r.LLM, true
	}
	return r.Lookup(dim)
}
