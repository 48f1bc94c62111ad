package models

// View selects which family of metrics a ranking or insight is based on.
type View string

const (
	ViewTestSet  View = "test-set"
	ViewTestCase View = "test-case"
	ViewOutcomes View = "outcomes"
)

// RateBundle is the full set of recomputed rates for one group of rows.
// All values are percentages on the 0–100 scale.
type RateBundle struct {
	CSRPercentage   float64 `json:"csr_percentage" yaml:"csr_percentage"`
	RSRPercentage   float64 `json:"rsr_percentage" yaml:"rsr_percentage"`
	SVRPercentage   float64 `json:"svr_percentage" yaml:"svr_percentage"`
	FCPercentage    float64 `json:"fc_percentage" yaml:"fc_percentage"`
	AvgLineCoverage float64 `json:"avg_line_coverage" yaml:"avg_line_coverage"`
}

// DimensionAggregate is the rate bundle for one value of a dimension.
type DimensionAggregate struct {
	Dimension Dimension `json:"dimension" yaml:"dimension"`
	Value     string    `json:"value" yaml:"value"`

	RateBundle `yaml:",inline"`
}

// OutcomeMetrics is the four-way outcome partition for one LLM.
// O1 fails to compile, O2 fails at runtime, O3 is semantically invalid and
// O4 is a valid suite. Counts always sum to TotalExpected; percentages are
// normalized to sum to 100.
type OutcomeMetrics struct {
	LLM           string  `json:"llm" yaml:"llm"`
	TotalExpected int     `json:"total_expected" yaml:"total_expected"`
	O1Percentage  float64 `json:"O1_percentage" yaml:"O1_percentage"`
	O2Percentage  float64 `json:"O2_percentage" yaml:"O2_percentage"`
	O3Percentage  float64 `json:"O3_percentage" yaml:"O3_percentage"`
	O4Percentage  float64 `json:"O4_percentage" yaml:"O4_percentage"`
	O1Count       int     `json:"O1_count" yaml:"O1_count"`
	O2Count       int     `json:"O2_count" yaml:"O2_count"`
	O3Count       int     `json:"O3_count" yaml:"O3_count"`
	O4Count       int     `json:"O4_count" yaml:"O4_count"`
}

// OutcomeBreakdown is the normalized outcome partition for one value of a
// dimension other than LLM.
type OutcomeBreakdown struct {
	Dimension     Dimension `json:"dimension" yaml:"dimension"`
	Value         string    `json:"value" yaml:"value"`
	O1Percentage  float64   `json:"O1_percentage" yaml:"O1_percentage"`
	O2Percentage  float64   `json:"O2_percentage" yaml:"O2_percentage"`
	O3Percentage  float64   `json:"O3_percentage" yaml:"O3_percentage"`
	O4Percentage  float64   `json:"O4_percentage" yaml:"O4_percentage"`
	TotalExpected int       `json:"total_expected" yaml:"total_expected"`
}

// Severity classifies how sharply performance drops from Easy to Hard.
type Severity string

const (
	SeverityLow    Severity = "low"
	SeverityMedium Severity = "medium"
	SeverityHigh   Severity = "high"
)

// DegradationMetrics holds Easy minus Hard point drops for each rate.
type DegradationMetrics struct {
	CSRDrop      float64  `json:"csrDrop" yaml:"csrDrop"`
	RSRDrop      float64  `json:"rsrDrop" yaml:"rsrDrop"`
	SVRDrop      float64  `json:"svrDrop" yaml:"svrDrop"`
	FCDrop       float64  `json:"fcDrop" yaml:"fcDrop"`
	CoverageDrop float64  `json:"coverageDrop" yaml:"coverageDrop"`
	Severity     Severity `json:"severity" yaml:"severity"`
}

// CombinedMetrics merges test-set and test-case rates for one LLM. The raw
// case totals are kept so callers can recombine weighted figures.
type CombinedMetrics struct {
	LLM                      string  `json:"llm" yaml:"llm"`
	CSRPercentage            float64 `json:"csr_percentage" yaml:"csr_percentage"`
	RSRPercentage            float64 `json:"rsr_percentage" yaml:"rsr_percentage"`
	SVRPercentage            float64 `json:"svr_percentage" yaml:"svr_percentage"`
	FCPercentage             float64 `json:"fc_percentage" yaml:"fc_percentage"`
	AvgLineCoverage          float64 `json:"avg_line_coverage" yaml:"avg_line_coverage"`
	FunctionallyCorrectCases int     `json:"functionally_correct_cases" yaml:"functionally_correct_cases"`
	TotalTestCases           int     `json:"total_test_cases" yaml:"total_test_cases"`
}

// SummaryMetrics are the dataset-wide headline figures.
type SummaryMetrics struct {
	TotalTests     int     `json:"totalTests" yaml:"totalTests"`
	UniqueProblems int     `json:"uniqueProblems" yaml:"uniqueProblems"`
	AvgCSR         float64 `json:"avgCSR" yaml:"avgCSR"`
	AvgRSR         float64 `json:"avgRSR" yaml:"avgRSR"`
	AvgSVR         float64 `json:"avgSVR" yaml:"avgSVR"`
	AvgFC          float64 `json:"avgFC" yaml:"avgFC"`
	AvgCoverage    float64 `json:"avgCoverage" yaml:"avgCoverage"`
	AvgO1          float64 `json:"avgO1" yaml:"avgO1"`
	AvgO2          float64 `json:"avgO2" yaml:"avgO2"`
	AvgO3          float64 `json:"avgO3" yaml:"avgO3"`
	AvgO4          float64 `json:"avgO4" yaml:"avgO4"`
}

// HeatmapCell is the FC percentage for one LLM and test type.
type HeatmapCell struct {
	LLM      string  `json:"llm" yaml:"llm"`
	TestType string  `json:"test_type" yaml:"test_type"`
	Value    float64 `json:"value" yaml:"value"`
}

// CrossO4 is the valid-suite share for one LLM and one value of a second
// dimension.
type CrossO4 struct {
	LLM           string    `json:"llm" yaml:"llm"`
	Dimension     Dimension `json:"dimension" yaml:"dimension"`
	Value         string    `json:"value" yaml:"value"`
	O4Percentage  float64   `json:"O4_percentage" yaml:"O4_percentage"`
	TotalExpected int       `json:"total_expected" yaml:"total_expected"`
}

// CrossFC is functional correctness (and optionally coverage) for one LLM
// and one value of a second dimension.
type CrossFC struct {
	LLM             string    `json:"llm" yaml:"llm"`
	Dimension       Dimension `json:"dimension" yaml:"dimension"`
	Value           string    `json:"value" yaml:"value"`
	FCPercentage    float64   `json:"fc_percentage" yaml:"fc_percentage"`
	AvgLineCoverage *float64  `json:"avg_line_coverage,omitempty" yaml:"avg_line_coverage,omitempty"`
}
