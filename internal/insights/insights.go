// Package insights turns aggregated metrics into short ranked findings for
// reports.
package insights

import (
	"cmp"
	"fmt"
	"math"
	"slices"

	"github.com/testforge/testforge/internal/aggregate"
	"github.com/testforge/testforge/internal/metrics"
	"github.com/testforge/testforge/internal/models"
)

// Kind groups insights by what they tell the reader.
type Kind string

const (
	KindRanking        Kind = "ranking"
	KindTrend          Kind = "trend"
	KindWarning        Kind = "warning"
	KindRecommendation Kind = "recommendation"
)

// Insight is one finding.
type Insight struct {
	ID       string          `json:"id" yaml:"id"`
	Kind     Kind            `json:"kind" yaml:"kind"`
	Title    string          `json:"title" yaml:"title"`
	Message  string          `json:"message" yaml:"message"`
	Severity models.Severity `json:"severity,omitempty" yaml:"severity,omitempty"`
}

// Thresholds in percentage points.
const (
	CoverageGapThreshold   = 30.0
	PromptGapHigh          = 5.0
	TestTypeGapHigh        = 15.0
	TestTypeGapMedium      = 10.0
	minModelsForRanking    = 2
	minValuesForComparison = 2
)

// Input is the aggregated data insights are derived from.
type Input struct {
	LLMs       []models.CombinedMetrics
	Complexity []models.DimensionAggregate
	Prompt     []models.DimensionAggregate
	TestType   []models.DimensionAggregate
	View       models.View
}

// Generate returns the insights that apply to in, in a fixed order: model
// ranking, complexity impact, coverage gap, prompt strategy, test type
// difficulty and the best configuration. Severity of the complexity impact
// follows policy.
func Generate(in Input, policy aggregate.SeverityPolicy) []Insight {
	var out []Insight
	caseView := in.View == models.ViewTestCase

	if ins, ok := modelRanking(in.LLMs, caseView); ok {
		out = append(out, ins)
	}
	if ins, ok := complexityImpact(in.Complexity, caseView, policy); ok {
		out = append(out, ins)
	}
	if ins, ok := coverageGap(in.LLMs, caseView); ok {
		out = append(out, ins)
	}
	if ins, ok := promptStrategy(in.Prompt, caseView); ok {
		out = append(out, ins)
	}
	if ins, ok := testTypeDifficulty(in.TestType, caseView); ok {
		out = append(out, ins)
	}
	if ins, ok := bestConfiguration(in, caseView); ok {
		out = append(out, ins)
	}
	return out
}

// quality is the headline rate of a view: FC for test cases, SVR otherwise.
func quality(caseView bool) (string, func(models.RateBundle) float64) {
	if caseView {
		return "FC", func(b models.RateBundle) float64 { return b.FCPercentage }
	}
	return "SVR", func(b models.RateBundle) float64 { return b.SVRPercentage }
}

func combinedBundle(m models.CombinedMetrics) models.RateBundle {
	return models.RateBundle{
		CSRPercentage:   m.CSRPercentage,
		RSRPercentage:   m.RSRPercentage,
		SVRPercentage:   m.SVRPercentage,
		FCPercentage:    m.FCPercentage,
		AvgLineCoverage: m.AvgLineCoverage,
	}
}

// best returns the index of the first maximum of score.
func best[T any](items []T, score func(T) float64) int {
	idx := 0
	for i := 1; i < len(items); i++ {
		if score(items[i]) > score(items[idx]) {
			idx = i
		}
	}
	return idx
}

func modelRanking(llms []models.CombinedMetrics, caseView bool) (Insight, bool) {
	if len(llms) < minModelsForRanking {
		return Insight{}, false
	}
	name, rate := quality(caseView)
	score := func(m models.CombinedMetrics) float64 { return rate(combinedBundle(m)) }

	top := llms[best(llms, score)]
	rest := slices.DeleteFunc(slices.Clone(llms), func(m models.CombinedMetrics) bool { return m.LLM == top.LLM })
	if len(rest) == 0 {
		return Insight{}, false
	}
	second := rest[best(rest, score)]

	return Insight{
		ID:    "model-ranking",
		Kind:  KindRanking,
		Title: "Top Performing Model",
		Message: fmt.Sprintf("%s achieves highest %s (%.2f%%), outperforming %s by %.2f percentage points",
			models.Label(models.DimensionLLM, top.LLM), name, score(top),
			models.Label(models.DimensionLLM, second.LLM), score(top)-score(second)),
	}, true
}

func complexityImpact(aggs []models.DimensionAggregate, caseView bool, policy aggregate.SeverityPolicy) (Insight, bool) {
	if len(aggs) < minValuesForComparison {
		return Insight{}, false
	}
	easy, okEasy := find(aggs, models.ComplexityEasy)
	hard, okHard := find(aggs, models.ComplexityHard)
	if !okEasy || !okHard {
		return Insight{}, false
	}

	name, rate := "CSR", func(b models.RateBundle) float64 { return b.CSRPercentage }
	if caseView {
		name, rate = "FC", func(b models.RateBundle) float64 { return b.FCPercentage }
	}
	drop := math.Abs(rate(easy.RateBundle) - rate(hard.RateBundle))

	return Insight{
		ID:       "complexity-impact",
		Kind:     KindTrend,
		Title:    "Complexity Impact",
		Message:  fmt.Sprintf("%s drops by %.1f points on Hard problems compared to Easy problems", name, drop),
		Severity: policy.Classify(drop),
	}, true
}

func coverageGap(llms []models.CombinedMetrics, caseView bool) (Insight, bool) {
	if !caseView || len(llms) == 0 {
		return Insight{}, false
	}
	coverage := make([]float64, 0, len(llms))
	fc := make([]float64, 0, len(llms))
	for _, m := range llms {
		coverage = append(coverage, m.AvgLineCoverage)
		fc = append(fc, m.FCPercentage)
	}
	avgCoverage, avgFC := metrics.Mean(coverage), metrics.Mean(fc)
	if avgCoverage-avgFC <= CoverageGapThreshold {
		return Insight{}, false
	}

	return Insight{
		ID:    "coverage-fc-gap",
		Kind:  KindWarning,
		Title: "Coverage vs Quality Gap",
		Message: fmt.Sprintf("Despite %.1f%% average coverage, only %.1f%% of test cases are functionally correct; high coverage does not guarantee test quality",
			avgCoverage, avgFC),
		Severity: models.SeverityHigh,
	}, true
}

// spread sorts a copy of aggs by the view's quality rate and returns the best
// and worst entries.
func spread(aggs []models.DimensionAggregate, caseView bool) (hi, lo models.DimensionAggregate, ok bool) {
	if len(aggs) < minValuesForComparison {
		return hi, lo, false
	}
	_, rate := quality(caseView)
	sorted := slices.Clone(aggs)
	slices.SortStableFunc(sorted, func(a, b models.DimensionAggregate) int {
		return cmp.Compare(rate(b.RateBundle), rate(a.RateBundle))
	})
	hi, lo = sorted[0], sorted[len(sorted)-1]
	return hi, lo, hi.Value != lo.Value
}

func promptStrategy(aggs []models.DimensionAggregate, caseView bool) (Insight, bool) {
	hi, lo, ok := spread(aggs, caseView)
	if !ok {
		return Insight{}, false
	}
	name, rate := quality(caseView)
	diff := rate(hi.RateBundle) - rate(lo.RateBundle)

	sev := models.SeverityMedium
	if diff > PromptGapHigh {
		sev = models.SeverityHigh
	}
	return Insight{
		ID:    "prompt-strategy",
		Kind:  KindRecommendation,
		Title: "Prompt Strategy Impact",
		Message: fmt.Sprintf("%s prompting improves %s by %.1f points over %s",
			models.Label(models.DimensionPrompt, hi.Value), name, diff,
			models.Label(models.DimensionPrompt, lo.Value)),
		Severity: sev,
	}, true
}

func testTypeDifficulty(aggs []models.DimensionAggregate, caseView bool) (Insight, bool) {
	hi, lo, ok := spread(aggs, caseView)
	if !ok {
		return Insight{}, false
	}
	_, rate := quality(caseView)
	diff := rate(hi.RateBundle) - rate(lo.RateBundle)

	sev := models.SeverityLow
	switch {
	case diff > TestTypeGapHigh:
		sev = models.SeverityHigh
	case diff > TestTypeGapMedium:
		sev = models.SeverityMedium
	}
	return Insight{
		ID:    "test-type-difficulty",
		Kind:  KindTrend,
		Title: "Test Type Difficulty",
		Message: fmt.Sprintf("%s tests show a %.1f points lower success rate than %s tests",
			models.Label(models.DimensionTestType, lo.Value), diff,
			models.Label(models.DimensionTestType, hi.Value)),
		Severity: sev,
	}, true
}

func bestConfiguration(in Input, caseView bool) (Insight, bool) {
	if len(in.LLMs) == 0 || len(in.Prompt) == 0 || len(in.TestType) == 0 {
		return Insight{}, false
	}
	_, rate := quality(caseView)
	aggScore := func(a models.DimensionAggregate) float64 { return rate(a.RateBundle) }

	llm := in.LLMs[best(in.LLMs, func(m models.CombinedMetrics) float64 { return rate(combinedBundle(m)) })]
	prompt := in.Prompt[best(in.Prompt, aggScore)]
	testType := in.TestType[best(in.TestType, aggScore)]

	return Insight{
		ID:    "best-config",
		Kind:  KindRecommendation,
		Title: "Optimal Configuration",
		Message: fmt.Sprintf("Best combination: %s + %s + %s tests",
			models.Label(models.DimensionLLM, llm.LLM),
			models.Label(models.DimensionPrompt, prompt.Value),
			models.Label(models.DimensionTestType, testType.Value)),
	}, true
}

func find(aggs []models.DimensionAggregate, value string) (models.DimensionAggregate, bool) {
	for _, a := range aggs {
		if a.Value == value {
			return a, true
		}
	}
	return models.DimensionAggregate{}, false
}
