// Package dashboard computes every derived view of the benchmark for one
// filter selection.
package dashboard

import (
	"context"
	"fmt"
	"log/slog"

	"golang.org/x/sync/errgroup"

	"github.com/testforge/testforge/internal/aggregate"
	"github.com/testforge/testforge/internal/dataset"
	"github.com/testforge/testforge/internal/filter"
	"github.com/testforge/testforge/internal/insights"
	"github.com/testforge/testforge/internal/models"
)

// Options control how a Snapshot is built.
type Options struct {
	// Level is the granularity file the rows come from. Only full_config
	// carries every dimension, so it is the default.
	Level  dataset.Level
	Policy aggregate.Policy
}

// DefaultOptions returns full_config rows and the default policy.
func DefaultOptions() Options {
	return Options{Level: dataset.LevelFullConfig, Policy: aggregate.DefaultPolicy()}
}

// Snapshot is every derived view for one filter selection.
type Snapshot struct {
	Filter filter.State  `json:"filter" yaml:"filter"`
	Level  dataset.Level `json:"level" yaml:"level"`

	SetRows  int `json:"set_rows" yaml:"set_rows"`
	CaseRows int `json:"case_rows" yaml:"case_rows"`

	Summary  models.SummaryMetrics    `json:"summary" yaml:"summary"`
	Combined []models.CombinedMetrics `json:"combined" yaml:"combined"`

	ByLLM        []models.DimensionAggregate `json:"by_llm" yaml:"by_llm"`
	ByComplexity []models.DimensionAggregate `json:"by_complexity" yaml:"by_complexity"`
	ByTestType   []models.DimensionAggregate `json:"by_test_type" yaml:"by_test_type"`
	ByPrompt     []models.DimensionAggregate `json:"by_prompt" yaml:"by_prompt"`

	Outcomes             []models.OutcomeMetrics   `json:"outcomes" yaml:"outcomes"`
	OutcomesByComplexity []models.OutcomeBreakdown `json:"outcomes_by_complexity" yaml:"outcomes_by_complexity"`
	OutcomesByTestType   []models.OutcomeBreakdown `json:"outcomes_by_test_type" yaml:"outcomes_by_test_type"`
	OutcomesByPrompt     []models.OutcomeBreakdown `json:"outcomes_by_prompt" yaml:"outcomes_by_prompt"`

	O4ByTestType           []models.CrossO4     `json:"o4_by_llm_test_type" yaml:"o4_by_llm_test_type"`
	O4ByComplexity         []models.CrossO4     `json:"o4_by_llm_complexity" yaml:"o4_by_llm_complexity"`
	O4ByPrompt             []models.CrossO4     `json:"o4_by_llm_prompt" yaml:"o4_by_llm_prompt"`
	FCCoverageByComplexity []models.CrossFC     `json:"fc_coverage_by_llm_complexity" yaml:"fc_coverage_by_llm_complexity"`
	FCByPrompt             []models.CrossFC     `json:"fc_by_llm_prompt" yaml:"fc_by_llm_prompt"`
	Heatmap                []models.HeatmapCell `json:"heatmap" yaml:"heatmap"`

	// Degradation is nil when the selection lacks Easy or Hard rows.
	Degradation *models.DegradationMetrics `json:"degradation,omitempty" yaml:"degradation,omitempty"`

	Insights []insights.Insight `json:"insights" yaml:"insights"`
}

// Build loads the rows for opts.Level from src and computes the snapshot for
// state.
func Build(ctx context.Context, src dataset.Source, state filter.State, opts Options) (*Snapshot, error) {
	if opts.Level == "" {
		opts.Level = dataset.LevelFullConfig
	}

	var (
		setRows  []models.SetRow
		caseRows []models.CaseRow
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		rows, err := src.SetRows(gctx, opts.Level)
		if err != nil {
			return fmt.Errorf("loading test set metrics (%s): %w", opts.Level, err)
		}
		setRows = rows
		return nil
	})
	g.Go(func() error {
		rows, err := src.CaseRows(gctx, opts.Level)
		if err != nil {
			return fmt.Errorf("loading test case metrics (%s): %w", opts.Level, err)
		}
		caseRows = rows
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return Compute(setRows, caseRows, state, opts), nil
}

// Compute filters the rows and derives every view. It does no I/O.
func Compute(setRows []models.SetRow, caseRows []models.CaseRow, state filter.State, opts Options) *Snapshot {
	if state.View == "" {
		state.View = models.ViewTestSet
	}
	set := state.ApplySet(setRows)
	cases := state.ApplyCase(caseRows)
	slog.Debug("computing snapshot", "filter", state.String(), "view", state.View,
		"set_rows", len(set), "case_rows", len(cases))

	s := &Snapshot{
		Filter:   state,
		Level:    opts.Level,
		SetRows:  len(set),
		CaseRows: len(cases),

		Summary:  aggregate.Summarize(set, cases, opts.Policy.UniqueProblems),
		Combined: aggregate.Combine(set, cases),

		ByLLM:        aggregate.ByLLM(set, cases, state.View),
		ByComplexity: aggregate.ByComplexity(set, cases),
		ByTestType:   aggregate.ByTestType(set, cases),
		ByPrompt:     aggregate.ByPrompt(set, cases),

		Outcomes:             aggregate.Outcomes(set),
		OutcomesByComplexity: aggregate.OutcomesByComplexity(set),
		OutcomesByTestType:   aggregate.OutcomesByTestType(set),
		OutcomesByPrompt:     aggregate.OutcomesByPrompt(set),

		O4ByTestType:           aggregate.O4ByLLMAndTestType(set),
		O4ByComplexity:         aggregate.O4ByLLMAndComplexity(set),
		O4ByPrompt:             aggregate.O4ByLLMAndPrompt(set),
		FCCoverageByComplexity: aggregate.FCCoverageByLLMAndComplexity(cases),
		FCByPrompt:             aggregate.FCByLLMAndPrompt(cases),
		Heatmap:                aggregate.Heatmap(cases),
	}

	if d, ok := aggregate.Degradation(s.ByComplexity, opts.Policy.Severity); ok {
		s.Degradation = &d
	}

	s.Insights = insights.Generate(insights.Input{
		LLMs:       s.Combined,
		Complexity: s.ByComplexity,
		Prompt:     s.ByPrompt,
		TestType:   s.ByTestType,
		View:       state.View,
	}, opts.Policy.Severity)

	return s
}
