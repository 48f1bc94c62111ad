package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/testforge/testforge/internal/dashboard"
	"github.com/testforge/testforge/internal/models"
	"github.com/testforge/testforge/internal/reporting"
)

// dimensionArgs maps command arguments to dimensions.
var dimensionArgs = map[string]models.Dimension{
	"llm":        models.DimensionLLM,
	"prompt":     models.DimensionPrompt,
	"test-type":  models.DimensionTestType,
	"complexity": models.DimensionComplexity,
}

func dimensionFromArg(arg string) (models.Dimension, error) {
	dim, ok := dimensionArgs[arg]
	if !ok {
		return "", fmt.Errorf("unknown dimension %q (valid: complexity, test-type, prompt, llm)", arg)
	}
	return dim, nil
}

func aggregatesFor(snap *dashboard.Snapshot, dim models.Dimension) []models.DimensionAggregate {
	switch dim {
	case models.DimensionLLM:
		return snap.ByLLM
	case models.DimensionPrompt:
		return snap.ByPrompt
	case models.DimensionTestType:
		return snap.ByTestType
	}
	return snap.ByComplexity
}

func newDimensionCommand(o *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "dimension <complexity|test-type|prompt|llm>",
		Short: "Aggregate rates by one dimension",
		Long: `Aggregate every rate by one dimension. Complexity is listed Easy, Moderate,
Hard; test types and prompts by functional correctness; LLMs by SVR in the
test-set view and by FC in the test-case view.`,
		ValidArgs: []string{"complexity", "test-type", "prompt", "llm"},
		Args:      cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
		RunE: func(cmd *cobra.Command, args []string) error {
			dim, err := dimensionFromArg(args[0])
			if err != nil {
				return err
			}
			snap, format, err := o.load(cmd)
			if err != nil {
				return err
			}
			aggs := aggregatesFor(snap, dim)
			return reporting.Render(cmd.OutOrStdout(), format, aggs, reporting.AggregateTable(dim, aggs))
		},
	}
}
