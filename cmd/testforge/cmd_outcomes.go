package main

import (
	"github.com/spf13/cobra"

	"github.com/testforge/testforge/internal/models"
	"github.com/testforge/testforge/internal/reporting"
)

func newOutcomesCommand(o *rootOptions) *cobra.Command {
	var by string

	cmd := &cobra.Command{
		Use:   "outcomes",
		Short: "Show the O1 to O4 outcome partition",
		Long: `Show how generated suites split into outcomes: O1 fails to compile, O2 fails
at runtime, O3 runs but is semantically invalid and O4 is valid. Shares always
sum to 100%.

Use --by to break the partition down by complexity, test type or prompt
instead of by LLM.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			dim, err := dimensionFromArg(by)
			if err != nil {
				return err
			}
			snap, format, err := o.load(cmd)
			if err != nil {
				return err
			}
			w := cmd.OutOrStdout()

			var rows []models.OutcomeBreakdown
			switch dim {
			case models.DimensionLLM:
				return reporting.Render(w, format, snap.Outcomes, reporting.OutcomeTable(snap.Outcomes))
			case models.DimensionComplexity:
				rows = snap.OutcomesByComplexity
			case models.DimensionTestType:
				rows = snap.OutcomesByTestType
			case models.DimensionPrompt:
				rows = snap.OutcomesByPrompt
			}
			return reporting.Render(w, format, rows, reporting.BreakdownTable(dim, rows))
		},
	}

	cmd.Flags().StringVar(&by, "by", "llm", "Break down by: llm, complexity, test-type or prompt")

	return cmd
}
