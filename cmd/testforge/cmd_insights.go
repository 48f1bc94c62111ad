package main

import (
	"github.com/spf13/cobra"

	"github.com/testforge/testforge/internal/reporting"
)

func newInsightsCommand(o *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "insights",
		Short: "Generate findings for the selection",
		Long: `Generate findings for the current selection: model ranking, complexity
impact, the coverage versus correctness gap, prompt strategy and test type
spreads, and the best configuration. --view picks whether rankings use SVR or
FC.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			snap, format, err := o.load(cmd)
			if err != nil {
				return err
			}
			return reporting.Render(cmd.OutOrStdout(), format, snap.Insights, reporting.InsightsTable(snap.Insights))
		},
	}
}
