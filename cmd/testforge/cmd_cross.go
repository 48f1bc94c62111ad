package main

import (
	"github.com/spf13/cobra"

	"github.com/testforge/testforge/internal/dashboard"
	"github.com/testforge/testforge/internal/models"
	"github.com/testforge/testforge/internal/reporting"
)

// crossViews lists the two-dimension tables in the order they are documented.
var crossViews = []string{
	"o4-test-type",
	"o4-complexity",
	"o4-prompt",
	"fc-coverage-complexity",
	"fc-prompt",
	"heatmap",
}

// crossView returns the data and table for one of crossViews.
func crossView(snap *dashboard.Snapshot, name string) (any, reporting.Table) {
	switch name {
	case "o4-test-type":
		return snap.O4ByTestType, reporting.CrossO4Table(models.DimensionTestType, snap.O4ByTestType)
	case "o4-complexity":
		return snap.O4ByComplexity, reporting.CrossO4Table(models.DimensionComplexity, snap.O4ByComplexity)
	case "o4-prompt":
		return snap.O4ByPrompt, reporting.CrossO4Table(models.DimensionPrompt, snap.O4ByPrompt)
	case "fc-coverage-complexity":
		return snap.FCCoverageByComplexity, reporting.CrossFCTable(models.DimensionComplexity, snap.FCCoverageByComplexity)
	case "fc-prompt":
		return snap.FCByPrompt, reporting.CrossFCTable(models.DimensionPrompt, snap.FCByPrompt)
	}
	return snap.Heatmap, reporting.HeatmapTable(snap.Heatmap)
}

func newCrossCommand(o *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "cross <o4-test-type|o4-complexity|o4-prompt|fc-coverage-complexity|fc-prompt|heatmap>",
		Short: "Cross-tabulate an LLM against a second dimension",
		Long: `Cross-tabulate each LLM against a second dimension.

  o4-test-type             valid suite share by LLM and test type
  o4-complexity            valid suite share by LLM and complexity
  o4-prompt                valid suite share by LLM and prompt
  fc-coverage-complexity   FC and line coverage by LLM and complexity
  fc-prompt                FC by LLM and prompt
  heatmap                  FC by LLM and test type, as a grid`,
		ValidArgs: crossViews,
		Args:      cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
		RunE: func(cmd *cobra.Command, args []string) error {
			snap, format, err := o.load(cmd)
			if err != nil {
				return err
			}
			data, table := crossView(snap, args[0])
			return reporting.Render(cmd.OutOrStdout(), format, data, table)
		},
	}
}
