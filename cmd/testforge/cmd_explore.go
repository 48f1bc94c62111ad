package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/testforge/testforge/internal/reporting"
	"github.com/testforge/testforge/internal/wizard"
)

func newExploreCommand(o *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "explore",
		Short: "Pick a filter interactively and show its summary",
		Long: `Pick the metric view, LLM, prompt strategy, test type and complexity from
interactive menus, then show the summary, LLM comparison and insights of that
selection. Filter flags preselect the menus.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			initial, err := o.filterState()
			if err != nil {
				return err
			}
			state, err := wizard.RunFilterWizard(cmd.InOrStdin(), cmd.OutOrStdout(), initial)
			if err != nil {
				return err
			}

			snap, err := o.snapshot(cmd, state)
			if err != nil {
				return err
			}
			w := cmd.OutOrStdout()
			fmt.Fprintf(w, "\nFilter: %s (view %s)\n\n", state.String(), state.View)
			tables := []reporting.Table{
				reporting.SummaryTable(snap.Summary),
				reporting.CombinedTable(snap.Combined),
				reporting.InsightsTable(snap.Insights),
			}
			return reporting.Render(w, reporting.FormatTable, snap, tables...)
		},
	}
}
