package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/testforge/testforge/internal/reporting"
)

func newSummaryCommand(o *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "summary",
		Short: "Show the headline metrics of the selection",
		Long: `Show the dataset-wide headline figures: suite and problem counts, CSR, RSR,
SVR, functional correctness, line coverage and the O1 to O4 outcome shares.

In table format a plain-language interpretation follows the table.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			snap, format, err := o.load(cmd)
			if err != nil {
				return err
			}
			w := cmd.OutOrStdout()
			if err := reporting.Render(w, format, snap.Summary, reporting.SummaryTable(snap.Summary)); err != nil {
				return err
			}
			if format == reporting.FormatTable {
				fmt.Fprint(w, reporting.FormatSummaryReport(snap.Summary, snap.Degradation))
			}
			return nil
		},
	}
}
