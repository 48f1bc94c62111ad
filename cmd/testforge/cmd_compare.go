package main

import (
	"github.com/spf13/cobra"

	"github.com/testforge/testforge/internal/reporting"
)

func newCompareCommand(o *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "compare",
		Short: "Compare LLMs across both metric families",
		Long: `Compare every LLM side by side, combining its test set rates (CSR, RSR, SVR)
with its test case figures (FC and coverage). LLMs are ordered by functional
correctness.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			snap, format, err := o.load(cmd)
			if err != nil {
				return err
			}
			return reporting.Render(cmd.OutOrStdout(), format, snap.Combined, reporting.CombinedTable(snap.Combined))
		},
	}
}
