package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/testforge/testforge/internal/reporting"
)

func newReportCommand(o *rootOptions) *cobra.Command {
	var (
		html   bool
		output string
	)

	cmd := &cobra.Command{
		Use:   "report",
		Short: "Write a Markdown or HTML report of every view",
		Long: `Write a report covering every view of the selection: summary, insights,
LLM comparison, dimension breakdowns, outcomes, cross tables, the heatmap and
Easy to Hard degradation.

The report is Markdown unless --html is given. It is written to stdout unless
-o names a file.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			state, err := o.filterState()
			if err != nil {
				return err
			}
			snap, err := o.snapshot(cmd, state)
			if err != nil {
				return err
			}

			render := reporting.Markdown
			if html {
				render = reporting.HTML
			}
			doc, err := render(snap)
			if err != nil {
				return err
			}

			if output == "" {
				_, err := io.WriteString(cmd.OutOrStdout(), doc)
				return err
			}
			if err := os.WriteFile(output, []byte(doc), 0o644); err != nil {
				return fmt.Errorf("writing report: %w", err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Report written to: %s\n", output)
			return nil
		},
	}

	cmd.Flags().BoolVar(&html, "html", false, "Render the report as HTML")
	cmd.Flags().StringVarP(&output, "output", "o", "", "Write the report to a file")

	return cmd
}
