package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/testforge/testforge/internal/reporting"
)

func newDegradationCommand(o *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "degradation",
		Short: "Show how performance drops from Easy to Hard problems",
		Long: `Show the Easy minus Hard point drop of every rate and its severity. The
severity thresholds come from policy.severity_high and policy.severity_medium
in ` + "`.testforge.yaml`" + `. Nothing is reported when the selection lacks Easy or
Hard rows.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			snap, format, err := o.load(cmd)
			if err != nil {
				return err
			}
			w := cmd.OutOrStdout()
			if err := reporting.Render(w, format, snap.Degradation, reporting.DegradationTable(snap.Degradation)); err != nil {
				return err
			}
			if format == reporting.FormatTable {
				fmt.Fprintln(w, reporting.InterpretDegradation(snap.Degradation))
			}
			return nil
		},
	}
}
