package main

import (
	"errors"
	"fmt"
	"log/slog"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/testforge/testforge/internal/dataset"
	"github.com/testforge/testforge/internal/projectconfig"
	"github.com/testforge/testforge/internal/reporting"
	"github.com/testforge/testforge/internal/validation"
)

func newValidateCommand(o *rootOptions) *cobra.Command {
	var junitOutput string

	cmd := &cobra.Command{
		Use:   "validate",
		Short: "Validate the metric CSV files",
		Long: `Validate every metric CSV file of the data directory, and the project config
when one is found.

Each row is checked against the row schema and the dimensions its level
requires. Stage counts that exceed the previous stage (for example more
compiled suites than expected) are reported as warnings.

Only the level given with --level is checked when the flag is set.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			format, err := o.outputFormat()
			if err != nil {
				return err
			}
			levels := dataset.Levels
			if o.level != "" {
				level, err := dataset.ParseLevel(o.level)
				if err != nil {
					return err
				}
				levels = []dataset.Level{level}
			}

			var results []reporting.FileResult
			if cfg := o.config(); cfg.Dir != "" {
				results = append(results, validateConfig(filepath.Join(cfg.Dir, projectconfig.FileName)))
			}
			dir := o.dataDirectory()
			for _, level := range levels {
				for _, family := range dataset.Families {
					results = append(results, validateFile(dir, family, level))
				}
			}

			if err := reporting.Render(cmd.OutOrStdout(), format, results, reporting.ValidationTable(results)); err != nil {
				return err
			}
			if junitOutput != "" {
				if err := reporting.WriteJUnitXML(results, junitOutput); err != nil {
					return fmt.Errorf("writing JUnit report: %w", err)
				}
			}

			invalid := 0
			for _, r := range results {
				if !r.OK() {
					invalid++
				}
			}
			if invalid > 0 {
				return &ValidationError{Invalid: invalid, Total: len(results)}
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&junitOutput, "junit", "", "Write results as JUnit XML to this file")

	return cmd
}

func validateConfig(path string) reporting.FileResult {
	r := reporting.FileResult{Family: "config", Level: projectconfig.FileName, Path: path, Rows: 1}
	problems, err := validation.ValidateConfigFile(path)
	if err != nil {
		r.Err = err.Error()
		return r
	}
	r.Problems = problems
	return r
}

// validateFile loads and decodes one metric file, collecting rejected rows
// as problems and suspicious counts as warnings.
func validateFile(dir string, family dataset.Family, level dataset.Level) reporting.FileResult {
	path := dataset.Path(dir, family, level)
	r := reporting.FileResult{Family: string(family), Level: string(level), Path: path}

	raw, err := dataset.LoadCSV(path)
	if err != nil {
		r.Err = err.Error()
		return r
	}
	r.Rows = len(raw)

	var warnings [][]string
	switch family {
	case dataset.FamilySet:
		rows, derr := dataset.DecodeSetRows(path, level, raw)
		err = derr
		for _, row := range rows {
			warnings = append(warnings, validation.CheckSetCounts(row))
		}
	case dataset.FamilyCase:
		rows, derr := dataset.DecodeCaseRows(path, level, raw)
		err = derr
		for _, row := range rows {
			warnings = append(warnings, validation.CheckCaseCounts(row))
		}
	}

	var problems dataset.Problems
	switch {
	case errors.As(err, &problems):
		for _, p := range problems {
			r.Problems = append(r.Problems, fmt.Sprintf("line %d: %s", p.Line, strings.Join(p.Problems, "; ")))
		}
	case err != nil:
		r.Err = err.Error()
	}

	// Decoding is all or nothing, so warnings line up with CSV rows.
	for i, w := range warnings {
		for _, msg := range w {
			r.Warnings = append(r.Warnings, fmt.Sprintf("line %d: %s", i+2, msg))
		}
	}

	slog.Debug("validated metrics file", "path", path, "rows", r.Rows,
		"problems", len(r.Problems), "warnings", len(r.Warnings))
	return r
}
