package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/testforge/testforge/internal/aggregate"
	"github.com/testforge/testforge/internal/dashboard"
	"github.com/testforge/testforge/internal/dataset"
	"github.com/testforge/testforge/internal/filter"
	"github.com/testforge/testforge/internal/projectconfig"
	"github.com/testforge/testforge/internal/reporting"
	"github.com/testforge/testforge/internal/spinner"
)

var version = "dev"

// rootOptions holds the persistent flags. Empty strings fall back to the
// project config.
type rootOptions struct {
	debug      bool
	projectDir string
	dataDir    string
	format     string
	level      string

	llm        string
	prompt     string
	testType   string
	complexity string
	view       string

	cfg *projectconfig.ProjectConfig
}

func newRootCommand() *cobra.Command {
	o := &rootOptions{}

	cmd := &cobra.Command{
		Use:   "testforge",
		Short: "testforge - LLM test generation benchmark metrics",
		Long: `testforge aggregates the metrics of an LLM test generation benchmark.

It reads the test set and test case metric CSV files, recomputes rates from
summed counts, partitions suites into compile, runtime, semantic and valid
outcomes, and reports how models, prompt strategies, test types and problem
complexity compare.`,
		Version:      version,
		SilenceUsage: true,
	}

	flags := cmd.PersistentFlags()
	flags.BoolVar(&o.debug, "debug", false, "Enable debug logging")
	flags.StringVar(&o.projectDir, "project", "", "Directory to search for "+projectconfig.FileName+" (default: working directory)")
	flags.StringVar(&o.dataDir, "data-dir", "", "Directory holding the metric CSV files")
	flags.StringVarP(&o.format, "format", "f", "", "Output format: table, json or yaml")
	flags.StringVar(&o.level, "level", "", "Granularity level of the metric files")
	flags.StringVar(&o.llm, "llm", "", "Only include this LLM")
	flags.StringVar(&o.prompt, "prompt", "", "Only include this prompt strategy")
	flags.StringVar(&o.testType, "test-type", "", "Only include this test type")
	flags.StringVar(&o.complexity, "complexity", "", "Only include this complexity")
	flags.StringVar(&o.view, "view", "", "Metric view: test-set, test-case or outcomes")

	cmd.PersistentPreRunE = func(cmd *cobra.Command, args []string) error {
		if o.debug {
			slog.SetLogLoggerLevel(slog.LevelDebug)
		}

		dir := o.projectDir
		if dir == "" {
			wd, err := os.Getwd()
			if err != nil {
				return fmt.Errorf("getting working directory: %w", err)
			}
			dir = wd
		}
		cfg, err := projectconfig.Load(dir)
		if err != nil {
			return err
		}
		if cfg.Defaults.Debug != nil && *cfg.Defaults.Debug {
			slog.SetLogLoggerLevel(slog.LevelDebug)
		}
		slog.Debug("project config", "dir", cfg.Dir, "data", cfg.DataDir())
		o.cfg = cfg
		return nil
	}

	cmd.AddCommand(newSummaryCommand(o))
	cmd.AddCommand(newCompareCommand(o))
	cmd.AddCommand(newDimensionCommand(o))
	cmd.AddCommand(newOutcomesCommand(o))
	cmd.AddCommand(newCrossCommand(o))
	cmd.AddCommand(newDegradationCommand(o))
	cmd.AddCommand(newInsightsCommand(o))
	cmd.AddCommand(newReportCommand(o))
	cmd.AddCommand(newValidateCommand(o))
	cmd.AddCommand(newExploreCommand(o))

	return cmd
}

func execute() error {
	rootCmd := newRootCommand()
	return rootCmd.Execute()
}

// config returns the loaded project config, or defaults when the pre-run
// hook did not run.
func (o *rootOptions) config() *projectconfig.ProjectConfig {
	if o.cfg == nil {
		o.cfg = projectconfig.New()
	}
	return o.cfg
}

func orDefault(flag, def string) string {
	if flag != "" {
		return flag
	}
	return def
}

func (o *rootOptions) dataDirectory() string {
	if o.dataDir != "" {
		return o.dataDir
	}
	return o.config().DataDir()
}

func (o *rootOptions) outputFormat() (reporting.Format, error) {
	return reporting.ParseFormat(orDefault(o.format, o.config().Defaults.Format))
}

func (o *rootOptions) dataLevel() (dataset.Level, error) {
	return dataset.ParseLevel(orDefault(o.level, o.config().Defaults.Level))
}

func (o *rootOptions) filterState() (filter.State, error) {
	return filter.Parse(o.llm, o.prompt, o.testType, o.complexity, orDefault(o.view, o.config().Defaults.View))
}

func (o *rootOptions) policy() aggregate.Policy {
	p := o.config().Policy
	return aggregate.Policy{
		Severity: aggregate.SeverityPolicy{
			High:   p.SeverityHigh,
			Medium: p.SeverityMedium,
		},
		UniqueProblems: p.UniqueProblems,
	}
}

// snapshot loads the configured level and computes every view for state.
func (o *rootOptions) snapshot(cmd *cobra.Command, state filter.State) (*dashboard.Snapshot, error) {
	level, err := o.dataLevel()
	if err != nil {
		return nil, err
	}
	src := dataset.NewDirSource(o.dataDirectory())

	sp := spinner.StartOnTerminal(cmd.ErrOrStderr(), "Loading metrics...")
	defer sp.Stop()
	return dashboard.Build(cmd.Context(), src, state, dashboard.Options{Level: level, Policy: o.policy()})
}

// load resolves the filter and output format from flags and config, then
// builds the snapshot.
func (o *rootOptions) load(cmd *cobra.Command) (*dashboard.Snapshot, reporting.Format, error) {
	format, err := o.outputFormat()
	if err != nil {
		return nil, "", err
	}
	state, err := o.filterState()
	if err != nil {
		return nil, "", err
	}
	snap, err := o.snapshot(cmd, state)
	if err != nil {
		return nil, "", err
	}
	return snap, format, nil
}
