package cli

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/roach88/fancyformats/internal/config"
	"github.com/roach88/fancyformats/internal/pipeline"
)

// ScoreOptions holds flags for the score command.
type ScoreOptions struct {
	*RootOptions
	Course      int
	Scoring     string
	PenaltyType string
	PenaltyPer  int
	ConfigPath  string
	Output      string

	// Clock overrides the source of "now" for age classes (for testing).
	Clock pipeline.Option
}

// NewScoreCommand creates the score command.
func NewScoreCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &ScoreOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "score <results.xml>",
		Short: "Score a course and export the report",
		Long: `Score one course of an IOF XML v3 result list and export a CSV report.

The course is selected by its zero-based index, as listed by the courses
command. Penalty settings come from --config, then from flags.

Without -o the CSV report is written to stdout. With --format json the
run summary and scored rows are printed as JSON instead.

Examples:
  fancyformats score results.xml --course 0 -o report.csv
  fancyformats score results.xml --course 2 --penalty-type seconds --penalty-per 30
  fancyformats score results.xml --config scoring.yaml --format json`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runScore(opts, args[0], cmd)
		},
	}

	defaults := config.Default()
	cmd.Flags().IntVar(&opts.Course, "course", 0, "zero-based course index")
	cmd.Flags().StringVar(&opts.Scoring, "scoring", defaults.Format, "scoring format (see the formats command)")
	cmd.Flags().StringVar(&opts.PenaltyType, "penalty-type", defaults.PenaltyType, "penalty type (points|seconds)")
	cmd.Flags().IntVar(&opts.PenaltyPer, "penalty-per", defaults.PenaltyPer, "penalty per flagged control")
	cmd.Flags().StringVar(&opts.ConfigPath, "config", "", "YAML scoring config")
	cmd.Flags().StringVarP(&opts.Output, "output", "o", "", "CSV report path (default stdout)")

	return cmd
}

func runScore(opts *ScoreOptions, input string, cmd *cobra.Command) error {
	formatter := &OutputFormatter{
		Format:    opts.Format,
		Writer:    cmd.OutOrStdout(),
		ErrWriter: cmd.ErrOrStderr(),
		Verbose:   opts.Verbose,
	}

	runID := newRunID()
	logger := newLogger(opts.RootOptions, cmd.ErrOrStderr()).With("run_id", runID)

	cfg, err := resolveConfig(opts, cmd)
	if err != nil {
		return reportError(formatter, "invalid scoring configuration", err, runID)
	}
	logger.Debug("configuration resolved", "config", cfg.Summary())

	req := pipeline.RequestFromConfig(cfg, input, opts.Course)
	req.OutputPath = opts.Output
	if opts.Output == "" && opts.Format != "json" {
		req.Output = cmd.OutOrStdout()
	}

	runOpts := []pipeline.Option{pipeline.WithLogger(logger)}
	if opts.Clock != nil {
		runOpts = append(runOpts, opts.Clock)
	}

	summary, err := pipeline.Process(req, runOpts...)
	if err != nil {
		return reportError(formatter, "scoring failed", err, runID)
	}

	if opts.Format == "json" {
		return formatter.SuccessWithTrace(summary, runID)
	}
	if opts.Output != "" {
		printSummary(formatter.Writer, summary)
	}
	return nil
}

// resolveConfig layers the config file and any explicitly set flags over
// the defaults, then validates the result against the schema.
func resolveConfig(opts *ScoreOptions, cmd *cobra.Command) (config.Config, error) {
	cfg := config.Default()
	if opts.ConfigPath != "" {
		loaded, err := config.Load(opts.ConfigPath)
		if err != nil {
			return config.Config{}, err
		}
		cfg = loaded
	}

	flags := cmd.Flags()
	if flags.Changed("scoring") {
		cfg.Format = opts.Scoring
	}
	if flags.Changed("penalty-type") {
		cfg.PenaltyType = opts.PenaltyType
	}
	if flags.Changed("penalty-per") {
		cfg.PenaltyPer = opts.PenaltyPer
	}

	if err := cfg.Validate(); err != nil {
		return config.Config{}, err
	}
	return cfg, nil
}

func printSummary(w io.Writer, s *pipeline.Summary) {
	fmt.Fprintf(w, "✓ %s: %s (%s)\n", s.EventName, s.CourseName, s.Format)
	fmt.Fprintf(w, "  %d competitors scored\n", s.RowCount)
	fmt.Fprintf(w, "  Report written to %s\n", s.OutputPath)
}
