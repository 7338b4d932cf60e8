package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/roach88/fancyformats/internal/config"
)

// ConfigValidation is the validate-config payload.
type ConfigValidation struct {
	Valid   bool          `json:"valid"`
	Config  config.Config `json:"config"`
	Summary string        `json:"summary"`
}

// NewValidateConfigCommand creates the validate-config command.
func NewValidateConfigCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "validate-config <config.yaml>",
		Short: "Validate a scoring config file",
		Long: `Check a YAML scoring config against the schema without scoring anything.

Unknown keys, unknown formats, unknown penalty types and negative
penalties are all rejected.`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runValidateConfig(rootOpts, args[0], cmd)
		},
	}
}

func runValidateConfig(opts *RootOptions, path string, cmd *cobra.Command) error {
	formatter := &OutputFormatter{
		Format:    opts.Format,
		Writer:    cmd.OutOrStdout(),
		ErrWriter: cmd.ErrOrStderr(),
		Verbose:   opts.Verbose,
	}

	cfg, err := config.Load(path)
	if err != nil {
		return reportError(formatter, "invalid config", err, "")
	}

	if opts.Format == "json" {
		return formatter.Success(ConfigValidation{Valid: true, Config: cfg, Summary: cfg.Summary()})
	}

	fmt.Fprintf(formatter.Writer, "✓ %s is valid: %s\n", path, cfg.Summary())
	formatter.VerboseLog("schema:\n%s", config.Schema())
	return nil
}
