package main

import (
	"io"

	"github.com/bethropolis/filecov/internal/app"
	"github.com/bethropolis/filecov/internal/config"
	"github.com/bethropolis/filecov/internal/report"
	"github.com/spf13/cobra"
)

// Build-time variables set by go build -ldflags.
var version = "dev"

// NewRootCmd builds the filecov command. Reports go to stdout, logs to stderr.
func NewRootCmd(stdout, stderr io.Writer) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "filecov [coverage files...]",
		Short: report.Synopsis(),
		Long: `Filecov reads istanbul JSON (coverage-final.json) or Go cover profiles and
prints, for every tracked file, its name followed by one row per coverage
metric with the number of covered items.

Examples:
  filecov coverage/coverage-final.json           # Print to stdout
  filecov -d out -f files.txt cover.out          # Write out/files.txt
  filecov --max-cols 12 -e 'test/' coverage.json # Narrow labels, skip tests`,
		Version:       version,
		Args:          cobra.ArbitraryArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Resolve(cmd.Flags(), args)
			if err != nil {
				return err
			}
			setColorOnce(cfg.UseColors)
			return app.New(cfg, stdout, stderr).Run(cmd.Context())
		},
	}
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)
	config.BindFlags(cmd.Flags())
	return cmd
}
