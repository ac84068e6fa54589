package cli

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/aalvaropc/primer/internal/infra/logger"
	"github.com/aalvaropc/primer/internal/infra/runstore"
	"github.com/aalvaropc/primer/internal/ports"
	"github.com/aalvaropc/primer/internal/ui/console"
	"github.com/aalvaropc/primer/internal/usecase"
)

func runCmd(opts *rootOptions) *cobra.Command {
	c := &cobra.Command{
		Use:   "run",
		Short: "Run the examples and stop at the first failing check",
		Long: `Run every registered example in order: the built-in Go lessons, then each
annotated .sql file under the doctests directory.

By default the run stops at the first failing example. Use --keep-going to run
everything and list every failure. The exit status is non-zero when any check failed.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			sess, err := loadSession(cmd, opts)
			if err != nil {
				return err
			}
			cfg := sess.cfg
			out := cmd.OutOrStdout()

			// Machine formats keep stdout clean.
			var debugOut io.Writer = out
			if cfg.Run.Format != "pretty" {
				debugOut = cmd.ErrOrStderr()
			}

			reg, err := buildRegistry(cmd, sess, debugOut)
			if err != nil {
				return err
			}

			theme := console.NewTheme(console.NewRenderer(out, cfg.Output.Color))

			var progress ports.ProgressReporter
			if cfg.Run.Verbose && cfg.Run.Format == "pretty" {
				progress = console.NewProgress(out, theme)
			}

			var store ports.ReportStore
			if cfg.Run.Save {
				store = runstore.NewJSONStore(sess.root, cfg, runstore.WithIndex(true))
			}

			uc := usecase.NewRunExamples(progress, store, usecase.WithLogger(logger.L()))
			report, savedAs, runErr := uc.Execute(reg, cfg.RunOptions())
			if runErr != nil && report.StartedAt.IsZero() {
				return runErr
			}

			if err := console.PrintReport(out, theme, report, savedAs, cfg.Run.Format); err != nil {
				return err
			}
			if runErr != nil {
				return fmt.Errorf("save report: %w", runErr)
			}

			if !report.OK() {
				return fmt.Errorf("run failed (%d failed example(s))", report.Failed)
			}
			return nil
		},
	}

	c.Flags().Bool("keep-going", false, "run every example even after a failure")
	c.Flags().Bool("stop-on-failure", false, "stop at the first failing example (default)")
	c.Flags().BoolP("verbose", "v", false, "print a line for every finished example")
	c.Flags().String("format", "pretty", "output format: pretty|json|yaml")
	c.Flags().Bool("no-save", false, "do not save the report under runs/")
	addSourceFlags(c)

	c.MarkFlagsMutuallyExclusive("keep-going", "stop-on-failure")
	return c
}
