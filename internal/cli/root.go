package cli

import (
	"io"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/aalvaropc/primer/internal/buildinfo"
	"github.com/aalvaropc/primer/internal/infra/logger"
	"github.com/aalvaropc/primer/internal/infra/workspacefinder"
)

func Execute() {
	cmd, opts := newRootCmd()
	err := cmd.Execute()
	opts.closeLogger()
	if err != nil {
		os.Exit(1)
	}
}

// rootOptions carries persistent flags and process hooks shared by subcommands.
type rootOptions struct {
	configFile string
	debug      bool

	// environ replaces os.Environ for configuration; nil means the process environment.
	environ func() []string

	cleanup func() error
}

func (o *rootOptions) closeLogger() {
	if o.cleanup != nil {
		_ = o.cleanup()
		o.cleanup = nil
	}
}

func newRootCmd() (*cobra.Command, *rootOptions) {
	opts := &rootOptions{}

	cmd := &cobra.Command{
		Use:          "primer",
		Short:        "primer runs small, self-checking examples and reports the first one that fails",
		Version:      buildinfo.Version,
		SilenceUsage: true,
		PersistentPreRunE: func(_ *cobra.Command, _ []string) error {
			return opts.setupLogger()
		},
	}

	cmd.PersistentFlags().StringVar(&opts.configFile, "config", "", "config file (default: primer.yaml in the workspace root)")
	cmd.PersistentFlags().BoolVar(&opts.debug, "debug", false, "enable verbose logging to .primer/logs/primer.log")
	cmd.PersistentFlags().String("color", "auto", "colour output: auto|always|never")

	cmd.AddCommand(
		runCmd(opts),
		listCmd(opts),
		initCmd(opts),
		runsCmd(opts),
		versionCmd(),
	)
	return cmd, opts
}

// setupLogger logs into the workspace when there is one. Outside a workspace
// only --debug creates a log directory.
func (o *rootOptions) setupLogger() error {
	wd, err := os.Getwd()
	if err != nil {
		wd = "."
	}
	wd, _ = filepath.Abs(wd)

	root, found := workspacefinder.NewFinder().RootOrStart(wd)
	if !found && !o.debug {
		return nil
	}

	cleanup, err := logger.Setup(logger.Config{Root: root, Debug: o.debug})
	if err != nil {
		// Logging is best effort; the command still runs.
		return nil
	}
	o.cleanup = cleanup
	return nil
}

func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			_, _ = io.WriteString(cmd.OutOrStdout(), buildinfo.String()+"\n")
		},
	}
}
