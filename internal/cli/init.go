package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/aalvaropc/primer/internal/infra/fsworkspace"
	"github.com/aalvaropc/primer/internal/infra/logger"
	"github.com/aalvaropc/primer/internal/usecase"
)

func initCmd(_ *rootOptions) *cobra.Command {
	var force bool

	c := &cobra.Command{
		Use:   "init [dir]",
		Short: "Create primer.yaml and a sample doctest",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dir := "."
			if len(args) == 1 {
				dir = args[0]
			}
			root, err := filepath.Abs(dir)
			if err != nil {
				return fmt.Errorf("invalid directory: %w", err)
			}
			if err := os.MkdirAll(root, 0o755); err != nil {
				return fmt.Errorf("create %s: %w", root, err)
			}

			uc := usecase.NewInitWorkspace(fsworkspace.NewInitializer())
			if err := uc.Execute(root, force); err != nil {
				return err
			}

			logger.L().Info("workspace.initialized", "root", root, "force", force)
			fmt.Fprintf(cmd.OutOrStdout(), "Initialized primer workspace in %s\n", root)
			fmt.Fprintln(cmd.OutOrStdout(), "Next: cd into it and run `primer run`")
			return nil
		},
	}

	c.Flags().BoolVar(&force, "force", false, "overwrite existing files")
	return c
}
