package cli

import (
	"github.com/spf13/cobra"

	"github.com/aalvaropc/primer/internal/ui/console"
	"github.com/aalvaropc/primer/internal/usecase"
)

func listCmd(opts *rootOptions) *cobra.Command {
	c := &cobra.Command{
		Use:   "list",
		Short: "List registered examples without running them",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			sess, err := loadSession(cmd, opts)
			if err != nil {
				return err
			}

			reg, err := buildRegistry(cmd, sess, cmd.ErrOrStderr())
			if err != nil {
				return err
			}

			refs, err := usecase.NewListExamples().Execute(reg, sess.cfg.Run.Filter)
			if err != nil {
				return err
			}

			console.PrintExamples(cmd.OutOrStdout(), refs)
			return nil
		},
	}

	addSourceFlags(c)
	return c
}
