package cli

import (
	"github.com/spf13/cobra"

	"github.com/aalvaropc/primer/internal/infra/runstore"
	"github.com/aalvaropc/primer/internal/ui/console"
	"github.com/aalvaropc/primer/internal/usecase"
)

func runsCmd(opts *rootOptions) *cobra.Command {
	c := &cobra.Command{
		Use:   "runs",
		Short: "Inspect saved run reports",
	}
	c.AddCommand(runsListCmd(opts), runsShowCmd(opts))
	return c
}

func runsListCmd(opts *rootOptions) *cobra.Command {
	var limit int

	c := &cobra.Command{
		Use:   "list",
		Short: "List saved reports, oldest first",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			sess, err := loadSession(cmd, opts)
			if err != nil {
				return err
			}

			store := runstore.NewJSONStore(sess.root, sess.cfg)
			refs, err := usecase.NewListRuns(store).Execute(limit)
			if err != nil {
				return err
			}
			console.PrintReportRefs(cmd.OutOrStdout(), refs)
			return nil
		},
	}

	c.Flags().IntVarP(&limit, "limit", "n", 20, "show at most this many recent reports (0 for all)")
	return c
}

func runsShowCmd(opts *rootOptions) *cobra.Command {
	c := &cobra.Command{
		Use:   "show <id>",
		Short: "Print a saved report",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			sess, err := loadSession(cmd, opts)
			if err != nil {
				return err
			}

			report, err := runstore.NewJSONStore(sess.root, sess.cfg).LoadReport(args[0])
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			theme := console.NewTheme(console.NewRenderer(out, sess.cfg.Output.Color))
			return console.PrintReport(out, theme, report, "", sess.cfg.Run.Format)
		},
	}

	c.Flags().String("format", "pretty", "output format: pretty|json|yaml")
	return c
}
