package cli

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/aalvaropc/primer/internal/domain"
	"github.com/aalvaropc/primer/internal/infra/config"
	"github.com/aalvaropc/primer/internal/infra/sqldoc"
	"github.com/aalvaropc/primer/internal/infra/workspacefinder"
	"github.com/aalvaropc/primer/internal/lessons"
	"github.com/aalvaropc/primer/internal/registry"
)

// session is the resolved workspace and configuration for one command.
type session struct {
	root  string
	found bool
	cfg   domain.Config
}

func loadSession(cmd *cobra.Command, opts *rootOptions) (*session, error) {
	root, found, err := resolveRoot(opts.configFile)
	if err != nil {
		return nil, err
	}

	cfg, err := config.Load(config.Options{
		Root:    root,
		File:    opts.configFile,
		Flags:   cmd.Flags(),
		Environ: opts.environ,
	})
	if err != nil {
		return nil, err
	}

	return &session{root: root, found: found, cfg: cfg}, nil
}

func resolveRoot(configFile string) (string, bool, error) {
	if f := strings.TrimSpace(configFile); f != "" {
		abs, err := filepath.Abs(f)
		if err != nil {
			return "", false, fmt.Errorf("invalid config path: %w", err)
		}
		return filepath.Dir(abs), true, nil
	}

	wd, err := os.Getwd()
	if err != nil {
		return "", false, fmt.Errorf("get working directory: %w", err)
	}
	root, found := workspacefinder.NewFinder().RootOrStart(wd)
	return root, found, nil
}

// buildRegistry registers the built-in lessons (unless disabled) followed by
// every doctest file.
func buildRegistry(cmd *cobra.Command, sess *session, debug io.Writer) (*registry.Registry, error) {
	r := registry.New()
	if sess.cfg.Run.Builtin {
		lessons.Register(r)
	}

	dir := config.ResolvePath(sess.cfg, sess.cfg.Paths.DoctestsDir)
	if cmd.Flags().Changed("doctests") {
		if _, err := os.Stat(dir); err != nil {
			return nil, &domain.OpError{
				Op:   "cli.doctests",
				Kind: domain.KindNotFound,
				Path: dir,
				Err:  err,
			}
		}
	}

	suites, err := sqldoc.NewLoader(sqldoc.WithDebugWriter(debug)).LoadDir(dir)
	if err != nil {
		return nil, err
	}
	for _, s := range suites {
		for _, ex := range s.Examples() {
			r.RegisterExample(ex)
		}
	}

	return r, nil
}

// addSourceFlags registers the flags that decide which examples exist.
func addSourceFlags(c *cobra.Command) {
	c.Flags().String("run", "", "only examples whose suite/name matches this regular expression")
	c.Flags().String("doctests", "", "directory of annotated .sql files (default: doctests)")
	c.Flags().Bool("no-builtin", false, "skip the built-in Go lessons")
}
