package fsworkspace

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/aalvaropc/primer/internal/app/template"
	"github.com/aalvaropc/primer/internal/domain"
	"github.com/aalvaropc/primer/internal/ports"
)

const (
	markerFile  = "primer.yaml"
	doctestsDir = "doctests"
	runsDir     = "runs"
)

type Initializer struct{}

func NewInitializer() *Initializer {
	return &Initializer{}
}

var _ ports.WorkspaceInitializer = (*Initializer)(nil)

func (i *Initializer) Init(spec domain.WorkspaceSpec, force bool) error {
	root := filepath.Clean(spec.Root)

	if !force {
		if err := checkExistingMarker(root); err != nil {
			return err
		}
	}

	dirs := []string{
		filepath.Join(root, doctestsDir),
		filepath.Join(root, runsDir),
		filepath.Join(root, ".primer", "logs"),
	}
	for _, d := range dirs {
		if err := os.MkdirAll(d, 0o755); err != nil {
			return &domain.OpError{Op: "fsworkspace.mkdir", Kind: domain.KindExecution, Path: d, Err: err}
		}
	}

	if err := ensureGitignore(root); err != nil {
		return &domain.OpError{Op: "fsworkspace.gitignore", Kind: domain.KindExecution, Path: root, Err: err}
	}

	vars := map[string]string{
		"name":         filepath.Base(root),
		"doctests_dir": doctestsDir,
		"runs_dir":     runsDir,
	}

	return fs.WalkDir(templatesFS, "templates", func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}

		rel := strings.TrimPrefix(p, "templates/")
		dst := filepath.Join(root, filepath.FromSlash(rel))

		if !force {
			if _, statErr := os.Stat(dst); statErr == nil {
				return nil
			}
		}

		if err := os.MkdirAll(filepath.Dir(dst), 0o755); err != nil {
			return err
		}

		b, err := fs.ReadFile(templatesFS, p)
		if err != nil {
			return err
		}
		rendered, err := template.RenderString(p, string(b), vars)
		if err != nil {
			return err
		}

		if err := os.WriteFile(dst, []byte(rendered), 0o644); err != nil {
			return &domain.OpError{Op: "fsworkspace.write", Kind: domain.KindExecution, Path: dst, Err: err}
		}
		return nil
	})
}

// checkExistingMarker refuses to scaffold next to a primer.yaml that does not
// parse, since later runs would fail on it anyway.
func checkExistingMarker(root string) error {
	path := filepath.Join(root, markerFile)
	b, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil
		}
		return &domain.OpError{Op: "fsworkspace.check", Kind: domain.KindExecution, Path: path, Err: err}
	}

	var doc map[string]any
	if err := yaml.Unmarshal(b, &doc); err != nil {
		return &domain.OpError{
			Op:   "fsworkspace.check",
			Kind: domain.KindInvalidConfig,
			Path: path,
			Err:  fmt.Errorf("existing %s is not valid YAML (use --force to overwrite): %w", markerFile, err),
		}
	}
	return nil
}

func ensureGitignore(root string) error {
	const header = "# primer"
	entries := []string{
		runsDir + "/",
		".primer/",
	}

	path := filepath.Join(root, ".gitignore")
	b, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			lines := append([]string{header}, entries...)
			lines = append(lines, "")
			return os.WriteFile(path, []byte(strings.Join(lines, "\n")), 0o644)
		}
		return err
	}

	existing := string(b)
	present := map[string]bool{}
	for _, line := range strings.Split(existing, "\n") {
		if trimmed := strings.TrimSpace(line); trimmed != "" {
			present[trimmed] = true
		}
	}

	var missing []string
	for _, e := range entries {
		if !present[e] {
			missing = append(missing, e)
		}
	}
	if len(missing) == 0 {
		return nil
	}

	var out strings.Builder
	out.WriteString(existing)
	if existing != "" && !strings.HasSuffix(existing, "\n") {
		out.WriteByte('\n')
	}
	out.WriteByte('\n')
	if !present[header] {
		out.WriteString(header + "\n")
	}
	for _, e := range missing {
		out.WriteString(e + "\n")
	}

	return os.WriteFile(path, []byte(out.String()), 0o644)
}
