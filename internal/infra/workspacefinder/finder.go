package workspacefinder

import (
	"errors"
	"os"
	"path/filepath"

	"github.com/aalvaropc/primer/internal/domain"
	"github.com/aalvaropc/primer/internal/ports"
)

const (
	defaultMarker = "primer.yaml"
	maxLevels     = 32
)

// Finder locates a primer workspace by walking upward until a directory
// containing the marker file is found.
type Finder struct {
	Marker    string
	MaxLevels int
}

func NewFinder() *Finder {
	return &Finder{Marker: defaultMarker, MaxLevels: maxLevels}
}

var _ ports.WorkspaceLocator = (*Finder)(nil)

func (f *Finder) FindRoot(startDir string) (string, error) {
	if startDir == "" {
		return "", &domain.OpError{
			Op:   "workspacefinder.findroot",
			Kind: domain.KindInvalidConfig,
			Err:  errors.New("start directory is empty"),
		}
	}

	abs, err := filepath.Abs(startDir)
	if err != nil {
		return "", &domain.OpError{
			Op:   "workspacefinder.findroot",
			Kind: domain.KindExecution,
			Path: startDir,
			Err:  err,
		}
	}

	// A file path means "the directory holding it".
	if info, err := os.Stat(abs); err == nil && !info.IsDir() {
		abs = filepath.Dir(abs)
	}

	limit := f.MaxLevels
	if limit <= 0 {
		limit = maxLevels
	}

	cur := filepath.Clean(abs)
	for i := 0; i < limit; i++ {
		if _, err := os.Stat(filepath.Join(cur, f.marker())); err == nil {
			return cur, nil
		}

		parent := filepath.Dir(cur)
		if parent == cur {
			break
		}
		cur = parent
	}

	return "", &domain.OpError{
		Op:   "workspacefinder.findroot",
		Kind: domain.KindNotFound,
		Path: abs,
		Err:  domain.ErrNotFound,
	}
}

// RootOrStart returns the workspace root above startDir, or startDir itself
// when no marker exists. primer runs fine outside a workspace.
func (f *Finder) RootOrStart(startDir string) (string, bool) {
	root, err := f.FindRoot(startDir)
	if err != nil {
		if abs, absErr := filepath.Abs(startDir); absErr == nil {
			return abs, false
		}
		return startDir, false
	}
	return root, true
}

func (f *Finder) marker() string {
	if f.Marker == "" {
		return defaultMarker
	}
	return f.Marker
}
