// Package sqldoc turns annotated SQL files into runnable examples.
//
// Each file is parsed into cases (see Parse); every case runs against its own
// in-memory SQLite database.
package sqldoc

import (
	"errors"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"

	// pure-Go sqlite driver, registered as "sqlite".
	_ "modernc.org/sqlite"

	"github.com/aalvaropc/primer/internal/domain"
)

const driverName = "sqlite"

type Loader struct {
	debug io.Writer
}

type Option func(*Loader)

// WithDebugWriter sets where DEBUG cases render their result tables.
func WithDebugWriter(w io.Writer) Option {
	return func(l *Loader) { l.debug = w }
}

func NewLoader(opts ...Option) *Loader {
	l := &Loader{}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// List returns the .sql files directly under dir, sorted by name.
// A missing directory yields no files.
func (l *Loader) List(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, nil
		}
		return nil, &domain.OpError{
			Op:   "sqldoc.list",
			Kind: domain.KindExecution,
			Path: dir,
			Err:  err,
		}
	}

	var paths []string
	for _, e := range entries {
		if e.IsDir() || !strings.EqualFold(filepath.Ext(e.Name()), ".sql") {
			continue
		}
		paths = append(paths, filepath.Join(dir, e.Name()))
	}
	sort.Strings(paths)
	return paths, nil
}

// Load parses one file.
func (l *Loader) Load(path string) (*Suite, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, &domain.OpError{
			Op:   "sqldoc.load",
			Kind: domain.KindNotFound,
			Path: path,
			Err:  err,
		}
	}
	defer f.Close()

	cases, err := Parse(path, f)
	if err != nil {
		return nil, err
	}

	return &Suite{
		Name:  strings.TrimSuffix(filepath.Base(path), filepath.Ext(path)),
		Path:  path,
		Cases: cases,
		debug: l.debug,
	}, nil
}

// LoadDir loads every .sql file under dir, in name order.
func (l *Loader) LoadDir(dir string) ([]*Suite, error) {
	paths, err := l.List(dir)
	if err != nil {
		return nil, err
	}

	suites := make([]*Suite, 0, len(paths))
	for _, p := range paths {
		s, err := l.Load(p)
		if err != nil {
			return nil, err
		}
		suites = append(suites, s)
	}
	return suites, nil
}
