package runstore

import (
	"bufio"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/aalvaropc/primer/internal/domain"
	"github.com/aalvaropc/primer/internal/ports"
)

const (
	defaultRunsDir = "runs"
	indexFile      = "index.jsonl"
)

type JSONStore struct {
	rootDir     string
	runsDirName string
	writeIndex  bool
	now         func() time.Time
}

type Option func(*JSONStore)

// WithIndex enables a simple JSONL index: runs/index.jsonl
func WithIndex(enabled bool) Option {
	return func(s *JSONStore) { s.writeIndex = enabled }
}

// WithNow is useful for tests.
func WithNow(now func() time.Time) Option {
	return func(s *JSONStore) { s.now = now }
}

func NewJSONStore(root string, cfg domain.Config, opts ...Option) *JSONStore {
	runsDir := cfg.Paths.RunsDir
	if strings.TrimSpace(runsDir) == "" {
		runsDir = defaultRunsDir
	}

	s := &JSONStore{
		rootDir:     root,
		runsDirName: runsDir,
		writeIndex:  false,
		now:         time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

var (
	_ ports.ReportStore   = (*JSONStore)(nil)
	_ ports.ReportCatalog = (*JSONStore)(nil)
)

func (s *JSONStore) dir() string {
	if filepath.IsAbs(s.runsDirName) {
		return s.runsDirName
	}
	return filepath.Join(s.rootDir, s.runsDirName)
}

func (s *JSONStore) SaveReport(report domain.RunReport) (string, error) {
	dir := s.dir()
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", &domain.OpError{
			Op:   "runstore.mkdir",
			Kind: domain.KindExecution,
			Path: dir,
			Err:  err,
		}
	}

	ts := report.StartedAt
	if ts.IsZero() {
		ts = s.now()
		report.StartedAt = ts
	}
	ts = ts.UTC()

	slug := slugify(shortID(report.ID))
	if slug == "" {
		slug = "run"
	}

	filename := fmt.Sprintf("%s_%s.json", ts.Format("20060102T150405Z"), slug)
	id := strings.TrimSuffix(filename, ".json")
	path := filepath.Join(dir, filename)

	b, err := json.MarshalIndent(report, "", "  ")
	if err != nil {
		return "", &domain.OpError{
			Op:   "runstore.marshal",
			Kind: domain.KindExecution,
			Path: path,
			Err:  err,
		}
	}

	// Atomic-ish write: tmp then rename.
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, b, 0o600); err != nil {
		return "", &domain.OpError{
			Op:   "runstore.write",
			Kind: domain.KindExecution,
			Path: tmp,
			Err:  err,
		}
	}
	if err := os.Rename(tmp, path); err != nil {
		_ = os.Remove(tmp)
		return "", &domain.OpError{
			Op:   "runstore.rename",
			Kind: domain.KindExecution,
			Path: path,
			Err:  err,
		}
	}

	if s.writeIndex {
		_ = s.appendIndex(dir, domain.ReportRef{
			ID:        id,
			File:      filename,
			RunID:     report.ID,
			StartedAt: report.StartedAt,
			Passed:    report.Passed,
			Failed:    report.Failed,
			Skipped:   report.Skipped,
		})
	}

	return id, nil
}

func (s *JSONStore) appendIndex(dir string, ref domain.ReportRef) error {
	line, err := json.Marshal(ref)
	if err != nil {
		return err
	}

	f, err := os.OpenFile(filepath.Join(dir, indexFile), os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o600)
	if err != nil {
		return err
	}
	defer f.Close()

	_, err = f.Write(append(line, '\n'))
	return err
}

// ListReports reads the index, oldest first. A missing index yields no reports.
func (s *JSONStore) ListReports() ([]domain.ReportRef, error) {
	path := filepath.Join(s.dir(), indexFile)
	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, nil
		}
		return nil, &domain.OpError{
			Op:   "runstore.list",
			Kind: domain.KindExecution,
			Path: path,
			Err:  err,
		}
	}
	defer f.Close()

	var refs []domain.ReportRef
	sc := bufio.NewScanner(f)
	n := 0
	for sc.Scan() {
		n++
		line := strings.TrimSpace(sc.Text())
		if line == "" {
			continue
		}
		var ref domain.ReportRef
		if err := json.Unmarshal([]byte(line), &ref); err != nil {
			return nil, &domain.OpError{
				Op:   "runstore.list",
				Kind: domain.KindParse,
				Path: path,
				Line: n,
				Err:  err,
			}
		}
		refs = append(refs, ref)
	}
	if err := sc.Err(); err != nil {
		return nil, &domain.OpError{Op: "runstore.list", Kind: domain.KindExecution, Path: path, Err: err}
	}
	return refs, nil
}

// LoadReport reads a persisted report by ID (the file name without ".json").
func (s *JSONStore) LoadReport(id string) (domain.RunReport, error) {
	path := filepath.Join(s.dir(), filepath.Base(id)+".json")
	b, err := os.ReadFile(path)
	if err != nil {
		return domain.RunReport{}, &domain.OpError{
			Op:   "runstore.load",
			Kind: domain.KindNotFound,
			Path: path,
			Err:  err,
		}
	}

	var report domain.RunReport
	if err := json.Unmarshal(b, &report); err != nil {
		return domain.RunReport{}, &domain.OpError{
			Op:   "runstore.load",
			Kind: domain.KindParse,
			Path: path,
			Err:  err,
		}
	}
	return report, nil
}

func shortID(id string) string {
	id = strings.TrimSpace(id)
	if len(id) > 8 {
		return id[:8]
	}
	return id
}

// slugify produces a safe filename component.
func slugify(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "" {
		return ""
	}

	var b strings.Builder
	b.Grow(len(s))

	lastDash := false
	for _, r := range s {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			b.WriteRune(r)
			lastDash = false
		default:
			if !lastDash {
				b.WriteByte('-')
				lastDash = true
			}
		}
	}

	return strings.Trim(b.String(), "-")
}
