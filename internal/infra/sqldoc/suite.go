package sqldoc

import (
	"database/sql"
	"fmt"
	"io"
	"strings"

	"github.com/google/go-cmp/cmp"
	"github.com/jedib0t/go-pretty/v6/table"

	"github.com/aalvaropc/primer/internal/domain"
	"github.com/aalvaropc/primer/internal/usecase/check"
)

// Suite is one doctest file.
//
// Every case runs against a fresh in-memory database that replays the setup
// scripts of the file up to and including that case. A case therefore sees
// the tables created before it in the file, whether or not the earlier cases
// ran, and nothing outlives a single execution.
type Suite struct {
	Name  string
	Path  string
	Cases []Case

	debug io.Writer
}

// Examples turns every case into an example, in file order.
func (s *Suite) Examples() []domain.Example {
	out := make([]domain.Example, 0, len(s.Cases))
	for i, c := range s.Cases {
		out = append(out, domain.Example{
			Name:  c.Title(),
			Suite: s.Name,
			Body:  func() error { return s.run(i) },
		})
	}
	return out
}

func (s *Suite) open() (*sql.DB, error) {
	db, err := sql.Open(driverName, ":memory:")
	if err != nil {
		return nil, &domain.OpError{
			Op:   "sqldoc.open",
			Kind: domain.KindExecution,
			Path: s.Path,
			Err:  err,
		}
	}
	// Every new connection to :memory: would be a fresh, empty database.
	db.SetMaxOpenConns(1)
	return db, nil
}

func (s *Suite) run(k int) error {
	c := s.Cases[k]

	db, err := s.open()
	if err != nil {
		return err
	}
	defer db.Close()

	for _, prev := range s.Cases[:k+1] {
		if !hasStatements(prev.Setup) {
			continue
		}
		if _, err := db.Exec(prev.Setup); err != nil {
			return &domain.CheckFailure{
				Check:    "setup script",
				Actual:   err.Error(),
				Location: s.location(prev),
			}
		}
	}

	cols, rows, err := query(db, c.Query)

	switch c.Kind {
	case KindRaises:
		if err == nil {
			return &domain.CheckFailure{
				Check:    strings.TrimSpace(c.Query),
				Expected: fmt.Sprintf("error containing %q", c.Answer),
				Actual:   fmt.Sprintf("%d row(s)", len(rows)),
				Location: s.location(c),
			}
		}
		if !strings.Contains(err.Error(), c.Answer) {
			return &domain.CheckFailure{
				Check:    strings.TrimSpace(c.Query),
				Expected: fmt.Sprintf("error containing %q", c.Answer),
				Actual:   err.Error(),
				Location: s.location(c),
			}
		}
		return nil
	}

	if err != nil {
		return &domain.CheckFailure{
			Check:    strings.TrimSpace(c.Query),
			Actual:   err.Error(),
			Location: s.location(c),
		}
	}

	switch c.Kind {
	case KindDebug:
		s.renderDebug(c, cols, rows)
		return nil
	case KindEquals:
		want := normalizeRows(c.Rows)
		got := normalizeRows(rows)
		if cmp.Equal(want, got) {
			return nil
		}
		return &domain.CheckFailure{
			Check:    strings.TrimSpace(c.Query),
			Expected: formatRows(want),
			Actual:   formatRows(got),
			Diff:     cmp.Diff(want, got),
			Location: s.location(c),
		}
	default:
		return check.Skip("query has no EQUALS/RAISES/DEBUG annotation")
	}
}

func query(db *sql.DB, q string) ([]string, [][]any, error) {
	rs, err := db.Query(q)
	if err != nil {
		return nil, nil, err
	}
	defer rs.Close()

	cols, err := rs.Columns()
	if err != nil {
		return nil, nil, err
	}

	rows := [][]any{}
	for rs.Next() {
		vals := make([]any, len(cols))
		ptrs := make([]any, len(cols))
		for i := range vals {
			ptrs[i] = &vals[i]
		}
		if err := rs.Scan(ptrs...); err != nil {
			return nil, nil, err
		}
		rows = append(rows, vals)
	}
	return cols, rows, rs.Err()
}

func (s *Suite) renderDebug(c Case, cols []string, rows [][]any) {
	if s.debug == nil {
		return
	}

	fmt.Fprintf(s.debug, "sqlite> %s\n", strings.TrimSpace(c.Query))

	t := table.NewWriter()
	t.SetOutputMirror(s.debug)
	t.SetStyle(table.StyleLight)

	header := make(table.Row, len(cols))
	for i, col := range cols {
		header[i] = col
	}
	t.AppendHeader(header)

	for _, row := range normalizeRows(rows) {
		r := make(table.Row, len(row))
		for i, v := range row {
			r[i] = formatValue(v)
		}
		t.AppendRow(r)
	}
	t.Render()
	fmt.Fprintf(s.debug, "(%d rows)\n\n", len(rows))
}

func (s *Suite) location(c Case) string {
	return fmt.Sprintf("%s:%d", s.Path, c.Line)
}

func hasStatements(script string) bool {
	for _, l := range strings.Split(script, "\n") {
		l = strings.TrimSpace(l)
		if l != "" && !strings.HasPrefix(l, "--") {
			return true
		}
	}
	return false
}

func formatRows(rows [][]any) string {
	parts := make([]string, 0, len(rows))
	for _, row := range rows {
		cells := make([]string, len(row))
		for i, v := range row {
			cells[i] = formatValue(v)
		}
		parts = append(parts, "("+strings.Join(cells, ", ")+")")
	}
	return "[" + strings.Join(parts, ", ") + "]"
}
