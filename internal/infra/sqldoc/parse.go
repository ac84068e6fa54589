package sqldoc

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"regexp"
	"strings"

	"github.com/aalvaropc/primer/internal/domain"
)

// CaseKind tells how a query's result is checked.
type CaseKind string

const (
	KindNone   CaseKind = ""
	KindEquals CaseKind = "EQUALS"
	KindRaises CaseKind = "RAISES"
	KindDebug  CaseKind = "DEBUG"
)

var annotationKinds = []CaseKind{KindEquals, KindRaises, KindDebug}

// Case is one test query together with the setup statements preceding it.
type Case struct {
	// Line is the 1-based line where the query starts.
	Line  int
	Setup string
	Query string
	Kind  CaseKind

	// Answer is the raw annotation text (continuation lines joined by "\n").
	Answer string

	// Rows holds the decoded answer of an EQUALS case.
	Rows [][]any
}

// Title is a short single-line label for the case.
func (c Case) Title() string {
	q := strings.Join(strings.Fields(c.Query), " ")
	if r := []rune(q); len(r) > 60 {
		q = string(r[:57]) + "..."
	}
	return fmt.Sprintf("line %d: %s", c.Line, q)
}

var nullRe = regexp.MustCompile(`\bNULL\b`)

// Parse splits an annotated SQL file into cases.
//
// Statements end with ';'. A statement starting with SELECT, VALUES or WITH is
// a test query; anything before it since the previous query is its setup.
// The line right after a query may carry "-- EQUALS <json rows>",
// "-- RAISES <message substring>" or "-- DEBUG"; following lines that start
// with "--" continue the answer. A query without annotation is kept with
// KindNone and is skipped at run time.
//
// Line comments are cut at the first "--" on a line, including one inside a
// string literal: SELECT '--'; is read as an unterminated statement.
func Parse(path string, r io.Reader) ([]Case, error) {
	var lines []string
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for sc.Scan() {
		lines = append(lines, sc.Text())
	}
	if err := sc.Err(); err != nil {
		return nil, &domain.OpError{Op: "sqldoc.parse", Kind: domain.KindParse, Path: path, Err: err}
	}

	var (
		cases       []Case
		inComment   bool
		inStatement bool
		scriptStart int
		queryStart  = -1
	)

	for i := 0; i < len(lines); i++ {
		line := strings.TrimSpace(stripLineComment(lines[i]))
		if line == "" {
			continue
		}

		if strings.HasPrefix(line, "/*") {
			inComment = true
		}
		if strings.HasSuffix(line, "*/") {
			inComment = false
			continue
		}
		if inComment {
			continue
		}

		if !inStatement {
			inStatement = true
			if isQueryKeyword(firstWord(line)) {
				queryStart = i
			}
		}

		if !strings.HasSuffix(line, ";") {
			continue
		}
		inStatement = false
		if queryStart < 0 {
			continue
		}

		c := Case{
			Line:  queryStart + 1,
			Setup: joinLines(lines[scriptStart:queryStart]),
			Query: joinLines(lines[queryStart : i+1]),
		}

		if i+1 < len(lines) {
			if kind, rest, ok := annotation(lines[i+1]); ok {
				c.Kind = kind
				i++
				if kind != KindDebug {
					answer := []string{rest}
					for i+1 < len(lines) && strings.HasPrefix(lines[i+1], "--") && !isAnnotation(lines[i+1]) {
						i++
						answer = append(answer, strings.TrimSpace(strings.TrimPrefix(lines[i], "--")))
					}
					c.Answer = strings.TrimSpace(strings.Join(answer, "\n"))
				}
			}
		}

		if c.Kind == KindEquals {
			rows, err := decodeRows(c.Answer)
			if err != nil {
				return nil, &domain.OpError{
					Op:   "sqldoc.parse",
					Kind: domain.KindParse,
					Path: path,
					Line: c.Line,
					Err:  fmt.Errorf("EQUALS answer: %w", err),
				}
			}
			c.Rows = rows
		}

		cases = append(cases, c)
		scriptStart = i + 1
		queryStart = -1
	}

	return cases, nil
}

func annotation(line string) (CaseKind, string, bool) {
	for _, k := range annotationKinds {
		prefix := "-- " + string(k)
		if strings.HasPrefix(line, prefix) {
			return k, strings.TrimSpace(line[len(prefix):]), true
		}
	}
	return KindNone, "", false
}

func isAnnotation(line string) bool {
	_, _, ok := annotation(line)
	return ok
}

func stripLineComment(line string) string {
	if idx := strings.Index(line, "--"); idx >= 0 {
		return line[:idx]
	}
	return line
}

func firstWord(line string) string {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return ""
	}
	return strings.ToUpper(strings.TrimRight(fields[0], "(;"))
}

func isQueryKeyword(w string) bool {
	switch w {
	case "SELECT", "VALUES", "WITH":
		return true
	}
	return false
}

func joinLines(in []string) string {
	if len(in) == 0 {
		return ""
	}
	return strings.Join(in, "\n") + "\n"
}

func decodeRows(answer string) ([][]any, error) {
	if strings.TrimSpace(answer) == "" {
		return nil, fmt.Errorf("empty answer")
	}
	var rows [][]any
	if err := json.Unmarshal([]byte(nullRe.ReplaceAllString(answer, "null")), &rows); err != nil {
		return nil, err
	}
	if rows == nil {
		rows = [][]any{}
	}
	return rows, nil
}
