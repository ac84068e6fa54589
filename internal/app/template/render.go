// Package template fills {{key}} placeholders in scaffolding files.
package template

import (
	"errors"
	"fmt"
	"strings"

	"github.com/aalvaropc/primer/internal/domain"
)

// RenderString replaces {{key}} placeholders with values from vars.
// A missing key or a malformed placeholder is an error naming the line.
func RenderString(name, input string, vars map[string]string) (string, error) {
	if input == "" {
		return "", nil
	}

	var out strings.Builder
	out.Grow(len(input))

	rest := input
	line := 1
	for {
		start := strings.Index(rest, "{{")
		if start == -1 {
			out.WriteString(rest)
			return out.String(), nil
		}

		out.WriteString(rest[:start])
		line += strings.Count(rest[:start], "\n")
		rest = rest[start+2:]

		end := strings.Index(rest, "}}")
		if end == -1 || strings.Contains(rest[:end], "\n") {
			return "", renderError(name, line, errors.New("unclosed placeholder"))
		}

		key := strings.TrimSpace(rest[:end])
		if key == "" {
			return "", renderError(name, line, errors.New("empty placeholder"))
		}

		value, ok := vars[key]
		if !ok {
			return "", renderError(name, line, fmt.Errorf("missing value for %q", key))
		}

		out.WriteString(value)
		rest = rest[end+2:]
	}
}

func renderError(name string, line int, err error) error {
	return &domain.OpError{
		Op:   "template.render",
		Kind: domain.KindParse,
		Path: name,
		Line: line,
		Err:  err,
	}
}
