package domain

import (
	"errors"
	"fmt"
	"strings"
)

// CheckFailure records a single failed check inside an example.
// It is the only kind of failure the runner reports.
type CheckFailure struct {
	Example string `json:"example" yaml:"example"`
	Suite   string `json:"suite,omitempty" yaml:"suite,omitempty"`

	// Check is the description or expression text of the failed check.
	Check string `json:"check" yaml:"check"`

	Expected string `json:"expected,omitempty" yaml:"expected,omitempty"`
	Actual   string `json:"actual,omitempty" yaml:"actual,omitempty"`
	Diff     string `json:"diff,omitempty" yaml:"diff,omitempty"`

	// Location is "file:line" of the check call site when known.
	Location string `json:"location,omitempty" yaml:"location,omitempty"`
}

func (f *CheckFailure) Error() string {
	if f == nil {
		return "<nil>"
	}

	var b strings.Builder
	if f.Example != "" {
		b.WriteString(f.Example)
		b.WriteString(": ")
	}
	b.WriteString("check failed: ")
	b.WriteString(f.Check)
	if f.Expected != "" || f.Actual != "" {
		fmt.Fprintf(&b, " (expected %s, got %s)", f.Expected, f.Actual)
	}
	if f.Location != "" {
		fmt.Fprintf(&b, " at %s", f.Location)
	}
	return b.String()
}

// AsCheckFailure converts any error into a CheckFailure.
// Errors that already are (or wrap) a *CheckFailure keep their details.
func AsCheckFailure(err error) *CheckFailure {
	if err == nil {
		return nil
	}
	var cf *CheckFailure
	if errors.As(err, &cf) {
		c := *cf
		return &c
	}
	return &CheckFailure{Check: err.Error()}
}
