package domain

import (
	"sort"
	"time"
)

// RunOptions configures a single run.
type RunOptions struct {
	StopOnFirstFailure bool   `json:"stop_on_first_failure" yaml:"stop_on_first_failure"`
	Verbose            bool   `json:"verbose" yaml:"verbose"`
	Filter             string `json:"filter,omitempty" yaml:"filter,omitempty"`
}

// DefaultRunOptions stops on the first failure and stays quiet.
func DefaultRunOptions() RunOptions {
	return RunOptions{StopOnFirstFailure: true}
}

// ExampleStatus is the outcome of a single example.
type ExampleStatus string

const (
	StatusPassed  ExampleStatus = "passed"
	StatusFailed  ExampleStatus = "failed"
	StatusSkipped ExampleStatus = "skipped"
)

// ExampleResult is the outcome of executing one example.
type ExampleResult struct {
	Index      int           `json:"index" yaml:"index"`
	Name       string        `json:"name" yaml:"name"`
	Suite      string        `json:"suite,omitempty" yaml:"suite,omitempty"`
	Status     ExampleStatus `json:"status" yaml:"status"`
	Duration   time.Duration `json:"-" yaml:"-"`
	DurationMS int64         `json:"duration_ms" yaml:"duration_ms"`
	SkipReason string        `json:"skip_reason,omitempty" yaml:"skip_reason,omitempty"`
	Failure    *CheckFailure `json:"failure,omitempty" yaml:"failure,omitempty"`
}

// Elapsed is the example's duration. Reports read back from disk only carry
// DurationMS, so it falls back to that.
func (r ExampleResult) Elapsed() time.Duration {
	if r.Duration > 0 {
		return r.Duration
	}
	return time.Duration(r.DurationMS) * time.Millisecond
}

// RunReport summarizes one run. It is created fresh per invocation.
type RunReport struct {
	ID string `json:"id" yaml:"id"`

	StartedAt time.Time `json:"started_at" yaml:"started_at"`
	EndedAt   time.Time `json:"ended_at" yaml:"ended_at"`

	Options RunOptions `json:"options" yaml:"options"`

	// Total counts examples that were executed (skipped ones included).
	Total   int `json:"total" yaml:"total"`
	Passed  int `json:"passed" yaml:"passed"`
	Failed  int `json:"failed" yaml:"failed"`
	Skipped int `json:"skipped" yaml:"skipped"`

	// Halted is set when the run stopped early on the first failure.
	Halted bool `json:"halted" yaml:"halted"`

	Failures []CheckFailure  `json:"failures" yaml:"failures"`
	Results  []ExampleResult `json:"results" yaml:"results"`
}

// OK reports whether no check failed.
func (r RunReport) OK() bool {
	return len(r.Failures) == 0
}

// FirstFailure returns the earliest failure in registration order, if any.
func (r RunReport) FirstFailure() (CheckFailure, bool) {
	if len(r.Failures) == 0 {
		return CheckFailure{}, false
	}
	return r.Failures[0], true
}

// Duration is the wall time of the whole run.
func (r RunReport) Duration() time.Duration {
	if r.StartedAt.IsZero() || r.EndedAt.IsZero() {
		return 0
	}
	return r.EndedAt.Sub(r.StartedAt)
}

// Slowest returns up to n results ordered by descending duration.
// Ties keep registration order. The report itself is not modified.
func (r RunReport) Slowest(n int) []ExampleResult {
	if n <= 0 || len(r.Results) == 0 {
		return nil
	}
	out := make([]ExampleResult, len(r.Results))
	copy(out, r.Results)
	sort.SliceStable(out, func(i, j int) bool { return out[i].Elapsed() > out[j].Elapsed() })
	if n < len(out) {
		out = out[:n]
	}
	return out
}

// ReportRef is a lightweight reference to a persisted report.
type ReportRef struct {
	ID        string    `json:"id"`
	File      string    `json:"file"`
	RunID     string    `json:"run_id"`
	StartedAt time.Time `json:"started_at"`
	Passed    int       `json:"passed"`
	Failed    int       `json:"failed"`
	Skipped   int       `json:"skipped"`
}
