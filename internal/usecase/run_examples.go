package usecase

import (
	"errors"
	"fmt"
	"log/slog"
	"regexp"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/aalvaropc/primer/internal/domain"
	"github.com/aalvaropc/primer/internal/ports"
)

// RunExamples executes a registry of examples in registration order and
// produces a RunReport. It is single-threaded: each example runs to
// completion before the next begins.
type RunExamples struct {
	progress ports.ProgressReporter
	store    ports.ReportStore

	now   func() time.Time
	newID func() string
	log   *slog.Logger
}

type RunOption func(*RunExamples)

// WithNow overrides the clock (useful for tests).
func WithNow(now func() time.Time) RunOption {
	return func(uc *RunExamples) { uc.now = now }
}

// WithRunID overrides run ID generation (useful for tests).
func WithRunID(gen func() string) RunOption {
	return func(uc *RunExamples) { uc.newID = gen }
}

func WithLogger(l *slog.Logger) RunOption {
	return func(uc *RunExamples) {
		if l != nil {
			uc.log = l
		}
	}
}

// NewRunExamples builds the runner. progress and store are optional.
func NewRunExamples(progress ports.ProgressReporter, store ports.ReportStore, opts ...RunOption) *RunExamples {
	uc := &RunExamples{
		progress: progress,
		store:    store,
		now:      time.Now,
		newID:    uuid.NewString,
		log:      slog.New(slog.DiscardHandler),
	}
	for _, opt := range opts {
		opt(uc)
	}
	return uc
}

// Execute runs every example of source that matches opts.Filter.
//
// Failures inside bodies never escape: returned errors and panics alike become
// CheckFailures in the report. The returned error is reserved for problems
// outside the examples (an invalid filter, a failing report store); when the
// store fails the complete report is still returned.
func (uc *RunExamples) Execute(source ports.ExampleSource, opts domain.RunOptions) (domain.RunReport, string, error) {
	match, err := compileFilter(opts.Filter)
	if err != nil {
		return domain.RunReport{}, "", err
	}

	examples := source.All()

	report := domain.RunReport{
		ID:        uc.newID(),
		StartedAt: uc.now(),
		Options:   opts,
		Failures:  []domain.CheckFailure{},
		Results:   make([]domain.ExampleResult, 0, len(examples)),
	}

	uc.log.Info("run.started",
		"run_id", report.ID,
		"examples", len(examples),
		"stop_on_first_failure", opts.StopOnFirstFailure,
		"filter", opts.Filter,
	)

	for i, ex := range examples {
		if match != nil && !match.MatchString(ex.ID()) {
			continue
		}

		res := uc.runOne(i, ex)
		report.Results = append(report.Results, res)
		report.Total++

		switch res.Status {
		case domain.StatusPassed:
			report.Passed++
		case domain.StatusSkipped:
			report.Skipped++
		case domain.StatusFailed:
			report.Failed++
			report.Failures = append(report.Failures, *res.Failure)
		}

		uc.log.Debug("example.done",
			"index", i,
			"example", ex.ID(),
			"status", string(res.Status),
			"duration_ms", res.DurationMS,
		)

		if opts.Verbose && uc.progress != nil {
			uc.progress.ExampleDone(res)
		}

		if res.Status == domain.StatusFailed && opts.StopOnFirstFailure {
			report.Halted = true
			break
		}
	}

	report.EndedAt = uc.now()

	uc.log.Info("run.finished",
		"run_id", report.ID,
		"total", report.Total,
		"passed", report.Passed,
		"failed", report.Failed,
		"skipped", report.Skipped,
		"halted", report.Halted,
	)

	if uc.store == nil {
		return report, "", nil
	}

	id, err := uc.store.SaveReport(report)
	if err != nil {
		uc.log.Error("run.save_failed", "run_id", report.ID, "err", err)
		return report, "", err
	}
	return report, id, nil
}

func (uc *RunExamples) runOne(index int, ex domain.Example) domain.ExampleResult {
	res := domain.ExampleResult{
		Index: index,
		Name:  ex.Name,
		Suite: ex.Suite,
	}

	start := uc.now()
	err := invoke(ex.Body)
	res.Duration = uc.now().Sub(start)
	res.DurationMS = res.Duration.Milliseconds()

	switch {
	case err == nil:
		res.Status = domain.StatusPassed
	case errors.Is(err, domain.ErrSkipped):
		res.Status = domain.StatusSkipped
		res.SkipReason = skipReason(err)
	default:
		res.Status = domain.StatusFailed
		cf := domain.AsCheckFailure(err)
		cf.Example = ex.Name
		cf.Suite = ex.Suite
		res.Failure = cf
	}
	return res
}

// invoke calls body and converts a panic into an error.
func invoke(body domain.Body) (err error) {
	if body == nil {
		return &domain.CheckFailure{Check: "example has no body"}
	}

	defer func() {
		r := recover()
		if r == nil {
			return
		}
		switch v := r.(type) {
		case *domain.CheckFailure:
			err = v
		case error:
			err = &domain.CheckFailure{Check: "panic: " + v.Error()}
		default:
			err = &domain.CheckFailure{Check: fmt.Sprintf("panic: %v", v)}
		}
	}()

	return body()
}

func skipReason(err error) string {
	msg := err.Error()
	if msg == domain.ErrSkipped.Error() {
		return ""
	}
	return strings.TrimPrefix(msg, domain.ErrSkipped.Error()+": ")
}

func compileFilter(pattern string) (*regexp.Regexp, error) {
	if strings.TrimSpace(pattern) == "" {
		return nil, nil
	}
	re, err := regexp.Compile(pattern)
	if err != nil {
		return nil, &domain.OpError{
			Op:   "run.filter",
			Kind: domain.KindInvalidConfig,
			Err:  err,
		}
	}
	return re, nil
}
