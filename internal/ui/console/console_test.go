package console

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/aalvaropc/primer/internal/domain"
)

func plainTheme(w *bytes.Buffer) Theme {
	return NewTheme(NewRenderer(w, "never"))
}

func failedReport() domain.RunReport {
	start := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	f := domain.CheckFailure{
		Example:  "shadowing",
		Suite:    "scope",
		Check:    "inner x",
		Expected: "2",
		Actual:   "1",
		Diff:     "  int(\n-\t2,\n+\t1,\n  )\n",
		Location: "scope.go:42",
	}
	return domain.RunReport{
		ID:        "run-1",
		StartedAt: start,
		EndedAt:   start.Add(1500 * time.Millisecond),
		Options:   domain.DefaultRunOptions(),
		Total:     2,
		Passed:    1,
		Failed:    1,
		Halted:    true,
		Failures:  []domain.CheckFailure{f},
		Results: []domain.ExampleResult{
			{Index: 0, Name: "closures", Suite: "scope", Status: domain.StatusPassed},
			{Index: 1, Name: "shadowing", Suite: "scope", Status: domain.StatusFailed, Failure: &f},
		},
	}
}

// --- pretty ---

func TestPrintReport_PrettyShowsFailureAndSummary(t *testing.T) {
	var buf bytes.Buffer
	if err := PrintReport(&buf, plainTheme(&buf), failedReport(), "20260301T120000Z_run-1", "pretty"); err != nil {
		t.Fatalf("PrintReport error: %v", err)
	}
	out := buf.String()

	wants := []string{
		"FAIL scope/shadowing",
		"check:    inner x",
		"expected: 2",
		"actual:   1",
		"at:       scope.go:42",
		"diff (-want +got):",
		"FAILED  1 passed, 1 failed in 1.5s",
		"--keep-going",
		"report saved as 20260301T120000Z_run-1",
	}
	for _, w := range wants {
		if !strings.Contains(out, w) {
			t.Fatalf("expected output to contain %q, got:\n%s", w, out)
		}
	}
	if strings.Contains(out, "\x1b[") {
		t.Fatalf("expected no ANSI escapes with color=never, got %q", out)
	}
}

func TestPrintReport_PrettyEmptyRun(t *testing.T) {
	var buf bytes.Buffer
	if err := PrintReport(&buf, plainTheme(&buf), domain.RunReport{}, "", ""); err != nil {
		t.Fatalf("PrintReport error: %v", err)
	}
	if !strings.Contains(buf.String(), "OK  0 passed, 0 failed") {
		t.Fatalf("unexpected output:\n%s", buf.String())
	}
}

func TestPrintReport_VerboseListsSlowest(t *testing.T) {
	r := domain.RunReport{
		Options: domain.RunOptions{Verbose: true},
		Passed:  2,
		Results: []domain.ExampleResult{
			{Name: "fast", Status: domain.StatusPassed, Duration: time.Millisecond},
			{Name: "slow", Status: domain.StatusPassed, Duration: time.Second},
		},
	}

	var buf bytes.Buffer
	if err := PrintReport(&buf, plainTheme(&buf), r, "", "pretty"); err != nil {
		t.Fatalf("PrintReport error: %v", err)
	}
	out := buf.String()
	if !strings.Contains(out, "Slowest examples") {
		t.Fatalf("expected slowest table, got:\n%s", out)
	}
	if strings.Index(out, "slow") > strings.Index(out, "fast") {
		t.Fatalf("expected slow listed before fast, got:\n%s", out)
	}
}

func TestPrintReport_SlowestFromStoredDurations(t *testing.T) {
	r := domain.RunReport{
		Options: domain.RunOptions{Verbose: true},
		Passed:  2,
		Results: []domain.ExampleResult{
			{Name: "quick", Status: domain.StatusPassed, DurationMS: 4},
			{Name: "sluggish", Status: domain.StatusPassed, DurationMS: 1500},
		},
	}

	var buf bytes.Buffer
	if err := PrintReport(&buf, plainTheme(&buf), r, "", "pretty"); err != nil {
		t.Fatalf("PrintReport error: %v", err)
	}
	out := buf.String()
	if strings.Index(out, "sluggish") > strings.Index(out, "quick") {
		t.Fatalf("expected sluggish listed before quick, got:\n%s", out)
	}
	if !strings.Contains(out, "1.5s") || !strings.Contains(out, "4ms") {
		t.Fatalf("expected stored durations rendered, got:\n%s", out)
	}
}

// --- machine formats ---

func TestPrintReport_JSON(t *testing.T) {
	var buf bytes.Buffer
	if err := PrintReport(&buf, plainTheme(&buf), failedReport(), "saved-1", "json"); err != nil {
		t.Fatalf("PrintReport error: %v", err)
	}

	var got struct {
		SavedAs string           `json:"saved_as"`
		Report  domain.RunReport `json:"report"`
	}
	if err := json.Unmarshal(buf.Bytes(), &got); err != nil {
		t.Fatalf("output is not JSON: %v\n%s", err, buf.String())
	}
	if got.SavedAs != "saved-1" || got.Report.Failed != 1 || got.Report.Failures[0].Check != "inner x" {
		t.Fatalf("unexpected payload: %+v", got)
	}
}

func TestPrintReport_YAML(t *testing.T) {
	var buf bytes.Buffer
	if err := PrintReport(&buf, plainTheme(&buf), failedReport(), "", "yaml"); err != nil {
		t.Fatalf("PrintReport error: %v", err)
	}

	var got map[string]any
	if err := yaml.Unmarshal(buf.Bytes(), &got); err != nil {
		t.Fatalf("output is not YAML: %v\n%s", err, buf.String())
	}
	report, ok := got["report"].(map[string]any)
	if !ok {
		t.Fatalf("missing report key: %v", got)
	}
	if report["failed"] != 1 || report["halted"] != true {
		t.Fatalf("unexpected report: %v", report)
	}
}

func TestPrintReport_UnknownFormat(t *testing.T) {
	var buf bytes.Buffer
	err := PrintReport(&buf, plainTheme(&buf), domain.RunReport{}, "", "xml")
	if !domain.IsKind(err, domain.KindInvalidConfig) {
		t.Fatalf("expected KindInvalidConfig, got %v", err)
	}
}

// --- progress & tables ---

func TestProgress_Lines(t *testing.T) {
	var buf bytes.Buffer
	p := NewProgress(&buf, plainTheme(&buf))

	p.ExampleDone(domain.ExampleResult{Name: "a", Suite: "flow", Status: domain.StatusPassed, DurationMS: 3})
	p.ExampleDone(domain.ExampleResult{Name: "b", Status: domain.StatusSkipped, SkipReason: "no answer"})
	p.ExampleDone(domain.ExampleResult{Name: "c", Status: domain.StatusFailed, Failure: &domain.CheckFailure{Check: "labels"}})

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	if len(lines) != 4 {
		t.Fatalf("expected 4 lines, got %d:\n%s", len(lines), buf.String())
	}
	if !strings.Contains(lines[0], "✓ flow/a (3ms)") {
		t.Fatalf("unexpected pass line %q", lines[0])
	}
	if !strings.Contains(lines[1], "- b skipped: no answer") {
		t.Fatalf("unexpected skip line %q", lines[1])
	}
	if !strings.Contains(lines[2], "✗ c") || !strings.Contains(lines[3], "labels") {
		t.Fatalf("unexpected fail lines %q / %q", lines[2], lines[3])
	}
}

func TestPrintExamples(t *testing.T) {
	var buf bytes.Buffer
	PrintExamples(&buf, []domain.ExampleRef{
		{Index: 0, Suite: "scope", Name: "closures"},
		{Index: 1, Suite: "flow", Name: "labels"},
	})
	out := buf.String()
	for _, w := range []string{"closures", "labels", "2 EXAMPLE(S)"} {
		if !strings.Contains(strings.ToUpper(out), strings.ToUpper(w)) {
			t.Fatalf("expected %q in:\n%s", w, out)
		}
	}

	buf.Reset()
	PrintExamples(&buf, nil)
	if !strings.Contains(buf.String(), "(no examples)") {
		t.Fatalf("unexpected empty output %q", buf.String())
	}
}

func TestColorEnabled(t *testing.T) {
	var buf bytes.Buffer
	if !ColorEnabled("always", &buf) {
		t.Fatalf("always should enable colour")
	}
	if ColorEnabled("never", &buf) {
		t.Fatalf("never should disable colour")
	}
	if ColorEnabled("auto", &buf) {
		t.Fatalf("auto should disable colour for a non-terminal writer")
	}
}
