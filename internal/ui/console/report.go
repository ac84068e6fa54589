package console

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
	"gopkg.in/yaml.v3"

	"github.com/aalvaropc/primer/internal/domain"
)

const slowestCount = 5

// reportPayload wraps the report with the ID it was saved under.
type reportPayload struct {
	SavedAs string           `json:"saved_as,omitempty" yaml:"saved_as,omitempty"`
	Report  domain.RunReport `json:"report" yaml:"report"`
}

// PrintReport writes the final report in the requested format.
func PrintReport(w io.Writer, theme Theme, report domain.RunReport, savedAs, format string) error {
	switch format {
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(reportPayload{SavedAs: savedAs, Report: report})
	case "yaml":
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(reportPayload{SavedAs: savedAs, Report: report}); err != nil {
			return err
		}
		return enc.Close()
	case "pretty", "":
		printPretty(w, theme, report, savedAs)
		return nil
	default:
		return &domain.OpError{
			Op:   "console.print",
			Kind: domain.KindInvalidConfig,
			Err:  fmt.Errorf("unsupported format %q (expected pretty|json|yaml): %w", format, domain.ErrInvalidConfig),
		}
	}
}

func printPretty(w io.Writer, theme Theme, report domain.RunReport, savedAs string) {
	for _, f := range report.Failures {
		fmt.Fprintln(w)
		fmt.Fprintln(w, theme.Card.Render(failureText(theme, f)))
	}

	if report.Options.Verbose && len(report.Results) > 1 {
		fmt.Fprintln(w)
		fmt.Fprintln(w, theme.Title.Render("Slowest examples"))
		renderSlowest(w, report.Slowest(slowestCount))
	}

	fmt.Fprintln(w)
	fmt.Fprintln(w, summaryLine(theme, report))
	if report.Halted {
		fmt.Fprintln(w, theme.Subtle.Render("stopped after the first failure; use --keep-going to run everything"))
	}
	if savedAs != "" {
		fmt.Fprintln(w, theme.Subtle.Render("report saved as "+savedAs))
	}
}

func failureText(theme Theme, f domain.CheckFailure) string {
	var b strings.Builder

	name := f.Example
	if f.Suite != "" {
		name = f.Suite + "/" + f.Example
	}
	b.WriteString(theme.Fail.Render("FAIL " + name))
	b.WriteString("\n")
	b.WriteString("check:    " + f.Check)
	if f.Expected != "" || f.Actual != "" {
		b.WriteString("\nexpected: " + f.Expected)
		b.WriteString("\nactual:   " + f.Actual)
	}
	if f.Location != "" {
		b.WriteString("\nat:       " + f.Location)
	}
	if d := strings.TrimRight(f.Diff, "\n"); d != "" {
		b.WriteString("\n")
		b.WriteString(theme.Subtle.Render("diff (-want +got):"))
		b.WriteString("\n")
		b.WriteString(d)
	}
	return b.String()
}

func summaryLine(theme Theme, report domain.RunReport) string {
	passed := theme.Pass.Render(fmt.Sprintf("%d passed", report.Passed))
	failed := fmt.Sprintf("%d failed", report.Failed)
	if report.Failed > 0 {
		failed = theme.Fail.Render(failed)
	}
	parts := []string{passed, failed}
	if report.Skipped > 0 {
		parts = append(parts, theme.Skip.Render(fmt.Sprintf("%d skipped", report.Skipped)))
	}

	status := theme.Pass.Render("OK")
	if !report.OK() {
		status = theme.Fail.Render("FAILED")
	}
	return fmt.Sprintf("%s  %s in %s", status, strings.Join(parts, ", "), report.Duration())
}

func renderSlowest(w io.Writer, results []domain.ExampleResult) {
	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.SetStyle(table.StyleLight)
	t.AppendHeader(table.Row{"#", "Example", "Status", "Duration"})
	for i, r := range results {
		name := r.Name
		if r.Suite != "" {
			name = r.Suite + "/" + r.Name
		}
		t.AppendRow(table.Row{i + 1, name, string(r.Status), r.Elapsed().String()})
	}
	t.Render()
}

// PrintExamples renders the registry as a table.
func PrintExamples(w io.Writer, refs []domain.ExampleRef) {
	if len(refs) == 0 {
		fmt.Fprintln(w, "(no examples)")
		return
	}

	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.SetStyle(table.StyleLight)
	t.AppendHeader(table.Row{"#", "Suite", "Example"})
	for _, r := range refs {
		t.AppendRow(table.Row{r.Index + 1, r.Suite, r.Name})
	}
	t.AppendFooter(table.Row{"", "", fmt.Sprintf("%d example(s)", len(refs))})
	t.Render()
}

// PrintReportRefs renders persisted reports, newest last.
func PrintReportRefs(w io.Writer, refs []domain.ReportRef) {
	if len(refs) == 0 {
		fmt.Fprintln(w, "(no saved runs)")
		return
	}

	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.SetStyle(table.StyleLight)
	t.AppendHeader(table.Row{"ID", "Started", "Passed", "Failed", "Skipped"})
	for _, r := range refs {
		t.AppendRow(table.Row{r.ID, r.StartedAt.Format("2006-01-02 15:04:05"), r.Passed, r.Failed, r.Skipped})
	}
	t.Render()
}
