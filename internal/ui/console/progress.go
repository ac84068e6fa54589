package console

import (
	"fmt"
	"io"

	"github.com/aalvaropc/primer/internal/domain"
	"github.com/aalvaropc/primer/internal/ports"
)

// Progress prints one line per finished example.
type Progress struct {
	w     io.Writer
	theme Theme
}

func NewProgress(w io.Writer, theme Theme) *Progress {
	return &Progress{w: w, theme: theme}
}

var _ ports.ProgressReporter = (*Progress)(nil)

func (p *Progress) ExampleDone(res domain.ExampleResult) {
	name := res.Name
	if res.Suite != "" {
		name = p.theme.Label.Render(res.Suite+"/") + res.Name
	}

	switch res.Status {
	case domain.StatusPassed:
		fmt.Fprintf(p.w, "  %s %s %s\n", p.theme.Pass.Render("✓"), name, p.theme.Subtle.Render(durationText(res)))
	case domain.StatusSkipped:
		fmt.Fprintf(p.w, "  %s %s %s\n", p.theme.Skip.Render("-"), name, p.theme.Subtle.Render("skipped: "+res.SkipReason))
	default:
		fmt.Fprintf(p.w, "  %s %s %s\n", p.theme.Fail.Render("✗"), name, p.theme.Subtle.Render(durationText(res)))
		if res.Failure != nil {
			fmt.Fprintf(p.w, "      %s\n", res.Failure.Check)
		}
	}
}

func durationText(res domain.ExampleResult) string {
	return "(" + res.Elapsed().String() + ")"
}
