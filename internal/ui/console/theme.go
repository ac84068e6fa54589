package console

import (
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"
	"github.com/muesli/termenv"
)

type Theme struct {
	Title  lipgloss.Style
	Subtle lipgloss.Style
	Pass   lipgloss.Style
	Fail   lipgloss.Style
	Skip   lipgloss.Style
	Label  lipgloss.Style
	Card   lipgloss.Style
}

// NewTheme builds the styles on top of r, so colour follows the renderer's profile.
func NewTheme(r *lipgloss.Renderer) Theme {
	return Theme{
		Title:  r.NewStyle().Bold(true),
		Subtle: r.NewStyle().Faint(true),
		Pass:   r.NewStyle().Foreground(lipgloss.Color("42")),
		Fail:   r.NewStyle().Foreground(lipgloss.Color("196")).Bold(true),
		Skip:   r.NewStyle().Foreground(lipgloss.Color("214")),
		Label:  r.NewStyle().Foreground(lipgloss.Color("63")),
		Card: r.NewStyle().
			PaddingLeft(1).
			BorderStyle(lipgloss.NormalBorder()).
			BorderLeft(true).
			BorderForeground(lipgloss.Color("196")),
	}
}

// NewRenderer returns a renderer for w honouring mode (auto|always|never).
func NewRenderer(w io.Writer, mode string) *lipgloss.Renderer {
	r := lipgloss.NewRenderer(w)
	if ColorEnabled(mode, w) {
		r.SetColorProfile(termenv.ANSI256)
	} else {
		r.SetColorProfile(termenv.Ascii)
	}
	return r
}

// ColorEnabled decides whether output to w is coloured. Under "auto" colour
// needs a terminal and an unset NO_COLOR.
func ColorEnabled(mode string, w io.Writer) bool {
	switch strings.ToLower(mode) {
	case "always":
		return true
	case "never":
		return false
	}

	if _, ok := os.LookupEnv("NO_COLOR"); ok {
		return false
	}
	f, ok := w.(interface{ Fd() uintptr })
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}
