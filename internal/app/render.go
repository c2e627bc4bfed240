package app

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/zbowling/depwise/internal/core/domain"
	"github.com/zbowling/depwise/internal/ui/style"
	"golang.org/x/term"
)

var (
	headerStyle  = lipgloss.NewStyle().Foreground(style.Slate)
	okStyle      = lipgloss.NewStyle().Foreground(style.Green)
	warnStyle    = lipgloss.NewStyle().Foreground(style.Yellow)
	failStyle    = lipgloss.NewStyle().Foreground(style.Red).Bold(true)
	siteStyle    = lipgloss.NewStyle().Foreground(style.Ink).Faint(true)
	summaryStyle = lipgloss.NewStyle().Foreground(style.Teal).Bold(true)
)

// renderAnalysis writes the human-readable check result.
func renderAnalysis(w io.Writer, a *domain.Analysis) {
	width := renderWidth(w)

	fmt.Fprintln(w, headerStyle.Render(style.Dot+" environment "+a.Environment))

	if len(a.Used) > 0 {
		line := fmt.Sprintf("%s used (%d): %s", style.Check, len(a.Used), strings.Join(a.Used, ", "))
		fmt.Fprintln(w, okStyle.Render(truncate(line, width)))
	}

	if len(a.Unused) > 0 {
		line := fmt.Sprintf("%s declared but never imported (%d): %s",
			style.Warning, len(a.Unused), strings.Join(a.Unused, ", "))
		fmt.Fprintln(w, warnStyle.Render(truncate(line, width)))
	}

	if len(a.Guarded) > 0 {
		fmt.Fprintln(w, warnStyle.Render(fmt.Sprintf("%s optional imports without declaration (%d):",
			style.Warning, len(a.Guarded))))
		for _, site := range a.Guarded {
			fmt.Fprintln(w, siteStyle.Render(renderSite(site)))
		}
	}

	if len(a.Missing) > 0 {
		fmt.Fprintln(w, failStyle.Render(fmt.Sprintf("%s undeclared imports (%d):",
			style.Cross, len(a.Missing))))
		for _, site := range a.Missing {
			fmt.Fprintln(w, siteStyle.Render(renderSite(site)))
		}
		fmt.Fprintln(w, failStyle.Render(style.Cross+" check failed"))
		return
	}

	fmt.Fprintln(w, summaryStyle.Render(style.Check+" all imports declared"))
}

func renderSite(site domain.ImportSite) string {
	return fmt.Sprintf("    %s (%s:%d)", site.Module, site.File, site.Line)
}

// truncate caps long name lists at the terminal width.
func truncate(line string, width int) string {
	runes := []rune(line)
	if len(runes) <= width {
		return line
	}
	return string(runes[:width-1]) + "…"
}

// renderWidth returns the terminal width when w is a TTY, with a sane
// default for pipes and tests.
func renderWidth(w io.Writer) int {
	if f, ok := w.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		if width, _, err := term.GetSize(int(f.Fd())); err == nil && width > 0 {
			return width
		}
	}
	return 80
}
