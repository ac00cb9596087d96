// Package ui provides the styled terminal output used by every command.
package ui

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
)

var (
	successMark = lipgloss.NewStyle().Foreground(lipgloss.Color("2")).Render("✓")
	warnMark    = lipgloss.NewStyle().Foreground(lipgloss.Color("3")).Render("⚠")
	errorMark   = lipgloss.NewStyle().Foreground(lipgloss.Color("1")).Render("✗")
	dimStyle    = lipgloss.NewStyle().Faint(true)
)

// Logger writes status lines to the terminal. Info and success go to out,
// warnings and errors to errOut.
type Logger struct {
	out    io.Writer
	errOut io.Writer
}

func New(out, errOut io.Writer) *Logger {
	return &Logger{out: out, errOut: errOut}
}

func (l *Logger) Successf(format string, args ...any) {
	fmt.Fprintf(l.out, "%s %s\n", successMark, fmt.Sprintf(format, args...))
}

func (l *Logger) Infof(format string, args ...any) {
	fmt.Fprintf(l.out, "  %s\n", fmt.Sprintf(format, args...))
}

// Itemf prints one plan item line, dimmed, during materialization.
func (l *Logger) Itemf(format string, args ...any) {
	fmt.Fprintf(l.out, "  %s\n", dimStyle.Render(fmt.Sprintf(format, args...)))
}

func (l *Logger) Warnf(format string, args ...any) {
	fmt.Fprintf(l.errOut, "%s %s\n", warnMark, fmt.Sprintf(format, args...))
}

func (l *Logger) Errorf(format string, args ...any) {
	fmt.Fprintf(l.errOut, "%s %s\n", errorMark, fmt.Sprintf(format, args...))
}
