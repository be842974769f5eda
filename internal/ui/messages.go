// Package ui formats one-line status messages for fasam's non-dashboard
// commands.
package ui

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
)

var (
	successStyle = lipgloss.NewStyle().Foreground(ColorSuccess)
	warningStyle = lipgloss.NewStyle().Foreground(ColorWarning)
	mutedStyle   = lipgloss.NewStyle().Foreground(ColorMuted)
)

// Success prints "✓ <message>" with a green symbol.
func Success(w io.Writer, format string, args ...interface{}) {
	fmt.Fprintf(w, "%s %s\n", successStyle.Render(SymbolSuccess), fmt.Sprintf(format, args...))
}

// Warning prints "! <message>" with a yellow symbol.
func Warning(w io.Writer, format string, args ...interface{}) {
	fmt.Fprintf(w, "%s %s\n", warningStyle.Render(SymbolWarning), fmt.Sprintf(format, args...))
}

// Muted prints a dimmed line.
func Muted(w io.Writer, format string, args ...interface{}) {
	fmt.Fprintln(w, mutedStyle.Render(fmt.Sprintf(format, args...)))
}
