// Package ui holds terminal styling, logging and progress reporting for the
// sysgen command line.
package ui

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
)

var (
	ColorGreen  = lipgloss.Color("42")
	ColorYellow = lipgloss.Color("220")
	ColorRed    = lipgloss.Color("196")
	ColorGray   = lipgloss.Color("240")

	SuccessStyle = lipgloss.NewStyle().
			Foreground(ColorGreen).
			Bold(true)

	ErrorStyle = lipgloss.NewStyle().
			Foreground(ColorRed).
			Bold(true)

	WarningStyle = lipgloss.NewStyle().
			Foreground(ColorYellow)

	HelpStyle = lipgloss.NewStyle().
			Foreground(ColorGray)

	IconSuccess = "✅"
	IconWarning = "⚠️ "
	IconError   = "❌"
	IconPackage = "📦"
)

// Success prints a styled success line.
func Success(w io.Writer, format string, args ...any) {
	fmt.Fprintln(w, SuccessStyle.Render(IconSuccess+" "+fmt.Sprintf(format, args...)))
}

// Warning prints a styled warning line.
func Warning(w io.Writer, format string, args ...any) {
	fmt.Fprintln(w, WarningStyle.Render(IconWarning+fmt.Sprintf(format, args...)))
}

// Error prints a styled error line.
func Error(w io.Writer, format string, args ...any) {
	fmt.Fprintln(w, ErrorStyle.Render(IconError+" "+fmt.Sprintf(format, args...)))
}

// Hint prints a dimmed line.
func Hint(w io.Writer, format string, args ...any) {
	fmt.Fprintln(w, HelpStyle.Render(fmt.Sprintf(format, args...)))
}
