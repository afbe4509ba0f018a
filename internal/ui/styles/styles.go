// Package styles provides shared lipgloss styles for terminal output.
//
// This package centralizes color definitions so listing, prompt, and
// message rendering stay visually consistent.
package styles

import "github.com/charmbracelet/lipgloss"

// Colors used throughout the UI
var (
	// Accent is the highlight color for selected/active items (pink)
	Accent lipgloss.TerminalColor = lipgloss.Color("212")

	// Error is used for error messages (red)
	Error lipgloss.TerminalColor = lipgloss.Color("196")

	// Muted is used for secondary text like paths (gray)
	Muted lipgloss.TerminalColor = lipgloss.Color("244")
)

// Common styles
var (
	// ProjectName renders a project name in listings (bold)
	ProjectName = lipgloss.NewStyle().Bold(true)

	// ProjectPath renders a project path in listings
	ProjectPath = lipgloss.NewStyle().Foreground(Muted)

	// AccentStyle applies the accent color with bold
	AccentStyle = lipgloss.NewStyle().
			Foreground(Accent).
			Bold(true)

	// ErrorStyle applies the error color
	ErrorStyle = lipgloss.NewStyle().Foreground(Error)
)

// Plain strips all styling. Called when stdout is not a terminal so
// listings stay machine-readable through pipes.
func Plain() {
	ProjectName = lipgloss.NewStyle()
	ProjectPath = lipgloss.NewStyle()
	AccentStyle = lipgloss.NewStyle()
	ErrorStyle = lipgloss.NewStyle()
}
