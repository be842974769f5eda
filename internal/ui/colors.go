package ui

import "github.com/charmbracelet/lipgloss"

// Semantic colors for command output outside the dashboard. ANSI codes keep
// them readable on any terminal palette.
const (
	ColorSuccess lipgloss.Color = "2" // Green
	ColorError   lipgloss.Color = "1" // Red
	ColorWarning lipgloss.Color = "3" // Yellow
	ColorMuted   lipgloss.Color = "8" // Gray (bright black)
)
