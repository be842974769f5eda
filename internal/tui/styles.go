package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"

	"github.com/rileyhilliard/fasam/internal/logs"
)

// Palette for the dashboard.
const (
	ColorBorder    = lipgloss.Color("#2A2A4A")
	ColorTitle     = lipgloss.Color("#FF2E97")
	ColorTextMuted = lipgloss.Color("#6B6B8D")
	ColorText      = lipgloss.Color("#FFFFFF")
	ColorBar       = lipgloss.Color("#00FFFF")
	ColorBarValue  = lipgloss.Color("#FFAA00")

	// Log tiers
	ColorError = lipgloss.Color("#FF0055")
	ColorWarn  = lipgloss.Color("#FFD700")
	ColorInfo  = lipgloss.Color("#3B82F6")
	ColorDebug = lipgloss.Color("#39FF14")
)

var (
	PanelStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(ColorBorder).
			Padding(0, 1)

	TitleStyle = lipgloss.NewStyle().
			Foreground(ColorTitle).
			Bold(true)

	TextStyle = lipgloss.NewStyle().
			Foreground(ColorText)

	MutedStyle = lipgloss.NewStyle().
			Foreground(ColorTextMuted)

	BarStyle = lipgloss.NewStyle().
			Foreground(ColorBar)

	BarValueStyle = lipgloss.NewStyle().
			Foreground(ColorBarValue).
			Bold(true)

	tierStyles = map[logs.Tier]lipgloss.Style{
		logs.Error:   lipgloss.NewStyle().Foreground(ColorError),
		logs.Warning: lipgloss.NewStyle().Foreground(ColorWarn),
		logs.Info:    lipgloss.NewStyle().Foreground(ColorInfo),
		logs.Debug:   lipgloss.NewStyle().Foreground(ColorDebug),
	}
)

// TierStyle returns the style for a log tier. Unknown tiers render as debug.
func TierStyle(t logs.Tier) lipgloss.Style {
	if s, ok := tierStyles[t]; ok {
		return s
	}
	return tierStyles[logs.Debug]
}

// ColorMode selects how the renderer picks its color profile.
type ColorMode string

const (
	ColorAuto   ColorMode = "auto"
	ColorAlways ColorMode = "always"
	ColorNever  ColorMode = "never"
)

// ParseColorMode validates s as a ColorMode.
func ParseColorMode(s string) (ColorMode, error) {
	switch m := ColorMode(strings.ToLower(strings.TrimSpace(s))); m {
	case ColorAuto, ColorAlways, ColorNever:
		return m, nil
	case "":
		return ColorAuto, nil
	default:
		return "", fmt.Errorf("unknown color mode %q (want auto, always or never)", s)
	}
}

// Profile returns the termenv profile for the mode. Auto defers to detect.
func (m ColorMode) Profile(detect func() termenv.Profile) termenv.Profile {
	switch m {
	case ColorAlways:
		return termenv.TrueColor
	case ColorNever:
		return termenv.Ascii
	default:
		return detect()
	}
}

// ApplyColorMode sets the global lipgloss color profile.
func ApplyColorMode(m ColorMode) {
	lipgloss.SetColorProfile(m.Profile(termenv.ColorProfile))
}
