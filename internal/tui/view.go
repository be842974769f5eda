package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"

	"github.com/rileyhilliard/fasam/internal/alarm"
	"github.com/rileyhilliard/fasam/internal/logs"
)

// Text shown in the panels.
const (
	WelcomeText  = "Welcome to the Fire and Security Alarm Monitoring System. Please use the following key binds:"
	ChartTitle   = "Past 29 Hours Alarms"
	StatsTitle   = "Stats"
	StartingText = "Starting FASAM..."
)

// Minimum terminal size for the full layout.
const (
	MinWidth  = 20
	MinHeight = 12
)

// panelChrome is the rows or columns a bordered panel spends on its border.
const panelChrome = 2

// layout holds the outer height of each region and the usable text width.
type layout struct {
	width      int
	innerWidth int
	help       int
	chart      int
	logs       int
	stats      int
}

// computeLayout splits height 15/35/35/15, giving the remainder to the
// stats region.
func computeLayout(width, height int) layout {
	l := layout{
		width:      width,
		innerWidth: max(width-panelChrome-2, 1),
		help:       height * 15 / 100,
		chart:      height * 35 / 100,
		logs:       height * 35 / 100,
	}
	l.stats = height - l.help - l.chart - l.logs
	return l
}

// View implements tea.Model.
func (m Model) View() string {
	if !m.hasFrame || m.width == 0 {
		return StartingText
	}
	if m.width < MinWidth || m.height < MinHeight {
		return fmt.Sprintf("Terminal too small (%dx%d), need at least %dx%d", m.width, m.height, MinWidth, MinHeight)
	}

	l := computeLayout(m.width, m.height)
	return lipgloss.JoinVertical(lipgloss.Left,
		m.renderHelp(l),
		m.renderChart(l),
		m.renderLogs(l),
		m.renderStats(l),
	)
}

func (m Model) renderHelp(l layout) string {
	title := "FASAM"
	if id := m.snap.SessionID; id != "" {
		title = fmt.Sprintf("FASAM (session %s)", shortID(id))
	}
	body := TextStyle.Render(runewidth.Truncate(WelcomeText, l.innerWidth, "…")) + "\n" + m.help.View(m.keys)
	return panel(title, body, l.width, l.help)
}

func (m Model) renderChart(l layout) string {
	chartHeight := l.chart - panelChrome - 1
	return panel(ChartTitle, RenderBarChart(m.snap.Series, l.innerWidth, chartHeight), l.width, l.chart)
}

func (m Model) renderLogs(l layout) string {
	title := m.snap.Header(logs.ModuleID).Name
	if m.snap.DroppedLogs > 0 {
		title = fmt.Sprintf("%s (%d older entries dropped)", title, m.snap.DroppedLogs)
	}
	return panel(title, m.logView.View(), l.width, l.logs)
}

func (m Model) renderStats(l layout) string {
	title := StatsTitle
	if h := m.snap.Header(alarm.ModuleID); h.Name != "" {
		title = fmt.Sprintf("%s: %s", StatsTitle, h.Name)
	}
	return panel(title, renderStatsBody(m), l.width, l.stats)
}

func renderStatsBody(m Model) string {
	rows := []string{
		fmt.Sprintf("Last Alarm Triggered: %s", m.snap.LastTriggered.UTC().Format(logs.TimestampLayout)),
		fmt.Sprintf("Alarms Recorded To Date: %d", m.snap.RecordedTotal),
		fmt.Sprintf("Alarms This Hour: %d", m.snap.Pending),
	}
	return strings.Join(rows, "\n")
}

// shortID is the first block of a session UUID.
func shortID(id string) string {
	if i := strings.IndexByte(id, '-'); i > 0 {
		return id[:i]
	}
	return id
}

// renderLogLines colors each formatted line by its tier and truncates it to width.
func renderLogLines(lines []string, width int) string {
	if width <= 0 {
		return ""
	}
	out := make([]string, len(lines))
	for i, line := range lines {
		out[i] = TierStyle(logs.TierOf(line)).Render(runewidth.Truncate(line, width, "…"))
	}
	return strings.Join(out, "\n")
}

// panel renders a bordered box of exactly height rows. Content beyond the
// available rows is cut from the bottom.
func panel(title, body string, width, height int) string {
	inner := max(height-panelChrome, 1)
	title = runewidth.Truncate(title, max(width-panelChrome-2, 1), "…")
	lines := append([]string{TitleStyle.Render(title)}, strings.Split(body, "\n")...)
	if len(lines) > inner {
		lines = lines[:inner]
	}
	return PanelStyle.
		Width(max(width-panelChrome, 1)).
		Height(inner).
		Render(strings.Join(lines, "\n"))
}
