package tui

import (
	"fmt"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rileyhilliard/fasam/internal/dashboard"
	"github.com/rileyhilliard/fasam/internal/module"
)

func testSnapshot(logCount int) dashboard.Snapshot {
	lines := make([]string, logCount)
	for i := range lines {
		lines[i] = fmt.Sprintf("Tue Mar  5 10:15:%02d 2024 [INFO] entry %02d", i%60, i)
	}
	values := make([]int64, 29)
	for i := range values {
		values[i] = int64(i % 6)
	}
	return dashboard.Snapshot{
		SessionID: "3f1c2d8e-0000-4000-8000-000000000000",
		Modules: []module.Header{
			{ID: 1, Name: "Alarm Statistics"},
			{ID: 2, Name: "Logging"},
		},
		Series:        hourPoints(values...),
		LogLines:      lines,
		Pending:       2,
		RecordedTotal: 73,
		LastTriggered: time.Date(2024, 3, 5, 10, 15, 4, 0, time.UTC),
	}
}

func sizedModel(t *testing.T, events chan dashboard.KeyEvent, w, h int) Model {
	t.Helper()
	var m tea.Model = NewModel(events)
	m, _ = m.Update(tea.WindowSizeMsg{Width: w, Height: h})
	return m.(Model)
}

func runeKey(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func TestModel_ViewBeforeFirstFrame(t *testing.T) {
	m := sizedModel(t, make(chan dashboard.KeyEvent, 1), 100, 40)
	assert.Equal(t, StartingText, m.View())
}

func TestModel_ViewTooSmall(t *testing.T) {
	m := sizedModel(t, make(chan dashboard.KeyEvent, 1), 15, 8)
	updated, _ := m.Update(frameMsg{snap: testSnapshot(3)})
	assert.Contains(t, updated.View(), "Terminal too small")
}

func TestModel_ViewRegions(t *testing.T) {
	m := sizedModel(t, make(chan dashboard.KeyEvent, 1), 100, 40)
	updated, _ := m.Update(frameMsg{snap: testSnapshot(5)})
	view := updated.View()

	assert.Contains(t, view, "Welcome to the Fire and Security Alarm Monitoring System")
	assert.Contains(t, view, "Trigger the alarm")
	assert.Contains(t, view, ChartTitle)
	assert.Contains(t, view, "Logging")
	assert.Contains(t, view, "Stats: Alarm Statistics")
	assert.Contains(t, view, "Last Alarm Triggered: Tue Mar  5 10:15:04 2024")
	assert.Contains(t, view, "Alarms Recorded To Date: 73")
	assert.Contains(t, view, "Alarms This Hour: 2")
	assert.Contains(t, view, "FASAM (session 3f1c2d8e)")
	assert.Contains(t, view, "entry 04")

	assert.Equal(t, 40, lipgloss.Height(view))
	for _, line := range strings.Split(view, "\n") {
		assert.LessOrEqual(t, lipgloss.Width(line), 100)
	}
}

func TestModel_LogPanelPinnedToNewest(t *testing.T) {
	m := sizedModel(t, make(chan dashboard.KeyEvent, 1), 100, 40)
	updated, _ := m.Update(frameMsg{snap: testSnapshot(50)})
	view := updated.View()

	assert.Contains(t, view, "entry 49")
	assert.NotContains(t, view, "entry 00")
}

func TestModel_DroppedLogsInTitle(t *testing.T) {
	m := sizedModel(t, make(chan dashboard.KeyEvent, 1), 100, 40)
	snap := testSnapshot(3)
	snap.DroppedLogs = 12
	updated, _ := m.Update(frameMsg{snap: snap})

	assert.Contains(t, updated.View(), "12 older entries dropped")
}

func TestModel_ForwardsKeys(t *testing.T) {
	events := make(chan dashboard.KeyEvent, 4)
	m := sizedModel(t, events, 100, 40)

	updated, cmd := m.Update(runeKey('t'))
	assert.Nil(t, cmd, "the model never quits on its own")
	updated, _ = updated.Update(runeKey('q'))
	_, _ = updated.Update(tea.KeyMsg{Type: tea.KeyCtrlC})

	require.Len(t, events, 3)
	assert.Equal(t, dashboard.KeyEvent{Key: "t"}, <-events)
	assert.Equal(t, dashboard.KeyEvent{Key: "q"}, <-events)
	assert.Equal(t, dashboard.KeyEvent{Key: "ctrl+c"}, <-events)
}

func TestModel_FullKeyBufferDropsPress(t *testing.T) {
	events := make(chan dashboard.KeyEvent)
	m := sizedModel(t, events, 100, 40)

	updated, _ := m.Update(runeKey('t'))

	assert.Equal(t, 1, updated.(Model).droppedKeys)
}

func TestComputeLayout(t *testing.T) {
	l := computeLayout(100, 40)
	assert.Equal(t, 6, l.help)
	assert.Equal(t, 14, l.chart)
	assert.Equal(t, 14, l.logs)
	assert.Equal(t, 6, l.stats)
	assert.Equal(t, 96, l.innerWidth)

	l = computeLayout(80, 33)
	assert.Equal(t, 33, l.help+l.chart+l.logs+l.stats)
}

func TestRenderLogLines_Truncates(t *testing.T) {
	out := renderLogLines([]string{"Tue Mar  5 10:15:00 2024 [ERROR] something long"}, 20)
	assert.Equal(t, 20, lipgloss.Width(out))
	assert.True(t, strings.HasSuffix(out, "…"))
	assert.Empty(t, renderLogLines([]string{"x"}, 0))
}
