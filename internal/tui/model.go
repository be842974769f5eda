package tui

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/rileyhilliard/fasam/internal/dashboard"
)

// frameMsg carries a snapshot from the control loop.
type frameMsg struct {
	snap dashboard.Snapshot
}

// Model is the Bubble Tea model. It only displays snapshots and forwards key
// presses; all state changes happen in the dashboard's control loop.
type Model struct {
	snap     dashboard.Snapshot
	hasFrame bool
	width    int
	height   int

	logView viewport.Model
	help    help.Model
	keys    keyMap

	events      chan<- dashboard.KeyEvent
	droppedKeys int
}

// NewModel creates a model that forwards key presses to events. Sends never
// block; presses are dropped when events is full.
func NewModel(events chan<- dashboard.KeyEvent) Model {
	h := help.New()
	h.Styles.ShortKey = TitleStyle
	h.Styles.ShortDesc = MutedStyle
	h.Styles.ShortSeparator = MutedStyle

	return Model{
		logView: viewport.New(0, 0),
		help:    h,
		keys:    newKeyMap(dashboard.Bindings),
		events:  events,
	}
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		select {
		case m.events <- dashboard.KeyEvent{Key: msg.String()}:
		default:
			m.droppedKeys++
		}
		return m, nil

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.resize()
		return m, nil

	case frameMsg:
		m.snap = msg.snap
		m.hasFrame = true
		m.refreshLogs()
		return m, nil
	}

	return m, nil
}

// resize fits the log viewport into its panel.
func (m *Model) resize() {
	l := computeLayout(m.width, m.height)
	m.logView.Width = l.innerWidth
	m.logView.Height = max(l.logs-panelChrome-1, 1)
	m.help.Width = l.innerWidth
	m.refreshLogs()
}

// refreshLogs reloads the log panel and pins it to the newest line.
func (m *Model) refreshLogs() {
	m.logView.SetContent(renderLogLines(m.snap.LogLines, m.logView.Width))
	m.logView.GotoBottom()
}
