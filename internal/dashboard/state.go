package dashboard

import (
	"time"

	"github.com/rileyhilliard/fasam/internal/alarm"
	"github.com/rileyhilliard/fasam/internal/logs"
	"github.com/rileyhilliard/fasam/internal/module"
)

// Status is the lifecycle state of the control loop.
type Status int

const (
	StatusIdle Status = iota
	StatusRunning
	StatusStopped
)

// String returns a human-readable status.
func (s Status) String() string {
	switch s {
	case StatusIdle:
		return "idle"
	case StatusRunning:
		return "running"
	case StatusStopped:
		return "stopped"
	default:
		return "unknown"
	}
}

// State is the single mutable root the dashboard renders from. Only the
// control loop writes to it.
type State struct {
	Alarms          *alarm.Stats
	Logs            *logs.Store
	LastTriggerTime time.Time
	TrackedHour     int
}

// CurrentHourAlarmCount returns the alarms triggered since the last rotation.
func (s *State) CurrentHourAlarmCount() int64 {
	return s.Alarms.Pending()
}

// Snapshot is a read-only copy of State handed to the Renderer. Every slice is
// freshly allocated so the renderer may keep it after Draw returns.
type Snapshot struct {
	SessionID     string
	Modules       []module.Header
	Series        []module.SeriesPoint
	LogLines      []string
	DroppedLogs   int
	Pending       int64
	RecordedTotal uint64
	LastTriggered time.Time
	TakenAt       time.Time
}

// Header returns the metadata of the module with id, or a zero Header.
func (s Snapshot) Header(id int) module.Header {
	for _, h := range s.Modules {
		if h.ID == id {
			return h
		}
	}
	return module.Header{}
}
