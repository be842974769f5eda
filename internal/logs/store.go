// Package logs holds the tiered, insertion-ordered log store shown in the
// dashboard's log panel.
package logs

import (
	"strings"
	"time"

	"github.com/rileyhilliard/fasam/internal/clock"
	"github.com/rileyhilliard/fasam/internal/module"
	"github.com/rileyhilliard/fasam/internal/ring"
)

// TimestampLayout formats entry timestamps, e.g. "Tue Mar  5 14:03:09 2024".
const TimestampLayout = "Mon Jan _2 15:04:05 2006"

// Module metadata for the store.
const (
	ModuleID          = 2
	ModuleName        = "Logging"
	ModuleDescription = "Stores and shows logging on screen"
)

// Entry is a single immutable log record.
type Entry struct {
	Message   string
	Tier      Tier
	Timestamp time.Time
}

// Format renders the entry as "<timestamp> [<LABEL>] <trimmed message>".
func (e Entry) Format() string {
	var b strings.Builder
	b.WriteString(e.Timestamp.UTC().Format(TimestampLayout))
	b.WriteString(" [")
	b.WriteString(e.Tier.Label())
	b.WriteString("] ")
	b.WriteString(strings.TrimSpace(e.Message))
	return b.String()
}

// Store keeps log entries in insertion order.
//
// With capacity 0 the store grows without bound. With a positive capacity it
// keeps only the newest entries and counts the rest as dropped.
type Store struct {
	clock    clock.Clock
	entries  []Entry             // unbounded mode
	bounded  *ring.Buffer[Entry] // retention mode
	dropped  int
	onAppend func(Entry)
}

var _ module.Module = (*Store)(nil)

// NewStore creates an empty store. A nil clock uses the wall clock.
func NewStore(c clock.Clock, capacity int) *Store {
	if c == nil {
		c = clock.Real{}
	}
	s := &Store{clock: c}
	if capacity > 0 {
		s.bounded = ring.New[Entry](capacity)
	}
	return s
}

// OnAppend registers fn to be called after every Log.
func (s *Store) OnAppend(fn func(Entry)) {
	s.onAppend = fn
}

// Log appends a new entry stamped with the store's clock.
func (s *Store) Log(message string, tier Tier) {
	e := Entry{Message: message, Tier: tier, Timestamp: s.clock.Now()}
	if s.bounded != nil {
		if _, evicted := s.bounded.Push(e); evicted {
			s.dropped++
		}
	} else {
		s.entries = append(s.entries, e)
	}
	if s.onAppend != nil {
		s.onAppend(e)
	}
}

// Entries returns a copy of the stored entries oldest first.
func (s *Store) Entries() []Entry {
	if s.bounded != nil {
		return s.bounded.Items()
	}
	out := make([]Entry, len(s.entries))
	copy(out, s.entries)
	return out
}

// Len returns the number of retained entries.
func (s *Store) Len() int {
	if s.bounded != nil {
		return s.bounded.Len()
	}
	return len(s.entries)
}

// Capacity returns the retention limit, 0 when unbounded.
func (s *Store) Capacity() int {
	if s.bounded != nil {
		return s.bounded.Cap()
	}
	return 0
}

// Dropped returns how many entries retention has evicted.
func (s *Store) Dropped() int {
	return s.dropped
}

// FormattedView projects every entry to a display line, oldest first.
// It is recomputed on each call and never mutates the store.
func (s *Store) FormattedView() []string {
	entries := s.Entries()
	lines := make([]string, len(entries))
	for i, e := range entries {
		lines[i] = e.Format()
	}
	return lines
}

// ID implements module.Module.
func (s *Store) ID() int { return ModuleID }

// Name implements module.Module.
func (s *Store) Name() string { return ModuleName }

// Description implements module.Module.
func (s *Store) Description() string { return ModuleDescription }

// Series implements module.Module. Log data is shown as a list, not a chart.
func (s *Store) Series() []module.SeriesPoint {
	return []module.SeriesPoint{}
}

// TierOf recovers the tier from a formatted line by its bracketed label.
// Lines without a recognized label report Debug.
func TierOf(line string) Tier {
	switch {
	case strings.Contains(line, "["+LabelError+"]"):
		return Error
	case strings.Contains(line, "["+LabelWarn+"]"):
		return Warning
	case strings.Contains(line, "["+LabelInfo+"]"):
		return Info
	default:
		return Debug
	}
}
