// Package alarm implements the rolling alarm statistics shown in the
// dashboard's bar chart.
//
// The window always holds exactly WindowSize hourly buckets, oldest first.
// Triggers accumulate in a pending count for the current hour; when the hour
// closes the pending count is pushed as a new bucket and the oldest bucket is
// evicted.
package alarm

import (
	"fmt"
	"math/rand/v2"
	"strconv"

	"github.com/rileyhilliard/fasam/internal/clock"
	"github.com/rileyhilliard/fasam/internal/module"
	"github.com/rileyhilliard/fasam/internal/ring"
)

// WindowSize is the number of hourly buckets in the chart.
const WindowSize = 29

// MaxSeedCount bounds the synthetic per-hour counts used to seed the window.
const MaxSeedCount = 5

// Module metadata for the alarm statistics.
const (
	ModuleID          = 1
	ModuleName        = "Alarm Statistics"
	ModuleDescription = "Statistics of alarms for the past 29 hours"
)

// Bucket is one hour of the window.
type Bucket struct {
	Label string
	Count int64
}

// Stats owns the rolling window, the running total of every count ever
// pushed (evicted buckets included), and the pending count of the current hour.
type Stats struct {
	window  *ring.Buffer[Bucket]
	total   uint64
	pending int64
}

var _ module.Module = (*Stats)(nil)

// New creates statistics seeded with synthetic history ending at the clock's
// current UTC hour. Counts are drawn uniformly from [0, MaxSeedCount] using rng.
func New(c clock.Clock, rng *rand.Rand) *Stats {
	if c == nil {
		c = clock.Real{}
	}
	s := &Stats{}
	s.Initialize(c.Now().UTC().Hour(), rng)
	return s
}

// NewRand returns the generator used for seeding. A zero seed picks one from
// the runtime's random source.
func NewRand(seed uint64) *rand.Rand {
	if seed == 0 {
		seed = rand.Uint64()
	}
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}

// NewWithWindow creates statistics from explicit buckets. Panics unless
// exactly WindowSize buckets are given.
func NewWithWindow(buckets []Bucket) *Stats {
	if len(buckets) != WindowSize {
		panic(fmt.Sprintf("alarm: got %d buckets, want %d", len(buckets), WindowSize))
	}
	s := &Stats{window: ring.New[Bucket](WindowSize)}
	for _, b := range buckets {
		s.window.Push(b)
		s.total += uint64(b.Count)
	}
	return s
}

// Initialize replaces the window with WindowSize synthetic buckets. The oldest
// bucket is labelled 28 hours before currentHour and the newest currentHour.
func (s *Stats) Initialize(currentHour int, rng *rand.Rand) {
	if rng == nil {
		rng = NewRand(0)
	}
	s.window = ring.New[Bucket](WindowSize)
	s.total = 0
	s.pending = 0
	for offset := WindowSize - 1; offset >= 0; offset-- {
		count := int64(rng.IntN(MaxSeedCount + 1))
		s.window.Push(Bucket{Label: HourLabel(currentHour - offset), Count: count})
		s.total += uint64(count)
	}
}

// HourLabel renders an hour-of-day, wrapping values outside 0-23 mod 24.
func HourLabel(hour int) string {
	return strconv.Itoa(((hour % 24) + 24) % 24)
}

// RecordTrigger counts one alarm against the current hour. The running total
// picks it up when the hour is rotated in.
func (s *Stats) RecordTrigger() {
	s.pending++
}

// Rotate closes an hour: evicts the oldest bucket, appends (label, count),
// adds count to the running total and clears the pending count.
//
// The window must hold exactly WindowSize buckets; anything else means
// Initialize was never called and is a programming error.
func (s *Stats) Rotate(label string, count int64) {
	if s.window == nil || s.window.Len() != WindowSize {
		panic(fmt.Sprintf("alarm: rotate on window of %d buckets, want %d", s.Len(), WindowSize))
	}
	s.window.Push(Bucket{Label: label, Count: count})
	if count > 0 {
		s.total += uint64(count)
	}
	s.pending = 0
}

// Pending returns the alarms recorded in the current, not yet rotated, hour.
func (s *Stats) Pending() int64 {
	return s.pending
}

// Total returns the running total of every count pushed into the window.
func (s *Stats) Total() uint64 {
	return s.total
}

// Len returns the number of buckets in the window.
func (s *Stats) Len() int {
	if s.window == nil {
		return 0
	}
	return s.window.Len()
}

// Buckets returns a copy of the window oldest first.
func (s *Stats) Buckets() []Bucket {
	if s.window == nil {
		return nil
	}
	return s.window.Items()
}

// ID implements module.Module.
func (s *Stats) ID() int { return ModuleID }

// Name implements module.Module.
func (s *Stats) Name() string { return ModuleName }

// Description implements module.Module.
func (s *Stats) Description() string { return ModuleDescription }

// Series implements module.Module.
func (s *Stats) Series() []module.SeriesPoint {
	buckets := s.Buckets()
	out := make([]module.SeriesPoint, len(buckets))
	for i, b := range buckets {
		out[i] = module.SeriesPoint{Label: b.Label, Value: b.Count}
	}
	return out
}
