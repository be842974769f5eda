package alarm

import (
	"strconv"
	"testing"
	"time"

	clocktesting "github.com/rileyhilliard/fasam/internal/clock/testing"
	"github.com/rileyhilliard/fasam/internal/module"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sequentialBuckets() []Bucket {
	buckets := make([]Bucket, WindowSize)
	for i := range buckets {
		buckets[i] = Bucket{Label: strconv.Itoa(i % 24), Count: int64(i % 4)}
	}
	return buckets
}

func sum(buckets []Bucket) uint64 {
	var total uint64
	for _, b := range buckets {
		total += uint64(b.Count)
	}
	return total
}

func TestNew_SeedsWindow(t *testing.T) {
	c := clocktesting.NewFakeClock(time.Date(2024, 3, 5, 10, 30, 0, 0, time.UTC))
	s := New(c, NewRand(42))

	buckets := s.Buckets()
	require.Len(t, buckets, WindowSize)

	// Oldest bucket is 28 hours before 10:00, newest is 10.
	assert.Equal(t, "6", buckets[0].Label)
	assert.Equal(t, "10", buckets[WindowSize-1].Label)

	for _, b := range buckets {
		assert.GreaterOrEqual(t, b.Count, int64(0))
		assert.LessOrEqual(t, b.Count, int64(MaxSeedCount))
	}

	assert.Equal(t, sum(buckets), s.Total())
	assert.Equal(t, int64(0), s.Pending())
}

func TestInitialize_LabelsWrapAroundMidnight(t *testing.T) {
	s := &Stats{}
	s.Initialize(2, NewRand(1))

	buckets := s.Buckets()
	require.Len(t, buckets, WindowSize)

	want := []string{"22", "23", "0", "1", "2", "3", "4", "5", "6", "7", "8", "9", "10",
		"11", "12", "13", "14", "15", "16", "17", "18", "19", "20", "21", "22", "23", "0", "1", "2"}
	got := make([]string, len(buckets))
	for i, b := range buckets {
		got[i] = b.Label
	}
	assert.Equal(t, want, got)
}

func TestNewRand_Deterministic(t *testing.T) {
	a := &Stats{}
	a.Initialize(5, NewRand(7))
	b := &Stats{}
	b.Initialize(5, NewRand(7))

	assert.Equal(t, a.Buckets(), b.Buckets())
	assert.Equal(t, a.Total(), b.Total())
}

func TestHourLabel(t *testing.T) {
	tests := []struct {
		hour int
		want string
	}{
		{0, "0"},
		{23, "23"},
		{24, "0"},
		{-1, "23"},
		{-28, "20"},
		{51, "3"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			assert.Equal(t, tt.want, HourLabel(tt.hour))
		})
	}
}

func TestNewWithWindow_PanicsOnWrongSize(t *testing.T) {
	assert.Panics(t, func() { NewWithWindow(nil) })
	assert.Panics(t, func() { NewWithWindow(make([]Bucket, WindowSize-1)) })
	assert.NotPanics(t, func() { NewWithWindow(make([]Bucket, WindowSize)) })
}

func TestRotate_Correctness(t *testing.T) {
	before := sequentialBuckets()
	s := NewWithWindow(before)
	totalBefore := s.Total()

	s.Rotate("L", 7)

	after := s.Buckets()
	require.Len(t, after, WindowSize)
	assert.Equal(t, before[1:], after[:WindowSize-1])
	assert.Equal(t, Bucket{Label: "L", Count: 7}, after[WindowSize-1])
	assert.Equal(t, totalBefore+7, s.Total())
}

func TestRotate_PanicsOnBrokenWindow(t *testing.T) {
	var s Stats
	assert.Panics(t, func() { s.Rotate("1", 1) })
}

func TestTriggerScenario(t *testing.T) {
	s := NewWithWindow(sequentialBuckets())
	require.Equal(t, int64(0), s.Pending())

	s.RecordTrigger()
	s.RecordTrigger()
	assert.Equal(t, int64(2), s.Pending())

	s.Rotate("5", s.Pending())

	buckets := s.Buckets()
	assert.Equal(t, Bucket{Label: "5", Count: 2}, buckets[WindowSize-1])
	assert.Equal(t, int64(0), s.Pending())
}

func TestRecordTrigger_DoesNotTouchWindowOrTotal(t *testing.T) {
	s := NewWithWindow(sequentialBuckets())
	bucketsBefore := s.Buckets()
	totalBefore := s.Total()

	for i := 0; i < 10; i++ {
		s.RecordTrigger()
	}

	assert.Equal(t, bucketsBefore, s.Buckets())
	assert.Equal(t, totalBefore, s.Total())
}

func TestWindowInvariantAndMonotonicTotal(t *testing.T) {
	s := New(clocktesting.NewFakeClock(time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)), NewRand(3))
	rng := NewRand(99)

	last := s.Total()
	for step := 0; step < 500; step++ {
		if rng.IntN(3) == 0 {
			s.Rotate(HourLabel(step), s.Pending())
		} else {
			s.RecordTrigger()
		}

		require.Equal(t, WindowSize, s.Len())
		require.GreaterOrEqual(t, s.Total(), last)
		last = s.Total()
	}
}

func TestTotal_IncludesEvictedBuckets(t *testing.T) {
	buckets := make([]Bucket, WindowSize)
	for i := range buckets {
		buckets[i] = Bucket{Label: strconv.Itoa(i), Count: 1}
	}
	s := NewWithWindow(buckets)

	for i := 0; i < WindowSize*2; i++ {
		s.Rotate("x", 2)
	}

	// Every original bucket is gone but still counted.
	assert.Equal(t, uint64(WindowSize+WindowSize*2*2), s.Total())
	assert.Equal(t, uint64(WindowSize*2), sum(s.Buckets()))
}

func TestRepeatedLabelsAreNotDeduplicated(t *testing.T) {
	s := NewWithWindow(sequentialBuckets())
	for i := 0; i < WindowSize; i++ {
		s.Rotate("3", int64(i))
	}

	for _, b := range s.Buckets() {
		assert.Equal(t, "3", b.Label)
	}
	assert.Equal(t, WindowSize, s.Len())
}

func TestStats_Module(t *testing.T) {
	buckets := sequentialBuckets()
	s := NewWithWindow(buckets)
	var m module.Module = s

	assert.Equal(t, 1, m.ID())
	assert.Equal(t, "Alarm Statistics", m.Name())
	assert.NotEmpty(t, m.Description())

	series := m.Series()
	require.Len(t, series, WindowSize)
	for i, p := range series {
		assert.Equal(t, buckets[i].Label, p.Label)
		assert.Equal(t, buckets[i].Count, p.Value)
	}

	// Snapshot semantics: mutating the result does not leak back.
	series[0].Value = 1000
	assert.Equal(t, buckets[0].Count, m.Series()[0].Value)
	assert.Equal(t, m.Series(), m.Series())
}
