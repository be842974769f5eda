package dashboard

import (
	"time"

	"github.com/rileyhilliard/fasam/internal/logs"
)

// Renderer draws a frame from a snapshot. Errors are fatal to the loop.
type Renderer interface {
	Draw(snap Snapshot) error
}

// InputSource delivers key presses. PollEvent blocks for at most timeout and
// returns ok=false when nothing arrived in that time. Errors are fatal.
type InputSource interface {
	PollEvent(timeout time.Duration) (ev KeyEvent, ok bool, err error)
}

// Observer is notified of state changes. Calls happen on the control
// goroutine and must not block.
type Observer interface {
	Started(total uint64)
	AlarmTriggered(pending int64)
	AlarmReset()
	WindowRotated(label string, count int64, total uint64)
	LogAppended(e logs.Entry)
}

// NoopObserver ignores every notification.
type NoopObserver struct{}

func (NoopObserver) Started(uint64)                      {}
func (NoopObserver) AlarmTriggered(int64)                {}
func (NoopObserver) AlarmReset()                         {}
func (NoopObserver) WindowRotated(string, int64, uint64) {}
func (NoopObserver) LogAppended(logs.Entry)              {}
