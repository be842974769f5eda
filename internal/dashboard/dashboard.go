package dashboard

import (
	"context"
	"time"

	"github.com/rileyhilliard/fasam/internal/alarm"
	"github.com/rileyhilliard/fasam/internal/clock"
	"github.com/rileyhilliard/fasam/internal/errors"
	"github.com/rileyhilliard/fasam/internal/logger"
	"github.com/rileyhilliard/fasam/internal/logs"
	"github.com/rileyhilliard/fasam/internal/module"
)

// Default timing, matching the original 500ms redraw cadence.
const (
	DefaultTickInterval = 500 * time.Millisecond
	DefaultFallbackWait = 250 * time.Millisecond
)

// Messages written to the log panel.
const (
	MsgSystemStarting  = "system starting"
	MsgAlarmStarting   = "alarm module starting"
	MsgLoggingStarting = "logging module starting"
	MsgAlarmStarted    = "alarm module started"
	MsgLoggingStarted  = "logging module started"
	MsgAlarmTriggered  = "alarm triggered"
	MsgAlarmDisabled   = "alarm disabled"
)

// Options configures a Dashboard. Zero values fall back to defaults.
type Options struct {
	Clock        clock.Clock
	TickInterval time.Duration
	FallbackWait time.Duration
	LogRetention int
	Seed         uint64
	SessionID    string
	Observer     Observer
	Logger       logger.Logger
}

// Dashboard is the orchestrator: it owns State, drives the tick loop,
// interprets keys and delegates drawing.
type Dashboard struct {
	state     State
	registry  *module.Registry
	renderer  Renderer
	input     InputSource
	clock     clock.Clock
	tick      time.Duration
	fallback  time.Duration
	sessionID string
	observer  Observer
	log       logger.Logger
	status    Status
}

// New builds a dashboard with freshly seeded alarm statistics and an empty
// log store.
func New(renderer Renderer, input InputSource, opts Options) *Dashboard {
	if opts.Clock == nil {
		opts.Clock = clock.Real{}
	}
	if opts.TickInterval <= 0 {
		opts.TickInterval = DefaultTickInterval
	}
	if opts.FallbackWait <= 0 {
		opts.FallbackWait = DefaultFallbackWait
	}
	if opts.Observer == nil {
		opts.Observer = NoopObserver{}
	}
	if opts.Logger == nil {
		opts.Logger = logger.Noop()
	}

	now := opts.Clock.Now()
	alarms := alarm.New(opts.Clock, alarm.NewRand(opts.Seed))
	store := logs.NewStore(opts.Clock, opts.LogRetention)
	store.OnAppend(opts.Observer.LogAppended)

	return &Dashboard{
		state: State{
			Alarms:          alarms,
			Logs:            store,
			LastTriggerTime: now,
			TrackedHour:     now.UTC().Hour(),
		},
		registry:  module.NewRegistry(alarms, store),
		renderer:  renderer,
		input:     input,
		clock:     opts.Clock,
		tick:      opts.TickInterval,
		fallback:  opts.FallbackWait,
		sessionID: opts.SessionID,
		observer:  opts.Observer,
		log:       opts.Logger,
	}
}

// Run executes the control loop until the quit key is pressed, the renderer or
// input source fails, or ctx is cancelled. Cancellation is checked after each
// bounded wait. Returns nil on quit.
func (d *Dashboard) Run(ctx context.Context) error {
	d.status = StatusRunning
	defer func() { d.status = StatusStopped }()

	d.observer.Started(d.state.Alarms.Total())
	d.logStartup()

	lastTick := d.clock.Now()
	for {
		if err := ctx.Err(); err != nil {
			d.log.Info("dashboard cancelled: %v", err)
			return err
		}

		d.rotateIfHourChanged()

		if err := d.renderer.Draw(d.Snapshot()); err != nil {
			d.log.Error("draw failed: %v", err)
			return fatal(err, errors.ErrRender, "Failed to draw the dashboard")
		}

		ev, ok, err := d.input.PollEvent(d.waitBudget(lastTick))
		if err != nil {
			d.log.Error("input failed: %v", err)
			return fatal(err, errors.ErrInput, "Lost the keyboard input stream")
		}

		if ok && d.apply(ev) == ActionQuit {
			d.log.Info("quit requested")
			return nil
		}

		if now := d.clock.Now(); now.Sub(lastTick) >= d.tick {
			lastTick = now
		}
	}
}

// waitBudget is the time left in the current tick, or the fallback wait when
// the tick has already elapsed.
func (d *Dashboard) waitBudget(lastTick time.Time) time.Duration {
	wait := d.tick - d.clock.Now().Sub(lastTick)
	if wait <= 0 {
		return d.fallback
	}
	return wait
}

// apply performs the action bound to ev and returns it.
func (d *Dashboard) apply(ev KeyEvent) Action {
	action := ActionFor(ev)
	switch action {
	case ActionTrigger:
		d.state.Alarms.RecordTrigger()
		d.state.LastTriggerTime = d.clock.Now()
		d.state.Logs.Log(MsgAlarmTriggered, logs.Info)
		d.observer.AlarmTriggered(d.state.Alarms.Pending())
		d.log.Debug("alarm triggered, pending=%d", d.state.Alarms.Pending())

	case ActionReset:
		// Reset only records the request; counts are left untouched.
		d.state.Logs.Log(MsgAlarmDisabled, logs.Info)
		d.observer.AlarmReset()
		d.log.Debug("alarm reset requested")
	}
	return action
}

// rotateIfHourChanged closes the tracked hour when the clock has moved into
// a different UTC hour.
func (d *Dashboard) rotateIfHourChanged() {
	hour := d.clock.Now().UTC().Hour()
	if hour == d.state.TrackedHour {
		return
	}

	label := alarm.HourLabel(hour)
	count := d.state.Alarms.Pending()
	d.state.Alarms.Rotate(label, count)
	d.state.TrackedHour = hour

	d.observer.WindowRotated(label, count, d.state.Alarms.Total())
	d.log.Info("rotated alarm window: hour=%s count=%d total=%d", label, count, d.state.Alarms.Total())
}

func (d *Dashboard) logStartup() {
	d.state.Logs.Log(MsgSystemStarting, logs.Info)
	d.state.Logs.Log(MsgAlarmStarting, logs.Debug)
	d.state.Logs.Log(MsgLoggingStarting, logs.Debug)
	d.state.Logs.Log(MsgAlarmStarted, logs.Info)
	d.state.Logs.Log(MsgLoggingStarted, logs.Info)
	d.log.Info("dashboard started: session=%s tick=%s", d.sessionID, d.tick)
}

// Snapshot copies the current state for rendering.
func (d *Dashboard) Snapshot() Snapshot {
	return Snapshot{
		SessionID:     d.sessionID,
		Modules:       d.registry.Headers(),
		Series:        d.state.Alarms.Series(),
		LogLines:      d.state.Logs.FormattedView(),
		DroppedLogs:   d.state.Logs.Dropped(),
		Pending:       d.state.CurrentHourAlarmCount(),
		RecordedTotal: d.state.Alarms.Total(),
		LastTriggered: d.state.LastTriggerTime,
		TakenAt:       d.clock.Now(),
	}
}

// State returns the dashboard's state. Callers must not mutate it while Run
// is executing.
func (d *Dashboard) State() *State {
	return &d.state
}

// Status returns the loop's lifecycle state.
func (d *Dashboard) Status() Status {
	return d.status
}

// fatal wraps a collaborator failure unless it already carries a fatal code.
func fatal(err error, code, message string) error {
	if errors.IsFatalIO(err) {
		return err
	}
	return errors.WrapWithCode(err, code, message, "The terminal may have been closed. Restart fasam.")
}
