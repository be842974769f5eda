// Package metrics records dashboard activity in a prometheus registry.
//
// Nothing is served over the network. The registry can be written out in the
// text exposition format for a node_exporter textfile collector.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/rileyhilliard/fasam/internal/logs"
)

// Metric names.
const (
	AlarmsTriggeredTotal = "fasam_alarms_triggered_total"
	AlarmResetsTotal     = "fasam_alarm_resets_total"
	WindowRotationsTotal = "fasam_window_rotations_total"
	LogEntriesTotal      = "fasam_log_entries_total"
	AlarmsPending        = "fasam_alarms_pending"
	AlarmsRecordedTotal  = "fasam_alarms_recorded_total"
)

// Recorder owns a private registry and the dashboard's collectors.
type Recorder struct {
	registry   *prometheus.Registry
	triggers   prometheus.Counter
	resets     prometheus.Counter
	rotations  prometheus.Counter
	logEntries *prometheus.CounterVec
	pending    prometheus.Gauge
	recorded   prometheus.Gauge
}

// NewRecorder creates a recorder with every collector registered.
func NewRecorder() *Recorder {
	r := &Recorder{
		registry: prometheus.NewRegistry(),
		triggers: prometheus.NewCounter(prometheus.CounterOpts{
			Name: AlarmsTriggeredTotal,
			Help: "Alarms triggered from the keyboard since start.",
		}),
		resets: prometheus.NewCounter(prometheus.CounterOpts{
			Name: AlarmResetsTotal,
			Help: "Alarm reset requests since start.",
		}),
		rotations: prometheus.NewCounter(prometheus.CounterOpts{
			Name: WindowRotationsTotal,
			Help: "Hour-boundary rotations of the alarm window.",
		}),
		logEntries: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: LogEntriesTotal,
			Help: "Entries written to the log panel, by tier.",
		}, []string{"tier"}),
		pending: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: AlarmsPending,
			Help: "Alarms recorded in the current hour, not yet rotated in.",
		}),
		recorded: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: AlarmsRecordedTotal,
			Help: "Running total of alarm counts pushed into the window.",
		}),
	}

	r.registry.MustRegister(r.triggers, r.resets, r.rotations, r.logEntries, r.pending, r.recorded)
	return r
}

// Registry exposes the underlying registry.
func (r *Recorder) Registry() *prometheus.Registry {
	return r.registry
}

// AlarmTriggered counts a trigger and updates the pending gauge.
func (r *Recorder) AlarmTriggered(pending int64) {
	r.triggers.Inc()
	r.pending.Set(float64(pending))
}

// AlarmReset counts a reset request.
func (r *Recorder) AlarmReset() {
	r.resets.Inc()
}

// WindowRotated counts a rotation and refreshes the gauges.
func (r *Recorder) WindowRotated(_ string, _ int64, total uint64) {
	r.rotations.Inc()
	r.pending.Set(0)
	r.recorded.Set(float64(total))
}

// Started sets the recorded-total gauge from the seeded window.
func (r *Recorder) Started(total uint64) {
	r.recorded.Set(float64(total))
}

// LogAppended counts a log entry under its tier label.
func (r *Recorder) LogAppended(e logs.Entry) {
	r.logEntries.WithLabelValues(e.Tier.Label()).Inc()
}

// WriteTextfile writes the registry to path in the text exposition format.
func (r *Recorder) WriteTextfile(path string) error {
	return prometheus.WriteToTextfile(path, r.registry)
}
