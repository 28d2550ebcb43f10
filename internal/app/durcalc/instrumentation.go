package durcalc

import (
	"github.com/prometheus/client_golang/prometheus" // Prometheus metrics.

	"github.com/mintel/duration/pkg/metrics"
)

const labelCommand = "command"

// Instrumentation holds Prometheus metrics specific to
// the durcalc App.
type Instrumentation struct {
	// Intervals computed by the schedule command.
	ScheduleIntervals prometheus.Histogram

	// Time spent running each command, by command and status.
	CommandSeconds *prometheus.HistogramVec
}

// NewInstrumentation returns a new Instrumentation.
func NewInstrumentation(namespace string) *Instrumentation {
	return &Instrumentation{
		ScheduleIntervals: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "schedule_interval_seconds",
			Help:      "Backoff intervals computed by the schedule command.",
			Buckets:   metrics.DefaultBuckets,
		}),
		CommandSeconds: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "command_duration_seconds",
			Help:      "Time spent running a command.",
			Buckets:   metrics.DefaultBuckets,
		}, []string{labelCommand, metrics.LabelStatus}),
	}
}

// Describe implements the prometheus.Collector interface.
func (m *Instrumentation) Describe(c chan<- *prometheus.Desc) {
	m.ScheduleIntervals.Describe(c)
	m.CommandSeconds.Describe(c)
}

// Collect implements the prometheus.Collector interface.
func (m *Instrumentation) Collect(c chan<- prometheus.Metric) {
	m.ScheduleIntervals.Collect(c)
	m.CommandSeconds.Collect(c)
}
