package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus" // Prometheus metrics.

	"github.com/mintel/duration/pkg/duration"
)

// Timer is a helper type to time functions.
// It is similar to prometheus.Timer, but takes a prometheus.ObserverVec,
// can add labels to it when the Timer is observed, and returns
// the observed duration as a duration.Duration.
// Use NewTimer to create new instances.
type Timer struct {
	begin time.Time
	vec   prometheus.ObserverVec
}

// NewTimer creates a new Timer. The provided ObserverVec is used to observe a
// duration in seconds. Timer is usually used to time a function call in the
// following way:
//    func TimeMe() {
//        timer := NewTimer(myHistogramVec)
//        // Do actual work.
//        timer.ObserveWithLabelValues("label1", "label2")
//    }
// A nil ObserverVec only measures.
func NewTimer(v prometheus.ObserverVec) *Timer {
	return &Timer{
		begin: time.Now(),
		vec:   v,
	}
}

// Elapsed returns the time passed since the Timer was created
// without observing it.
func (t *Timer) Elapsed() duration.Duration {
	return duration.FromStd(time.Since(t.begin))
}

// ObserveWithLabelValues records the duration passed since the Timer was created
// with the Observer derived from the provided label values.
// The observed duration is also returned.
func (t *Timer) ObserveWithLabelValues(labels ...string) duration.Duration {
	d := t.Elapsed()
	if t.vec != nil {
		Observe(t.vec.WithLabelValues(labels...), d)
	}
	return d
}

// ObserveWith records the duration passed since the Timer was created
// with the Observer derived from the provided labels.
// The observed duration is also returned.
func (t *Timer) ObserveWith(labels prometheus.Labels) duration.Duration {
	d := t.Elapsed()
	if t.vec != nil {
		Observe(t.vec.With(labels), d)
	}
	return d
}

// ObserveErr sets a label equal to LabelStatus based on the err value and records the
// duration passed since the Timer was created.
// The observed duration is also returned.
func (t *Timer) ObserveErr(err error) duration.Duration {
	status := "success"
	if err != nil {
		status = "error"
	}
	return t.ObserveWith(prometheus.Labels{LabelStatus: status})
}
