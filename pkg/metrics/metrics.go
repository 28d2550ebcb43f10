// Package metrics holds utilities for recording durations
// with Prometheus metrics.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus" // Prometheus metrics.

	"github.com/mintel/duration/pkg/duration"
)

// LabelStatus is the Prometheus label name for the status of a process
// such as "success" or "error".
const LabelStatus = "status"

// DefaultBuckets are histogram buckets in seconds suited to
// timeouts and backoff intervals, from 1ms to about 1m.
var DefaultBuckets = prometheus.ExponentialBuckets(0.001, 2, 17)

// Observe records d in seconds.
func Observe(o prometheus.Observer, d duration.Duration) {
	o.Observe(d.AsSecs())
}

// MustRegisterOnce registers a set of Prometheus Collectors with the
// default Registerer, ignoring AlreadyRegisteredErrors. Other errors
// cause a panic.
func MustRegisterOnce(cs ...prometheus.Collector) {
	for _, c := range cs {
		if err := prometheus.Register(c); err != nil {
			if _, ok := err.(prometheus.AlreadyRegisteredError); !ok {
				panic(err)
			}
		}
	}
}
