// Package metrics collects Prometheus counters and a duration
// histogram around command dispatch, keeping the
// Increment/Record-style API shape of the teacher's
// monitoring.MetricsCollector but backed by real
// prometheus.CounterVec/HistogramVec instead of atomic counters.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Collector tracks command-dispatch metrics.
type Collector struct {
	commandsTotal   *prometheus.CounterVec
	commandDuration *prometheus.HistogramVec
}

// NewCollector registers the engine's metrics against reg.
func NewCollector(reg prometheus.Registerer) *Collector {
	c := &Collector{
		commandsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "sqlengine_commands_total",
			Help: "Total commands dispatched, by kind and outcome.",
		}, []string{"kind", "outcome"}),
		commandDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "sqlengine_command_duration_seconds",
			Help:    "Command dispatch latency in seconds, by kind.",
			Buckets: prometheus.DefBuckets,
		}, []string{"kind"}),
	}
	reg.MustRegister(c.commandsTotal, c.commandDuration)
	return c
}

// Outcome labels a dispatched command's result for commandsTotal.
type Outcome string

const (
	OutcomeOK          Outcome = "ok"
	OutcomeQueryError  Outcome = "query_error"
	OutcomeSystemError Outcome = "system_error"
)

// Observe records one command dispatch: kind ("create_schema",
// "drop_schema", "update"), its outcome, and how long it took.
func (c *Collector) Observe(kind string, outcome Outcome, d time.Duration) {
	c.commandsTotal.WithLabelValues(kind, string(outcome)).Inc()
	c.commandDuration.WithLabelValues(kind).Observe(d.Seconds())
}
