package workerpool

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/vnykmshr/gopool/pkg/metrics"
)

// poolMetrics holds the pool's metric instruments resolved to its name label
// once, keeping the hot paths free of label lookups. All methods are safe on
// a nil receiver, which is how a pool with metrics disabled carries them.
type poolMetrics struct {
	submitted prometheus.Counter
	completed prometheus.Counter
	failed    prometheus.Counter
	abandoned prometheus.Counter
	duration  prometheus.Observer
	size      prometheus.Gauge
	idle      prometheus.Gauge
	queued    prometheus.Gauge
	restarts  prometheus.Counter
}

func newPoolMetrics(reg *metrics.Registry, name string) *poolMetrics {
	return &poolMetrics{
		submitted: reg.TasksSubmitted.WithLabelValues(name),
		completed: reg.TasksCompleted.WithLabelValues(name),
		failed:    reg.TasksFailed.WithLabelValues(name),
		abandoned: reg.TasksAbandoned.WithLabelValues(name),
		duration:  reg.TaskExecutionDuration.WithLabelValues(name),
		size:      reg.WorkerPoolSize.WithLabelValues(name),
		idle:      reg.WorkerPoolIdle.WithLabelValues(name),
		queued:    reg.WorkerPoolQueued.WithLabelValues(name),
		restarts:  reg.PoolRestarts.WithLabelValues(name),
	}
}

func (m *poolMetrics) taskSubmitted(queued int) {
	if m == nil {
		return
	}
	m.submitted.Inc()
	m.queued.Set(float64(queued))
}

func (m *poolMetrics) taskFinished(d time.Duration, err error) {
	if m == nil {
		return
	}
	m.duration.Observe(d.Seconds())
	if err != nil {
		m.failed.Inc()
	} else {
		m.completed.Inc()
	}
}

func (m *poolMetrics) taskAbandoned() {
	if m == nil {
		return
	}
	m.abandoned.Inc()
}

func (m *poolMetrics) setSize(n int) {
	if m == nil {
		return
	}
	m.size.Set(float64(n))
}

func (m *poolMetrics) setIdle(n int) {
	if m == nil {
		return
	}
	m.idle.Set(float64(n))
}

func (m *poolMetrics) setQueued(n int) {
	if m == nil {
		return
	}
	m.queued.Set(float64(n))
}

func (m *poolMetrics) restarted() {
	if m == nil {
		return
	}
	m.restarts.Inc()
}
