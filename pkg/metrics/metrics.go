// Package metrics provides Prometheus instrumentation for gopool components.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Registry holds all metric instances for gopool components.
type Registry struct {
	// Worker Pool Metrics
	TasksSubmitted        *prometheus.CounterVec
	TasksCompleted        *prometheus.CounterVec
	TasksFailed           *prometheus.CounterVec
	TasksAbandoned        *prometheus.CounterVec
	TaskExecutionDuration *prometheus.HistogramVec
	WorkerPoolSize        *prometheus.GaugeVec
	WorkerPoolIdle        *prometheus.GaugeVec
	WorkerPoolQueued      *prometheus.GaugeVec
	PoolRestarts          *prometheus.CounterVec

	// Scheduler Metrics
	TasksScheduled *prometheus.CounterVec
	TasksDue       *prometheus.CounterVec
	TasksCancelled *prometheus.CounterVec
}

// DefaultRegistry is the default metrics registry used by gopool components.
var DefaultRegistry *Registry

func init() {
	DefaultRegistry = NewRegistry(prometheus.DefaultRegisterer)
}

// NewRegistry creates a new metrics registry with the given Prometheus registerer.
func NewRegistry(reg prometheus.Registerer) *Registry {
	factory := promauto.With(reg)

	return &Registry{
		TasksSubmitted: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "gopool",
				Subsystem: "workerpool",
				Name:      "tasks_submitted_total",
				Help:      "Total number of tasks accepted by the pool",
			},
			[]string{"pool_name"},
		),

		TasksCompleted: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "gopool",
				Subsystem: "workerpool",
				Name:      "tasks_completed_total",
				Help:      "Total number of tasks that finished successfully",
			},
			[]string{"pool_name"},
		),

		TasksFailed: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "gopool",
				Subsystem: "workerpool",
				Name:      "tasks_failed_total",
				Help:      "Total number of tasks whose body returned an error or panicked",
			},
			[]string{"pool_name"},
		),

		TasksAbandoned: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "gopool",
				Subsystem: "workerpool",
				Name:      "tasks_abandoned_total",
				Help:      "Total number of queued tasks discarded by forced shutdown",
			},
			[]string{"pool_name"},
		),

		TaskExecutionDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: "gopool",
				Subsystem: "workerpool",
				Name:      "task_duration_seconds",
				Help:      "Time spent executing task bodies",
				Buckets:   prometheus.DefBuckets,
			},
			[]string{"pool_name"},
		),

		WorkerPoolSize: factory.NewGaugeVec(
			prometheus.GaugeOpts{
				Namespace: "gopool",
				Subsystem: "workerpool",
				Name:      "size",
				Help:      "Current number of worker goroutines",
			},
			[]string{"pool_name"},
		),

		WorkerPoolIdle: factory.NewGaugeVec(
			prometheus.GaugeOpts{
				Namespace: "gopool",
				Subsystem: "workerpool",
				Name:      "idle_workers",
				Help:      "Number of workers currently waiting for a task",
			},
			[]string{"pool_name"},
		),

		WorkerPoolQueued: factory.NewGaugeVec(
			prometheus.GaugeOpts{
				Namespace: "gopool",
				Subsystem: "workerpool",
				Name:      "queued_tasks",
				Help:      "Number of tasks waiting to be picked up by a worker",
			},
			[]string{"pool_name"},
		),

		PoolRestarts: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "gopool",
				Subsystem: "workerpool",
				Name:      "restarts_total",
				Help:      "Total number of successful pool restarts",
			},
			[]string{"pool_name"},
		),

		TasksScheduled: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "gopool",
				Subsystem: "scheduler",
				Name:      "tasks_scheduled_total",
				Help:      "Total number of tasks registered with the scheduler",
			},
			[]string{"scheduler_name"},
		),

		TasksDue: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "gopool",
				Subsystem: "scheduler",
				Name:      "tasks_due_total",
				Help:      "Total number of scheduled tasks dispatched to the pool",
			},
			[]string{"scheduler_name"},
		),

		TasksCancelled: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "gopool",
				Subsystem: "scheduler",
				Name:      "tasks_cancelled_total",
				Help:      "Total number of scheduled tasks cancelled before dispatch",
			},
			[]string{"scheduler_name"},
		),
	}
}
