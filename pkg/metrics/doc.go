// Package metrics provides Prometheus instrumentation for gopool components.
//
// # Overview
//
// The metrics package provides automatic instrumentation for:
//   - Worker pools (submitted, completed, failed and abandoned tasks,
//     execution duration, pool size, idle workers, queue depth, restarts)
//   - Schedulers (scheduled, dispatched and cancelled tasks)
//
// # Quick Start
//
// Enable metrics when constructing a pool:
//
//	pool := workerpool.NewWithConfig(workerpool.Config{
//		Workers: 5,
//		Name:    "task_pool",
//		Metrics: metrics.DefaultConfig(),
//	})
//
// Then expose metrics via HTTP:
//
//	http.Handle("/metrics", promhttp.Handler())
//	log.Fatal(http.ListenAndServe(":8080", nil))
//
// # Custom Registry
//
// Use a custom Prometheus registry for isolation:
//
//	registry := prometheus.NewRegistry()
//	config := metrics.Config{
//		Enabled:  true,
//		Registry: registry,
//	}
//
// # Available Metrics
//
// ## Worker Pool Metrics
//
//   - gopool_workerpool_tasks_submitted_total
//   - gopool_workerpool_tasks_completed_total
//   - gopool_workerpool_tasks_failed_total
//   - gopool_workerpool_tasks_abandoned_total
//   - gopool_workerpool_task_duration_seconds
//   - gopool_workerpool_size
//   - gopool_workerpool_idle_workers
//   - gopool_workerpool_queued_tasks
//   - gopool_workerpool_restarts_total
//
// ## Scheduler Metrics
//
//   - gopool_scheduler_tasks_scheduled_total
//   - gopool_scheduler_tasks_due_total
//   - gopool_scheduler_tasks_cancelled_total
//
// Metrics include a pool_name or scheduler_name label for filtering and
// aggregation across instances.
package metrics
