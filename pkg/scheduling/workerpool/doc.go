// Package workerpool provides a fixed-size worker pool with deferred results
// and an explicit lifecycle.
//
// A pool starts its workers on construction and executes submitted tasks in
// submission order. Every submission returns a Future that resolves exactly
// once: to a value, to the error the task body returned (or a PanicError if
// it panicked), or to ErrAbandoned if a forced shutdown discarded the task
// before it ran.
//
// # Submitting work
//
// Pool.Submit takes a Task (or TaskFunc) whose future carries only an error.
// The package-level generic Submit is for tasks that produce a value:
//
//	pool := workerpool.New(4)
//	defer pool.Close()
//
//	f, err := workerpool.Submit(pool, func(ctx context.Context) (int, error) {
//		return compute(), nil
//	})
//	if err != nil {
//		// pool is draining or stopped
//	}
//	n, err := f.Get()
//
// Futures can also be waited on with a deadline (GetContext) or combined
// with other channels (Done).
//
// # Lifecycle
//
// A pool is in one of three externally visible states: running, stopping,
// stopped. Shutdown cuts off submission, lets queued tasks finish, and
// blocks until all workers exit. ForceShutdown also cuts off submission but
// abandons queued tasks; only tasks already executing run to completion.
// Both are idempotent, and a ForceShutdown issued during a graceful
// Shutdown escalates it. A stopped pool is restarted with Restart, which
// may pick a different worker count.
//
// Task bodies run without any pool lock held, so tasks may themselves
// submit work or inspect the pool. There is no per-task cancellation;
// shutdown granularity is the whole pool.
//
// # Introspection
//
// ThreadCount, IdleThreadCount, RunningThreadCount, Idle, and Running
// report snapshots of worker activity. They are exact only while the caller
// knows no submissions are in flight (typically in tests); under concurrent
// load they are best-effort.
//
// # Instrumentation
//
// With Config.Metrics enabled the pool exports Prometheus counters for
// submitted, completed, failed, and abandoned tasks, a task duration
// histogram, and gauges for pool size, idle workers, and queue depth, all
// labelled with the pool name. Config.Limiter accepts a rate.Limiter that
// throttles task starts across all workers.
package workerpool
