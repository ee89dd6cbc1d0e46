/*
Package gopool provides a restartable worker pool with per-task deferred
results, cooperative and forced shutdown, and the blocking queue primitive
that underpins it.

Task Scheduling (pkg/scheduling):
  - workerpool: fixed-size pool, futures for task outcomes, drain/abort shutdown, restart
  - scheduler: time, interval and cron scheduling onto a pool

Collections (pkg/collections):
  - blockingqueue: mutex/cond FIFO with blocking access and no polling surface

Example usage:

	import (
		"github.com/vnykmshr/gopool/pkg/scheduling/workerpool"
	)

	pool := workerpool.New(4)
	defer pool.Shutdown()

	fut, _ := workerpool.Submit(pool, func(ctx context.Context) (int, error) {
		return 42, nil
	})

	n, err := fut.Get() // blocks until the task finishes
*/
package gopool
