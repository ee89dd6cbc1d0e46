/*
Package scheduling provides task execution primitives for Go applications.

Two components live under this package:

  - workerpool: a fixed worker pool with deferred results and an explicit
    drain/abort/restart lifecycle
  - scheduler: time-based and cron dispatch of tasks onto a worker pool

Worker Pool:

	pool := workerpool.New(4)
	defer pool.Close()

	f, err := workerpool.Submit(pool, func(ctx context.Context) (int, error) {
		return compute(), nil
	})
	if err != nil {
		// pool is draining or stopped
	}
	v, err := f.Get()

Scheduler:

	sched := scheduler.New()
	defer sched.Stop()

	sched.ScheduleAfter("once", task, time.Minute)
	sched.ScheduleRepeating("often", task, time.Hour)
	sched.ScheduleCron("daily", "0 0 9 * * MON-FRI", task)
	sched.Start()

All components are safe for concurrent use.
*/
package scheduling
