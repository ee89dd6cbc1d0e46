// Package scheduler provides time-based task dispatch on top of a worker
// pool.
//
// Tasks are registered for a point in time (Schedule, ScheduleAfter), an
// interval (ScheduleRepeating), or a cron expression (ScheduleCron), and are
// submitted to the configured pool when due. The scheduler never executes
// task bodies itself; all execution, panic recovery, and result handling is
// the pool's.
//
//	sched := scheduler.New()
//	defer sched.Stop()
//
//	sched.ScheduleRepeating("heartbeat", workerpool.TaskFunc(beat), time.Second)
//	sched.ScheduleCron("nightly", "0 0 0 * * *", workerpool.TaskFunc(report))
//	sched.Start()
//
// A scheduler constructed without a pool owns one and drains it on Stop.
// When a pool is supplied its lifecycle stays with the caller; dispatches to
// a draining or stopped pool are dropped.
//
// Cron expressions use the six-field form with a seconds column, plus the
// usual descriptors (@hourly, @daily, @every 10s). Evaluation uses
// Config.Location, defaulting to the local timezone.
//
// BackoffTask wraps any task with exponential-backoff retries and can be
// scheduled like any other task.
package scheduler
