package scheduler_test

import (
	"context"
	"fmt"
	"time"

	"github.com/vnykmshr/gopool/pkg/scheduling/scheduler"
	"github.com/vnykmshr/gopool/pkg/scheduling/workerpool"
)

// Example runs a one-time task shortly after startup.
func Example() {
	sched := scheduler.NewWithConfig(scheduler.Config{
		TickInterval: 5 * time.Millisecond,
	})
	defer sched.Stop()

	done := make(chan struct{})
	task := workerpool.TaskFunc(func(ctx context.Context) error {
		fmt.Println("task ran")
		close(done)
		return nil
	})

	if err := sched.ScheduleAfter("greeting", task, 10*time.Millisecond); err != nil {
		fmt.Println("schedule:", err)
		return
	}
	if err := sched.Start(); err != nil {
		fmt.Println("start:", err)
		return
	}
	<-done

	// Output:
	// task ran
}

// Example_backoff wraps a flaky task with retries before scheduling it.
func Example_backoff() {
	attempts := 0
	flaky := workerpool.TaskFunc(func(ctx context.Context) error {
		attempts++
		if attempts < 3 {
			return fmt.Errorf("attempt %d failed", attempts)
		}
		fmt.Printf("succeeded on attempt %d\n", attempts)
		return nil
	})

	bt := scheduler.BackoffTask{
		Task:         flaky,
		MaxRetries:   5,
		InitialDelay: time.Millisecond,
		MaxDelay:     10 * time.Millisecond,
	}
	if err := bt.Execute(context.Background()); err != nil {
		fmt.Println("gave up:", err)
	}

	// Output:
	// succeeded on attempt 3
}
