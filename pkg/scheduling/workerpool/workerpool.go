package workerpool

import (
	"context"
	"runtime"
	"runtime/debug"
	"time"

	"github.com/vnykmshr/gopool/pkg/common/validation"
)

// Submit enqueues a task for execution and returns a future that resolves
// when the task finishes or is abandoned. Tasks are executed in submission
// order. Submission fails with ErrDraining once shutdown has begun and with
// ErrStopped once the pool has fully stopped.
func (p *Pool) Submit(task Task) (*Future[struct{}], error) {
	if err := validation.ValidateNotNil("workerpool", "task", task); err != nil {
		return nil, err
	}
	return Submit(p, func(ctx context.Context) (struct{}, error) {
		return struct{}{}, task.Execute(ctx)
	})
}

// Submit enqueues a function with a typed result and returns its future.
// It is the generic counterpart of Pool.Submit for tasks that produce a
// value rather than just an error.
func Submit[R any](p *Pool, fn func(ctx context.Context) (R, error)) (*Future[R], error) {
	if err := validation.ValidateNotNil("workerpool", "fn", fn); err != nil {
		return nil, err
	}

	f := newFuture[R]()
	t := &pending{
		run: func(ctx context.Context) {
			start := time.Now()
			v, err := runGuarded(ctx, fn)
			p.metrics.taskFinished(time.Since(start), err)
			if err != nil {
				f.fail(err)
			} else {
				f.fulfill(v)
			}
		},
		abandon: func() {
			f.abandon()
			p.metrics.taskAbandoned()
		},
	}

	if err := p.enqueue(t); err != nil {
		return nil, err
	}
	return f, nil
}

// runGuarded executes fn, converting a panic into a PanicError so a
// misbehaving task cannot kill its worker goroutine.
func runGuarded[R any](ctx context.Context, fn func(context.Context) (R, error)) (v R, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = &PanicError{Value: r, Stack: debug.Stack()}
		}
	}()
	return fn(ctx)
}

func (p *Pool) enqueue(t *pending) error {
	p.mu.Lock()
	if p.draining.Load() {
		p.mu.Unlock()
		if p.ThreadCount() == 0 {
			return ErrStopped
		}
		return ErrDraining
	}
	p.queue = append(p.queue, t)
	queued := len(p.queue)
	p.mu.Unlock()

	p.cond.Signal()
	p.metrics.taskSubmitted(queued)
	return nil
}

// Shutdown stops the pool gracefully: submission is cut off immediately,
// queued tasks are still executed, and the call blocks until every worker
// has exited. Calling Shutdown on a stopping or stopped pool is a no-op
// beyond the blocking.
func (p *Pool) Shutdown() {
	p.stop(false)
}

// ForceShutdown stops the pool abruptly: submission is cut off, queued tasks
// are abandoned (their futures resolve with ErrAbandoned), and the call
// blocks until in-flight tasks finish and every worker has exited. Calling
// ForceShutdown during a graceful Shutdown escalates it.
func (p *Pool) ForceShutdown() {
	p.stop(true)
}

// Close stops the pool gracefully. It implements io.Closer so a pool can sit
// behind defer and resource-cleanup helpers; the error is always nil.
func (p *Pool) Close() error {
	p.stop(false)
	return nil
}

func (p *Pool) stop(abort bool) {
	p.stateMu.Lock()
	gen := p.gen
	p.draining.Store(true)
	if abort {
		p.aborting.Store(true)
	}
	p.stateMu.Unlock()

	// Wake every worker so it observes the new flags. Idle workers exit (or
	// abandon the queue first when aborting); busy workers notice after
	// their current task.
	p.mu.Lock()
	if abort {
		// Abandon directly as well: with every worker mid-task there may be
		// no idle worker to do it promptly.
		p.abandonQueueLocked()
	}
	p.cond.Broadcast()
	p.mu.Unlock()

	if gen == nil {
		// Already stopped; nothing to wait for.
		return
	}
	<-gen.done

	p.stateMu.Lock()
	if p.gen == gen {
		p.gen = nil
		p.workers = 0
		p.metrics.setSize(0)
		p.metrics.setIdle(0)
	}
	p.stateMu.Unlock()
}

// Restart brings a stopped pool back with n workers (values <= 0 default to
// runtime.NumCPU()). It fails with ErrNotStopped unless a prior Shutdown or
// ForceShutdown has completed. Futures from the previous run are unaffected.
func (p *Pool) Restart(n int) error {
	p.stateMu.Lock()
	defer p.stateMu.Unlock()

	if p.gen != nil {
		return ErrNotStopped
	}
	if n <= 0 {
		n = runtime.NumCPU()
	}
	p.draining.Store(false)
	p.aborting.Store(false)
	p.spawnLocked(n)
	p.metrics.restarted()
	return nil
}

// ThreadCount returns the number of worker goroutines, zero when stopped.
func (p *Pool) ThreadCount() int {
	p.stateMu.Lock()
	defer p.stateMu.Unlock()
	return p.workers
}

// IdleThreadCount returns the number of workers currently waiting for a task.
func (p *Pool) IdleThreadCount() int {
	return int(p.idle.Load())
}

// RunningThreadCount returns the number of workers currently executing or
// picking up a task.
func (p *Pool) RunningThreadCount() int {
	n := p.ThreadCount() - p.IdleThreadCount()
	if n < 0 {
		return 0
	}
	return n
}

// Idle reports whether every worker is waiting for a task. A stopped pool
// is idle. The answer is a snapshot; concurrent submissions can invalidate
// it immediately.
func (p *Pool) Idle() bool {
	return p.IdleThreadCount() == p.ThreadCount()
}

// Running reports whether at least one worker is executing a task.
func (p *Pool) Running() bool {
	return !p.Idle()
}
