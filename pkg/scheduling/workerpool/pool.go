package workerpool

import (
	"context"
	"runtime"
	"sync"
	"sync/atomic"

	"golang.org/x/time/rate"

	gperrors "github.com/vnykmshr/gopool/pkg/common/errors"
	"github.com/vnykmshr/gopool/pkg/metrics"
)

// Sentinels re-exported for convenience so callers do not need to import
// pkg/common/errors to match lifecycle conditions.
var (
	ErrStopped    = gperrors.ErrStopped
	ErrDraining   = gperrors.ErrDraining
	ErrNotStopped = gperrors.ErrNotStopped
	ErrAbandoned  = gperrors.ErrAbandoned
)

// Task is a unit of work executed by the pool.
type Task interface {
	Execute(ctx context.Context) error
}

// TaskFunc adapts a plain function to the Task interface.
type TaskFunc func(ctx context.Context) error

// Execute implements Task.
func (f TaskFunc) Execute(ctx context.Context) error { return f(ctx) }

// Config holds worker pool configuration.
type Config struct {
	// Workers is the number of worker goroutines. Values <= 0 default to
	// runtime.NumCPU().
	Workers int

	// Name labels this pool in metrics. Defaults to "pool".
	Name string

	// Metrics configures Prometheus instrumentation.
	Metrics metrics.Config

	// Limiter, when set, throttles task starts across all workers.
	Limiter *rate.Limiter

	// OnWorkerStart is invoked by each worker goroutine as it starts.
	OnWorkerStart func(workerID int)

	// OnWorkerStop is invoked by each worker goroutine as it exits.
	OnWorkerStop func(workerID int)
}

// pending is a queued task wrapper. Exactly one of run or abandon is
// invoked, which resolves the task's future.
type pending struct {
	run     func(ctx context.Context)
	abandon func()
}

// generation tracks the worker goroutines spawned by one start or restart.
// done is closed once every worker in the generation has exited.
type generation struct {
	wg   sync.WaitGroup
	done chan struct{}
}

// Pool executes submitted tasks on a fixed set of worker goroutines.
// Tasks run in submission order whenever a single worker is free; shutdown
// either drains queued work (Shutdown) or abandons it (ForceShutdown), and a
// stopped pool can be brought back with Restart.
type Pool struct {
	name          string
	limiter       *rate.Limiter
	onWorkerStart func(int)
	onWorkerStop  func(int)
	metrics       *poolMetrics

	// Task queue. mu also serializes the draining check on submission so a
	// task can never be enqueued after an abort has discarded the queue.
	mu    sync.Mutex
	cond  *sync.Cond
	queue []*pending

	// Lifecycle flags. Written during shutdown and restart, read by workers
	// and submitters without holding stateMu. aborting implies draining.
	draining atomic.Bool
	aborting atomic.Bool

	// idle counts workers blocked waiting for a task.
	idle atomic.Int64

	// Worker bookkeeping, guarded by stateMu. gen is nil exactly when the
	// pool is stopped.
	stateMu      sync.Mutex
	workers      int
	gen          *generation
	nextWorkerID int
}

// New creates a pool with the given number of workers and starts it.
// Values <= 0 default to runtime.NumCPU().
func New(workers int) *Pool {
	return NewWithConfig(Config{Workers: workers})
}

// NewWithConfig creates a pool from cfg and starts it.
func NewWithConfig(cfg Config) *Pool {
	workers := cfg.Workers
	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	name := cfg.Name
	if name == "" {
		name = "pool"
	}

	p := &Pool{
		name:          name,
		limiter:       cfg.Limiter,
		onWorkerStart: cfg.OnWorkerStart,
		onWorkerStop:  cfg.OnWorkerStop,
	}
	p.cond = sync.NewCond(&p.mu)

	if cfg.Metrics.Enabled {
		reg := metrics.DefaultRegistry
		if cfg.Metrics.Registry != nil {
			reg = metrics.NewRegistry(cfg.Metrics.Registry)
		}
		p.metrics = newPoolMetrics(reg, name)
	}

	p.stateMu.Lock()
	p.spawnLocked(workers)
	p.stateMu.Unlock()
	return p
}

// spawnLocked starts a fresh generation of n workers. Caller holds stateMu.
func (p *Pool) spawnLocked(n int) {
	gen := &generation{done: make(chan struct{})}
	gen.wg.Add(n)
	for i := 0; i < n; i++ {
		id := p.nextWorkerID
		p.nextWorkerID++
		go p.work(gen, id)
	}
	go func() {
		gen.wg.Wait()
		close(gen.done)
	}()
	p.gen = gen
	p.workers = n
	p.metrics.setSize(n)
}

// work is the body of a single worker goroutine.
func (p *Pool) work(gen *generation, id int) {
	defer gen.wg.Done()
	if p.onWorkerStart != nil {
		p.onWorkerStart(id)
	}
	if p.onWorkerStop != nil {
		defer p.onWorkerStop(id)
	}

	ctx := context.Background()
	for {
		p.mu.Lock()
		for len(p.queue) == 0 && !p.draining.Load() {
			p.idle.Add(1)
			p.metrics.setIdle(int(p.idle.Load()))
			p.cond.Wait()
			p.idle.Add(-1)
			p.metrics.setIdle(int(p.idle.Load()))
		}

		if p.aborting.Load() {
			p.abandonQueueLocked()
			p.mu.Unlock()
			return
		}

		if len(p.queue) > 0 {
			t := p.queue[0]
			p.queue[0] = nil
			p.queue = p.queue[1:]
			p.metrics.setQueued(len(p.queue))
			p.mu.Unlock()

			if p.limiter != nil {
				_ = p.limiter.Wait(ctx)
			}
			t.run(ctx)
			continue
		}

		// Queue is empty and the pool is draining gracefully.
		p.mu.Unlock()
		return
	}
}

// abandonQueueLocked resolves every queued future as abandoned and empties
// the queue. Caller holds mu. Safe to call more than once; a future only
// resolves the first time.
func (p *Pool) abandonQueueLocked() {
	for _, t := range p.queue {
		t.abandon()
	}
	p.queue = nil
	p.metrics.setQueued(0)
}
