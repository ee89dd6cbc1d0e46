package scheduler

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/robfig/cron/v3"

	gpcontext "github.com/vnykmshr/gopool/pkg/common/context"
	"github.com/vnykmshr/gopool/pkg/common/validation"
	"github.com/vnykmshr/gopool/pkg/metrics"
	"github.com/vnykmshr/gopool/pkg/scheduling/workerpool"
)

// Task describes a scheduled task as reported by List.
type Task struct {
	ID       string
	RunAt    time.Time
	Interval time.Duration // zero for one-time and cron tasks
	Created  time.Time
}

// Scheduler dispatches tasks to a worker pool at scheduled times.
type Scheduler interface {
	// Basic scheduling
	Schedule(id string, task workerpool.Task, runAt time.Time) error
	ScheduleAfter(id string, task workerpool.Task, delay time.Duration) error
	ScheduleRepeating(id string, task workerpool.Task, interval time.Duration) error

	// Cron scheduling. Expressions use the six-field form with seconds,
	// e.g. "*/5 * * * * *" for every five seconds.
	ScheduleCron(id string, cronExpr string, task workerpool.Task) error

	// Task management
	Cancel(id string) bool
	CancelAll()
	List() []Task

	// Lifecycle. Stop blocks until the dispatch loop has exited and, for a
	// scheduler that owns its pool, until the pool has drained.
	Start() error
	Stop()
}

// BackoffTask wraps a task with exponential-backoff retries.
type BackoffTask struct {
	Task         workerpool.Task
	MaxRetries   int
	InitialDelay time.Duration
	MaxDelay     time.Duration
}

// Execute implements workerpool.Task.
func (bt BackoffTask) Execute(ctx context.Context) error {
	var lastErr error
	delay := bt.InitialDelay

	for attempt := 0; attempt <= bt.MaxRetries; attempt++ {
		if attempt > 0 {
			if err := gpcontext.Sleep(ctx, delay); err != nil {
				return err
			}
			delay *= 2
			if delay > bt.MaxDelay {
				delay = bt.MaxDelay
			}
		}

		lastErr = bt.Task.Execute(ctx)
		if lastErr == nil {
			return nil
		}
	}

	return lastErr
}

// Config holds scheduler configuration.
type Config struct {
	// Pool receives due tasks. When nil the scheduler creates and owns a
	// pool sized to the machine, draining it on Stop.
	Pool *workerpool.Pool

	// Name labels this scheduler in metrics. Defaults to "scheduler".
	Name string

	// Location is the timezone for cron evaluation. Defaults to time.Local.
	Location *time.Location

	// TickInterval is how often due tasks are checked for (default 50ms).
	TickInterval time.Duration

	// MaxTasks caps the number of scheduled tasks (default 10000).
	MaxTasks int

	// Metrics configures Prometheus instrumentation.
	Metrics metrics.Config
}

type scheduledTask struct {
	id           string
	task         workerpool.Task
	runAt        time.Time
	interval     time.Duration
	cronSchedule cron.Schedule
	created      time.Time
}

type scheduler struct {
	pool         *workerpool.Pool
	ownPool      bool
	location     *time.Location
	tickInterval time.Duration
	maxTasks     int
	cronParser   cron.Parser

	mScheduled prometheus.Counter
	mDue       prometheus.Counter
	mCancelled prometheus.Counter

	mu       sync.RWMutex
	tasks    map[string]*scheduledTask
	ticker   *time.Ticker
	done     chan struct{}
	loopDone chan struct{}
	running  bool
	stopped  bool
}

// New creates a scheduler with default configuration.
func New() Scheduler {
	return NewWithConfig(Config{})
}

// NewWithConfig creates a scheduler from cfg.
func NewWithConfig(cfg Config) Scheduler {
	pool := cfg.Pool
	ownPool := false
	if pool == nil {
		pool = workerpool.New(0)
		ownPool = true
	}

	location := cfg.Location
	if location == nil {
		location = time.Local
	}

	tickInterval := cfg.TickInterval
	if tickInterval <= 0 {
		tickInterval = 50 * time.Millisecond
	}

	maxTasks := cfg.MaxTasks
	if maxTasks <= 0 {
		maxTasks = 10000
	}

	s := &scheduler{
		pool:         pool,
		ownPool:      ownPool,
		location:     location,
		tickInterval: tickInterval,
		maxTasks:     maxTasks,
		cronParser:   cron.NewParser(cron.Second | cron.Minute | cron.Hour | cron.Dom | cron.Month | cron.Dow | cron.Descriptor),
		tasks:        make(map[string]*scheduledTask),
		done:         make(chan struct{}),
		loopDone:     make(chan struct{}),
	}

	if cfg.Metrics.Enabled {
		reg := metrics.DefaultRegistry
		if cfg.Metrics.Registry != nil {
			reg = metrics.NewRegistry(cfg.Metrics.Registry)
		}
		name := cfg.Name
		if name == "" {
			name = "scheduler"
		}
		s.mScheduled = reg.TasksScheduled.WithLabelValues(name)
		s.mDue = reg.TasksDue.WithLabelValues(name)
		s.mCancelled = reg.TasksCancelled.WithLabelValues(name)
	}

	return s
}

func (s *scheduler) validate(id string, task workerpool.Task) error {
	if err := validation.ValidateNotEmpty("scheduler", "id", id); err != nil {
		return err
	}
	if len(id) > 255 {
		return fmt.Errorf("task ID too long (max 255 characters)")
	}
	return validation.ValidateNotNil("scheduler", "task", task)
}

// add inserts a scheduled task, enforcing uniqueness and capacity.
func (s *scheduler) add(t *scheduledTask) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.tasks[t.id]; exists {
		return fmt.Errorf("task with ID %q already exists, cancel it first", t.id)
	}
	if len(s.tasks) >= s.maxTasks {
		return fmt.Errorf("cannot schedule task: maximum number of tasks (%d) reached", s.maxTasks)
	}

	s.tasks[t.id] = t
	if s.mScheduled != nil {
		s.mScheduled.Inc()
	}
	return nil
}

func (s *scheduler) Schedule(id string, task workerpool.Task, runAt time.Time) error {
	if err := s.validate(id, task); err != nil {
		return err
	}
	if runAt.IsZero() {
		return fmt.Errorf("task run time cannot be zero")
	}

	return s.add(&scheduledTask{
		id:      id,
		task:    task,
		runAt:   runAt,
		created: time.Now(),
	})
}

func (s *scheduler) ScheduleAfter(id string, task workerpool.Task, delay time.Duration) error {
	return s.Schedule(id, task, time.Now().Add(delay))
}

func (s *scheduler) ScheduleRepeating(id string, task workerpool.Task, interval time.Duration) error {
	if err := s.validate(id, task); err != nil {
		return err
	}
	if interval <= 0 {
		return fmt.Errorf("interval must be positive, got %v", interval)
	}

	now := time.Now()
	return s.add(&scheduledTask{
		id:       id,
		task:     task,
		runAt:    now,
		interval: interval,
		created:  now,
	})
}

func (s *scheduler) ScheduleCron(id string, cronExpr string, task workerpool.Task) error {
	if err := s.validate(id, task); err != nil {
		return err
	}
	if err := validation.ValidateNotEmpty("scheduler", "cronExpr", cronExpr); err != nil {
		return err
	}

	schedule, err := s.cronParser.Parse(cronExpr)
	if err != nil {
		return fmt.Errorf("invalid cron expression: %w", err)
	}

	now := time.Now()
	return s.add(&scheduledTask{
		id:           id,
		task:         task,
		runAt:        schedule.Next(now.In(s.location)),
		cronSchedule: schedule,
		created:      now,
	})
}

func (s *scheduler) Cancel(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.tasks[id]; exists {
		delete(s.tasks, id)
		if s.mCancelled != nil {
			s.mCancelled.Inc()
		}
		return true
	}
	return false
}

func (s *scheduler) CancelAll() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.mCancelled != nil {
		s.mCancelled.Add(float64(len(s.tasks)))
	}
	s.tasks = make(map[string]*scheduledTask)
}

func (s *scheduler) List() []Task {
	s.mu.RLock()
	defer s.mu.RUnlock()

	tasks := make([]Task, 0, len(s.tasks))
	for _, t := range s.tasks {
		tasks = append(tasks, Task{
			ID:       t.id,
			RunAt:    t.runAt,
			Interval: t.interval,
			Created:  t.created,
		})
	}

	sort.Slice(tasks, func(i, j int) bool {
		return tasks[i].RunAt.Before(tasks[j].RunAt)
	})

	return tasks
}

func (s *scheduler) Start() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.running {
		return fmt.Errorf("scheduler already running, call Stop() first")
	}
	if s.stopped {
		return fmt.Errorf("scheduler has been stopped")
	}

	s.running = true
	s.ticker = time.NewTicker(s.tickInterval)

	go s.run()
	return nil
}

func (s *scheduler) Stop() {
	s.mu.Lock()
	wasRunning := s.running
	if s.running {
		s.running = false
		close(s.done)
		s.ticker.Stop()
	}
	s.stopped = true
	s.mu.Unlock()

	if wasRunning {
		<-s.loopDone
	}
	if s.ownPool {
		s.pool.Shutdown()
	}
}

func (s *scheduler) run() {
	defer close(s.loopDone)

	for {
		select {
		case <-s.done:
			return
		case <-s.ticker.C:
			s.dispatchDue()
		}
	}
}

// dispatchDue collects tasks whose run time has passed, reschedules the
// repeating ones, and submits them to the pool. Submission happens outside
// the scheduler lock so a slow pool never blocks Schedule or Cancel.
func (s *scheduler) dispatchDue() {
	now := time.Now()

	s.mu.Lock()
	if len(s.tasks) == 0 {
		s.mu.Unlock()
		return
	}

	due := make([]*scheduledTask, 0, len(s.tasks))
	for id, t := range s.tasks {
		if t.runAt.After(now) {
			continue
		}
		due = append(due, t)

		switch {
		case t.interval > 0:
			t.runAt = now.Add(t.interval)
		case t.cronSchedule != nil:
			t.runAt = t.cronSchedule.Next(now.In(s.location))
		default:
			delete(s.tasks, id)
		}
	}
	s.mu.Unlock()

	for _, t := range due {
		if _, err := s.pool.Submit(t.task); err != nil {
			// The pool is draining or stopped; drop the dispatch.
			continue
		}
		if s.mDue != nil {
			s.mDue.Inc()
		}
	}
}
