package workerpool

import (
	"context"
	"fmt"
	"sync"
	"sync/atomic"

	gperrors "github.com/vnykmshr/gopool/pkg/common/errors"
)

// FutureState describes the resolution state of a Future.
type FutureState int32

const (
	// StatePending means the task has not finished yet.
	StatePending FutureState = iota
	// StateFulfilled means the task ran and returned a value.
	StateFulfilled
	// StateFailed means the task ran and returned an error or panicked.
	StateFailed
	// StateAbandoned means the task was discarded by a forced shutdown
	// before it started executing.
	StateAbandoned
)

// String returns a human-readable name for the state.
func (s FutureState) String() string {
	switch s {
	case StatePending:
		return "pending"
	case StateFulfilled:
		return "fulfilled"
	case StateFailed:
		return "failed"
	case StateAbandoned:
		return "abandoned"
	default:
		return "unknown"
	}
}

// Future is the deferred result of a submitted task. It resolves exactly once,
// to a value, a task error, or ErrAbandoned. A Future is safe for concurrent
// use; any number of goroutines may wait on it.
type Future[R any] struct {
	once  sync.Once
	done  chan struct{}
	state atomic.Int32
	value R
	err   error
}

func newFuture[R any]() *Future[R] {
	return &Future[R]{done: make(chan struct{})}
}

func (f *Future[R]) fulfill(v R) {
	f.once.Do(func() {
		f.value = v
		f.state.Store(int32(StateFulfilled))
		close(f.done)
	})
}

func (f *Future[R]) fail(err error) {
	f.once.Do(func() {
		f.err = err
		f.state.Store(int32(StateFailed))
		close(f.done)
	})
}

func (f *Future[R]) abandon() {
	f.once.Do(func() {
		f.err = gperrors.ErrAbandoned
		f.state.Store(int32(StateAbandoned))
		close(f.done)
	})
}

// Get blocks until the future resolves and returns its value and error.
// Abandoned futures report ErrAbandoned; use errors.Is to distinguish
// abandonment from errors returned by the task body.
func (f *Future[R]) Get() (R, error) {
	<-f.done
	return f.value, f.err
}

// GetContext is like Get but gives up when ctx is done. The future itself
// is unaffected; a later Get still observes the eventual result.
func (f *Future[R]) GetContext(ctx context.Context) (R, error) {
	select {
	case <-f.done:
		return f.value, f.err
	case <-ctx.Done():
		var zero R
		return zero, ctx.Err()
	}
}

// Done returns a channel that is closed when the future resolves.
func (f *Future[R]) Done() <-chan struct{} {
	return f.done
}

// State reports the current resolution state without blocking.
func (f *Future[R]) State() FutureState {
	return FutureState(f.state.Load())
}

// PanicError wraps a panic recovered from a task body. The task's future
// fails with a PanicError; the worker goroutine survives.
type PanicError struct {
	Value interface{}
	Stack []byte
}

func (e *PanicError) Error() string {
	return fmt.Sprintf("task panicked: %v", e.Value)
}
