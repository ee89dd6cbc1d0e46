package blockingqueue

import (
	"cmp"
	"slices"
	"sync"
	"sync/atomic"
)

// queueSeq hands out a stable ordering token per queue instance. Cross-instance
// comparisons lock the lower token first, so two goroutines comparing the same
// pair in opposite argument order cannot deadlock.
var queueSeq atomic.Uint64

// Queue is a mutex-and-condition-guarded FIFO safe for any number of
// concurrent producers and consumers.
//
// Accessors return copies, never references: the backing store may be mutated
// by another goroutine the instant the lock is released. There is deliberately
// no Len or IsEmpty: such a result would be stale before the caller could act
// on it, so callers must use the blocking operations instead of polling.
type Queue[T any] struct {
	mu    sync.Mutex
	cond  *sync.Cond
	items []T
	head  int
	seq   uint64
}

// New creates an empty queue.
func New[T any]() *Queue[T] {
	q := &Queue[T]{seq: queueSeq.Add(1)}
	q.cond = sync.NewCond(&q.mu)
	return q
}

// Push appends value and wakes one waiting consumer.
func (q *Queue[T]) Push(value T) {
	q.mu.Lock()
	q.items = append(q.items, value)
	q.mu.Unlock()
	q.cond.Signal()
}

// Pop removes and returns the front element, blocking while the queue is
// empty. Removal and transfer happen under one critical section, so no other
// consumer can observe or steal the value mid-transfer.
func (q *Queue[T]) Pop() T {
	q.mu.Lock()
	defer q.mu.Unlock()
	for q.head == len(q.items) {
		q.cond.Wait()
	}
	value := q.items[q.head]
	var zero T
	q.items[q.head] = zero
	q.head++
	q.compactLocked()
	return value
}

// Front returns a copy of the front element, blocking while the queue is
// empty. The element is not removed.
func (q *Queue[T]) Front() T {
	q.mu.Lock()
	for q.head == len(q.items) {
		q.cond.Wait()
	}
	value := q.items[q.head]
	q.mu.Unlock()
	// The wait above may have consumed a wakeup meant for a consumer that
	// would actually remove the element; pass it on.
	q.cond.Signal()
	return value
}

// Back returns a copy of the most recently pushed element, blocking while the
// queue is empty. The element is not removed.
func (q *Queue[T]) Back() T {
	q.mu.Lock()
	for q.head == len(q.items) {
		q.cond.Wait()
	}
	value := q.items[len(q.items)-1]
	q.mu.Unlock()
	q.cond.Signal()
	return value
}

// Clear atomically discards all queued elements.
func (q *Queue[T]) Clear() {
	q.mu.Lock()
	q.items = nil
	q.head = 0
	q.mu.Unlock()
}

// compactLocked reclaims the consumed prefix once it dominates the backing
// slice. Amortized O(1) per Pop.
func (q *Queue[T]) compactLocked() {
	if q.head == len(q.items) {
		q.items = q.items[:0]
		q.head = 0
		return
	}
	if q.head > 64 && q.head > len(q.items)/2 {
		n := copy(q.items, q.items[q.head:])
		clear(q.items[n:])
		q.items = q.items[:n]
		q.head = 0
	}
}

func (q *Queue[T]) snapshotLocked() []T {
	return q.items[q.head:]
}

// lockPair acquires both queues' locks in construction order and returns the
// matching unlock.
func lockPair[T any](a, b *Queue[T]) func() {
	first, second := a, b
	if first.seq > second.seq {
		first, second = second, first
	}
	first.mu.Lock()
	second.mu.Lock()
	return func() {
		second.mu.Unlock()
		first.mu.Unlock()
	}
}

// Equal reports whether the two queues hold equal elements in the same order.
// Both locks are held for the duration of the comparison.
func Equal[T comparable](a, b *Queue[T]) bool {
	if a == b {
		return true
	}
	unlock := lockPair(a, b)
	defer unlock()
	return slices.Equal(a.snapshotLocked(), b.snapshotLocked())
}

// EqualFunc is Equal with a caller-supplied element comparison, for element
// types that are not comparable.
func EqualFunc[T any](a, b *Queue[T], eq func(x, y T) bool) bool {
	if a == b {
		return true
	}
	unlock := lockPair(a, b)
	defer unlock()
	return slices.EqualFunc(a.snapshotLocked(), b.snapshotLocked(), eq)
}

// Compare lexicographically compares the two queues' contents, returning the
// usual -1, 0 or +1. Both locks are held for the duration of the comparison.
func Compare[T cmp.Ordered](a, b *Queue[T]) int {
	if a == b {
		return 0
	}
	unlock := lockPair(a, b)
	defer unlock()
	return slices.Compare(a.snapshotLocked(), b.snapshotLocked())
}
