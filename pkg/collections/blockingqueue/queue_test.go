package blockingqueue

import (
	"sync"
	"testing"
	"time"

	"github.com/vnykmshr/gopool/internal/testutil"
)

func TestFIFOOrder(t *testing.T) {
	q := New[int]()
	const n = 100

	for i := 0; i < n; i++ {
		q.Push(i)
	}
	for i := 0; i < n; i++ {
		testutil.AssertEqual(t, q.Pop(), i)
	}
}

func TestPopBlocksUntilPush(t *testing.T) {
	q := New[string]()
	got := make(chan string, 1)

	go func() {
		got <- q.Pop()
	}()

	// The consumer should still be blocked with nothing queued.
	select {
	case v := <-got:
		t.Fatalf("Pop returned %q before anything was pushed", v)
	case <-time.After(20 * time.Millisecond):
	}

	q.Push("wake")

	select {
	case v := <-got:
		testutil.AssertEqual(t, v, "wake")
	case <-time.After(time.Second):
		t.Fatal("Pop did not wake after Push")
	}
}

func TestFrontBackDoNotRemove(t *testing.T) {
	q := New[int]()
	q.Push(1)
	q.Push(2)
	q.Push(3)

	testutil.AssertEqual(t, q.Front(), 1)
	testutil.AssertEqual(t, q.Back(), 3)

	// Inspection must leave the contents untouched.
	testutil.AssertEqual(t, q.Pop(), 1)
	testutil.AssertEqual(t, q.Pop(), 2)
	testutil.AssertEqual(t, q.Pop(), 3)
}

func TestFrontBlocksAndLeavesElementForConsumer(t *testing.T) {
	q := New[int]()
	var wg sync.WaitGroup

	results := make(chan int, 2)
	wg.Add(2)
	go func() {
		defer wg.Done()
		results <- q.Front()
	}()
	go func() {
		defer wg.Done()
		results <- q.Pop()
	}()

	time.Sleep(20 * time.Millisecond)
	q.Push(7)

	done := make(chan struct{})
	go func() {
		wg.Wait()
		close(done)
	}()
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("Front/Pop pair did not both complete after a single Push")
	}

	testutil.AssertEqual(t, <-results, 7)
	testutil.AssertEqual(t, <-results, 7)
}

func TestClear(t *testing.T) {
	q := New[int]()
	for i := 0; i < 10; i++ {
		q.Push(i)
	}
	q.Clear()

	q.Push(42)
	testutil.AssertEqual(t, q.Pop(), 42)
}

func TestConcurrentProducersConsumers(t *testing.T) {
	q := New[int]()
	const producers = 4
	const consumers = 4
	const perProducer = 250
	const total = producers * perProducer

	var prodWg sync.WaitGroup
	for p := 0; p < producers; p++ {
		prodWg.Add(1)
		go func(p int) {
			defer prodWg.Done()
			for i := 0; i < perProducer; i++ {
				q.Push(p*perProducer + i)
			}
		}(p)
	}

	var mu sync.Mutex
	seen := make(map[int]bool, total)
	var consWg sync.WaitGroup
	for c := 0; c < consumers; c++ {
		consWg.Add(1)
		go func() {
			defer consWg.Done()
			for i := 0; i < total/consumers; i++ {
				v := q.Pop()
				mu.Lock()
				if seen[v] {
					t.Errorf("value %d delivered twice", v)
				}
				seen[v] = true
				mu.Unlock()
			}
		}()
	}

	prodWg.Wait()
	done := make(chan struct{})
	go func() {
		consWg.Wait()
		close(done)
	}()
	select {
	case <-done:
	case <-time.After(5 * time.Second):
		t.Fatal("consumers did not drain all produced values")
	}

	testutil.AssertEqual(t, len(seen), total)
}

func TestEqual(t *testing.T) {
	a := New[int]()
	b := New[int]()
	testutil.AssertEqual(t, Equal(a, b), true)
	testutil.AssertEqual(t, Equal(a, a), true)

	a.Push(1)
	a.Push(2)
	b.Push(1)
	testutil.AssertEqual(t, Equal(a, b), false)

	b.Push(2)
	testutil.AssertEqual(t, Equal(a, b), true)

	// Same elements, different order.
	c := New[int]()
	c.Push(2)
	c.Push(1)
	testutil.AssertEqual(t, Equal(a, c), false)
}

func TestEqualFunc(t *testing.T) {
	type item struct{ id int }
	a := New[item]()
	b := New[item]()
	a.Push(item{1})
	b.Push(item{1})

	eq := func(x, y item) bool { return x.id == y.id }
	testutil.AssertEqual(t, EqualFunc(a, b, eq), true)

	b.Push(item{2})
	testutil.AssertEqual(t, EqualFunc(a, b, eq), false)
}

func TestCompare(t *testing.T) {
	a := New[int]()
	b := New[int]()
	testutil.AssertEqual(t, Compare(a, b), 0)

	a.Push(1)
	testutil.AssertEqual(t, Compare(a, b), 1)
	testutil.AssertEqual(t, Compare(b, a), -1)

	b.Push(1)
	testutil.AssertEqual(t, Compare(a, b), 0)

	a.Push(2)
	b.Push(3)
	testutil.AssertEqual(t, Compare(a, b), -1)
}

// Two goroutines comparing the same pair in opposite argument order must not
// deadlock; the construction-order lock discipline is what this exercises.
func TestCompareOppositeOrdersNoDeadlock(t *testing.T) {
	a := New[int]()
	b := New[int]()
	for i := 0; i < 50; i++ {
		a.Push(i)
		b.Push(i)
	}

	var wg sync.WaitGroup
	for g := 0; g < 2; g++ {
		wg.Add(2)
		go func() {
			defer wg.Done()
			for i := 0; i < 1000; i++ {
				Equal(a, b)
			}
		}()
		go func() {
			defer wg.Done()
			for i := 0; i < 1000; i++ {
				Equal(b, a)
			}
		}()
	}

	done := make(chan struct{})
	go func() {
		wg.Wait()
		close(done)
	}()
	select {
	case <-done:
	case <-time.After(5 * time.Second):
		t.Fatal("cross-order comparisons deadlocked")
	}
}
