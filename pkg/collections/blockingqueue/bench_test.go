package blockingqueue

import (
	"sync"
	"testing"
)

func BenchmarkPushPop(b *testing.B) {
	q := New[int]()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		q.Push(i)
		q.Pop()
	}
}

func BenchmarkContendedHandoff(b *testing.B) {
	q := New[int]()
	const consumers = 4

	var wg sync.WaitGroup
	per := b.N / consumers
	b.ResetTimer()
	for c := 0; c < consumers; c++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := 0; i < per; i++ {
				q.Pop()
			}
		}()
	}
	for i := 0; i < per*consumers; i++ {
		q.Push(i)
	}
	wg.Wait()
}

func BenchmarkParallelPush(b *testing.B) {
	q := New[int]()
	b.RunParallel(func(pb *testing.PB) {
		for pb.Next() {
			q.Push(1)
		}
	})
}
