package benchmark

import (
	"context"
	"strconv"
	"testing"
	"time"

	"github.com/vnykmshr/gopool/pkg/scheduling/workerpool"
)

// BenchmarkWorkerPoolSubmit measures submission cost across pool sizes.
func BenchmarkWorkerPoolSubmit(b *testing.B) {
	for _, workers := range []int{2, 4, 8} {
		b.Run(strconv.Itoa(workers)+"workers", func(b *testing.B) {
			pool := workerpool.New(workers)
			defer pool.Shutdown()

			task := workerpool.TaskFunc(func(_ context.Context) error {
				return nil
			})

			b.ReportAllocs()
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				if _, err := pool.Submit(task); err != nil {
					b.Fatal(err)
				}
			}
		})
	}
}

// BenchmarkWorkerPoolThroughput measures end-to-end task execution.
func BenchmarkWorkerPoolThroughput(b *testing.B) {
	pool := workerpool.New(4)
	defer pool.Shutdown()

	task := workerpool.TaskFunc(func(_ context.Context) error {
		return nil
	})

	b.ReportAllocs()
	b.ResetTimer()
	futures := make([]*workerpool.Future[struct{}], 0, b.N)
	for i := 0; i < b.N; i++ {
		f, err := pool.Submit(task)
		if err != nil {
			b.Fatal(err)
		}
		futures = append(futures, f)
	}
	for _, f := range futures {
		<-f.Done()
	}
}

// BenchmarkWorkerPoolContention measures submission under parallel load.
func BenchmarkWorkerPoolContention(b *testing.B) {
	pool := workerpool.New(8)
	defer pool.Shutdown()

	task := workerpool.TaskFunc(func(_ context.Context) error {
		return nil
	})

	b.ReportAllocs()
	b.RunParallel(func(pb *testing.PB) {
		for pb.Next() {
			if _, err := pool.Submit(task); err != nil {
				b.Fatal(err)
			}
		}
	})
}

// BenchmarkWorkerPoolWithWork measures throughput with simulated work.
func BenchmarkWorkerPoolWithWork(b *testing.B) {
	for _, workDuration := range []time.Duration{0, time.Microsecond, 10 * time.Microsecond} {
		label := "NoWork"
		if workDuration > 0 {
			label = workDuration.String()
		}

		b.Run(label, func(b *testing.B) {
			pool := workerpool.New(4)
			defer pool.Shutdown()

			dur := workDuration
			task := workerpool.TaskFunc(func(_ context.Context) error {
				if dur > 0 {
					time.Sleep(dur)
				}
				return nil
			})

			b.ReportAllocs()
			b.ResetTimer()
			futures := make([]*workerpool.Future[struct{}], 0, b.N)
			for i := 0; i < b.N; i++ {
				f, err := pool.Submit(task)
				if err != nil {
					b.Fatal(err)
				}
				futures = append(futures, f)
			}
			for _, f := range futures {
				<-f.Done()
			}
		})
	}
}

// BenchmarkWorkerPoolLifecycle measures a full start, drain, restart cycle.
func BenchmarkWorkerPoolLifecycle(b *testing.B) {
	task := workerpool.TaskFunc(func(_ context.Context) error {
		return nil
	})

	pool := workerpool.New(4)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		for j := 0; j < 10; j++ {
			if _, err := pool.Submit(task); err != nil {
				b.Fatal(err)
			}
		}
		pool.Shutdown()
		if err := pool.Restart(4); err != nil {
			b.Fatal(err)
		}
	}
	pool.Shutdown()
}
