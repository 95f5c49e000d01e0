package pool

import (
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"go.uber.org/zap"
)

func TestDo_RunsAndWaits(t *testing.T) {
	p := New(2, zap.NewNop())
	defer p.Close()

	ran := false
	p.Do(func() { ran = true })
	if !ran {
		t.Error("Do() returned before the function ran")
	}
}

func TestPool_BoundsConcurrency(t *testing.T) {
	const workers = 2
	const jobs = 8

	p := New(workers, zap.NewNop())
	defer p.Close()

	var active, peak int64
	var wg sync.WaitGroup
	for i := 0; i < jobs; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			p.Do(func() {
				n := atomic.AddInt64(&active, 1)
				for {
					old := atomic.LoadInt64(&peak)
					if n <= old || atomic.CompareAndSwapInt64(&peak, old, n) {
						break
					}
				}
				time.Sleep(10 * time.Millisecond)
				atomic.AddInt64(&active, -1)
			})
		}()
	}
	wg.Wait()

	if got := atomic.LoadInt64(&peak); got > workers {
		t.Errorf("peak concurrency = %d, want at most %d", got, workers)
	}
}

func TestClose_DrainsInFlightTasks(t *testing.T) {
	p := New(1, zap.NewNop())

	var finished int64
	done := p.Submit(func() {
		time.Sleep(5 * time.Millisecond)
		atomic.AddInt64(&finished, 1)
	})
	p.Close()
	<-done

	if atomic.LoadInt64(&finished) != 1 {
		t.Error("Close() returned before the submitted task finished")
	}
}
