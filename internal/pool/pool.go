// Package pool provides a fixed-size worker pool with explicit submission
// and awaiting, so blocking calls can be bounded instead of spawning a
// goroutine per request.
package pool

import (
	"sync"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type task struct {
	id   string
	fn   func()
	done chan struct{}
}

// Pool runs submitted functions on a fixed set of workers.
type Pool struct {
	tasks chan task
	wg    sync.WaitGroup
	log   *zap.Logger
}

// New starts size workers. Submission blocks while all workers are busy.
func New(size int, log *zap.Logger) *Pool {
	if size < 1 {
		size = 1
	}
	p := &Pool{tasks: make(chan task), log: log}
	for i := 1; i <= size; i++ {
		p.wg.Add(1)
		go p.worker(i)
	}
	return p
}

func (p *Pool) worker(n int) {
	defer p.wg.Done()
	for t := range p.tasks {
		p.log.Debug("task started", zap.Int("worker", n), zap.String("task", t.id))
		t.fn()
		close(t.done)
		p.log.Debug("task finished", zap.Int("worker", n), zap.String("task", t.id))
	}
}

// Submit hands fn to an idle worker, blocking until one is free. The
// returned channel closes once fn has run.
func (p *Pool) Submit(fn func()) <-chan struct{} {
	t := task{id: uuid.NewString(), fn: fn, done: make(chan struct{})}
	p.tasks <- t
	return t.done
}

// Do runs fn on a worker and waits for it to finish.
func (p *Pool) Do(fn func()) {
	<-p.Submit(fn)
}

// Close stops accepting work and waits for in-flight tasks to finish. All
// submitters must be stopped first: Submit after Close panics.
func (p *Pool) Close() {
	close(p.tasks)
	p.wg.Wait()
}
