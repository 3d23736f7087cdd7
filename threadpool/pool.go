// File: threadpool/pool.go
// Author: momentics <momentics@gmail.com>
//
// Pool lifecycle and submission port.

package threadpool

import (
	"fmt"
	"sync"
	"sync/atomic"

	"github.com/momentics/threadpool/api"
	"github.com/momentics/threadpool/control"
	"github.com/momentics/threadpool/sched"
)

// Pool is a fixed-size worker pool. Each worker goroutine is locked to
// its own OS thread and bound once, at startup, to the configured CPU
// core and scheduling priority. The worker set never changes after
// construction.
//
// Drain and Close both wait on the same outstanding-work state; callers
// must not invoke them concurrently on the same pool.
type Pool struct {
	queue   *taskQueue
	tracker *completionTracker
	wg      sync.WaitGroup
	workers int
	cfg     poolConfig

	closeOnce sync.Once

	submitted int64
	completed int64
}

type poolConfig struct {
	cores []int
	prio  prioritySpec
	sink  api.DiagSink
}

// prioritySpec selects between the ordinal tier and the raw numeric
// priority form.
type prioritySpec struct {
	tier   sched.Tier
	raw    int
	useRaw bool
}

var _ api.Pool = (*Pool)(nil)

// New creates a pool with n workers and starts them immediately.
// Workers bind their affinity and priority before picking up any task.
// Panics if n <= 0.
func New(n int, opts ...Option) *Pool {
	if n <= 0 {
		panic("threadpool: New requires n > 0")
	}

	p := &Pool{
		workers: n,
		cfg: poolConfig{
			prio: prioritySpec{tier: sched.Normal},
			sink: control.NewLogSink(nil),
		},
	}
	for _, opt := range opts {
		opt(&p.cfg)
	}

	p.tracker = newCompletionTracker()
	p.queue = newTaskQueue(func() {
		p.tracker.noteEnqueued()
		atomic.AddInt64(&p.submitted, 1)
	})

	p.wg.Add(n)
	for i := 0; i < n; i++ {
		w := &worker{id: i, pool: p}
		go w.run()
	}
	return p
}

// Submit schedules task for execution in FIFO arrival order and returns
// without waiting for it to run. Returns api.ErrPoolClosed, with no
// effect on queue or counters, once Close has begun.
func (p *Pool) Submit(task func()) error {
	if task == nil {
		return fmt.Errorf("%w: nil task", api.ErrInvalidArgument)
	}
	return p.queue.push(task)
}

// Enqueue submits fn and returns the Future carrying its eventual value
// or failure. The error return is non-nil only when the pool is closed
// or fn is nil; no Future is produced in that case.
func Enqueue[T any](p *Pool, fn func() (T, error)) (*Future[T], error) {
	if fn == nil {
		return nil, fmt.Errorf("%w: nil task", api.ErrInvalidArgument)
	}
	f := newFuture[T]()
	err := p.Submit(func() {
		defer func() {
			if r := recover(); r != nil {
				var zero T
				f.complete(zero, newPanicError(r))
			}
		}()
		v, err := fn()
		f.complete(v, err)
	})
	if err != nil {
		return nil, err
	}
	return f, nil
}

// Drain blocks until no accepted task remains outstanding at some
// instant during the call, then returns. It does not stop the pool;
// work submitted while draining legitimately extends the wait.
func (p *Pool) Drain() {
	p.tracker.waitUntilIdle()
}

// Close stops the pool: no further submissions are accepted, every
// already-queued task still runs to completion, and all workers are
// joined before Close returns. Idempotent; concurrent callers block
// until the first Close finishes.
func (p *Pool) Close() {
	p.closeOnce.Do(func() {
		p.queue.close()
		p.wg.Wait()
	})
}

// NumWorkers returns the fixed worker count.
func (p *Pool) NumWorkers() int {
	return p.workers
}

// Stats returns a snapshot of pool activity.
func (p *Pool) Stats() api.Stats {
	submitted := atomic.LoadInt64(&p.submitted)
	completed := atomic.LoadInt64(&p.completed)
	return api.Stats{
		Submitted: submitted,
		Completed: completed,
		Pending:   submitted - completed,
		Workers:   p.workers,
	}
}

// QueueDepth reports tasks queued but not yet picked up by a worker.
func (p *Pool) QueueDepth() int {
	return p.queue.depth()
}
