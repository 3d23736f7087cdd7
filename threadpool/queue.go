// File: threadpool/queue.go
// Author: momentics <momentics@gmail.com>
//
// FIFO task queue. One mutex and one condition variable cover both
// "queue non-empty" and "pool stopping"; strict arrival order, no
// priority reordering.

package threadpool

import (
	"sync"

	"github.com/eapache/queue"

	"github.com/momentics/threadpool/api"
)

// taskQueue holds pending tasks between submission and pickup. The
// stop flag lives under the same mutex: once it is set and the ring is
// empty, popBlocking tells workers to retire.
type taskQueue struct {
	mu       sync.Mutex
	nonEmpty *sync.Cond
	ring     *queue.Queue
	stopped  bool

	// onEnqueue runs under the lock for every accepted task, keeping
	// the completion tracker in lockstep with queue state.
	onEnqueue func()
}

func newTaskQueue(onEnqueue func()) *taskQueue {
	q := &taskQueue{
		ring:      queue.New(),
		onEnqueue: onEnqueue,
	}
	q.nonEmpty = sync.NewCond(&q.mu)
	return q
}

// push appends task at the tail and wakes one idle worker. Returns
// api.ErrPoolClosed, with no side effect, once close has been called.
func (q *taskQueue) push(task func()) error {
	q.mu.Lock()
	if q.stopped {
		q.mu.Unlock()
		return api.ErrPoolClosed
	}
	q.ring.Add(task)
	q.onEnqueue()
	q.mu.Unlock()
	q.nonEmpty.Signal()
	return nil
}

// popBlocking removes and returns the head task, blocking until the
// queue is non-empty or the pool is stopping. ok is false only when the
// pool is stopping and the queue has been fully drained: the caller
// must retire.
func (q *taskQueue) popBlocking() (task func(), ok bool) {
	q.mu.Lock()
	defer q.mu.Unlock()
	for q.ring.Length() == 0 && !q.stopped {
		q.nonEmpty.Wait()
	}
	if q.ring.Length() == 0 {
		return nil, false
	}
	return q.ring.Remove().(func()), true
}

// close sets the stop flag and wakes every blocked worker. Idempotent.
func (q *taskQueue) close() {
	q.mu.Lock()
	q.stopped = true
	q.mu.Unlock()
	q.nonEmpty.Broadcast()
}

// depth reports the number of queued, not yet picked up, tasks.
func (q *taskQueue) depth() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return q.ring.Length()
}
