// File: threadpool/tracker.go
// Author: momentics <momentics@gmail.com>
//
// Outstanding-work tracker backing Drain. Counts tasks that have been
// accepted but whose execution has not yet returned.

package threadpool

import "sync"

type completionTracker struct {
	mu          sync.Mutex
	idle        *sync.Cond
	outstanding int64
}

func newCompletionTracker() *completionTracker {
	t := &completionTracker{}
	t.idle = sync.NewCond(&t.mu)
	return t
}

// noteEnqueued records one accepted task.
func (t *completionTracker) noteEnqueued() {
	t.mu.Lock()
	t.outstanding++
	t.mu.Unlock()
}

// noteFinished records one finished task. Wakes every waiter when the
// count reaches zero.
func (t *completionTracker) noteFinished() {
	t.mu.Lock()
	t.outstanding--
	if t.outstanding == 0 {
		t.idle.Broadcast()
	}
	t.mu.Unlock()
}

// waitUntilIdle blocks the caller until no accepted task remains
// unfinished. Returns immediately if the count is already zero. Any
// number of concurrent waiters is allowed; all of them observe the
// count at zero before returning.
func (t *completionTracker) waitUntilIdle() {
	t.mu.Lock()
	for t.outstanding > 0 {
		t.idle.Wait()
	}
	t.mu.Unlock()
}

func (t *completionTracker) pending() int64 {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.outstanding
}
