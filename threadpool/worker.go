// File: threadpool/worker.go
// Author: momentics <momentics@gmail.com>
//
// Worker: one OS thread running the fetch-execute loop. Affinity and
// priority are bound exactly once, before the first task.

package threadpool

import (
	"errors"
	"runtime"
	"sync/atomic"

	"github.com/momentics/threadpool/affinity"
	"github.com/momentics/threadpool/api"
	"github.com/momentics/threadpool/sched"
)

type worker struct {
	id   int
	pool *Pool
}

// run locks the goroutine to an OS thread, performs the one-time
// binding, then loops until popBlocking signals retire.
func (w *worker) run() {
	defer w.pool.wg.Done()
	runtime.LockOSThread()
	defer runtime.UnlockOSThread()

	w.bind()

	for {
		task, ok := w.pool.queue.popBlocking()
		if !ok {
			return
		}
		w.execute(task)
	}
}

// coreFor resolves the CPU core for a worker index, round-robin over
// the configured list.
func coreFor(cores []int, id int) int {
	return cores[id%len(cores)]
}

// bind applies the configured CPU core and priority to the current
// thread. Failures are reported to the diagnostic sink; the worker
// continues with default scheduling either way.
func (w *worker) bind() {
	cfg := &w.pool.cfg
	if len(cfg.cores) > 0 {
		core := coreFor(cfg.cores, w.id)
		if err := affinity.Pin(core); err != nil {
			cfg.sink.Report(api.Diag{
				Kind:   api.DiagAffinityFailed,
				Worker: w.id,
				Core:   core,
				Err:    err,
			})
		}
	}

	var err error
	if cfg.prio.useRaw {
		err = sched.SetRaw(cfg.prio.raw)
	} else {
		err = sched.SetTier(cfg.prio.tier)
	}
	if err != nil {
		kind := api.DiagPriorityFailed
		if errors.Is(err, api.ErrInvalidPriority) {
			kind = api.DiagInvalidPriority
		}
		cfg.sink.Report(api.Diag{Kind: kind, Worker: w.id, Err: err})
	}
}

// execute runs one task, keeping the loop alive across panics, and
// always reports completion to the tracker.
func (w *worker) execute(task func()) {
	defer func() {
		if r := recover(); r != nil {
			w.pool.cfg.sink.Report(api.Diag{
				Kind:   api.DiagTaskPanic,
				Worker: w.id,
				Err:    newPanicError(r),
			})
		}
		atomic.AddInt64(&w.pool.completed, 1)
		w.pool.tracker.noteFinished()
	}()
	task()
}
