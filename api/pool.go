// File: api/pool.go
// Author: momentics <momentics@gmail.com>
//
// Pool contract for fixed-size worker pools with OS-level thread placement.

package api

// Pool abstracts a fixed-size worker pool whose threads may be bound to
// CPU cores and scheduling priorities.
type Pool interface {
	// Submit schedules task for execution in FIFO arrival order.
	// Returns ErrPoolClosed once shutdown has begun.
	Submit(task func()) error

	// Drain blocks until no accepted task remains outstanding. It does
	// not stop the pool.
	Drain()

	// Close stops the pool, runs every queued task to completion and
	// joins all workers before returning.
	Close()

	// NumWorkers returns the fixed worker count.
	NumWorkers() int

	// Stats returns a point-in-time snapshot of pool activity.
	Stats() Stats
}

// Stats is a snapshot of pool counters.
type Stats struct {
	Submitted int64 // tasks accepted since construction
	Completed int64 // tasks whose execution has returned
	Pending   int64 // accepted but not yet finished
	Workers   int   // worker count, fixed at creation
}
