// File: api/diag.go
// Author: momentics <momentics@gmail.com>
//
// Best-effort diagnostic channel. Affinity and priority binding
// failures are reported here instead of failing pool construction.

package api

// DiagKind classifies a non-fatal diagnostic event.
type DiagKind int

const (
	// DiagAffinityFailed: the worker could not be pinned to its CPU core.
	DiagAffinityFailed DiagKind = iota

	// DiagPriorityFailed: the priority primitive failed or is
	// unavailable on this platform.
	DiagPriorityFailed

	// DiagInvalidPriority: a raw numeric priority was rejected as out
	// of the platform's valid range.
	DiagInvalidPriority

	// DiagTaskPanic: a fire-and-forget task panicked; the worker
	// recovered and continues.
	DiagTaskPanic
)

// String returns a short stable label for logs.
func (k DiagKind) String() string {
	switch k {
	case DiagAffinityFailed:
		return "affinity-failed"
	case DiagPriorityFailed:
		return "priority-failed"
	case DiagInvalidPriority:
		return "invalid-priority"
	case DiagTaskPanic:
		return "task-panic"
	default:
		return "unknown"
	}
}

// Diag is one diagnostic event emitted by a worker.
type Diag struct {
	Kind   DiagKind
	Worker int   // worker index within the pool
	Core   int   // target CPU core, meaningful for DiagAffinityFailed
	Err    error // underlying cause
}

// DiagSink receives diagnostic events. Implementations must be safe
// for concurrent use; Report must not block pool progress.
type DiagSink interface {
	Report(d Diag)
}
