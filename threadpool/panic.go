// File: threadpool/panic.go
// Author: momentics <momentics@gmail.com>
//
// Task panics are captured into the result handle instead of unwinding
// the worker loop.

package threadpool

import (
	"fmt"
	"runtime"
)

// PanicError wraps a panic recovered from a task together with the
// goroutine stack captured at the point of the panic.
type PanicError struct {
	// Value is the original value passed to panic().
	Value any

	// Stack is the goroutine stack trace at the point of panic.
	Stack string
}

// Error returns the panic value and the full stack trace.
func (e *PanicError) Error() string {
	return fmt.Sprintf("task panic: %v\n\n%s", e.Value, e.Stack)
}

func newPanicError(v any) *PanicError {
	// 8 KiB covers most stacks; runtime.Stack truncates gracefully.
	buf := make([]byte, 8192)
	n := runtime.Stack(buf, false)
	return &PanicError{
		Value: v,
		Stack: string(buf[:n]),
	}
}
