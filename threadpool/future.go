// File: threadpool/future.go
// Author: momentics <momentics@gmail.com>
//
// Result handle for submitted tasks.

package threadpool

// Future is the caller-facing handle for one submitted task. It becomes
// ready exactly once, carrying either the task's value or its failure,
// and may be read any number of times after that.
type Future[T any] struct {
	done chan struct{}
	val  T
	err  error
}

func newFuture[T any]() *Future[T] {
	return &Future[T]{done: make(chan struct{})}
}

// complete publishes the outcome. Called exactly once, by the worker
// that executed the task; the close of done publishes val and err.
func (f *Future[T]) complete(val T, err error) {
	f.val = val
	f.err = err
	close(f.done)
}

// Wait blocks until the task has finished and returns its outcome.
// A task panic surfaces as *PanicError.
func (f *Future[T]) Wait() (T, error) {
	<-f.done
	return f.val, f.err
}

// Done is closed once the outcome is ready, for use in select.
func (f *Future[T]) Done() <-chan struct{} {
	return f.done
}

// Ready reports whether the outcome can be read without blocking.
func (f *Future[T]) Ready() bool {
	select {
	case <-f.done:
		return true
	default:
		return false
	}
}
