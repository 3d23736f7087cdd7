package threadpool

import (
	"errors"
	"testing"
	"time"

	"github.com/momentics/threadpool/api"
)

func TestQueueFIFO(t *testing.T) {
	q := newTaskQueue(func() {})
	var got []int
	for i := 0; i < 5; i++ {
		i := i
		if err := q.push(func() { got = append(got, i) }); err != nil {
			t.Fatalf("push: %v", err)
		}
	}
	for i := 0; i < 5; i++ {
		task, ok := q.popBlocking()
		if !ok {
			t.Fatal("unexpected retire")
		}
		task()
	}
	for i, v := range got {
		if v != i {
			t.Fatalf("arrival order broken: got %v", got)
		}
	}
}

func TestQueuePushAfterClose(t *testing.T) {
	q := newTaskQueue(func() {})
	q.close()
	err := q.push(func() {})
	if !errors.Is(err, api.ErrPoolClosed) {
		t.Errorf("push after close = %v, want ErrPoolClosed", err)
	}
	if q.depth() != 0 {
		t.Errorf("rejected push must not enqueue, depth = %d", q.depth())
	}
}

func TestQueueCloseDrainsBeforeRetire(t *testing.T) {
	q := newTaskQueue(func() {})
	if err := q.push(func() {}); err != nil {
		t.Fatal(err)
	}
	q.close()

	// The queued task must still come out before the retire signal.
	if _, ok := q.popBlocking(); !ok {
		t.Fatal("expected queued task before retire")
	}
	if _, ok := q.popBlocking(); ok {
		t.Fatal("expected retire on empty stopped queue")
	}
}

func TestQueueCloseWakesBlockedConsumer(t *testing.T) {
	q := newTaskQueue(func() {})
	retired := make(chan struct{})
	go func() {
		if _, ok := q.popBlocking(); !ok {
			close(retired)
		}
	}()
	// Give the consumer a moment to block on the condvar.
	time.Sleep(10 * time.Millisecond)
	q.close()
	select {
	case <-retired:
	case <-time.After(2 * time.Second):
		t.Fatal("close did not wake blocked consumer")
	}
}

func TestQueueOnEnqueueRunsPerAcceptedTask(t *testing.T) {
	var n int
	q := newTaskQueue(func() { n++ })
	q.push(func() {})
	q.push(func() {})
	q.close()
	q.push(func() {}) // rejected, must not count
	if n != 2 {
		t.Errorf("onEnqueue ran %d times, want 2", n)
	}
}
