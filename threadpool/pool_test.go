package threadpool_test

import (
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/momentics/threadpool/api"
	"github.com/momentics/threadpool/control"
	"github.com/momentics/threadpool/threadpool"
)

func TestNewPanicsOnNonPositiveWorkers(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("New(0) should panic")
		}
	}()
	threadpool.New(0)
}

func TestEachTaskRunsExactlyOnce(t *testing.T) {
	p := threadpool.New(4)
	defer p.Close()

	const n = 8
	futures := make([]*threadpool.Future[int], n)
	for i := 0; i < n; i++ {
		i := i
		f, err := threadpool.Enqueue(p, func() (int, error) { return i * i, nil })
		if err != nil {
			t.Fatalf("Enqueue(%d): %v", i, err)
		}
		futures[i] = f
	}

	got := make(map[int]int)
	for _, f := range futures {
		v, err := f.Wait()
		if err != nil {
			t.Fatal(err)
		}
		got[v]++
	}
	for i := 0; i < n; i++ {
		if got[i*i] < 1 {
			t.Errorf("missing result %d", i*i)
		}
	}

	p.Drain()
	st := p.Stats()
	if st.Submitted != n || st.Completed != n || st.Pending != 0 {
		t.Errorf("stats = %+v, want %d/%d/0", st, n, n)
	}
}

func TestDrainEmptyPoolReturnsImmediately(t *testing.T) {
	p := threadpool.New(2)
	defer p.Close()

	done := make(chan struct{})
	go func() {
		p.Drain()
		close(done)
	}()
	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("Drain on fresh pool should return immediately")
	}
}

func TestDrainWaitsForChainedWork(t *testing.T) {
	p := threadpool.New(2)
	defer p.Close()

	var chained atomic.Bool
	first := make(chan struct{})
	if err := p.Submit(func() {
		// Submit more work before this task finishes; Drain must wait
		// for the chained task too.
		p.Submit(func() {
			time.Sleep(30 * time.Millisecond)
			chained.Store(true)
		})
		close(first)
		time.Sleep(10 * time.Millisecond)
	}); err != nil {
		t.Fatal(err)
	}

	<-first
	p.Drain()
	if !chained.Load() {
		t.Error("Drain returned while chained work was outstanding")
	}
}

func TestSubmitAfterCloseFails(t *testing.T) {
	p := threadpool.New(2)
	p.Close()

	before := p.Stats()
	err := p.Submit(func() { t.Error("task ran after close") })
	if !errors.Is(err, api.ErrPoolClosed) {
		t.Errorf("Submit after Close = %v, want ErrPoolClosed", err)
	}
	if _, err := threadpool.Enqueue(p, func() (int, error) { return 0, nil }); !errors.Is(err, api.ErrPoolClosed) {
		t.Errorf("Enqueue after Close = %v, want ErrPoolClosed", err)
	}

	after := p.Stats()
	if after.Submitted != before.Submitted || after.Pending != 0 {
		t.Errorf("rejected submission changed counters: %+v -> %+v", before, after)
	}
	if p.QueueDepth() != 0 {
		t.Errorf("rejected submission reached the queue, depth = %d", p.QueueDepth())
	}
}

func TestCloseRunsAllQueuedWork(t *testing.T) {
	// One worker, gated: everything behind the gate is still queued
	// when Close begins and must run before Close returns.
	p := threadpool.New(1)

	gate := make(chan struct{})
	p.Submit(func() { <-gate })

	const n = 5
	futures := make([]*threadpool.Future[int], n)
	for i := 0; i < n; i++ {
		i := i
		f, err := threadpool.Enqueue(p, func() (int, error) { return i, nil })
		if err != nil {
			t.Fatal(err)
		}
		futures[i] = f
	}

	closed := make(chan struct{})
	go func() {
		close(gate)
		p.Close()
		close(closed)
	}()

	<-closed
	for i, f := range futures {
		if !f.Ready() {
			t.Fatalf("future %d not ready after Close returned", i)
		}
		if v, err := f.Wait(); err != nil || v != i {
			t.Errorf("future %d = (%d, %v)", i, v, err)
		}
	}
}

func TestCloseIdempotent(t *testing.T) {
	p := threadpool.New(2)
	p.Close()
	p.Close()
}

func TestSubmitNilTask(t *testing.T) {
	p := threadpool.New(1)
	defer p.Close()
	if err := p.Submit(nil); !errors.Is(err, api.ErrInvalidArgument) {
		t.Errorf("Submit(nil) = %v, want ErrInvalidArgument", err)
	}
}

func TestFireAndForgetPanicReported(t *testing.T) {
	rec := control.NewRecorder()
	p := threadpool.New(1, threadpool.WithDiagnostics(rec))

	p.Submit(func() { panic("loose task") })
	p.Drain()
	p.Close()

	events := rec.Snapshot()
	if len(events) != 1 || events[0].Diag.Kind != api.DiagTaskPanic {
		t.Fatalf("expected one task-panic event, got %+v", events)
	}
	var pe *threadpool.PanicError
	if !errors.As(events[0].Diag.Err, &pe) || pe.Value != "loose task" {
		t.Errorf("unexpected diag error: %v", events[0].Diag.Err)
	}
}

func TestManyConcurrentSubmitters(t *testing.T) {
	p := threadpool.New(4)
	defer p.Close()

	const submitters, per = 8, 50
	var sum atomic.Int64
	var wg sync.WaitGroup
	for s := 0; s < submitters; s++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := 0; i < per; i++ {
				if err := p.Submit(func() { sum.Add(1) }); err != nil {
					t.Errorf("Submit: %v", err)
					return
				}
			}
		}()
	}
	wg.Wait()
	p.Drain()

	if sum.Load() != submitters*per {
		t.Errorf("executed %d tasks, want %d", sum.Load(), submitters*per)
	}
	if st := p.Stats(); st.Pending != 0 {
		t.Errorf("pending = %d after Drain", st.Pending)
	}
}

func TestNumWorkers(t *testing.T) {
	p := threadpool.New(3)
	defer p.Close()
	if p.NumWorkers() != 3 {
		t.Errorf("NumWorkers = %d, want 3", p.NumWorkers())
	}
	var _ api.Pool = p
}
