// File: control/recorder.go
// Author: momentics <momentics@gmail.com>
//
// Thread-safe diagnostic recorder for inspection and tests.
// Retains events in arrival order with capture timestamps.

package control

import (
	"sync"
	"time"

	"github.com/momentics/threadpool/api"
)

// Event is one recorded diagnostic with its capture time.
type Event struct {
	Diag api.Diag
	At   time.Time
}

// Recorder retains diagnostic events. The zero value is not usable;
// create one with NewRecorder.
type Recorder struct {
	mu     sync.Mutex
	events []Event
}

// NewRecorder creates an empty recorder.
func NewRecorder() *Recorder {
	return &Recorder{}
}

// Report implements api.DiagSink.
func (r *Recorder) Report(d api.Diag) {
	r.mu.Lock()
	r.events = append(r.events, Event{Diag: d, At: time.Now()})
	r.mu.Unlock()
}

// Snapshot returns a copy of all recorded events in arrival order.
func (r *Recorder) Snapshot() []Event {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]Event, len(r.events))
	copy(out, r.events)
	return out
}

// Len reports the number of recorded events.
func (r *Recorder) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.events)
}
