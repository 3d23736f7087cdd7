// File: control/logsink.go
// Author: momentics <momentics@gmail.com>
//
// Default diagnostic sink: best-effort reporting through the standard
// log package.

package control

import (
	"log"

	"github.com/momentics/threadpool/api"
)

// LogSink writes diagnostic events through a *log.Logger.
type LogSink struct {
	logger *log.Logger
}

// NewLogSink creates a sink writing to l, or to log.Default() when l
// is nil.
func NewLogSink(l *log.Logger) *LogSink {
	if l == nil {
		l = log.Default()
	}
	return &LogSink{logger: l}
}

// Report implements api.DiagSink.
func (s *LogSink) Report(d api.Diag) {
	if d.Kind == api.DiagAffinityFailed {
		s.logger.Printf("[threadpool] worker %d: %s (core %d): %v", d.Worker, d.Kind, d.Core, d.Err)
		return
	}
	s.logger.Printf("[threadpool] worker %d: %s: %v", d.Worker, d.Kind, d.Err)
}
