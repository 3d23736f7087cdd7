// File: threadpool/options.go
// Package threadpool defines functional options for pool construction.
// Author: momentics <momentics@gmail.com>

package threadpool

import (
	"github.com/momentics/threadpool/api"
	"github.com/momentics/threadpool/sched"
)

// Option customizes pool construction.
type Option func(*poolConfig)

// WithAffinity sets the ordered CPU core list. Worker i binds to
// cores[i mod len(cores)]. An empty list leaves workers unpinned.
// An invalid core index surfaces as a startup diagnostic, not an error.
func WithAffinity(cores ...int) Option {
	return func(c *poolConfig) {
		c.cores = append([]int(nil), cores...)
	}
}

// WithPriority selects an ordinal scheduling tier for every worker.
func WithPriority(t sched.Tier) Option {
	return func(c *poolConfig) {
		c.prio = prioritySpec{tier: t}
	}
}

// WithRawPriority selects a platform-specific numeric priority for
// every worker. An out-of-range value is reported at worker startup and
// the affected workers keep default scheduling.
func WithRawPriority(priority int) Option {
	return func(c *poolConfig) {
		c.prio = prioritySpec{raw: priority, useRaw: true}
	}
}

// WithDiagnostics routes binding and task diagnostics to sink instead
// of the default log sink. Panics if sink is nil.
func WithDiagnostics(sink api.DiagSink) Option {
	if sink == nil {
		panic("threadpool: WithDiagnostics requires non-nil sink")
	}
	return func(c *poolConfig) {
		c.sink = sink
	}
}
