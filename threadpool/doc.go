// Package threadpool
// Author: momentics <momentics@gmail.com>
//
// Fixed-size worker pool with per-thread CPU affinity and scheduling
// priority. Each worker is a goroutine locked to its own OS thread;
// it binds itself once at startup, then runs a fetch-execute loop over
// a strictly FIFO task queue. Submission returns a Future through which
// the caller observes the task's value or failure. Drain blocks until
// no accepted work remains outstanding; Close drains the queue and
// joins every worker before returning.
//
// Binding failures are never fatal: they are reported through the
// configured diagnostic sink and the affected worker continues with
// default scheduling.
package threadpool
