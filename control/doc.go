// Package control
// Author: momentics <momentics@gmail.com>
//
// Diagnostic sinks for the threadpool library: a default sink writing
// through the standard log package, and a thread-safe recorder that
// retains events for later inspection.
package control
