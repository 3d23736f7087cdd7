// Package api
// Author: momentics <momentics@gmail.com>
//
// Public contracts for the threadpool library: the pool interface,
// error taxonomy, and the best-effort diagnostic channel used to
// report non-fatal thread binding problems.
package api
