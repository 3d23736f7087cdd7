// File: affinity/affinity.go
// Author: momentics <momentics@gmail.com>
//
// Platform-neutral API for CPU affinity. Platform-specific implementations are located
// in separate files (affinity_linux.go, affinity_windows.go, etc.) guarded by build tags.

package affinity

import "runtime"

// Pin binds the calling OS thread to a given logical CPU/core on
// supported platforms. The caller must have locked the goroutine to its
// thread with runtime.LockOSThread beforehand, otherwise the binding
// applies to whichever thread the scheduler happens to use.
// On unsupported platforms returns api.ErrBindingUnsupported.
func Pin(cpuID int) error {
	return pinPlatform(cpuID)
}

// NumCPU returns the number of logical CPUs on the host.
func NumCPU() int {
	return runtime.NumCPU()
}
