//go:build linux
// +build linux

// File: affinity/affinity_linux.go
// Author: momentics <momentics@gmail.com>
//
// Linux-specific implementation for setting thread CPU affinity.
// Pure Go via sched_setaffinity on the calling thread; no cgo required.

package affinity

import (
	"fmt"

	"golang.org/x/sys/unix"
)

// pinPlatform sets thread affinity to a given CPU for Linux.
func pinPlatform(cpuID int) error {
	if cpuID < 0 {
		return fmt.Errorf("affinity: negative cpu index %d", cpuID)
	}
	var set unix.CPUSet
	set.Zero()
	set.Set(cpuID)
	// pid 0 addresses the calling thread.
	if err := unix.SchedSetaffinity(0, &set); err != nil {
		return fmt.Errorf("affinity: sched_setaffinity(cpu=%d): %w", cpuID, err)
	}
	return nil
}
