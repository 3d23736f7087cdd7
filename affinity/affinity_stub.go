//go:build !linux && !windows
// +build !linux,!windows

// File: affinity/affinity_stub.go
// Author: momentics <momentics@gmail.com>
//
// Stub implementation for platforms without a thread affinity primitive.

package affinity

import "github.com/momentics/threadpool/api"

// pinPlatform reports affinity as unsupported on this platform.
func pinPlatform(cpuID int) error {
	return api.ErrBindingUnsupported
}
