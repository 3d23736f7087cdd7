//go:build windows
// +build windows

// File: sched/priority_windows.go
// Author: momentics <momentics@gmail.com>
//
// Windows-specific thread priority control via SetThreadPriority.
// Raw values use the native thread priority scale, -2..15.
//
// Reference: https://learn.microsoft.com/en-us/windows/win32/api/processthreadsapi/nf-processthreadsapi-setthreadpriority

package sched

import (
	"fmt"

	"golang.org/x/sys/windows"

	"github.com/momentics/threadpool/api"
)

var (
	modkernel32           = windows.NewLazySystemDLL("kernel32.dll")
	procSetThreadPriority = modkernel32.NewProc("SetThreadPriority")
	procGetCurrentThread  = modkernel32.NewProc("GetCurrentThread")
)

// Thread priority levels from winbase.h.
const (
	threadPriorityLowest       = -2
	threadPriorityBelowNormal  = -1
	threadPriorityNormal       = 0
	threadPriorityAboveNormal  = 1
	threadPriorityTimeCritical = 15
)

// setPriorityValue applies a native priority level to the calling thread.
func setPriorityValue(priority int) error {
	hThread, _, _ := procGetCurrentThread.Call()
	ret, _, err := procSetThreadPriority.Call(hThread, uintptr(priority))
	if ret == 0 {
		return fmt.Errorf("sched: SetThreadPriority(%d): %v", priority, err)
	}
	return nil
}

func setTierPlatform(t Tier) error {
	switch t {
	case Low:
		return setPriorityValue(threadPriorityBelowNormal)
	case Normal:
		return nil
	case High:
		return setPriorityValue(threadPriorityAboveNormal)
	case Realtime:
		return setPriorityValue(threadPriorityTimeCritical)
	}
	return fmt.Errorf("%w: unknown tier %d", api.ErrInvalidArgument, int(t))
}

func rawRangePlatform() (int, int) {
	return threadPriorityLowest, threadPriorityTimeCritical
}

func setRawPlatform(priority int) error {
	lo, hi := rawRangePlatform()
	if priority < lo || priority > hi {
		return fmt.Errorf("%w: %d (valid %d..%d)", api.ErrInvalidPriority, priority, lo, hi)
	}
	return setPriorityValue(priority)
}
