//go:build linux
// +build linux

// File: sched/priority_linux.go
// Author: momentics <momentics@gmail.com>
//
// Linux-specific thread priority control. Tiers map to scheduling
// policies: High and Realtime enter the real-time classes SCHED_RR and
// SCHED_FIFO; Low lowers the thread's nice value (the SCHED_OTHER
// sched_priority field is fixed at zero on Linux, so nice is the only
// knob below Normal). Raw values are applied under SCHED_RR and
// validated against the kernel-reported range, 1..99 on mainline.

package sched

import (
	"fmt"
	"unsafe"

	"golang.org/x/sys/unix"

	"github.com/momentics/threadpool/api"
)

// nice increment applied for the Low tier.
const lowNice = 10

// schedParam mirrors struct sched_param.
type schedParam struct {
	priority int32
}

// setScheduler applies policy and priority to the calling thread.
func setScheduler(policy, priority int) error {
	param := schedParam{priority: int32(priority)}
	_, _, errno := unix.Syscall(unix.SYS_SCHED_SETSCHEDULER,
		0, uintptr(policy), uintptr(unsafe.Pointer(&param)))
	if errno != 0 {
		return fmt.Errorf("sched: sched_setscheduler(policy=%d, priority=%d): %w",
			policy, priority, errno)
	}
	return nil
}

// priorityRange queries the kernel for a policy's valid priority range.
func priorityRange(policy int) (int, int) {
	lo, _, _ := unix.Syscall(unix.SYS_SCHED_GET_PRIORITY_MIN, uintptr(policy), 0, 0)
	hi, _, _ := unix.Syscall(unix.SYS_SCHED_GET_PRIORITY_MAX, uintptr(policy), 0, 0)
	return int(lo), int(hi)
}

func setTierPlatform(t Tier) error {
	switch t {
	case Normal:
		return nil
	case Low:
		if err := unix.Setpriority(unix.PRIO_PROCESS, unix.Gettid(), lowNice); err != nil {
			return fmt.Errorf("sched: setpriority(nice=%d): %w", lowNice, err)
		}
		return nil
	case High:
		lo, hi := priorityRange(unix.SCHED_RR)
		return setScheduler(unix.SCHED_RR, (lo+hi)/2)
	case Realtime:
		_, hi := priorityRange(unix.SCHED_FIFO)
		return setScheduler(unix.SCHED_FIFO, hi)
	}
	return fmt.Errorf("%w: unknown tier %d", api.ErrInvalidArgument, int(t))
}

func rawRangePlatform() (int, int) {
	return priorityRange(unix.SCHED_RR)
}

func setRawPlatform(priority int) error {
	lo, hi := rawRangePlatform()
	if priority < lo || priority > hi {
		return fmt.Errorf("%w: %d (valid %d..%d)", api.ErrInvalidPriority, priority, lo, hi)
	}
	return setScheduler(unix.SCHED_RR, priority)
}
