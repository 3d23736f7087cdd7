//go:build !linux && !windows
// +build !linux,!windows

// File: sched/priority_stub.go
// Author: momentics <momentics@gmail.com>
//
// Stub implementation for platforms without a usable priority primitive.

package sched

import "github.com/momentics/threadpool/api"

func setTierPlatform(t Tier) error {
	if t == Normal {
		return nil
	}
	return api.ErrBindingUnsupported
}

func setRawPlatform(int) error {
	return api.ErrBindingUnsupported
}

func rawRangePlatform() (int, int) {
	return 0, 0
}
