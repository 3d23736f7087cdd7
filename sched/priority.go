// File: sched/priority.go
// Author: momentics <momentics@gmail.com>
//
// Platform-neutral API for thread scheduling priority. Two entry points
// exist: an ordinal tier form portable across platforms, and a raw
// numeric form validated against the platform's fixed inclusive range.
// Platform-specific implementations live in the build-tagged files.

package sched

import (
	"fmt"
	"strings"

	"github.com/momentics/threadpool/api"
)

// Tier is a portable scheduling level. Tiers above Normal move the
// thread into a real-time scheduling class on platforms that have one.
type Tier int

const (
	Low Tier = iota
	Normal
	High
	Realtime
)

// String returns the lower-case tier name.
func (t Tier) String() string {
	switch t {
	case Low:
		return "low"
	case Normal:
		return "normal"
	case High:
		return "high"
	case Realtime:
		return "realtime"
	default:
		return fmt.Sprintf("tier(%d)", int(t))
	}
}

// ParseTier maps a tier name (case-insensitive) to its Tier value.
func ParseTier(s string) (Tier, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "low":
		return Low, nil
	case "normal":
		return Normal, nil
	case "high":
		return High, nil
	case "realtime":
		return Realtime, nil
	}
	return Normal, fmt.Errorf("%w: unknown priority tier %q", api.ErrInvalidArgument, s)
}

// SetTier applies the ordinal tier to the calling OS thread. The caller
// must have locked the goroutine with runtime.LockOSThread. Normal is
// always a no-op. On unsupported platforms returns
// api.ErrBindingUnsupported.
func SetTier(t Tier) error {
	return setTierPlatform(t)
}

// SetRaw applies a platform-specific numeric priority to the calling
// OS thread. Values outside RawRange are rejected with
// api.ErrInvalidPriority and leave the thread untouched.
func SetRaw(priority int) error {
	return setRawPlatform(priority)
}

// RawRange reports the inclusive range of valid raw priority values on
// this platform.
func RawRange() (min, max int) {
	return rawRangePlatform()
}
