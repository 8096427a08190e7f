package tick

import (
	_ "unsafe" // go:linkname
)

// nanotime is the runtime's monotonic clock, the same reading time.Now
// embeds. The runtime keeps it linkable for packages outside the standard
// library.
//
//go:linkname nanotime runtime.nanotime
func nanotime() int64

// Nanotime is the fallback clock: monotonic nanoseconds, used wherever no
// hardware counter is available or one has failed, and as the reference
// for Calibrate.
//
// The epoch is arbitrary and process-local, but the value never decreases.
func Nanotime() uint64 {
	return uint64(nanotime())
}
