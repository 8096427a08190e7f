//go:build linux

package main

import (
	"runtime"

	"golang.org/x/sys/unix"
)

// maxCPUs is the size of a unix.CPUSet.
const maxCPUs = 1024

// pinThread locks the calling goroutine to its OS thread and that thread to
// a single CPU, so back-to-back reads all come from one core's counter.
// It returns the CPU chosen and a func restoring the previous affinity.
func pinThread() (int, func(), error) {
	runtime.LockOSThread()

	var prev unix.CPUSet
	if err := unix.SchedGetaffinity(0, &prev); err != nil {
		runtime.UnlockOSThread()
		return -1, func() {}, err
	}

	cpu := -1
	for i := 0; i < maxCPUs; i++ {
		if prev.IsSet(i) {
			cpu = i
			break
		}
	}
	if cpu < 0 {
		runtime.UnlockOSThread()
		return -1, func() {}, unix.EINVAL
	}

	var one unix.CPUSet
	one.Zero()
	one.Set(cpu)
	if err := unix.SchedSetaffinity(0, &one); err != nil {
		runtime.UnlockOSThread()
		return -1, func() {}, err
	}

	return cpu, func() {
		_ = unix.SchedSetaffinity(0, &prev)
		runtime.UnlockOSThread()
	}, nil
}
