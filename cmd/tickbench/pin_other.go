//go:build !linux

package main

import (
	"errors"
	"runtime"
)

// pinThread only locks the OS thread; CPU affinity is not set outside Linux.
func pinThread() (int, func(), error) {
	runtime.LockOSThread()
	return -1, runtime.UnlockOSThread, errors.New("cpu affinity not supported on " + runtime.GOOS)
}
