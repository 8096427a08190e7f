//go:build !amd64 && !arm64

package tick

// Available reports false: there is no hardware counter implementation for
// this architecture. Use Nanotime instead.
func Available() bool { return false }

// Read always returns 0 on the stub implementation.
func Read() uint64 { return 0 }

// Name returns "none" on the stub implementation.
func Name() string { return "none" }

// Frequency returns 0 on the stub implementation.
func Frequency() uint64 { return 0 }
