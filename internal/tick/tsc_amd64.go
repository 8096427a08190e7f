//go:build amd64

package tick

import "github.com/klauspost/cpuid/v2"

// rdtsc reads the CPU's Time Stamp Counter after an LFENCE.
// Implemented in tsc_amd64.s
func rdtsc() uint64

// rdtscp reads the CPU's Time Stamp Counter with RDTSCP, which waits for
// earlier instructions to retire.
// Implemented in tsc_amd64.s
func rdtscp() uint64

// RDTSCP orders the read after earlier instructions without a separate
// fence, and is the cheaper path where the CPU has it.
var useRDTSCP = cpuid.CPU.Supports(cpuid.RDTSCP)

// Available reports whether the hardware counter can be read. Every amd64
// CPU has RDTSC and the SSE2 LFENCE, so this is always true.
func Available() bool { return true }

// Read returns the current value of the Time Stamp Counter.
func Read() uint64 {
	if useRDTSCP {
		return rdtscp()
	}
	return rdtsc()
}

// Name returns the instruction used by Read.
func Name() string {
	if useRDTSCP {
		return "rdtscp"
	}
	return "rdtsc"
}

// Frequency returns 0: the TSC rate is not architecturally exposed and has
// to be measured with Calibrate.
func Frequency() uint64 { return 0 }
