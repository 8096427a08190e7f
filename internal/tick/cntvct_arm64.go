//go:build arm64

package tick

// cntvct reads the virtual counter via CNTVCT_EL0 after an ISB.
// Implemented in cntvct_arm64.s
func cntvct() uint64

// cntfrq reads the counter frequency via CNTFRQ_EL0.
// Implemented in cntvct_arm64.s
func cntfrq() uint64

// Available reports whether the hardware counter can be read.
// CNTVCT_EL0 is readable from user space on every arm64 OS Go supports.
func Available() bool { return true }

// Read returns the current value of the virtual counter.
func Read() uint64 { return cntvct() }

// Name returns the register used by Read.
func Name() string { return "cntvct_el0" }

// Frequency returns the counter frequency in Hz as declared by CNTFRQ_EL0.
// On Apple Silicon this is 24 MHz; on most other cores 1 GHz. A firmware
// that leaves the register unset yields 0.
func Frequency() uint64 { return cntfrq() }
