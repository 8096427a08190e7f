// Package tick provides the raw clock readings used by cputimer.
//
// Two kinds of source are offered:
//   - the CPU's hardware tick counter (RDTSC/RDTSCP on amd64, CNTVCT_EL0 on
//     arm64), read with a single instruction and no system call
//   - the runtime's monotonic clock in nanoseconds, used wherever the
//     hardware counter is unavailable
//
// Hardware counter values are in arbitrary units. Calibrate converts them to
// a rate against the monotonic clock.
package tick

import "time"

// DefaultCalibrationInterval is the sleep used for each calibration round.
const DefaultCalibrationInterval = 10 * time.Millisecond

// DefaultCalibrationRounds is the number of calibration rounds whose median
// is reported by Calibrate.
const DefaultCalibrationRounds = 3

// NanosPerSecond is the rate of the monotonic clock.
const NanosPerSecond = 1_000_000_000
