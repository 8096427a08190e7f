// Package cputimer measures the elapsed time of code regions in CPU ticks.
//
// Readings come from the CPU's hardware tick counter where one exists
// (RDTSC/RDTSCP on amd64, CNTVCT_EL0 on arm64) and from the runtime's
// monotonic clock otherwise. A TimeSource selects the backend once and
// exposes the conversion factor from ticks to seconds.
//
// This package offers several timer types, all usable as zero values:
//   - ElapsedTimer: a single start/stop measurement
//   - AccTimer: sums ticks over many start/stop cycles
//   - CountingTimer: an AccTimer that also counts occurrences
//   - Trace: an ordered log of labelled measurements
//   - AccVec: per-branch accumulators sharing a common start
//
// # Ownership
//
// Timers and traces perform no locking. Each instance must be owned by one
// goroutine at a time; use one timer per goroutine, or lock externally.
// Only Default and the TimeSource itself are safe for concurrent use.
//
// # Precision
//
// Hardware ticks are not resilient to a goroutine being descheduled or
// migrated between cores, and their rate is measured once at startup. The
// timers are meant for short code sections where those constraints are
// understood. The overhead of reading the clock is not subtracted.
//
// # Misuse
//
// Instrumentation never fails. Stop without Start returns 0 and changes
// nothing; Start on a running timer overwrites the pending start mark.
package cputimer
