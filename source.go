package cputimer

import (
	"math"
	"sync"
	"sync/atomic"

	"github.com/randomizedcoder/cputimer/internal/tick"
)

// Clock is a monotonic tick source with a fixed conversion rate.
//
// *TimeSource is the production implementation; tests may inject their own.
// Implementations must be safe for concurrent use.
type Clock interface {
	// Now returns the current tick reading. It never fails.
	Now() Ticks

	// TicksPerSecond returns the rate used to convert ticks to seconds.
	TicksPerSecond() float64
}

// Backend identifies the clock a TimeSource reads.
type Backend int

const (
	// BackendClock is the runtime's monotonic clock, one tick per nanosecond.
	BackendClock Backend = iota
	// BackendHardware is the CPU's tick counter.
	BackendHardware
)

func (b Backend) String() string {
	switch b {
	case BackendClock:
		return "clock"
	case BackendHardware:
		return "hardware"
	default:
		return "unknown"
	}
}

// HardwareAvailable reports whether this architecture has a hardware tick
// counter that a TimeSource can use.
func HardwareAvailable() bool {
	return tick.Available()
}

// TimeSource is the clock facade shared by all timers.
//
// The backend and its rate are chosen once, in NewTimeSource. If a hardware
// read fails at runtime the source silently and permanently falls back to
// the monotonic clock; Degraded reports when that has happened. After the
// switch, monotonic nanoseconds are scaled to the calibrated rate and
// continued from the last hardware reading, so Now never decreases and a
// measurement spanning the switch stays in the same units.
//
// A TimeSource is safe for concurrent use.
type TimeSource struct {
	backend Backend
	name    string
	read    func() uint64
	rate    float64
	last    atomic.Uint64
	anchor  atomic.Pointer[anchor]
}

// anchor joins the hardware tick line to the monotonic clock at the moment
// a hardware source degraded.
type anchor struct {
	ticks Ticks
	nanos uint64
}

// extend returns the anchor's ticks plus the nanoseconds elapsed since it,
// scaled to rate.
func (a *anchor) extend(rate float64) Ticks {
	now := tick.Nanotime()
	if now <= a.nanos {
		return a.ticks
	}
	d := float64(now-a.nanos) * rate / tick.NanosPerSecond
	if d >= math.MaxUint64 {
		return math.MaxUint64
	}
	return addSat(a.ticks, Ticks(d))
}

var _ Clock = (*TimeSource)(nil)

// NewTimeSource inspects the CPU and returns a TimeSource using the best
// available backend.
//
// On the hardware path the counter rate is the architecturally declared
// frequency, or is measured by sleeping for the calibration interval. This
// blocks for roughly interval × rounds (30ms by default). Construct one
// source at program start and pass it to timers, or use Default.
func NewTimeSource(opts ...Option) *TimeSource {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(cfg)
	}

	if cfg.fallback || !tick.Available() {
		return newClockSource()
	}

	rate := float64(tick.Frequency())
	if rate == 0 {
		rate = tick.Calibrate(tick.Read, cfg.calibrationInterval, cfg.calibrationRounds)
	}
	return newHardwareSource(tick.Name(), tick.Read, rate)
}

func newClockSource() *TimeSource {
	return &TimeSource{
		backend: BackendClock,
		name:    "nanotime",
		read:    tick.Nanotime,
		rate:    tick.NanosPerSecond,
	}
}

// newHardwareSource falls back to the monotonic clock if the measured rate
// is unusable.
func newHardwareSource(name string, read func() uint64, rate float64) *TimeSource {
	if rate <= 0 || math.IsNaN(rate) || math.IsInf(rate, 0) {
		return newClockSource()
	}
	return &TimeSource{
		backend: BackendHardware,
		name:    name,
		read:    read,
		rate:    rate,
	}
}

var defaultSource = sync.OnceValue(func() *TimeSource {
	return NewTimeSource()
})

// Default returns the process-wide TimeSource, creating it on first use.
//
// Concurrent first callers block until the single initialisation finishes
// and all observe the same source.
func Default() *TimeSource {
	return defaultSource()
}

// Now returns the current reading of the active backend.
func (s *TimeSource) Now() Ticks {
	if s.backend == BackendClock {
		return Ticks(tick.Nanotime())
	}
	if a := s.anchor.Load(); a != nil {
		return a.extend(s.rate)
	}
	if v := s.read(); v != 0 {
		s.last.Store(v)
		return Ticks(v)
	}
	// A zero counter only comes from a failed read. The first goroutine to
	// see one sets the anchor; the rest continue from it.
	s.anchor.CompareAndSwap(nil, &anchor{ticks: Ticks(s.last.Load()), nanos: tick.Nanotime()})
	return s.anchor.Load().extend(s.rate)
}

// TicksPerSecond returns the conversion rate of Now. It does not change
// when a hardware source degrades.
func (s *TimeSource) TicksPerSecond() float64 {
	return s.rate
}

// Backend returns the backend currently in use.
func (s *TimeSource) Backend() Backend {
	if s.Degraded() {
		return BackendClock
	}
	return s.backend
}

// Name returns the instruction or clock the source reads, for diagnostics.
func (s *TimeSource) Name() string {
	if s.Degraded() {
		return "nanotime"
	}
	return s.name
}

// Degraded reports whether a hardware source has fallen back to the
// monotonic clock after a failed read.
func (s *TimeSource) Degraded() bool {
	return s.anchor.Load() != nil
}

// String describes the source, e.g. "rdtscp (hardware, 2.9 GHz)".
func (s *TimeSource) String() string {
	return s.Name() + " (" + s.Backend().String() + ", " + formatRate(s.TicksPerSecond()) + ")"
}

// clockOrDefault resolves a timer's clock.
func clockOrDefault(c Clock) Clock {
	if c == nil {
		return Default()
	}
	return c
}
