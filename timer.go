package cputimer

import "fmt"

// Timer is the start/stop contract shared by ElapsedTimer, AccTimer and
// CountingTimer.
type Timer interface {
	// Start records the current tick as the start mark. Starting a running
	// timer overwrites the mark.
	Start()

	// Stop ends the measurement and returns the ticks since Start. On a
	// timer that is not running it returns 0 and changes nothing.
	Stop() Ticks

	// Reset returns the timer to its initial state.
	Reset()
}

var (
	_ Timer = (*ElapsedTimer)(nil)
	_ Timer = (*AccTimer)(nil)
	_ Timer = (*CountingTimer)(nil)
)

// ElapsedTimer measures the ticks between a Start and a Stop.
//
// The zero value is ready to use and reads Default. ElapsedTimer is not
// safe for concurrent use.
type ElapsedTimer struct {
	clock   Clock
	name    string
	start   Ticks
	running bool
	elapsed Ticks
}

// NewElapsedTimer creates an ElapsedTimer reading clock. A nil clock means
// Default. The name is only used by String.
func NewElapsedTimer(clock Clock, name string) *ElapsedTimer {
	return &ElapsedTimer{clock: clock, name: name}
}

// Start records the current tick as the start mark.
func (t *ElapsedTimer) Start() {
	t.clock = clockOrDefault(t.clock)
	t.start = t.clock.Now()
	t.running = true
}

// Stop stores and returns the ticks since Start, leaving the timer idle.
// Without a preceding Start it returns 0 and keeps the last elapsed value.
func (t *ElapsedTimer) Stop() Ticks {
	if !t.running {
		return 0
	}
	t.elapsed = since(t.start, t.clock.Now())
	t.running = false
	return t.elapsed
}

// Elapsed returns the ticks since Start without stopping the timer, or 0
// if it is not running.
func (t *ElapsedTimer) Elapsed() Ticks {
	if !t.running {
		return 0
	}
	return since(t.start, t.clock.Now())
}

// Lap stores and returns the ticks since Start and moves the start mark to
// now, so consecutive laps measure consecutive regions. It returns 0 if
// the timer is not running.
func (t *ElapsedTimer) Lap() Ticks {
	if !t.running {
		return 0
	}
	now := t.clock.Now()
	t.elapsed = since(t.start, now)
	t.start = now
	return t.elapsed
}

// Reset clears the start mark and the elapsed value.
func (t *ElapsedTimer) Reset() {
	t.start = 0
	t.running = false
	t.elapsed = 0
}

// Running reports whether Start has been called without a matching Stop.
func (t *ElapsedTimer) Running() bool {
	return t.running
}

// ElapsedTicks returns the value computed by the last Stop or Lap.
func (t *ElapsedTimer) ElapsedTicks() Ticks {
	return t.elapsed
}

// ElapsedSeconds returns ElapsedTicks converted to seconds.
func (t *ElapsedTimer) ElapsedSeconds() float64 {
	return t.seconds(t.elapsed)
}

// Name returns the name given at construction.
func (t *ElapsedTimer) Name() string {
	return t.name
}

// Clock returns the clock the timer reads.
func (t *ElapsedTimer) Clock() Clock {
	return clockOrDefault(t.clock)
}

func (t *ElapsedTimer) String() string {
	return describe(t.name, fmt.Sprintf("%v ticks (%s)", t.elapsed, formatSeconds(t.ElapsedSeconds())))
}

// seconds converts ticks at the timer's rate. Zero never touches the clock,
// so an unused zero-value timer does not initialise Default.
func (t *ElapsedTimer) seconds(ticks Ticks) float64 {
	if ticks == 0 {
		return 0
	}
	return ticks.Seconds(t.Clock().TicksPerSecond())
}
