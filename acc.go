package cputimer

import "fmt"

// AccTimer accumulates the ticks of many start/stop cycles.
//
// A Start without a matching Stop contributes nothing. The total saturates
// rather than wraps. The zero value is ready to use and reads Default.
// AccTimer is not safe for concurrent use.
type AccTimer struct {
	timer ElapsedTimer
	total Ticks
}

// NewAccTimer creates an AccTimer reading clock. A nil clock means Default.
func NewAccTimer(clock Clock, name string) *AccTimer {
	return &AccTimer{timer: ElapsedTimer{clock: clock, name: name}}
}

// Start records the current tick as the start mark.
func (a *AccTimer) Start() {
	a.timer.Start()
}

// Stop adds the ticks since Start to the total and returns them. Without a
// preceding Start it returns 0 and the total is unchanged.
func (a *AccTimer) Stop() Ticks {
	if !a.timer.running {
		return 0
	}
	delta := a.timer.Stop()
	a.total = addSat(a.total, delta)
	return delta
}

// Reset zeroes the total and abandons any pending Start.
func (a *AccTimer) Reset() {
	a.timer.Reset()
	a.total = 0
}

// Running reports whether Start has been called without a matching Stop.
func (a *AccTimer) Running() bool {
	return a.timer.running
}

// TotalTicks returns the accumulated ticks.
func (a *AccTimer) TotalTicks() Ticks {
	return a.total
}

// TotalSeconds returns TotalTicks converted to seconds.
func (a *AccTimer) TotalSeconds() float64 {
	return a.timer.seconds(a.total)
}

// LastTicks returns the ticks of the most recent completed cycle.
func (a *AccTimer) LastTicks() Ticks {
	return a.timer.elapsed
}

// Name returns the name given at construction.
func (a *AccTimer) Name() string {
	return a.timer.name
}

// Clock returns the clock the timer reads.
func (a *AccTimer) Clock() Clock {
	return a.timer.Clock()
}

func (a *AccTimer) String() string {
	return describe(a.timer.name, fmt.Sprintf("total %v ticks (%s)", a.total, formatSeconds(a.TotalSeconds())))
}

// CountingTimer is an AccTimer that also counts completed cycles, so an
// average per occurrence can be derived.
//
// The zero value is ready to use and reads Default. CountingTimer is not
// safe for concurrent use.
type CountingTimer struct {
	acc         AccTimer
	occurrences uint64
}

// NewCountingTimer creates a CountingTimer reading clock. A nil clock means
// Default.
func NewCountingTimer(clock Clock, name string) *CountingTimer {
	return &CountingTimer{acc: AccTimer{timer: ElapsedTimer{clock: clock, name: name}}}
}

// Start records the current tick as the start mark.
func (c *CountingTimer) Start() {
	c.acc.Start()
}

// Stop adds the ticks since Start to the total, counts one occurrence and
// returns the ticks. Without a preceding Start it returns 0 and neither the
// total nor the count changes.
func (c *CountingTimer) Stop() Ticks {
	if !c.acc.Running() {
		return 0
	}
	delta := c.acc.Stop()
	c.occurrences++
	return delta
}

// Reset zeroes the total and the count and abandons any pending Start.
func (c *CountingTimer) Reset() {
	c.acc.Reset()
	c.occurrences = 0
}

// Running reports whether Start has been called without a matching Stop.
func (c *CountingTimer) Running() bool {
	return c.acc.Running()
}

// Occurrences returns the number of completed start/stop cycles.
func (c *CountingTimer) Occurrences() uint64 {
	return c.occurrences
}

// TotalTicks returns the accumulated ticks.
func (c *CountingTimer) TotalTicks() Ticks {
	return c.acc.total
}

// TotalSeconds returns TotalTicks converted to seconds.
func (c *CountingTimer) TotalSeconds() float64 {
	return c.acc.TotalSeconds()
}

// LastTicks returns the ticks of the most recent completed cycle.
func (c *CountingTimer) LastTicks() Ticks {
	return c.acc.LastTicks()
}

// AverageTicks returns TotalTicks divided by Occurrences, truncated toward
// zero. It is 0 when there have been no occurrences.
func (c *CountingTimer) AverageTicks() Ticks {
	if c.occurrences == 0 {
		return 0
	}
	return c.acc.total / Ticks(c.occurrences)
}

// AverageSeconds returns TotalSeconds divided by Occurrences, or 0 when
// there have been no occurrences.
func (c *CountingTimer) AverageSeconds() float64 {
	if c.occurrences == 0 {
		return 0
	}
	return c.TotalSeconds() / float64(c.occurrences)
}

// Name returns the name given at construction.
func (c *CountingTimer) Name() string {
	return c.acc.Name()
}

// Clock returns the clock the timer reads.
func (c *CountingTimer) Clock() Clock {
	return c.acc.Clock()
}

func (c *CountingTimer) String() string {
	return describe(c.acc.Name(), fmt.Sprintf("total %v ticks (%s) over %d occurrences, avg %v ticks (%s)",
		c.acc.total, formatSeconds(c.TotalSeconds()), c.occurrences,
		c.AverageTicks(), formatSeconds(c.AverageSeconds())))
}
