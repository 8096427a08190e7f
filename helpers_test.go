package cputimer_test

import "github.com/randomizedcoder/cputimer"

// fakeClock only moves when advanced, so every measurement is exact.
type fakeClock struct {
	now  cputimer.Ticks
	rate float64
}

func newFakeClock() *fakeClock {
	return &fakeClock{now: 1000, rate: 1000}
}

func (c *fakeClock) Now() cputimer.Ticks { return c.now }

func (c *fakeClock) TicksPerSecond() float64 { return c.rate }

func (c *fakeClock) Advance(d cputimer.Ticks) { c.now += d }

// stepClock advances by a fixed step on every read.
type stepClock struct {
	now  cputimer.Ticks
	step cputimer.Ticks
}

func (c *stepClock) Now() cputimer.Ticks {
	c.now += c.step
	return c.now
}

func (c *stepClock) TicksPerSecond() float64 { return 1e9 }
