package cputimer

import (
	"math"
	"math/bits"
	"strconv"
	"time"

	"github.com/dustin/go-humanize"
)

// Ticks is a count of clock backend units.
//
// Differences are computed with wrapping unsigned subtraction, so a counter
// wrap within a measurement still yields the right delta. A wrap is not
// otherwise detected.
type Ticks uint64

// Seconds converts t to seconds at the given rate. A non-positive rate
// yields 0.
func (t Ticks) Seconds(ticksPerSecond float64) float64 {
	if ticksPerSecond <= 0 {
		return 0
	}
	return float64(t) / ticksPerSecond
}

// Duration converts t to a time.Duration at the given rate, saturating at
// the largest representable duration.
func (t Ticks) Duration(ticksPerSecond float64) time.Duration {
	ns := t.Seconds(ticksPerSecond) * float64(time.Second)
	if ns >= math.MaxInt64 {
		return time.Duration(math.MaxInt64)
	}
	return time.Duration(ns)
}

// String formats t with thousands separators.
func (t Ticks) String() string {
	if t > math.MaxInt64 {
		return strconv.FormatUint(uint64(t), 10)
	}
	return humanize.Comma(int64(t))
}

// since returns the ticks from start to now.
func since(start, now Ticks) Ticks {
	return now - start
}

// Add returns t + d, saturating at math.MaxUint64. Every accumulated total
// in this package is summed this way.
func (t Ticks) Add(d Ticks) Ticks {
	sum, carry := bits.Add64(uint64(t), uint64(d), 0)
	if carry != 0 {
		return math.MaxUint64
	}
	return Ticks(sum)
}

func addSat(a, b Ticks) Ticks {
	return a.Add(b)
}
