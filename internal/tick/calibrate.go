package tick

import (
	"slices"
	"time"
)

// Calibrate measures how many counter ticks pass per second.
//
// Each round sleeps for interval and compares the counter delta against the
// monotonic clock; the median of the rounds is returned. The result is
// approximate and can vary with:
//   - CPU frequency scaling (Turbo Boost, SpeedStep) on non-invariant TSCs
//   - Power management states
//   - Thermal throttling
//
// A zero or negative interval or rounds selects the package default.
// Calibrate returns 0 if the counter did not advance.
func Calibrate(read func() uint64, interval time.Duration, rounds int) float64 {
	if interval <= 0 {
		interval = DefaultCalibrationInterval
	}
	if rounds <= 0 {
		rounds = DefaultCalibrationRounds
	}

	// Warm up the read path
	read()
	read()

	rates := make([]float64, 0, rounds)
	for i := 0; i < rounds; i++ {
		start := read()
		t1 := Nanotime()
		time.Sleep(interval)
		end := read()
		t2 := Nanotime()

		if end <= start || t2 <= t1 {
			continue
		}
		cycles := float64(end - start)
		nanos := float64(t2 - t1)
		rates = append(rates, cycles/nanos*NanosPerSecond)
	}
	if len(rates) == 0 {
		return 0
	}

	slices.Sort(rates)
	return rates[len(rates)/2]
}
