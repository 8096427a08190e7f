package cputimer

import (
	"time"

	"github.com/randomizedcoder/cputimer/internal/tick"
)

// config holds the settings used by NewTimeSource.
type config struct {
	fallback            bool
	calibrationInterval time.Duration
	calibrationRounds   int
}

// Option is a functional option for configuring a TimeSource.
type Option func(*config)

// defaultConfig returns the default configuration.
func defaultConfig() *config {
	return &config{
		calibrationInterval: tick.DefaultCalibrationInterval,
		calibrationRounds:   tick.DefaultCalibrationRounds,
	}
}

// WithFallback forces the monotonic clock backend even when a hardware
// counter is available.
func WithFallback() Option {
	return func(c *config) {
		c.fallback = true
	}
}

// WithCalibration sets the sleep interval and number of rounds used to
// measure the hardware counter rate. Non-positive values keep the defaults
// (10ms, 3 rounds). It has no effect when the architecture declares the
// counter frequency.
func WithCalibration(interval time.Duration, rounds int) Option {
	return func(c *config) {
		if interval > 0 {
			c.calibrationInterval = interval
		}
		if rounds > 0 {
			c.calibrationRounds = rounds
		}
	}
}
