// Package promtimer feeds cputimer measurements into Prometheus metrics.
//
// The timers here behave exactly like their cputimer counterparts and, on
// each completed Stop, forward the measured seconds to a Prometheus
// observer or counter. Measuring stays as cheap as the underlying timer;
// only the final Observe or Add touches shared state.
//
//	hist := prometheus.NewHistogram(prometheus.HistogramOpts{Name: "decode_seconds"})
//	t := promtimer.NewObserverTimer(nil, hist)
//	t.Start()
//	decode()
//	t.Stop()
package promtimer

import (
	"github.com/prometheus/client_golang/prometheus"

	"github.com/randomizedcoder/cputimer"
)

// ObserverTimer is an ElapsedTimer whose Stop observes the elapsed seconds
// into a Prometheus Observer, typically a Histogram or Summary.
//
// ObserverTimer is not safe for concurrent use; the Observer may be shared.
type ObserverTimer struct {
	timer    cputimer.ElapsedTimer
	observer prometheus.Observer
}

var _ cputimer.Timer = (*ObserverTimer)(nil)

// NewObserverTimer creates an ObserverTimer reading clock. A nil clock
// means cputimer.Default.
func NewObserverTimer(clock cputimer.Clock, o prometheus.Observer) *ObserverTimer {
	t := &ObserverTimer{observer: o}
	t.timer = *cputimer.NewElapsedTimer(clock, "")
	return t
}

// Start records the current tick as the start mark.
func (t *ObserverTimer) Start() {
	t.timer.Start()
}

// Stop returns the ticks since Start and observes them in seconds. Without
// a preceding Start nothing is observed and 0 is returned.
func (t *ObserverTimer) Stop() cputimer.Ticks {
	if !t.timer.Running() {
		return 0
	}
	delta := t.timer.Stop()
	if t.observer != nil {
		t.observer.Observe(t.timer.ElapsedSeconds())
	}
	return delta
}

// Reset abandons any pending Start.
func (t *ObserverTimer) Reset() {
	t.timer.Reset()
}

// ObserveDuration is Stop shaped for defer:
//
//	t.Start()
//	defer t.ObserveDuration()
func (t *ObserverTimer) ObserveDuration() {
	t.Stop()
}

// CounterTimer is an AccTimer whose Stop also adds the elapsed seconds to
// a Prometheus Counter, so the counter tracks the cumulative running time
// of the region.
//
// CounterTimer is not safe for concurrent use; the Counter may be shared.
type CounterTimer struct {
	acc     cputimer.AccTimer
	counter prometheus.Counter
}

var _ cputimer.Timer = (*CounterTimer)(nil)

// NewCounterTimer creates a CounterTimer reading clock. A nil clock means
// cputimer.Default.
func NewCounterTimer(clock cputimer.Clock, c prometheus.Counter) *CounterTimer {
	t := &CounterTimer{counter: c}
	t.acc = *cputimer.NewAccTimer(clock, "")
	return t
}

// Start records the current tick as the start mark.
func (t *CounterTimer) Start() {
	t.acc.Start()
}

// Stop adds the ticks since Start to the local total and their seconds to
// the Counter. Without a preceding Start nothing changes and 0 is returned.
func (t *CounterTimer) Stop() cputimer.Ticks {
	if !t.acc.Running() {
		return 0
	}
	delta := t.acc.Stop()
	if t.counter != nil {
		t.counter.Add(delta.Seconds(t.acc.Clock().TicksPerSecond()))
	}
	return delta
}

// Reset zeroes the local total. The Counter is monotonic and keeps its
// value.
func (t *CounterTimer) Reset() {
	t.acc.Reset()
}

// TotalTicks returns the ticks accumulated since the last Reset.
func (t *CounterTimer) TotalTicks() cputimer.Ticks {
	return t.acc.TotalTicks()
}

// ObserveTrace observes every entry of tr, in seconds, into vec under the
// entry's label as the single label value.
func ObserveTrace(vec prometheus.ObserverVec, tr *cputimer.Trace) {
	rate := tr.Clock().TicksPerSecond()
	for label, ticks := range tr.All() {
		vec.WithLabelValues(label).Observe(ticks.Seconds(rate))
	}
}
