package cputimer

import (
	"fmt"
	"slices"
	"strings"
)

// AccTrace runs the same sequence of marked regions many times and sums
// each step position by position across runs.
//
// Each Start begins a new run and discards the previous one; Acc folds the
// current run into the accumulated trace. Steps are matched by position,
// not by label, so every run should mark the same sequence. The zero value
// is ready to use and reads Default. AccTrace is not safe for concurrent
// use.
//
//	at := cputimer.NewAccTrace(src, "request")
//	for range requests {
//		at.Start()
//		parse()
//		at.Mark("parse")
//		execute()
//		at.Mark("execute")
//		at.Acc()
//	}
type AccTrace struct {
	trace Trace
	acc   []Entry
	runs  uint64
}

// NewAccTrace creates an empty AccTrace reading clock. A nil clock means
// Default.
func NewAccTrace(clock Clock, name string) *AccTrace {
	return &AccTrace{trace: Trace{clock: clock, name: name}}
}

// Start begins a new run, discarding the entries of the last one.
func (a *AccTrace) Start() {
	a.trace.Clear()
	a.trace.Start()
}

// Mark records the ticks since the previous Start or Mark in the current
// run. Without a Start it records nothing and returns 0.
func (a *AccTrace) Mark(label string) Ticks {
	return a.trace.Mark(label)
}

// Record appends an externally measured step to the current run.
func (a *AccTrace) Record(label string, ticks Ticks) {
	a.trace.Record(label, ticks)
}

// Acc adds the current run to the accumulated trace, step i onto step i,
// saturating. Steps beyond the accumulated length are appended under the
// run's label.
func (a *AccTrace) Acc() {
	for i, e := range a.trace.entries {
		if i == len(a.acc) {
			a.acc = append(a.acc, Entry{Label: e.Label})
		}
		a.acc[i].Ticks = addSat(a.acc[i].Ticks, e.Ticks)
	}
	a.runs++
}

// Last returns a copy of the current run's entries.
func (a *AccTrace) Last() []Entry {
	return a.trace.Entries()
}

// Accumulated returns a copy of the per-step totals.
func (a *AccTrace) Accumulated() []Entry {
	return slices.Clone(a.acc)
}

// Average returns the per-step totals divided by Runs, truncating. It is
// empty before the first Acc.
func (a *AccTrace) Average() []Entry {
	if a.runs == 0 {
		return nil
	}
	avg := slices.Clone(a.acc)
	for i := range avg {
		avg[i].Ticks /= Ticks(a.runs)
	}
	return avg
}

// Runs returns how many times Acc has been called since the last Clear.
func (a *AccTrace) Runs() uint64 {
	return a.runs
}

// Clear drops the current run, the totals and the run count.
func (a *AccTrace) Clear() {
	a.trace.Clear()
	a.acc = a.acc[:0]
	a.runs = 0
}

// Name returns the name given at construction.
func (a *AccTrace) Name() string {
	return a.trace.name
}

// Clock returns the clock the trace reads.
func (a *AccTrace) Clock() Clock {
	return a.trace.Clock()
}

func (a *AccTrace) String() string {
	steps := make([]string, len(a.acc))
	for i, e := range a.acc {
		steps[i] = fmt.Sprintf("%s %v", e.Label, e.Ticks)
	}
	return describe(a.trace.name, fmt.Sprintf("%d runs, [%s]", a.runs, strings.Join(steps, ", ")))
}
