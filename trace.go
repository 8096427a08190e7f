package cputimer

import (
	"bytes"
	"fmt"
	"io"
	"iter"
	"slices"
	"text/tabwriter"
)

// Entry is one labelled measurement in a Trace.
type Entry struct {
	Label string
	Ticks Ticks
}

// Trace is an ordered log of labelled tick measurements, typically the
// chronological sequence of regions a piece of code passed through.
//
// Labels may repeat; each record is a distinct occurrence. Entries are only
// ever removed all at once by Clear. The zero value is ready to use and
// reads Default. Trace is not safe for concurrent use.
//
//	tr := cputimer.NewTrace(src, "request")
//	tr.Start()
//	parse()
//	tr.Mark("parse")
//	execute()
//	tr.Mark("execute")
//	tr.WriteTo(os.Stdout)
type Trace struct {
	clock   Clock
	name    string
	entries []Entry
	mark    Ticks
	marking bool
}

// NewTrace creates an empty Trace reading clock. A nil clock means Default.
func NewTrace(clock Clock, name string) *Trace {
	return &Trace{clock: clock, name: name}
}

// Record appends an entry.
func (t *Trace) Record(label string, ticks Ticks) {
	t.entries = append(t.entries, Entry{Label: label, Ticks: ticks})
}

// Start sets the mark from which the next Mark measures.
func (t *Trace) Start() {
	t.clock = clockOrDefault(t.clock)
	t.mark = t.clock.Now()
	t.marking = true
}

// Mark records the ticks since the previous Start or Mark under label and
// moves the mark to now. Without a preceding Start it records nothing and
// returns 0.
func (t *Trace) Mark(label string) Ticks {
	if !t.marking {
		return 0
	}
	now := t.clock.Now()
	delta := since(t.mark, now)
	t.mark = now
	t.Record(label, delta)
	return delta
}

// Time runs fn, records its duration under label and returns it.
func (t *Trace) Time(label string, fn func()) Ticks {
	t.clock = clockOrDefault(t.clock)
	start := t.clock.Now()
	fn()
	delta := since(start, t.clock.Now())
	t.Record(label, delta)
	return delta
}

// All returns an iterator over the entries in insertion order. Each call
// to the iterator starts from the first entry; iterating does not modify
// the trace.
func (t *Trace) All() iter.Seq2[string, Ticks] {
	return func(yield func(string, Ticks) bool) {
		for _, e := range t.entries {
			if !yield(e.Label, e.Ticks) {
				return
			}
		}
	}
}

// Entries returns a copy of the entries in insertion order.
func (t *Trace) Entries() []Entry {
	return slices.Clone(t.entries)
}

// Len returns the number of entries.
func (t *Trace) Len() int {
	return len(t.entries)
}

// Clear removes every entry and forgets the mark. Capacity is kept.
func (t *Trace) Clear() {
	t.entries = t.entries[:0]
	t.mark = 0
	t.marking = false
}

// TotalTicks returns the sum of all entries, saturating.
func (t *Trace) TotalTicks() Ticks {
	var total Ticks
	for _, e := range t.entries {
		total = addSat(total, e.Ticks)
	}
	return total
}

// TotalSeconds returns TotalTicks converted to seconds.
func (t *Trace) TotalSeconds() float64 {
	return t.seconds(t.TotalTicks())
}

// Name returns the name given at construction.
func (t *Trace) Name() string {
	return t.name
}

// Clock returns the clock the trace reads.
func (t *Trace) Clock() Clock {
	return clockOrDefault(t.clock)
}

// WriteTo writes the entries as an aligned table of label, ticks and
// seconds, followed by a total row.
func (t *Trace) WriteTo(w io.Writer) (int64, error) {
	var buf bytes.Buffer
	tw := tabwriter.NewWriter(&buf, 0, 0, 2, ' ', tabwriter.AlignRight)

	fmt.Fprintf(tw, "%s\tticks\tseconds\t\n", t.heading())
	for _, e := range t.entries {
		fmt.Fprintf(tw, "%s\t%v\t%s\t\n", e.Label, e.Ticks, formatSeconds(t.seconds(e.Ticks)))
	}
	total := t.TotalTicks()
	fmt.Fprintf(tw, "total\t%v\t%s\t\n", total, formatSeconds(t.seconds(total)))

	if err := tw.Flush(); err != nil {
		return 0, err
	}
	return buf.WriteTo(w)
}

func (t *Trace) String() string {
	total := t.TotalTicks()
	return describe(t.name, fmt.Sprintf("%d entries, %v ticks (%s)", len(t.entries), total, formatSeconds(t.seconds(total))))
}

func (t *Trace) heading() string {
	if t.name == "" {
		return "label"
	}
	return t.name
}

func (t *Trace) seconds(ticks Ticks) float64 {
	if ticks == 0 {
		return 0
	}
	return ticks.Seconds(t.Clock().TicksPerSecond())
}
