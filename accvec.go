package cputimer

import (
	"math"
	"slices"
	"strconv"
	"strings"
)

// Slot is the accumulated ticks and occurrence count of one AccVec branch.
type Slot struct {
	Total Ticks
	Count uint64
}

// Average returns Total divided by Count, truncated, or 0 for an empty slot.
func (s Slot) Average() Ticks {
	if s.Count == 0 {
		return 0
	}
	return s.Total / Ticks(s.Count)
}

func (s *Slot) add(delta Ticks) {
	s.Total = addSat(s.Total, delta)
	if s.Count != math.MaxUint64 {
		s.Count++
	}
}

// AccVec accumulates the ticks taken by different branches of code from a
// common start point, counting how often each branch is taken.
//
// Start is called first. When a branch completes it calls Acc with its
// index, adding the ticks since Start to that slot; Acc does not move the
// start, so several branches may be accumulated against one Start.
// AccRestart does move it, timing consecutive stages. Push and PushRestart
// use the next slot in sequence, growing the store as needed, so repeated
// runs of the same code path line up slot by slot:
//
//	v := cputimer.NewAccVec(src, "stages", 0)
//	for _, item := range items {
//		v.Start()
//		decode(item)
//		v.PushRestart() // slot 0
//		validate(item)
//		v.PushRestart() // slot 1
//	}
//
// Calls before the first Start record nothing. The zero value is ready to
// use and reads Default. AccVec is not safe for concurrent use.
type AccVec struct {
	clock   Clock
	name    string
	start   Ticks
	started bool
	index   int
	slots   []Slot
}

// NewAccVec creates an AccVec with capacity slots already allocated for
// Acc and AccRestart. A nil clock means Default.
func NewAccVec(clock Clock, name string, capacity int) *AccVec {
	return &AccVec{
		clock: clock,
		name:  name,
		slots: make([]Slot, max(capacity, 0)),
	}
}

// Start records the common start point and rewinds Push to slot 0.
func (v *AccVec) Start() {
	v.clock = clockOrDefault(v.clock)
	v.start = v.clock.Now()
	v.started = true
	v.index = 0
}

// Acc adds the ticks since Start to slot i. An index outside the store is
// ignored.
func (v *AccVec) Acc(i int) {
	if !v.started || i < 0 || i >= len(v.slots) {
		return
	}
	v.slots[i].add(since(v.start, v.clock.Now()))
}

// AccRestart adds the ticks since Start to slot i and moves the start to
// now. An index outside the store only restarts.
func (v *AccVec) AccRestart(i int) {
	if !v.started {
		return
	}
	now := v.clock.Now()
	if i >= 0 && i < len(v.slots) {
		v.slots[i].add(since(v.start, now))
	}
	v.start = now
}

// Push accumulates the ticks since Start into the next slot and returns
// its index, or -1 before the first Start.
func (v *AccVec) Push() int {
	if !v.started {
		return -1
	}
	n := v.next()
	v.Acc(n)
	return n
}

// PushRestart is Push followed by moving the start to now.
func (v *AccVec) PushRestart() int {
	if !v.started {
		return -1
	}
	n := v.next()
	v.AccRestart(n)
	return n
}

// next claims the next slot index, growing the store if needed.
func (v *AccVec) next() int {
	n := v.index
	if n >= len(v.slots) {
		v.slots = append(v.slots, Slot{})
	}
	v.index++
	return n
}

// Slots returns a copy of the slots up to the last one pushed since Start.
// The store may hold more, from earlier runs or from Acc.
func (v *AccVec) Slots() []Slot {
	return slices.Clone(v.slots[:v.index])
}

// AllSlots returns a copy of every slot in the store.
func (v *AccVec) AllSlots() []Slot {
	return slices.Clone(v.slots)
}

// Clear empties the store and forgets the start.
func (v *AccVec) Clear() {
	v.slots = v.slots[:0]
	v.index = 0
	v.start = 0
	v.started = false
}

// Name returns the name given at construction.
func (v *AccVec) Name() string {
	return v.name
}

// String formats every slot as (total, count, average), with "-" as the
// average of an empty slot.
func (v *AccVec) String() string {
	var b strings.Builder
	b.WriteByte('[')
	for i, s := range v.slots {
		if i != 0 {
			b.WriteString(", ")
		}
		b.WriteByte('(')
		b.WriteString(strconv.FormatUint(uint64(s.Total), 10))
		b.WriteString(", ")
		b.WriteString(strconv.FormatUint(s.Count, 10))
		b.WriteString(", ")
		if s.Count == 0 {
			b.WriteByte('-')
		} else {
			b.WriteString(strconv.FormatUint(uint64(s.Average()), 10))
		}
		b.WriteByte(')')
	}
	b.WriteByte(']')
	return describe(v.name, b.String())
}
