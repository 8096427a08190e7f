package cputimer_test

import (
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/randomizedcoder/cputimer"
)

func runSteps(at *cputimer.AccTrace, clock *fakeClock, steps ...cputimer.Ticks) {
	labels := []string{"parse", "plan", "execute"}
	at.Start()
	for i, d := range steps {
		clock.Advance(d)
		at.Mark(labels[i])
	}
	at.Acc()
}

func TestAccTrace_AccumulatesByPosition(t *testing.T) {
	clock := newFakeClock()
	at := cputimer.NewAccTrace(clock, "")

	runSteps(at, clock, 4, 6, 1)
	runSteps(at, clock, 2, 8, 3)
	runSteps(at, clock, 3, 7, 2)

	want := []cputimer.Entry{{"parse", 9}, {"plan", 21}, {"execute", 6}}
	if diff := cmp.Diff(want, at.Accumulated()); diff != "" {
		t.Errorf("Accumulated() mismatch (-want +got):\n%s", diff)
	}
	if at.Runs() != 3 {
		t.Errorf("expected Runs() = 3, got %d", at.Runs())
	}

	last := []cputimer.Entry{{"parse", 3}, {"plan", 7}, {"execute", 2}}
	if diff := cmp.Diff(last, at.Last()); diff != "" {
		t.Errorf("Last() mismatch (-want +got):\n%s", diff)
	}

	avg := []cputimer.Entry{{"parse", 3}, {"plan", 7}, {"execute", 2}}
	if diff := cmp.Diff(avg, at.Average()); diff != "" {
		t.Errorf("Average() mismatch (-want +got):\n%s", diff)
	}
}

func TestAccTrace_StartDiscardsLastRun(t *testing.T) {
	clock := newFakeClock()
	at := cputimer.NewAccTrace(clock, "")

	runSteps(at, clock, 5)
	at.Start()

	if len(at.Last()) != 0 {
		t.Errorf("expected Start() to discard the last run, got %v", at.Last())
	}
	if diff := cmp.Diff([]cputimer.Entry{{"parse", 5}}, at.Accumulated()); diff != "" {
		t.Errorf("expected totals to survive Start() (-want +got):\n%s", diff)
	}
}

func TestAccTrace_LongerRunAppends(t *testing.T) {
	clock := newFakeClock()
	at := cputimer.NewAccTrace(clock, "")

	runSteps(at, clock, 1)
	runSteps(at, clock, 1, 2)

	want := []cputimer.Entry{{"parse", 2}, {"plan", 2}}
	if diff := cmp.Diff(want, at.Accumulated()); diff != "" {
		t.Errorf("Accumulated() mismatch (-want +got):\n%s", diff)
	}
}

func TestAccTrace_Saturates(t *testing.T) {
	var at cputimer.AccTrace

	for i := 0; i < 2; i++ {
		at.Start()
		at.Record("big", math.MaxUint64-1)
		at.Acc()
	}

	if got := at.Accumulated()[0].Ticks; got != math.MaxUint64 {
		t.Errorf("expected saturation at MaxUint64, got %d", got)
	}
}

func TestAccTrace_Clear(t *testing.T) {
	clock := newFakeClock()
	at := cputimer.NewAccTrace(clock, "loop")

	runSteps(at, clock, 1, 2)
	at.Clear()

	if at.Runs() != 0 || len(at.Accumulated()) != 0 || len(at.Last()) != 0 {
		t.Errorf("expected an empty AccTrace after Clear(), got %v", at)
	}
	if at.Average() != nil {
		t.Error("expected Average() = nil with no runs")
	}
	if got := at.Mark("late"); got != 0 {
		t.Errorf("expected Mark() after Clear() = 0, got %d", got)
	}
}

func TestAccTrace_String(t *testing.T) {
	clock := newFakeClock()
	at := cputimer.NewAccTrace(clock, "loop")

	runSteps(at, clock, 1000, 2000)

	if got, want := at.String(), "loop: 1 runs, [parse 1,000, plan 2,000]"; got != want {
		t.Errorf("String() = %q, expected %q", got, want)
	}
}
