package cputimer_test

import (
	"math"
	"strings"
	"testing"

	"github.com/randomizedcoder/cputimer"
)

func TestAccTimer_Additivity(t *testing.T) {
	clock := newFakeClock()
	timer := cputimer.NewAccTimer(clock, "")

	deltas := []cputimer.Ticks{3, 17, 0, 250, 1}
	var want cputimer.Ticks
	for _, d := range deltas {
		timer.Start()
		clock.Advance(d)
		if got := timer.Stop(); got != d {
			t.Errorf("expected Stop() = %d, got %d", d, got)
		}
		if got := timer.LastTicks(); got != d {
			t.Errorf("expected LastTicks() = %d, got %d", d, got)
		}
		want += d
	}

	if got := timer.TotalTicks(); got != want {
		t.Errorf("expected TotalTicks() = %d, got %d", want, got)
	}
	if got := timer.TotalSeconds(); got != float64(want)/clock.rate {
		t.Errorf("expected TotalSeconds() = %f, got %f", float64(want)/clock.rate, got)
	}
}

func TestAccTimer_StopWithoutStart(t *testing.T) {
	clock := newFakeClock()
	timer := cputimer.NewAccTimer(clock, "")

	timer.Start()
	clock.Advance(9)
	timer.Stop()
	clock.Advance(100)

	if got := timer.Stop(); got != 0 {
		t.Errorf("expected Stop() = 0 when idle, got %d", got)
	}
	if got := timer.TotalTicks(); got != 9 {
		t.Errorf("expected TotalTicks() = 9 after idle Stop(), got %d", got)
	}
}

func TestAccTimer_UnmatchedStart(t *testing.T) {
	clock := newFakeClock()
	timer := cputimer.NewAccTimer(clock, "")

	timer.Start()
	clock.Advance(100)

	if got := timer.TotalTicks(); got != 0 {
		t.Errorf("expected a pending Start() to contribute nothing, got %d", got)
	}
}

func TestAccTimer_Reset(t *testing.T) {
	clock := newFakeClock()
	timer := cputimer.NewAccTimer(clock, "")

	for i := 0; i < 3; i++ {
		timer.Start()
		clock.Advance(11)
		timer.Stop()
		timer.Reset()

		if got := timer.TotalTicks(); got != 0 {
			t.Fatalf("expected TotalTicks() = 0 after Reset(), got %d", got)
		}
	}

	timer.Start()
	timer.Reset()
	clock.Advance(5)
	if got := timer.Stop(); got != 0 {
		t.Errorf("expected Reset() to abandon the pending Start(), got %d", got)
	}
}

func TestAccTimer_Saturates(t *testing.T) {
	clock := newFakeClock()
	timer := cputimer.NewAccTimer(clock, "")

	timer.Start()
	clock.Advance(math.MaxUint64 - 1000)
	timer.Stop()
	timer.Start()
	clock.Advance(5000)
	timer.Stop()

	if got := timer.TotalTicks(); got != math.MaxUint64 {
		t.Errorf("expected TotalTicks() to saturate, got %d", got)
	}
}

func TestCountingTimer_ZeroOccurrences(t *testing.T) {
	timer := cputimer.NewCountingTimer(newFakeClock(), "")

	if timer.Occurrences() != 0 {
		t.Errorf("expected Occurrences() = 0, got %d", timer.Occurrences())
	}
	if timer.AverageTicks() != 0 {
		t.Errorf("expected AverageTicks() = 0, got %d", timer.AverageTicks())
	}
	if timer.AverageSeconds() != 0 {
		t.Errorf("expected AverageSeconds() = 0, got %f", timer.AverageSeconds())
	}
}

func TestCountingTimer_Average(t *testing.T) {
	clock := newFakeClock()
	timer := cputimer.NewCountingTimer(clock, "")

	for _, d := range []cputimer.Ticks{3, 3, 4} {
		timer.Start()
		clock.Advance(d)
		timer.Stop()
	}

	if timer.Occurrences() != 3 {
		t.Errorf("expected Occurrences() = 3, got %d", timer.Occurrences())
	}
	if timer.TotalTicks() != 10 {
		t.Errorf("expected TotalTicks() = 10, got %d", timer.TotalTicks())
	}
	// Integer division truncates: 10 / 3 = 3
	if timer.AverageTicks() != 3 {
		t.Errorf("expected AverageTicks() = 3, got %d", timer.AverageTicks())
	}
	want := 10.0 / clock.rate / 3
	if got := timer.AverageSeconds(); math.Abs(got-want) > 1e-12 {
		t.Errorf("expected AverageSeconds() = %g, got %g", want, got)
	}
}

func TestCountingTimer_StopWithoutStart(t *testing.T) {
	clock := newFakeClock()
	timer := cputimer.NewCountingTimer(clock, "")

	timer.Start()
	clock.Advance(8)
	timer.Stop()

	if got := timer.Stop(); got != 0 {
		t.Errorf("expected Stop() = 0 when idle, got %d", got)
	}
	if timer.Occurrences() != 1 {
		t.Errorf("expected idle Stop() not to count, got %d occurrences", timer.Occurrences())
	}
	if timer.TotalTicks() != 8 {
		t.Errorf("expected idle Stop() not to add, got %d", timer.TotalTicks())
	}
}

func TestCountingTimer_ZeroTickOccurrence(t *testing.T) {
	clock := newFakeClock()
	timer := cputimer.NewCountingTimer(clock, "")

	// A region shorter than one tick is still an occurrence
	timer.Start()
	timer.Stop()

	if timer.Occurrences() != 1 {
		t.Errorf("expected Occurrences() = 1, got %d", timer.Occurrences())
	}
}

func TestCountingTimer_Reset(t *testing.T) {
	clock := newFakeClock()
	timer := cputimer.NewCountingTimer(clock, "")

	timer.Start()
	clock.Advance(8)
	timer.Stop()
	timer.Reset()

	if timer.Occurrences() != 0 || timer.TotalTicks() != 0 {
		t.Errorf("expected Reset() to clear, got %d ticks over %d occurrences", timer.TotalTicks(), timer.Occurrences())
	}
}

func TestCountingTimer_String(t *testing.T) {
	clock := newFakeClock()
	timer := cputimer.NewCountingTimer(clock, "lookup")

	for i := 0; i < 4; i++ {
		timer.Start()
		clock.Advance(2500)
		timer.Stop()
	}

	s := timer.String()
	for _, want := range []string{"lookup: ", "10,000 ticks", "4 occurrences", "avg 2,500 ticks"} {
		if !strings.Contains(s, want) {
			t.Errorf("expected String() %q to contain %q", s, want)
		}
	}
}
