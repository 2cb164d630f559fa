package stepper

import (
	"testing"
	"time"
)

func TestHeuristicCoversElapsedTime(t *testing.T) {
	h := &Heuristic{BaseDt: 3600, Speed: 2e6, MaxSubSteps: 64}

	elapsed := 16 * time.Millisecond
	n, dt := h.Advance(elapsed)

	covered := float64(n) * dt
	target := elapsed.Seconds() * h.Speed
	if covered != target {
		t.Errorf("sub-steps cover %f, target %f", covered, target)
	}
	if n < 1 {
		t.Errorf("expected at least one sub-step, got %d", n)
	}
}

func TestHeuristicNeverZeroSteps(t *testing.T) {
	h := NewHeuristic()

	for _, elapsed := range []time.Duration{0, time.Nanosecond, time.Microsecond} {
		n, _ := h.Advance(elapsed)
		if n < 1 {
			t.Errorf("elapsed %v: got %d sub-steps", elapsed, n)
		}
	}
}

func TestHeuristicCapsSubSteps(t *testing.T) {
	h := &Heuristic{BaseDt: 1, Speed: 1e6, MaxSubSteps: 16}

	// a multi-second stall must not run millions of sub-steps
	n, dt := h.Advance(5 * time.Second)
	if n != 16 {
		t.Errorf("expected cap of 16, got %d", n)
	}
	if dt <= 0 {
		t.Errorf("dt must stay positive, got %f", dt)
	}
}

func TestAccumulatorFixedDt(t *testing.T) {
	a := &Accumulator{Dt: 100, Speed: 1e4, MaxSubSteps: 64}

	for i := 0; i < 10; i++ {
		_, dt := a.Advance(17 * time.Millisecond)
		if dt != 100 {
			t.Fatalf("tick %d: dt %f, accumulator must never stretch dt", i, dt)
		}
	}
}

func TestAccumulatorCarriesLeftover(t *testing.T) {
	a := &Accumulator{Dt: 100, Speed: 1e4, MaxSubSteps: 64}

	// each tick brings 150 units; steps alternate 1,2,1,2,... and the
	// long-run average must match the supplied time
	total := 0
	ticks := 40
	for i := 0; i < ticks; i++ {
		n, _ := a.Advance(15 * time.Millisecond)
		total += n
	}

	supplied := float64(ticks) * 0.015 * a.Speed
	consumed := float64(total) * a.Dt
	if diff := consumed - supplied; diff > a.Dt || diff < -a.Dt {
		t.Errorf("consumed %f vs supplied %f", consumed, supplied)
	}
}

func TestAccumulatorMinimumOneStep(t *testing.T) {
	a := &Accumulator{Dt: 1000, Speed: 1, MaxSubSteps: 64}

	n, _ := a.Advance(time.Millisecond)
	if n != 1 {
		t.Errorf("expected forward progress on a tiny tick, got %d", n)
	}
}
