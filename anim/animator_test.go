package anim

import "math"
import "time"
import "testing"

import "github.com/tinne26/wface/ease"

var epoch = time.Date(2024, 3, 9, 14, 7, 32, 0, time.UTC)

func TestTweenEndpoints(t *testing.T) {
	tween := Tween{ From: 1, To: 0, Start: epoch, Duration: time.Second, Easing: ease.CubicInOut }
	if tween.Value(epoch) != 1 { t.Fatalf("expected %f, got %f", 1.0, tween.Value(epoch)) }
	if tween.Value(epoch.Add(-time.Hour)) != 1 { t.Fatal("expected From before the start") }
	end := epoch.Add(time.Second)
	if tween.Value(end) != 0 { t.Fatalf("expected %f, got %f", 0.0, tween.Value(end)) }
	if !tween.Done(end) { t.Fatal("expected tween to be done") }
	if tween.Done(end.Add(-time.Millisecond)) { t.Fatal("didn't expect tween to be done") }
}

func TestConvergenceWithoutOvershoot(t *testing.T) {
	curves := map[string]ease.Func{
		"cubic": ease.CubicInOut,
		"circular": ease.CircularInOut,
		"quintic": ease.QuinticInOut,
		"ambient": ForAmbient(true),
	}
	for name, curve := range curves {
		for _, target := range []float64{0, 1} {
			animator := New(1 - target)
			from := animator.Sample(epoch)
			err := animator.StartTransition(target, 300*time.Millisecond, curve, epoch)
			if err != nil { t.Fatalf("%s: unexpected error %v", name, err) }

			if animator.Sample(epoch) != from { t.Fatalf("%s: expected start value %f", name, from) }
			low, high := math.Min(from, target), math.Max(from, target)
			prev := from
			for ms := 1; ms < 300; ms++ {
				value := animator.Sample(epoch.Add(time.Duration(ms)*time.Millisecond))
				if value < low || value > high {
					t.Fatalf("%s: value %f out of [%f, %f] at %dms", name, value, low, high, ms)
				}
				if (target > from && value < prev) || (target < from && value > prev) {
					t.Fatalf("%s: non-monotonic value at %dms", name, ms)
				}
				prev = value
			}
			end := epoch.Add(300*time.Millisecond)
			if animator.Sample(end) != target { t.Fatalf("%s: expected %f at the end", name, target) }
			if animator.InFlight(end) { t.Fatalf("%s: expected animator to settle", name) }
		}
	}
}

func TestAmbientEntryHolds(t *testing.T) {
	animator := New(1)
	_ = animator.StartTransition(0, time.Second, ForAmbient(true), epoch)
	held := animator.Sample(epoch.Add(950*time.Millisecond))
	if held != 0 { t.Fatalf("expected the entry curve to hold at 0, got %f", held) }
	if !animator.InFlight(epoch.Add(950*time.Millisecond)) {
		t.Fatal("expected the tween to still be in flight while holding")
	}
}

func TestInvalidTargets(t *testing.T) {
	animator := New(1)
	for _, target := range []float64{math.NaN(), -0.1, 1.5, math.Inf(1)} {
		err := animator.StartTransition(target, time.Second, ease.CubicInOut, epoch)
		if err != ErrInvalidTarget { t.Fatalf("expected ErrInvalidTarget for %f, got %v", target, err) }
		err = animator.Snap(target)
		if err != ErrInvalidTarget { t.Fatalf("expected ErrInvalidTarget on snap for %f, got %v", target, err) }
	}
	if animator.Sample(epoch) != 1 { t.Fatal("expected rejected targets to leave the value untouched") }
}

func TestRetargetContinuity(t *testing.T) {
	animator := New(1)
	_ = animator.StartTransition(0, time.Second, ease.CubicInOut, epoch)
	mid := epoch.Add(400*time.Millisecond)
	before := animator.Sample(mid)

	// same direction requests don't restart the tween
	_ = animator.StartTransition(0, time.Second, ease.CubicInOut, mid)
	if animator.tween.Start != epoch { t.Fatal("expected same-target request to be a no-op") }

	_ = animator.StartTransition(1, time.Second, ease.CubicInOut, mid)
	after := animator.Sample(mid)
	if after != before { t.Fatalf("expected continuity on retarget: %f vs %f", before, after) }
	if !animator.InFlight(mid) { t.Fatal("expected new tween in flight") }
	if animator.Target() != 1 { t.Fatal("expected new target") }
	if animator.Sample(mid.Add(time.Second)) != 1 { t.Fatal("expected convergence to new target") }
}

func TestSnap(t *testing.T) {
	animator := New(1)
	_ = animator.StartTransition(0, time.Second, ease.CubicInOut, epoch)
	err := animator.Snap(1)
	if err != nil { t.Fatal(err) }
	if animator.InFlight(epoch) { t.Fatal("expected snap to cancel the tween") }
	if animator.Sample(epoch.Add(500*time.Millisecond)) != 1 { t.Fatal("expected snapped value") }

	var zero Animator
	if zero.Sample(epoch) != 0 { t.Fatal("expected zero animator to be settled at 0") }
}

func TestReturnToCurrentValue(t *testing.T) {
	animator := New(1)
	_ = animator.StartTransition(0, time.Second, ease.CubicInOut, epoch)
	err := animator.StartTransition(1, time.Second, ease.CubicInOut, epoch)
	if err != nil { t.Fatal(err) }
	if animator.InFlight(epoch) { t.Fatal("expected no tween when returning to the current value") }
	if animator.Target() != 1 { t.Fatalf("expected %v, got %v", 1.0, animator.Target()) }
	if animator.Sample(epoch) != 1 { t.Fatalf("expected %v, got %v", 1.0, animator.Sample(epoch)) }
}
