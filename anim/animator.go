package anim

import "math"
import "time"
import "errors"

import "github.com/tinne26/wface/ease"

// Returned when trying to animate toward NaN or a value outside [0, 1].
var ErrInvalidTarget = errors.New("invalid animation target")

// The ambient entry curve reaches its target at this fraction of the
// transition duration and then holds.
const AmbientEntryHold = 0.9

var ambientEntryEasing = ease.HoldFrom(ease.CubicInOut, AmbientEntryHold)

// Returns the easing curve for a transition into (entering == true)
// or out of ambient mode.
func ForAmbient(entering bool) ease.Func {
	if entering { return ambientEntryEasing }
	return ease.CubicInOut
}

// Drives a single scalar in [0, 1] with at most one tween in flight.
//
// The zero value is an animator settled at 0.
type Animator struct {
	tween Tween
	active bool
	value float64 // settled value, only meaningful when !active
}

// Creates an animator settled at the given value. It panics if the
// value is invalid.
func New(initial float64) *Animator {
	err := validateTarget(initial)
	if err != nil { panic(err) }
	return &Animator{ value: initial }
}

// Starts a transition from the current value toward the given target,
// cancelling any tween in flight. If the animator is already settled
// at the target or moving toward it, the call is a no-op. If the
// sampled value already equals the target, the animator settles
// there without starting a tween.
//
// Returns [ErrInvalidTarget] if the target is NaN or outside [0, 1].
func (self *Animator) StartTransition(target float64, duration time.Duration, easing ease.Func, now time.Time) error {
	err := validateTarget(target)
	if err != nil { return err }
	if self.Target() == target { return nil }

	current := self.Sample(now)
	if duration <= 0 || current == target {
		self.active = false
		self.value = target
		return nil
	}
	self.tween = Tween{
		From: current,
		To: target,
		Start: now,
		Duration: duration,
		Easing: easing,
	}
	self.active = true
	return nil
}

// Sets the value directly, cancelling any tween in flight. Used
// in headless mode, where nothing animates.
func (self *Animator) Snap(target float64) error {
	err := validateTarget(target)
	if err != nil { return err }
	self.active = false
	self.value = target
	return nil
}

// Returns the value at the given time. Tweens that have completed
// settle the animator at their target.
func (self *Animator) Sample(now time.Time) float64 {
	if !self.active { return self.value }
	if self.tween.Done(now) {
		self.active = false
		self.value = self.tween.To
		return self.value
	}
	return self.tween.Value(now)
}

// Returns whether a tween is still in flight at the given time.
func (self *Animator) InFlight(now time.Time) bool {
	return self.active && !self.tween.Done(now)
}

// Returns the value the animator is settled at or moving toward.
func (self *Animator) Target() float64 {
	if self.active { return self.tween.To }
	return self.value
}

func validateTarget(target float64) error {
	if math.IsNaN(target) || target < 0 || target > 1 {
		return ErrInvalidTarget
	}
	return nil
}
