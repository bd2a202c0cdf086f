// The anim subpackage drives the face's time-scale, the single [0, 1]
// scalar that interpolates between the ambient (0) and interactive (1)
// looks of a face.
//
// Tweens are plain values and sampling them is a pure function of the
// current time. Retargeting a transition simply replaces the tween with
// a new one starting from the currently sampled value.
package anim

import "time"

import "github.com/tinne26/wface/ease"

// A time-based interpolation from one value to another.
type Tween struct {
	From float64
	To float64
	Start time.Time
	Duration time.Duration
	Easing ease.Func // nil means linear
}

// Returns the progress of the tween at the given time, in [0, 1].
func (self *Tween) Progress(now time.Time) float64 {
	if self.Duration <= 0 { return 1 }
	elapsed := now.Sub(self.Start)
	if elapsed <= 0 { return 0 }
	if elapsed >= self.Duration { return 1 }
	return float64(elapsed)/float64(self.Duration)
}

// Returns the value of the tween at the given time. Before the start
// it returns From, after the end it returns To exactly.
func (self *Tween) Value(now time.Time) float64 {
	progress := self.Progress(now)
	if progress >= 1 { return self.To }
	if progress <= 0 { return self.From }
	eased := progress
	if self.Easing != nil { eased = self.Easing(progress) }
	return ease.Lerp(self.From, self.To, eased)
}

// Returns whether the tween has reached its end at the given time.
func (self *Tween) Done(now time.Time) bool {
	return self.Progress(now) >= 1
}
