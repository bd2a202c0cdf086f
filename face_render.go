package wface

import "time"
import "image"
import "image/draw"

import "github.com/tinne26/wface/layout"

// Draws a frame of the face for the given time onto the target,
// within the given bounds. The face is centered on the bounds and
// scaled to fit them.
//
// Queued notifications are applied before drawing. Frames with
// degenerate bounds are skipped. Errors while drawing individual
// elements are reported through [Hooks] and the element is skipped.
func (self *Face) Render(target draw.Image, now time.Time, bounds image.Rectangle) {
	self.drainEvents(now)

	bounds = bounds.Intersect(target.Bounds())
	if bounds.Empty() {
		self.stats.SkippedFrames += 1
		self.trace(EventFrameSkipped, bounds.String(), nil, 0)
		return
	}

	timeScale := self.animator.Sample(now)
	self.machine.Advance(self.animator.InFlight(now))

	draw.Draw(target, bounds, image.Black, image.Point{}, draw.Src)

	renderScale := layout.Scale(bounds)
	if renderScale != self.renderScale || !self.preloaded {
		self.preload(renderScale)
	}

	frame := layout.Compute(layout.Input{
		Config: self.config,
		TimeScale: timeScale,
		Ambient: self.ambientSettled(),
	})
	self.drawTime(target, bounds, frame, now)
	self.drawComposite(target, bounds, frame, now)
	if self.config.DebugOverlay {
		self.drawDebugOverlay(target, bounds, timeScale)
	}

	self.frameCounter += 1
	self.stats.Frames += 1
}

// Returns whether the platform should keep scheduling frames at the
// animation rate: true while a time-scale transition is in flight or
// notifications are waiting. Headless faces never animate.
func (self *Face) ShouldAnimate(now time.Time) bool {
	if self.machine.IsHeadless() { return false }
	if self.animator.InFlight(now) { return true }
	if self.machine.State().Transitioning() { return true }
	self.eventsMutex.Lock()
	pending := !self.pending.empty()
	self.eventsMutex.Unlock()
	return pending
}

// Returns the redraw interval for the current state and style. Zero
// means no periodic redraws (headless mode).
func (self *Face) NextInterval() time.Duration {
	drawsSeconds := layout.DrawsSeconds(self.config.LayoutStyle)
	return self.machine.Interval(self.config.SecondsStyle, drawsSeconds)
}

