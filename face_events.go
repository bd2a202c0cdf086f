package wface

import "time"

import "github.com/tinne26/wface/anim"
import "github.com/tinne26/wface/mode"
import "github.com/tinne26/wface/style"
import "github.com/tinne26/wface/complication"

// Notifications waiting for the next frame.
type pendingEvents struct {
	styles []style.Config
	ambient []bool
	headless bool
	hasHeadless bool
	slots []complication.Slot
	hasSlots bool
	highlight Highlight
	hasHighlight bool
}

func (self *pendingEvents) empty() bool {
	return len(self.styles) == 0 && len(self.ambient) == 0 &&
		!self.hasHeadless && !self.hasSlots && !self.hasHighlight
}

// Queues a style configuration change. Safe for concurrent use.
func (self *Face) NotifyStyle(config style.Config) {
	self.eventsMutex.Lock()
	self.pending.styles = append(self.pending.styles, config)
	self.eventsMutex.Unlock()
}

// Queues an ambient mode change. Safe for concurrent use.
func (self *Face) NotifyAmbient(ambient bool) {
	self.eventsMutex.Lock()
	self.pending.ambient = append(self.pending.ambient, ambient)
	self.eventsMutex.Unlock()
}

// Queues a headless mode change. Safe for concurrent use.
func (self *Face) SetHeadless(headless bool) {
	self.eventsMutex.Lock()
	self.pending.headless, self.pending.hasHeadless = headless, true
	self.eventsMutex.Unlock()
}

// Queues a replacement of the complication slots. The slice is
// copied, but payload images must not be modified while in use.
// Safe for concurrent use.
func (self *Face) SetSlots(slots []complication.Slot) {
	copied := make([]complication.Slot, len(slots))
	copy(copied, slots)
	self.eventsMutex.Lock()
	self.pending.slots, self.pending.hasSlots = copied, true
	self.eventsMutex.Unlock()
}

// Queues a change of the highlighted element. Safe for concurrent use.
func (self *Face) SetHighlight(highlight Highlight) {
	self.eventsMutex.Lock()
	self.pending.highlight, self.pending.hasHighlight = highlight, true
	self.eventsMutex.Unlock()
}

// Subscribes the face to the given style store, queueing its
// current style right away.
func (self *Face) BindStyleStore(store style.Store) {
	self.NotifyStyle(store.CurrentStyle())
	store.OnStyleChanged(self.NotifyStyle)
}

// Subscribes the face to the given ambient mode source.
func (self *Face) BindPowerMode(source mode.PowerModeSource) {
	source.OnAmbientChanged(self.NotifyAmbient)
}

// Applies all the queued notifications. Called at the start of
// each frame, on the render goroutine.
func (self *Face) drainEvents(now time.Time) {
	self.eventsMutex.Lock()
	if self.pending.empty() {
		self.eventsMutex.Unlock()
		return
	}
	events := self.pending
	self.pending = pendingEvents{}
	self.eventsMutex.Unlock()

	for _, config := range events.styles {
		self.applyStyle(config)
	}
	if events.hasHeadless && events.headless != self.machine.IsHeadless() {
		self.machine.SetHeadless(events.headless)
		if events.headless {
			_ = self.animator.Snap(self.settledTimeScale())
		}
		self.trace(EventModeChange, self.machine.State().String(), nil, 0)
	}
	for _, ambient := range events.ambient {
		self.applyAmbient(ambient, now)
	}
	if events.hasSlots { self.slots = events.slots }
	if events.hasHighlight { self.highlight = events.highlight }
}

// Applies a style configuration. Returns false if the configuration
// didn't change, in which case nothing is recomputed.
func (self *Face) applyStyle(config style.Config) bool {
	if self.stats.StyleRecomputes > 0 && config == self.config { return false }
	self.config = config
	palette, ok := self.loader.Palette(config.ColorScheme.String())
	if !ok { palette = config.ColorScheme.Palette() }
	self.palette = palette
	self.roles = style.Roles(config, palette)
	self.preloaded = false
	self.stats.StyleRecomputes += 1
	self.trace(EventStyleApplied, config.ColorScheme.String() + "/" + config.AmbientStyle.String(), nil, 0)
	return true
}

func (self *Face) applyAmbient(ambient bool, now time.Time) {
	change := self.machine.SetAmbient(ambient)
	if change == mode.NoChange { return }

	var err error
	if self.machine.IsHeadless() {
		err = self.animator.Snap(change.Target())
	} else {
		easing := anim.ForAmbient(change == mode.EnterAmbient)
		err = self.animator.StartTransition(change.Target(), self.transitionDuration, easing, now)
	}
	if err != nil {
		self.trace(EventError, "ambient transition", err, 0)
		return
	}
	self.trace(EventModeChange, self.machine.State().String(), nil, 0)
}

// Returns the time-scale matching the settled mode: 0 for
// ambient, 1 for interactive.
func (self *Face) settledTimeScale() float64 {
	if self.machine.IsAmbient() { return 0 }
	return 1
}

// Returns whether the ambient mode is settled (not transitioning).
// Headless ambient faces are always settled.
func (self *Face) ambientSettled() bool {
	return self.machine.IsAmbient() && !self.machine.State().Transitioning()
}
