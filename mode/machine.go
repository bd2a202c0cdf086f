// The mode subpackage tracks whether a face is interactive, ambient,
// transitioning between the two, or rendering headless snapshots, and
// derives the redraw interval the host should use for each situation.
package mode

import "time"

import "github.com/tinne26/wface/style"

// Redraw intervals.
const (
	FrameInterval  = 16*time.Millisecond
	SecondInterval = time.Second
	MinuteInterval = time.Minute
)

// Face display states.
type State uint8
const (
	Interactive State = iota
	ToAmbient
	Ambient
	ToInteractive
	Headless
)

func (self State) String() string {
	switch self {
	case Interactive: return "interactive"
	case ToAmbient: return "to_ambient"
	case Ambient: return "ambient"
	case ToInteractive: return "to_interactive"
	case Headless: return "headless"
	default: return "unknown"
	}
}

// Whether the state is one of the two transition states.
func (self State) Transitioning() bool {
	return self == ToAmbient || self == ToInteractive
}

// The outcome of a mode notification, telling the caller which
// transition to start, if any.
type Change uint8
const (
	NoChange Change = iota
	EnterAmbient
	ExitAmbient
)

// Returns the time-scale target for the change: 0 when entering
// ambient mode, 1 when exiting. NoChange returns -1.
func (self Change) Target() float64 {
	switch self {
	case EnterAmbient: return 0
	case ExitAmbient: return 1
	default: return -1
	}
}

// The mode state machine. The zero value is an interactive machine.
type Machine struct {
	state State
	ambient bool
	headless bool
	graceFrames int
}

// Returns the current state.
func (self *Machine) State() State { return self.state }

// Returns whether the last ambient notification was ambient == true.
// This stays true during the ToAmbient transition and in headless mode.
func (self *Machine) IsAmbient() bool { return self.ambient }

// Returns whether headless mode is enabled.
func (self *Machine) IsHeadless() bool { return self.headless }

// Processes an ambient mode notification. Repeated notifications for
// the current mode return NoChange. In headless mode, the change is
// still reported so the caller can snap the time-scale, but the state
// stays Headless.
func (self *Machine) SetAmbient(ambient bool) Change {
	if self.ambient == ambient { return NoChange }
	self.ambient = ambient
	self.graceFrames = 0
	if !self.headless {
		if ambient {
			self.state = ToAmbient
		} else {
			self.state = ToInteractive
		}
	}
	if ambient { return EnterAmbient }
	return ExitAmbient
}

// Sets the ambient mode directly in its settled state, without a
// transition or a grace frame. Used when a face starts in ambient mode.
func (self *Machine) SettleAmbient(ambient bool) {
	self.ambient = ambient
	self.graceFrames = 0
	if !self.headless { self.state = self.settledState() }
}

// Enables or disables headless mode. Headless mode overrides all
// animation. When disabled, the machine settles directly into the
// mode given by the last ambient notification.
func (self *Machine) SetHeadless(headless bool) {
	self.headless = headless
	self.graceFrames = 0
	if headless {
		self.state = Headless
	} else {
		self.state = self.settledState()
	}
}

// Must be called once per rendered frame, after sampling the animator,
// with whether a tween is still in flight. Completed transitions
// settle here.
func (self *Machine) Advance(tweenInFlight bool) {
	if self.headless { return }
	if self.state.Transitioning() {
		if tweenInFlight { return }
		self.state = self.settledState()
		self.graceFrames = 1
	} else if self.graceFrames > 0 {
		self.graceFrames -= 1
	}
}

// Returns the redraw interval for the current state. Headless mode
// returns 0, meaning that the face should only be drawn on demand.
func (self *Machine) Interval(secondsStyle style.SecondsStyle, drawsSeconds bool) time.Duration {
	switch self.state {
	case Headless:
		return 0
	case ToAmbient, ToInteractive:
		return FrameInterval
	}
	if self.graceFrames > 0 { return FrameInterval }
	if self.state == Ambient { return MinuteInterval }
	return Interval(secondsStyle, drawsSeconds)
}

// Returns the settled interactive redraw interval for the given
// seconds style and whether the layout draws seconds text.
func Interval(secondsStyle style.SecondsStyle, drawsSeconds bool) time.Duration {
	if secondsStyle.Animated() { return FrameInterval }
	if drawsSeconds { return SecondInterval }
	return MinuteInterval
}

func (self *Machine) settledState() State {
	if self.ambient { return Ambient }
	return Interactive
}
