package wface

import "math"
import "time"
import "image"
import "image/color"

import "github.com/fogleman/gg"

import "github.com/tinne26/wface/ease"
import "github.com/tinne26/wface/style"
import "github.com/tinne26/wface/layout"

// Number of ticks in the seconds ring, and their angular spacing.
const (
	RingTickCount = 60
	RingTickStep = 360.0/RingTickCount
)

// Base brightness of the pending and elapsed ticks of the ring.
const (
	PendingBrightness = 0.75
	ElapsedBrightness = 0.3
)

// Ring rotation from which the minute wraparound reveal starts.
const wrapStart = 360.0 - RingTickStep

// Seconds ring tick classes.
type TickClass uint8
const (
	TickMinor TickClass = iota
	TickIntermediate // every 30 degrees
	TickCardinal     // every 90 degrees
)

type tickShape struct {
	length float64 // dash length
	weight float64 // dash stroke width
	radius float64 // dot radius
}

var tickShapes = [3]tickShape{
	TickMinor: { length: 8, weight: 2, radius: 1.5 },
	TickIntermediate: { length: 14, weight: 4, radius: 3 },
	TickCardinal: { length: 18, weight: 5, radius: 4 },
}

// The visual parameters of a seconds ring tick, in logical units.
// Angles are in degrees, clockwise from the top.
type Tick struct {
	Index int
	Angle float64
	Class TickClass
	Brightness float64 // in [0, 1], before the eased time-scale factor
	Head float64 // closeness to the current sub-second position
	Alpha float64
	Length float64 // dash length
	Weight float64 // dash width
	Radius float64 // dot radius
	Color color.NRGBA
}

// Returns the class of the tick at the given index.
func tickClass(index int) TickClass {
	switch {
	case index % 15 == 0: return TickCardinal
	case index % 5 == 0: return TickIntermediate
	default: return TickMinor
	}
}

// Computes the ring ticks for the given rotation (seconds of the
// minute mapped to [0, 360), with sub-second precision). Ticks behind
// the rotation are dimmed, ticks ahead stay at the pending brightness,
// and the one or two ticks around the rotation head blend toward
// white. During the last tick step of the minute, ticks past a clip
// angle that sweeps back toward 0 return to the pending brightness,
// so the ring resets smoothly as the minute rolls over.
//
// Sizes and alphas are scaled by the eased time-scale.
func RingTicks(rotation float64, secondsStyle style.SecondsStyle, palette style.Palette, eased float64) [RingTickCount]Tick {
	var ticks [RingTickCount]Tick
	rotation = math.Mod(rotation, 360)
	if rotation < 0 { rotation += 360 }
	if !(rotation >= 0 && rotation < 360) { rotation = 0 } // NaN
	eased = clamp01(eased)

	current := int(rotation/RingTickStep)
	if current >= RingTickCount { current = RingTickCount - 1 }
	progress := (rotation - float64(current)*RingTickStep)/RingTickStep
	next := (current + 1) % RingTickCount

	clipAngle := 360.0
	if rotation >= wrapStart {
		clipAngle = 360*(1 - ease.CubicIn(progress))
	}

	classColors := [3]color.NRGBA{
		TickMinor: palette.Tertiary,
		TickIntermediate: palette.Secondary,
		TickCardinal: palette.Primary,
	}
	for i := range ticks {
		tick := &ticks[i]
		tick.Index = i
		tick.Angle = float64(i)*RingTickStep
		tick.Class = tickClass(i)

		var base float64
		switch {
		case i < current: base = ElapsedBrightness
		case i == current: base = ease.Lerp(PendingBrightness, ElapsedBrightness, progress)
		default: base = PendingBrightness
		}
		if tick.Angle >= clipAngle { base = PendingBrightness }

		switch i {
		case current: tick.Head = 1 - progress
		case next: tick.Head = progress
		}

		shape := tickShapes[tick.Class]
		tick.Brightness = ease.Lerp(base, 1, tick.Head)
		tick.Alpha = tick.Brightness*eased
		tick.Length = shape.length*(0.5 + 0.5*tick.Brightness)*eased
		tick.Weight = shape.weight*eased
		tick.Radius = shape.radius*eased
		if secondsStyle == style.SecondsDots {
			tick.Radius *= 0.5 + 0.5*tick.Brightness
		}
		tick.Color = style.BlendWhite(classColors[tick.Class], tick.Head)
	}
	return ticks
}

// Returns the ring rotation for the given time, in degrees.
func ringRotation(now time.Time) float64 {
	seconds := float64(now.Second()) + float64(now.Nanosecond())/1e9
	return seconds/60*360
}

// Draws the seconds ring onto the composite.
func (self *Face) drawRing(composite *image.RGBA, frame layout.Frame, now time.Time) {
	secondsStyle := self.config.SecondsStyle
	ticks := RingTicks(ringRotation(now), secondsStyle, self.palette, frame.Eased)
	cx, cy := layout.Center(composite.Rect)
	scale := self.renderScale
	outer := frame.RingRadius*scale

	ctx := gg.NewContextForRGBA(composite)
	for i := range ticks {
		tick := &ticks[i]
		if tick.Alpha <= 0 { continue }
		ctx.SetColor(style.Fade(tick.Color, tick.Alpha))
		ctx.Push()
		ctx.RotateAbout(gg.Radians(tick.Angle), cx, cy)
		switch secondsStyle {
		case style.SecondsDots:
			radius := tick.Radius*scale
			ctx.DrawCircle(cx, cy - outer + radius, radius)
		default:
			width, length := tick.Weight*scale, tick.Length*scale
			ctx.DrawRectangle(cx - width/2, cy - outer, width, length)
		}
		ctx.Fill()
		ctx.Pop()
	}
}

func clamp01(value float64) float64 {
	if !(value > 0) { return 0 }
	if value > 1 { return 1 }
	return value
}
