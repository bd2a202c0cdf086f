// The layout subpackage computes where everything goes on a face.
//
// All the computations are pure functions working on a square logical
// space of [Size] x [Size] units with the origin at the center. Faces
// multiply the results by [Scale]() before drawing.
package layout

import "image"

import "github.com/tinne26/wface/ease"
import "github.com/tinne26/wface/style"

// Side of the logical drawing space.
const Size = 384.0

// Vertical offsets of the hour (negative) and minute (positive) glyph
// centers, in logical units.
const (
	InteractiveTimeOffset = 78.0
	AmbientOutlineOffset  = 58.0
	AmbientFilledOffset   = 62.0
	BigAmbientExtraOffset = 12.0
)

// Scale of the interactive time block, relative to the base glyph size.
const InteractiveTimeScale = 0.9

// Minimum opacity of the interactive time glyphs.
const MinGlyphOpacity = 0.75

// Composite opacity floor for the detailed ambient style.
const DetailedCompositeOpacity = 0.75

// Complication scale at time-scale 0.
const AmbientComplicationScale = 0.9

// Horizontal shift of the time block and complications in the sport
// layout at time-scale 0.
const SportShift = -40.0

// Outer radius of the seconds ring.
const RingRadius = 186.0

// Horizontal centers of the seconds and AM/PM texts.
const (
	SecondsX = 128.0
	AmPmX = -128.0
)

// Slot identifiers of the complication regions.
const (
	SlotLeft = iota
	SlotRight
	SlotTop
	SlotBottom
)

// A complication region of a layout.
type Region struct {
	SlotID int
	Bounds Rect
}

var (
	regionLeft   = Region{ SlotLeft,   Rect{-160, -24, -64, 24} }
	regionRight  = Region{ SlotRight,  Rect{  64, -24, 160, 24} }
	regionTop    = Region{ SlotTop,    Rect{ -52, -176, 52, -134} }
	regionBottom = Region{ SlotBottom, Rect{ -52, 134, 52, 176} }
)

var layoutRegions = map[style.LayoutStyle][]Region{
	style.LayoutInfo1: {regionLeft, regionTop, regionBottom},
	style.LayoutInfo2: {regionLeft, regionTop, regionBottom},
	style.LayoutInfo3: {regionTop, regionBottom},
	style.LayoutInfo4: {regionLeft, regionRight, regionTop, regionBottom},
	style.LayoutSport: {regionTop, regionBottom},
	style.LayoutFocus: nil,
}

// Returns the complication regions of the given layout. The returned
// slice is shared and must not be modified.
func Regions(layout style.LayoutStyle) []Region {
	return layoutRegions[layout]
}

// Returns whether the layout draws the seconds text.
func DrawsSeconds(layout style.LayoutStyle) bool {
	switch layout {
	case style.LayoutInfo1, style.LayoutInfo3, style.LayoutSport:
		return true
	default:
		return false
	}
}

// Returns whether the layout draws the AM/PM text. Military time
// never draws it.
func DrawsAmPm(layout style.LayoutStyle, militaryTime bool) bool {
	if militaryTime { return false }
	return layout == style.LayoutInfo2 || layout == style.LayoutInfo3
}

// Returns the factor that maps logical units to pixels for the given
// surface bounds: min(width, height)/Size.
func Scale(bounds image.Rectangle) float64 {
	width, height := bounds.Dx(), bounds.Dy()
	if height < width { width = height }
	return float64(width)/Size
}

// Returns the center of the given bounds, in pixels.
func Center(bounds image.Rectangle) (float64, float64) {
	return float64(bounds.Min.X + bounds.Max.X)/2, float64(bounds.Min.Y + bounds.Max.Y)/2
}

// Layout inputs.
type Input struct {
	Config style.Config
	TimeScale float64 // in [0, 1]
	Ambient bool // settled (or headless) ambient mode
}

// The computed layout for a frame. All positions and sizes are in
// logical units.
type Frame struct {
	Eased float64 // eased time-scale

	// Time block. When UseAmbientGlyphs is true, the glyphs must be the
	// ambient bitmaps, which are already rasterized at AmbientGlyphSize,
	// so the group scale to apply to them is TimeScale/AmbientGlyphScale.
	HourY, MinuteY float64
	TimeScale float64
	TimeShiftX float64
	GlyphOpacity float64
	UseAmbientGlyphs bool
	AmbientGlyphScale float64

	// Composite elements
	CompositeOpacity float64
	DrawSeconds bool
	SecondsX, SecondsY float64
	DrawAmPm bool
	AmPmX, AmPmY float64
	DrawRing bool
	RingRadius float64

	DrawComplications bool
	ComplicationScale float64
	ComplicationShiftX float64
	Regions []Region
}

// Computes the layout for the given input.
func Compute(in Input) Frame {
	config := in.Config
	timeScale := in.TimeScale
	if !(timeScale >= 0) { timeScale = 0 } // also catches NaN
	if timeScale > 1 { timeScale = 1 }
	eased := ease.CubicInOut(timeScale)
	glyph := config.AmbientStyle.Glyph()
	detailed := config.AmbientStyle == style.AmbientDetailed

	var frame Frame
	frame.Eased = eased

	ambientOffset := AmbientFilledOffset
	if glyph.Shape != style.ShapeFilled { ambientOffset = AmbientOutlineOffset }
	ambientScale := 1.0
	if glyph.Big {
		ambientOffset += BigAmbientExtraOffset
		ambientScale = style.BigAmbientFactor
	}
	offset := ease.Lerp(ambientOffset, InteractiveTimeOffset, eased)
	frame.HourY, frame.MinuteY = -offset, offset
	frame.TimeScale = ease.Lerp(ambientScale, InteractiveTimeScale, eased)
	frame.AmbientGlyphScale = ambientScale
	frame.UseAmbientGlyphs = in.Ambient && timeScale == 0
	if frame.UseAmbientGlyphs {
		frame.GlyphOpacity = 1
	} else {
		frame.GlyphOpacity = MinGlyphOpacity + (1 - MinGlyphOpacity)*eased
	}

	if config.LayoutStyle == style.LayoutSport {
		frame.TimeShiftX = SportShift*(1 - eased)
		frame.ComplicationShiftX = frame.TimeShiftX
	}

	if detailed {
		frame.CompositeOpacity = ease.Lerp(DetailedCompositeOpacity, 1, eased)
	} else {
		frame.CompositeOpacity = eased
	}
	frame.DrawSeconds = DrawsSeconds(config.LayoutStyle)
	frame.SecondsX = SecondsX
	frame.DrawAmPm = DrawsAmPm(config.LayoutStyle, config.MilitaryTime)
	frame.AmPmX = AmPmX
	frame.DrawRing = config.SecondsStyle.Animated()
	frame.RingRadius = RingRadius

	frame.DrawComplications = !in.Ambient || detailed
	frame.ComplicationScale = ease.Lerp(AmbientComplicationScale, 1, eased)
	if frame.DrawComplications {
		frame.Regions = Regions(config.LayoutStyle)
	}
	return frame
}
