package wface

import "time"
import "image"
import "image/draw"
import "image/color"

import "github.com/fogleman/gg"

import "github.com/tinne26/wface/style"
import "github.com/tinne26/wface/layout"
import "github.com/tinne26/wface/complication"

// Elements that can be selected in the on-watch editor.
type HighlightKind uint8
const (
	HighlightNone HighlightKind = iota
	HighlightTime
	HighlightSeconds
	HighlightComplication
)

func (self HighlightKind) String() string {
	switch self {
	case HighlightTime: return "time"
	case HighlightSeconds: return "seconds"
	case HighlightComplication: return "complication"
	default: return "none"
	}
}

// The element currently selected in the editor. SlotID is only used
// with [HighlightComplication]. A zero tint means the palette's
// primary color.
type Highlight struct {
	Kind HighlightKind
	SlotID int
	Tint color.NRGBA
}

// Stroke width of the highlight outlines, in logical units.
const highlightStroke = 3.0

// Draws only the highlighted element, tinted, over a transparent
// background. The bounds are cleared first. Nothing else is drawn
// when there's no highlight.
func (self *Face) RenderHighlightLayer(target draw.Image, now time.Time, bounds image.Rectangle) {
	self.drainEvents(now)
	bounds = bounds.Intersect(target.Bounds())
	if bounds.Empty() { return }
	draw.Draw(target, bounds, image.Transparent, image.Point{}, draw.Src)
	if self.highlight.Kind == HighlightNone { return }

	renderScale := layout.Scale(bounds)
	if renderScale != self.renderScale || !self.preloaded {
		self.preload(renderScale)
	}
	frame := layout.Compute(layout.Input{
		Config: self.config,
		TimeScale: self.animator.Sample(now),
		Ambient: self.ambientSettled(),
	})

	// draw the element shapes onto the scratch surface, then use
	// its alpha as the mask for the tint
	scratch := self.compositeFor(bounds)
	local := scratch.Rect
	cx, cy := layout.Center(local)
	stroke := highlightStroke*renderScale
	switch self.highlight.Kind {
	case HighlightTime:
		frame.GlyphOpacity = 1
		self.drawTime(scratch, local, frame, now)
		width := style.SizeTime*1.3*frame.TimeScale*renderScale
		height := (frame.MinuteY - frame.HourY + style.SizeTime*0.8)*frame.TimeScale*renderScale
		ctx := gg.NewContextForRGBA(scratch)
		ctx.SetLineWidth(stroke)
		ctx.SetColor(color.White)
		ctx.DrawRoundedRectangle(cx + frame.TimeShiftX*renderScale - width/2, cy - height/2, width, height, 8*renderScale)
		ctx.Stroke()
	case HighlightSeconds:
		ctx := gg.NewContextForRGBA(scratch)
		ctx.SetLineWidth(stroke)
		ctx.SetColor(color.White)
		ctx.DrawCircle(cx, cy, frame.RingRadius*renderScale - stroke)
		ctx.Stroke()
		if frame.DrawSeconds {
			bitmap, err := self.secondsGlyph(now.Second())
			if err == nil {
				blit(scratch, bitmap, cx + frame.SecondsX*renderScale, cy + frame.SecondsY*renderScale)
			}
		}
	case HighlightComplication:
		slot := self.slotFor(self.highlight.SlotID)
		region, found := regionFor(self.highlight.SlotID, layout.Regions(self.config.LayoutStyle))
		if slot == nil || !found { return }
		rect := self.slotPixels(slot, region, frame, local)
		if rect.Empty() { return }
		ctx := gg.NewContextForRGBA(scratch)
		ctx.SetLineWidth(stroke)
		ctx.SetColor(color.White)
		ctx.DrawRoundedRectangle(float64(rect.Min.X), float64(rect.Min.Y), float64(rect.Dx()), float64(rect.Dy()), 6*renderScale)
		ctx.Stroke()
		if slot.Render != nil {
			slot.Render(scratch, rect, now, complication.LayerHighlight)
		}
	}

	tint := self.highlight.Tint
	if tint.A == 0 { tint = self.palette.Primary }
	draw.DrawMask(clip(target, bounds), bounds, image.NewUniform(tint), image.Point{}, scratch, image.Point{}, draw.Over)
}

// Returns the currently selected highlight.
func (self *Face) Highlight() Highlight { return self.highlight }

func regionFor(slotID int, regions []layout.Region) (layout.Region, bool) {
	for _, region := range regions {
		if region.SlotID == slotID { return region, true }
	}
	return layout.Region{}, false
}
