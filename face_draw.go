package wface

import "math"
import "time"
import "image"
import "image/draw"
import "image/color"

import xdraw "golang.org/x/image/draw"
import "golang.org/x/image/math/f64"

import "github.com/tinne26/wface/cache"
import "github.com/tinne26/wface/layout"

// Draws the hour and minute glyphs through the layout's group
// transform: scaled about the center of the bounds and translated
// horizontally.
func (self *Face) drawTime(target draw.Image, bounds image.Rectangle, frame layout.Frame, now time.Time) {
	hourText := FormatHour(now.Hour(), self.config.MilitaryTime)
	minuteText := formatTwoDigits(now.Minute())

	variant := glyphVariant{ name: variantInteractive }
	if frame.UseAmbientGlyphs { variant = self.currentAmbientVariant() }
	hour, hourErr := self.timeGlyph(variant, false, hourText)
	minute, minuteErr := self.timeGlyph(variant, true, minuteText)

	var opacity *image.Uniform
	if frame.GlyphOpacity < 1 {
		opacity = image.NewUniform(color.Alpha{ toAlpha8(frame.GlyphOpacity) })
	}
	if hourErr == nil {
		self.drawTimeGlyph(target, bounds, hour, frame, frame.HourY, opacity)
	}
	if minuteErr == nil {
		self.drawTimeGlyph(target, bounds, minute, frame, frame.MinuteY, opacity)
	}
}

func (self *Face) drawTimeGlyph(target draw.Image, bounds image.Rectangle, bitmap cache.Bitmap, frame layout.Frame, offsetY float64, opacity *image.Uniform) {
	if bitmap.Rect.Empty() { return }
	scale := frame.TimeScale
	if frame.UseAmbientGlyphs { scale /= frame.AmbientGlyphScale }
	cx, cy := layout.Center(bounds)
	tx := cx + frame.TimeShiftX*self.renderScale
	ty := cy + offsetY*frame.TimeScale*self.renderScale

	dst := clip(target, bounds)
	if scale == 1 && opacity == nil {
		blit(dst, bitmap, tx, ty)
		return
	}

	var opts *xdraw.Options
	if opacity != nil { opts = &xdraw.Options{ SrcMask: opacity } }
	transform := f64.Aff3{
		scale, 0, tx,
		0, scale, ty,
	}
	xdraw.BiLinear.Transform(dst, transform, bitmap, bitmap.Rect, draw.Over, opts)
}

// Draws the seconds or AM/PM texts, the seconds ring and the
// complications onto the offscreen composite, and blends it onto the
// target with the layout's composite opacity.
func (self *Face) drawComposite(target draw.Image, bounds image.Rectangle, frame layout.Frame, now time.Time) {
	if frame.CompositeOpacity <= 0 { return }
	composite := self.compositeFor(bounds)
	local := composite.Rect
	cx, cy := layout.Center(local)

	if frame.DrawSeconds {
		second := now.Second()
		if self.ambientSettled() { second = blankSeconds }
		bitmap, err := self.secondsGlyph(second)
		if err == nil {
			blit(composite, bitmap, cx + frame.SecondsX*self.renderScale, cy + frame.SecondsY*self.renderScale)
		}
	}
	if frame.DrawAmPm {
		text := "AM"
		if now.Hour() >= 12 { text = "PM" }
		bitmap, err := self.amPmGlyph(text)
		if err == nil {
			blit(composite, bitmap, cx + frame.AmPmX*self.renderScale, cy + frame.AmPmY*self.renderScale)
		}
	}
	if frame.DrawRing && frame.Eased > 0 {
		self.drawRing(composite, frame, now)
	}
	if frame.DrawComplications {
		self.drawComplications(composite, frame, now)
	}

	dst := clip(target, bounds)
	if frame.CompositeOpacity >= 1 {
		draw.Draw(dst, bounds, composite, image.Point{}, draw.Over)
	} else {
		opacity := image.NewUniform(color.Alpha{ toAlpha8(frame.CompositeOpacity) })
		draw.DrawMask(dst, bounds, composite, image.Point{}, opacity, image.Point{}, draw.Over)
	}
}

// Returns the cleared offscreen composite for the given bounds. The
// composite has its origin at (0, 0) and is reused while the bounds
// size doesn't change.
func (self *Face) compositeFor(bounds image.Rectangle) *image.RGBA {
	size := bounds.Size()
	if self.composite == nil || self.composite.Rect.Size() != size {
		self.composite = image.NewRGBA(image.Rectangle{ Max: size })
	} else {
		clear(self.composite.Pix)
	}
	return self.composite
}

// Draws the bitmap centered at (x, y). Bitmaps are anchored at their
// own (0, 0), so this is a plain translation.
func blit(target draw.Image, bitmap cache.Bitmap, x, y float64) {
	shift := image.Pt(int(math.Round(x)), int(math.Round(y)))
	draw.Draw(target, bitmap.Rect.Add(shift), bitmap, bitmap.Rect.Min, draw.Over)
}

// Returns a view of the target restricted to the given bounds when
// the target supports it.
func clip(target draw.Image, bounds image.Rectangle) draw.Image {
	subImager, ok := target.(interface{ SubImage(image.Rectangle) image.Image })
	if !ok { return target }
	if sub, ok := subImager.SubImage(bounds).(draw.Image); ok {
		return sub
	}
	return target
}

func toAlpha8(opacity float64) uint8 {
	if !(opacity > 0) { return 0 }
	if opacity >= 1 { return 255 }
	return uint8(opacity*255 + 0.5)
}
