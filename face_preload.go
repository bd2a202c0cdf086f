package wface

import "fmt"
import "time"
import "image"
import "image/draw"
import "image/color"

import "golang.org/x/image/math/fixed"

import "github.com/tinne26/wface/mask"
import "github.com/tinne26/wface/cache"
import "github.com/tinne26/wface/style"
import "github.com/tinne26/wface/typeset"

// Cache key suffix for the interactive time glyphs.
const variantInteractive = "interactive"

// Seconds value drawn as a blank placeholder while the seconds are
// hidden in detailed ambient mode.
const blankSeconds = 60

// The text used to size the blank seconds placeholder.
const blankSecondsSizing = "88"

// Returns the hour text for the given 24-hour value, zero padded to
// two digits. In 12-hour mode, 0 becomes "12" and 13 becomes "01".
func FormatHour(hour int, militaryTime bool) string {
	hour = ((hour % 24) + 24) % 24
	if militaryTime { return fmt.Sprintf("%02d", hour) }
	return fmt.Sprintf("%02d", ((hour + 11) % 12) + 1)
}

// Returns the zero padded two digit text for a minute or second.
func formatTwoDigits(value int) string {
	return fmt.Sprintf("%02d", value)
}

// A glyph variant of the time text: either the interactive glyphs or
// one of the ambient shapes.
type glyphVariant struct {
	name string
	ambient bool
	shape style.Shape
	big bool
}

// Returns the variant name for an ambient shape, as used in cache keys.
func ambientVariantName(shape style.Shape, big bool) string {
	if big { return "big_" + shape.String() }
	return shape.String()
}

// Returns the time glyph variants to preload: the interactive one
// plus every ambient shape, in the big family if the current ambient
// style belongs to it.
func (self *Face) glyphVariants() []glyphVariant {
	big := self.config.AmbientStyle.IsBig()
	variants := []glyphVariant{ { name: variantInteractive } }
	for _, shape := range []style.Shape{style.ShapeOutline, style.ShapeBoldOutline, style.ShapeFilled} {
		variants = append(variants, glyphVariant{
			name: ambientVariantName(shape, big),
			ambient: true,
			shape: shape,
			big: big,
		})
	}
	return variants
}

// Returns the text style for the hour or minute in the given variant.
func (self *Face) timeStyle(variant glyphVariant, minute bool) style.TextStyle {
	if !variant.ambient {
		if minute { return self.roles.Get(style.RoleMinute) }
		return self.roles.Get(style.RoleHour)
	}

	var textStyle style.TextStyle
	if minute {
		textStyle = self.roles.Get(style.RoleAmbientMinute)
	} else {
		textStyle = self.roles.Get(style.RoleAmbientHour)
	}

	// the ambient roles follow the configured style, but the preload
	// covers all shapes, so the weight and size must be resolved again
	glyph := ambientGlyphFor(variant.shape, variant.big)
	textStyle.Weight = glyph.Weight
	textStyle.Size = glyph.Size
	return textStyle
}

func ambientGlyphFor(shape style.Shape, big bool) style.AmbientGlyph {
	var ambientStyle style.AmbientStyle
	switch shape {
	case style.ShapeBoldOutline: ambientStyle = style.AmbientBoldOutline
	case style.ShapeFilled: ambientStyle = style.AmbientFilled
	default: ambientStyle = style.AmbientOutline
	}
	glyph := ambientStyle.Glyph()
	if big {
		glyph.Size *= style.BigAmbientFactor
		glyph.Big = true
	}
	return glyph
}

// Returns the mask rasterizer for the given variant.
func (self *Face) variantRasterizer(variant glyphVariant) mask.Rasterizer {
	if !variant.ambient { return self.filledRasterizer }
	switch variant.shape {
	case style.ShapeOutline: return self.outlineRasterizer
	case style.ShapeBoldOutline: return self.boldOutlineRasterizer
	default: return self.filledRasterizer
	}
}

// Returns the currently active ambient variant.
func (self *Face) currentAmbientVariant() glyphVariant {
	glyph := self.config.AmbientStyle.Glyph()
	return glyphVariant{
		name: ambientVariantName(glyph.Shape, glyph.Big),
		ambient: true,
		shape: glyph.Shape,
		big: glyph.Big,
	}
}

// Sets the render scale and rasterizes every glyph the face may need
// at it. Blocks until done.
func (self *Face) preload(renderScale float64) {
	start := time.Now()
	if renderScale != self.renderScale {
		self.glyphCache.Reset()
		self.renderScale = renderScale
	}
	self.outlineRasterizer.SetThickness(style.ThicknessOutline*renderScale)
	self.boldOutlineRasterizer.SetThickness(style.ThicknessBoldOutline*renderScale)

	for _, variant := range self.glyphVariants() {
		for hour := 0; hour < 24; hour++ {
			_, _ = self.timeGlyph(variant, false, formatTwoDigits(hour))
		}
		for minute := 0; minute < 60; minute++ {
			_, _ = self.timeGlyph(variant, true, formatTwoDigits(minute))
		}
	}
	for second := 0; second <= blankSeconds; second++ {
		_, _ = self.secondsGlyph(second)
	}
	_, _ = self.amPmGlyph("AM")
	_, _ = self.amPmGlyph("PM")

	self.preloaded = true
	self.stats.Preloads += 1
	self.trace(EventPreload, fmt.Sprintf("scale %.3f", renderScale), nil, time.Since(start))
}

// Returns the bitmap for an hour or minute text in the given variant.
func (self *Face) timeGlyph(variant glyphVariant, minute bool, text string) (cache.Bitmap, error) {
	role := "hour"
	if minute { role = "minute" }
	key := role + "/" + text + "/" + variant.name
	return self.glyph(key, text, self.timeStyle(variant, minute), self.variantRasterizer(variant))
}

// Returns the bitmap for the given seconds value. The value 60 is
// the blank placeholder.
func (self *Face) secondsGlyph(second int) (cache.Bitmap, error) {
	textStyle := self.roles.Get(style.RoleSeconds)
	key := "seconds/" + formatTwoDigits(second)
	if second != blankSeconds {
		return self.glyph(key, formatTwoDigits(second), textStyle, self.filledRasterizer)
	}

	hash := self.hashText(blankSecondsSizing, textStyle, self.filledRasterizer)
	if bitmap, found := self.glyphCache.Lookup(key, hash); found {
		return bitmap, nil
	}
	font, err := self.loader.Typeface(textStyle.Family, textStyle.Weight)
	if err == nil {
		var metrics typeset.Metrics
		metrics, err = self.typesetter.Measure(font, textStyle.Size*self.renderScale, blankSecondsSizing)
		if err == nil {
			bitmap := typeset.Blank(metrics.Advance, metrics.CapHeight)
			self.glyphCache.Store(key, hash, bitmap)
			return bitmap, nil
		}
	}
	err = fmt.Errorf("glyph %s: %w", key, err)
	self.trace(EventError, key, err, 0)
	return nil, err
}

// Letter spacing for the AM/PM label, relative to its size.
const amPmTracking = 0.06

// Returns the bitmap for "AM" or "PM".
func (self *Face) amPmGlyph(text string) (cache.Bitmap, error) {
	textStyle := self.roles.Get(style.RoleAmPm)
	tracking := textStyle.Size*self.renderScale*amPmTracking
	self.labelSizer.SetPadding(fixed.Int26_6(tracking*64))
	self.typesetter.SetSizer(self.labelSizer)
	defer self.typesetter.SetSizer(self.textSizer)
	return self.glyph("ampm/" + text, text, textStyle, self.filledRasterizer)
}

// Returns the cached bitmap for the given key and content, rasterizing
// and storing it on misses.
func (self *Face) glyph(key string, text string, textStyle style.TextStyle, rasterizer mask.Rasterizer) (cache.Bitmap, error) {
	hash := self.hashText(text, textStyle, rasterizer)
	if bitmap, found := self.glyphCache.Lookup(key, hash); found {
		return bitmap, nil
	}

	font, err := self.loader.Typeface(textStyle.Family, textStyle.Weight)
	if err != nil {
		err = fmt.Errorf("glyph %s: %w", key, err)
		self.trace(EventError, key, err, 0)
		return nil, err
	}
	self.typesetter.SetRasterizer(rasterizer)
	bitmap, err := self.typesetter.Bitmap(font, textStyle.Size*self.renderScale, text, textStyle.Color)
	if err != nil {
		err = fmt.Errorf("glyph %s: %w", key, err)
		self.trace(EventError, key, err, 0)
		return nil, err
	}
	if self.config.DebugOverlay {
		drawBorder(bitmap, self.palette.Tertiary)
	}
	self.glyphCache.Store(key, hash, bitmap)
	return bitmap, nil
}

func (self *Face) hashText(text string, textStyle style.TextStyle, rasterizer mask.Rasterizer) uint64 {
	return self.hasher.Reset().
		String(text).
		String(textStyle.Family).
		Uint64(uint64(textStyle.Weight)).
		Float64(textStyle.Size*self.renderScale).
		Color(textStyle.Color).
		Uint64(rasterizer.Signature()).
		Bool(self.config.DebugOverlay).
		Float64(self.renderScale).
		Sum()
}

// Draws a one pixel border around the bitmap bounds. Used to show
// glyph boxes when the debug overlay is enabled.
func drawBorder(bitmap *image.RGBA, clr color.NRGBA) {
	rect := bitmap.Rect
	if rect.Empty() { return }
	src := image.NewUniform(clr)
	edges := []image.Rectangle{
		image.Rect(rect.Min.X, rect.Min.Y, rect.Max.X, rect.Min.Y + 1),
		image.Rect(rect.Min.X, rect.Max.Y - 1, rect.Max.X, rect.Max.Y),
		image.Rect(rect.Min.X, rect.Min.Y, rect.Min.X + 1, rect.Max.Y),
		image.Rect(rect.Max.X - 1, rect.Min.Y, rect.Max.X, rect.Max.Y),
	}
	for _, edge := range edges {
		draw.Draw(bitmap, edge, src, image.Point{}, draw.Over)
	}
}
