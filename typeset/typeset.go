// The typeset subpackage turns short strings into tinted bitmaps: it
// lays out the glyphs with a [sizer.Sizer], merges their outlines and
// rasterizes the whole string in one go with a [mask.Rasterizer].
//
// Rasterizing whole strings instead of individual glyphs matters for
// outline effects, where overlapping glyphs must share a single edge.
//
// Results are anchored at the center of the text's logical box: the
// horizontal center of the advance and the vertical center of the cap
// height. Digits, which is what faces draw the most, end up visually
// centered on the anchor.
package typeset

import "fmt"
import "math"
import "errors"
import "image"
import "image/color"

import "golang.org/x/image/font/sfnt"
import "golang.org/x/image/math/fixed"

import "github.com/tinne26/wface/mask"
import "github.com/tinne26/wface/sizer"

// Returned when the text contains runes the font can't draw.
var ErrMissingGlyph = errors.New("missing glyph")

// Returned when the size is not a positive, finite value.
var ErrInvalidSize = errors.New("invalid text size")

// Text measurements, in pixels.
type Metrics struct {
	Advance float64
	CapHeight float64
	Ascent float64
	Descent float64
}

// A Typesetter lays out and rasterizes short strings. Typesetters
// can't be used concurrently.
type Typesetter struct {
	buffer sfnt.Buffer
	sizer sizer.Sizer
	rasterizer mask.Rasterizer
	segments sfnt.Segments

	notifiedFont *sfnt.Font
	notifiedSize fixed.Int26_6
}

// Creates a typesetter with a [sizer.DefaultSizer] and a
// [mask.DefaultRasterizer].
func New() *Typesetter {
	return &Typesetter{
		sizer: &sizer.DefaultSizer{},
		rasterizer: &mask.DefaultRasterizer{},
		segments: make(sfnt.Segments, 0, 128),
	}
}

// Sets the sizer. Nil values panic.
func (self *Typesetter) SetSizer(textSizer sizer.Sizer) {
	if textSizer == nil { panic("nil sizer") }
	self.sizer = textSizer
	self.notifiedFont = nil
}

// Returns the current sizer.
func (self *Typesetter) Sizer() sizer.Sizer { return self.sizer }

// Sets the mask rasterizer. Nil values panic.
func (self *Typesetter) SetRasterizer(rasterizer mask.Rasterizer) {
	if rasterizer == nil { panic("nil rasterizer") }
	self.rasterizer = rasterizer
}

// Returns the current mask rasterizer.
func (self *Typesetter) Rasterizer() mask.Rasterizer { return self.rasterizer }

// Measures the given text.
func (self *Typesetter) Measure(font *sfnt.Font, size float64, text string) (Metrics, error) {
	fsize, err := self.prepare(font, size)
	if err != nil { return Metrics{}, err }
	advance, err := self.layout(font, fsize, text, false)
	if err != nil { return Metrics{}, err }
	return Metrics{
		Advance: toFloat64(advance),
		CapHeight: toFloat64(self.sizer.CapHeight(font, &self.buffer, fsize)),
		Ascent: toFloat64(self.sizer.Ascent(font, &self.buffer, fsize)),
		Descent: toFloat64(self.sizer.Descent(font, &self.buffer, fsize)),
	}, nil
}

// Rasterizes the given text into an alpha mask anchored at the center
// of the text's logical box. Texts without visible glyphs return an
// empty mask.
func (self *Typesetter) Mask(font *sfnt.Font, size float64, text string) (*image.Alpha, error) {
	fsize, err := self.prepare(font, size)
	if err != nil { return nil, err }
	advance, err := self.layout(font, fsize, text, true)
	if err != nil { return nil, err }

	// move the anchor to the center of the logical box
	capHeight := self.sizer.CapHeight(font, &self.buffer, fsize)
	shift := fixed.Point26_6{ X: -advance/2, Y: capHeight/2 }
	translateSegments(self.segments, shift)

	alphaMask, err := mask.Rasterize(self.segments, self.rasterizer, fixed.Point26_6{})
	if err != nil { return nil, fmt.Errorf("rasterize %q: %w", text, err) }
	if alphaMask == nil { return image.NewAlpha(image.Rectangle{}), nil }
	return alphaMask, nil
}

// Rasterizes the given text and tints it with the given color. See
// [Typesetter.Mask]() for the anchoring rules.
func (self *Typesetter) Bitmap(font *sfnt.Font, size float64, text string, clr color.NRGBA) (*image.RGBA, error) {
	alphaMask, err := self.Mask(font, size, text)
	if err != nil { return nil, err }
	return Tint(alphaMask, clr), nil
}

func (self *Typesetter) prepare(font *sfnt.Font, size float64) (fixed.Int26_6, error) {
	if font == nil { panic("nil font") }
	if !(size > 0 && size <= 4096) { // also catches NaN and +Inf
		return 0, fmt.Errorf("%w: %f", ErrInvalidSize, size)
	}
	fsize := fixed.Int26_6(math.Round(size*64))
	if fsize == 0 { fsize = 1 }
	if font != self.notifiedFont || fsize != self.notifiedSize {
		err := self.sizer.NotifyChange(font, &self.buffer, fsize)
		if err != nil { return 0, err }
		self.notifiedFont, self.notifiedSize = font, fsize
	}
	return fsize, nil
}

// Computes the advance of the text and, if collect is true, stores the
// glyph outlines positioned at their pen offsets in self.segments.
func (self *Typesetter) layout(font *sfnt.Font, size fixed.Int26_6, text string, collect bool) (fixed.Int26_6, error) {
	self.segments = self.segments[:0]
	var pen fixed.Int26_6
	var prevIndex sfnt.GlyphIndex
	hasPrev := false
	for _, codePoint := range text {
		index, err := font.GlyphIndex(&self.buffer, codePoint)
		if err != nil { return 0, err }
		if index == 0 { return 0, fmt.Errorf("%w for %q", ErrMissingGlyph, codePoint) }

		if hasPrev {
			kern, err := self.sizer.Kern(font, &self.buffer, size, prevIndex, index)
			if err != nil { return 0, err }
			pen += kern
		}

		if collect {
			// LoadGlyph segments are only valid until the next buffer
			// use, so they are copied right away
			segments, err := font.LoadGlyph(&self.buffer, index, size, nil)
			if err != nil { return 0, fmt.Errorf("load glyph %q: %w", codePoint, err) }
			start := len(self.segments)
			self.segments = append(self.segments, segments...)
			translateSegments(self.segments[start:], fixed.Point26_6{ X: pen })
		}

		advance, err := self.sizer.GlyphAdvance(font, &self.buffer, size, index)
		if err != nil { return 0, err }
		pen += advance
		prevIndex, hasPrev = index, true
	}
	return pen, nil
}

func translateSegments(segments sfnt.Segments, shift fixed.Point26_6) {
	if shift.X == 0 && shift.Y == 0 { return }
	for i := range segments {
		n := argCount(segments[i].Op)
		for j := 0; j < n; j++ {
			segments[i].Args[j] = segments[i].Args[j].Add(shift)
		}
	}
}

func argCount(op sfnt.SegmentOp) int {
	switch op {
	case sfnt.SegmentOpQuadTo: return 2
	case sfnt.SegmentOpCubeTo: return 3
	default: return 1
	}
}

func toFloat64(value fixed.Int26_6) float64 { return float64(value)/64.0 }
