package sizer

import "fmt"
import . "golang.org/x/image/font/sfnt"
import "golang.org/x/image/font"
import "golang.org/x/image/math/fixed"

var _ Sizer = (*DefaultSizer)(nil)

// The default [Sizer]. For more information about sizers, see
// the documentation of the [Sizer] interface.
type DefaultSizer struct {
	cachedAscent  fixed.Int26_6
	cachedDescent fixed.Int26_6
	cachedCapHeight fixed.Int26_6
	cachedLineHeight fixed.Int26_6
	padding fixed.Int26_6
}

// Satisfies the [Sizer] interface.
func (self *DefaultSizer) Ascent(*Font, *Buffer, fixed.Int26_6) fixed.Int26_6 {
	return self.cachedAscent
}

// Satisfies the [Sizer] interface.
func (self *DefaultSizer) Descent(*Font, *Buffer, fixed.Int26_6) fixed.Int26_6 {
	return self.cachedDescent
}

// Satisfies the [Sizer] interface.
func (self *DefaultSizer) CapHeight(*Font, *Buffer, fixed.Int26_6) fixed.Int26_6 {
	return self.cachedCapHeight
}

// Satisfies the [Sizer] interface.
func (self *DefaultSizer) LineHeight(*Font, *Buffer, fixed.Int26_6) fixed.Int26_6 {
	return self.cachedLineHeight
}

// Satisfies the [Sizer] interface.
func (self *DefaultSizer) GlyphAdvance(sfont *Font, buffer *Buffer, size fixed.Int26_6, g GlyphIndex) (fixed.Int26_6, error) {
	advance, err := sfont.GlyphAdvance(buffer, g, size, font.HintingNone)
	if err != nil {
		return 0, fmt.Errorf("glyph advance (index = %d): %w", g, err)
	}
	return advance, nil
}

// Satisfies the [Sizer] interface.
func (self *DefaultSizer) Kern(sfont *Font, buffer *Buffer, size fixed.Int26_6, g1, g2 GlyphIndex) (fixed.Int26_6, error) {
	kern, err := sfont.Kern(buffer, g1, g2, size, font.HintingNone)
	if err == nil { return kern, nil }
	if err == ErrNotFound { return 0, nil }
	return 0, fmt.Errorf("kern (indices = %d, %d): %w", g1, g2, err)
}

// Satisfies the [Sizer] interface.
func (self *DefaultSizer) NotifyChange(sfont *Font, buffer *Buffer, size fixed.Int26_6) error {
	if sfont == nil || size == 0 {
		self.cachedAscent     = 0
		self.cachedDescent    = 0
		self.cachedCapHeight  = 0
		self.cachedLineHeight = 0
		return nil
	}

	metrics, err := sfont.Metrics(buffer, size, font.HintingNone)
	if err != nil { return fmt.Errorf("font metrics: %w", err) }
	self.cachedAscent  = metrics.Ascent
	self.cachedDescent = metrics.Descent
	self.cachedLineHeight = metrics.Height
	self.cachedCapHeight = metrics.CapHeight
	if self.cachedCapHeight <= 0 { // some fonts don't report it
		self.cachedCapHeight = (self.cachedAscent*7)/10
	}
	return nil
}
