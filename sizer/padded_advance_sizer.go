package sizer

import . "golang.org/x/image/font/sfnt"
import "golang.org/x/image/math/fixed"

var _ Sizer = (*PaddedAdvanceSizer)(nil)

// Like [DefaultSizer], but adds a configurable padding to the
// advance of every glyph. Faces use it to add tracking to short
// uppercase labels like "AM" and "PM".
type PaddedAdvanceSizer struct {
	DefaultSizer
}

// Sets the configurable horizontal padding value.
func (self *PaddedAdvanceSizer) SetPadding(value fixed.Int26_6) {
	self.DefaultSizer.padding = value
}

// Returns the configurable horizontal padding value.
func (self *PaddedAdvanceSizer) GetPadding() fixed.Int26_6 {
	return self.DefaultSizer.padding
}

// Satisfies the [Sizer] interface.
func (self *PaddedAdvanceSizer) GlyphAdvance(font *Font, buffer *Buffer, size fixed.Int26_6, g GlyphIndex) (fixed.Int26_6, error) {
	advance, err := self.DefaultSizer.GlyphAdvance(font, buffer, size, g)
	if err != nil { return 0, err }
	return advance + self.DefaultSizer.padding, nil
}
