// The sizer subpackage provides the font metrics used to lay out time
// glyphs: vertical metrics to center text, advances and kerning to
// place consecutive glyphs.
package sizer

import . "golang.org/x/image/font/sfnt"
import "golang.org/x/image/math/fixed"

// When laying out text, we need some information related to the
// "font metrics". For example, how much we need to advance after
// drawing a glyph or what's the kerning between a specific pair
// of glyphs.
//
// Sizers are the interface that the typesetter uses to obtain that
// information. Methods never panic on bad font data; the errors
// are returned instead.
type Sizer interface {
	// Returns the ascent of the given font, at the given size,
	// as an absolute value.
	//
	// The given font and sizes must be consistent with the
	// latest NotifyChange() call.
	Ascent(*Font, *Buffer, fixed.Int26_6) fixed.Int26_6

	// Returns the descent of the given font, at the given size,
	// as an absolute value.
	Descent(*Font, *Buffer, fixed.Int26_6) fixed.Int26_6

	// Returns the height of capital letters and digits of the
	// given font, at the given size. Used to center numbers.
	CapHeight(*Font, *Buffer, fixed.Int26_6) fixed.Int26_6

	// Returns the line height of the given font at the given size.
	LineHeight(*Font, *Buffer, fixed.Int26_6) fixed.Int26_6

	// Returns the advance of the given glyph for the given font
	// and size.
	GlyphAdvance(*Font, *Buffer, fixed.Int26_6, GlyphIndex) (fixed.Int26_6, error)

	// Returns the kerning value between two glyphs of the given font
	// and size.
	Kern(*Font, *Buffer, fixed.Int26_6, GlyphIndex, GlyphIndex) (fixed.Int26_6, error)

	// Must be called to sync the state of the sizer and allow it
	// to do any caching it may want to do in relation to the given
	// active font or size.
	NotifyChange(*Font, *Buffer, fixed.Int26_6) error
}
