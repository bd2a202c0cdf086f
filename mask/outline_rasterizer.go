package mask

import "math"
import "image"

import "golang.org/x/image/font/sfnt"
import "golang.org/x/image/math/fixed"

var _ Rasterizer = (*OutlineRasterizer)(nil)

// A rasterizer that draws only a band around the edges of the glyphs.
//
// The band is computed from the filled mask: regular outlines keep the
// pixels removed by an erosion of the given thickness (the band grows
// inwards, so glyph bounds are preserved), while bold outlines use
// a band centered on the edge (half dilation, half erosion), which
// makes glyphs slightly bigger.
//
// Thicknesses are given in pixels and rounded to whole pixels, with
// a minimum of one pixel.
type OutlineRasterizer struct {
	filled DefaultRasterizer
	thickness fixed.Int26_6
	centered bool
}

// Creates an outline rasterizer with the band growing inwards.
func NewOutlineRasterizer(thickness float64) *OutlineRasterizer {
	rasterizer := &OutlineRasterizer{}
	rasterizer.SetThickness(thickness)
	return rasterizer
}

// Creates an outline rasterizer with the band centered on the glyph edges.
func NewBoldOutlineRasterizer(thickness float64) *OutlineRasterizer {
	rasterizer := &OutlineRasterizer{ centered: true }
	rasterizer.SetThickness(thickness)
	return rasterizer
}

// Sets the thickness of the outline band, in pixels. Values below one
// are raised to one. Values above 255 are clamped.
func (self *OutlineRasterizer) SetThickness(thickness float64) {
	if !(thickness >= 1) { thickness = 1 } // also catches NaN
	if thickness > 255 { thickness = 255 }
	self.thickness = fixed.Int26_6(math.Round(thickness*64))
}

// Returns the thickness of the outline band, in pixels.
func (self *OutlineRasterizer) Thickness() float64 {
	return float64(self.thickness)/64.0
}

// Returns whether the band is centered on the glyph edges.
func (self *OutlineRasterizer) Centered() bool { return self.centered }

// Satisfies the [Rasterizer] interface. The signature has the following
// shape:
//  - 0x00AB000000000000 bits being the self signature byte.
//  - 0x0000000100000000 bit set for centered (bold) outlines.
//  - 0x00000000FFFFFFFF bits encoding the thickness in 64ths of a pixel.
func (self *OutlineRasterizer) Signature() uint64 {
	signature := uint64(0x00AB0000_00000000) | uint64(uint32(self.thickness))
	if self.centered { signature |= 0x00000001_00000000 }
	return signature
}

// Returns the outer (dilation) and inner (erosion) radiuses in pixels.
func (self *OutlineRasterizer) radiuses() (int, int) {
	whole := self.thickness.Round()
	if whole < 1 { whole = 1 }
	if !self.centered { return 0, whole }
	outer := whole/2
	inner := whole - outer
	return outer, inner
}

// Satisfies the [Rasterizer] interface.
func (self *OutlineRasterizer) Rasterize(outline sfnt.Segments, origin fixed.Point26_6) (*image.Alpha, error) {
	outer, inner := self.radiuses()
	self.filled.padding = outer + 1
	filled, err := self.filled.Rasterize(outline, origin)
	if err != nil { return nil, err }

	eroded := morphology(filled, inner, false)
	var band *image.Alpha
	if outer > 0 {
		band = morphology(filled, outer, true)
	} else {
		band = filled
	}

	// subtract eroded from band, in place
	for i, value := range eroded.Pix {
		if value >= band.Pix[i] {
			band.Pix[i] = 0
		} else {
			band.Pix[i] -= value
		}
	}
	return band, nil
}

// Grayscale erosion (min filter) or dilation (max filter) with a square
// window of the given radius. Pixels outside the mask are considered
// transparent. The source mask is not modified.
func morphology(mask *image.Alpha, radius int, dilate bool) *image.Alpha {
	result := image.NewAlpha(mask.Rect)
	if radius <= 0 {
		copy(result.Pix, mask.Pix)
		return result
	}

	width, height := mask.Rect.Dx(), mask.Rect.Dy()
	horz := image.NewAlpha(mask.Rect)
	for y := 0; y < height; y++ {
		src := mask.Pix[y*mask.Stride : ]
		dst := horz.Pix[y*horz.Stride : ]
		for x := 0; x < width; x++ {
			dst[x] = windowValue(src, 1, x, width, radius, dilate)
		}
	}
	for x := 0; x < width; x++ {
		src := horz.Pix[x : ]
		for y := 0; y < height; y++ {
			result.Pix[y*result.Stride + x] = windowValue(src, horz.Stride, y, height, radius, dilate)
		}
	}
	return result
}

// Returns the min or max of the values in [index - radius, index + radius]
// for the given strided line.
func windowValue(line []uint8, step, index, length, radius int, dilate bool) uint8 {
	var value uint8
	if !dilate { value = 255 }
	for i := index - radius; i <= index + radius; i++ {
		if i < 0 || i >= length {
			if !dilate { return 0 }
			continue
		}
		if dilate {
			value = maxUint8(value, line[i*step])
			if value == 255 { return value }
		} else {
			value = minUint8(value, line[i*step])
			if value == 0 { return value }
		}
	}
	return value
}
