package mask

import "image"
import "image/draw"

import "golang.org/x/image/vector"
import "golang.org/x/image/font/sfnt"
import "golang.org/x/image/math/fixed"

var _ Rasterizer = (*DefaultRasterizer)(nil)

// The DefaultRasterizer is a wrapper to make [golang.org/x/image/vector.Rasterizer]
// conform to the [Rasterizer] interface. It produces filled glyph masks.
type DefaultRasterizer struct {
	rasterizer vector.Rasterizer
	normOffset fixed.Point26_6 // offset to normalize points to the positive
	                           // quadrant starting from the fractional coords
	padding int

	// Notice that the x/image/vector rasterizer expects coords in the
	// positive quadrant, which is why we need so many offsets here.
}

// Satisfies the [Rasterizer] interface. The signature for the
// default rasterizer is always zero.
func (self *DefaultRasterizer) Signature() uint64 { return 0 }

// Moves the current position to the given point.
func (self *DefaultRasterizer) MoveTo(point fixed.Point26_6) {
	x, y := toFloat32s(point.Add(self.normOffset))
	self.rasterizer.MoveTo(x, y)
}

// Creates a straight boundary from the current position to the given point.
func (self *DefaultRasterizer) LineTo(point fixed.Point26_6) {
	x, y := toFloat32s(point.Add(self.normOffset))
	self.rasterizer.LineTo(x, y)
}

// Creates a quadratic Bézier curve (also known as a conic Bézier curve)
// to the given target passing through the given control point.
func (self *DefaultRasterizer) QuadTo(control, target fixed.Point26_6) {
	cx, cy := toFloat32s(control.Add(self.normOffset))
	tx, ty := toFloat32s(target.Add(self.normOffset))
	self.rasterizer.QuadTo(cx, cy, tx, ty)
}

// Creates a cubic Bézier curve to the given target passing through
// the given control points.
func (self *DefaultRasterizer) CubeTo(controlA, controlB, target fixed.Point26_6) {
	cax, cay := toFloat32s(controlA.Add(self.normOffset))
	cbx, cby := toFloat32s(controlB.Add(self.normOffset))
	tx , ty  := toFloat32s(target.Add(self.normOffset))
	self.rasterizer.CubeTo(cax, cay, cbx, cby, tx, ty)
}

// Satisfies the [Rasterizer] interface.
func (self *DefaultRasterizer) Rasterize(outline sfnt.Segments, origin fixed.Point26_6) (*image.Alpha, error) {
	// get outline bounds
	bounds := outline.Bounds()

	// prepare rasterizer
	var width, height int
	var rectOffset image.Point
	width, height, self.normOffset, rectOffset = figureOutBounds(bounds, origin, self.padding)
	self.rasterizer.Reset(width, height)
	self.rasterizer.DrawOp = draw.Src

	// allocate glyph mask
	mask := image.NewAlpha(self.rasterizer.Bounds())

	// process outline
	processOutline(self, outline)

	// since the source texture is a uniform (an image that returns the same
	// color for any coordinate), the value of the point at which we want to
	// start sampling the texture (the fourth parameter) is unimportant.
	self.rasterizer.Draw(mask, mask.Bounds(), image.Opaque, image.Point{})

	// translate the mask to its final position
	mask.Rect = mask.Rect.Add(rectOffset)
	return mask, nil
}
