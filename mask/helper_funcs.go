package mask

import "image"

import "golang.org/x/image/math/fixed"

// Given the glyph bounds and an origin position indicating the subpixel
// positioning (only lowest bits will be taken into account), it returns
// the bounding integer width and heights, the normalization offset to be
// applied to keep the coordinates in the positive plane, and the final
// offset to be applied on the final mask to align its bounds to the glyph
// origin. The padding adds empty pixels on every side, so effects can
// grow beyond the outline bounds.
func figureOutBounds(bounds fixed.Rectangle26_6, origin fixed.Point26_6, padding int) (int, int, fixed.Point26_6, image.Point) {
	floorMinX := bounds.Min.X.Floor() - padding
	floorMinY := bounds.Min.Y.Floor() - padding
	maskCorrection := image.Pt(floorMinX, floorMinY)

	var normOffset fixed.Point26_6
	normOffset.X = -fixed.I(floorMinX) + (origin.X & 0x3F)
	normOffset.Y = -fixed.I(floorMinY) + (origin.Y & 0x3F)
	width  := (bounds.Max.X + normOffset.X).Ceil() + padding
	height := (bounds.Max.Y + normOffset.Y).Ceil() + padding
	return width, height, normOffset, maskCorrection
}

func toFloat32s(point fixed.Point26_6) (float32, float32) {
	return float32(point.X)/64.0, float32(point.Y)/64.0
}

func minUint8(a, b uint8) uint8 {
	if a <= b { return a }
	return b
}

func maxUint8(a, b uint8) uint8 {
	if a >= b { return a }
	return b
}
