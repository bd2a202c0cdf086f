package typeset

import "image"
import "image/color"

// Creates an RGBA image with the same bounds as the given mask, filled
// with the given color modulated by the mask's alpha.
func Tint(alphaMask *image.Alpha, clr color.NRGBA) *image.RGBA {
	bitmap := image.NewRGBA(alphaMask.Rect)
	if clr.A == 0 { return bitmap }
	width, height := alphaMask.Rect.Dx(), alphaMask.Rect.Dy()
	for y := 0; y < height; y++ {
		src := alphaMask.Pix[y*alphaMask.Stride : y*alphaMask.Stride + width]
		dst := bitmap.Pix[y*bitmap.Stride : y*bitmap.Stride + width*4]
		for x, value := range src {
			if value == 0 { continue }
			alpha := mul255(uint32(value), uint32(clr.A))
			dst[x*4 + 0] = uint8(mul255(uint32(clr.R), alpha))
			dst[x*4 + 1] = uint8(mul255(uint32(clr.G), alpha))
			dst[x*4 + 2] = uint8(mul255(uint32(clr.B), alpha))
			dst[x*4 + 3] = uint8(alpha)
		}
	}
	return bitmap
}

// Creates a transparent bitmap covering the given logical box, with
// (0, 0) at its center. Used for placeholder texts that must keep
// their layout but stay invisible.
func Blank(width, height float64) *image.RGBA {
	w, h := int(width + 0.5), int(height + 0.5)
	if w < 0 { w = 0 }
	if h < 0 { h = 0 }
	return image.NewRGBA(image.Rect(-w/2, -h/2, w - w/2, h - h/2))
}

// (a*b)/255 with rounding.
func mul255(a, b uint32) uint32 {
	product := a*b + 128
	return (product + (product >> 8)) >> 8
}
