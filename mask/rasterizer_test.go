package mask

import "image"
import "image/color"
import "testing"

import "golang.org/x/image/font/sfnt"
import "golang.org/x/image/math/fixed"

// Returns a closed square outline with the given min corner and side.
func squareOutline(x, y, side int) sfnt.Segments {
	pt := func(px, py int) fixed.Point26_6 { return fixed.P(px, py) }
	return sfnt.Segments{
		{ Op: sfnt.SegmentOpMoveTo, Args: [3]fixed.Point26_6{pt(x, y)} },
		{ Op: sfnt.SegmentOpLineTo, Args: [3]fixed.Point26_6{pt(x + side, y)} },
		{ Op: sfnt.SegmentOpLineTo, Args: [3]fixed.Point26_6{pt(x + side, y + side)} },
		{ Op: sfnt.SegmentOpLineTo, Args: [3]fixed.Point26_6{pt(x, y + side)} },
		{ Op: sfnt.SegmentOpLineTo, Args: [3]fixed.Point26_6{pt(x, y)} },
	}
}

func alphaAt(mask *image.Alpha, x, y int) uint8 {
	return mask.AlphaAt(x, y).A
}

func TestDefaultRasterizer(t *testing.T) {
	mask, err := Rasterize(squareOutline(-5, -5, 10), &DefaultRasterizer{}, fixed.Point26_6{})
	if err != nil { t.Fatal(err) }
	expected := image.Rect(-5, -5, 5, 5)
	if mask.Rect != expected { t.Fatalf("expected %v, got %v", expected, mask.Rect) }
	for y := -5; y < 5; y++ {
		for x := -5; x < 5; x++ {
			if alphaAt(mask, x, y) != 255 { t.Fatalf("expected opaque pixel at (%d, %d)", x, y) }
		}
	}

	empty, err := Rasterize(sfnt.Segments{}, &DefaultRasterizer{}, fixed.Point26_6{})
	if err != nil || empty != nil { t.Fatal("expected nil mask for empty outline") }
}

func TestOutlineRasterizer(t *testing.T) {
	rasterizer := NewOutlineRasterizer(2)
	mask, err := Rasterize(squareOutline(0, 0, 12), rasterizer, fixed.Point26_6{})
	if err != nil { t.Fatal(err) }
	if !mask.Rect.In(image.Rect(-2, -2, 14, 14)) { t.Fatalf("unexpected bounds %v", mask.Rect) }

	tests := []struct { x, y int; expected uint8 }{
		{0, 6, 255}, {1, 6, 255}, {2, 6, 0}, {6, 6, 0}, {9, 6, 0},
		{10, 6, 255}, {11, 6, 255}, {12, 6, 0}, {6, 0, 255}, {6, 11, 255},
	}
	for _, test := range tests {
		got := alphaAt(mask, test.x, test.y)
		if got != test.expected {
			t.Fatalf("at (%d, %d) expected %d, got %d", test.x, test.y, test.expected, got)
		}
	}
}

func TestBoldOutlineRasterizer(t *testing.T) {
	rasterizer := NewBoldOutlineRasterizer(4)
	mask, err := Rasterize(squareOutline(0, 0, 12), rasterizer, fixed.Point26_6{})
	if err != nil { t.Fatal(err) }

	tests := []struct { x, y int; expected uint8 }{
		{-3, 6, 0}, {-2, 6, 255}, {-1, 6, 255}, {0, 6, 255}, {1, 6, 255},
		{2, 6, 0}, {6, 6, 0}, {13, 6, 255}, {14, 6, 0},
	}
	for _, test := range tests {
		got := alphaAt(mask, test.x, test.y)
		if got != test.expected {
			t.Fatalf("at (%d, %d) expected %d, got %d", test.x, test.y, test.expected, got)
		}
	}
}

func TestSignatures(t *testing.T) {
	signatures := []uint64{
		(&DefaultRasterizer{}).Signature(),
		NewOutlineRasterizer(2).Signature(),
		NewOutlineRasterizer(3).Signature(),
		NewBoldOutlineRasterizer(2).Signature(),
	}
	for i := 0; i < len(signatures); i++ {
		for j := i + 1; j < len(signatures); j++ {
			if signatures[i] == signatures[j] {
				t.Fatalf("signatures %d and %d collide (0x%X)", i, j, signatures[i])
			}
		}
	}

	rasterizer := NewOutlineRasterizer(0.2)
	if rasterizer.Thickness() != 1 { t.Fatalf("expected thickness %f, got %f", 1.0, rasterizer.Thickness()) }
}

func TestMorphology(t *testing.T) {
	mask := image.NewAlpha(image.Rect(0, 0, 7, 7))
	mask.SetAlpha(3, 3, colorAlpha(200))
	dilated := morphology(mask, 1, true)
	for y := 2; y <= 4; y++ {
		for x := 2; x <= 4; x++ {
			if alphaAt(dilated, x, y) != 200 { t.Fatalf("expected dilation at (%d, %d)", x, y) }
		}
	}
	if alphaAt(dilated, 1, 3) != 0 { t.Fatal("dilation went too far") }
	eroded := morphology(dilated, 1, false)
	if alphaAt(eroded, 3, 3) != 200 || alphaAt(eroded, 2, 3) != 0 { t.Fatal("unexpected erosion result") }
	if alphaAt(mask, 2, 2) != 0 { t.Fatal("source mask must not be modified") }
}

func colorAlpha(value uint8) color.Alpha { return color.Alpha{value} }
