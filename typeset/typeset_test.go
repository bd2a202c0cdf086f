package typeset

import "errors"
import "math"
import "image"
import "image/color"
import "testing"

import "golang.org/x/image/font/sfnt"
import "golang.org/x/image/font/gofont/gobold"

import "github.com/tinne26/wface/mask"

func loadTestFont(t *testing.T) *sfnt.Font {
	font, err := sfnt.Parse(gobold.TTF)
	if err != nil { t.Fatalf("unexpected error: %s", err) }
	return font
}

func countOpaque(alphaMask *image.Alpha) int {
	count := 0
	for _, value := range alphaMask.Pix {
		if value > 127 { count += 1 }
	}
	return count
}

func TestMaskIsCentered(t *testing.T) {
	font := loadTestFont(t)
	typesetter := New()
	for _, text := range []string{"07", "14", "88", "00"} {
		alphaMask, err := typesetter.Mask(font, 100, text)
		if err != nil { t.Fatalf("%s: unexpected error: %s", text, err) }
		bounds := alphaMask.Rect
		if bounds.Empty() { t.Fatalf("%s: empty mask", text) }
		if bounds.Min.X >= 0 || bounds.Max.X <= 0 || bounds.Min.Y >= 0 || bounds.Max.Y <= 0 {
			t.Fatalf("%s: expected bounds around the anchor, got %v", text, bounds)
		}
		if abs(bounds.Min.Y + bounds.Max.Y) > 6 {
			t.Fatalf("%s: expected vertical centering, got %v", text, bounds)
		}
	}

	metrics, err := typesetter.Measure(font, 100, "07")
	if err != nil { t.Fatal(err) }
	if metrics.Advance <= 0 || metrics.CapHeight <= 0 || metrics.CapHeight >= metrics.Ascent {
		t.Fatalf("unexpected metrics %+v", metrics)
	}
	single, _ := typesetter.Measure(font, 100, "0")
	if math.Abs(metrics.Advance - 2*single.Advance) > 1 {
		t.Fatalf("expected two digits to take twice the advance: %f vs %f", metrics.Advance, single.Advance)
	}
}

func TestEmptyAndInvalidTexts(t *testing.T) {
	font := loadTestFont(t)
	typesetter := New()

	alphaMask, err := typesetter.Mask(font, 40, "  ")
	if err != nil { t.Fatal(err) }
	if !alphaMask.Rect.Empty() { t.Fatalf("expected empty mask, got %v", alphaMask.Rect) }

	_, err = typesetter.Mask(font, 40, "1\U0002FFFE")
	if !errors.Is(err, ErrMissingGlyph) { t.Fatalf("expected ErrMissingGlyph, got %v", err) }

	for _, size := range []float64{0, -3, math.NaN(), math.Inf(1)} {
		_, err = typesetter.Mask(font, size, "12")
		if !errors.Is(err, ErrInvalidSize) { t.Fatalf("expected ErrInvalidSize for %f, got %v", size, err) }
	}
}

func TestOutlineMask(t *testing.T) {
	font := loadTestFont(t)
	typesetter := New()
	filled, err := typesetter.Mask(font, 120, "08")
	if err != nil { t.Fatal(err) }

	typesetter.SetRasterizer(mask.NewOutlineRasterizer(3))
	outlined, err := typesetter.Mask(font, 120, "08")
	if err != nil { t.Fatal(err) }
	if !outlined.Rect.Eq(filled.Rect.Inset(-1)) && !outlined.Rect.In(filled.Rect.Inset(-2)) {
		t.Fatalf("unexpected outline bounds %v vs %v", outlined.Rect, filled.Rect)
	}
	a, b := countOpaque(filled), countOpaque(outlined)
	if b == 0 || b >= a { t.Fatalf("expected outline to cover less than the fill (%d vs %d)", b, a) }
}

func TestTint(t *testing.T) {
	alphaMask := image.NewAlpha(image.Rect(-1, -1, 1, 1))
	alphaMask.SetAlpha(-1, -1, color.Alpha{255})
	alphaMask.SetAlpha(0, 0, color.Alpha{128})
	bitmap := Tint(alphaMask, color.NRGBA{255, 0, 100, 255})
	if bitmap.Rect != alphaMask.Rect { t.Fatal("expected equal bounds") }
	if bitmap.RGBAAt(-1, -1) != (color.RGBA{255, 0, 100, 255}) {
		t.Fatalf("unexpected color %v", bitmap.RGBAAt(-1, -1))
	}
	half := bitmap.RGBAAt(0, 0)
	if half.A != 128 || half.R != 128 || half.B != 50 { t.Fatalf("unexpected premultiplied color %v", half) }
	if bitmap.RGBAAt(0, -1).A != 0 { t.Fatal("expected transparent pixel") }

	blank := Blank(10, 7)
	if blank.Rect.Dx() != 10 || blank.Rect.Dy() != 7 || blank.Rect.Min.X != -5 {
		t.Fatalf("unexpected blank bounds %v", blank.Rect)
	}
}

func abs(value int) int {
	if value < 0 { return -value }
	return value
}
