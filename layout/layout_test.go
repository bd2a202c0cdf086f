package layout

import "image"
import "testing"

import "github.com/tinne26/wface/style"

func TestScale(t *testing.T) {
	tests := []struct {
		bounds image.Rectangle
		expected float64
	}{
		{image.Rect(0, 0, 384, 384), 1},
		{image.Rect(0, 0, 768, 400), 400.0/384.0},
		{image.Rect(10, 10, 202, 500), 0.5},
		{image.Rect(0, 0, 0, 100), 0},
	}
	for i, test := range tests {
		got := Scale(test.bounds)
		if got != test.expected { t.Fatalf("test #%d: expected %f, got %f", i, test.expected, got) }
	}
}

func TestInteractiveFrame(t *testing.T) {
	config := style.Default()
	frame := Compute(Input{ Config: config, TimeScale: 1 })
	if frame.HourY != -InteractiveTimeOffset || frame.MinuteY != InteractiveTimeOffset {
		t.Fatalf("unexpected offsets %f/%f", frame.HourY, frame.MinuteY)
	}
	if frame.TimeScale != InteractiveTimeScale { t.Fatalf("expected %f, got %f", InteractiveTimeScale, frame.TimeScale) }
	if frame.GlyphOpacity != 1 { t.Fatalf("expected %f, got %f", 1.0, frame.GlyphOpacity) }
	if frame.CompositeOpacity != 1 { t.Fatalf("expected %f, got %f", 1.0, frame.CompositeOpacity) }
	if frame.ComplicationScale != 1 { t.Fatalf("expected %f, got %f", 1.0, frame.ComplicationScale) }
	if frame.UseAmbientGlyphs { t.Fatal("didn't expect ambient glyphs") }
	if !frame.DrawSeconds || frame.DrawAmPm || !frame.DrawRing { t.Fatal("unexpected info1 visibility") }
	if !frame.DrawComplications || len(frame.Regions) != 3 { t.Fatal("expected info1 complications") }
}

func TestAmbientFrame(t *testing.T) {
	config := style.Default()
	frame := Compute(Input{ Config: config, TimeScale: 0, Ambient: true })
	if !frame.UseAmbientGlyphs { t.Fatal("expected ambient glyphs at exactly 0") }
	if frame.HourY != -AmbientOutlineOffset { t.Fatalf("expected %f, got %f", -AmbientOutlineOffset, frame.HourY) }
	if frame.CompositeOpacity != 0 { t.Fatalf("expected %f, got %f", 0.0, frame.CompositeOpacity) }
	if frame.DrawComplications { t.Fatal("didn't expect complications in ambient") }
	if frame.GlyphOpacity != 1 { t.Fatal("expected ambient glyphs to be opaque") }

	almost := Compute(Input{ Config: config, TimeScale: 1e-9, Ambient: true })
	if almost.UseAmbientGlyphs { t.Fatal("ambient glyphs must only be used at exactly 0") }
	if almost.GlyphOpacity < MinGlyphOpacity { t.Fatalf("opacity %f below floor", almost.GlyphOpacity) }

	transitioning := Compute(Input{ Config: config, TimeScale: 0, Ambient: false })
	if transitioning.UseAmbientGlyphs { t.Fatal("ambient glyphs need settled ambient mode") }

	config.AmbientStyle = style.AmbientFilled
	filled := Compute(Input{ Config: config, TimeScale: 0, Ambient: true })
	if filled.HourY != -AmbientFilledOffset { t.Fatalf("expected %f, got %f", -AmbientFilledOffset, filled.HourY) }

	config.AmbientStyle = style.AmbientBigOutline
	big := Compute(Input{ Config: config, TimeScale: 0, Ambient: true })
	if big.AmbientGlyphScale != style.BigAmbientFactor || big.TimeScale != style.BigAmbientFactor {
		t.Fatalf("unexpected big ambient scales %f/%f", big.AmbientGlyphScale, big.TimeScale)
	}
}

func TestDetailedAmbient(t *testing.T) {
	config := style.Default()
	config.AmbientStyle = style.AmbientDetailed
	frame := Compute(Input{ Config: config, TimeScale: 0, Ambient: true })
	if frame.CompositeOpacity != DetailedCompositeOpacity {
		t.Fatalf("expected %f, got %f", DetailedCompositeOpacity, frame.CompositeOpacity)
	}
	if !frame.DrawComplications { t.Fatal("expected detailed ambient to keep complications") }
	if frame.ComplicationScale != AmbientComplicationScale { t.Fatal("unexpected complication scale") }
}

func TestMonotonicTransition(t *testing.T) {
	config := style.Default()
	prev := Compute(Input{ Config: config, TimeScale: 0 })
	for i := 1; i <= 100; i++ {
		frame := Compute(Input{ Config: config, TimeScale: float64(i)/100 })
		if frame.MinuteY < prev.MinuteY { t.Fatalf("minute offset decreased at step %d", i) }
		if frame.CompositeOpacity < prev.CompositeOpacity { t.Fatalf("opacity decreased at step %d", i) }
		if frame.GlyphOpacity < MinGlyphOpacity || frame.GlyphOpacity > 1 {
			t.Fatalf("glyph opacity %f out of range", frame.GlyphOpacity)
		}
		prev = frame
	}
}

func TestSportShift(t *testing.T) {
	config := style.Default()
	config.LayoutStyle = style.LayoutSport
	ambient := Compute(Input{ Config: config, TimeScale: 0, Ambient: true })
	if ambient.TimeShiftX != SportShift { t.Fatalf("expected %f, got %f", SportShift, ambient.TimeShiftX) }
	interactive := Compute(Input{ Config: config, TimeScale: 1 })
	if interactive.TimeShiftX != 0 || interactive.ComplicationShiftX != 0 { t.Fatal("expected no shift at 1") }

	config.LayoutStyle = style.LayoutInfo1
	if Compute(Input{ Config: config, TimeScale: 0 }).TimeShiftX != 0 { t.Fatal("unexpected shift") }
}

func TestLayoutVisibility(t *testing.T) {
	if !DrawsAmPm(style.LayoutInfo2, false) || DrawsAmPm(style.LayoutInfo2, true) {
		t.Fatal("unexpected AM/PM visibility on info2")
	}
	if DrawsSeconds(style.LayoutFocus) || DrawsAmPm(style.LayoutFocus, false) || len(Regions(style.LayoutFocus)) != 0 {
		t.Fatal("expected focus to be minimal")
	}
	if DrawsSeconds(style.LayoutInfo4) || len(Regions(style.LayoutInfo4)) != 4 {
		t.Fatal("unexpected info4 layout")
	}
}

func TestRectToPixels(t *testing.T) {
	bounds := image.Rect(0, 0, 768, 768)
	got := Centered(0, 0, 10, 20).ToPixels(bounds)
	expected := image.Rect(374, 364, 394, 404)
	if got != expected { t.Fatalf("expected %v, got %v", expected, got) }
}
