package complication

import "time"
import "image"
import "image/color"
import "image/draw"
import "testing"

import "github.com/tinne26/wface/layout"

func TestDrawable(t *testing.T) {
	battery := ShortText{ Text: "78%", Icon: "battery" }
	tests := []struct {
		slot Slot
		expected bool
	}{
		{Slot{ Enabled: false, Visual: Horizontal{}, Data: battery }, false},
		{Slot{ Enabled: true, Visual: Horizontal{}, Data: battery }, true},
		{Slot{ Enabled: true, Visual: Invisible{}, Data: battery }, false},
		{Slot{ Enabled: true, Visual: Icon{} }, false},
		{Slot{ Enabled: true, Data: battery }, false},
		{Slot{ Enabled: true, Render: func(draw.Image, image.Rectangle, time.Time, Layers) {} }, true},
	}
	for i, test := range tests {
		if test.slot.Drawable() != test.expected {
			t.Fatalf("test #%d: expected %t, got %t", i, test.expected, !test.expected)
		}
	}
}

func TestResolve(t *testing.T) {
	region := layout.Centered(0, -150, 100, 40)
	slot := Slot{}
	if slot.Resolve(region) != region { t.Fatal("expected layout region") }
	slot.Bounds = layout.Centered(10, 10, 20, 20)
	if slot.Resolve(region) != slot.Bounds { t.Fatal("expected slot bounds override") }
}

func TestTintAndKinds(t *testing.T) {
	fallback := color.NRGBA{1, 2, 3, 255}
	red := color.NRGBA{255, 0, 0, 255}
	if Tint(Vertical{}, fallback) != fallback { t.Fatal("expected fallback tint") }
	if Tint(Icon{ Tint: red }, fallback) != red { t.Fatal("expected icon tint") }
	if Tint(Invisible{}, fallback) != fallback { t.Fatal("expected fallback tint") }

	visuals := []Visual{ Vertical{}, Horizontal{}, HorizontalText{}, Icon{}, Invisible{}, nil }
	expected := []string{ "vertical", "horizontal", "horizontal_text", "icon", "invisible", "none" }
	for i, visual := range visuals {
		if KindName(visual) != expected[i] { t.Fatalf("expected %s, got %s", expected[i], KindName(visual)) }
	}
}

func TestLayers(t *testing.T) {
	layers := LayerBase | LayerComplications
	if !layers.Has(LayerBase) || !layers.Has(LayerComplications) { t.Fatal("expected layers") }
	if layers.Has(LayerHighlight) || layers.Has(LayersAll) { t.Fatal("unexpected highlight layer") }
}
