package complication

import "image/color"

// The way a slot is drawn. Implementations are [Vertical],
// [Horizontal], [HorizontalText], [Icon] and [Invisible].
type Visual interface { visualKind() string }

// Icon above text, for square-ish regions.
type Vertical struct {
	Tint color.NRGBA // zero means the face's secondary color
	Debug bool
}

// Icon on the left, text on the right.
type Horizontal struct {
	Tint color.NRGBA
	Debug bool
}

// Text only, laid out horizontally, with the title (if any) before
// the text.
type HorizontalText struct {
	Tint color.NRGBA
	Scale float64 // text scale, zero means 1
}

// Icon only.
type Icon struct {
	Tint color.NRGBA
	Scale float64 // icon scale, zero means 1
}

// Not drawn at all. Useful to keep a slot reserved.
type Invisible struct{}

func (Vertical) visualKind() string { return "vertical" }
func (Horizontal) visualKind() string { return "horizontal" }
func (HorizontalText) visualKind() string { return "horizontal_text" }
func (Icon) visualKind() string { return "icon" }
func (Invisible) visualKind() string { return "invisible" }

// Returns the name of the visual kind, or "none" for nil visuals.
func KindName(visual Visual) string {
	if visual == nil { return "none" }
	return visual.visualKind()
}
