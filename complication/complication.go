// The complication subpackage models the complication slots a face
// draws: their payloads, the visual kind used to render them and the
// layers a render call is drawing.
//
// Slots are owned by the platform (or a host) and only read by faces.
package complication

import "time"
import "image"
import "image/color"
import "image/draw"

import "github.com/tinne26/wface/layout"

// Watch face layers. Render calls receive the set of layers being drawn.
type Layers uint8
const (
	LayerBase Layers = 1 << iota // time glyphs and indicators
	LayerComplications
	LayerHighlight

	LayersAll = LayerBase | LayerComplications | LayerHighlight
)

// Returns whether all the given layers are in the set.
func (self Layers) Has(layers Layers) bool { return self & layers == layers }

// A complication payload. The marker method restricts the
// implementations to [ShortText], [MonoImage] and [SmallImage].
type Data interface { complicationData() }

// A short text payload, like "78%" or "12°". The title is optional.
type ShortText struct {
	Text string
	Title string
	Icon string // optional icon name, resolved through the face's loader
}

// A monochromatic image payload, used as a mask and tinted.
type MonoImage struct {
	Image image.Image
}

// A small full color image payload.
type SmallImage struct {
	Image image.Image
}

func (ShortText) complicationData() {}
func (MonoImage) complicationData() {}
func (SmallImage) complicationData() {}

// A function that draws a slot. Faces call it once per frame with the
// target surface, the slot bounds in pixels, the current time and the
// layers being drawn. When set, it replaces the built-in visuals.
type RenderFunc func(target draw.Image, bounds image.Rectangle, now time.Time, layers Layers)

// A complication slot.
type Slot struct {
	ID int // matches layout region slot IDs
	Bounds layout.Rect // logical bounds; empty means using the layout region
	Enabled bool
	Visual Visual
	Data Data
	Render RenderFunc
}

// Returns whether the slot has anything to draw.
func (self *Slot) Drawable() bool {
	if !self.Enabled { return false }
	if self.Render != nil { return true }
	if self.Data == nil || self.Visual == nil { return false }
	_, invisible := self.Visual.(Invisible)
	return !invisible
}

// Returns the logical bounds for the slot given the layout region
// assigned to it.
func (self *Slot) Resolve(region layout.Rect) layout.Rect {
	if self.Bounds.Empty() { return region }
	return self.Bounds
}

// Returns the tint to use for the visual, falling back to the given
// color when the visual doesn't set one.
func Tint(visual Visual, fallback color.NRGBA) color.NRGBA {
	var tint color.NRGBA
	switch v := visual.(type) {
	case Vertical: tint = v.Tint
	case Horizontal: tint = v.Tint
	case HorizontalText: tint = v.Tint
	case Icon: tint = v.Tint
	}
	if tint.A == 0 { return fallback }
	return tint
}
