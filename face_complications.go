package wface

import "time"
import "image"
import "image/draw"
import "image/color"
import "strconv"

import xdraw "golang.org/x/image/draw"

import "github.com/tinne26/wface/cache"
import "github.com/tinne26/wface/style"
import "github.com/tinne26/wface/layout"
import "github.com/tinne26/wface/complication"

// Spacing between icons and texts within a complication, in logical units.
const complicationGap = 4.0

// Draws the complications of the frame's regions onto the composite.
func (self *Face) drawComplications(composite *image.RGBA, frame layout.Frame, now time.Time) {
	for _, region := range frame.Regions {
		slot := self.slotFor(region.SlotID)
		if slot == nil || !slot.Drawable() { continue }
		rect := self.slotPixels(slot, region, frame, composite.Rect)
		if rect.Empty() { continue }
		self.drawSlot(composite, slot, rect, now, complication.LayerComplications)
	}
}

// Returns the slot with the given ID, or nil if there's none.
func (self *Face) slotFor(id int) *complication.Slot {
	for i := range self.slots {
		if self.slots[i].ID == id { return &self.slots[i] }
	}
	return nil
}

// Returns the pixel rectangle of the slot within the given bounds,
// applying the frame's complication scale and shift.
func (self *Face) slotPixels(slot *complication.Slot, region layout.Region, frame layout.Frame, bounds image.Rectangle) image.Rectangle {
	logical := slot.Resolve(region.Bounds)
	scale := frame.ComplicationScale
	if scale <= 0 { scale = 1 }
	logical = logical.Scale(scale).Add(frame.ComplicationShiftX, 0)
	return logical.ToPixels(bounds).Intersect(bounds)
}

// Draws a slot within the given pixel rectangle. Slots with render
// functions draw themselves; the rest are drawn according to their
// visual.
func (self *Face) drawSlot(target *image.RGBA, slot *complication.Slot, rect image.Rectangle, now time.Time, layers complication.Layers) {
	if slot.Render != nil {
		slot.Render(target, rect, now, layers)
		return
	}

	tint := complication.Tint(slot.Visual, self.palette.Secondary)
	switch data := slot.Data.(type) {
	case complication.MonoImage:
		drawTinted(target, fitRect(data.Image.Bounds(), rect), data.Image, tint)
		return
	case complication.SmallImage:
		xdraw.ApproxBiLinear.Scale(target, fitRect(data.Image.Bounds(), rect), data.Image, data.Image.Bounds(), draw.Over, nil)
		return
	case complication.ShortText:
		self.drawShortText(target, slot, data, rect, tint)
	}
}

func (self *Face) drawShortText(target *image.RGBA, slot *complication.Slot, data complication.ShortText, rect image.Rectangle, tint color.NRGBA) {
	var icon image.Image
	if data.Icon != "" { icon = self.loader.Icon(data.Icon) }
	gap := int(complicationGap*self.renderScale + 0.5)
	key := "complication/" + strconv.Itoa(slot.ID)

	switch visual := slot.Visual.(type) {
	case complication.Icon:
		if icon == nil { return }
		iconRect := scaleRect(rect, visual.Scale)
		drawTinted(target, fitRect(icon.Bounds(), iconRect), icon, tint)
	case complication.HorizontalText:
		text := data.Text
		if data.Title != "" { text = data.Title + " " + text }
		bitmap, err := self.complicationText(key, text, tint, visual.Scale)
		if err != nil { return }
		drawFitted(target, bitmap, rect)
	case complication.Horizontal:
		bitmap, err := self.complicationText(key, data.Text, tint, 1)
		if err != nil { return }
		textRect := rect
		if icon != nil {
			iconRect := image.Rect(rect.Min.X, rect.Min.Y, rect.Min.X + rect.Dy(), rect.Max.Y)
			drawTinted(target, fitRect(icon.Bounds(), iconRect), icon, tint)
			textRect.Min.X = iconRect.Max.X + gap
		}
		drawFitted(target, bitmap, textRect)
		if visual.Debug { drawFrame(target, rect, tint) }
	case complication.Vertical:
		bitmap, err := self.complicationText(key, data.Text, tint, 1)
		if err != nil { return }
		textRect := rect
		if icon != nil {
			textHeight := bitmap.Rect.Dy()
			iconRect := image.Rect(rect.Min.X, rect.Min.Y, rect.Max.X, rect.Max.Y - textHeight - gap)
			drawTinted(target, fitRect(icon.Bounds(), iconRect), icon, tint)
			textRect.Min.Y = iconRect.Max.Y + gap
		}
		drawFitted(target, bitmap, textRect)
		if visual.Debug { drawFrame(target, rect, tint) }
	}
}

// Returns the bitmap for a complication text. Each slot uses a single
// cache key, so changing texts simply replace the previous bitmap.
func (self *Face) complicationText(key string, text string, tint color.NRGBA, scale float64) (cache.Bitmap, error) {
	textStyle := self.roles.Get(style.RoleComplication)
	textStyle.Color = tint
	if scale > 0 { textStyle.Size *= scale }
	return self.glyph(key, text, textStyle, self.filledRasterizer)
}

// Draws a centered text bitmap within the rectangle, cropping it if
// it doesn't fit.
func drawFitted(target *image.RGBA, bitmap cache.Bitmap, rect image.Rectangle) {
	if rect.Empty() || bitmap.Rect.Empty() { return }
	cx, cy := layout.Center(rect)
	blit(clip(target, rect), bitmap, cx, cy)
}

// Draws the source as a mask tinted with the given color, scaled to
// the destination rectangle.
func drawTinted(target *image.RGBA, rect image.Rectangle, src image.Image, tint color.NRGBA) {
	if rect.Empty() { return }
	alphaMask := image.NewAlpha(rect)
	xdraw.ApproxBiLinear.Scale(alphaMask, rect, src, src.Bounds(), draw.Src, nil)
	draw.DrawMask(target, rect, image.NewUniform(tint), image.Point{}, alphaMask, rect.Min, draw.Over)
}

// Returns the largest rectangle with the aspect ratio of source that
// fits centered within the container.
func fitRect(source, container image.Rectangle) image.Rectangle {
	sw, sh := source.Dx(), source.Dy()
	cw, ch := container.Dx(), container.Dy()
	if sw <= 0 || sh <= 0 || cw <= 0 || ch <= 0 { return image.Rectangle{} }
	width, height := cw, sh*cw/sw
	if height > ch { width, height = sw*ch/sh, ch }
	x := container.Min.X + (cw - width)/2
	y := container.Min.Y + (ch - height)/2
	return image.Rect(x, y, x + width, y + height)
}

// Shrinks the rectangle about its center by the given factor. Zero or
// out of range factors leave it unchanged.
func scaleRect(rect image.Rectangle, factor float64) image.Rectangle {
	if !(factor > 0 && factor < 1) { return rect }
	dx := int(float64(rect.Dx())*(1 - factor)/2)
	dy := int(float64(rect.Dy())*(1 - factor)/2)
	return image.Rect(rect.Min.X + dx, rect.Min.Y + dy, rect.Max.X - dx, rect.Max.Y - dy)
}

// Draws a one pixel frame along the inner edge of the rectangle.
func drawFrame(target *image.RGBA, rect image.Rectangle, clr color.NRGBA) {
	bitmap := target.SubImage(rect).(*image.RGBA)
	drawBorder(bitmap, clr)
}
