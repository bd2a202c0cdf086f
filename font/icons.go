package font

import "image"
import "image/color"

import "github.com/fogleman/gg"

// Names of the built-in icons.
const (
	IconBattery = "battery"
	IconSteps = "steps"
	IconHeart = "heart"
)

const iconSize = 48

func builtinIcons() map[string]image.Image {
	return map[string]image.Image{
		IconBattery: drawBatteryIcon(),
		IconSteps: drawStepsIcon(),
		IconHeart: drawHeartIcon(),
	}
}

func newIconContext() *gg.Context {
	dc := gg.NewContext(iconSize, iconSize)
	dc.SetColor(color.White)
	return dc
}

func drawBatteryIcon() image.Image {
	dc := newIconContext()
	dc.SetLineWidth(3)
	dc.DrawRoundedRectangle(6, 14, 32, 20, 3)
	dc.Stroke()
	dc.DrawRectangle(38, 20, 4, 8) // tip
	dc.Fill()
	dc.DrawRectangle(10, 18, 16, 12) // charge level
	dc.Fill()
	return dc.Image()
}

func drawStepsIcon() image.Image {
	dc := newIconContext()
	dc.DrawEllipse(17, 18, 6, 10)
	dc.Fill()
	dc.DrawEllipse(17, 34, 5, 4)
	dc.Fill()
	dc.DrawEllipse(31, 22, 6, 10)
	dc.Fill()
	dc.DrawEllipse(31, 38, 5, 4)
	dc.Fill()
	return dc.Image()
}

func drawHeartIcon() image.Image {
	dc := newIconContext()
	dc.MoveTo(24, 40)
	dc.CubicTo(4, 26, 8, 8, 24, 16)
	dc.CubicTo(40, 8, 44, 26, 24, 40)
	dc.ClosePath()
	dc.Fill()
	return dc.Image()
}
