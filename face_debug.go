package wface

import "fmt"
import "image"
import "image/draw"

import "github.com/fogleman/gg"
import "golang.org/x/image/font/basicfont"

// Size of the debug overlay panel, in pixels.
const (
	debugPanelWidth = 160
	debugPanelHeight = 67
	debugLineHeight = 15
)

// Draws the frame counter, glyph cache hits and misses, redraw
// interval and time-scale at the top left corner of the bounds.
func (self *Face) drawDebugOverlay(target draw.Image, bounds image.Rectangle, timeScale float64) {
	panel := image.NewRGBA(image.Rect(0, 0, debugPanelWidth, debugPanelHeight))
	ctx := gg.NewContextForRGBA(panel)
	ctx.SetRGBA(0, 0, 0, 0.6)
	ctx.Clear()
	ctx.SetFontFace(basicfont.Face7x13)
	ctx.SetColor(self.palette.Tertiary)
	for i, line := range self.debugLines(timeScale) {
		ctx.DrawString(line, 4, float64(debugLineHeight*(i + 1)))
	}

	rect := panel.Rect.Add(bounds.Min).Intersect(bounds)
	draw.Draw(clip(target, bounds), rect, panel, image.Point{}, draw.Over)
}

func (self *Face) debugLines(timeScale float64) []string {
	cacheStats := self.glyphCache.Stats()
	return []string{
		fmt.Sprintf("frame %d", self.frameCounter),
		fmt.Sprintf("cache %d/%d", cacheStats.Hits, cacheStats.Misses),
		fmt.Sprintf("interval %v", self.NextInterval()),
		fmt.Sprintf("scale %.3f %s", timeScale, self.machine.State()),
	}
}

