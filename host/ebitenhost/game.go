// The ebitenhost package runs a [wface.Face] inside an Ebitengine
// window, mapping key presses to style and ambient notifications.
//
// Keys: A toggles ambient mode, S cycles the seconds style, C cycles
// the color scheme, L cycles the layout, M toggles military time, D
// toggles the debug overlay and Q or Escape quits.
package ebitenhost

import "time"
import "image"

import "github.com/hajimehoshi/ebiten/v2"
import "github.com/hajimehoshi/ebiten/v2/inpututil"

import "github.com/tinne26/wface"
import "github.com/tinne26/wface/mode"
import "github.com/tinne26/wface/style"

// Implements [ebiten.Game] for a face. Faces only redraw when their
// redraw interval expires, they are animating or the surface changes.
type Game struct {
	face *wface.Face
	store *style.MemoryStore
	power *mode.Switch
	clock func() time.Time

	canvas *image.RGBA
	screenImage *ebiten.Image
	nextRedraw time.Time
}

// Creates a new game for the given face. The face gets bound to the
// game's style store and power mode switch.
func New(face *wface.Face, initial style.Config) *Game {
	game := &Game{
		face: face,
		store: style.NewMemoryStore(initial),
		power: &mode.Switch{},
		clock: time.Now,
	}
	face.BindStyleStore(game.store)
	face.BindPowerMode(game.power)
	return game
}

// Returns the style store driving the face.
func (self *Game) Store() *style.MemoryStore { return self.store }

// Returns the power mode switch driving the face.
func (self *Game) Power() *mode.Switch { return self.power }

var optionKeys = map[ebiten.Key]string{
	ebiten.KeyS: style.OptSecondsStyle,
	ebiten.KeyC: style.OptColorScheme,
	ebiten.KeyL: style.OptLayout,
	ebiten.KeyM: style.OptMilitaryTime,
	ebiten.KeyD: style.OptDebug,
}

func (self *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyA) {
		self.power.Toggle()
	}
	for key, option := range optionKeys {
		if inpututil.IsKeyJustPressed(key) { self.store.Cycle(option) }
	}
	return nil
}

func (self *Game) Draw(screen *ebiten.Image) {
	bounds := screen.Bounds()
	now := self.clock()
	resized := self.canvas == nil || self.canvas.Rect != bounds
	if resized {
		self.canvas = image.NewRGBA(bounds)
		self.screenImage = ebiten.NewImage(bounds.Dx(), bounds.Dy())
	}

	if resized || !now.Before(self.nextRedraw) || self.face.ShouldAnimate(now) {
		self.face.Render(self.canvas, now, bounds)
		self.screenImage.WritePixels(self.canvas.Pix)
		interval := self.face.NextInterval()
		if interval <= 0 { interval = time.Hour }
		self.nextRedraw = now.Add(interval).Truncate(interval)
	}
	screen.DrawImage(self.screenImage, nil)
}

func (self *Game) Layout(width, height int) (int, int) {
	scale := ebiten.DeviceScaleFactor()
	return int(float64(width)*scale), int(float64(height)*scale)
}
