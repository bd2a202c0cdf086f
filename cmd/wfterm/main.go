package main

import "log"
import "time"
import "image"
import "image/color"

import "github.com/gdamore/tcell/v2"

import "github.com/tinne26/wface"
import "github.com/tinne26/wface/mode"
import "github.com/tinne26/wface/style"

// Draws a face on the terminal using upper half block characters, so
// each cell shows two vertically stacked pixels.
//
// Keys: a toggles ambient mode, s cycles the seconds style, c cycles
// the color scheme, l cycles the layout, d toggles debug, q quits.

const upperHalfBlock = '▀'

// Slowest redraw rate used while animating. Terminals can't keep up
// with the face's frame interval.
const minTerminalInterval = 50*time.Millisecond

func main() {
	screen, err := tcell.NewScreen()
	if err != nil { log.Fatal(err) }
	err = screen.Init()
	if err != nil { log.Fatal(err) }
	defer screen.Fini()

	store := style.NewMemoryStore(style.Default())
	power := &mode.Switch{}
	face := wface.New(wface.Options{})
	face.BindStyleStore(store)
	face.BindPowerMode(power)

	events := make(chan tcell.Event, 8)
	go func() {
		for {
			event := screen.PollEvent()
			if event == nil { return }
			events <- event
		}
	}()

	var canvas *image.RGBA
	timer := time.NewTimer(0)
	for {
		select {
		case event := <-events:
			switch event := event.(type) {
			case *tcell.EventResize:
				screen.Sync()
				canvas = nil
				resetTimer(timer, 0)
			case *tcell.EventKey:
				if event.Key() == tcell.KeyEscape || event.Key() == tcell.KeyCtrlC { return }
				switch event.Rune() {
				case 'q': return
				case 'a': power.Toggle()
				case 's': store.Cycle(style.OptSecondsStyle)
				case 'c': store.Cycle(style.OptColorScheme)
				case 'l': store.Cycle(style.OptLayout)
				case 'd': store.Cycle(style.OptDebug)
				}
				resetTimer(timer, 0)
			}
		case <-timer.C:
			width, height := screen.Size()
			bounds := image.Rect(0, 0, width, height*2)
			if canvas == nil || canvas.Rect != bounds {
				canvas = image.NewRGBA(bounds)
			}
			now := time.Now()
			face.Render(canvas, now, bounds)
			present(screen, canvas)
			resetTimer(timer, nextDelay(face, now))
		}
	}
}

func nextDelay(face *wface.Face, now time.Time) time.Duration {
	interval := face.NextInterval()
	if face.ShouldAnimate(now) || interval < minTerminalInterval {
		return minTerminalInterval
	}
	return time.Until(now.Add(interval).Truncate(interval))
}

func resetTimer(timer *time.Timer, delay time.Duration) {
	if !timer.Stop() {
		select {
		case <-timer.C:
		default:
		}
	}
	timer.Reset(delay)
}

func present(screen tcell.Screen, canvas *image.RGBA) {
	bounds := canvas.Rect
	for y := bounds.Min.Y; y + 1 < bounds.Max.Y; y += 2 {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			top := toTcell(canvas.RGBAAt(x, y))
			bottom := toTcell(canvas.RGBAAt(x, y + 1))
			cellStyle := tcell.StyleDefault.Foreground(top).Background(bottom)
			screen.SetContent(x, y/2, upperHalfBlock, nil, cellStyle)
		}
	}
	screen.Show()
}

func toTcell(clr color.RGBA) tcell.Color {
	return tcell.NewRGBColor(int32(clr.R), int32(clr.G), int32(clr.B))
}
