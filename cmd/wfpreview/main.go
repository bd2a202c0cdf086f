package main

import "log"
import "flag"

import "github.com/hajimehoshi/ebiten/v2"

import "github.com/tinne26/wface"
import "github.com/tinne26/wface/style"
import "github.com/tinne26/wface/host/ebitenhost"

// Opens a window with a live face. See the ebitenhost package for
// the key bindings.
func main() {
	size := flag.Int("size", 384, "initial window size, in pixels")
	scheme := flag.String("scheme", "", "color scheme id")
	layoutID := flag.String("layout", "", "layout id")
	flag.Parse()

	config := style.FromOptions(style.Options{
		style.OptColorScheme: *scheme,
		style.OptLayout: *layoutID,
	})
	face := wface.New(wface.Options{ Style: &config })
	game := ebitenhost.New(face, config)

	ebiten.SetWindowTitle("wface preview")
	ebiten.SetWindowSize(*size, *size)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	err := ebiten.RunGame(game)
	if err != nil { log.Fatal(err) }
}
