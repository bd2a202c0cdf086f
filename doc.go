// wface is a package for drawing digital watch faces: big hour and
// minute glyphs, a seconds ring, complications and smooth transitions
// between the interactive and the always-on ambient modes.
//
// Common usage depends on a single type. You create a [Face]:
//   face := wface.New(wface.Options{})
//
// Then you feed it the platform notifications, from any goroutine:
//   face.NotifyStyle(config)
//   face.NotifyAmbient(true)
//
// And draw frames on the render goroutine, scheduling the next one
// with [Face.NextInterval]() or, while animating, at the frame rate:
//   face.Render(screen, time.Now(), screen.Bounds())
//   if face.ShouldAnimate(time.Now()) { ... }
//
// Styles, palettes and text roles live in the style subpackage. The
// layout subpackage computes where everything goes in a 384x384
// logical space, which faces scale to fit the surface. Glyph bitmaps
// are rasterized with the mask and typeset subpackages and kept in a
// cache.Cache, preloaded once per surface scale, so drawing a frame
// never lays out text for the time glyphs.
package wface
