package main

import "os"
import "fmt"
import "log"
import "flag"
import "time"
import "image"
import "image/png"
import "path/filepath"

import "github.com/tinne26/wface"
import "github.com/tinne26/wface/font"
import "github.com/tinne26/wface/style"
import "github.com/tinne26/wface/layout"
import "github.com/tinne26/wface/complication"

// Renders a single headless frame of a face and stores it as a PNG.
//
// Example:
//   wfsnap -scheme red -seconds dots -time 14:07:32 -out face.png
func main() {
	opts := style.Options{}
	flag.Func("scheme", "color scheme id", optionSetter(opts, style.OptColorScheme))
	flag.Func("ambient-style", "ambient style id", optionSetter(opts, style.OptAmbientStyle))
	flag.Func("seconds", "seconds style id (none, dashes, dots)", optionSetter(opts, style.OptSecondsStyle))
	flag.Func("layout", "layout id (info1-info4, sport, focus)", optionSetter(opts, style.OptLayout))
	flag.Func("military", "use 24-hour time (true/false)", optionSetter(opts, style.OptMilitaryTime))
	flag.Func("debug", "draw the debug overlay (true/false)", optionSetter(opts, style.OptDebug))
	ambient := flag.Bool("ambient", false, "render the ambient look")
	clock := flag.String("time", "", "time to draw as HH:MM:SS, defaults to now")
	size := flag.Int("size", 384, "output size, in pixels")
	highlight := flag.Bool("highlight", false, "render the highlight layer of the time block instead")
	fontPath := flag.String("font", "", "path to a .ttf or .otf font to use for the time glyphs")
	output := flag.String("out", "wface.png", "output file")
	flag.Parse()

	now := time.Now()
	if *clock != "" {
		parsed, err := time.Parse(time.TimeOnly, *clock)
		if err != nil { log.Fatalf("invalid time %q: %s", *clock, err) }
		now = time.Date(now.Year(), now.Month(), now.Day(), parsed.Hour(), parsed.Minute(), parsed.Second(), 0, now.Location())
	}
	if *size <= 0 { log.Fatalf("invalid size %d", *size) }

	loader := font.Default()
	if *fontPath != "" {
		var err error
		loader, err = customLoader(*fontPath)
		if err != nil { log.Fatal(err) }
	}

	config := style.FromOptions(opts)
	face := wface.New(wface.Options{
		Loader: loader,
		Style: &config,
		Ambient: *ambient,
		Headless: true,
		Hooks: wface.Hooks{ Trace: logErrors },
	})
	face.SetSlots(demoSlots())

	target := image.NewRGBA(image.Rect(0, 0, *size, *size))
	if *highlight {
		face.SetHighlight(wface.Highlight{ Kind: wface.HighlightTime })
		face.RenderHighlightLayer(target, now, target.Bounds())
	} else {
		face.Render(target, now, target.Bounds())
	}

	filename, err := filepath.Abs(*output)
	if err != nil { log.Fatal(err) }
	file, err := os.Create(filename)
	if err != nil { log.Fatal(err) }
	err = png.Encode(file, target)
	if err != nil { log.Fatal(err) }
	err = file.Close()
	if err != nil { log.Fatal(err) }

	stats := face.Stats()
	fmt.Printf("Output image: %s\n", filename)
	fmt.Printf("Glyph cache: %d entries, %d KiB\n", stats.CacheEntries, stats.CacheBytes/1024)
}

func optionSetter(opts style.Options, name string) func(string) error {
	return func(value string) error {
		opts[name] = value
		return nil
	}
}

// Creates resources where the sans family uses the given font for
// every weight.
func customLoader(path string) (*font.Resources, error) {
	library, err := font.NewDefaultLibrary()
	if err != nil { return nil, err }
	for _, weight := range []style.Weight{style.WeightRegular, style.WeightMedium, style.WeightBold} {
		library.Remove(style.FamilySans, weight)
		err = library.ParseFromPath(style.FamilySans, weight, path)
		if err != nil { return nil, err }
	}
	sans, err := library.Typeface(style.FamilySans, style.WeightRegular)
	if err != nil { return nil, err }
	name, err := font.GetName(sans)
	if err != nil { return nil, err }
	fmt.Printf("Font loaded: %s\n", name)
	return font.NewResources(library), nil
}

func logErrors(event wface.Event) {
	if event.Kind != wface.EventError { return }
	log.Printf("%s: %s", event.Detail, event.Err)
}

func demoSlots() []complication.Slot {
	return []complication.Slot{
		{
			ID: layout.SlotLeft,
			Enabled: true,
			Visual: complication.Horizontal{},
			Data: complication.ShortText{ Text: "78%", Icon: "battery" },
		},
		{
			ID: layout.SlotTop,
			Enabled: true,
			Visual: complication.HorizontalText{},
			Data: complication.ShortText{ Text: "12°", Title: "SUN" },
		},
		{
			ID: layout.SlotBottom,
			Enabled: true,
			Visual: complication.Horizontal{},
			Data: complication.ShortText{ Text: "6204", Icon: "steps" },
		},
		{
			ID: layout.SlotRight,
			Enabled: true,
			Visual: complication.Icon{},
			Data: complication.ShortText{ Icon: "heart" },
		},
	}
}
