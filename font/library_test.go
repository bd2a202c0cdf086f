package font

import "errors"
import "testing"

import "golang.org/x/image/font/sfnt"
import "golang.org/x/image/font/gofont/goregular"
import "golang.org/x/image/font/gofont/gobold"

import "github.com/tinne26/wface/style"

func TestLibrary(t *testing.T) {
	lib := NewLibrary()
	if lib.Size() != 0 { t.Fatal("really?") }

	err := lib.ParseFromBytes("go", style.WeightRegular, goregular.TTF)
	if err != nil { t.Fatalf("unexpected error: %s", err) }
	err = lib.ParseFromBytes("go", style.WeightRegular, gobold.TTF)
	if err != ErrAlreadyPresent { t.Fatalf("expected ErrAlreadyPresent, got %v", err) }
	err = lib.ParseFromBytes("go", style.WeightBold, gobold.TTF)
	if err != nil { t.Fatalf("unexpected error: %s", err) }
	if lib.Size() != 2 { t.Fatalf("expected %d, got %d", 2, lib.Size()) }

	regular, err := lib.Typeface("go", style.WeightRegular)
	if err != nil { t.Fatal(err) }
	name, err := GetName(regular)
	if err != nil || name != "Go Regular" { t.Fatalf("expected \"Go Regular\", got %q (%v)", name, err) }

	// medium falls back to bold
	medium, err := lib.Typeface("go", style.WeightMedium)
	if err != nil { t.Fatal(err) }
	name, _ = GetName(medium)
	if name != "Go Bold" { t.Fatalf("expected \"Go Bold\" fallback, got %q", name) }

	_, err = lib.Typeface("comic", style.WeightRegular)
	if !errors.Is(err, ErrTypefaceNotFound) { t.Fatalf("expected ErrTypefaceNotFound, got %v", err) }

	count := 0
	err = lib.EachTypeface(func(family string, _ style.Weight, _ *sfnt.Font) error {
		if family != "go" { t.Fatalf("unexpected family %s", family) }
		count += 1
		return ErrBreakEach
	})
	if err != nil || count != 1 { t.Fatalf("expected early break, got %d calls (%v)", count, err) }

	if lib.Remove("go", style.WeightMedium) { t.Fatal("unexpected remove") }
	if !lib.Remove("go", style.WeightBold) { t.Fatal("unexpected remove failure") }

	err = lib.ParseFromBytes("go", style.WeightMedium, []byte{1, 2, 3, 4, 5, 6, 7, 8})
	if err == nil { t.Fatal("expected error to be non-nil") }
}

func TestMissingRunes(t *testing.T) {
	font, err := ParseFromBytes(goregular.TTF)
	if err != nil { t.Fatal(err) }

	missing, err := GetMissingRunes(font, RequiredRunes)
	if err != nil { t.Fatalf("unexpected error: %s", err) }
	if len(missing) != 0 { t.Fatalf("unexpected missing runes: %v", missing) }

	missing, err = GetMissingRunes(font, " \U0002FFFE \U0002FFFE\U0002FFFE    ")
	if err != nil { t.Fatalf("unexpected error: %s", err) }
	if len(missing) != 3 { t.Fatalf("unexpected len(missing) == %d", len(missing)) }
}

func TestDefaultResources(t *testing.T) {
	resources := Default()
	if resources != Default() { t.Fatal("expected shared default resources") }

	for _, family := range []string{style.FamilySans, style.FamilyMono} {
		for _, weight := range []style.Weight{style.WeightRegular, style.WeightMedium, style.WeightBold} {
			font, err := resources.Typeface(family, weight)
			if err != nil || font == nil { t.Fatalf("missing %s %s: %v", family, weight, err) }
		}
	}

	palette, ok := resources.Palette("cyan")
	if !ok || palette != style.SchemeCyan.Palette() { t.Fatal("expected cyan palette") }
	_, ok = resources.Palette("infrared")
	if ok { t.Fatal("unexpected palette") }

	for _, name := range []string{IconBattery, IconSteps, IconHeart} {
		icon := resources.Icon(name)
		if icon == nil { t.Fatalf("missing icon %s", name) }
		if icon.Bounds().Dx() != iconSize { t.Fatalf("unexpected icon size %v", icon.Bounds()) }
	}
	if resources.Icon("rocket") != nil { t.Fatal("unexpected icon") }
}

func TestCustomIcons(t *testing.T) {
	resources := NewResources(NewLibrary())
	resources.SetIcon("custom", drawHeartIcon())
	if resources.Icon("custom") == nil { t.Fatal("expected custom icon") }
	resources.SetIcon("custom", nil)
	if resources.Icon("custom") != nil { t.Fatal("expected icon removal") }
}
