package font

import "sync"
import "image"

import "golang.org/x/image/font/sfnt"
import "golang.org/x/image/font/gofont/goregular"
import "golang.org/x/image/font/gofont/gomedium"
import "golang.org/x/image/font/gofont/gobold"
import "golang.org/x/image/font/gofont/gomono"
import "golang.org/x/image/font/gofont/gomonobold"

import "github.com/tinne26/wface/style"

// The resources a face needs from its environment: typefaces, color
// palettes and static icons.
type Loader interface {
	// Returns the typeface for the given family and weight.
	Typeface(family string, weight style.Weight) (*sfnt.Font, error)

	// Returns the palette for the given color scheme identifier.
	Palette(name string) (style.Palette, bool)

	// Returns the named icon, or nil if it doesn't exist. Icons
	// are white shapes on transparent backgrounds, meant to be
	// used as masks and tinted.
	Icon(name string) image.Image
}

var _ Loader = (*Resources)(nil)

// A [Loader] backed by a [Library], the built-in color schemes and
// a set of registered icons.
type Resources struct {
	library *Library
	mutex sync.RWMutex
	icons map[string]image.Image
}

// Creates resources using the given library for typefaces. The
// built-in icons are registered automatically.
func NewResources(library *Library) *Resources {
	if library == nil { panic("nil library") }
	resources := &Resources{
		library: library,
		icons: make(map[string]image.Image, 4),
	}
	for name, icon := range builtinIcons() {
		resources.icons[name] = icon
	}
	return resources
}

// Returns the underlying typeface library.
func (self *Resources) Library() *Library { return self.library }

// Implements [Loader].
func (self *Resources) Typeface(family string, weight style.Weight) (*sfnt.Font, error) {
	return self.library.Typeface(family, weight)
}

// Implements [Loader] using the built-in color schemes.
func (self *Resources) Palette(name string) (style.Palette, bool) {
	scheme, ok := style.ParseColorScheme(name)
	if !ok { return style.Palette{}, false }
	return scheme.Palette(), true
}

// Implements [Loader].
func (self *Resources) Icon(name string) image.Image {
	self.mutex.RLock()
	defer self.mutex.RUnlock()
	return self.icons[name]
}

// Registers or replaces an icon. A nil icon removes it.
func (self *Resources) SetIcon(name string, icon image.Image) {
	self.mutex.Lock()
	defer self.mutex.Unlock()
	if icon == nil {
		delete(self.icons, name)
	} else {
		self.icons[name] = icon
	}
}

var defaultResources *Resources
var defaultResourcesErr error
var defaultResourcesOnce sync.Once

// Returns the shared default resources, backed by a library created
// with [NewDefaultLibrary](). It panics if the embedded fonts can't
// be parsed, which can't happen unless the gofont module is broken.
func Default() *Resources {
	defaultResourcesOnce.Do(func() {
		var library *Library
		library, defaultResourcesErr = NewDefaultLibrary()
		if defaultResourcesErr != nil { return }
		defaultResources = NewResources(library)
	})
	if defaultResourcesErr != nil { panic(defaultResourcesErr) }
	return defaultResources
}

// Creates a new library with the Go fonts registered as the
// [style.FamilySans] and [style.FamilyMono] families. Hosts that want
// custom typefaces can start from it and replace some entries.
func NewDefaultLibrary() (*Library, error) {
	library := NewLibrary()
	fonts := []struct {
		family string
		weight style.Weight
		data []byte
	}{
		{style.FamilySans, style.WeightRegular, goregular.TTF},
		{style.FamilySans, style.WeightMedium, gomedium.TTF},
		{style.FamilySans, style.WeightBold, gobold.TTF},
		{style.FamilyMono, style.WeightRegular, gomono.TTF},
		{style.FamilyMono, style.WeightBold, gomonobold.TTF},
	}
	for _, font := range fonts {
		err := library.ParseFromBytes(font.family, font.weight, font.data)
		if err != nil { return nil, err }
	}
	return library, nil
}
