package font

import "io/fs"
import "fmt"
import "sync"
import "errors"

import "golang.org/x/image/font/sfnt"

import "github.com/tinne26/wface/style"

// Runes that every registered typeface must be able to draw.
const RequiredRunes = "0123456789AMP"

// Returned by [Library.Add]() when the family and weight are already taken.
var ErrAlreadyPresent = errors.New("typeface already present in the library")

// Returned by [Library.Typeface]() when the family has no typefaces.
var ErrTypefaceNotFound = errors.New("typeface not found")

// Returned by [Library.Add]() when the font can't draw [RequiredRunes].
var ErrMissingGlyphs = errors.New("typeface is missing required glyphs")

// Special error that can be used with [Library.EachTypeface]() to
// break early. When used, the function will return early but still
// return a nil error.
var ErrBreakEach = errors.New("EachTypeface() early break")

type typefaceKey struct {
	family string
	weight style.Weight
}

// A collection of typefaces accessible by family and weight.
// Libraries are safe for concurrent use.
type Library struct {
	mutex sync.RWMutex
	fonts map[typefaceKey]*sfnt.Font
}

// Creates a new, empty [Library].
func NewLibrary() *Library {
	return &Library{ fonts: make(map[typefaceKey]*sfnt.Font) }
}

// Returns the current number of typefaces in the library.
func (self *Library) Size() int {
	self.mutex.RLock()
	defer self.mutex.RUnlock()
	return len(self.fonts)
}

// Adds the given font to the library under the given family and weight.
// If the font is nil, the method will panic.
func (self *Library) Add(family string, weight style.Weight, font *sfnt.Font) error {
	if font == nil { panic("nil font") }
	missing, err := GetMissingRunes(font, RequiredRunes)
	if err != nil { return err }
	if len(missing) > 0 {
		return fmt.Errorf("%w (%s %s): %q", ErrMissingGlyphs, family, weight, string(missing))
	}

	key := typefaceKey{ family, weight }
	self.mutex.Lock()
	defer self.mutex.Unlock()
	if self.fonts == nil { self.fonts = make(map[typefaceKey]*sfnt.Font) }
	_, found := self.fonts[key]
	if found { return ErrAlreadyPresent }
	self.fonts[key] = font
	return nil
}

// Parses the given font bytes and adds the font to the library.
// The bytes must not be modified while the font is in use.
func (self *Library) ParseFromBytes(family string, weight style.Weight, fontBytes []byte) error {
	font, err := ParseFromBytes(fontBytes)
	if err != nil { return err }
	return self.Add(family, weight, font)
}

// Parses the font at the given path and adds it to the library.
func (self *Library) ParseFromPath(family string, weight style.Weight, path string) error {
	font, err := ParseFromPath(path)
	if err != nil { return err }
	return self.Add(family, weight, font)
}

// The equivalent of [Library.ParseFromPath]() for filesystems.
// This is mainly provided to support [embed.FS] and embedded fonts.
func (self *Library) ParseFromFS(family string, weight style.Weight, filesys fs.FS, path string) error {
	font, err := ParseFromFS(filesys, path)
	if err != nil { return err }
	return self.Add(family, weight, font)
}

// Returns false if the typeface can't be removed due to not being found.
func (self *Library) Remove(family string, weight style.Weight) bool {
	key := typefaceKey{ family, weight }
	self.mutex.Lock()
	defer self.mutex.Unlock()
	_, found := self.fonts[key]
	if !found { return false }
	delete(self.fonts, key)
	return true
}

// Returns the typeface for the given family and weight. If the exact
// weight is not available, the closest available weight of the family
// is returned instead. If the family has no typefaces at all, the
// returned error wraps [ErrTypefaceNotFound].
func (self *Library) Typeface(family string, weight style.Weight) (*sfnt.Font, error) {
	self.mutex.RLock()
	defer self.mutex.RUnlock()
	for _, candidate := range weightFallbacks(weight) {
		font, found := self.fonts[typefaceKey{ family, candidate }]
		if found { return font, nil }
	}
	return nil, fmt.Errorf("%w: %s %s", ErrTypefaceNotFound, family, weight)
}

// Calls the given function for each typeface in the library, in
// pseudo-random order.
//
// If the given function returns a non-nil error, the method will immediately
// stop and return that error, with the only exception of [ErrBreakEach].
// The function must not modify the library.
func (self *Library) EachTypeface(fn func(string, style.Weight, *sfnt.Font) error) error {
	self.mutex.RLock()
	defer self.mutex.RUnlock()
	for key, font := range self.fonts {
		err := fn(key.family, key.weight, font)
		if err != nil {
			if err == ErrBreakEach { return nil }
			return err
		}
	}
	return nil
}

func weightFallbacks(weight style.Weight) [3]style.Weight {
	switch weight {
	case style.WeightMedium:
		return [3]style.Weight{style.WeightMedium, style.WeightBold, style.WeightRegular}
	case style.WeightBold:
		return [3]style.Weight{style.WeightBold, style.WeightMedium, style.WeightRegular}
	default:
		return [3]style.Weight{style.WeightRegular, style.WeightMedium, style.WeightBold}
	}
}
