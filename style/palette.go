package style

import "image/color"

import "github.com/lucasb-eyer/go-colorful"

// Named color schemes. Use [ColorScheme.Palette]() to get the colors.
type ColorScheme uint8
const (
	SchemeCyan ColorScheme = iota
	SchemeAmber
	SchemeAzure
	SchemeBlue
	SchemeCoral
	SchemeCrimson
	SchemeEmerald
	SchemeForest
	SchemeGold
	SchemeGray
	SchemeIndigo
	SchemeLavender
	SchemeLime
	SchemeMint
	SchemeOrange
	SchemePeach
	SchemePink
	SchemePurple
	SchemeRed
	SchemeSand
	SchemeTeal
	SchemeWhite
	SchemeYellow
	schemeCount
)

// The primary, secondary and tertiary colors of a color scheme.
// Hours use the primary color, minutes the secondary, and auxiliary
// elements (seconds text, minor ring ticks, complication text) the
// tertiary.
type Palette struct {
	Primary color.NRGBA
	Secondary color.NRGBA
	Tertiary color.NRGBA
}

type schemeDef struct {
	id string
	primary, secondary, tertiary string
}

var schemeDefs = [schemeCount]schemeDef{
	{"cyan",     "#18ffff", "#84ffff", "#5e8a8e"},
	{"amber",    "#ffc400", "#ffe082", "#8d7a4b"},
	{"azure",    "#40c4ff", "#b3e5fc", "#5d7f91"},
	{"blue",     "#448aff", "#bbdefb", "#5c6f8f"},
	{"coral",    "#ff7f6b", "#ffccbc", "#916b63"},
	{"crimson",  "#ff1744", "#ff8a80", "#8e5a60"},
	{"emerald",  "#00e676", "#b9f6ca", "#5b8a6c"},
	{"forest",   "#66bb6a", "#c8e6c9", "#5f7a60"},
	{"gold",     "#ffd740", "#fff59d", "#8f8552"},
	{"gray",     "#e0e0e0", "#bdbdbd", "#757575"},
	{"indigo",   "#536dfe", "#c5cae9", "#62688f"},
	{"lavender", "#b388ff", "#e1bee7", "#7c6a8f"},
	{"lime",     "#c6ff00", "#f0f4c3", "#7d8a4a"},
	{"mint",     "#64ffda", "#b2dfdb", "#5f8a83"},
	{"orange",   "#ff9100", "#ffcc80", "#8f7250"},
	{"peach",    "#ffab91", "#ffe0b2", "#8f7768"},
	{"pink",     "#ff4081", "#f8bbd0", "#8f5f70"},
	{"purple",   "#e040fb", "#e1bee7", "#805f8a"},
	{"red",      "#ff5252", "#ffcdd2", "#8f5c5c"},
	{"sand",     "#e6c99a", "#f5e6c8", "#8a7d68"},
	{"teal",     "#1de9b6", "#a7ffeb", "#58897d"},
	{"white",    "#ffffff", "#e0e0e0", "#8a8a8a"},
	{"yellow",   "#ffff00", "#ffff8d", "#8f8f4f"},
}

var schemePalettes [schemeCount]Palette

func init() {
	for i, def := range schemeDefs {
		schemePalettes[i] = Palette{
			Primary: mustParseHex(def.primary),
			Secondary: mustParseHex(def.secondary),
			Tertiary: mustParseHex(def.tertiary),
		}
	}
}

func mustParseHex(hex string) color.NRGBA {
	clr, err := ParseHex(hex)
	if err != nil { panic(err) }
	return clr
}

// Parses a "#rrggbb" color string into an opaque color.
func ParseHex(hex string) (color.NRGBA, error) {
	clr, err := colorful.Hex(hex)
	if err != nil { return color.NRGBA{}, err }
	r, g, b := clr.RGB255()
	return color.NRGBA{r, g, b, 255}, nil
}

// Returns the identifier of the color scheme, as used in [Options].
func (self ColorScheme) String() string {
	if self >= schemeCount { return schemeDefs[SchemeCyan].id }
	return schemeDefs[self].id
}

// Returns the palette of the color scheme. Unknown schemes resolve
// to the cyan palette.
func (self ColorScheme) Palette() Palette {
	if self >= schemeCount { return schemePalettes[SchemeCyan] }
	return schemePalettes[self]
}

// Parses a color scheme identifier.
func ParseColorScheme(id string) (ColorScheme, bool) {
	for i := range schemeDefs {
		if schemeDefs[i].id == id { return ColorScheme(i), true }
	}
	return SchemeCyan, false
}

// Returns the identifiers of all the color schemes, in declaration
// order. Useful for hosts that cycle through them.
func SchemeIDs() []string {
	ids := make([]string, schemeCount)
	for i := range schemeDefs {
		ids[i] = schemeDefs[i].id
	}
	return ids
}

// Blends the given color toward white in sRGB space. Amount is
// clamped to [0, 1]. The alpha is preserved.
func BlendWhite(clr color.NRGBA, amount float64) color.NRGBA {
	if amount <= 0 { return clr }
	if amount >= 1 { return color.NRGBA{255, 255, 255, clr.A} }
	base := colorful.Color{
		R: float64(clr.R)/255.0,
		G: float64(clr.G)/255.0,
		B: float64(clr.B)/255.0,
	}
	white := colorful.Color{R: 1, G: 1, B: 1}
	r, g, b := base.BlendRgb(white, amount).Clamped().RGB255()
	return color.NRGBA{r, g, b, clr.A}
}

// Returns the given color with its alpha scaled by the given factor,
// clamped to [0, 1].
func Fade(clr color.NRGBA, factor float64) color.NRGBA {
	if factor <= 0 { return color.NRGBA{clr.R, clr.G, clr.B, 0} }
	if factor >= 1 { return clr }
	clr.A = uint8(float64(clr.A)*factor + 0.5)
	return clr
}
