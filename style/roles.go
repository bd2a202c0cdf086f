package style

import "image/color"

// Typeface weights. Loaders map (family, weight) pairs to actual fonts.
type Weight uint8
const (
	WeightRegular Weight = iota
	WeightMedium
	WeightBold
)

func (self Weight) String() string {
	switch self {
	case WeightMedium: return "medium"
	case WeightBold: return "bold"
	default: return "regular"
	}
}

// Typeface families known by the default loader.
const (
	FamilySans = "go"
	FamilyMono = "gomono"
)

// Base sizes in logical units (the face draws on a 384x384 logical
// surface that's later scaled to the actual target).
const (
	SizeTime = 144.0
	SizeSeconds = 40.0
	SizeAmPm = 28.0
	SizeComplication = 22.0
	BigAmbientFactor = 1.2
)

// Outline thicknesses for ambient glyphs, in logical units.
const (
	ThicknessOutline = 2.0
	ThicknessBoldOutline = 4.0
)

// The resolved glyph parameters of an [AmbientStyle].
type AmbientGlyph struct {
	Weight Weight
	Size float64
	Shape Shape
	Thickness float64 // zero for filled shapes
	Big bool
}

// Resolves the ambient style to its typeface weight, base size, shape
// and outline thickness.
func (self AmbientStyle) Glyph() AmbientGlyph {
	glyph := AmbientGlyph{ Size: SizeTime, Shape: self.Shape(), Big: self.IsBig() }
	if glyph.Big { glyph.Size *= BigAmbientFactor }
	switch glyph.Shape {
	case ShapeOutline:
		glyph.Weight = WeightMedium
		glyph.Thickness = ThicknessOutline
	case ShapeBoldOutline:
		glyph.Weight = WeightBold
		glyph.Thickness = ThicknessBoldOutline
	default:
		glyph.Weight = WeightRegular
	}
	return glyph
}

// Text roles within a face.
type Role uint8
const (
	RoleHour Role = iota
	RoleMinute
	RoleSeconds
	RoleAmPm
	RoleAmbientHour
	RoleAmbientMinute
	RoleComplication
	roleCount
)

func (self Role) String() string {
	switch self {
	case RoleHour: return "hour"
	case RoleMinute: return "minute"
	case RoleSeconds: return "seconds"
	case RoleAmPm: return "ampm"
	case RoleAmbientHour: return "ambient_hour"
	case RoleAmbientMinute: return "ambient_minute"
	case RoleComplication: return "complication"
	default: return "unknown"
	}
}

// Everything needed to rasterize a piece of text.
type TextStyle struct {
	Family string
	Weight Weight
	Size float64
	Color color.NRGBA
}

// Immutable per-role text styles derived from a [Config].
type TextStyles struct {
	styles [roleCount]TextStyle
	shape Shape
	thickness float64
}

// Returns the style for the given role.
func (self *TextStyles) Get(role Role) TextStyle {
	if role >= roleCount { panic("invalid role") }
	return self.styles[role]
}

// Returns the shape and outline thickness for the ambient roles.
func (self *TextStyles) AmbientShape() (Shape, float64) {
	return self.shape, self.thickness
}

// Derives the per-role text styles for the given config and palette.
// Faces call this once per style change, not per frame.
func Roles(config Config, palette Palette) TextStyles {
	glyph := config.AmbientStyle.Glyph()
	var roles TextStyles
	roles.shape, roles.thickness = glyph.Shape, glyph.Thickness
	roles.styles[RoleHour] = TextStyle{FamilySans, WeightBold, SizeTime, palette.Primary}
	roles.styles[RoleMinute] = TextStyle{FamilySans, WeightMedium, SizeTime, palette.Secondary}
	roles.styles[RoleSeconds] = TextStyle{FamilyMono, WeightRegular, SizeSeconds, palette.Tertiary}
	roles.styles[RoleAmPm] = TextStyle{FamilySans, WeightMedium, SizeAmPm, palette.Tertiary}
	roles.styles[RoleAmbientHour] = TextStyle{FamilySans, glyph.Weight, glyph.Size, palette.Primary}
	roles.styles[RoleAmbientMinute] = TextStyle{FamilySans, glyph.Weight, glyph.Size, palette.Secondary}
	roles.styles[RoleComplication] = TextStyle{FamilySans, WeightMedium, SizeComplication, palette.Secondary}
	return roles
}
