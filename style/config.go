package style

// Ambient (low power) glyph styles. The big variants use the same
// shapes at a larger base size.
type AmbientStyle uint8
const (
	AmbientOutline AmbientStyle = iota
	AmbientBoldOutline
	AmbientFilled
	AmbientBigOutline
	AmbientBigBoldOutline
	AmbientBigFilled
	AmbientDetailed
	ambientStyleCount
)

var ambientStyleIDs = [ambientStyleCount]string{
	"outline", "bold_outline", "filled",
	"big_outline", "big_bold_outline", "big_filled",
	"detailed",
}

// Returns the identifier of the ambient style, as used in [Options].
func (self AmbientStyle) String() string {
	if self >= ambientStyleCount { return ambientStyleIDs[AmbientOutline] }
	return ambientStyleIDs[self]
}

// Returns whether the style belongs to the big family.
func (self AmbientStyle) IsBig() bool {
	return self >= AmbientBigOutline && self <= AmbientBigFilled
}

// Returns the glyph shape used by the style.
func (self AmbientStyle) Shape() Shape {
	switch self {
	case AmbientBoldOutline, AmbientBigBoldOutline:
		return ShapeBoldOutline
	case AmbientFilled, AmbientBigFilled, AmbientDetailed:
		return ShapeFilled
	default:
		return ShapeOutline
	}
}

// Parses an ambient style identifier.
func ParseAmbientStyle(id string) (AmbientStyle, bool) {
	for i, styleID := range ambientStyleIDs {
		if styleID == id { return AmbientStyle(i), true }
	}
	return AmbientOutline, false
}

// Glyph shapes, mapped to mask rasterizers by the face.
type Shape uint8
const (
	ShapeFilled Shape = iota
	ShapeOutline
	ShapeBoldOutline
)

func (self Shape) String() string {
	switch self {
	case ShapeOutline: return "outline"
	case ShapeBoldOutline: return "bold_outline"
	default: return "filled"
	}
}

// Seconds indicator styles.
type SecondsStyle uint8
const (
	SecondsNone SecondsStyle = iota
	SecondsDashes
	SecondsDots
)

func (self SecondsStyle) String() string {
	switch self {
	case SecondsNone: return "none"
	case SecondsDots: return "dots"
	default: return "dashes"
	}
}

// Whether the style draws a continuously animated seconds ring.
func (self SecondsStyle) Animated() bool {
	return self == SecondsDashes || self == SecondsDots
}

// Parses a seconds style identifier.
func ParseSecondsStyle(id string) (SecondsStyle, bool) {
	switch id {
	case "none": return SecondsNone, true
	case "dashes": return SecondsDashes, true
	case "dots": return SecondsDots, true
	}
	return SecondsDashes, false
}

// Layout variants. Each variant decides which auxiliary elements are
// drawn and where the complication slots go.
type LayoutStyle uint8
const (
	LayoutInfo1 LayoutStyle = iota
	LayoutInfo2
	LayoutInfo3
	LayoutInfo4
	LayoutSport
	LayoutFocus
	layoutStyleCount
)

var layoutStyleIDs = [layoutStyleCount]string{
	"info1", "info2", "info3", "info4", "sport", "focus",
}

func (self LayoutStyle) String() string {
	if self >= layoutStyleCount { return layoutStyleIDs[LayoutInfo1] }
	return layoutStyleIDs[self]
}

// Parses a layout identifier.
func ParseLayoutStyle(id string) (LayoutStyle, bool) {
	for i, layoutID := range layoutStyleIDs {
		if layoutID == id { return LayoutStyle(i), true }
	}
	return LayoutInfo1, false
}

// An immutable style snapshot. Configs are comparable with ==, and
// faces rely on that to detect actual changes.
type Config struct {
	ColorScheme ColorScheme
	AmbientStyle AmbientStyle
	SecondsStyle SecondsStyle
	LayoutStyle LayoutStyle
	MilitaryTime bool
	DebugOverlay bool
}

// Returns the default configuration: cyan scheme, outline ambient
// glyphs, dashes seconds ring and the info1 layout.
func Default() Config {
	return Config{
		ColorScheme: SchemeCyan,
		AmbientStyle: AmbientOutline,
		SecondsStyle: SecondsDashes,
		LayoutStyle: LayoutInfo1,
	}
}
