package style

import "strconv"

// Option names recognized by [Apply]().
const (
	OptColorScheme  = "color_scheme"
	OptAmbientStyle = "ambient_style"
	OptSecondsStyle = "seconds_style"
	OptLayout       = "layout"
	OptMilitaryTime = "military_time"
	OptDebug        = "debug"
)

// A snapshot of option name to option value pairs, typically coming
// from a platform configuration stream or command line flags.
type Options map[string]string

// Returns a new [Config] resulting from applying the given options
// over prev. Unrecognized option names are ignored. Unrecognized
// values leave the previous value of the option untouched.
//
// Apply is idempotent: Apply(Apply(c, o), o) == Apply(c, o).
func Apply(prev Config, opts Options) Config {
	next := prev
	for name, value := range opts {
		switch name {
		case OptColorScheme:
			scheme, ok := ParseColorScheme(value)
			if ok { next.ColorScheme = scheme }
		case OptAmbientStyle:
			ambient, ok := ParseAmbientStyle(value)
			if ok { next.AmbientStyle = ambient }
		case OptSecondsStyle:
			seconds, ok := ParseSecondsStyle(value)
			if ok { next.SecondsStyle = seconds }
		case OptLayout:
			layout, ok := ParseLayoutStyle(value)
			if ok { next.LayoutStyle = layout }
		case OptMilitaryTime:
			flag, err := strconv.ParseBool(value)
			if err == nil { next.MilitaryTime = flag }
		case OptDebug:
			flag, err := strconv.ParseBool(value)
			if err == nil { next.DebugOverlay = flag }
		}
	}
	return next
}

// Equivalent to Apply([Default](), opts). Unrecognized values end
// up with the per-option defaults.
func FromOptions(opts Options) Config {
	return Apply(Default(), opts)
}

// Returns the options that would reproduce the given config when
// applied over any other config.
func (self Config) Options() Options {
	return Options{
		OptColorScheme: self.ColorScheme.String(),
		OptAmbientStyle: self.AmbientStyle.String(),
		OptSecondsStyle: self.SecondsStyle.String(),
		OptLayout: self.LayoutStyle.String(),
		OptMilitaryTime: strconv.FormatBool(self.MilitaryTime),
		OptDebug: strconv.FormatBool(self.DebugOverlay),
	}
}

// Returns a copy of the config with the named option moved to its
// next value, wrapping around. Boolean options are toggled. Unknown
// names leave the config unchanged.
func Cycle(config Config, name string) Config {
	switch name {
	case OptColorScheme:
		config.ColorScheme = (config.ColorScheme + 1) % schemeCount
	case OptAmbientStyle:
		config.AmbientStyle = (config.AmbientStyle + 1) % ambientStyleCount
	case OptSecondsStyle:
		config.SecondsStyle = (config.SecondsStyle + 1) % (SecondsDots + 1)
	case OptLayout:
		config.LayoutStyle = (config.LayoutStyle + 1) % layoutStyleCount
	case OptMilitaryTime:
		config.MilitaryTime = !config.MilitaryTime
	case OptDebug:
		config.DebugOverlay = !config.DebugOverlay
	}
	return config
}
