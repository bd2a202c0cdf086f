// The style subpackage defines the user-facing configuration of a
// watch face: color schemes, ambient styles, seconds indicators and
// layouts, together with the derived per-role [TextStyle] values that
// faces use to rasterize text.
//
// A [Config] is an immutable snapshot. Faces never mutate it; they
// receive a new one whenever the configuration changes, either through
// a [Store] or by calling [Apply]() on an [Options] snapshot coming
// from an external configuration stream.
package style
