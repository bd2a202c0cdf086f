// The mask subpackage defines the [Rasterizer] interface used by wface
// to convert glyph outlines into alpha masks, and provides the three
// implementations needed for time glyphs: filled ([DefaultRasterizer]),
// outlined ([OutlineRasterizer]) and bold-outlined (an [OutlineRasterizer]
// with its band centered on the glyph edge).
//
// Outline effects are implemented by post-processing the filled mask
// with grayscale erosion and dilation, instead of expanding the outline
// control points. This is simpler and good enough for the thicknesses
// used in ambient mode, where glyphs are big and strokes are thin.
package mask
