// The cache subpackage defines the glyph bitmap [Cache] used by wface
// faces to avoid laying out and rasterizing the same time text on
// every frame.
//
// Unlike a general purpose glyph cache, this cache is organized around
// semantic keys: "hour/07/outline", "seconds/32", "ampm/PM" and so on.
// Each key holds a single slot, and each slot keeps at most one valid
// (content hash, bitmap) pair. When the content behind a key changes
// (different text, typeface, size, color...), the hash changes too,
// the lookup misses, and the caller rasterizes again and stores the
// result, silently replacing the previous bitmap.
//
// There's no eviction policy beyond this overwriting. The amount of
// keys a face uses is bounded (24 hours, 60 minutes, 61 seconds glyphs,
// AM/PM and a few variants of each), so memory usage is bounded too.
// [Cache.ByteSize]() can be used to check the actual figures.
//
// Caches are not concurrent-safe. Faces only touch them from the
// rendering goroutine.
package cache
