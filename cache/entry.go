package cache

import "image"

// A rasterized and tinted glyph bitmap. The image bounds are placed
// relative to the text anchor: (0, 0) corresponds to the center of
// the text's logical box, so Rect.Min is typically negative. To draw
// the bitmap centered at (x, y), translate it by (x, y).
type Bitmap = *image.RGBA

// Approximate memory overhead of an entry, not counting pixels.
const constEntryOverhead = 96

// Returns the approximate number of bytes used by the given bitmap.
func BitmapByteSize(bitmap Bitmap) uint32 {
	if bitmap == nil { return constEntryOverhead }
	return uint32(len(bitmap.Pix)) + constEntryOverhead
}

// A cache slot. Entries are created lazily on the first lookup miss
// and live as long as the cache. The counters are diagnostic only,
// mainly for debug overlays.
type Entry struct {
	Key string
	Hash uint64
	Bitmap Bitmap // nil until the first Store()
	RenderCount uint32 // number of Store() calls on this key
	LookupCount uint32 // number of Lookup() calls on this key
}

// Whether the entry holds a bitmap for the given content hash.
func (self *Entry) Matches(hash uint64) bool {
	return self.Bitmap != nil && self.Hash == hash
}

// Returns the approximate number of bytes used by the entry.
func (self *Entry) ByteSize() uint32 {
	return BitmapByteSize(self.Bitmap)
}
