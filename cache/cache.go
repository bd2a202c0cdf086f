package cache

// A single-slot-per-key glyph bitmap cache. See the package
// documentation for the general caching model.
//
// The zero value is ready to use.
type Cache struct {
	entries map[string]*Entry
	byteSize uint32
	peakByteSize uint32
	hits uint64
	misses uint64
	renders uint64
}

// Creates a new, empty [Cache].
func New() *Cache {
	return &Cache{ entries: make(map[string]*Entry, 256) }
}

// Returns the bitmap stored under the given key if its content hash
// matches the given one exactly. Otherwise, it returns false, and the
// caller is expected to rasterize the content and call [Cache.Store]().
//
// Every lookup increases the key's lookup counter, hit or miss.
func (self *Cache) Lookup(key string, hash uint64) (Bitmap, bool) {
	entry := self.entry(key)
	entry.LookupCount += 1
	if entry.Matches(hash) {
		self.hits += 1
		return entry.Bitmap, true
	}
	self.misses += 1
	return nil, false
}

// Stores the given bitmap under the given key and content hash,
// replacing any previous pair. Increases the key's render counter.
func (self *Cache) Store(key string, hash uint64, bitmap Bitmap) {
	entry := self.entry(key)
	self.byteSize -= entry.ByteSize()
	entry.Hash = hash
	entry.Bitmap = bitmap
	entry.RenderCount += 1
	self.renders += 1
	self.byteSize += entry.ByteSize()
	if self.byteSize > self.peakByteSize {
		self.peakByteSize = self.byteSize
	}
}

// Returns the entry for the given key, or nil if the key has never
// been looked up or stored. The entry must be treated as read-only.
func (self *Cache) Entry(key string) *Entry {
	if self.entries == nil { return nil }
	return self.entries[key]
}

// Drops all the bitmaps while preserving the keys and their counters.
// Faces call this when the surface scale changes, right before
// preloading again.
func (self *Cache) Reset() {
	for _, entry := range self.entries {
		self.byteSize -= entry.ByteSize()
		entry.Bitmap = nil
		entry.Hash = 0
		self.byteSize += entry.ByteSize()
	}
}

// Returns the approximate number of bytes taken by the cached bitmaps.
func (self *Cache) ByteSize() int { return int(self.byteSize) }

// Returns the maximum value that [Cache.ByteSize]() has reached at any
// point in the cache's life.
func (self *Cache) PeakByteSize() int { return int(self.peakByteSize) }

// Aggregated cache counters.
type Stats struct {
	Entries int
	Hits uint64
	Misses uint64
	Renders uint64
}

// Returns the aggregated counters for the cache.
func (self *Cache) Stats() Stats {
	return Stats{
		Entries: len(self.entries),
		Hits: self.hits,
		Misses: self.misses,
		Renders: self.renders,
	}
}

func (self *Cache) entry(key string) *Entry {
	if self.entries == nil {
		self.entries = make(map[string]*Entry, 256)
	}
	entry, found := self.entries[key]
	if !found {
		entry = &Entry{ Key: key }
		self.entries[key] = entry
		self.byteSize += entry.ByteSize()
	}
	return entry
}
