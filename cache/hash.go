package cache

import "math"
import "hash/fnv"
import "image/color"

// Builds content hashes for [Cache] lookups. Anything that changes the
// look of a bitmap (text, typeface, size, color, rasterizer variant,
// debug flags, surface scale...) must be written into the hash.
//
// The zero value is not valid; use [NewHasher]().
type Hasher struct {
	buffer [8]byte
	state fnvState
}

type fnvState interface {
	Write([]byte) (int, error)
	Sum64() uint64
	Reset()
}

// Creates a new [Hasher].
func NewHasher() *Hasher {
	return &Hasher{ state: fnv.New64a() }
}

// Resets the hasher so it can be reused for a new content hash.
func (self *Hasher) Reset() *Hasher {
	self.state.Reset()
	return self
}

// Adds a string to the hash. Strings are length-prefixed, so
// ("ab", "c") and ("a", "bc") hash differently.
func (self *Hasher) String(value string) *Hasher {
	self.Uint64(uint64(len(value)))
	_, _ = self.state.Write([]byte(value))
	return self
}

// Adds a uint64 to the hash.
func (self *Hasher) Uint64(value uint64) *Hasher {
	for i := 0; i < 8; i++ {
		self.buffer[i] = byte(value >> (i*8))
	}
	_, _ = self.state.Write(self.buffer[:])
	return self
}

// Adds a float64 to the hash.
func (self *Hasher) Float64(value float64) *Hasher {
	return self.Uint64(math.Float64bits(value))
}

// Adds a boolean to the hash.
func (self *Hasher) Bool(value bool) *Hasher {
	if value { return self.Uint64(1) }
	return self.Uint64(0)
}

// Adds a color to the hash.
func (self *Hasher) Color(value color.Color) *Hasher {
	if value == nil { return self.Uint64(0xFFFF_FFFF_FFFF_FFFF) }
	r, g, b, a := value.RGBA()
	return self.Uint64(uint64(r) << 48 | uint64(g) << 32 | uint64(b) << 16 | uint64(a))
}

// Returns the current hash value.
func (self *Hasher) Sum() uint64 {
	return self.state.Sum64()
}
