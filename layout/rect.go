package layout

import "math"
import "image"

// A rectangle in logical coordinates, with the origin at the center
// of the face.
type Rect struct {
	MinX, MinY float64
	MaxX, MaxY float64
}

// Creates a rectangle centered at (x, y) with the given size.
func Centered(x, y, width, height float64) Rect {
	return Rect{ x - width/2, y - height/2, x + width/2, y + height/2 }
}

func (self Rect) Width() float64 { return self.MaxX - self.MinX }
func (self Rect) Height() float64 { return self.MaxY - self.MinY }
func (self Rect) Empty() bool { return self.MaxX <= self.MinX || self.MaxY <= self.MinY }

// Returns the center of the rectangle.
func (self Rect) Center() (float64, float64) {
	return (self.MinX + self.MaxX)/2, (self.MinY + self.MaxY)/2
}

// Returns the rectangle translated by the given amounts.
func (self Rect) Add(x, y float64) Rect {
	return Rect{ self.MinX + x, self.MinY + y, self.MaxX + x, self.MaxY + y }
}

// Returns the rectangle scaled by the given factor about the origin.
func (self Rect) Scale(factor float64) Rect {
	return Rect{ self.MinX*factor, self.MinY*factor, self.MaxX*factor, self.MaxY*factor }
}

// Maps the logical rectangle to pixel coordinates within the given
// bounds, rounding outwards.
func (self Rect) ToPixels(bounds image.Rectangle) image.Rectangle {
	scale := Scale(bounds)
	cx, cy := Center(bounds)
	return image.Rect(
		floorInt(cx + self.MinX*scale), floorInt(cy + self.MinY*scale),
		ceilInt(cx + self.MaxX*scale), ceilInt(cy + self.MaxY*scale),
	)
}

func floorInt(value float64) int { return int(math.Floor(value)) }
func ceilInt(value float64) int { return int(math.Ceil(value)) }
