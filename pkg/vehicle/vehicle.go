package vehicle

import "image/color"

// Fixed body size shared by the player and every opponent
const (
	Width  = 50.0
	Height = 80.0
)

// Rect is an axis-aligned bounding box, X/Y is the top-left corner
type Rect struct {
	X, Y, W, H float64
}

// Left returns the left edge
func (r Rect) Left() float64 { return r.X }

// Right returns the right edge
func (r Rect) Right() float64 { return r.X + r.W }

// Top returns the top edge
func (r Rect) Top() float64 { return r.Y }

// Bottom returns the bottom edge
func (r Rect) Bottom() float64 { return r.Y + r.H }

// Overlaps reports whether both rects share a nonzero area.
// Edges that only touch do not overlap.
func (r Rect) Overlaps(o Rect) bool {
	return r.Left() < o.Right() &&
		r.Right() > o.Left() &&
		r.Top() < o.Bottom() &&
		r.Bottom() > o.Top()
}

// Vehicle is anything with a body on the road
type Vehicle struct {
	X, Y  float64     // Top-left of the bounding box
	Color color.Color // Only set for opponents
}

// New creates a vehicle at the given top-left position
func New(x, y float64, c color.Color) Vehicle {
	return Vehicle{X: x, Y: y, Color: c}
}

// Bounds returns the vehicle's bounding box
func (v Vehicle) Bounds() Rect {
	return Rect{X: v.X, Y: v.Y, W: Width, H: Height}
}
