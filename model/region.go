package model

// Region represents a rectangle in normalized page coordinates.
// The origin is the top-left corner of the page and y grows downward,
// so Top is the smaller y value and Bottom the larger.
type Region struct {
	X      float64 // Left
	Y      float64 // Top
	Width  float64
	Height float64
}

// NewRegion creates a region from its top-left corner and dimensions.
func NewRegion(x, y, width, height float64) Region {
	return Region{X: x, Y: y, Width: width, Height: height}
}

// Left returns the left edge X coordinate.
func (r Region) Left() float64 {
	return r.X
}

// Right returns the right edge X coordinate.
func (r Region) Right() float64 {
	return r.X + r.Width
}

// Top returns the top edge Y coordinate.
func (r Region) Top() float64 {
	return r.Y
}

// Bottom returns the bottom edge Y coordinate.
func (r Region) Bottom() float64 {
	return r.Y + r.Height
}

// Contains checks whether the point (x, y) lies inside the region.
// Both bounds are inclusive: points exactly on an edge are contained.
// Adjacent regions spaced edge-to-edge therefore share their boundary
// points, which is intentional for the fixed flyer grid.
func (r Region) Contains(x, y float64) bool {
	return x >= r.Left() && x <= r.Right() &&
		y >= r.Top() && y <= r.Bottom()
}

// Offset returns a copy of the region translated by (dx, dy).
func (r Region) Offset(dx, dy float64) Region {
	return Region{X: r.X + dx, Y: r.Y + dy, Width: r.Width, Height: r.Height}
}

// IsValid returns true if the region has positive dimensions.
func (r Region) IsValid() bool {
	return r.Width > 0 && r.Height > 0
}
