package vmath

// Rect is an axis-aligned rectangle anchored at its top-left corner
// Y grows downward, matching screen space
type Rect struct {
	X, Y, W, H float64
}

// Right returns the x-coordinate of the right edge
func (r Rect) Right() float64 {
	return r.X + r.W
}

// Bottom returns the y-coordinate of the bottom edge
func (r Rect) Bottom() float64 {
	return r.Y + r.H
}

// Center returns the rectangle midpoint
func (r Rect) Center() Vec2 {
	return Vec2{X: r.X + r.W/2, Y: r.Y + r.H/2}
}

// Contains reports whether p lies inside or on the border
func (r Rect) Contains(p Vec2) bool {
	return p.X >= r.X && p.X <= r.Right() && p.Y >= r.Y && p.Y <= r.Bottom()
}

// ClosestPoint returns the point of r nearest to p
func (r Rect) ClosestPoint(p Vec2) Vec2 {
	return Vec2{
		X: Clamp(p.X, r.X, r.Right()),
		Y: Clamp(p.Y, r.Y, r.Bottom()),
	}
}
