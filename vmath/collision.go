package vmath

// CircleRectOverlap reports whether a circle touches or overlaps the rectangle
// Touching edges count as overlap
func CircleRectOverlap(center Vec2, radius float64, r Rect) bool {
	if radius < 0 {
		return false
	}
	d := center.Sub(r.ClosestPoint(center))
	return d.LenSq() <= radius*radius
}
