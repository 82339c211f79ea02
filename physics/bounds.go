package physics

import "math"

// ReflectTop clamps the ball below y=minY and forces downward motion
// Returns true if the top edge reached the boundary
func ReflectTop(k *Kinetic, minY float64) bool {
	if k.Pos.Y-k.Radius > minY {
		return false
	}
	k.Pos.Y = minY + k.Radius
	k.Vel.Y = math.Abs(k.Vel.Y)
	return true
}

// ReflectBottom clamps the ball above y=maxY and forces upward motion
// Returns true if the bottom edge reached the boundary
func ReflectBottom(k *Kinetic, maxY float64) bool {
	if k.Pos.Y+k.Radius < maxY {
		return false
	}
	k.Pos.Y = maxY - k.Radius
	k.Vel.Y = -math.Abs(k.Vel.Y)
	return true
}

// ReflectRight clamps the ball left of x=maxX and inverts horizontal velocity
// Returns true if the right edge reached the boundary
func ReflectRight(k *Kinetic, maxX float64) bool {
	if Trailing(k) < maxX {
		return false
	}
	k.Pos.X = maxX - k.Radius
	k.Vel.X = -k.Vel.X
	return true
}

// CrossedLeft reports whether the left edge reached x=minX; position is not corrected
func CrossedLeft(k *Kinetic, minX float64) bool {
	return Leading(k) <= minX
}
