package vmath

import "math"

// Vec2 is a 2D vector in world units
type Vec2 struct {
	X, Y float64
}

// V2 constructs a Vec2
func V2(x, y float64) Vec2 {
	return Vec2{X: x, Y: y}
}

// Add returns v + o
func (v Vec2) Add(o Vec2) Vec2 {
	return Vec2{X: v.X + o.X, Y: v.Y + o.Y}
}

// Sub returns v - o
func (v Vec2) Sub(o Vec2) Vec2 {
	return Vec2{X: v.X - o.X, Y: v.Y - o.Y}
}

// Scale multiplies both components by s
func (v Vec2) Scale(s float64) Vec2 {
	return Vec2{X: v.X * s, Y: v.Y * s}
}

// Dot returns the dot product
func (v Vec2) Dot(o Vec2) float64 {
	return v.X*o.X + v.Y*o.Y
}

// LenSq returns squared magnitude without sqrt
func (v Vec2) LenSq() float64 {
	return v.X*v.X + v.Y*v.Y
}

// Len returns Euclidean magnitude
func (v Vec2) Len() float64 {
	return math.Sqrt(v.X*v.X + v.Y*v.Y)
}

// FromPolar builds a vector of length mag at angle rad, measured from +X toward +Y
func FromPolar(mag, rad float64) Vec2 {
	return Vec2{X: mag * math.Cos(rad), Y: mag * math.Sin(rad)}
}

// IsFinite reports whether both components are finite
func (v Vec2) IsFinite() bool {
	return IsFinite(v.X) && IsFinite(v.Y)
}
