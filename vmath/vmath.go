// Package vmath provides float64 2D vector and geometry helpers for the simulation
package vmath

import (
	"cmp"
	"math"
)

// DegToRad converts degrees to radians
const DegToRad = math.Pi / 180

// Clamp restricts v to [lo, hi]
func Clamp[T cmp.Ordered](v, lo, hi T) T {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// IsFinite reports whether f is neither NaN nor ±Inf
func IsFinite(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}
