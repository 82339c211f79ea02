package physics

import (
	"math"

	"github.com/lixenwraith/pingpong/vmath"
)

// DeflectProfile parameterizes a paddle return
type DeflectProfile struct {
	MaxAngleDeg float64 // Bounce angle at offset ±1
	SpeedGain   float64 // Speed multiplier applied per return
}

// HitOffset returns where the ball met the paddle relative to its center
// Nominally [-1, 1]; not clamped, so overshoot past the paddle ends yields |offset| > 1
func HitOffset(ballY float64, paddle vmath.Rect) float64 {
	half := paddle.H / 2
	return (ballY - (paddle.Y + half)) / half
}

// PaddleContact reports a qualifying paddle hit: overlap while moving toward the paddle
// The paddle sits on the left, so only leftward motion qualifies
func PaddleContact(k *Kinetic, paddle vmath.Rect) bool {
	if k.Vel.X >= 0 {
		return false
	}
	return vmath.CircleRectOverlap(k.Pos, k.Radius, paddle)
}

// Deflect sends the ball rightward at an angle derived from the hit offset
// New speed is the prior magnitude times the profile gain
func Deflect(k *Kinetic, paddle vmath.Rect, p DeflectProfile) {
	angle := HitOffset(k.Pos.Y, paddle) * p.MaxAngleDeg * vmath.DegToRad
	speed := Speed(k) * p.SpeedGain

	v := vmath.FromPolar(speed, angle)
	v.X = math.Abs(v.X)
	SetVelocity(k, v)
}
