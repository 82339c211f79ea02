// Package physics holds the integration and collision-response primitives used by the engine
package physics

import "github.com/lixenwraith/pingpong/vmath"

// Kinetic is a moving circle: position, velocity and radius in world units
type Kinetic struct {
	Pos    vmath.Vec2
	Vel    vmath.Vec2
	Radius float64
}

// Integrate advances position by explicit Euler: p = p + v*dt
// dt is not clamped; a step longer than the paddle is thick can tunnel through it
func Integrate(k *Kinetic, dt float64) {
	k.Pos.X += k.Vel.X * dt
	k.Pos.Y += k.Vel.Y * dt
}

// Speed returns the velocity magnitude
func Speed(k *Kinetic) float64 {
	return k.Vel.Len()
}

// SetVelocity overrides velocity (hard redirect)
func SetVelocity(k *Kinetic, v vmath.Vec2) {
	k.Vel = v
}

// Leading returns the x-coordinate of the left edge
func Leading(k *Kinetic) float64 {
	return k.Pos.X - k.Radius
}

// Trailing returns the x-coordinate of the right edge
func Trailing(k *Kinetic) float64 {
	return k.Pos.X + k.Radius
}
