package engine

import "github.com/lixenwraith/pingpong/vmath"

// Phase is the ball-facing episode state
type Phase uint8

const (
	PhaseRunning Phase = iota
	PhaseEnded
)

func (p Phase) String() string {
	if p == PhaseEnded {
		return "ended"
	}
	return "running"
}

// BallState is the ball's kinematic state; velocity in units/sec
type BallState struct {
	Pos vmath.Vec2
	Vel vmath.Vec2
}

// Speed returns the velocity magnitude
func (b BallState) Speed() float64 {
	return b.Vel.Len()
}

// PaddleState is the paddle rectangle; only Y changes during play
type PaddleState struct {
	X, Y          float64
	Width, Height float64
}

// Rect returns the paddle as a rectangle
func (p PaddleState) Rect() vmath.Rect {
	return vmath.Rect{X: p.X, Y: p.Y, W: p.Width, H: p.Height}
}

// EpisodeResult is the score so far and whether the ball was missed
type EpisodeResult struct {
	Score int
	Ended bool
}

// Snapshot is a value copy of the full episode state
type Snapshot struct {
	Ball   BallState
	Paddle PaddleState
	Result EpisodeResult
	Phase  Phase
}
