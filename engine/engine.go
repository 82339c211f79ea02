// Package engine is the ball-and-paddle simulation: one Advance per frame, one Reset per episode.
//
// Per-frame order inside Advance:
//  1. Integrate ball position (explicit Euler, dt not clamped)
//  2. Top/bottom walls: clamp and force vertical velocity away from the wall
//  3. Paddle: circle/rect overlap while moving left deflects by hit offset, speeds up, scores
//  4. Right wall: clamp and invert horizontal velocity
//  5. Left boundary: end the episode, leave position and velocity as integrated
//  6. Paddle movement from the input intent, clamped to the arena
//
// Large dt is not sub-stepped: the ball can pass through the paddle within one step.
// The caller's frame loop owns any dt cap.
package engine

import (
	"fmt"

	"github.com/lixenwraith/pingpong/constant"
	"github.com/lixenwraith/pingpong/physics"
	"github.com/lixenwraith/pingpong/vmath"
)

var paddleReturn = physics.DeflectProfile{
	MaxAngleDeg: constant.MaxBounceAngleDeg,
	SpeedGain:   constant.PaddleSpeedGain,
}

// Engine owns one episode's ball, paddle and result
// Not safe for concurrent use; the game loop goroutine owns it
type Engine struct {
	cfg Config

	ball   physics.Kinetic
	paddle PaddleState
	result EpisodeResult
	phase  Phase
}

// New validates cfg and starts an episode at cfg.BaseSpeed
func New(cfg Config) (*Engine, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	e := &Engine{
		cfg: cfg,
		ball: physics.Kinetic{
			Radius: cfg.Arena.BallRadius,
		},
		paddle: PaddleState{
			X:      cfg.Paddle.X,
			Width:  cfg.Paddle.Width,
			Height: cfg.Paddle.Height,
		},
	}
	e.reset(cfg.BaseSpeed)
	return e, nil
}

// Reset starts a new episode: centered ball launched at (-baseSpeed, +baseSpeed),
// centered paddle, zero score, running phase
func (e *Engine) Reset(baseSpeed float64) (Snapshot, error) {
	if err := validateSpeed(baseSpeed); err != nil {
		return e.Snapshot(), err
	}
	e.reset(baseSpeed)
	return e.Snapshot(), nil
}

func (e *Engine) reset(baseSpeed float64) {
	a := e.cfg.Arena
	e.ball.Pos = vmath.V2(a.Width/2, a.Height/2)
	e.ball.Vel = vmath.V2(-baseSpeed, baseSpeed)
	e.paddle.Y = a.Height/2 - e.paddle.Height/2
	e.result = EpisodeResult{}
	e.phase = PhaseRunning
}

// Advance steps the episode by elapsedSeconds with the given paddle intent
// Returns the emitted event tags; an ended episode is frozen and emits nothing
func (e *Engine) Advance(elapsedSeconds float64, intent Intent) (Events, error) {
	if !vmath.IsFinite(elapsedSeconds) || elapsedSeconds < 0 {
		return 0, fmt.Errorf("%w: %v", ErrInvalidElapsed, elapsedSeconds)
	}
	if !intent.Valid() {
		return 0, fmt.Errorf("%w: %d", ErrInvalidIntent, intent)
	}
	if e.phase == PhaseEnded {
		return 0, nil
	}

	var ev Events
	a := e.cfg.Arena
	b := &e.ball

	prev := *b
	physics.Integrate(b, elapsedSeconds)
	if !b.Pos.IsFinite() {
		*b = prev
		return 0, fmt.Errorf("%w: %v overflows ball position", ErrInvalidElapsed, elapsedSeconds)
	}

	if physics.ReflectTop(b, 0) {
		ev |= EventBounce
	}
	if physics.ReflectBottom(b, a.Height) {
		ev |= EventBounce
	}

	if paddle := e.paddle.Rect(); physics.PaddleContact(b, paddle) {
		physics.Deflect(b, paddle, paddleReturn)
		e.result.Score++
		ev |= EventPaddleHit
	}

	if physics.ReflectRight(b, a.Width) {
		ev |= EventBounce
	}

	if physics.CrossedLeft(b, 0) {
		e.phase = PhaseEnded
		e.result.Ended = true
		ev |= EventGameOver
	}

	e.movePaddle(elapsedSeconds, intent)

	return ev, nil
}

func (e *Engine) movePaddle(dt float64, intent Intent) {
	step := e.cfg.Paddle.Speed * dt
	switch intent {
	case IntentUp:
		e.paddle.Y = max(0, e.paddle.Y-step)
	case IntentDown:
		e.paddle.Y = min(e.cfg.Arena.Height-e.paddle.Height, e.paddle.Y+step)
	}
}

// Ball returns the current ball state
func (e *Engine) Ball() BallState {
	return BallState{Pos: e.ball.Pos, Vel: e.ball.Vel}
}

// Paddle returns the current paddle state
func (e *Engine) Paddle() PaddleState {
	return e.paddle
}

// Result returns the score and ended flag
func (e *Engine) Result() EpisodeResult {
	return e.result
}

// Phase returns running or ended
func (e *Engine) Phase() Phase {
	return e.phase
}

// Config returns the construction config
func (e *Engine) Config() Config {
	return e.cfg
}

// Snapshot returns a value copy of the episode state
func (e *Engine) Snapshot() Snapshot {
	return Snapshot{
		Ball:   e.Ball(),
		Paddle: e.paddle,
		Result: e.result,
		Phase:  e.phase,
	}
}
