package engine

import (
	"fmt"

	"github.com/lixenwraith/pingpong/constant"
	"github.com/lixenwraith/pingpong/vmath"
)

// Arena is the fixed playfield, origin top-left, Y down
type Arena struct {
	Width      float64
	Height     float64
	BallRadius float64
}

// PaddleConfig is the fixed paddle geometry and movement rate
type PaddleConfig struct {
	X      float64 // Left edge
	Width  float64
	Height float64
	Speed  float64 // units/sec
}

// Config is everything the engine needs at construction
type Config struct {
	Arena     Arena
	Paddle    PaddleConfig
	BaseSpeed float64 // Launch speed used by the initial reset
}

// DefaultConfig returns the reference geometry with the medium speed preset
func DefaultConfig() Config {
	return Config{
		Arena: Arena{
			Width:      constant.ArenaWidth,
			Height:     constant.ArenaHeight,
			BallRadius: constant.BallRadius,
		},
		Paddle: PaddleConfig{
			X:      constant.PaddleX,
			Width:  constant.PaddleWidth,
			Height: constant.PaddleHeight,
			Speed:  constant.PaddleSpeed,
		},
		BaseSpeed: constant.BallSpeedMedium,
	}
}

// Validate checks geometry so that no frame can run on a broken arena
func (c Config) Validate() error {
	a, p := c.Arena, c.Paddle

	dims := []struct {
		name string
		v    float64
	}{
		{"arena width", a.Width},
		{"arena height", a.Height},
		{"ball radius", a.BallRadius},
		{"paddle width", p.Width},
		{"paddle height", p.Height},
	}
	for _, d := range dims {
		if !vmath.IsFinite(d.v) || d.v <= 0 {
			return fmt.Errorf("%w: %s must be positive, got %v", ErrInvalidConfig, d.name, d.v)
		}
	}

	if !vmath.IsFinite(p.Speed) || p.Speed < 0 {
		return fmt.Errorf("%w: paddle speed must be non-negative, got %v", ErrInvalidConfig, p.Speed)
	}
	if !vmath.IsFinite(p.X) || p.X < 0 || p.X+p.Width > a.Width {
		return fmt.Errorf("%w: paddle x %v out of arena width %v", ErrInvalidConfig, p.X, a.Width)
	}
	if p.Height > a.Height {
		return fmt.Errorf("%w: paddle height %v exceeds arena height %v", ErrInvalidConfig, p.Height, a.Height)
	}
	if 2*a.BallRadius >= a.Width || 2*a.BallRadius >= a.Height {
		return fmt.Errorf("%w: ball radius %v does not fit the arena", ErrInvalidConfig, a.BallRadius)
	}
	if err := validateSpeed(c.BaseSpeed); err != nil {
		return err
	}
	return nil
}

func validateSpeed(s float64) error {
	if !vmath.IsFinite(s) || s <= 0 {
		return fmt.Errorf("%w: %v", ErrInvalidSpeed, s)
	}
	return nil
}
