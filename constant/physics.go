package constant

// Arena (world units)
const (
	ArenaWidth  = 1700.0
	ArenaHeight = 980.0
	BallRadius  = 10.0
)

// Paddle (world units); the paddle sits near the left boundary
const (
	PaddleX      = 30.0
	PaddleWidth  = 10.0
	PaddleHeight = 100.0
	PaddleSpeed  = 450.0 // units/sec
)

// Ball base speed presets (units/sec per axis at launch)
const (
	BallSpeedSlow   = 300.0
	BallSpeedMedium = 600.0
	BallSpeedFast   = 1000.0
)

// Paddle return
const (
	// MaxBounceAngleDeg is the deflection at either paddle end (hit offset ±1)
	MaxBounceAngleDeg = 60.0

	// PaddleSpeedGain multiplies ball speed on every return
	PaddleSpeedGain = 1.05
)
