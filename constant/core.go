package constant

import "time"

// Game Loop Timing
const (
	// DefaultFrameRate is the target frames per second of the game loop
	DefaultFrameRate = 120

	// MaxFrameDelta caps the elapsed time handed to the engine after a stall (window drag, SIGSTOP)
	// The engine itself never clamps; the loop does
	MaxFrameDelta = 100 * time.Millisecond

	// IntentHoldDuration keeps a direction key "held" after its last press/repeat
	// Terminals deliver key repeats but no key-up events
	IntentHoldDuration = 120 * time.Millisecond

	// FrameTimeSmoothing is the weight of the newest sample in the debug frame-time average
	FrameTimeSmoothing = 0.1
)

// Files
const (
	DefaultConfigPath      = "pingpong.toml"
	DefaultEnvPath         = ".env"
	DefaultLeaderboardPath = "scores.txt"
	DefaultSQLitePath      = "scores.db"
)
