package status

// Metric keys written by the game loop
const (
	KeyScreen         = "screen"     // Label: active screen name
	KeyFrames         = "frames"     // Counter: frames advanced since start
	KeyScore          = "score"      // Counter: current episode score
	KeyPaddleHits     = "hits"       // Counter: paddle returns since start
	KeySkipped        = "lb.skipped" // Counter: malformed records skipped on last load
	KeyStorageErrors  = "lb.errors"  // Counter: failed leaderboard operations
	KeyActiveSounds   = "sfx"        // Counter: effects still playing
	KeyBallSpeed      = "speed"      // Gauge: ball speed, units/sec
	KeyFrameTimeMs    = "dt.ms"      // Gauge: smoothed frame delta
	KeyAudioAvailable = "audio"      // Flag: speaker initialized
)
