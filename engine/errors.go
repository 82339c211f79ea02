package engine

import "errors"

// Sentinel errors
var (
	// ErrInvalidConfig rejects arena/paddle geometry at construction
	ErrInvalidConfig = errors.New("invalid engine config")

	// ErrInvalidElapsed rejects negative, NaN or infinite frame time
	ErrInvalidElapsed = errors.New("invalid elapsed time")

	// ErrInvalidIntent rejects input outside the defined intents
	ErrInvalidIntent = errors.New("invalid input intent")

	// ErrInvalidSpeed rejects a non-positive or non-finite base speed
	ErrInvalidSpeed = errors.New("invalid base speed")

	// ErrUnknownPreset is returned when parsing an unrecognized speed preset name
	ErrUnknownPreset = errors.New("unknown speed preset")
)
