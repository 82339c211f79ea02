package engine

import "strings"

// Events is the set of tags emitted by one Advance call
// Callers react to them (sound, flash); the engine itself performs no side effects
type Events uint8

const (
	// EventBounce: top, bottom or right wall resolution
	EventBounce Events = 1 << iota

	// EventPaddleHit: qualifying paddle return, score incremented
	EventPaddleHit

	// EventGameOver: leading edge crossed the left boundary, phase is now ended
	EventGameOver
)

// Has reports whether all bits of e are set
func (ev Events) Has(e Events) bool {
	return ev&e == e
}

// Empty reports whether no tags were emitted
func (ev Events) Empty() bool {
	return ev == 0
}

func (ev Events) String() string {
	if ev == 0 {
		return "none"
	}
	var parts []string
	if ev.Has(EventBounce) {
		parts = append(parts, "bounce")
	}
	if ev.Has(EventPaddleHit) {
		parts = append(parts, "paddle-hit")
	}
	if ev.Has(EventGameOver) {
		parts = append(parts, "game-over")
	}
	return strings.Join(parts, "|")
}
