package engine

import (
	"fmt"
	"strings"

	"github.com/lixenwraith/pingpong/constant"
)

// SpeedPreset is the player-selectable launch speed
type SpeedPreset uint8

const (
	SpeedSlow SpeedPreset = iota
	SpeedMedium
	SpeedFast
	speedPresetCount
)

var speedPresetNames = [speedPresetCount]string{"slow", "medium", "fast"}

// BaseSpeed returns the per-axis launch speed for the preset
func (p SpeedPreset) BaseSpeed() float64 {
	switch p {
	case SpeedSlow:
		return constant.BallSpeedSlow
	case SpeedFast:
		return constant.BallSpeedFast
	default:
		return constant.BallSpeedMedium
	}
}

func (p SpeedPreset) String() string {
	if p >= speedPresetCount {
		return fmt.Sprintf("SpeedPreset(%d)", uint8(p))
	}
	return speedPresetNames[p]
}

// Next cycles slow → medium → fast → slow
func (p SpeedPreset) Next() SpeedPreset {
	return (p + 1) % speedPresetCount
}

// ParseSpeedPreset accepts the lowercase names, case-insensitively
func ParseSpeedPreset(s string) (SpeedPreset, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	for i, n := range speedPresetNames {
		if n == name {
			return SpeedPreset(i), nil
		}
	}
	return SpeedMedium, fmt.Errorf("%w: %q", ErrUnknownPreset, s)
}
