package audio

import (
	"fmt"

	"github.com/lixenwraith/pingpong/constant"
)

// SoundType represents different sound effects
type SoundType int

const (
	SoundBounce    SoundType = iota // Wall or paddle contact
	SoundButton                     // Menu navigation and selection
	SoundGameOver                   // Ball lost
	SoundHighScore                  // New best score at game over
	soundTypeCount
)

var soundTypeNames = [soundTypeCount]string{"bounce", "button", "gameover", "highscore"}

func (s SoundType) String() string {
	if s < 0 || s >= soundTypeCount {
		return fmt.Sprintf("SoundType(%d)", int(s))
	}
	return soundTypeNames[s]
}

// AudioConfig holds playback settings
type AudioConfig struct {
	Enabled       bool
	MasterVolume  float64 // 0.0-1.0
	SampleRate    int
	EffectVolumes map[SoundType]float64
}

// DefaultAudioConfig returns the reference volumes at full master volume
func DefaultAudioConfig() *AudioConfig {
	return &AudioConfig{
		Enabled:      true,
		MasterVolume: constant.MasterVolume,
		SampleRate:   constant.AudioSampleRate,
		EffectVolumes: map[SoundType]float64{
			SoundBounce:    constant.BounceVolume,
			SoundButton:    constant.ButtonVolume,
			SoundGameOver:  constant.GameOverVolume,
			SoundHighScore: constant.HighScoreVolume,
		},
	}
}
