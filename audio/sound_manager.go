// Package audio synthesizes the game's sound effects and mixes them onto the speaker.
package audio

import (
	"fmt"
	"sync"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"

	"github.com/lixenwraith/pingpong/constant"
)

// SoundManager manages all game audio
// Every method is a no-op until Initialize succeeds, so the game runs silently without a device
type SoundManager struct {
	mu          sync.Mutex
	cfg         *AudioConfig
	mixer       *beep.Mixer
	initialized bool
	muted       bool
}

// NewSoundManager creates a new sound manager; nil cfg selects DefaultAudioConfig
func NewSoundManager(cfg *AudioConfig) *SoundManager {
	if cfg == nil {
		cfg = DefaultAudioConfig()
	}
	return &SoundManager{
		cfg:   cfg,
		mixer: &beep.Mixer{},
	}
}

// Initialize opens the speaker and starts the mixer
// Disabled audio is not an error; the manager simply stays silent
func (sm *SoundManager) Initialize() error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if sm.initialized || !sm.cfg.Enabled {
		return nil
	}

	rate := beep.SampleRate(sm.cfg.SampleRate)
	if err := speaker.Init(rate, rate.N(constant.AudioBufferDuration)); err != nil {
		return fmt.Errorf("speaker init: %w", err)
	}

	speaker.Play(sm.mixer)
	sm.initialized = true
	return nil
}

// Cleanup stops all sounds and closes the audio system
func (sm *SoundManager) Cleanup() {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}

	speaker.Lock()
	sm.mixer.Clear()
	speaker.Unlock()

	speaker.Close()
	sm.initialized = false
}

// Play queues one effect on the mixer
func (sm *SoundManager) Play(st SoundType) {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized || sm.muted {
		return
	}

	s := GetSoundEffect(st, sm.cfg)
	if s == nil {
		return
	}

	speaker.Lock()
	sm.mixer.Add(s)
	speaker.Unlock()
}

// ToggleMute flips the mute flag and returns the new state
func (sm *SoundManager) ToggleMute() bool {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	sm.muted = !sm.muted
	return sm.muted
}

// IsMuted reports the mute flag
func (sm *SoundManager) IsMuted() bool {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	return sm.muted
}

// IsInitialized reports whether the speaker is open
func (sm *SoundManager) IsInitialized() bool {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	return sm.initialized
}

// Active returns the number of effects still playing
func (sm *SoundManager) Active() int {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return 0
	}

	speaker.Lock()
	defer speaker.Unlock()
	return sm.mixer.Len()
}
