package constant

import "time"

// Audio Hardware Settings
const (
	AudioSampleRate     = 44100
	AudioBufferDuration = 100 * time.Millisecond
)

// Default effect volumes (0.0-1.0)
const (
	BounceVolume    = 0.5
	ButtonVolume    = 0.5
	GameOverVolume  = 0.5
	HighScoreVolume = 0.8
	MasterVolume    = 1.0
)

// Bounce Sound: short sine blip
const (
	BounceSoundFreq     = 660.0
	BounceSoundDuration = 60 * time.Millisecond
	BounceSoundAttack   = 2 * time.Millisecond
	BounceSoundRelease  = 40 * time.Millisecond
)

// Button Sound: square click
const (
	ButtonSoundFreq     = 1200.0
	ButtonSoundDuration = 25 * time.Millisecond
	ButtonSoundAttack   = 1 * time.Millisecond
	ButtonSoundRelease  = 15 * time.Millisecond
)

// Game Over Sound: descending saw pair
const (
	GameOverNote1Freq     = 392.0 // G4
	GameOverNote2Freq     = 196.0 // G3
	GameOverNote1Duration = 180 * time.Millisecond
	GameOverNote2Duration = 420 * time.Millisecond
	GameOverSoundAttack   = 5 * time.Millisecond
	GameOverNote1Release  = 60 * time.Millisecond
	GameOverNote2Release  = 300 * time.Millisecond
)

// High Score Sound: rising square arpeggio
const (
	HighScoreNoteDuration = 110 * time.Millisecond
	HighScoreSoundAttack  = 5 * time.Millisecond
	HighScoreNoteRelease  = 60 * time.Millisecond
)

// HighScoreNotes are C5 E5 G5 C6
var HighScoreNotes = [...]float64{523.25, 659.25, 783.99, 1046.50}
