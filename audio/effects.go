package audio

import (
	"math"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"

	"github.com/lixenwraith/pingpong/constant"
)

// WaveType defines oscillator wave shapes
type WaveType int

const (
	WaveSine WaveType = iota
	WaveSquare
	WaveSaw
)

// at returns the wave value for a phase in [0, 1)
func (w WaveType) at(phase float64) float64 {
	switch w {
	case WaveSquare:
		if phase < 0.5 {
			return 1
		}
		return -1
	case WaveSaw:
		return 2*phase - 1
	default:
		return math.Sin(2 * math.Pi * phase)
	}
}

// Note describes one enveloped tone
// Attack ramps up from silence and Release fades out at the end of Duration
type Note struct {
	Freq     float64
	Wave     WaveType
	Duration time.Duration
	Attack   time.Duration
	Release  time.Duration
}

// voice renders a Note sample by sample, oscillator and gain envelope in one pass
type voice struct {
	wave    WaveType
	step    float64 // Phase advance per sample
	phase   float64
	pos     int
	total   int
	attack  int
	release int
}

func newVoice(n Note, rate beep.SampleRate) *voice {
	return &voice{
		wave:    n.Wave,
		step:    n.Freq / float64(rate),
		total:   rate.N(n.Duration),
		attack:  rate.N(n.Attack),
		release: rate.N(n.Release),
	}
}

// gain is the envelope level at the current position
func (v *voice) gain() float64 {
	g := 1.0
	if v.pos < v.attack {
		g = float64(v.pos) / float64(v.attack)
	}
	if v.release > 0 && v.pos >= max(v.total-v.release, v.attack) {
		g = float64(v.total-v.pos) / float64(v.release)
	}
	return g
}

func (v *voice) Stream(samples [][2]float64) (n int, ok bool) {
	for n = range samples {
		if v.pos >= v.total {
			return n, n > 0
		}

		val := v.wave.at(v.phase) * v.gain()
		samples[n] = [2]float64{val, val}

		v.phase += v.step
		v.phase -= math.Floor(v.phase)
		v.pos++
	}
	return len(samples), true
}

func (v *voice) Err() error { return nil }

// notes sequences the given notes into one streamer
func notes(rate beep.SampleRate, ns ...Note) beep.Streamer {
	if len(ns) == 1 {
		return newVoice(ns[0], rate)
	}
	parts := make([]beep.Streamer, len(ns))
	for i, n := range ns {
		parts[i] = newVoice(n, rate)
	}
	return beep.Seq(parts...)
}

// newVolume scales s linearly by vol; math.Log2(0) is -Inf so zero maps to Silent
func newVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Volume: 0, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol), Silent: false}
}

func effectVolume(cfg *AudioConfig, st SoundType) float64 {
	return cfg.EffectVolumes[st] * cfg.MasterVolume
}

// CreateBounceSound generates a short sine blip for wall and paddle contact
func CreateBounceSound(cfg *AudioConfig) beep.Streamer {
	blip := notes(beep.SampleRate(cfg.SampleRate), Note{
		Freq:     constant.BounceSoundFreq,
		Wave:     WaveSine,
		Duration: constant.BounceSoundDuration,
		Attack:   constant.BounceSoundAttack,
		Release:  constant.BounceSoundRelease,
	})
	return newVolume(blip, effectVolume(cfg, SoundBounce))
}

// CreateButtonSound generates a square click for menu input
func CreateButtonSound(cfg *AudioConfig) beep.Streamer {
	click := notes(beep.SampleRate(cfg.SampleRate), Note{
		Freq:     constant.ButtonSoundFreq,
		Wave:     WaveSquare,
		Duration: constant.ButtonSoundDuration,
		Attack:   constant.ButtonSoundAttack,
		Release:  constant.ButtonSoundRelease,
	})
	// Square waves are loud at unity
	return newVolume(click, 0.5*effectVolume(cfg, SoundButton))
}

// CreateGameOverSound generates a descending two-note saw
func CreateGameOverSound(cfg *AudioConfig) beep.Streamer {
	fall := notes(beep.SampleRate(cfg.SampleRate),
		Note{
			Freq:     constant.GameOverNote1Freq,
			Wave:     WaveSaw,
			Duration: constant.GameOverNote1Duration,
			Attack:   constant.GameOverSoundAttack,
			Release:  constant.GameOverNote1Release,
		},
		Note{
			Freq:     constant.GameOverNote2Freq,
			Wave:     WaveSaw,
			Duration: constant.GameOverNote2Duration,
			Attack:   constant.GameOverSoundAttack,
			Release:  constant.GameOverNote2Release,
		},
	)
	return newVolume(fall, effectVolume(cfg, SoundGameOver))
}

// CreateHighScoreSound generates a rising arpeggio
func CreateHighScoreSound(cfg *AudioConfig) beep.Streamer {
	arp := make([]Note, len(constant.HighScoreNotes))
	for i, freq := range constant.HighScoreNotes {
		arp[i] = Note{
			Freq:     freq,
			Wave:     WaveSquare,
			Duration: constant.HighScoreNoteDuration,
			Attack:   constant.HighScoreSoundAttack,
			Release:  constant.HighScoreNoteRelease,
		}
	}
	return newVolume(notes(beep.SampleRate(cfg.SampleRate), arp...), 0.5*effectVolume(cfg, SoundHighScore))
}

// GetSoundEffect returns the appropriate sound effect streamer for the given type
func GetSoundEffect(soundType SoundType, cfg *AudioConfig) beep.Streamer {
	switch soundType {
	case SoundBounce:
		return CreateBounceSound(cfg)
	case SoundButton:
		return CreateButtonSound(cfg)
	case SoundGameOver:
		return CreateGameOverSound(cfg)
	case SoundHighScore:
		return CreateHighScoreSound(cfg)
	default:
		return nil
	}
}
