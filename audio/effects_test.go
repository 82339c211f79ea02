package audio

import (
	"math"
	"testing"
	"time"

	"github.com/gopxl/beep"
)

// drain streams s to completion and returns all samples
func drain(t *testing.T, s beep.Streamer) [][2]float64 {
	t.Helper()
	var out [][2]float64
	buf := make([][2]float64, 512)
	for i := 0; i < 10000; i++ {
		n, ok := s.Stream(buf)
		out = append(out, buf[:n]...)
		if !ok {
			return out
		}
	}
	t.Fatal("Stream did not terminate")
	return nil
}

func peak(samples [][2]float64) float64 {
	var m float64
	for _, s := range samples {
		m = max(m, math.Abs(s[0]), math.Abs(s[1]))
	}
	return m
}

// TestVoiceSine verifies sine wave generation
func TestVoiceSine(t *testing.T) {
	rate := beep.SampleRate(44100)
	osc := newVoice(Note{Freq: 440, Wave: WaveSine, Duration: 100 * time.Millisecond}, rate)

	samples := make([][2]float64, 100)
	n, ok := osc.Stream(samples)
	if !ok || n != 100 {
		t.Fatalf("Expected 100 samples, got %d ok=%v", n, ok)
	}

	for i := 0; i < n; i++ {
		if samples[i][0] < -1.0 || samples[i][0] > 1.0 {
			t.Errorf("Sample %d out of range: %f", i, samples[i][0])
		}
		if samples[i][0] != samples[i][1] {
			t.Errorf("Sample %d: expected mono, got %v", i, samples[i])
		}
	}
	if samples[0][0] != 0 {
		t.Errorf("Expected sine to start at 0, got %f", samples[0][0])
	}
}

// TestVoiceSquare verifies square wave generation
func TestVoiceSquare(t *testing.T) {
	osc := newVoice(Note{Freq: 220, Wave: WaveSquare, Duration: 50 * time.Millisecond}, beep.SampleRate(44100))

	samples := make([][2]float64, 50)
	n, _ := osc.Stream(samples)
	for i := 0; i < n; i++ {
		if v := samples[i][0]; v != -1.0 && v != 1.0 {
			t.Errorf("Square wave sample %d should be -1.0 or 1.0, got %f", i, v)
		}
	}
}

// TestVoiceSaw verifies sawtooth range
func TestVoiceSaw(t *testing.T) {
	osc := newVoice(Note{Freq: 1000, Wave: WaveSaw, Duration: 50 * time.Millisecond}, beep.SampleRate(44100))

	for i, s := range drain(t, osc) {
		if s[0] < -1.0 || s[0] >= 1.0 {
			t.Errorf("Saw sample %d out of range: %f", i, s[0])
		}
	}
}

// TestVoiceDuration verifies the stream ends after its duration
func TestVoiceDuration(t *testing.T) {
	rate := beep.SampleRate(44100)
	osc := newVoice(Note{Freq: 440, Wave: WaveSine, Duration: 10 * time.Millisecond}, rate)

	if got, want := len(drain(t, osc)), rate.N(10*time.Millisecond); got != want {
		t.Errorf("Expected %d samples, got %d", want, got)
	}

	n, ok := osc.Stream(make([][2]float64, 10))
	if ok || n != 0 {
		t.Errorf("Expected drained voice, got n=%d ok=%v", n, ok)
	}
}

// TestEnvelopeShape verifies attack ramps up and release fades out
func TestEnvelopeShape(t *testing.T) {
	rate := beep.SampleRate(1000)
	// Zero frequency square holds +1
	env := newVoice(Note{
		Wave:     WaveSquare,
		Duration: 100 * time.Millisecond,
		Attack:   10 * time.Millisecond,
		Release:  20 * time.Millisecond,
	}, rate)

	samples := drain(t, env)
	if len(samples) != 100 {
		t.Fatalf("Expected 100 samples, got %d", len(samples))
	}

	if samples[0][0] != 0 {
		t.Errorf("Expected attack to start silent, got %f", samples[0][0])
	}
	if samples[5][0] != 0.5 {
		t.Errorf("Expected half gain mid-attack, got %f", samples[5][0])
	}
	if samples[50][0] != 1.0 {
		t.Errorf("Expected full sustain, got %f", samples[50][0])
	}
	if samples[90][0] != 0.5 {
		t.Errorf("Expected half gain mid-release, got %f", samples[90][0])
	}
	if last := samples[99][0]; last <= 0 || last > 0.1 {
		t.Errorf("Expected near-silent tail, got %f", last)
	}
}

// TestSoundEffectLengths verifies each effect plays for its configured duration
func TestSoundEffectLengths(t *testing.T) {
	cfg := DefaultAudioConfig()
	rate := beep.SampleRate(cfg.SampleRate)

	tests := []struct {
		st   SoundType
		want int
	}{
		{SoundBounce, rate.N(60 * time.Millisecond)},
		{SoundButton, rate.N(25 * time.Millisecond)},
		{SoundGameOver, rate.N(180*time.Millisecond) + rate.N(420*time.Millisecond)},
		{SoundHighScore, 4 * rate.N(110*time.Millisecond)},
	}

	for _, tt := range tests {
		t.Run(tt.st.String(), func(t *testing.T) {
			s := GetSoundEffect(tt.st, cfg)
			if s == nil {
				t.Fatal("Expected non-nil sound")
			}

			samples := drain(t, s)
			if len(samples) != tt.want {
				t.Errorf("Expected %d samples, got %d", tt.want, len(samples))
			}
			if p := peak(samples); p == 0 || p > 1.0 {
				t.Errorf("Expected audible peak within [0,1], got %f", p)
			}
		})
	}
}

// TestGetSoundEffectInvalid verifies unknown types yield nil
func TestGetSoundEffectInvalid(t *testing.T) {
	if GetSoundEffect(soundTypeCount, DefaultAudioConfig()) != nil {
		t.Error("Expected nil for invalid sound type")
	}
	if GetSoundEffect(-1, DefaultAudioConfig()) != nil {
		t.Error("Expected nil for negative sound type")
	}
}

// TestSoundEffectVolume verifies master and effect volume scale output
func TestSoundEffectVolume(t *testing.T) {
	loud := DefaultAudioConfig()
	quiet := DefaultAudioConfig()
	quiet.MasterVolume = 0.5
	silent := DefaultAudioConfig()
	silent.EffectVolumes[SoundBounce] = 0

	pLoud := peak(drain(t, CreateBounceSound(loud)))
	pQuiet := peak(drain(t, CreateBounceSound(quiet)))
	pSilent := peak(drain(t, CreateBounceSound(silent)))

	if math.Abs(pQuiet-pLoud/2) > 1e-9 {
		t.Errorf("Expected half master volume to halve peak: %f vs %f", pQuiet, pLoud)
	}
	if pSilent != 0 {
		t.Errorf("Expected zero volume to be silent, got %f", pSilent)
	}
}

func TestSoundTypeString(t *testing.T) {
	if SoundHighScore.String() != "highscore" {
		t.Errorf("Unexpected name %q", SoundHighScore.String())
	}
	if SoundType(9).String() != "SoundType(9)" {
		t.Errorf("Unexpected name %q", SoundType(9).String())
	}
}
