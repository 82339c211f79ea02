package config

import (
	"encoding/json"
	"fmt"
	"os"
	"strconv"
)

// Environment variables read by Load
const (
	EnvSpeed               = "PINGPONG_SPEED"
	EnvTheme               = "PINGPONG_THEME"
	EnvLeaderboardBackend  = "PINGPONG_LEADERBOARD_BACKEND"
	EnvLeaderboardPath     = "PINGPONG_LEADERBOARD_PATH"
	EnvLeaderboardCapacity = "PINGPONG_LEADERBOARD_CAPACITY"
	EnvAudioEnabled        = "PINGPONG_AUDIO_ENABLED"
	EnvMasterVolume        = "PINGPONG_MASTER_VOLUME"
	EnvSampleRate          = "PINGPONG_SAMPLE_RATE"
	EnvSFXVolumes          = "PINGPONG_SFX_VOLUMES"
)

// applyEnv overlays PINGPONG_* variables; unparsable values are errors
func (c *Config) applyEnv() error {
	if v := os.Getenv(EnvSpeed); v != "" {
		c.Game.Speed = v
	}
	if v := os.Getenv(EnvTheme); v != "" {
		c.Game.Theme = Theme(v)
	}
	if v := os.Getenv(EnvLeaderboardBackend); v != "" {
		c.Leaderboard.Backend = v
	}
	if v := os.Getenv(EnvLeaderboardPath); v != "" {
		c.Leaderboard.Path = v
	}

	if v := os.Getenv(EnvLeaderboardCapacity); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return envError(EnvLeaderboardCapacity, v, err)
		}
		c.Leaderboard.Capacity = n
	}

	if v := os.Getenv(EnvAudioEnabled); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return envError(EnvAudioEnabled, v, err)
		}
		c.Audio.Enabled = b
	}

	// Master volume is 0-100, clamped, converted to 0.0-1.0
	if v := os.Getenv(EnvMasterVolume); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return envError(EnvMasterVolume, v, err)
		}
		c.Audio.MasterVolume = min(max(float64(n)/100.0, 0), 1)
	}

	if v := os.Getenv(EnvSampleRate); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n <= 0 {
			return envError(EnvSampleRate, v, err)
		}
		c.Audio.SampleRate = n
	}

	// Effect volumes as JSON: {"bounce":0.3,"highscore":1}
	if v := os.Getenv(EnvSFXVolumes); v != "" {
		var volumes map[string]float64
		if err := json.Unmarshal([]byte(v), &volumes); err != nil {
			return envError(EnvSFXVolumes, v, err)
		}
		for name, vol := range volumes {
			switch name {
			case "bounce":
				c.Audio.Volumes.Bounce = vol
			case "button":
				c.Audio.Volumes.Button = vol
			case "gameover":
				c.Audio.Volumes.GameOver = vol
			case "highscore":
				c.Audio.Volumes.HighScore = vol
			default:
				return envError(EnvSFXVolumes, v, fmt.Errorf("unknown effect %q", name))
			}
		}
	}

	return nil
}

func envError(name, value string, err error) error {
	if err == nil {
		return fmt.Errorf("%w: %s=%q", ErrInvalidConfig, name, value)
	}
	return fmt.Errorf("%w: %s=%q: %w", ErrInvalidConfig, name, value, err)
}
