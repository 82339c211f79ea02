// Package config resolves game settings from defaults, a TOML file, a .env file,
// PINGPONG_* environment variables and finally command-line flags (applied by the caller).
package config

import (
	"errors"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/joho/godotenv"

	"github.com/lixenwraith/pingpong/audio"
	"github.com/lixenwraith/pingpong/constant"
	"github.com/lixenwraith/pingpong/engine"
	"github.com/lixenwraith/pingpong/leaderboard"
)

// ErrInvalidConfig marks unreadable files and out-of-range values
var ErrInvalidConfig = errors.New("invalid config")

// ArenaConfig is the playfield in world units
type ArenaConfig struct {
	Width      float64 `toml:"width"`
	Height     float64 `toml:"height"`
	BallRadius float64 `toml:"ball_radius"`
}

// PaddleConfig is the player paddle in world units
type PaddleConfig struct {
	X      float64 `toml:"x"`
	Width  float64 `toml:"width"`
	Height float64 `toml:"height"`
	Speed  float64 `toml:"speed"`
}

// GameConfig holds the player-facing options
type GameConfig struct {
	Speed     string `toml:"speed"`
	Theme     Theme  `toml:"theme"`
	FrameRate int    `toml:"frame_rate"`
}

// LeaderboardConfig selects the score storage
type LeaderboardConfig struct {
	Backend  string `toml:"backend"`
	Path     string `toml:"path"`
	Capacity int    `toml:"capacity"`
}

// VolumeConfig is per-effect volume, 0.0-1.0
type VolumeConfig struct {
	Bounce    float64 `toml:"bounce"`
	Button    float64 `toml:"button"`
	GameOver  float64 `toml:"gameover"`
	HighScore float64 `toml:"highscore"`
}

// AudioConfig is the sound section
type AudioConfig struct {
	Enabled      bool         `toml:"enabled"`
	MasterVolume float64      `toml:"master_volume"`
	SampleRate   int          `toml:"sample_rate"`
	Volumes      VolumeConfig `toml:"volumes"`
}

// Config is the full resolved configuration
type Config struct {
	Arena       ArenaConfig       `toml:"arena"`
	Paddle      PaddleConfig      `toml:"paddle"`
	Game        GameConfig        `toml:"game"`
	Leaderboard LeaderboardConfig `toml:"leaderboard"`
	Audio       AudioConfig       `toml:"audio"`
}

// Default returns the built-in settings
func Default() *Config {
	return &Config{
		Arena: ArenaConfig{
			Width:      constant.ArenaWidth,
			Height:     constant.ArenaHeight,
			BallRadius: constant.BallRadius,
		},
		Paddle: PaddleConfig{
			X:      constant.PaddleX,
			Width:  constant.PaddleWidth,
			Height: constant.PaddleHeight,
			Speed:  constant.PaddleSpeed,
		},
		Game: GameConfig{
			Speed:     engine.SpeedMedium.String(),
			Theme:     ThemeDark,
			FrameRate: constant.DefaultFrameRate,
		},
		Leaderboard: LeaderboardConfig{
			Backend:  leaderboard.BackendFile,
			Path:     constant.DefaultLeaderboardPath,
			Capacity: constant.LeaderboardCapacity,
		},
		Audio: AudioConfig{
			Enabled:      true,
			MasterVolume: constant.MasterVolume,
			SampleRate:   constant.AudioSampleRate,
			Volumes: VolumeConfig{
				Bounce:    constant.BounceVolume,
				Button:    constant.ButtonVolume,
				GameOver:  constant.GameOverVolume,
				HighScore: constant.HighScoreVolume,
			},
		},
	}
}

// Load layers the TOML file at path and the .env file at envPath over the defaults,
// then applies PINGPONG_* variables. Either path may be empty or missing.
func Load(path, envPath string) (*Config, error) {
	cfg := Default()

	if path != "" {
		if err := cfg.decodeFile(path); err != nil {
			return nil, err
		}
	}

	if envPath != "" {
		// godotenv never overrides variables already present in the environment
		if err := godotenv.Load(envPath); err != nil && !errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("%w: env file %s: %w", ErrInvalidConfig, envPath, err)
		}
	}

	if err := cfg.applyEnv(); err != nil {
		return nil, err
	}
	cfg.Normalize()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) decodeFile(path string) error {
	md, err := toml.DecodeFile(path, c)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("%w: %s: %w", ErrInvalidConfig, path, err)
	}

	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		log.Printf("config: %s: unknown keys ignored: %s", path, strings.Join(keys, ", "))
	}
	return nil
}

// Normalize lowercases and trims the enumerated string settings
func (c *Config) Normalize() {
	c.Game.Speed = strings.ToLower(strings.TrimSpace(c.Game.Speed))
	c.Game.Theme = Theme(strings.ToLower(strings.TrimSpace(string(c.Game.Theme))))
	c.Leaderboard.Backend = strings.ToLower(strings.TrimSpace(c.Leaderboard.Backend))
}

// Save writes the whole of c as TOML, creating parent directories
func (c *Config) Save(path string) error {
	return writeTOML(path, c)
}

// SaveGame persists game.speed and game.theme into the file at path
// Every other key in the file is kept as written; env and flag overrides never reach disk
func (c *Config) SaveGame(path string) error {
	doc := make(map[string]any)
	if _, err := toml.DecodeFile(path, &doc); err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("%w: %s: %w", ErrInvalidConfig, path, err)
	}

	game, ok := doc["game"].(map[string]any)
	if !ok {
		game = make(map[string]any)
		doc["game"] = game
	}
	game["speed"] = c.Game.Speed
	game["theme"] = string(c.Game.Theme)

	return writeTOML(path, doc)
}

// writeTOML encodes v to a temp file beside path and renames it into place
func writeTOML(path string, v any) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	f, err := os.CreateTemp(dir, "."+filepath.Base(path)+".*")
	if err != nil {
		return fmt.Errorf("failed to create config file: %w", err)
	}
	tmp := f.Name()

	if err := toml.NewEncoder(f).Encode(v); err != nil {
		f.Close()
		os.Remove(tmp)
		return fmt.Errorf("failed to encode config: %w", err)
	}
	if err := f.Close(); err != nil {
		os.Remove(tmp)
		return fmt.Errorf("failed to write config: %w", err)
	}
	if err := os.Chmod(tmp, 0644); err != nil {
		os.Remove(tmp)
		return fmt.Errorf("failed to write config: %w", err)
	}
	if err := os.Rename(tmp, path); err != nil {
		os.Remove(tmp)
		return fmt.Errorf("failed to replace config: %w", err)
	}
	return nil
}

// Validate checks every section; engine geometry is checked by engine.Config.Validate
func (c *Config) Validate() error {
	ec, err := c.EngineConfig()
	if err != nil {
		return err
	}
	if err := ec.Validate(); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}

	if _, err := ParseTheme(string(c.Game.Theme)); err != nil {
		return err
	}
	if c.Game.FrameRate < 1 || c.Game.FrameRate > 1000 {
		return fmt.Errorf("%w: frame rate %d out of range 1-1000", ErrInvalidConfig, c.Game.FrameRate)
	}

	switch strings.ToLower(c.Leaderboard.Backend) {
	case leaderboard.BackendFile, leaderboard.BackendSQLite:
	default:
		return fmt.Errorf("%w: unknown leaderboard backend %q", ErrInvalidConfig, c.Leaderboard.Backend)
	}
	if c.Leaderboard.Path == "" {
		return fmt.Errorf("%w: empty leaderboard path", ErrInvalidConfig)
	}
	if c.Leaderboard.Capacity < 1 {
		return fmt.Errorf("%w: leaderboard capacity %d", ErrInvalidConfig, c.Leaderboard.Capacity)
	}

	if c.Audio.SampleRate <= 0 {
		return fmt.Errorf("%w: sample rate %d", ErrInvalidConfig, c.Audio.SampleRate)
	}
	vols := []struct {
		name string
		v    float64
	}{
		{"master", c.Audio.MasterVolume},
		{"bounce", c.Audio.Volumes.Bounce},
		{"button", c.Audio.Volumes.Button},
		{"gameover", c.Audio.Volumes.GameOver},
		{"highscore", c.Audio.Volumes.HighScore},
	}
	for _, v := range vols {
		if v.v < 0 || v.v > 1 {
			return fmt.Errorf("%w: %s volume %v out of range 0-1", ErrInvalidConfig, v.name, v.v)
		}
	}
	return nil
}

// SpeedPreset parses Game.Speed
func (c *Config) SpeedPreset() (engine.SpeedPreset, error) {
	p, err := engine.ParseSpeedPreset(c.Game.Speed)
	if err != nil {
		return p, fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	return p, nil
}

// EngineConfig converts the arena, paddle and speed sections
func (c *Config) EngineConfig() (engine.Config, error) {
	preset, err := c.SpeedPreset()
	if err != nil {
		return engine.Config{}, err
	}

	return engine.Config{
		Arena: engine.Arena{
			Width:      c.Arena.Width,
			Height:     c.Arena.Height,
			BallRadius: c.Arena.BallRadius,
		},
		Paddle: engine.PaddleConfig{
			X:      c.Paddle.X,
			Width:  c.Paddle.Width,
			Height: c.Paddle.Height,
			Speed:  c.Paddle.Speed,
		},
		BaseSpeed: preset.BaseSpeed(),
	}, nil
}

// LeaderboardOptions converts the leaderboard section
func (c *Config) LeaderboardOptions() leaderboard.Options {
	return leaderboard.Options{Capacity: c.Leaderboard.Capacity}
}

// SoundConfig converts the audio section
func (c *Config) SoundConfig() *audio.AudioConfig {
	cfg := audio.DefaultAudioConfig()
	cfg.Enabled = c.Audio.Enabled
	cfg.MasterVolume = c.Audio.MasterVolume
	cfg.SampleRate = c.Audio.SampleRate
	cfg.EffectVolumes[audio.SoundBounce] = c.Audio.Volumes.Bounce
	cfg.EffectVolumes[audio.SoundButton] = c.Audio.Volumes.Button
	cfg.EffectVolumes[audio.SoundGameOver] = c.Audio.Volumes.GameOver
	cfg.EffectVolumes[audio.SoundHighScore] = c.Audio.Volumes.HighScore
	return cfg
}
