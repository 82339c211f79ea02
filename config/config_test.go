package config

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/lixenwraith/pingpong/audio"
	"github.com/lixenwraith/pingpong/constant"
	"github.com/lixenwraith/pingpong/engine"
)

var allEnv = []string{
	EnvSpeed, EnvTheme, EnvLeaderboardBackend, EnvLeaderboardPath, EnvLeaderboardCapacity,
	EnvAudioEnabled, EnvMasterVolume, EnvSampleRate, EnvSFXVolumes,
}

// clearEnv unsets every PINGPONG_* variable for the test and restores them afterward
func clearEnv(t *testing.T) {
	t.Helper()
	for _, name := range allEnv {
		t.Setenv(name, "")
		os.Unsetenv(name)
	}
}

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestDefaultIsValid(t *testing.T) {
	cfg := Default()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("Expected defaults to validate, got %v", err)
	}

	ec, err := cfg.EngineConfig()
	if err != nil {
		t.Fatal(err)
	}
	if ec != engine.DefaultConfig() {
		t.Errorf("Expected engine defaults, got %+v", ec)
	}
	if cfg.LeaderboardOptions().Capacity != 100 {
		t.Errorf("Expected capacity 100, got %d", cfg.LeaderboardOptions().Capacity)
	}
}

func TestLoadMissingFiles(t *testing.T) {
	clearEnv(t)
	dir := t.TempDir()

	cfg, err := Load(filepath.Join(dir, "absent.toml"), filepath.Join(dir, "absent.env"))
	if err != nil {
		t.Fatalf("Expected missing files to be ignored, got %v", err)
	}
	if *cfg != *Default() {
		t.Errorf("Expected defaults, got %+v", cfg)
	}
}

func TestLoadTOML(t *testing.T) {
	clearEnv(t)
	path := writeFile(t, t.TempDir(), "pingpong.toml", `
[game]
speed = "Fast"
theme = "light"

[leaderboard]
backend = "sqlite"
path = "data/scores.db"
capacity = 10

[audio]
enabled = false

[audio.volumes]
bounce = 0.2
`)

	cfg, err := Load(path, "")
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if cfg.Game.Speed != "fast" {
		t.Errorf("Expected normalized speed fast, got %q", cfg.Game.Speed)
	}
	if cfg.Game.Theme != ThemeLight {
		t.Errorf("Expected light theme, got %q", cfg.Game.Theme)
	}
	if cfg.Leaderboard.Backend != "sqlite" || cfg.Leaderboard.Path != "data/scores.db" || cfg.Leaderboard.Capacity != 10 {
		t.Errorf("Unexpected leaderboard section: %+v", cfg.Leaderboard)
	}
	if cfg.Audio.Enabled {
		t.Error("Expected audio disabled")
	}
	if cfg.Audio.Volumes.Bounce != 0.2 {
		t.Errorf("Expected bounce volume 0.2, got %v", cfg.Audio.Volumes.Bounce)
	}
	// Untouched keys keep defaults
	if cfg.Audio.Volumes.HighScore != 0.8 || cfg.Arena.Width != 1700 {
		t.Error("Expected unspecified keys to keep defaults")
	}

	ec, _ := cfg.EngineConfig()
	if ec.BaseSpeed != 1000 {
		t.Errorf("Expected fast base speed 1000, got %v", ec.BaseSpeed)
	}
}

func TestEnvOverridesFile(t *testing.T) {
	clearEnv(t)
	path := writeFile(t, t.TempDir(), "pingpong.toml", "[game]\nspeed = \"fast\"\n")

	t.Setenv(EnvSpeed, "slow")
	t.Setenv(EnvLeaderboardCapacity, "7")
	t.Setenv(EnvAudioEnabled, "0")
	t.Setenv(EnvSampleRate, "22050")
	t.Setenv(EnvSFXVolumes, `{"button":0.1,"gameover":0.9}`)

	cfg, err := Load(path, "")
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if p, _ := cfg.SpeedPreset(); p != engine.SpeedSlow {
		t.Errorf("Expected slow preset from env, got %v", p)
	}
	if cfg.Leaderboard.Capacity != 7 {
		t.Errorf("Expected capacity 7, got %d", cfg.Leaderboard.Capacity)
	}
	if cfg.Audio.Enabled {
		t.Error("Expected audio disabled")
	}
	if cfg.Audio.SampleRate != 22050 {
		t.Errorf("Expected sample rate 22050, got %d", cfg.Audio.SampleRate)
	}
	if cfg.Audio.Volumes.Button != 0.1 || cfg.Audio.Volumes.GameOver != 0.9 {
		t.Errorf("Unexpected volumes: %+v", cfg.Audio.Volumes)
	}
}

func TestMasterVolumeClamp(t *testing.T) {
	tests := []struct {
		value string
		want  float64
	}{
		{"0", 0},
		{"50", 0.5},
		{"100", 1},
		{"-50", 0},
		{"150", 1},
	}

	for _, tt := range tests {
		t.Run(tt.value, func(t *testing.T) {
			clearEnv(t)
			t.Setenv(EnvMasterVolume, tt.value)

			cfg, err := Load("", "")
			if err != nil {
				t.Fatalf("Load failed: %v", err)
			}
			if cfg.Audio.MasterVolume != tt.want {
				t.Errorf("Expected %v, got %v", tt.want, cfg.Audio.MasterVolume)
			}
		})
	}
}

func TestDotEnv(t *testing.T) {
	clearEnv(t)
	dir := t.TempDir()
	envPath := writeFile(t, dir, ".env", "PINGPONG_THEME=light\nPINGPONG_SPEED=fast\n")

	// Real environment wins over the .env file
	t.Setenv(EnvSpeed, "slow")

	cfg, err := Load("", envPath)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.Game.Theme != ThemeLight {
		t.Errorf("Expected theme from .env, got %q", cfg.Game.Theme)
	}
	if cfg.Game.Speed != "slow" {
		t.Errorf("Expected real env to win, got %q", cfg.Game.Speed)
	}
}

func TestLoadRejectsInvalid(t *testing.T) {
	tests := []struct {
		name string
		toml string
		env  map[string]string
	}{
		{"bad syntax", "[game\nspeed=", nil},
		{"unknown speed", "[game]\nspeed = \"warp\"\n", nil},
		{"unknown theme", "[game]\ntheme = \"blue\"\n", nil},
		{"zero capacity", "[leaderboard]\ncapacity = 0\n", nil},
		{"unknown backend", "[leaderboard]\nbackend = \"postgres\"\n", nil},
		{"bad volume", "[audio.volumes]\nbounce = 1.5\n", nil},
		{"bad arena", "[arena]\nwidth = -1\n", nil},
		{"paddle taller than arena", "[paddle]\nheight = 5000\n", nil},
		{"bad frame rate", "[game]\nframe_rate = 0\n", nil},
		{"env capacity", "", map[string]string{EnvLeaderboardCapacity: "many"}},
		{"env enabled", "", map[string]string{EnvAudioEnabled: "maybe"}},
		{"env sample rate", "", map[string]string{EnvSampleRate: "-1"}},
		{"env sfx json", "", map[string]string{EnvSFXVolumes: "{"}},
		{"env sfx key", "", map[string]string{EnvSFXVolumes: `{"boing":1}`}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clearEnv(t)
			for k, v := range tt.env {
				t.Setenv(k, v)
			}

			path := ""
			if tt.toml != "" {
				path = writeFile(t, t.TempDir(), "pingpong.toml", tt.toml)
			}

			if _, err := Load(path, ""); !errors.Is(err, ErrInvalidConfig) {
				t.Errorf("Expected ErrInvalidConfig, got %v", err)
			}
		})
	}
}

func TestSaveRoundTrip(t *testing.T) {
	clearEnv(t)
	path := filepath.Join(t.TempDir(), "sub", "pingpong.toml")

	cfg := Default()
	cfg.Game.Speed = "fast"
	cfg.Game.Theme = ThemeLight
	cfg.Audio.Volumes.Bounce = 0.25

	if err := cfg.Save(path); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	loaded, err := Load(path, "")
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if *loaded != *cfg {
		t.Errorf("Round trip mismatch:\nsaved  %+v\nloaded %+v", cfg, loaded)
	}
}

func TestSaveGameKeepsFileAndSkipsOverrides(t *testing.T) {
	clearEnv(t)
	dir := t.TempDir()
	path := writeFile(t, dir, "pingpong.toml", "[leaderboard]\ncapacity = 7\n\n[game]\nframe_rate = 60\n")

	t.Setenv(EnvLeaderboardBackend, "sqlite")
	t.Setenv(EnvAudioEnabled, "false")

	cfg, err := Load(path, "")
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	cfg.Game.Speed = "fast"
	cfg.Game.Theme = ThemeLight
	cfg.Leaderboard.Path = "elsewhere.txt"

	if err := cfg.SaveGame(path); err != nil {
		t.Fatalf("SaveGame failed: %v", err)
	}

	clearEnv(t)
	saved, err := Load(path, "")
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if saved.Game.Speed != "fast" || saved.Game.Theme != ThemeLight {
		t.Errorf("Expected fast/light saved, got %q/%q", saved.Game.Speed, saved.Game.Theme)
	}
	if saved.Game.FrameRate != 60 || saved.Leaderboard.Capacity != 7 {
		t.Errorf("Expected file keys kept, got frame_rate %d capacity %d", saved.Game.FrameRate, saved.Leaderboard.Capacity)
	}
	if saved.Leaderboard.Backend != "file" || saved.Leaderboard.Path != constant.DefaultLeaderboardPath || !saved.Audio.Enabled {
		t.Errorf("Expected overrides not persisted, got %+v %+v", saved.Leaderboard, saved.Audio)
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 1 {
		t.Errorf("Expected only the config file in %s, found %d entries", dir, len(entries))
	}
}

func TestSaveGameCreatesMissingFile(t *testing.T) {
	clearEnv(t)
	path := filepath.Join(t.TempDir(), "sub", "pingpong.toml")

	cfg := Default()
	cfg.Game.Speed = "slow"
	if err := cfg.SaveGame(path); err != nil {
		t.Fatalf("SaveGame failed: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile failed: %v", err)
	}
	if strings.Contains(string(data), "[leaderboard]") || strings.Contains(string(data), "[audio]") {
		t.Errorf("Expected only the game table, got:\n%s", data)
	}

	saved, err := Load(path, "")
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if saved.Game.Speed != "slow" || saved.Game.Theme != ThemeDark {
		t.Errorf("Expected slow/dark, got %q/%q", saved.Game.Speed, saved.Game.Theme)
	}
}

func TestSaveGameLeavesBrokenFileAlone(t *testing.T) {
	clearEnv(t)
	const broken = "[game\nspeed="
	path := writeFile(t, t.TempDir(), "pingpong.toml", broken)

	if err := Default().SaveGame(path); !errors.Is(err, ErrInvalidConfig) {
		t.Errorf("Expected ErrInvalidConfig, got %v", err)
	}
	if data, _ := os.ReadFile(path); string(data) != broken {
		t.Errorf("Expected file untouched, got %q", data)
	}
}

func TestSoundConfig(t *testing.T) {
	cfg := Default()
	cfg.Audio.MasterVolume = 0.4
	cfg.Audio.Volumes.Bounce = 0.1

	sc := cfg.SoundConfig()
	if sc.MasterVolume != 0.4 || sc.SampleRate != 44100 || !sc.Enabled {
		t.Errorf("Unexpected sound config: %+v", sc)
	}
	if sc.EffectVolumes[audio.SoundBounce] != 0.1 {
		t.Errorf("Expected bounce volume 0.1, got %v", sc.EffectVolumes[audio.SoundBounce])
	}
	if sc.EffectVolumes[audio.SoundHighScore] != 0.8 {
		t.Errorf("Expected highscore volume 0.8, got %v", sc.EffectVolumes[audio.SoundHighScore])
	}
}

func TestTheme(t *testing.T) {
	if th, err := ParseTheme(" Light "); err != nil || th != ThemeLight {
		t.Errorf("Expected light, got %q %v", th, err)
	}
	if _, err := ParseTheme("sepia"); !errors.Is(err, ErrInvalidConfig) {
		t.Errorf("Expected ErrInvalidConfig, got %v", err)
	}
	if ThemeDark.Next() != ThemeLight || ThemeLight.Next() != ThemeDark {
		t.Error("Expected Next to toggle")
	}
}
