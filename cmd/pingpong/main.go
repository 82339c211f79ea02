package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/pingpong/audio"
	"github.com/lixenwraith/pingpong/config"
	"github.com/lixenwraith/pingpong/constant"
	"github.com/lixenwraith/pingpong/core"
	"github.com/lixenwraith/pingpong/leaderboard"
	"github.com/lixenwraith/pingpong/mode"
	"github.com/lixenwraith/pingpong/status"
)

var (
	configFlag  = flag.String("config", constant.DefaultConfigPath, "TOML config file; options are saved back here")
	envFlag     = flag.String("env", constant.DefaultEnvPath, ".env file with PINGPONG_* variables")
	debugFlag   = flag.Bool("debug", false, "Write logs/pingpong.log and show the metrics line")
	speedFlag   = flag.String("speed", "", "Ball speed: slow, medium, fast")
	themeFlag   = flag.String("theme", "", "Theme: dark, light")
	backendFlag = flag.String("backend", "", "Leaderboard backend: file, sqlite")
	scoresFlag  = flag.String("scores", "", "Leaderboard file or database path")
	muteFlag    = flag.Bool("mute", false, "Disable audio")
)

func main() {
	flag.Parse()

	logFile := setupLogging(*debugFlag)
	if logFile != nil {
		defer logFile.Close()
	}

	cfg, err := loadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Configuration error: %v\n", err)
		os.Exit(2)
	}

	store, err := leaderboard.Open(cfg.Leaderboard.Backend, cfg.Leaderboard.Path, cfg.LeaderboardOptions())
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to open leaderboard: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	if err := run(cfg, store); err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(1)
	}
}

// loadConfig resolves file, .env and environment, then applies explicit flags
func loadConfig() (*config.Config, error) {
	cfg, err := config.Load(*configFlag, *envFlag)
	if err != nil {
		return nil, err
	}

	if *speedFlag != "" {
		cfg.Game.Speed = *speedFlag
	}
	if *themeFlag != "" {
		cfg.Game.Theme = config.Theme(*themeFlag)
	}
	if *backendFlag != "" {
		cfg.Leaderboard.Backend = *backendFlag
	}
	if *scoresFlag != "" {
		cfg.Leaderboard.Path = *scoresFlag
	} else if *backendFlag == leaderboard.BackendSQLite && cfg.Leaderboard.Path == constant.DefaultLeaderboardPath {
		cfg.Leaderboard.Path = constant.DefaultSQLitePath
	}
	if *muteFlag {
		cfg.Audio.Enabled = false
	}

	cfg.Normalize()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func run(cfg *config.Config, store *leaderboard.Store) error {
	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("failed to create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("failed to initialize terminal: %w", err)
	}
	core.SetCrashScreen(screen)
	defer func() {
		core.SetCrashScreen(nil)
		screen.Fini()
	}()
	defer func() {
		if r := recover(); r != nil {
			core.HandleCrash(r)
		}
	}()

	screen.HideCursor()

	metrics := status.NewRegistry()

	sound := audio.NewSoundManager(cfg.SoundConfig())
	if err := sound.Initialize(); err != nil {
		// Non-fatal, game can run without sound
		log.Printf("Audio initialization failed: %v", err)
	}
	defer sound.Cleanup()
	metrics.Flags.Get(status.KeyAudioAvailable).Store(sound.IsInitialized())
	activeSounds := metrics.Counters.Get(status.KeyActiveSounds)

	game, err := mode.New(mode.Deps{
		Config:     cfg,
		ConfigPath: *configFlag,
		Store:      store,
		Sound:      sound,
		Screen:     screen,
		Metrics:    metrics,
		Debug:      *debugFlag,
	})
	if err != nil {
		return err
	}

	eventChan := make(chan tcell.Event, 64)
	quit := make(chan struct{})
	defer close(quit)

	core.Go(func() {
		for {
			ev := screen.PollEvent()
			if ev == nil {
				// Screen finalized
				return
			}
			select {
			case eventChan <- ev:
			case <-quit:
				return
			}
		}
	})

	frameTicker := time.NewTicker(time.Second / time.Duration(cfg.Game.FrameRate))
	defer frameTicker.Stop()

	last := time.Now()
	game.Render()

	for {
		select {
		case ev := <-eventChan:
			if !game.HandleEvent(ev) {
				log.Printf("quit requested")
				return nil
			}

		case now := <-frameTicker.C:
			game.Update(now.Sub(last))
			last = now

			activeSounds.Store(int64(sound.Active()))
			game.Render()
		}
	}
}
