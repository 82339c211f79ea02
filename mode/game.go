package mode

import (
	"errors"
	"fmt"
	"log"
	"sync/atomic"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/pingpong/audio"
	"github.com/lixenwraith/pingpong/config"
	"github.com/lixenwraith/pingpong/constant"
	"github.com/lixenwraith/pingpong/engine"
	"github.com/lixenwraith/pingpong/leaderboard"
	"github.com/lixenwraith/pingpong/render"
	"github.com/lixenwraith/pingpong/status"
)

// SoundPlayer plays one-shot effects; *audio.SoundManager satisfies it
type SoundPlayer interface {
	Play(st audio.SoundType)
	ToggleMute() bool
	IsMuted() bool
}

// Deps are the collaborators a Game is built from
type Deps struct {
	Config     *config.Config
	ConfigPath string // Options are saved here; empty disables saving
	Store      *leaderboard.Store
	Sound      SoundPlayer
	Screen     tcell.Screen
	Metrics    *status.Registry // Optional
	Debug      bool             // Shows the metrics line
}

// Game drives the screens around one engine and one leaderboard
// Owned by the main loop goroutine; not safe for concurrent use
type Game struct {
	cfg        *config.Config
	configPath string
	engine     *engine.Engine
	preset     engine.SpeedPreset
	store      *leaderboard.Store
	sound      SoundPlayer
	renderer   *render.Renderer
	screen     tcell.Screen
	debug      bool

	mode      Mode
	menuIndex int
	optIndex  int
	optDirty  bool
	name      []rune
	hold      intentHold

	// Episode outcome captured on the ENDED transition
	finalScore int
	highScore  bool

	// Leaderboard view
	lbOffset    int
	lbHighlight int

	statusMsg    string
	statusErr    bool
	statusFrames int

	metrics gameMetrics
}

// gameMetrics caches registry pointers written each frame
type gameMetrics struct {
	registry      *status.Registry
	screen        *status.Label
	frames        *atomic.Int64
	score         *atomic.Int64
	hits          *atomic.Int64
	skipped       *atomic.Int64
	storageErrors *atomic.Int64
	ballSpeed     *status.Gauge
	frameTime     *status.Gauge
}

func newGameMetrics(r *status.Registry) gameMetrics {
	if r == nil {
		r = status.NewRegistry()
	}
	return gameMetrics{
		registry:      r,
		screen:        r.Labels.Get(status.KeyScreen),
		frames:        r.Counters.Get(status.KeyFrames),
		score:         r.Counters.Get(status.KeyScore),
		hits:          r.Counters.Get(status.KeyPaddleHits),
		skipped:       r.Counters.Get(status.KeySkipped),
		storageErrors: r.Counters.Get(status.KeyStorageErrors),
		ballSpeed:     r.Gauges.Get(status.KeyBallSpeed),
		frameTime:     r.Gauges.Get(status.KeyFrameTimeMs),
	}
}

// New builds the engine from the config and loads the leaderboard once
func New(d Deps) (*Game, error) {
	if d.Config == nil || d.Store == nil || d.Screen == nil {
		return nil, errors.New("mode: config, store and screen are required")
	}

	preset, err := d.Config.SpeedPreset()
	if err != nil {
		return nil, err
	}
	ec, err := d.Config.EngineConfig()
	if err != nil {
		return nil, err
	}
	eng, err := engine.New(ec)
	if err != nil {
		return nil, fmt.Errorf("engine: %w", err)
	}

	sound := d.Sound
	if sound == nil {
		sound = audio.NewSoundManager(nil) // Never initialized, stays silent
	}

	g := &Game{
		cfg:         d.Config,
		configPath:  d.ConfigPath,
		engine:      eng,
		preset:      preset,
		store:       d.Store,
		sound:       sound,
		screen:      d.Screen,
		renderer:    render.NewRenderer(d.Screen, d.Config.Game.Theme),
		debug:       d.Debug,
		lbHighlight: leaderboard.NotFound,
		metrics:     newGameMetrics(d.Metrics),
	}

	g.reloadLeaderboard()
	g.setMode(ModeMenu)
	return g, nil
}

// Mode returns the active screen
func (g *Game) Mode() Mode {
	return g.mode
}

// Engine exposes the simulation for read-only inspection
func (g *Game) Engine() *engine.Engine {
	return g.engine
}

// Name returns the current player name
func (g *Game) Name() string {
	return string(g.name)
}

// Status returns the transient status message, if any
func (g *Game) Status() (msg string, isError bool) {
	return g.statusMsg, g.statusErr
}

func (g *Game) setMode(m Mode) {
	g.mode = m
	g.metrics.screen.Set(m.String())
}

func (g *Game) setStatus(msg string, isError bool) {
	g.statusMsg = msg
	g.statusErr = isError
	g.statusFrames = constant.StatusMessageFrames
}

// Update advances one frame by dt; only the playing screen advances the engine
func (g *Game) Update(dt time.Duration) {
	dt = min(max(dt, 0), constant.MaxFrameDelta)

	g.metrics.frames.Add(1)
	g.metrics.frameTime.Smooth(float64(dt)/float64(time.Millisecond), constant.FrameTimeSmoothing)

	if g.statusFrames > 0 {
		g.statusFrames--
		if g.statusFrames == 0 {
			g.statusMsg = ""
		}
	}

	if g.mode != ModePlaying {
		return
	}

	intent := g.hold.current()
	g.hold.tick(dt)

	ev, err := g.engine.Advance(dt.Seconds(), intent)
	if err != nil {
		// dt and intent are produced here, so this is a programming error
		panic(fmt.Sprintf("advance: %v", err))
	}

	res := g.engine.Result()
	g.metrics.score.Store(int64(res.Score))
	g.metrics.ballSpeed.Set(g.engine.Ball().Speed())
	if ev.Has(engine.EventPaddleHit) {
		g.metrics.hits.Add(1)
	}

	if ev.Has(engine.EventBounce) || ev.Has(engine.EventPaddleHit) {
		g.sound.Play(audio.SoundBounce)
	}
	if ev.Has(engine.EventGameOver) {
		g.endEpisode(res.Score)
	}
}

// startEpisode resets the engine with the configured preset and enters play
func (g *Game) startEpisode() {
	if _, err := g.engine.Reset(g.preset.BaseSpeed()); err != nil {
		panic(fmt.Sprintf("reset: %v", err))
	}
	g.hold.release()
	g.finalScore = 0
	g.highScore = false
	g.metrics.score.Store(0)
	g.setMode(ModePlaying)
}

// endEpisode refreshes the board and records whether score beats the best
func (g *Game) endEpisode(score int) {
	g.hold.release()
	g.reloadLeaderboard()

	g.finalScore = score
	g.highScore = g.store.IsHighScore(score)

	g.sound.Play(audio.SoundGameOver)
	if g.highScore {
		g.sound.Play(audio.SoundHighScore)
	}
	g.setMode(ModeGameOver)
}

// saveResult appends the finished episode; failures are reported, never fatal
func (g *Game) saveResult() {
	if err := g.store.Append(g.Name(), g.finalScore); err != nil {
		log.Printf("save score: %v", err)
		g.metrics.storageErrors.Add(1)
		g.setStatus("Could not save score: "+err.Error(), true)
	} else {
		g.setStatus(fmt.Sprintf("Saved %s %d", g.Name(), g.finalScore), false)
	}
	g.reloadLeaderboard()
}

// reloadLeaderboard refreshes the cache; a failed load leaves an empty board
func (g *Game) reloadLeaderboard() {
	if _, err := g.store.Load(); err != nil {
		log.Printf("load leaderboard: %v", err)
		g.metrics.storageErrors.Add(1)
		g.setStatus("Could not load leaderboard", true)
	}
	g.metrics.skipped.Store(int64(g.store.LastLoad().Skipped))
}

// bestScore is the top cached score, 0 when empty
func (g *Game) bestScore() int {
	if entries := g.store.Entries(); len(entries) > 0 {
		return entries[0].Score
	}
	return 0
}

// saveOptions persists theme and speed if they changed
func (g *Game) saveOptions() {
	if !g.optDirty {
		return
	}
	g.optDirty = false

	if g.configPath == "" {
		return
	}
	if err := g.cfg.SaveGame(g.configPath); err != nil {
		log.Printf("save config: %v", err)
		g.setStatus("Could not save options", true)
		return
	}
	g.setStatus("Options saved", false)
}
