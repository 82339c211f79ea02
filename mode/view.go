package mode

import (
	"fmt"

	"github.com/lixenwraith/pingpong/render"
)

// Render draws the active screen and flushes it
func (g *Game) Render() {
	r := g.renderer
	w, h := r.Begin()

	vp, ok := render.NewViewport(w, h, g.engine.Config().Arena)
	if !ok {
		r.TooSmall(w, h)
		r.Show()
		return
	}

	switch g.mode {
	case ModeMenu:
		labels := menuLabels
		r.Menu("PING PONG", labels[:], g.menuIndex)
	case ModeNameEntry:
		r.NameEntry(g.Name())
	case ModePlaying, ModePaused:
		r.HUD(render.HUD{
			Name:   g.Name(),
			Score:  g.engine.Result().Score,
			Best:   g.bestScore(),
			Speed:  g.preset.String(),
			Paused: g.mode == ModePaused,
			Muted:  g.sound.IsMuted(),
		})
		r.Arena(vp, g.engine.Snapshot())
		if g.mode == ModePaused {
			r.Pause()
		}
	case ModeGameOver:
		r.GameOver(g.Name(), g.finalScore, g.highScore)
	case ModeLeaderboard:
		r.Leaderboard(g.store.Entries(), g.lbOffset, g.lbHighlight)
	case ModeOptions:
		r.Options(g.optionLabels(), g.optIndex)
	}

	switch {
	case g.debug:
		r.Status(g.metrics.registry.Line(), false)
	case g.statusMsg != "":
		r.Status(g.statusMsg, g.statusErr)
	}

	r.Show()
}

func (g *Game) optionLabels() []string {
	labels := make([]string, optionCount)
	labels[optionTheme] = fmt.Sprintf("Theme: %s", g.cfg.Game.Theme)
	labels[optionSpeed] = fmt.Sprintf("Ball speed: %s", g.preset)
	labels[optionBack] = "Back"
	return labels
}
