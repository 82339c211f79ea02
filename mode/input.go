package mode

import (
	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/pingpong/audio"
	"github.com/lixenwraith/pingpong/constant"
	"github.com/lixenwraith/pingpong/engine"
	"github.com/lixenwraith/pingpong/leaderboard"
)

// HandleEvent processes a tcell event and returns false if the game should exit
func (g *Game) HandleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		g.handleKey(ev)
	case *tcell.EventResize:
		g.screen.Sync()
	}
	return g.mode != ModeQuit
}

func (g *Game) handleKey(ev *tcell.EventKey) {
	if ev.Key() == tcell.KeyCtrlC {
		g.saveOptions()
		g.setMode(ModeQuit)
		return
	}

	switch g.mode {
	case ModeMenu:
		g.handleMenu(ev)
	case ModeNameEntry:
		g.handleNameEntry(ev)
	case ModePlaying:
		g.handlePlaying(ev)
	case ModePaused:
		g.handlePaused(ev)
	case ModeGameOver:
		g.handleGameOver(ev)
	case ModeLeaderboard:
		g.handleLeaderboard(ev)
	case ModeOptions:
		g.handleOptions(ev)
	}
}

// navigation maps arrows and vi keys to -1 (up), +1 (down) or 0
func navigation(ev *tcell.EventKey) int {
	switch ev.Key() {
	case tcell.KeyUp:
		return -1
	case tcell.KeyDown:
		return 1
	case tcell.KeyRune:
		switch ev.Rune() {
		case 'k', 'w':
			return -1
		case 'j', 's':
			return 1
		}
	}
	return 0
}

func isRune(ev *tcell.EventKey, r rune) bool {
	return ev.Key() == tcell.KeyRune && ev.Rune() == r
}

func (g *Game) handleMenu(ev *tcell.EventKey) {
	if d := navigation(ev); d != 0 {
		g.menuIndex = (g.menuIndex + d + menuCount) % menuCount
		g.sound.Play(audio.SoundButton)
		return
	}

	switch {
	case ev.Key() == tcell.KeyEnter:
		g.sound.Play(audio.SoundButton)
		g.selectMenu(g.menuIndex)
	case ev.Key() == tcell.KeyEscape, isRune(ev, 'q'):
		g.setMode(ModeQuit)
	}
}

func (g *Game) selectMenu(item int) {
	switch item {
	case menuPlay:
		g.setMode(ModeNameEntry)
	case menuLeaderboard:
		g.openLeaderboard(g.store.FindByName(g.Name()))
	case menuOptions:
		g.optIndex = 0
		g.setMode(ModeOptions)
	case menuQuit:
		g.setMode(ModeQuit)
	}
}

func (g *Game) handleNameEntry(ev *tcell.EventKey) {
	switch ev.Key() {
	case tcell.KeyEnter:
		if len(g.name) == 0 {
			g.setStatus("Name cannot be empty", true)
			return
		}
		g.sound.Play(audio.SoundButton)
		g.startEpisode()
	case tcell.KeyEscape:
		g.setMode(ModeMenu)
	case tcell.KeyBackspace, tcell.KeyBackspace2:
		if len(g.name) > 0 {
			g.name = g.name[:len(g.name)-1]
		}
	case tcell.KeyRune:
		// Printable ASCII without space; names are whitespace-delimited on disk
		if r := ev.Rune(); r > ' ' && r <= '~' && len(g.name) < constant.MaxNameLength {
			g.name = append(g.name, r)
		}
	}
}

func (g *Game) handlePlaying(ev *tcell.EventKey) {
	switch d := navigation(ev); {
	case d < 0:
		g.hold.press(engine.IntentUp)
		return
	case d > 0:
		g.hold.press(engine.IntentDown)
		return
	}

	switch {
	case isRune(ev, 'p'), ev.Key() == tcell.KeyEscape:
		g.hold.release()
		g.setMode(ModePaused)
	case isRune(ev, 'm'):
		g.toggleMute()
	}
}

func (g *Game) handlePaused(ev *tcell.EventKey) {
	switch {
	case isRune(ev, 'p'), ev.Key() == tcell.KeyEscape:
		g.setMode(ModePlaying)
	case isRune(ev, 'q'):
		// Abandoned episodes are not recorded
		g.setMode(ModeMenu)
	case isRune(ev, 'm'):
		g.toggleMute()
	}
}

func (g *Game) handleGameOver(ev *tcell.EventKey) {
	switch ev.Key() {
	case tcell.KeyEnter:
		g.sound.Play(audio.SoundButton)
		g.saveResult()
		g.setMode(ModeMenu)
	case tcell.KeyEscape:
		g.setMode(ModeMenu)
	}
}

func (g *Game) openLeaderboard(highlight int) {
	g.reloadLeaderboard()
	g.lbOffset = 0
	g.lbHighlight = highlight
	if highlight >= constant.LeaderboardPageSize {
		g.lbOffset = highlight - highlight%constant.LeaderboardPageSize
	}
	g.setMode(ModeLeaderboard)
}

func (g *Game) handleLeaderboard(ev *tcell.EventKey) {
	maxOffset := max(g.store.Len()-constant.LeaderboardPageSize, 0)

	if d := navigation(ev); d != 0 {
		g.lbOffset = min(max(g.lbOffset+d, 0), maxOffset)
		return
	}

	switch {
	case ev.Key() == tcell.KeyPgUp:
		g.lbOffset = max(g.lbOffset-constant.LeaderboardPageSize, 0)
	case ev.Key() == tcell.KeyPgDn:
		g.lbOffset = min(g.lbOffset+constant.LeaderboardPageSize, maxOffset)
	case isRune(ev, 'c'):
		g.sound.Play(audio.SoundButton)
		if err := g.store.Clear(); err != nil {
			g.metrics.storageErrors.Add(1)
			g.setStatus("Could not clear leaderboard", true)
		} else {
			g.setStatus("Leaderboard cleared", false)
		}
		g.lbOffset = 0
		g.lbHighlight = leaderboard.NotFound
	case ev.Key() == tcell.KeyEscape, ev.Key() == tcell.KeyEnter, isRune(ev, 'q'):
		g.setMode(ModeMenu)
	}
}

func (g *Game) handleOptions(ev *tcell.EventKey) {
	if d := navigation(ev); d != 0 {
		g.optIndex = (g.optIndex + d + optionCount) % optionCount
		g.sound.Play(audio.SoundButton)
		return
	}

	switch ev.Key() {
	case tcell.KeyEnter, tcell.KeyLeft, tcell.KeyRight:
		g.sound.Play(audio.SoundButton)
		g.selectOption(g.optIndex)
	case tcell.KeyEscape:
		g.saveOptions()
		g.setMode(ModeMenu)
	}
}

func (g *Game) selectOption(item int) {
	switch item {
	case optionTheme:
		g.cfg.Game.Theme = g.cfg.Game.Theme.Next()
		g.renderer.SetTheme(g.cfg.Game.Theme)
		g.optDirty = true
	case optionSpeed:
		g.preset = g.preset.Next()
		g.cfg.Game.Speed = g.preset.String()
		g.optDirty = true
	case optionBack:
		g.saveOptions()
		g.setMode(ModeMenu)
	}
}

func (g *Game) toggleMute() {
	if g.sound.ToggleMute() {
		g.setStatus("Sound muted", false)
	} else {
		g.setStatus("Sound on", false)
	}
}
