// Package mode is the presentation controller: it turns terminal events into screen
// transitions and paddle intents, steps the engine once per frame and persists results.
package mode

// Mode is the active screen
type Mode uint8

const (
	ModeMenu Mode = iota
	ModeNameEntry
	ModePlaying
	ModePaused
	ModeGameOver
	ModeLeaderboard
	ModeOptions
	ModeQuit
)

var modeNames = [...]string{
	ModeMenu:        "menu",
	ModeNameEntry:   "name",
	ModePlaying:     "playing",
	ModePaused:      "paused",
	ModeGameOver:    "gameover",
	ModeLeaderboard: "leaderboard",
	ModeOptions:     "options",
	ModeQuit:        "quit",
}

func (m Mode) String() string {
	if int(m) < len(modeNames) {
		return modeNames[m]
	}
	return "unknown"
}

// Main menu entries, in display order
const (
	menuPlay = iota
	menuLeaderboard
	menuOptions
	menuQuit
	menuCount
)

var menuLabels = [menuCount]string{"Play", "Leaderboard", "Options", "Quit"}

// Options entries, in display order
const (
	optionTheme = iota
	optionSpeed
	optionBack
	optionCount
)
