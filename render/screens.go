package render

import (
	"fmt"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/pingpong/constant"
	"github.com/lixenwraith/pingpong/engine"
	"github.com/lixenwraith/pingpong/leaderboard"
)

// Glyphs
const (
	GlyphBall   = '●'
	GlyphPaddle = '█'
	GlyphCursor = '▏'
)

// HUD is the top status row during play
type HUD struct {
	Name   string
	Score  int
	Best   int
	Speed  string
	Paused bool
	Muted  bool
}

// Menu draws a title and a vertical item list with the selected item highlighted
func (r *Renderer) Menu(title string, items []string, selected int) {
	_, h := r.screen.Size()
	top := max((h-len(items)*2-3)/2, 0)

	r.centered(top, title, r.fg(r.palette.Accent).Bold(true))

	sel := r.base.Foreground(r.palette.SelectFg).Background(r.palette.SelectBg)
	for i, item := range items {
		style := r.base
		label := "  " + item + "  "
		if i == selected {
			style = sel
			label = "> " + item + " <"
		}
		r.centered(top+3+i*2, label, style)
	}
}

// Arena draws the border, paddle and ball for snap
func (r *Renderer) Arena(vp Viewport, snap engine.Snapshot) {
	border := r.fg(r.palette.Border)
	left, right := vp.X-1, vp.X+vp.Cols
	top, bottom := vp.Y-1, vp.Y+vp.Rows

	for x := left + 1; x < right; x++ {
		r.screen.SetContent(x, top, tcell.RuneHLine, nil, border)
		r.screen.SetContent(x, bottom, tcell.RuneHLine, nil, border)
	}
	for y := top + 1; y < bottom; y++ {
		// Left edge is the losing boundary
		r.screen.SetContent(left, y, '┊', nil, r.fg(r.palette.Error))
		r.screen.SetContent(right, y, tcell.RuneVLine, nil, border)
	}
	r.screen.SetContent(left, top, tcell.RuneULCorner, nil, border)
	r.screen.SetContent(right, top, tcell.RuneURCorner, nil, border)
	r.screen.SetContent(left, bottom, tcell.RuneLLCorner, nil, border)
	r.screen.SetContent(right, bottom, tcell.RuneLRCorner, nil, border)

	p := snap.Paddle
	px, _ := vp.Cell(p.Rect().Center())
	first, last := vp.Span(p.Y, p.Y+p.Height)
	paddle := r.fg(r.palette.Paddle)
	for y := first; y <= last; y++ {
		r.screen.SetContent(px, y, GlyphPaddle, nil, paddle)
	}

	bx, by := vp.Cell(snap.Ball.Pos)
	r.screen.SetContent(bx, by, GlyphBall, nil, r.fg(r.palette.Ball).Bold(true))
}

// HUD draws the top status row
func (r *Renderer) HUD(hud HUD) {
	style := r.base.Foreground(r.palette.HUDFg).Background(r.palette.HUDBg)
	r.fillRow(0, style)

	x := r.text(1, 0, fmt.Sprintf("%s  Score %d  Best %d  Speed %s", hud.Name, hud.Score, hud.Best, hud.Speed), style)
	if hud.Muted {
		x = r.text(x+2, 0, "[muted]", style)
	}
	if hud.Paused {
		r.text(x+2, 0, "[paused]", style.Bold(true))
	}
}

// Pause draws the pause banner over the arena
func (r *Renderer) Pause() {
	_, h := r.screen.Size()
	r.centered(h/2-1, " PAUSED ", r.base.Foreground(r.palette.SelectFg).Background(r.palette.SelectBg).Bold(true))
	r.centered(h/2+1, "p: resume   q: quit to menu", r.fg(r.palette.Dim))
}

// NameEntry draws the name prompt
func (r *Renderer) NameEntry(name string) {
	_, h := r.screen.Size()
	y := h/2 - 2

	r.centered(y, "Enter your name", r.fg(r.palette.Accent).Bold(true))
	r.centered(y+2, name+string(GlyphCursor), r.fg(r.palette.Text).Underline(true))
	r.centered(y+4, fmt.Sprintf("%d/%d   enter: play   esc: menu", len([]rune(name)), constant.MaxNameLength), r.fg(r.palette.Dim))
}

// GameOver draws the episode summary
func (r *Renderer) GameOver(name string, score int, highScore bool) {
	_, h := r.screen.Size()
	y := h/2 - 3

	r.centered(y, "GAME OVER", r.fg(r.palette.Error).Bold(true))
	r.centered(y+2, fmt.Sprintf("%s scored %d", name, score), r.base)
	if highScore {
		r.centered(y+3, "New High Score!", r.fg(r.palette.Accent).Bold(true))
	}
	r.centered(y+5, "enter: save and return   esc: discard", r.fg(r.palette.Dim))
}

// Leaderboard draws up to one page of entries starting at offset, marking highlight
func (r *Renderer) Leaderboard(entries []leaderboard.Entry, offset, highlight int) {
	w, h := r.screen.Size()

	r.centered(0, "LEADERBOARD", r.fg(r.palette.Accent).Bold(true))

	rows := min(constant.LeaderboardPageSize, max(h-4, 1))
	if len(entries) == 0 {
		r.centered(2, "No scores yet", r.fg(r.palette.Dim))
	}

	nameWidth := max(min(w-20, constant.MaxNameLength), 8)
	for i := 0; i < rows && offset+i < len(entries); i++ {
		idx := offset + i
		e := entries[idx]
		style := r.base
		if idx == highlight {
			style = r.fg(r.palette.Accent)
		}
		line := fmt.Sprintf("%4d. %-*s %8d", idx+1, nameWidth, truncate(e.Name, nameWidth), e.Score)
		r.text(2, 2+i, line, style)
	}

	footer := fmt.Sprintf("%d-%d of %d   ↑↓ pgup/pgdn: scroll   c: clear   esc: menu",
		min(offset+1, len(entries)), min(offset+rows, len(entries)), len(entries))
	r.text(2, h-2, footer, r.fg(r.palette.Dim))
}

// Options draws the settings list
func (r *Renderer) Options(items []string, selected int) {
	r.Menu("OPTIONS", items, selected)
}

func truncate(s string, n int) string {
	rs := []rune(s)
	if len(rs) <= n {
		return s
	}
	return string(rs[:n-1]) + "…"
}
