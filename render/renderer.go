// Package render draws the game screens onto a tcell screen.
//
// Renderers only draw; the caller decides what to show and calls Show once per frame.
package render

import (
	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"

	"github.com/lixenwraith/pingpong/config"
)

// Renderer owns the screen styles for the active theme
type Renderer struct {
	screen  tcell.Screen
	palette Palette
	base    tcell.Style
}

// NewRenderer creates a renderer for screen using theme
func NewRenderer(screen tcell.Screen, theme config.Theme) *Renderer {
	r := &Renderer{screen: screen}
	r.SetTheme(theme)
	return r
}

// SetTheme switches palette; takes effect on the next frame
func (r *Renderer) SetTheme(theme config.Theme) {
	r.palette = PaletteFor(theme)
	r.base = tcell.StyleDefault.Background(r.palette.Background).Foreground(r.palette.Text)
	r.screen.SetStyle(r.base)
}

// Palette returns the active palette
func (r *Renderer) Palette() Palette {
	return r.palette
}

// Begin clears the frame to the background and returns the screen size
func (r *Renderer) Begin() (w, h int) {
	r.screen.Clear()
	w, h = r.screen.Size()
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			r.screen.SetContent(x, y, ' ', nil, r.base)
		}
	}
	return w, h
}

// Show flushes the frame to the terminal
func (r *Renderer) Show() {
	r.screen.Show()
}

func (r *Renderer) fg(c tcell.Color) tcell.Style {
	return r.base.Foreground(c)
}

// text draws s from (x, y), clipped to the screen width, and returns the next column
func (r *Renderer) text(x, y int, s string, style tcell.Style) int {
	w, h := r.screen.Size()
	if y < 0 || y >= h {
		return x
	}
	for _, ch := range s {
		if x >= w {
			break
		}
		if x >= 0 {
			r.screen.SetContent(x, y, ch, nil, style)
		}
		x += max(runewidth.RuneWidth(ch), 1)
	}
	return x
}

// centered draws s horizontally centered on row y
func (r *Renderer) centered(y int, s string, style tcell.Style) {
	w, _ := r.screen.Size()
	r.text((w-runewidth.StringWidth(s))/2, y, s, style)
}

// fillRow paints row y with style
func (r *Renderer) fillRow(y int, style tcell.Style) {
	w, _ := r.screen.Size()
	for x := 0; x < w; x++ {
		r.screen.SetContent(x, y, ' ', nil, style)
	}
}

// Status draws a one-line message on the bottom row
func (r *Renderer) Status(msg string, isError bool) {
	_, h := r.screen.Size()
	style := r.fg(r.palette.Dim)
	if isError {
		style = r.fg(r.palette.Error)
	}
	r.fillRow(h-1, r.base)
	r.text(1, h-1, msg, style)
}

// TooSmall replaces the frame with a resize hint
func (r *Renderer) TooSmall(w, h int) {
	r.text(0, 0, "Terminal too small", r.fg(r.palette.Error))
	r.text(0, 1, "Resize to at least 40x12", r.fg(r.palette.Dim))
}
