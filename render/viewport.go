package render

import (
	"github.com/lixenwraith/pingpong/constant"
	"github.com/lixenwraith/pingpong/engine"
	"github.com/lixenwraith/pingpong/vmath"
)

// Viewport maps arena world units onto the terminal cells inside the border
type Viewport struct {
	X, Y int // Top-left interior cell
	Cols int
	Rows int

	scaleX float64 // cells per world unit
	scaleY float64
}

// NewViewport fits arena into a screen of w×h cells, leaving the HUD row on top,
// a status row at the bottom and a one-cell border. ok is false when the screen is too small.
func NewViewport(w, h int, arena engine.Arena) (Viewport, bool) {
	if w < constant.MinScreenWidth || h < constant.MinScreenHeight {
		return Viewport{}, false
	}

	v := Viewport{
		X:    1,
		Y:    constant.HUDRows + 1,
		Cols: w - 2,
		Rows: h - constant.HUDRows - 3, // Two border rows and the status row
	}
	v.scaleX = float64(v.Cols) / arena.Width
	v.scaleY = float64(v.Rows) / arena.Height
	return v, true
}

// Cell returns the screen cell containing world point p, clamped to the interior
func (v Viewport) Cell(p vmath.Vec2) (x, y int) {
	cx := vmath.Clamp(int(p.X*v.scaleX), 0, v.Cols-1)
	cy := vmath.Clamp(int(p.Y*v.scaleY), 0, v.Rows-1)
	return v.X + cx, v.Y + cy
}

// Span returns the interior rows covered by world range [top, bottom)
func (v Viewport) Span(top, bottom float64) (first, last int) {
	first = vmath.Clamp(int(top*v.scaleY), 0, v.Rows-1)
	last = vmath.Clamp(int((bottom-1e-9)*v.scaleY), first, v.Rows-1)
	return v.Y + first, v.Y + last
}
