package render

import (
	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/pingpong/config"
)

// Palette is one theme's colors
type Palette struct {
	Background tcell.Color
	Border     tcell.Color
	Ball       tcell.Color
	Paddle     tcell.Color
	Text       tcell.Color
	Dim        tcell.Color
	Accent     tcell.Color
	Error      tcell.Color
	HUDFg      tcell.Color
	HUDBg      tcell.Color
	SelectFg   tcell.Color
	SelectBg   tcell.Color
}

var darkPalette = Palette{
	Background: tcell.NewRGBColor(26, 27, 38),    // Tokyo Night background
	Border:     tcell.NewRGBColor(86, 95, 137),   // Muted blue-gray
	Ball:       tcell.NewRGBColor(255, 255, 255), // White
	Paddle:     tcell.NewRGBColor(255, 165, 0),   // Orange
	Text:       tcell.NewRGBColor(192, 202, 245), // Pale blue
	Dim:        tcell.NewRGBColor(120, 124, 153), // Gray
	Accent:     tcell.NewRGBColor(255, 255, 0),   // Bright yellow
	Error:      tcell.NewRGBColor(255, 80, 80),   // Red
	HUDFg:      tcell.NewRGBColor(0, 0, 0),
	HUDBg:      tcell.NewRGBColor(135, 206, 250), // Light sky blue
	SelectFg:   tcell.NewRGBColor(0, 0, 0),
	SelectBg:   tcell.NewRGBColor(255, 165, 0),
}

var lightPalette = Palette{
	Background: tcell.NewRGBColor(240, 240, 235), // Paper
	Border:     tcell.NewRGBColor(150, 150, 150), // Gray
	Ball:       tcell.NewRGBColor(20, 20, 20),    // Near black
	Paddle:     tcell.NewRGBColor(30, 90, 200),   // Blue
	Text:       tcell.NewRGBColor(40, 40, 40),
	Dim:        tcell.NewRGBColor(130, 130, 130),
	Accent:     tcell.NewRGBColor(200, 60, 0), // Burnt orange
	Error:      tcell.NewRGBColor(200, 0, 0),
	HUDFg:      tcell.NewRGBColor(255, 255, 255),
	HUDBg:      tcell.NewRGBColor(30, 90, 200),
	SelectFg:   tcell.NewRGBColor(255, 255, 255),
	SelectBg:   tcell.NewRGBColor(30, 90, 200),
}

// PaletteFor returns the palette for theme; unknown themes fall back to dark
func PaletteFor(theme config.Theme) Palette {
	if theme == config.ThemeLight {
		return lightPalette
	}
	return darkPalette
}
