package constant

// Presentation layout (terminal cells)
const (
	// MinScreenWidth/Height below which the arena is not drawn
	MinScreenWidth  = 40
	MinScreenHeight = 12

	// HUDRows reserved at the top for score and status
	HUDRows = 1

	// StatusMessageFrames is how long a transient status line stays visible
	StatusMessageFrames = 360
)
