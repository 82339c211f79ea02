package mode

import (
	"time"

	"github.com/lixenwraith/pingpong/constant"
	"github.com/lixenwraith/pingpong/engine"
)

// intentHold latches a direction between key repeats
// Terminals report presses and auto-repeats but never releases
type intentHold struct {
	intent    engine.Intent
	remaining time.Duration
}

// press latches intent for the hold window, replacing any previous direction
func (h *intentHold) press(intent engine.Intent) {
	h.intent = intent
	h.remaining = constant.IntentHoldDuration
}

// current returns the latched intent, or IntentNone once the window lapsed
func (h *intentHold) current() engine.Intent {
	if h.remaining <= 0 {
		return engine.IntentNone
	}
	return h.intent
}

// tick consumes dt of the hold window
func (h *intentHold) tick(dt time.Duration) {
	h.remaining -= dt
	if h.remaining <= 0 {
		h.intent = engine.IntentNone
		h.remaining = 0
	}
}

func (h *intentHold) release() {
	*h = intentHold{}
}
