package engine

// Intent is the player's vertical input for one frame
type Intent int8

const (
	IntentNone Intent = 0
	IntentUp   Intent = -1
	IntentDown Intent = 1
)

// Valid reports whether i is one of the defined intents
func (i Intent) Valid() bool {
	return i >= IntentUp && i <= IntentDown
}

func (i Intent) String() string {
	switch i {
	case IntentUp:
		return "up"
	case IntentDown:
		return "down"
	case IntentNone:
		return "none"
	}
	return "invalid"
}
