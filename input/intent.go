package input

// Intent is a semantic action decoded from a key
type Intent uint8

const (
	IntentNone Intent = iota

	// System
	IntentQuit

	// Player thrust, one impulse per key event
	IntentForward // w
	IntentBack    // s
	IntentLeft    // a
	IntentRight   // d
	IntentUp      // space
	IntentDown    // c

	// Weapons
	IntentGrenade // g
	IntentRocket  // r

	// View
	IntentSliceUp   // [
	IntentSliceDown // ]
	IntentFollow    // f, re-center the slice on the player

	// Map
	IntentSaveMap // ctrl+s

	intentCount
)

// actionNames is the canonical name for each intent, used by keymap files
var actionNames = map[string]Intent{
	"none":       IntentNone,
	"quit":       IntentQuit,
	"forward":    IntentForward,
	"back":       IntentBack,
	"left":       IntentLeft,
	"right":      IntentRight,
	"up":         IntentUp,
	"down":       IntentDown,
	"grenade":    IntentGrenade,
	"rocket":     IntentRocket,
	"slice_up":   IntentSliceUp,
	"slice_down": IntentSliceDown,
	"follow":     IntentFollow,
	"save_map":   IntentSaveMap,
}

// ActionIntent resolves a canonical action name
func ActionIntent(name string) (Intent, bool) {
	i, ok := actionNames[name]
	return i, ok
}

func (i Intent) String() string {
	for name, v := range actionNames {
		if v == i {
			return name
		}
	}
	return "unknown"
}

// IsMotion reports whether the intent thrusts the player
func (i Intent) IsMotion() bool {
	return i >= IntentForward && i <= IntentDown
}
