package input

import (
	"maps"

	"github.com/gdamore/tcell/v2"
)

// KeyTable maps terminal keys to intents
type KeyTable struct {
	// Special keys (Ctrl+*, arrows, Esc)
	Keys map[tcell.Key]Intent

	// Printable runes
	Runes map[rune]Intent
}

// DefaultKeyTable returns the default bindings
func DefaultKeyTable() *KeyTable {
	return &KeyTable{
		Keys: map[tcell.Key]Intent{
			tcell.KeyEscape: IntentQuit,
			tcell.KeyCtrlC:  IntentQuit,
			tcell.KeyCtrlS:  IntentSaveMap,
			tcell.KeyUp:     IntentForward,
			tcell.KeyDown:   IntentBack,
			tcell.KeyLeft:   IntentLeft,
			tcell.KeyRight:  IntentRight,
		},
		Runes: map[rune]Intent{
			'w': IntentForward,
			's': IntentBack,
			'a': IntentLeft,
			'd': IntentRight,
			' ': IntentUp,
			'c': IntentDown,
			'g': IntentGrenade,
			'r': IntentRocket,
			'[': IntentSliceUp,
			']': IntentSliceDown,
			'f': IntentFollow,
			'q': IntentQuit,
		},
	}
}

// Resolve decodes a key event; unbound keys yield IntentNone
func (kt *KeyTable) Resolve(ev *tcell.EventKey) Intent {
	if ev.Key() == tcell.KeyRune {
		return kt.Runes[ev.Rune()]
	}
	return kt.Keys[ev.Key()]
}

// Clone returns a deep copy
func (kt *KeyTable) Clone() *KeyTable {
	return &KeyTable{
		Keys:  maps.Clone(kt.Keys),
		Runes: maps.Clone(kt.Runes),
	}
}
