package input

import (
	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/threat-shooter/event"
)

// KeyEntry describes what a key does in play mode
type KeyEntry struct {
	Intent IntentType
	Dir    event.Direction
}

// KeyTable maps keys to behaviors for all modes
type KeyTable struct {
	// Special keys (Ctrl+*, arrows, function keys), active in every mode
	SpecialKeys map[tcell.Key]KeyEntry

	// Play mode rune bindings
	PlayRunes map[rune]KeyEntry

	// Play mode only special keys
	PlayKeys map[tcell.Key]KeyEntry

	// Text mode editing keys
	TextKeys map[tcell.Key]IntentType
}

// DefaultKeyTable returns the default key bindings
func DefaultKeyTable() *KeyTable {
	move := func(d event.Direction) KeyEntry { return KeyEntry{Intent: IntentMove, Dir: d} }
	act := func(i IntentType) KeyEntry { return KeyEntry{Intent: i} }

	return &KeyTable{
		SpecialKeys: map[tcell.Key]KeyEntry{
			tcell.KeyCtrlC: act(IntentQuit),
			tcell.KeyF1:    act(IntentToggleDebug),
		},
		PlayKeys: map[tcell.Key]KeyEntry{
			tcell.KeyUp:     move(event.DirUp),
			tcell.KeyDown:   move(event.DirDown),
			tcell.KeyLeft:   move(event.DirLeft),
			tcell.KeyRight:  move(event.DirRight),
			tcell.KeyEscape: act(IntentPause),
			tcell.KeyEnter:  act(IntentFire),
		},
		PlayRunes: map[rune]KeyEntry{
			'w': move(event.DirUp),
			'W': move(event.DirUp),
			's': move(event.DirDown),
			'S': move(event.DirDown),
			'a': move(event.DirLeft),
			'A': move(event.DirLeft),
			'd': move(event.DirRight),
			'D': move(event.DirRight),
			' ': act(IntentFire),
			'g': act(IntentThrow),
			'G': act(IntentThrow),
			'p': act(IntentPause),
			'P': act(IntentPause),
			'n': act(IntentNewGame),
			'N': act(IntentNewGame),
			'+': act(IntentDifficultyUp),
			'=': act(IntentDifficultyUp),
			'-': act(IntentDifficultyDown),
			'm': act(IntentToggleMute),
			'M': act(IntentToggleMute),
			'q': act(IntentQuit),
			'Q': act(IntentQuit),
		},
		TextKeys: map[tcell.Key]IntentType{
			tcell.KeyEnter:      IntentTextConfirm,
			tcell.KeyBackspace:  IntentTextBackspace,
			tcell.KeyBackspace2: IntentTextBackspace,
		},
	}
}
