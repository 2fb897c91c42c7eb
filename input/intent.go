package input

import (
	"github.com/lixenwraith/threat-shooter/event"
)

// IntentType discriminates semantic actions
type IntentType uint8

const (
	IntentNone IntentType = iota

	// System-level intents
	IntentQuit        // q, Ctrl+C
	IntentResize      // Terminal resize event
	IntentToggleMute  // m
	IntentToggleDebug // F1

	// Play mode
	IntentMove           // WASD, arrows
	IntentAim            // Mouse motion
	IntentFire           // Left click, space
	IntentThrow          // Right or middle click, g
	IntentPause          // p, Esc
	IntentNewGame        // n
	IntentDifficultyUp   // +, =
	IntentDifficultyDown // -

	// Text entry mode (name prompt)
	IntentTextChar      // Printable character
	IntentTextBackspace // Backspace
	IntentTextConfirm   // Enter
)

// Intent is a parsed input action
type Intent struct {
	Type IntentType
	Dir  event.Direction // IntentMove
	Char rune            // IntentTextChar

	// Screen cell for pointer intents, valid when HasPos
	X, Y   int
	HasPos bool
}
