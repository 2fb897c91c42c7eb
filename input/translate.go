package input

import (
	"github.com/lixenwraith/threat-shooter/event"
	"github.com/lixenwraith/threat-shooter/parameter"
	"github.com/lixenwraith/threat-shooter/vmath"
)

// Mapper converts screen cells to world coordinates
type Mapper interface {
	ToWorld(x, y int) vmath.Vec
}

// Translate converts a game-bound intent into the event pushed onto the game queue
// Returns false for intents the application handles itself (resize, mute, debug)
func Translate(in *Intent, m Mapper) (event.GameEvent, bool) {
	if in == nil {
		return event.GameEvent{}, false
	}

	point := func() any {
		if !in.HasPos {
			return nil
		}
		return &event.PointPayload{Point: m.ToWorld(in.X, in.Y)}
	}

	switch in.Type {
	case IntentMove:
		return event.GameEvent{Type: event.EventMoveKey, Payload: &event.MoveKeyPayload{Dir: in.Dir, Down: true}}, true
	case IntentAim:
		if !in.HasPos {
			return event.GameEvent{}, false
		}
		return event.GameEvent{Type: event.EventAim, Payload: point()}, true
	case IntentFire:
		return event.GameEvent{Type: event.EventFire, Payload: point()}, true
	case IntentThrow:
		return event.GameEvent{Type: event.EventThrow, Payload: point()}, true
	case IntentPause:
		return event.GameEvent{Type: event.EventPauseToggle}, true
	case IntentNewGame:
		return event.GameEvent{Type: event.EventNewGameRequest}, true
	case IntentDifficultyUp:
		return event.GameEvent{Type: event.EventDifficultyChange, Payload: &event.DifficultyPayload{Delta: parameter.DifficultyStep}}, true
	case IntentDifficultyDown:
		return event.GameEvent{Type: event.EventDifficultyChange, Payload: &event.DifficultyPayload{Delta: -parameter.DifficultyStep}}, true
	case IntentTextChar:
		return event.GameEvent{Type: event.EventTextInput, Payload: in.Char}, true
	case IntentTextBackspace:
		return event.GameEvent{Type: event.EventTextErase}, true
	case IntentTextConfirm:
		return event.GameEvent{Type: event.EventTextSubmit}, true
	case IntentQuit:
		return event.GameEvent{Type: event.EventQuit}, true
	}
	return event.GameEvent{}, false
}
