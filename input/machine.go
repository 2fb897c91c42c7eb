package input

import (
	"sync/atomic"

	"github.com/gdamore/tcell/v2"
)

// Machine parses tcell events into semantic Intents
// Mode is switched by the UI goroutine while the poll goroutine reads it
type Machine struct {
	mode     atomic.Uint32
	keyTable *KeyTable

	buttons tcell.ButtonMask // Previous mouse button state for press edges
	aimX    int
	aimY    int
	hasAim  bool
}

// NewMachine creates a new input machine in play mode
func NewMachine() *Machine {
	return &Machine{
		keyTable: DefaultKeyTable(),
	}
}

// SetMode switches between play and text entry
func (m *Machine) SetMode(mode InputMode) {
	m.mode.Store(uint32(mode))
}

// Mode returns the current input mode
func (m *Machine) Mode() InputMode {
	return InputMode(m.mode.Load())
}

// Process parses a terminal event and returns an Intent
// Returns nil if the event maps to nothing
func (m *Machine) Process(ev tcell.Event) *Intent {
	switch ev := ev.(type) {
	case *tcell.EventResize:
		return &Intent{Type: IntentResize}
	case *tcell.EventKey:
		return m.processKey(ev)
	case *tcell.EventMouse:
		return m.processMouse(ev)
	}
	return nil
}

func (m *Machine) processKey(ev *tcell.EventKey) *Intent {
	if entry, ok := m.keyTable.SpecialKeys[ev.Key()]; ok {
		return &Intent{Type: entry.Intent, Dir: entry.Dir}
	}

	if m.Mode() == ModeText {
		if it, ok := m.keyTable.TextKeys[ev.Key()]; ok {
			return &Intent{Type: it}
		}
		if ev.Key() == tcell.KeyRune {
			return &Intent{Type: IntentTextChar, Char: ev.Rune()}
		}
		return nil
	}

	var entry KeyEntry
	var ok bool
	if ev.Key() == tcell.KeyRune {
		entry, ok = m.keyTable.PlayRunes[ev.Rune()]
	} else {
		entry, ok = m.keyTable.PlayKeys[ev.Key()]
	}
	if !ok {
		return nil
	}

	in := &Intent{Type: entry.Intent, Dir: entry.Dir}
	if (in.Type == IntentFire || in.Type == IntentThrow) && m.hasAim {
		in.X, in.Y, in.HasPos = m.aimX, m.aimY, true
	}
	return in
}

func (m *Machine) processMouse(ev *tcell.EventMouse) *Intent {
	x, y := ev.Position()
	m.aimX, m.aimY, m.hasAim = x, y, true

	buttons := ev.Buttons()
	pressed := buttons &^ m.buttons
	m.buttons = buttons

	if m.Mode() == ModeText {
		return nil
	}

	in := &Intent{Type: IntentAim, X: x, Y: y, HasPos: true}
	switch {
	case pressed&tcell.Button1 != 0:
		in.Type = IntentFire
	case pressed&(tcell.Button2|tcell.Button3) != 0:
		in.Type = IntentThrow
	}
	return in
}
