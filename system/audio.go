package system

import (
	"github.com/lixenwraith/threat-shooter/event"
)

// SoundPlayer plays the game's sound effects
// Implemented by audio.SoundManager; calls must not block the tick
type SoundPlayer interface {
	PlayShot()
	PlayExplosion()
	PlayHurt()
	PlayDeath()
	PlayPickup()
}

// AudioSystem consumes combat events and plays matching sounds
// Decouples game systems from direct SoundManager access
type AudioSystem struct {
	player SoundPlayer

	enabled bool
}

// NewAudioSystem creates an audio system with the given player
// player may be nil if audio is disabled
func NewAudioSystem(player SoundPlayer) *AudioSystem {
	return &AudioSystem{
		player:  player,
		enabled: true,
	}
}

// EventTypes returns the event types AudioSystem handles
func (s *AudioSystem) EventTypes() []event.EventType {
	return []event.EventType{
		event.EventShotFired,
		event.EventGrenadeExploded,
		event.EventPlayerDamaged,
		event.EventPlayerDied,
		event.EventPickupCollected,
		event.EventGamePaused,
		event.EventGameResumed,
		event.EventGameStarted,
	}
}

// HandleEvent maps events to sounds
func (s *AudioSystem) HandleEvent(ev event.GameEvent) {
	switch ev.Type {
	case event.EventGamePaused:
		s.enabled = false
		return
	case event.EventGameResumed, event.EventGameStarted:
		s.enabled = true
		return
	}

	if !s.enabled || s.player == nil {
		return
	}

	switch ev.Type {
	case event.EventShotFired:
		s.player.PlayShot()
	case event.EventGrenadeExploded:
		s.player.PlayExplosion()
	case event.EventPlayerDamaged:
		s.player.PlayHurt()
	case event.EventPlayerDied:
		s.player.PlayDeath()
	case event.EventPickupCollected:
		s.player.PlayPickup()
	}
}

// Enabled reports whether sounds are played
func (s *AudioSystem) Enabled() bool {
	return s.enabled
}
