package audio

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/lixenwraith/threat-shooter/system"
)

var _ system.SoundPlayer = (*SoundManager)(nil)

// TestSoundManagerGracefulDegradation verifies effects are dropped without a speaker
func TestSoundManagerGracefulDegradation(t *testing.T) {
	sm := NewSoundManager()

	assert.NotPanics(t, func() {
		sm.PlayShot()
		sm.PlayExplosion()
		sm.PlayHurt()
		sm.PlayDeath()
		sm.PlayPickup()
		sm.Cleanup()
	})
	assert.Equal(t, 0, sm.Played())
	assert.False(t, sm.IsEnabled())
}

// TestSoundManagerInitialization verifies the speaker lifecycle when a device exists
func TestSoundManagerInitialization(t *testing.T) {
	sm := NewSoundManager()

	if err := sm.Initialize(); err != nil {
		t.Skipf("no audio device: %v", err)
	}
	defer sm.Cleanup()

	assert.NoError(t, sm.Initialize(), "second Initialize is a no-op")
	assert.True(t, sm.IsEnabled())

	sm.PlayShot()
	assert.Equal(t, 1, sm.Played())

	assert.False(t, sm.ToggleMute())
	sm.PlayShot()
	assert.Equal(t, 1, sm.Played(), "muted effects are dropped")
	assert.True(t, sm.ToggleMute())
}

func TestSoundManagerSetVolume(t *testing.T) {
	sm := NewSoundManager()
	sm.SetVolume(2)
	assert.Equal(t, 1.0, sm.master)
	sm.SetVolume(-1)
	assert.Equal(t, 0.0, sm.master)
}
