package audio

import (
	"sync"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"

	"github.com/lixenwraith/threat-shooter/parameter"
)

const (
	sampleRate = beep.SampleRate(parameter.AudioSampleRate)
)

// SoundManager plays one-shot effects through a shared beep mixer
// Every Play method is a no-op until Initialize succeeds, so the game runs silent without a device
type SoundManager struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	master      float64
	muted       bool
	initialized bool
	played      int
}

// NewSoundManager creates an uninitialized sound manager
func NewSoundManager() *SoundManager {
	return &SoundManager{
		mixer:  &beep.Mixer{},
		master: parameter.MasterVolume,
	}
}

// Initialize opens the speaker and starts the mixer
func (sm *SoundManager) Initialize() error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if sm.initialized {
		return nil
	}

	if err := speaker.Init(sampleRate, sampleRate.N(parameter.AudioBuffer)); err != nil {
		return err
	}

	speaker.Play(sm.mixer)
	sm.initialized = true
	return nil
}

// Cleanup stops all sounds
func (sm *SoundManager) Cleanup() {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}

	speaker.Lock()
	sm.mixer.Clear()
	speaker.Unlock()
	speaker.Clear()

	sm.initialized = false
}

// SetVolume sets the master gain, clamped to [0,1]
func (sm *SoundManager) SetVolume(vol float64) {
	sm.mu.Lock()
	sm.master = max(0, min(1, vol))
	sm.mu.Unlock()
}

// ToggleMute flips mute, returns true if sound is now audible
func (sm *SoundManager) ToggleMute() bool {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	sm.muted = !sm.muted
	return !sm.muted
}

// IsEnabled reports whether effects currently reach the speaker
func (sm *SoundManager) IsEnabled() bool {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	return sm.initialized && !sm.muted
}

// Played returns the number of effects handed to the mixer
func (sm *SoundManager) Played() int {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	return sm.played
}

func (sm *SoundManager) PlayShot()      { sm.play(CreateShotSound) }
func (sm *SoundManager) PlayExplosion() { sm.play(CreateExplosionSound) }
func (sm *SoundManager) PlayHurt()      { sm.play(CreateHurtSound) }
func (sm *SoundManager) PlayDeath()     { sm.play(CreateDeathSound) }
func (sm *SoundManager) PlayPickup()    { sm.play(CreatePickupSound) }

func (sm *SoundManager) play(build func(beep.SampleRate, float64) beep.Streamer) {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized || sm.muted {
		return
	}

	s := build(sampleRate, sm.master)
	speaker.Lock()
	sm.mixer.Add(s)
	speaker.Unlock()
	sm.played++
}
