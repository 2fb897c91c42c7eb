package parameter

import "time"

// Audio
const (
	AudioSampleRate = 48000
	AudioBuffer     = 100 * time.Millisecond

	ShotSoundDuration      = 40 * time.Millisecond
	ExplosionSoundDuration = 450 * time.Millisecond
	HurtSoundDuration      = 60 * time.Millisecond
	DeathSoundDuration     = 900 * time.Millisecond
	PickupSoundDuration    = 90 * time.Millisecond

	// MasterVolume is the linear gain applied to every effect
	MasterVolume = 0.8
)
