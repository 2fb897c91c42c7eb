package audio

import (
	"math"
	"math/rand"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"

	"github.com/lixenwraith/threat-shooter/parameter"
)

// WaveType defines oscillator wave shapes
type WaveType int

const (
	WaveSine WaveType = iota
	WaveSquare
	WaveSaw
	WaveNoise
)

// oscillator generates a fixed-length wave, optionally sweeping frequency linearly
type oscillator struct {
	freq     float64
	sweep    float64 // Frequency change over the whole duration
	phase    float64
	duration int
	position int
	wave     WaveType
	rate     beep.SampleRate
	rng      *rand.Rand
}

// NewOscillator creates a constant-frequency oscillator
func NewOscillator(freq float64, duration time.Duration, wave WaveType, rate beep.SampleRate) beep.Streamer {
	return NewSweep(freq, freq, duration, wave, rate)
}

// NewSweep creates an oscillator gliding from one frequency to another
func NewSweep(from, to float64, duration time.Duration, wave WaveType, rate beep.SampleRate) beep.Streamer {
	return &oscillator{
		freq:     from,
		sweep:    to - from,
		duration: rate.N(duration),
		wave:     wave,
		rate:     rate,
		rng:      rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

func (o *oscillator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if o.position >= o.duration {
			return i, i > 0
		}

		var val float64
		switch o.wave {
		case WaveSine:
			val = math.Sin(2 * math.Pi * o.phase)
		case WaveSquare:
			if o.phase < 0.5 {
				val = 1.0
			} else {
				val = -1.0
			}
		case WaveSaw:
			val = 2.0 * (o.phase - 0.5)
		case WaveNoise:
			val = o.rng.Float64()*2 - 1
		}

		samples[i][0] = val
		samples[i][1] = val

		freq := o.freq + o.sweep*float64(o.position)/float64(o.duration)
		o.phase += freq / float64(o.rate)
		o.phase -= math.Floor(o.phase)
		o.position++
	}
	return len(samples), true
}

func (o *oscillator) Err() error { return nil }

// envelope applies linear attack and release to a stream
type envelope struct {
	streamer       beep.Streamer
	position       int
	attackSamples  int
	releaseSamples int
	totalSamples   int
}

// NewEnvelope wraps s with attack/release shaping over duration
func NewEnvelope(s beep.Streamer, duration, attack, release time.Duration, rate beep.SampleRate) beep.Streamer {
	return &envelope{
		streamer:       s,
		attackSamples:  rate.N(attack),
		releaseSamples: rate.N(release),
		totalSamples:   rate.N(duration),
	}
}

func (e *envelope) Stream(samples [][2]float64) (n int, ok bool) {
	n, ok = e.streamer.Stream(samples)

	for i := 0; i < n; i++ {
		if e.position >= e.totalSamples {
			return i, i > 0
		}

		vol := 1.0
		if e.position < e.attackSamples {
			vol = float64(e.position) / float64(e.attackSamples)
		}
		if remaining := e.totalSamples - e.position; remaining < e.releaseSamples {
			vol = min(vol, float64(remaining)/float64(e.releaseSamples))
		}

		samples[i][0] *= vol
		samples[i][1] *= vol
		e.position++
	}

	return n, ok
}

func (e *envelope) Err() error { return e.streamer.Err() }

// newVolume scales a stream linearly, vol <= 0 is silent
func newVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Volume: 0, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol), Silent: false}
}

// Sound effect generators

// CreateShotSound generates a short descending zap
func CreateShotSound(rate beep.SampleRate, master float64) beep.Streamer {
	d := parameter.ShotSoundDuration
	osc := NewSweep(1400, 300, d, WaveSquare, rate)
	return newVolume(NewEnvelope(osc, d, 2*time.Millisecond, d/2, rate), 0.35*master)
}

// CreateExplosionSound generates a noise burst over a low rumble
func CreateExplosionSound(rate beep.SampleRate, master float64) beep.Streamer {
	d := parameter.ExplosionSoundDuration
	noise := NewEnvelope(NewOscillator(0, d, WaveNoise, rate), d, 5*time.Millisecond, d*3/4, rate)
	rumble := NewEnvelope(NewSweep(90, 40, d, WaveSine, rate), d, 5*time.Millisecond, d/2, rate)
	return newVolume(beep.Mix(newVolume(noise, 0.6), newVolume(rumble, 0.5)), master)
}

// CreateHurtSound generates a low saw buzz
func CreateHurtSound(rate beep.SampleRate, master float64) beep.Streamer {
	d := parameter.HurtSoundDuration
	osc := NewOscillator(110, d, WaveSaw, rate)
	return newVolume(NewEnvelope(osc, d, 3*time.Millisecond, d/3, rate), 0.4*master)
}

// CreateDeathSound generates a long falling tone
func CreateDeathSound(rate beep.SampleRate, master float64) beep.Streamer {
	d := parameter.DeathSoundDuration
	osc := NewSweep(440, 55, d, WaveSaw, rate)
	return newVolume(NewEnvelope(osc, d, 10*time.Millisecond, d/2, rate), 0.5*master)
}

// CreatePickupSound generates a two-note rising chime
func CreatePickupSound(rate beep.SampleRate, master float64) beep.Streamer {
	d := parameter.PickupSoundDuration / 2
	n1 := NewEnvelope(NewOscillator(987.77, d, WaveSine, rate), d, 2*time.Millisecond, d/2, rate)
	n2 := NewEnvelope(NewOscillator(1318.51, d, WaveSine, rate), d, 2*time.Millisecond, d/2, rate)
	return newVolume(beep.Seq(n1, n2), 0.5*master)
}
