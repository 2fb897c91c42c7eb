package audio

import (
	"testing"
	"time"

	"github.com/gopxl/beep"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lixenwraith/threat-shooter/parameter"
)

const testRate = beep.SampleRate(48000)

// drain streams s to completion and returns the sample count and peak amplitude
func drain(t *testing.T, s beep.Streamer) (int, float64) {
	t.Helper()
	buf := make([][2]float64, 512)
	total, peak := 0, 0.0
	for range 10000 {
		n, ok := s.Stream(buf)
		for i := 0; i < n; i++ {
			peak = max(peak, buf[i][0], -buf[i][0])
		}
		total += n
		if !ok {
			require.NoError(t, s.Err())
			return total, peak
		}
	}
	t.Fatal("stream never drained")
	return 0, 0
}

func TestOscillatorSine(t *testing.T) {
	osc := NewOscillator(440, 100*time.Millisecond, WaveSine, testRate)

	n, peak := drain(t, osc)
	assert.Equal(t, testRate.N(100*time.Millisecond), n)
	assert.LessOrEqual(t, peak, 1.0)
	assert.Greater(t, peak, 0.9)
}

func TestOscillatorSquare(t *testing.T) {
	osc := NewOscillator(220, 50*time.Millisecond, WaveSquare, testRate)

	samples := make([][2]float64, 50)
	n, ok := osc.Stream(samples)
	require.True(t, ok)
	require.Equal(t, 50, n)
	for i := 0; i < n; i++ {
		v := samples[i][0]
		assert.True(t, v == 1.0 || v == -1.0, "sample %d = %f", i, v)
	}
}

func TestOscillatorDrainedStream(t *testing.T) {
	osc := NewOscillator(440, time.Millisecond, WaveSine, testRate)
	drain(t, osc)

	n, ok := osc.Stream(make([][2]float64, 8))
	assert.Equal(t, 0, n)
	assert.False(t, ok)
}

func TestEnvelopeShapesEdges(t *testing.T) {
	d := 10 * time.Millisecond
	env := NewEnvelope(NewOscillator(0, d, WaveSquare, testRate), d, 2*time.Millisecond, 2*time.Millisecond, testRate)

	samples := make([][2]float64, testRate.N(d))
	n, _ := env.Stream(samples)
	require.Equal(t, len(samples), n)

	assert.Equal(t, 0.0, samples[0][0], "attack starts silent")
	assert.Equal(t, 1.0, samples[n/2][0], "sustain at full level")
	assert.Less(t, samples[n-1][0], 0.02, "release ends near silence")
}

func TestSoundEffectsHaveConfiguredLength(t *testing.T) {
	tests := []struct {
		name   string
		build  func(beep.SampleRate, float64) beep.Streamer
		length time.Duration
	}{
		{"shot", CreateShotSound, parameter.ShotSoundDuration},
		{"explosion", CreateExplosionSound, parameter.ExplosionSoundDuration},
		{"hurt", CreateHurtSound, parameter.HurtSoundDuration},
		{"death", CreateDeathSound, parameter.DeathSoundDuration},
		{"pickup", CreatePickupSound, 2 * (parameter.PickupSoundDuration / 2)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			n, peak := drain(t, tt.build(testRate, 1))
			assert.InDelta(t, testRate.N(tt.length), n, 1)
			assert.Greater(t, peak, 0.0)
		})
	}
}

func TestSilentVolume(t *testing.T) {
	_, peak := drain(t, CreateShotSound(testRate, 0))
	assert.Equal(t, 0.0, peak)
}
