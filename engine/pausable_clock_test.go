package engine

import (
	"testing"
	"time"
)

func TestPausableClockExcludesPauses(t *testing.T) {
	mock := NewManualClock(time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC))
	pc := NewPausableClock(mock)

	mock.Advance(3 * time.Second)
	pc.Pause()
	mock.Advance(10 * time.Second)

	if got := pc.Elapsed(); got != 3*time.Second {
		t.Fatalf("elapsed while paused = %v, want 3s", got)
	}
	if got := pc.TotalPauseDuration(); got != 10*time.Second {
		t.Fatalf("pause duration = %v, want 10s", got)
	}

	pc.Resume()
	mock.Advance(2 * time.Second)

	if got := pc.Elapsed(); got != 5*time.Second {
		t.Fatalf("elapsed after resume = %v, want 5s", got)
	}
}

func TestPausableClockIdempotentTransitions(t *testing.T) {
	mock := NewManualClock(time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC))
	pc := NewPausableClock(mock)

	pc.Resume() // not paused, no-op
	pc.Pause()
	mock.Advance(time.Second)
	pc.Pause() // must not restart the pause window
	mock.Advance(time.Second)
	pc.Resume()

	if got := pc.TotalPauseDuration(); got != 2*time.Second {
		t.Fatalf("pause duration = %v, want 2s", got)
	}
	if pc.IsPaused() {
		t.Fatal("clock still paused after Resume")
	}
}

func TestPausableClockReset(t *testing.T) {
	mock := NewManualClock(time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC))
	pc := NewPausableClock(mock)

	mock.Advance(time.Minute)
	pc.Pause()
	pc.Reset()
	mock.Advance(time.Second)

	if got := pc.Elapsed(); got != time.Second {
		t.Fatalf("elapsed after reset = %v, want 1s", got)
	}
}
