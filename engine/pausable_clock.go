package engine

import (
	"sync"
	"time"
)

// PausableClock measures session time with pause duration excluded
type PausableClock struct {
	mu sync.RWMutex

	provider TimeProvider

	startTime       time.Time     // Session start (real time)
	paused          bool          // Current pause state
	pauseStartTime  time.Time     // When current pause started (real time)
	totalPausedTime time.Duration // Cumulative pause duration
}

// NewPausableClock creates a clock reading from provider, nil selects the monotonic clock
func NewPausableClock(provider TimeProvider) *PausableClock {
	if provider == nil {
		provider = NewMonotonicTimeProvider()
	}
	return &PausableClock{
		provider:  provider,
		startTime: provider.Now(),
	}
}

// Reset starts a new running session at the current time
func (pc *PausableClock) Reset() {
	pc.mu.Lock()
	defer pc.mu.Unlock()

	pc.startTime = pc.provider.Now()
	pc.paused = false
	pc.pauseStartTime = time.Time{}
	pc.totalPausedTime = 0
}

// Elapsed returns session time minus all pauses; frozen while paused
func (pc *PausableClock) Elapsed() time.Duration {
	pc.mu.RLock()
	defer pc.mu.RUnlock()

	end := pc.provider.Now()
	if pc.paused {
		end = pc.pauseStartTime
	}
	return end.Sub(pc.startTime) - pc.totalPausedTime
}

// Pause stops session time advancement, no-op when already paused
func (pc *PausableClock) Pause() {
	pc.mu.Lock()
	defer pc.mu.Unlock()

	if pc.paused {
		return
	}
	pc.paused = true
	pc.pauseStartTime = pc.provider.Now()
}

// Resume continues session time advancement, no-op when running
func (pc *PausableClock) Resume() {
	pc.mu.Lock()
	defer pc.mu.Unlock()

	if !pc.paused {
		return
	}
	pc.totalPausedTime += pc.provider.Now().Sub(pc.pauseStartTime)
	pc.pauseStartTime = time.Time{}
	pc.paused = false
}

// IsPaused returns current pause state
func (pc *PausableClock) IsPaused() bool {
	pc.mu.RLock()
	defer pc.mu.RUnlock()
	return pc.paused
}

// TotalPauseDuration returns cumulative pause time including the current pause
func (pc *PausableClock) TotalPauseDuration() time.Duration {
	pc.mu.RLock()
	defer pc.mu.RUnlock()

	total := pc.totalPausedTime
	if pc.paused {
		total += pc.provider.Now().Sub(pc.pauseStartTime)
	}
	return total
}
