package engine

import (
	"sync"
	"sync/atomic"
	"time"

	"github.com/lixenwraith/threat-shooter/core"
)

// Ticker advances the simulation by a fixed step
type Ticker interface {
	Tick(dt time.Duration)
}

// ClockScheduler drives a Ticker on a fixed interval from its own goroutine
// All simulation state is mutated on this goroutine only
type ClockScheduler struct {
	target   Ticker
	onFrame  func()
	provider TimeProvider

	tickInterval     time.Duration
	nextTickDeadline time.Time // Next tick deadline for drift correction

	tickCount atomic.Uint64

	stopChan chan struct{}
	stopOnce sync.Once
	wg       sync.WaitGroup
	running  atomic.Bool
}

// NewClockScheduler creates a scheduler ticking target every tickInterval
// onFrame, when set, runs after every tick (rendering)
func NewClockScheduler(target Ticker, tickInterval time.Duration, onFrame func()) *ClockScheduler {
	return &ClockScheduler{
		target:       target,
		onFrame:      onFrame,
		provider:     NewMonotonicTimeProvider(),
		tickInterval: tickInterval,
		stopChan:     make(chan struct{}),
	}
}

// Start begins the scheduler loop
func (cs *ClockScheduler) Start() {
	if cs.running.CompareAndSwap(false, true) {
		cs.wg.Add(1)
		// Use core.Go for safe execution with centralized crash handling
		core.Go(cs.schedulerLoop)
	}
}

// Stop halts the scheduler loop and waits for the current tick to finish
func (cs *ClockScheduler) Stop() {
	cs.stopOnce.Do(func() {
		close(cs.stopChan)
		if cs.running.Load() {
			cs.wg.Wait()
		}
		cs.running.Store(false)
	})
}

// TickCount returns the number of completed ticks
func (cs *ClockScheduler) TickCount() uint64 {
	return cs.tickCount.Load()
}

// Step runs a single tick synchronously, for tests and headless runs
func (cs *ClockScheduler) Step() {
	cs.target.Tick(cs.tickInterval)
	cs.tickCount.Add(1)
	if cs.onFrame != nil {
		cs.onFrame()
	}
}

func (cs *ClockScheduler) schedulerLoop() {
	defer cs.wg.Done()

	cs.nextTickDeadline = cs.provider.Now().Add(cs.tickInterval)

	timer := time.NewTimer(cs.tickInterval)
	defer timer.Stop()

	for {
		select {
		case <-cs.stopChan:
			return
		case <-timer.C:
		}

		cs.Step()

		now := cs.provider.Now()
		cs.nextTickDeadline = cs.nextTickDeadline.Add(cs.tickInterval)

		// Skip ahead rather than burst when more than two ticks behind
		if now.Sub(cs.nextTickDeadline) > cs.tickInterval*2 {
			cs.nextTickDeadline = now.Add(cs.tickInterval)
		}

		sleep := cs.nextTickDeadline.Sub(now)
		if sleep < 0 {
			sleep = 0
		}
		timer.Reset(sleep)
	}
}
