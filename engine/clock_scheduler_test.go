package engine

import (
	"sync/atomic"
	"testing"
	"time"
)

type countingTicker struct {
	ticks atomic.Int64
	last  atomic.Int64
}

func (c *countingTicker) Tick(dt time.Duration) {
	c.ticks.Add(1)
	c.last.Store(int64(dt))
}

func TestClockSchedulerStep(t *testing.T) {
	ct := &countingTicker{}
	frames := 0
	cs := NewClockScheduler(ct, 16*time.Millisecond, func() { frames++ })

	cs.Step()
	cs.Step()

	if ct.ticks.Load() != 2 || frames != 2 || cs.TickCount() != 2 {
		t.Fatalf("ticks=%d frames=%d count=%d", ct.ticks.Load(), frames, cs.TickCount())
	}
	if time.Duration(ct.last.Load()) != 16*time.Millisecond {
		t.Fatalf("dt = %v", time.Duration(ct.last.Load()))
	}
}

func TestClockSchedulerStartStop(t *testing.T) {
	ct := &countingTicker{}
	cs := NewClockScheduler(ct, 2*time.Millisecond, nil)

	cs.Start()
	deadline := time.Now().Add(2 * time.Second)
	for ct.ticks.Load() < 3 && time.Now().Before(deadline) {
		time.Sleep(time.Millisecond)
	}
	cs.Stop()
	cs.Stop() // idempotent

	after := ct.ticks.Load()
	if after < 3 {
		t.Fatalf("scheduler ticked %d times, want >= 3", after)
	}
	time.Sleep(10 * time.Millisecond)
	if ct.ticks.Load() != after {
		t.Fatal("scheduler ticked after Stop")
	}
}
