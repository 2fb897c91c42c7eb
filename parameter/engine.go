package parameter

import "time"

// Game Loop & Engine Timing
const (
	// TickInterval is the fixed simulation step (~60 ticks per second)
	TickInterval = 16 * time.Millisecond

	// DispatchPasses caps how many times the router drains the queue per dispatch
	// Handlers emitting follow-up events settle within the same tick
	DispatchPasses = 8
)

// Event Queue Limits
const (
	// EventQueueSize is the pending event capacity; older events are dropped beyond it
	EventQueueSize = 1024
)
