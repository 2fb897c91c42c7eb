package event

import (
	"sync"

	"github.com/lixenwraith/threat-shooter/parameter"
)

// Emitter is the injected dispatcher systems publish through
type Emitter interface {
	Push(event GameEvent)
}

// EventQueue is a bounded FIFO shared by the input goroutine and the scheduler
// When full, the oldest pending event is discarded and counted in Dropped
type EventQueue struct {
	mu      sync.Mutex
	ring    []GameEvent
	start   int // Index of the oldest pending event
	size    int
	dropped uint64
}

// NewEventQueue creates a queue holding up to parameter.EventQueueSize events
func NewEventQueue() *EventQueue {
	return &EventQueue{ring: make([]GameEvent, parameter.EventQueueSize)}
}

// Push appends an event, safe from any goroutine
func (eq *EventQueue) Push(event GameEvent) {
	eq.mu.Lock()
	defer eq.mu.Unlock()

	capacity := len(eq.ring)
	if eq.size == capacity {
		eq.ring[eq.start] = GameEvent{}
		eq.start = (eq.start + 1) % capacity
		eq.size--
		eq.dropped++
	}
	eq.ring[(eq.start+eq.size)%capacity] = event
	eq.size++
}

// Consume removes and returns every pending event oldest first, nil when empty
// The returned slice is owned by the caller
func (eq *EventQueue) Consume() []GameEvent {
	eq.mu.Lock()
	defer eq.mu.Unlock()

	if eq.size == 0 {
		return nil
	}
	out := make([]GameEvent, eq.size)
	capacity := len(eq.ring)
	for i := range out {
		idx := (eq.start + i) % capacity
		out[i] = eq.ring[idx]
		eq.ring[idx] = GameEvent{}
	}
	eq.start, eq.size = 0, 0
	return out
}

// Len returns the pending event count
func (eq *EventQueue) Len() int {
	eq.mu.Lock()
	defer eq.mu.Unlock()
	return eq.size
}

// Dropped returns how many events were discarded on overflow
func (eq *EventQueue) Dropped() uint64 {
	eq.mu.Lock()
	defer eq.mu.Unlock()
	return eq.dropped
}
