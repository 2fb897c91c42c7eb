package system

import (
	"math/rand"

	"github.com/lixenwraith/threat-shooter/event"
	"github.com/lixenwraith/threat-shooter/status"
)

// recorder is an Emitter that keeps every pushed event
type recorder struct {
	events []event.GameEvent
}

func (r *recorder) Push(ev event.GameEvent) {
	r.events = append(r.events, ev)
}

func (r *recorder) count(t event.EventType) int {
	n := 0
	for _, ev := range r.events {
		if ev.Type == t {
			n++
		}
	}
	return n
}

func (r *recorder) reset() {
	r.events = r.events[:0]
}

// typeCounter is a router Handler counting events of the given types
type typeCounter struct {
	types  []event.EventType
	counts map[event.EventType]int
	last   map[event.EventType]event.GameEvent
}

func newTypeCounter(types ...event.EventType) *typeCounter {
	return &typeCounter{
		types:  types,
		counts: make(map[event.EventType]int),
		last:   make(map[event.EventType]event.GameEvent),
	}
}

func (c *typeCounter) EventTypes() []event.EventType { return c.types }

func (c *typeCounter) HandleEvent(ev event.GameEvent) {
	c.counts[ev.Type]++
	c.last[ev.Type] = ev
}

func newTestEnemies(rec *recorder) *EnemySystem {
	return NewEnemySystem(rec, status.NewRegistry(), rand.New(rand.NewSource(1)), 1000, 800)
}

// countingSound is a SoundPlayer counting each effect
type countingSound struct {
	shots, explosions, hurts, deaths, pickups int
}

func (c *countingSound) PlayShot()      { c.shots++ }
func (c *countingSound) PlayExplosion() { c.explosions++ }
func (c *countingSound) PlayHurt()      { c.hurts++ }
func (c *countingSound) PlayDeath()     { c.deaths++ }
func (c *countingSound) PlayPickup()    { c.pickups++ }
