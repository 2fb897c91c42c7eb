package system

import (
	"math/rand"
	"sync/atomic"
	"time"

	"github.com/lixenwraith/threat-shooter/engine"
	"github.com/lixenwraith/threat-shooter/event"
	"github.com/lixenwraith/threat-shooter/parameter"
	"github.com/lixenwraith/threat-shooter/status"
	"github.com/lixenwraith/threat-shooter/vmath"
)

// Roster is the enemy view the grenade subsystem resolves explosions against
type Roster interface {
	Nearest(p vmath.Vec, radius float64, limit int) []uint64
	AnyWithin(p vmath.Vec, radius float64) bool
	Kill(id uint64, cause event.KillCause) bool
}

// Grenade is a thrown grenade in flight
type Grenade struct {
	ID       uint64
	Pos      vmath.Vec
	Vel      vmath.Vec
	Gravity  float64
	Elapsed  float64 // Ticks in flight
	Budget   float64 // Ticks until time-bound detonation
	Rotation float64 // Degrees
	Exploded bool
}

// Pickup is a collectible grenade lying in the play area
type Pickup struct {
	ID        uint64
	Pos       vmath.Vec
	Radius    float64
	SpawnedAt time.Duration

	expiry *engine.Task
}

// Explosion is a detonation kept for rendering until its TTL runs out
type Explosion struct {
	Pos   vmath.Vec
	Kills int
	Age   time.Duration
	TTL   time.Duration
}

// Progress returns the explosion animation phase in [0,1]
func (e Explosion) Progress() float64 {
	if e.TTL <= 0 {
		return 1
	}
	return min(1, float64(e.Age)/float64(e.TTL))
}

// Radius returns the current blast ring radius
func (e Explosion) Radius() float64 {
	return parameter.ExplosionRadius * e.Progress()
}

// GrenadeSystem owns the grenade count, throws, pickups and explosions
type GrenadeSystem struct {
	emitter event.Emitter
	roster  Roster
	rng     *rand.Rand

	width, height float64

	count      int
	grenades   []*Grenade
	pickups    []*Pickup
	explosions []Explosion
	nextID     uint64

	tasks     *engine.TaskList
	spawnTask *engine.Task
	running   bool

	statThrown    *atomic.Int64
	statExploded  *atomic.Int64
	statCollected *atomic.Int64
}

// NewGrenadeSystem creates a stopped grenade subsystem resolving kills through roster
func NewGrenadeSystem(emitter event.Emitter, roster Roster, reg *status.Registry, rng *rand.Rand, width, height float64) *GrenadeSystem {
	s := &GrenadeSystem{
		emitter: emitter,
		roster:  roster,
		rng:     rng,
		width:   width,
		height:  height,
		tasks:   engine.NewTaskList(),
	}

	s.statThrown = reg.Ints.Get("grenade.thrown")
	s.statExploded = reg.Ints.Get("grenade.exploded")
	s.statCollected = reg.Ints.Get("grenade.collected")

	return s
}

// EventTypes returns the event types GrenadeSystem handles
func (s *GrenadeSystem) EventTypes() []event.EventType {
	return []event.EventType{
		event.EventGrenadeThrowRequest,
	}
}

// HandleEvent processes throw requests
func (s *GrenadeSystem) HandleEvent(ev event.GameEvent) {
	if ev.Type != event.EventGrenadeThrowRequest || !s.running {
		return
	}
	if p, ok := ev.Payload.(*event.ShotPayload); ok {
		s.Throw(p.From, p.To)
	}
}

// Start enables pickup spawning and grenade flight
func (s *GrenadeSystem) Start() {
	if s.running {
		return
	}
	s.running = true
	s.spawnTask = s.tasks.Every(parameter.PickupSpawnInterval, func() { s.SpawnPickup() })
}

// Stop halts flight and pickup spawning; pickup expiry timers keep their remaining time
func (s *GrenadeSystem) Stop() {
	s.running = false
	s.spawnTask.Cancel()
	s.spawnTask = nil
}

// Running reports whether the subsystem is active
func (s *GrenadeSystem) Running() bool {
	return s.running
}

// Reset clears grenades, pickups, explosions and timers, leaving count at zero
func (s *GrenadeSystem) Reset() {
	s.Stop()
	s.tasks.Reset()
	s.grenades = s.grenades[:0]
	s.pickups = s.pickups[:0]
	s.explosions = s.explosions[:0]
	s.count = 0
}

// Count returns the grenades held by the player
func (s *GrenadeSystem) Count() int {
	return s.count
}

// SetCount sets the grenade count clamped to [0, MaxGrenades]
func (s *GrenadeSystem) SetCount(n int) {
	s.count = max(0, min(parameter.MaxGrenades, n))
}

// Throw launches a grenade from origin toward target, consuming one grenade
// Flight budget is the capped throw distance over throw speed, in ticks
func (s *GrenadeSystem) Throw(origin, target vmath.Vec) (*Grenade, bool) {
	if s.count <= 0 {
		return nil, false
	}
	s.count--

	dir, dist := vmath.Normalize2D(target.Sub(origin))
	dist = min(dist, parameter.GrenadeMaxDistance)

	s.nextID++
	g := &Grenade{
		ID:      s.nextID,
		Pos:     origin,
		Vel:     dir.Mul(parameter.GrenadeThrowSpeed),
		Gravity: parameter.GrenadeGravity,
		Budget:  dist / parameter.GrenadeThrowSpeed,
	}
	s.grenades = append(s.grenades, g)
	s.statThrown.Add(1)
	return g, true
}

// Tick advances timers, flights and explosion effects
func (s *GrenadeSystem) Tick(dt time.Duration) {
	if !s.running {
		return
	}
	s.tasks.Advance(dt)

	for _, g := range s.grenades {
		s.fly(g)
	}

	live := s.grenades[:0]
	for _, g := range s.grenades {
		if !g.Exploded {
			live = append(live, g)
		}
	}
	for i := len(live); i < len(s.grenades); i++ {
		s.grenades[i] = nil
	}
	s.grenades = live

	fx := s.explosions[:0]
	for _, e := range s.explosions {
		e.Age += dt
		if e.Age < e.TTL {
			fx = append(fx, e)
		}
	}
	s.explosions = fx
}

// fly integrates one tick of semi-implicit Euler and checks detonation triggers
// Trigger order: enemy overlap, time budget, bounds, ground
func (s *GrenadeSystem) fly(g *Grenade) {
	if g.Exploded {
		return
	}
	g.Elapsed += parameter.GrenadeTimeStep
	g.Vel[1] += g.Gravity
	g.Pos = g.Pos.Add(g.Vel)
	g.Rotation = vmath.RotateDegrees(g.Rotation, parameter.GrenadeSpinDegrees)

	x, y := g.Pos.X(), g.Pos.Y()
	switch {
	case s.roster.AnyWithin(g.Pos, parameter.GrenadeRadius+parameter.EnemyCollisionRadius):
	case g.Elapsed >= g.Budget:
	case x < 0 || x > s.width || y < 0:
	case y >= s.height-parameter.GrenadeGroundMargin:
	default:
		return
	}
	s.Detonate(g)
}

// Detonate explodes g once, killing the nearest enemies within the blast radius
// Returns the number of kills, or -1 if g had already exploded
func (s *GrenadeSystem) Detonate(g *Grenade) int {
	if g.Exploded {
		return -1
	}
	g.Exploded = true

	kills := 0
	for _, id := range s.roster.Nearest(g.Pos, parameter.ExplosionRadius, parameter.ExplosionMaxKills) {
		if s.roster.Kill(id, event.CauseExplosion) {
			kills++
		}
	}

	s.explosions = append(s.explosions, Explosion{Pos: g.Pos, Kills: kills, TTL: parameter.ExplosionDuration})
	s.statExploded.Add(1)
	s.emitter.Push(event.GameEvent{
		Type:    event.EventGrenadeExploded,
		Payload: &event.ExplosionPayload{Pos: g.Pos, Kills: kills},
	})
	return kills
}

// SpawnPickup places a pickup at a random position inside the play area
func (s *GrenadeSystem) SpawnPickup() *Pickup {
	r := parameter.PickupRadius
	pos := vmath.V(r+s.rng.Float64()*(s.width-2*r), r+s.rng.Float64()*(s.height-2*r))
	return s.SpawnPickupAt(pos)
}

// SpawnPickupAt places a pickup at pos that expires after PickupLifetime
func (s *GrenadeSystem) SpawnPickupAt(pos vmath.Vec) *Pickup {
	s.nextID++
	p := &Pickup{
		ID:        s.nextID,
		Pos:       pos,
		Radius:    parameter.PickupRadius,
		SpawnedAt: s.tasks.Now(),
	}
	id := p.ID
	p.expiry = s.tasks.After(parameter.PickupLifetime, func() { s.removePickup(id) })
	s.pickups = append(s.pickups, p)
	return p
}

// CollectPickups consumes every pickup touching a player of the given radius
// Count grows only below MaxGrenades, the pickup is consumed regardless
func (s *GrenadeSystem) CollectPickups(player vmath.Vec, playerRadius float64) int {
	collected := 0
	live := s.pickups[:0]
	for _, p := range s.pickups {
		if vmath.Distance(player, p.Pos) >= p.Radius+playerRadius {
			live = append(live, p)
			continue
		}
		p.expiry.Cancel()
		s.SetCount(s.count + 1)
		collected++
		s.statCollected.Add(1)
		s.emitter.Push(event.GameEvent{
			Type:    event.EventPickupCollected,
			Payload: &event.PickupPayload{Pos: p.Pos, Count: s.count},
		})
	}
	for i := len(live); i < len(s.pickups); i++ {
		s.pickups[i] = nil
	}
	s.pickups = live
	return collected
}

func (s *GrenadeSystem) removePickup(id uint64) {
	for i, p := range s.pickups {
		if p.ID == id {
			s.pickups = append(s.pickups[:i], s.pickups[i+1:]...)
			return
		}
	}
}

// Grenades returns a copy of grenades in flight
func (s *GrenadeSystem) Grenades() []Grenade {
	out := make([]Grenade, len(s.grenades))
	for i, g := range s.grenades {
		out[i] = *g
	}
	return out
}

// Pickups returns a copy of live pickups
func (s *GrenadeSystem) Pickups() []Pickup {
	out := make([]Pickup, len(s.pickups))
	for i, p := range s.pickups {
		out[i] = Pickup{ID: p.ID, Pos: p.Pos, Radius: p.Radius, SpawnedAt: p.SpawnedAt}
	}
	return out
}

// Explosions returns a copy of active explosion effects
func (s *GrenadeSystem) Explosions() []Explosion {
	return append([]Explosion(nil), s.explosions...)
}
