package system

import (
	"time"

	"github.com/lixenwraith/threat-shooter/event"
	"github.com/lixenwraith/threat-shooter/vmath"
)

// Snapshot is a read-only copy of everything the renderer draws
type Snapshot struct {
	Width, Height float64

	Phase      Phase
	Elapsed    time.Duration
	Kills      int
	Difficulty float64 // Active session difficulty
	Next       float64 // Difficulty for the next session

	PlayerPos    vmath.Vec
	PlayerState  PlayerState
	Facing       event.Direction
	AimAngle     float64
	Health       int
	Hearts       int
	HalfHeart    bool
	GrenadeCount int

	Enemies    []Enemy
	Grenades   []Grenade
	Pickups    []Pickup
	Explosions []Explosion
	Shots      []ShotEffect

	Summary *event.GameOverPayload
}

// Snapshot copies the current state for rendering
func (g *Game) Snapshot() Snapshot {
	hearts, half := g.Player.Hearts()
	return Snapshot{
		Width:        g.opts.Width,
		Height:       g.opts.Height,
		Phase:        g.phase,
		Elapsed:      g.clock.Elapsed(),
		Kills:        g.kills,
		Difficulty:   g.Enemies.Difficulty(),
		Next:         g.difficulty,
		PlayerPos:    g.Player.Position(),
		PlayerState:  g.Player.State(),
		Facing:       g.Player.Facing(),
		AimAngle:     g.Player.AimAngle(),
		Health:       g.Player.Health(),
		Hearts:       hearts,
		HalfHeart:    half,
		GrenadeCount: g.Grenades.Count(),
		Enemies:      g.Enemies.Enemies(),
		Grenades:     g.Grenades.Grenades(),
		Pickups:      g.Grenades.Pickups(),
		Explosions:   g.Grenades.Explosions(),
		Shots:        g.Shots.Effects(),
		Summary:      g.summary,
	}
}
