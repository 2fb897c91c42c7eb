package system

import (
	"math"
	"sync/atomic"

	"github.com/lixenwraith/threat-shooter/event"
	"github.com/lixenwraith/threat-shooter/parameter"
	"github.com/lixenwraith/threat-shooter/status"
	"github.com/lixenwraith/threat-shooter/vmath"
)

// PlayerState is the player controller state
type PlayerState int

const (
	PlayerDisabled PlayerState = iota
	PlayerActive
	PlayerPaused
	PlayerDead
)

func (s PlayerState) String() string {
	switch s {
	case PlayerActive:
		return "active"
	case PlayerPaused:
		return "paused"
	case PlayerDead:
		return "dead"
	}
	return "disabled"
}

// PlayerSystem tracks player position, held keys, facing and health
type PlayerSystem struct {
	emitter event.Emitter

	width, height float64

	state  PlayerState
	pos    vmath.Vec
	health int
	speed  float64
	held   [event.DirCount]int // Remaining hold ticks per direction
	facing event.Direction
	aim    vmath.Vec
	aimSet bool
	died   bool

	statHealth *atomic.Int64
	statShots  *atomic.Int64
}

// NewPlayerSystem creates a disabled player centered in the play area
func NewPlayerSystem(emitter event.Emitter, reg *status.Registry, width, height float64) *PlayerSystem {
	s := &PlayerSystem{
		emitter: emitter,
		width:   width,
		height:  height,
		speed:   parameter.DefaultPlayerSpeed,
	}
	s.statHealth = reg.Ints.Get("player.health")
	s.statShots = reg.Ints.Get("player.shots")
	s.Reset()
	return s
}

// EventTypes returns the event types PlayerSystem handles
func (s *PlayerSystem) EventTypes() []event.EventType {
	return []event.EventType{
		event.EventMoveKey,
		event.EventAim,
		event.EventFire,
		event.EventThrow,
	}
}

// HandleEvent processes input commands
func (s *PlayerSystem) HandleEvent(ev event.GameEvent) {
	switch ev.Type {
	case event.EventMoveKey:
		if p, ok := ev.Payload.(*event.MoveKeyPayload); ok {
			if p.Down {
				s.KeyDown(p.Dir)
			} else {
				s.KeyUp(p.Dir)
			}
		}
	case event.EventAim:
		if p, ok := ev.Payload.(*event.PointPayload); ok {
			s.Aim(p.Point)
		}
	case event.EventFire:
		if p, ok := ev.Payload.(*event.PointPayload); ok {
			s.Shoot(p.Point)
		} else {
			s.Shoot(s.Target())
		}
	case event.EventThrow:
		if p, ok := ev.Payload.(*event.PointPayload); ok {
			s.Throw(p.Point)
		} else {
			s.Throw(s.Target())
		}
	}
}

// Reset restores full health at the center, disabled
func (s *PlayerSystem) Reset() {
	s.state = PlayerDisabled
	s.pos = vmath.V(s.width/2, s.height/2)
	s.health = parameter.PlayerMaxHealth
	s.held = [event.DirCount]int{}
	s.facing = event.DirDown
	s.aimSet = false
	s.died = false
	s.statHealth.Store(int64(s.health))
}

// Enable makes the player controllable
func (s *PlayerSystem) Enable() {
	if s.state != PlayerDead {
		s.state = PlayerActive
	}
}

// Disable stops input handling
func (s *PlayerSystem) Disable() {
	if s.state != PlayerDead {
		s.state = PlayerDisabled
	}
}

// Pause freezes an active player
func (s *PlayerSystem) Pause() {
	if s.state == PlayerActive {
		s.state = PlayerPaused
		s.held = [event.DirCount]int{}
	}
}

// Resume unfreezes a paused player
func (s *PlayerSystem) Resume() {
	if s.state == PlayerPaused {
		s.state = PlayerActive
	}
}

// State returns the controller state
func (s *PlayerSystem) State() PlayerState {
	return s.state
}

// KeyDown holds a direction for KeyHoldTicks unless released earlier
func (s *PlayerSystem) KeyDown(dir event.Direction) {
	if dir < 0 || dir >= event.DirCount || s.state != PlayerActive {
		return
	}
	s.held[dir] = parameter.KeyHoldTicks
	s.facing = dir
}

// KeyUp releases a direction
func (s *PlayerSystem) KeyUp(dir event.Direction) {
	if dir < 0 || dir >= event.DirCount {
		return
	}
	s.held[dir] = 0
}

// Held reports whether a direction is currently held
func (s *PlayerSystem) Held(dir event.Direction) bool {
	return dir >= 0 && dir < event.DirCount && s.held[dir] > 0
}

// Update moves the player one tick along every held direction, clamped to the play area
func (s *PlayerSystem) Update() {
	if s.state != PlayerActive {
		return
	}

	var move vmath.Vec
	moving := false
	for _, dir := range [...]event.Direction{event.DirUp, event.DirDown, event.DirLeft, event.DirRight} {
		if s.held[dir] <= 0 {
			continue
		}
		switch dir {
		case event.DirUp:
			move[1] -= s.speed
		case event.DirDown:
			move[1] += s.speed
		case event.DirLeft:
			move[0] -= s.speed
		case event.DirRight:
			move[0] += s.speed
		}
		if !moving {
			s.facing = dir
			moving = true
		}
		s.held[dir]--
	}

	s.pos = vmath.ClampToArea(s.pos.Add(move), s.width, s.height)
}

// Aim updates the facing from a cursor position
func (s *PlayerSystem) Aim(p vmath.Vec) {
	if s.state != PlayerActive {
		return
	}
	s.aim = p
	s.aimSet = true
}

// AimAngle returns the cursor bearing in radians, zero when no cursor was seen
func (s *PlayerSystem) AimAngle() float64 {
	if !s.aimSet {
		return 0
	}
	d := s.aim.Sub(s.pos)
	return math.Atan2(d.Y(), d.X())
}

// Facing returns the cardinal facing
func (s *PlayerSystem) Facing() event.Direction {
	return s.facing
}

// Target returns the last cursor position, or a point ahead of the facing when none was seen
func (s *PlayerSystem) Target() vmath.Vec {
	if s.aimSet {
		return s.aim
	}
	var dir vmath.Vec
	switch s.facing {
	case event.DirUp:
		dir = vmath.V(0, -1)
	case event.DirLeft:
		dir = vmath.V(-1, 0)
	case event.DirRight:
		dir = vmath.V(1, 0)
	default:
		dir = vmath.V(0, 1)
	}
	return s.pos.Add(dir.Mul(parameter.FacingReach))
}

// Muzzle returns the shot origin offset from the center toward target
// A target on the player fires straight down
func (s *PlayerSystem) Muzzle(target vmath.Vec) vmath.Vec {
	dir, l := vmath.Normalize2D(target.Sub(s.pos))
	if l == 0 {
		dir = vmath.V(0, 1)
	}
	return s.pos.Add(vmath.V(
		dir.X()*parameter.PlayerFrameWidth*parameter.MuzzleFactor,
		dir.Y()*parameter.PlayerFrameHeight*parameter.MuzzleFactor,
	))
}

// Shoot emits a shot segment from the muzzle to target
func (s *PlayerSystem) Shoot(target vmath.Vec) bool {
	if s.state != PlayerActive {
		return false
	}
	s.aim = target
	s.aimSet = true
	s.statShots.Add(1)
	s.emitter.Push(event.GameEvent{
		Type:    event.EventShotFired,
		Payload: &event.ShotPayload{From: s.Muzzle(target), To: target},
	})
	return true
}

// Throw requests a grenade throw from the player position toward target
func (s *PlayerSystem) Throw(target vmath.Vec) bool {
	if s.state != PlayerActive {
		return false
	}
	s.emitter.Push(event.GameEvent{
		Type:    event.EventGrenadeThrowRequest,
		Payload: &event.ShotPayload{From: s.pos, To: target},
	})
	return true
}

// Damage reduces health, clamped at zero
// Returns true exactly once, on the hit that brings health to zero
func (s *PlayerSystem) Damage(amount int) bool {
	if amount <= 0 || s.health <= 0 {
		return false
	}
	s.health = max(0, s.health-amount)
	s.statHealth.Store(int64(s.health))
	if s.health > 0 || s.died {
		return false
	}
	s.died = true
	s.state = PlayerDead
	s.held = [event.DirCount]int{}
	return true
}

// Health returns current health in [0, PlayerMaxHealth]
func (s *PlayerSystem) Health() int {
	return s.health
}

// Hearts returns full hearts and whether a half heart remains
func (s *PlayerSystem) Hearts() (full int, half bool) {
	return s.health / parameter.HealthPerHeart, s.health%parameter.HealthPerHeart != 0
}

// Position returns the player center
func (s *PlayerSystem) Position() vmath.Vec {
	return s.pos
}

// SetPosition places the player, clamped to the play area
func (s *PlayerSystem) SetPosition(p vmath.Vec) {
	s.pos = vmath.ClampToArea(p, s.width, s.height)
}

// SetSpeed sets the per-tick step, clamped to [MinPlayerSpeed, MaxPlayerSpeed]
func (s *PlayerSystem) SetSpeed(v float64) {
	s.speed = max(parameter.MinPlayerSpeed, min(parameter.MaxPlayerSpeed, v))
}

// Speed returns the per-tick step
func (s *PlayerSystem) Speed() float64 {
	return s.speed
}
