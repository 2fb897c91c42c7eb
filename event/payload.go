package event

import (
	"time"

	"github.com/lixenwraith/threat-shooter/vmath"
)

// Direction identifies a movement key
type Direction int

const (
	DirUp Direction = iota
	DirDown
	DirLeft
	DirRight
	DirCount
)

func (d Direction) String() string {
	switch d {
	case DirUp:
		return "up"
	case DirDown:
		return "down"
	case DirLeft:
		return "left"
	case DirRight:
		return "right"
	}
	return "none"
}

// MoveKeyPayload carries a movement key transition
type MoveKeyPayload struct {
	Dir  Direction
	Down bool
}

// PointPayload carries a world-space point (aim, fire, throw, goto)
type PointPayload struct {
	Point vmath.Vec
}

// DifficultyPayload carries a relative difficulty adjustment
type DifficultyPayload struct {
	Delta float64
}

// ShotPayload carries a segment from shooter to target
type ShotPayload struct {
	From vmath.Vec
	To   vmath.Vec
}

// AttackPayload carries the attacking enemy position
type AttackPayload struct {
	EnemyID uint64
	Pos     vmath.Vec
}

// KillCause identifies what resolved an enemy kill
type KillCause int

const (
	CauseShot KillCause = iota
	CauseExplosion
)

func (c KillCause) String() string {
	if c == CauseExplosion {
		return "explosion"
	}
	return "shot"
}

// EnemyPayload carries an enemy lifecycle change
type EnemyPayload struct {
	EnemyID uint64
	Pos     vmath.Vec
	Cause   KillCause
}

// HealthPayload carries player health after a change
type HealthPayload struct {
	Health int
}

// ExplosionPayload carries a detonation and its kill count
type ExplosionPayload struct {
	Pos   vmath.Vec
	Kills int
}

// PickupPayload carries a pickup collection and resulting grenade count
type PickupPayload struct {
	Pos   vmath.Vec
	Count int
}

// GameOverPayload is the end-of-session summary
type GameOverPayload struct {
	UserID     string
	Time       time.Duration
	Kills      int
	Difficulty float64
	Speed      float64
}
