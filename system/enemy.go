package system

import (
	"math"
	"math/rand"
	"sort"
	"sync/atomic"
	"time"

	"github.com/lixenwraith/threat-shooter/engine"
	"github.com/lixenwraith/threat-shooter/event"
	"github.com/lixenwraith/threat-shooter/parameter"
	"github.com/lixenwraith/threat-shooter/status"
	"github.com/lixenwraith/threat-shooter/vmath"
)

// Enemy is a live threat walking toward its goal
type Enemy struct {
	ID     uint64
	Pos    vmath.Vec
	Health int
	Speed  float64
	Goal   vmath.Vec
}

// EnemySystem spawns enemies, walks them toward the player and owns kill accounting
// All removals go through resolveKill so a kill is counted exactly once
type EnemySystem struct {
	emitter event.Emitter
	rng     *rand.Rand

	width, height float64
	difficulty    float64

	enemies []*Enemy
	nextID  uint64
	goal    vmath.Vec
	kills   int

	tasks     *engine.TaskList
	spawnTask *engine.Task

	running bool
	frozen  bool

	statLive    *atomic.Int64
	statSpawned *atomic.Int64
	statKills   *atomic.Int64
}

// NewEnemySystem creates a stopped generator for a width x height play area
func NewEnemySystem(emitter event.Emitter, reg *status.Registry, rng *rand.Rand, width, height float64) *EnemySystem {
	s := &EnemySystem{
		emitter:    emitter,
		rng:        rng,
		width:      width,
		height:     height,
		difficulty: parameter.DefaultDifficulty,
		tasks:      engine.NewTaskList(),
		goal:       vmath.V(width/2, height/2),
	}

	s.statLive = reg.Ints.Get("enemy.live")
	s.statSpawned = reg.Ints.Get("enemy.spawned")
	s.statKills = reg.Ints.Get("enemy.kills")

	return s
}

// EventTypes returns the event types EnemySystem handles
func (s *EnemySystem) EventTypes() []event.EventType {
	return []event.EventType{
		event.EventEnemyGoto,
	}
}

// HandleEvent retargets every enemy to the new goal
func (s *EnemySystem) HandleEvent(ev event.GameEvent) {
	if ev.Type != event.EventEnemyGoto {
		return
	}
	if p, ok := ev.Payload.(*event.PointPayload); ok {
		s.SetGoal(p.Point)
	}
}

// SetGoal updates the point enemies walk toward
func (s *EnemySystem) SetGoal(goal vmath.Vec) {
	s.goal = goal
	for _, e := range s.enemies {
		e.Goal = goal
	}
}

// Start enables spawning and movement
func (s *EnemySystem) Start() {
	if s.running {
		return
	}
	s.running = true
	s.scheduleSpawn()
}

// Stop halts spawning and movement, tearing down the spawn timer
func (s *EnemySystem) Stop() {
	s.running = false
	s.spawnTask.Cancel()
	s.spawnTask = nil
}

// Running reports whether timers and movement are active
func (s *EnemySystem) Running() bool {
	return s.running
}

// Freeze blocks all further hit, kill and attack processing until Clean
func (s *EnemySystem) Freeze() {
	s.frozen = true
}

// Frozen reports whether the session ended
func (s *EnemySystem) Frozen() bool {
	return s.frozen
}

// Clean removes all enemies, cancels timers and resets counters
func (s *EnemySystem) Clean() {
	s.Stop()
	s.tasks.Reset()
	for i := range s.enemies {
		s.enemies[i] = nil
	}
	s.enemies = s.enemies[:0]
	s.kills = 0
	s.frozen = false

	s.statLive.Store(0)
	s.statKills.Store(0)
}

// SetDifficulty clamps and applies a difficulty level to subsequent spawns
func (s *EnemySystem) SetDifficulty(d float64) {
	s.difficulty = max(parameter.MinDifficulty, min(parameter.MaxDifficulty, d))
	if s.running {
		s.spawnTask.Cancel()
		s.scheduleSpawn()
	}
}

// Difficulty returns the current difficulty level
func (s *EnemySystem) Difficulty() float64 {
	return s.difficulty
}

// SpawnInterval returns the spawn period for the current difficulty
func (s *EnemySystem) SpawnInterval() time.Duration {
	iv := time.Duration(float64(parameter.EnemySpawnInterval) / s.difficulty)
	return max(iv, parameter.EnemyMinSpawnInterval)
}

// EnemyHealth returns the spawn health for the current difficulty
func (s *EnemySystem) EnemyHealth() int {
	return parameter.EnemyBaseHealth + int(math.Floor(s.difficulty-1))
}

// EnemySpeed returns the per-tick step for the current difficulty
func (s *EnemySystem) EnemySpeed() float64 {
	return parameter.EnemyBaseSpeed * (1 + parameter.EnemySpeedPerLevel*(s.difficulty-1))
}

func (s *EnemySystem) scheduleSpawn() {
	s.spawnTask = s.tasks.Every(s.SpawnInterval(), func() { s.Spawn() })
}

// Spawn creates an enemy just outside a random edge of the play area
func (s *EnemySystem) Spawn() *Enemy {
	m := parameter.EnemySpawnMargin
	var pos vmath.Vec
	switch s.rng.Intn(4) {
	case 0:
		pos = vmath.V(s.rng.Float64()*s.width, -m)
	case 1:
		pos = vmath.V(s.rng.Float64()*s.width, s.height+m)
	case 2:
		pos = vmath.V(-m, s.rng.Float64()*s.height)
	default:
		pos = vmath.V(s.width+m, s.rng.Float64()*s.height)
	}
	return s.SpawnAt(pos)
}

// SpawnAt creates an enemy at pos with difficulty-derived health and speed
func (s *EnemySystem) SpawnAt(pos vmath.Vec) *Enemy {
	s.nextID++
	e := &Enemy{
		ID:     s.nextID,
		Pos:    pos,
		Health: s.EnemyHealth(),
		Speed:  s.EnemySpeed(),
		Goal:   s.goal,
	}
	s.enemies = append(s.enemies, e)

	s.statLive.Store(int64(len(s.enemies)))
	s.statSpawned.Add(1)
	s.emitter.Push(event.GameEvent{
		Type:    event.EventEnemySpawned,
		Payload: &event.EnemyPayload{EnemyID: e.ID, Pos: e.Pos},
	})
	return e
}

// Tick advances spawn timers by dt and walks every enemy one step
// Enemies standing on their goal emit one attack per tick
func (s *EnemySystem) Tick(dt time.Duration) {
	if !s.running || s.frozen {
		return
	}
	s.tasks.Advance(dt)

	for _, e := range s.enemies {
		e.Pos, _ = vmath.StepToward(e.Pos, e.Goal, e.Speed)
	}

	for _, e := range s.enemies {
		if vmath.WithinBox(e.Goal, e.Pos, parameter.PositionEpsilon) {
			s.emitter.Push(event.GameEvent{
				Type:    event.EventEnemyAttack,
				Payload: &event.AttackPayload{EnemyID: e.ID, Pos: e.Pos},
			})
		}
	}
}

// Hit applies damage to an enemy and resolves the kill at zero health
// Returns true when the hit killed the enemy
func (s *EnemySystem) Hit(id uint64, damage int) bool {
	if s.frozen || damage <= 0 {
		return false
	}
	idx := s.indexOf(id)
	if idx < 0 {
		return false
	}
	e := s.enemies[idx]
	e.Health -= damage
	if e.Health > 0 {
		return false
	}
	s.resolveKill(idx, event.CauseShot)
	return true
}

// Kill forces an enemy to zero health through the shared kill path
func (s *EnemySystem) Kill(id uint64, cause event.KillCause) bool {
	if s.frozen {
		return false
	}
	idx := s.indexOf(id)
	if idx < 0 {
		return false
	}
	s.enemies[idx].Health = 0
	s.resolveKill(idx, cause)
	return true
}

func (s *EnemySystem) resolveKill(idx int, cause event.KillCause) {
	e := s.enemies[idx]
	copy(s.enemies[idx:], s.enemies[idx+1:])
	s.enemies[len(s.enemies)-1] = nil
	s.enemies = s.enemies[:len(s.enemies)-1]
	s.kills++

	s.statLive.Store(int64(len(s.enemies)))
	s.statKills.Store(int64(s.kills))
	s.emitter.Push(event.GameEvent{
		Type:    event.EventEnemyKilled,
		Payload: &event.EnemyPayload{EnemyID: e.ID, Pos: e.Pos, Cause: cause},
	})
}

func (s *EnemySystem) indexOf(id uint64) int {
	for i, e := range s.enemies {
		if e.ID == id {
			return i
		}
	}
	return -1
}

// Nearest returns up to limit enemy IDs within radius of p, closest first
// Ties keep spawn order
func (s *EnemySystem) Nearest(p vmath.Vec, radius float64, limit int) []uint64 {
	type candidate struct {
		id   uint64
		dist float64
	}
	var found []candidate
	for _, e := range s.enemies {
		if d := vmath.Distance(p, e.Pos); d <= radius {
			found = append(found, candidate{e.ID, d})
		}
	}
	sort.SliceStable(found, func(i, j int) bool { return found[i].dist < found[j].dist })

	if limit >= 0 && len(found) > limit {
		found = found[:limit]
	}
	ids := make([]uint64, len(found))
	for i, c := range found {
		ids[i] = c.id
	}
	return ids
}

// AnyWithin reports whether any enemy lies strictly closer than radius to p
func (s *EnemySystem) AnyWithin(p vmath.Vec, radius float64) bool {
	for _, e := range s.enemies {
		if vmath.Distance(p, e.Pos) < radius {
			return true
		}
	}
	return false
}

// Enemies returns a copy of the live set for hit-testing and rendering
func (s *EnemySystem) Enemies() []Enemy {
	out := make([]Enemy, len(s.enemies))
	for i, e := range s.enemies {
		out[i] = *e
	}
	return out
}

// Enemy returns a copy of one enemy
func (s *EnemySystem) Enemy(id uint64) (Enemy, bool) {
	if idx := s.indexOf(id); idx >= 0 {
		return *s.enemies[idx], true
	}
	return Enemy{}, false
}

// Count returns the number of live enemies
func (s *EnemySystem) Count() int {
	return len(s.enemies)
}

// KillCount returns kills since the last Clean
func (s *EnemySystem) KillCount() int {
	return s.kills
}
