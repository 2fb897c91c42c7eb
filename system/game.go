package system

import (
	"math/rand"
	"sync/atomic"
	"time"

	"github.com/rs/zerolog"

	"github.com/lixenwraith/threat-shooter/engine"
	"github.com/lixenwraith/threat-shooter/event"
	"github.com/lixenwraith/threat-shooter/parameter"
	"github.com/lixenwraith/threat-shooter/status"
	"github.com/lixenwraith/threat-shooter/vmath"
)

// Phase is the session lifecycle phase
type Phase int

const (
	PhaseIdle Phase = iota
	PhasePlaying
	PhasePaused
	PhaseOver
)

func (p Phase) String() string {
	switch p {
	case PhasePlaying:
		return "playing"
	case PhasePaused:
		return "paused"
	case PhaseOver:
		return "over"
	}
	return "idle"
}

// Options configures a Game
type Options struct {
	Width       float64
	Height      float64
	Difficulty  float64
	PlayerSpeed float64
	HitTest     HitTest
	Seed        int64
	Time        engine.TimeProvider // nil selects the monotonic clock
	Sound       SoundPlayer         // nil runs silent
}

// DefaultOptions returns the stock play area and tuning
func DefaultOptions() Options {
	return Options{
		Width:       parameter.DefaultWorldWidth,
		Height:      parameter.DefaultWorldHeight,
		Difficulty:  parameter.DefaultDifficulty,
		PlayerSpeed: parameter.DefaultPlayerSpeed,
		HitTest:     HitTestCone,
		Seed:        time.Now().UnixNano(),
	}
}

// Game owns every subsystem, routes events between them and drives the session lifecycle
// Tick, HandleEvent and Snapshot run on the scheduler goroutine only; input only pushes events
type Game struct {
	log zerolog.Logger

	queue  *event.EventQueue
	router *event.Router
	status *status.Registry

	Player   *PlayerSystem
	Enemies  *EnemySystem
	Grenades *GrenadeSystem
	Shots    *ShotSystem
	Audio    *AudioSystem

	opts       Options
	clock      *engine.PausableClock
	uiTasks    *engine.TaskList // Keeps running while paused and after death
	scoreTask  *engine.Task
	difficulty float64 // Applied at the next BeginNewGame

	phase   Phase
	ended   bool
	kills   int // HUD kill count, refreshed by the score poll
	userID  string
	frame   atomic.Int64 // Read by Push from the input goroutine
	summary *event.GameOverPayload

	statPhase   *status.AtomicString
	statTicks   *atomic.Int64
	statTime    *status.AtomicFloat
	statLongest *status.AtomicFloat
	statDropped *atomic.Int64
}

// NewGame builds the subsystems and registers them on a fresh router
func NewGame(opts Options, reg *status.Registry, log zerolog.Logger) *Game {
	if opts.Width <= 0 || opts.Height <= 0 {
		opts.Width, opts.Height = parameter.DefaultWorldWidth, parameter.DefaultWorldHeight
	}
	if opts.Difficulty == 0 {
		opts.Difficulty = parameter.DefaultDifficulty
	}
	if opts.PlayerSpeed == 0 {
		opts.PlayerSpeed = parameter.DefaultPlayerSpeed
	}
	if reg == nil {
		reg = status.NewRegistry()
	}

	rng := rand.New(rand.NewSource(opts.Seed))
	queue := event.NewEventQueue()

	g := &Game{
		log:     log.With().Str("component", "game").Logger(),
		queue:   queue,
		router:  event.NewRouter(queue),
		status:  reg,
		opts:    opts,
		clock:   engine.NewPausableClock(opts.Time),
		uiTasks: engine.NewTaskList(),
	}
	g.Player = NewPlayerSystem(queue, reg, opts.Width, opts.Height)
	g.Enemies = NewEnemySystem(queue, reg, rng, opts.Width, opts.Height)
	g.Grenades = NewGrenadeSystem(queue, g.Enemies, reg, rng, opts.Width, opts.Height)
	g.Shots = NewShotSystem()
	g.Audio = NewAudioSystem(opts.Sound)

	g.Player.SetSpeed(opts.PlayerSpeed)
	g.SetDifficulty(opts.Difficulty)

	g.statPhase = reg.Strings.Get("game.phase")
	g.statTicks = reg.Ints.Get("game.ticks")
	g.statTime = reg.Floats.Get("game.time")
	g.statLongest = reg.Floats.Get("game.longest")
	g.statDropped = reg.Ints.Get("event.dropped")
	g.statPhase.Store(g.phase.String())

	g.router.Register(g.Player)
	g.router.Register(g)
	g.router.Register(g.Enemies)
	g.router.Register(g.Grenades)
	g.router.Register(g.Shots)
	g.router.Register(g.Audio)

	return g
}

// Push queues an event for the next dispatch, safe from any goroutine
func (g *Game) Push(ev event.GameEvent) {
	ev.Frame = g.frame.Load()
	g.queue.Push(ev)
}

// Register adds an external handler, such as the UI, to the router
func (g *Game) Register(h event.Handler) {
	g.router.Register(h)
}

// EventTypes returns the event types Game handles
func (g *Game) EventTypes() []event.EventType {
	return []event.EventType{
		event.EventShotFired,
		event.EventEnemyAttack,
		event.EventPauseToggle,
		event.EventNewGameRequest,
		event.EventDifficultyChange,
	}
}

// HandleEvent resolves shots and attacks and applies session commands
func (g *Game) HandleEvent(ev event.GameEvent) {
	switch ev.Type {
	case event.EventShotFired:
		if p, ok := ev.Payload.(*event.ShotPayload); ok {
			g.resolveShot(p)
		}
	case event.EventEnemyAttack:
		if p, ok := ev.Payload.(*event.AttackPayload); ok {
			g.resolveAttack(p)
		}
	case event.EventPauseToggle:
		g.TogglePause()
	case event.EventNewGameRequest:
		g.BeginNewGame()
	case event.EventDifficultyChange:
		if p, ok := ev.Payload.(*event.DifficultyPayload); ok {
			g.SetDifficulty(g.difficulty + p.Delta)
		}
	}
}

// resolveShot hits every enemy selected by the configured hit-test
func (g *Game) resolveShot(p *event.ShotPayload) {
	if g.ended {
		return
	}
	ids := ShotTargets(g.opts.HitTest, g.Player.Position(), p.From, p.To, g.Enemies.Enemies())
	for _, id := range ids {
		g.Enemies.Hit(id, 1)
	}
}

// resolveAttack deals contact damage if the attacker is still alive and standing on the player
func (g *Game) resolveAttack(p *event.AttackPayload) {
	if g.ended || g.Player.Health() <= 0 {
		return
	}
	enemy, alive := g.Enemies.Enemy(p.EnemyID)
	if !alive || !vmath.WithinBox(g.Player.Position(), enemy.Pos, parameter.PositionEpsilon) {
		return
	}

	died := g.Player.Damage(parameter.ContactDamage)
	g.queue.Push(event.GameEvent{
		Type:    event.EventPlayerDamaged,
		Payload: &event.HealthPayload{Health: g.Player.Health()},
		Frame:   g.frame.Load(),
	})
	if died {
		g.queue.Push(event.GameEvent{Type: event.EventPlayerDied, Frame: g.frame.Load()})
		g.EndGame()
	}
}

// Tick runs one fixed step: dispatch, player, goal broadcast, dispatch, systems, dispatch
func (g *Game) Tick(dt time.Duration) {
	g.frame.Add(1)
	g.statTicks.Add(1)

	g.router.DispatchAll()
	g.uiTasks.Advance(dt)

	if g.phase == PhasePlaying {
		g.Player.Update()
		g.Grenades.CollectPickups(g.Player.Position(), parameter.PlayerRadius)
		g.queue.Push(event.GameEvent{
			Type:    event.EventEnemyGoto,
			Payload: &event.PointPayload{Point: g.Player.Position()},
			Frame:   g.frame.Load(),
		})
		g.router.DispatchAll()

		g.Enemies.Tick(dt)
		g.Grenades.Tick(dt)
		g.Shots.Tick(dt)
	}

	g.router.DispatchAll()
	g.statTime.Set(g.clock.Elapsed().Seconds())
	g.statDropped.Store(int64(g.queue.Dropped()))
}

// BeginNewGame resets every subsystem and starts a session
func (g *Game) BeginNewGame() {
	g.uiTasks.Reset()
	g.ended = false
	g.kills = 0
	g.summary = nil

	g.Enemies.Clean()
	g.Grenades.Reset()
	g.Shots.Clear()
	g.Player.Reset()
	g.Enemies.SetDifficulty(g.difficulty)

	g.clock.Reset()
	g.play()

	g.scoreTask = g.uiTasks.Every(parameter.ScorePollInterval, g.pollScore)

	g.log.Info().
		Float64("difficulty", g.Enemies.Difficulty()).
		Float64("speed", g.Player.Speed()).
		Msg("game started")
	g.queue.Push(event.GameEvent{Type: event.EventGameStarted, Frame: g.frame.Load()})
}

// Play resumes a paused session
func (g *Game) Play() {
	if g.phase != PhasePaused {
		return
	}
	g.play()
	g.queue.Push(event.GameEvent{Type: event.EventGameResumed, Frame: g.frame.Load()})
}

func (g *Game) play() {
	if g.ended {
		return
	}
	g.Player.Enable()
	g.Player.Resume()
	g.Enemies.Start()
	g.Grenades.Start()
	g.clock.Resume()
	g.setPhase(PhasePlaying)
}

// Pause suspends an active session; paused time is excluded from the score
func (g *Game) Pause() {
	if g.phase != PhasePlaying {
		return
	}
	g.Player.Pause()
	g.Enemies.Stop()
	g.Grenades.Stop()
	g.clock.Pause()
	g.setPhase(PhasePaused)
	g.queue.Push(event.GameEvent{Type: event.EventGamePaused, Frame: g.frame.Load()})
}

// TogglePause switches between playing and paused
func (g *Game) TogglePause() {
	switch g.phase {
	case PhasePlaying:
		g.Pause()
	case PhasePaused:
		g.Play()
	}
}

// EndGame finishes the session once, stopping enemy activity immediately
// The summary is emitted as EventGameOver after GameOverDelay
// Returns false when the session had already ended
func (g *Game) EndGame() bool {
	if g.ended {
		return false
	}
	g.ended = true

	g.Enemies.Stop()
	g.Enemies.Freeze()
	g.Grenades.Stop()
	g.Player.Disable()
	g.clock.Pause()
	g.pollScore()
	g.setPhase(PhaseOver)

	summary := &event.GameOverPayload{
		UserID:     g.userID,
		Time:       g.clock.Elapsed(),
		Kills:      g.Enemies.KillCount(),
		Difficulty: g.Enemies.Difficulty(),
		Speed:      g.Player.Speed(),
	}
	g.summary = summary
	g.statLongest.Max(summary.Time.Seconds())

	g.log.Info().
		Dur("time", summary.Time).
		Int("kills", summary.Kills).
		Msg("game over")

	g.uiTasks.After(parameter.GameOverDelay, func() {
		g.queue.Push(event.GameEvent{Type: event.EventGameOver, Payload: summary, Frame: g.frame.Load()})
	})
	return true
}

func (g *Game) pollScore() {
	g.kills = g.Enemies.KillCount()
}

func (g *Game) setPhase(p Phase) {
	g.phase = p
	g.statPhase.Store(p.String())
}

// SetDifficulty clamps and stores the difficulty applied at the next new game
func (g *Game) SetDifficulty(d float64) {
	g.difficulty = max(parameter.MinDifficulty, min(parameter.MaxDifficulty, d))
	g.log.Debug().Float64("difficulty", g.difficulty).Msg("difficulty set")
}

// Difficulty returns the difficulty for the next new game
func (g *Game) Difficulty() float64 {
	return g.difficulty
}

// SetUserID tags subsequent summaries with the playing user
func (g *Game) SetUserID(id string) {
	g.userID = id
}

// Phase returns the lifecycle phase
func (g *Game) Phase() Phase {
	return g.phase
}

// Ended reports whether the session has ended
func (g *Game) Ended() bool {
	return g.ended
}

// Elapsed returns session time excluding pauses
func (g *Game) Elapsed() time.Duration {
	return g.clock.Elapsed()
}

// Kills returns the HUD kill count, refreshed every ScorePollInterval
func (g *Game) Kills() int {
	return g.kills
}

// Summary returns the final summary once the session ended
func (g *Game) Summary() (*event.GameOverPayload, bool) {
	return g.summary, g.summary != nil
}

// Frame returns the tick counter
func (g *Game) Frame() int64 {
	return g.frame.Load()
}

// Size returns the play area size in world units
func (g *Game) Size() (float64, float64) {
	return g.opts.Width, g.opts.Height
}
