package event

// EventType represents the type of game event
type EventType int

const (
	// EventNone is the zero value, never emitted
	EventNone EventType = iota

	// === Input Event ===

	// EventMoveKey signals a movement key press or release
	// Trigger: input handler | Consumer: PlayerSystem | Payload: *MoveKeyPayload
	EventMoveKey

	// EventAim signals a new cursor position
	// Trigger: input handler | Consumer: PlayerSystem | Payload: *PointPayload
	EventAim

	// EventFire signals a shoot command at a cursor position
	// Trigger: input handler | Consumer: PlayerSystem | Payload: *PointPayload, nil for the current target
	EventFire

	// EventThrow signals a grenade throw command at a cursor position
	// Trigger: input handler | Consumer: PlayerSystem | Payload: *PointPayload, nil for the current target
	EventThrow

	// EventPauseToggle requests pause or resume
	// Trigger: input handler | Consumer: Game | Payload: nil
	EventPauseToggle

	// EventNewGameRequest requests a fresh session
	// Trigger: input handler, UI | Consumer: Game | Payload: nil
	EventNewGameRequest

	// EventDifficultyChange adjusts difficulty for the next session
	// Trigger: input handler | Consumer: Game | Payload: *DifficultyPayload
	EventDifficultyChange

	// EventTextInput carries a typed rune while the name prompt is open
	// Trigger: input handler | Consumer: UI | Payload: rune
	EventTextInput

	// EventTextErase removes the last rune of the name prompt
	// Trigger: input handler | Consumer: UI | Payload: nil
	EventTextErase

	// EventTextSubmit confirms the name prompt
	// Trigger: input handler | Consumer: UI | Payload: nil
	EventTextSubmit

	// EventQuit requests application exit
	// Trigger: input handler | Consumer: UI | Payload: nil
	EventQuit

	// === Combat Event ===

	// EventShotFired carries the muzzle-to-cursor segment of a shot
	// Trigger: PlayerSystem | Consumer: Game (hit-test), ShotSystem, AudioSystem | Payload: *ShotPayload
	EventShotFired

	// EventEnemyGoto updates the point enemies walk toward
	// Trigger: Game each tick | Consumer: EnemySystem | Payload: *PointPayload
	EventEnemyGoto

	// EventEnemyAttack signals an enemy standing on its goal
	// Trigger: EnemySystem | Consumer: Game | Payload: *AttackPayload
	EventEnemyAttack

	// EventEnemySpawned signals a new enemy
	// Trigger: EnemySystem | Consumer: metrics | Payload: *EnemyPayload
	EventEnemySpawned

	// EventEnemyKilled signals an enemy removal through the kill path
	// Trigger: EnemySystem | Consumer: AudioSystem | Payload: *EnemyPayload
	EventEnemyKilled

	// EventPlayerDamaged signals health loss
	// Trigger: Game | Consumer: AudioSystem | Payload: *HealthPayload
	EventPlayerDamaged

	// EventPlayerDied signals health reaching zero
	// Trigger: Game | Consumer: AudioSystem | Payload: nil
	EventPlayerDied

	// EventGrenadeThrowRequest carries a throw from the player position
	// Trigger: PlayerSystem | Consumer: GrenadeSystem | Payload: *ShotPayload
	EventGrenadeThrowRequest

	// EventGrenadeExploded signals a detonation
	// Trigger: GrenadeSystem | Consumer: AudioSystem | Payload: *ExplosionPayload
	EventGrenadeExploded

	// EventPickupCollected signals a collected grenade pickup
	// Trigger: GrenadeSystem | Consumer: AudioSystem | Payload: *PickupPayload
	EventPickupCollected

	// === Session Event ===

	// EventGameStarted signals a fresh session
	// Trigger: Game | Consumer: UI | Payload: nil
	EventGameStarted

	// EventGamePaused and EventGameResumed mirror the pause state
	// Trigger: Game | Consumer: UI, AudioSystem | Payload: nil
	EventGamePaused
	EventGameResumed

	// EventGameOver carries the final summary, delayed after death
	// Trigger: Game | Consumer: UI | Payload: *GameOverPayload
	EventGameOver

	eventTypeCount
)

var typeNames = [eventTypeCount]string{
	EventNone:                "None",
	EventMoveKey:             "MoveKey",
	EventAim:                 "Aim",
	EventFire:                "Fire",
	EventThrow:               "Throw",
	EventPauseToggle:         "PauseToggle",
	EventNewGameRequest:      "NewGameRequest",
	EventDifficultyChange:    "DifficultyChange",
	EventTextInput:           "TextInput",
	EventTextErase:           "TextErase",
	EventTextSubmit:          "TextSubmit",
	EventQuit:                "Quit",
	EventShotFired:           "ShotFired",
	EventEnemyGoto:           "EnemyGoto",
	EventEnemyAttack:         "EnemyAttack",
	EventEnemySpawned:        "EnemySpawned",
	EventEnemyKilled:         "EnemyKilled",
	EventPlayerDamaged:       "PlayerDamaged",
	EventPlayerDied:          "PlayerDied",
	EventGrenadeThrowRequest: "GrenadeThrowRequest",
	EventGrenadeExploded:     "GrenadeExploded",
	EventPickupCollected:     "PickupCollected",
	EventGameStarted:         "GameStarted",
	EventGamePaused:          "GamePaused",
	EventGameResumed:         "GameResumed",
	EventGameOver:            "GameOver",
}

// String returns the event name for logging
func (t EventType) String() string {
	if t < 0 || t >= eventTypeCount {
		return "Unknown"
	}
	return typeNames[t]
}

// GameEvent is a single message routed between systems
type GameEvent struct {
	Type    EventType
	Payload any
	Frame   int64
}
