package parameter

import "time"

// Session orchestration
const (
	// DefaultWorldWidth and DefaultWorldHeight define the play area in world units
	DefaultWorldWidth  = 1920.0
	DefaultWorldHeight = 1080.0

	// GameOverDelay separates the death from the game-over summary
	GameOverDelay = 500 * time.Millisecond

	// ScorePollInterval is the HUD kill counter refresh period
	ScorePollInterval = 100 * time.Millisecond

	// ShotEffectDuration is how long a rendered shot stays visible
	ShotEffectDuration = 120 * time.Millisecond
)

// Leaderboard
const (
	DefaultPlayerName = "Player"
	LeaderboardLimit  = 10
)
