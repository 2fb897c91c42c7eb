package parameter

import "time"

// Enemy Generator
const (
	// EnemySpawnInterval is the spawn period at difficulty 1, divided by difficulty
	EnemySpawnInterval = 2000 * time.Millisecond

	// EnemyMinSpawnInterval floors the scaled spawn period
	EnemyMinSpawnInterval = 250 * time.Millisecond

	// EnemySpawnMargin is how far outside the play area new enemies appear
	EnemySpawnMargin = 60.0

	// EnemyBaseSpeed is the per-tick step toward the goal at difficulty 1
	EnemyBaseSpeed = 1.5

	// EnemySpeedPerLevel is the fractional speed gain per difficulty level above 1
	EnemySpeedPerLevel = 0.25

	// EnemyBaseHealth is the hit count needed to kill an enemy at difficulty 1
	EnemyBaseHealth = 1

	// EnemyCollisionRadius approximates the enemy body for grenade contact
	EnemyCollisionRadius = 45.0
)

// Difficulty bounds
const (
	MinDifficulty     = 1.0
	MaxDifficulty     = 10.0
	DefaultDifficulty = 1.0

	// DifficultyStep is the in-game +/- adjustment
	DifficultyStep = 0.5
)

// Hit testing
const (
	// AngleEpsilon (E1) is the half-width of the ranged hit cone in radians
	AngleEpsilon = 0.05

	// PositionEpsilon (E2) is the half-size of the contact box around an enemy
	PositionEpsilon = 5.0
)
