package parameter

// Player
const (
	// PlayerMaxHealth is the full health; each heart on the HUD is 2 units
	PlayerMaxHealth = 50

	// HealthPerHeart is the health represented by one HUD heart
	HealthPerHeart = 2

	// ContactDamage is the health lost per enemy attack tick
	ContactDamage = 1

	DefaultPlayerSpeed = 4.0
	MinPlayerSpeed     = 1.0
	MaxPlayerSpeed     = 12.0

	// PlayerRadius is used for pickup collection
	PlayerRadius = 30.0

	// Sprite frame size; the muzzle sits just outside half the frame
	PlayerFrameWidth  = 111.0
	PlayerFrameHeight = 112.0
	MuzzleFactor      = 0.52

	// FacingReach places the default target ahead of the player when no cursor was seen
	FacingReach = 300.0

	// KeyHoldTicks keeps a direction held after a press when no release event arrives
	// Terminal key auto-repeat refreshes it
	KeyHoldTicks = 8
)
