package render

// RenderPriority orders layers within a frame, lowest drawn first
type RenderPriority int

const (
	PriorityBackground RenderPriority = iota // Play field grid and border
	PriorityPickup
	PriorityEntities // Enemies, grenades, player
	PriorityEffects  // Shot traces and blasts
	PriorityUI
	PriorityOverlay
	PriorityDebug
)

// SystemRenderer draws one layer of the frame from the snapshot in ctx
type SystemRenderer interface {
	Render(ctx RenderContext, buf *RenderBuffer)
}

// VisibilityToggle lets a layer hide itself without being unregistered
type VisibilityToggle interface {
	IsVisible() bool
}
