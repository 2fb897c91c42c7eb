package renderer

import (
	"github.com/lixenwraith/threat-shooter/render"
	"github.com/lixenwraith/threat-shooter/status"
)

// RegisterAll installs the game renderers in draw order and returns the debug overlay for toggling
func RegisterAll(o *render.RenderOrchestrator, reg *status.Registry) *DebugRenderer {
	debug := NewDebugRenderer(reg)

	o.Register(NewFieldRenderer(), render.PriorityBackground)
	o.Register(NewPickupRenderer(), render.PriorityPickup)
	o.Register(NewEntityRenderer(), render.PriorityEntities)
	o.Register(NewShotRenderer(), render.PriorityEffects)
	o.Register(NewExplosionRenderer(), render.PriorityEffects)
	o.Register(NewHUDRenderer(), render.PriorityUI)
	o.Register(NewOverlayRenderer(), render.PriorityOverlay)
	o.Register(debug, render.PriorityDebug)

	return debug
}
