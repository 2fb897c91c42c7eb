package render

import "slices"

type layer struct {
	renderer SystemRenderer
	priority RenderPriority
}

// RenderOrchestrator owns the cell buffer and draws registered layers into it each frame
type RenderOrchestrator struct {
	surface Surface
	buffer  *RenderBuffer
	layers  []layer
}

// NewRenderOrchestrator creates an orchestrator flushing a width x height buffer to surface
func NewRenderOrchestrator(surface Surface, width, height int) *RenderOrchestrator {
	return &RenderOrchestrator{
		surface: surface,
		buffer:  NewRenderBuffer(width, height),
	}
}

// Register adds a layer; equal priorities draw in registration order
func (o *RenderOrchestrator) Register(r SystemRenderer, priority RenderPriority) {
	pos := slices.IndexFunc(o.layers, func(l layer) bool { return l.priority > priority })
	if pos < 0 {
		pos = len(o.layers)
	}
	o.layers = slices.Insert(o.layers, pos, layer{renderer: r, priority: priority})
}

// Resize reallocates the buffer for a new screen size
func (o *RenderOrchestrator) Resize(width, height int) {
	o.buffer.Resize(width, height)
}

// Size returns the buffer dimensions in cells
func (o *RenderOrchestrator) Size() (int, int) {
	return o.buffer.Size()
}

// RenderFrame clears the buffer, draws every visible layer and flushes to the surface
// Returns the number of layers drawn
func (o *RenderOrchestrator) RenderFrame(ctx RenderContext) int {
	o.buffer.Clear()

	drawn := 0
	for _, l := range o.layers {
		if vt, ok := l.renderer.(VisibilityToggle); ok && !vt.IsVisible() {
			continue
		}
		l.renderer.Render(ctx, o.buffer)
		drawn++
	}

	o.buffer.FlushTo(o.surface)
	return drawn
}
