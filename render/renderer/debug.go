package renderer

import (
	"fmt"
	"slices"
	"sync/atomic"

	"github.com/lixenwraith/threat-shooter/render"
	"github.com/lixenwraith/threat-shooter/status"
)

// DebugRenderer lists the status registry in the bottom-right corner, hidden by default
type DebugRenderer struct {
	reg     *status.Registry
	visible atomic.Bool
}

// NewDebugRenderer creates a hidden debug overlay
func NewDebugRenderer(reg *status.Registry) *DebugRenderer {
	return &DebugRenderer{reg: reg}
}

// Toggle flips visibility, returns the new state
func (r *DebugRenderer) Toggle() bool {
	for {
		v := r.visible.Load()
		if r.visible.CompareAndSwap(v, !v) {
			return !v
		}
	}
}

// IsVisible implements VisibilityToggle
func (r *DebugRenderer) IsVisible() bool {
	return r.visible.Load()
}

// Render implements SystemRenderer
func (r *DebugRenderer) Render(ctx render.RenderContext, buf *render.RenderBuffer) {
	snap := r.reg.Snapshot()
	keys := make([]string, 0, len(snap))
	for k := range snap {
		keys = append(keys, k)
	}
	slices.Sort(keys)

	lines := make([]string, len(keys))
	width := 0
	for i, k := range keys {
		lines[i] = fmt.Sprintf("%s=%v", k, snap[k])
		width = max(width, len(lines[i]))
	}

	style := render.StyleOn(render.RgbHUDDim, render.RgbOverlayBg)
	x := max(0, ctx.ScreenWidth-width-1)
	y := max(0, ctx.ScreenHeight-len(lines))
	for i, l := range lines {
		buf.Fill(x, y+i, width+1, 1, ' ', style)
		buf.SetString(x, y+i, l, style)
	}
}
