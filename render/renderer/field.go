package renderer

import (
	"github.com/lixenwraith/threat-shooter/parameter"
	"github.com/lixenwraith/threat-shooter/render"
)

// FieldRenderer draws the play field background and its border markers
type FieldRenderer struct{}

// NewFieldRenderer creates a field renderer
func NewFieldRenderer() *FieldRenderer {
	return &FieldRenderer{}
}

// Render implements SystemRenderer
func (r *FieldRenderer) Render(ctx render.RenderContext, buf *render.RenderBuffer) {
	v := ctx.View
	grid := render.Style(render.RgbGrid)
	for y := v.Y; y < v.Y+v.Rows; y++ {
		for x := v.X; x < v.X+v.Cols; x++ {
			if (x-v.X)%parameter.GridSpacing == 0 && (y-v.Y)%(parameter.GridSpacing/2) == 0 {
				buf.Set(x, y, '·', grid)
			}
		}
	}

	border := render.Style(render.RgbBorder)
	for x := v.X; x < v.X+v.Cols; x++ {
		buf.Set(x, v.Y-1, '─', border)
	}
}
