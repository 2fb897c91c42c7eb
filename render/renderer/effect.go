package renderer

import (
	"math"

	"github.com/lixenwraith/threat-shooter/render"
)

// ShotRenderer draws live shot segments as lines from muzzle to target
type ShotRenderer struct{}

func NewShotRenderer() *ShotRenderer {
	return &ShotRenderer{}
}

func (r *ShotRenderer) Render(ctx render.RenderContext, buf *render.RenderBuffer) {
	style := render.Style(render.RgbShot)
	for _, s := range ctx.Snap.Shots {
		x0, y0 := ctx.View.ToCell(s.From)
		x1, y1 := ctx.View.ToCell(s.To)
		buf.Line(x0, y0, x1, y1, '·', style)
		buf.Set(x1, y1, '*', style.Bold(true))
	}
}

// ExplosionRenderer draws expanding blast rings fading from hot to cool
type ExplosionRenderer struct{}

func NewExplosionRenderer() *ExplosionRenderer {
	return &ExplosionRenderer{}
}

func (r *ExplosionRenderer) Render(ctx render.RenderContext, buf *render.RenderBuffer) {
	for _, e := range ctx.Snap.Explosions {
		t := e.Progress()
		style := render.Style(render.LerpColor(render.RgbExplosionHot, render.RgbExplosionCool, t))
		cx, cy := ctx.View.ToCell(e.Pos)
		rx := ctx.View.CellsX(e.Radius())
		ry := ctx.View.CellsY(e.Radius())

		buf.Set(cx, cy, '✶', style.Bold(true))
		if rx < 0.5 && ry < 0.5 {
			continue
		}
		steps := max(12, int(2*math.Pi*max(rx, ry)))
		for i := range steps {
			a := 2 * math.Pi * float64(i) / float64(steps)
			x := cx + int(math.Round(rx*math.Cos(a)))
			y := cy + int(math.Round(ry*math.Sin(a)))
			if ctx.View.Contains(x, y) {
				buf.Set(x, y, '*', style)
			}
		}
	}
}
