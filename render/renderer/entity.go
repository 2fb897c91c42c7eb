package renderer

import (
	"math"

	"github.com/lixenwraith/threat-shooter/event"
	"github.com/lixenwraith/threat-shooter/render"
	"github.com/lixenwraith/threat-shooter/system"
)

var facingGlyph = [event.DirCount]rune{
	event.DirUp:    '▲',
	event.DirDown:  '▼',
	event.DirLeft:  '◀',
	event.DirRight: '▶',
}

var spinGlyph = [...]rune{'|', '/', '-', '\\'}

// PickupRenderer draws grenade pickups lying on the field
type PickupRenderer struct{}

func NewPickupRenderer() *PickupRenderer {
	return &PickupRenderer{}
}

func (r *PickupRenderer) Render(ctx render.RenderContext, buf *render.RenderBuffer) {
	style := render.Style(render.RgbPickup)
	for _, p := range ctx.Snap.Pickups {
		x, y := ctx.View.ToCell(p.Pos)
		if ctx.View.Contains(x, y) {
			buf.Set(x, y, '◆', style)
		}
	}
}

// EntityRenderer draws enemies, grenades in flight and the player
type EntityRenderer struct{}

func NewEntityRenderer() *EntityRenderer {
	return &EntityRenderer{}
}

func (r *EntityRenderer) Render(ctx render.RenderContext, buf *render.RenderBuffer) {
	r.renderEnemies(ctx, buf)
	r.renderGrenades(ctx, buf)
	r.renderPlayer(ctx, buf)
}

func (r *EntityRenderer) renderEnemies(ctx render.RenderContext, buf *render.RenderBuffer) {
	full := render.Style(render.RgbEnemy).Bold(true)
	hurt := render.Style(render.RgbEnemyHurt).Bold(true)
	for _, e := range ctx.Snap.Enemies {
		x, y := ctx.View.ToCell(e.Pos)
		if !ctx.View.Contains(x, y) {
			continue
		}
		style := full
		if e.Health == 1 {
			style = hurt
		}
		buf.Set(x, y, 'Ж', style)
	}
}

func (r *EntityRenderer) renderGrenades(ctx render.RenderContext, buf *render.RenderBuffer) {
	style := render.Style(render.RgbGrenade)
	for _, g := range ctx.Snap.Grenades {
		x, y := ctx.View.ToCell(g.Pos)
		if !ctx.View.Contains(x, y) {
			continue
		}
		idx := int(math.Floor(g.Rotation/45)) % len(spinGlyph)
		buf.Set(x, y, spinGlyph[max(0, idx)], style)
	}
}

func (r *EntityRenderer) renderPlayer(ctx render.RenderContext, buf *render.RenderBuffer) {
	snap := ctx.Snap
	if snap.Phase == system.PhaseIdle {
		return
	}
	px, py := ctx.View.ToCell(snap.PlayerPos)

	// Aim marker two cells out along the cursor bearing
	aim := render.Style(render.RgbPlayerAim)
	ax := px + int(math.Round(2*math.Cos(snap.AimAngle)))
	ay := py + int(math.Round(math.Sin(snap.AimAngle)))
	if (ax != px || ay != py) && ctx.View.Contains(ax, ay) {
		buf.Set(ax, ay, '+', aim)
	}

	style := render.Style(render.RgbPlayer).Bold(true)
	if snap.PlayerState == system.PlayerDead {
		buf.Set(px, py, 'x', render.Style(render.RgbOverlayAlert).Bold(true))
		return
	}
	buf.Set(px, py, '@', style)

	if snap.Facing >= 0 && snap.Facing < event.DirCount {
		fx, fy := px, py
		switch snap.Facing {
		case event.DirUp:
			fy--
		case event.DirDown:
			fy++
		case event.DirLeft:
			fx--
		case event.DirRight:
			fx++
		}
		if ctx.View.Contains(fx, fy) {
			buf.Set(fx, fy, facingGlyph[snap.Facing], render.Style(render.RgbPlayerAim))
		}
	}
}
