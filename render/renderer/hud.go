package renderer

import (
	"fmt"
	"strconv"

	"github.com/lixenwraith/threat-shooter/parameter"
	"github.com/lixenwraith/threat-shooter/render"
	"github.com/lixenwraith/threat-shooter/user"
)

// HUDRenderer draws health hearts, kill count, grenades, time and difficulty above the field
type HUDRenderer struct{}

// NewHUDRenderer creates a HUD renderer
func NewHUDRenderer() *HUDRenderer {
	return &HUDRenderer{}
}

// Render implements SystemRenderer
func (r *HUDRenderer) Render(ctx render.RenderContext, buf *render.RenderBuffer) {
	if parameter.HUDRows < 2 || ctx.ScreenHeight < 2 {
		return
	}
	snap := ctx.Snap
	label := render.Style(render.RgbHUDLabel).Bold(true)
	value := render.Style(render.RgbHUDValue)
	dim := render.Style(render.RgbHUDDim)

	// Row 0: health
	x := buf.SetString(0, 0, "> AGENT_HP ", label)
	full := render.Style(render.RgbHeartFull)
	empty := render.Style(render.RgbHeartEmpty)
	total := parameter.PlayerMaxHealth / parameter.HealthPerHeart
	for i := range total {
		switch {
		case i < snap.Hearts:
			buf.Set(x+i, 0, '♥', full)
		case i == snap.Hearts && snap.HalfHeart:
			buf.Set(x+i, 0, '♡', full)
		default:
			buf.Set(x+i, 0, '♡', empty)
		}
	}
	x += total + 1
	x += buf.SetString(x, 0, strconv.Itoa(snap.Health), value)

	if ctx.UI.Muted {
		buf.SetString(ctx.ScreenWidth-7, 0, "[MUTED]", dim)
	}

	// Row 1: score line
	x = buf.SetString(0, 1, "> THREAT_ELIMINATED ", label)
	x += buf.SetString(x, 1, strconv.Itoa(snap.Kills), value)
	x += 3
	x += buf.SetString(x, 1, "GRENADES ", label)
	x += buf.SetString(x, 1, strconv.Itoa(snap.GrenadeCount), value)
	x += 3
	x += buf.SetString(x, 1, "TIME ", label)
	x += buf.SetString(x, 1, user.FormatTime(snap.Elapsed), value)
	x += 3
	x += buf.SetString(x, 1, "DIFFICULTY ", label)
	x += buf.SetString(x, 1, fmt.Sprintf("%.1f", snap.Difficulty), value)
	if snap.Next != snap.Difficulty {
		x += buf.SetString(x, 1, fmt.Sprintf(" (next %.1f)", snap.Next), dim)
	}

	if ctx.UI.Message != "" {
		buf.SetString(x+3, 1, ctx.UI.Message, dim)
	}
}
