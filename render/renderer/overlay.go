package renderer

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/threat-shooter/parameter"
	"github.com/lixenwraith/threat-shooter/render"
	"github.com/lixenwraith/threat-shooter/system"
	"github.com/lixenwraith/threat-shooter/user"
)

// OverlayRenderer draws the title, pause, game-over and leaderboard dialogs
type OverlayRenderer struct{}

// NewOverlayRenderer creates an overlay renderer
func NewOverlayRenderer() *OverlayRenderer {
	return &OverlayRenderer{}
}

// Render implements SystemRenderer
func (r *OverlayRenderer) Render(ctx render.RenderContext, buf *render.RenderBuffer) {
	var lines []overlayLine
	switch ctx.Snap.Phase {
	case system.PhaseIdle:
		lines = r.titleLines()
	case system.PhasePaused:
		lines = r.pauseLines()
	case system.PhaseOver:
		lines = r.gameOverLines(ctx)
	}
	if len(lines) == 0 && ctx.UI.Leaderboard == nil {
		return
	}
	lines = append(lines, r.leaderboardLines(ctx.UI.Leaderboard)...)
	r.drawBox(ctx, buf, lines)
}

type overlayLine struct {
	text  string
	alert bool
}

func (r *OverlayRenderer) titleLines() []overlayLine {
	return []overlayLine{
		{text: "THREAT SHOOTER"},
		{},
		{text: "WASD / arrows  move"},
		{text: "mouse / space  shoot"},
		{text: "right click / g  grenade"},
		{text: "+ / -  difficulty   p  pause"},
		{},
		{text: "press N to start"},
	}
}

func (r *OverlayRenderer) pauseLines() []overlayLine {
	return []overlayLine{
		{text: "> PAUSED"},
		{},
		{text: "press P to resume"},
	}
}

func (r *OverlayRenderer) gameOverLines(ctx render.RenderContext) []overlayLine {
	lines := []overlayLine{{text: "> SYSTEM_STATUS: COMPROMISED", alert: true}, {}}
	if s := ctx.Snap.Summary; s != nil {
		lines = append(lines,
			overlayLine{text: fmt.Sprintf("> THREATS_NEUTRALIZED: %d", s.Kills)},
			overlayLine{text: "> SURVIVAL_TIME: " + user.FormatTime(s.Time)},
			overlayLine{text: fmt.Sprintf("> DIFFICULTY: %.1f", s.Difficulty)},
			overlayLine{},
		)
	}
	if ctx.UI.Prompting {
		lines = append(lines,
			overlayLine{text: "ENTER NAME: " + ctx.UI.Name + "_"},
			overlayLine{text: "enter to submit"},
		)
	} else {
		lines = append(lines, overlayLine{text: "press N for a new game, Q to quit"})
	}
	return lines
}

func (r *OverlayRenderer) leaderboardLines(rows []user.Row) []overlayLine {
	if rows == nil {
		return nil
	}
	lines := []overlayLine{{}, {text: formatRow(user.LeaderboardHeader)}}
	for _, row := range rows {
		lines = append(lines, overlayLine{text: formatRow(row)})
	}
	if len(rows) == 0 {
		lines = append(lines, overlayLine{text: "no scores yet"})
	}
	return lines
}

func formatRow(row user.Row) string {
	return fmt.Sprintf("%-4s %-*s %8s %5s", row.Rank, parameter.NameMaxLen, row.Name, row.Time, row.Kills)
}

func (r *OverlayRenderer) drawBox(ctx render.RenderContext, buf *render.RenderBuffer, lines []overlayLine) {
	w := parameter.OverlayWidth
	for _, l := range lines {
		w = max(w, utf8.RuneCountInString(l.text)+4)
	}
	h := len(lines) + 2
	x0 := max(0, (ctx.ScreenWidth-w)/2)
	y0 := max(0, (ctx.ScreenHeight-h)/2)

	bg := render.StyleOn(render.RgbOverlayText, render.RgbOverlayBg)
	buf.Fill(x0, y0, w, h, ' ', bg)

	buf.SetString(x0, y0, "┌"+strings.Repeat("─", w-2)+"┐", bg)
	buf.SetString(x0, y0+h-1, "└"+strings.Repeat("─", w-2)+"┘", bg)
	for y := y0 + 1; y < y0+h-1; y++ {
		buf.Set(x0, y, '│', bg)
		buf.Set(x0+w-1, y, '│', bg)
	}

	alert := render.StyleOn(render.RgbOverlayAlert, render.RgbOverlayBg).Bold(true)
	for i, l := range lines {
		style := bg
		if l.alert {
			style = alert
		}
		drawCentered(buf, x0, y0+1+i, w, l.text, style)
	}
}

func drawCentered(buf *render.RenderBuffer, x0, y, w int, text string, style tcell.Style) {
	n := utf8.RuneCountInString(text)
	buf.SetString(x0+max(1, (w-n)/2), y, text, style)
}
