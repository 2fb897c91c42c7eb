package render

import (
	"math"

	"github.com/lixenwraith/threat-shooter/parameter"
	"github.com/lixenwraith/threat-shooter/system"
	"github.com/lixenwraith/threat-shooter/user"
	"github.com/lixenwraith/threat-shooter/vmath"
)

// UIState is the menu layer shown on top of the game
type UIState struct {
	Prompting   bool       // Game-over name prompt is open
	Name        string     // Name typed so far
	Leaderboard []user.Row // Nil hides the table
	Message     string     // One-line notice under the HUD
	Muted       bool
}

// RenderContext provides frame state for renderers, passed by value
type RenderContext struct {
	Snap  system.Snapshot
	UI    UIState
	View  Viewport
	Frame int64

	// Screen dimensions (terminal size)
	ScreenWidth  int
	ScreenHeight int
}

// Viewport maps the world rectangle onto the field cells below the HUD
type Viewport struct {
	X, Y       int // Top-left field cell
	Cols, Rows int
	WorldW     float64
	WorldH     float64
}

// NewViewport fits a worldW x worldH area into the screen below the HUD rows
func NewViewport(screenW, screenH int, worldW, worldH float64) Viewport {
	return Viewport{
		X:      0,
		Y:      parameter.HUDRows,
		Cols:   max(1, screenW),
		Rows:   max(1, screenH-parameter.HUDRows),
		WorldW: worldW,
		WorldH: worldH,
	}
}

// ToCell returns the screen cell containing world point p
func (v Viewport) ToCell(p vmath.Vec) (int, int) {
	cx := int(math.Floor(p.X() / v.WorldW * float64(v.Cols)))
	cy := int(math.Floor(p.Y() / v.WorldH * float64(v.Rows)))
	return v.X + cx, v.Y + cy
}

// ToWorld returns the world point at the center of screen cell x,y
func (v Viewport) ToWorld(x, y int) vmath.Vec {
	wx := (float64(x-v.X) + 0.5) * v.WorldW / float64(v.Cols)
	wy := (float64(y-v.Y) + 0.5) * v.WorldH / float64(v.Rows)
	return vmath.V(wx, wy)
}

// Contains reports whether a screen cell lies inside the field
func (v Viewport) Contains(x, y int) bool {
	return x >= v.X && x < v.X+v.Cols && y >= v.Y && y < v.Y+v.Rows
}

// CellsX converts a world distance along x to cells
func (v Viewport) CellsX(d float64) float64 {
	return d * float64(v.Cols) / v.WorldW
}

// CellsY converts a world distance along y to cells
func (v Viewport) CellsY(d float64) float64 {
	return d * float64(v.Rows) / v.WorldH
}
