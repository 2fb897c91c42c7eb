package render

import (
	"github.com/gdamore/tcell/v2"
)

// Cell is one terminal cell of the compositor
type Cell struct {
	Rune  rune
	Style tcell.Style
}

// Surface receives flushed cells; tcell.Screen satisfies it
type Surface interface {
	SetContent(x, y int, primary rune, combining []rune, style tcell.Style)
	Show()
}
