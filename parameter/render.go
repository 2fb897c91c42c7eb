package parameter

// Terminal layout
const (
	// HUDRows is the number of rows above the play field
	HUDRows = 2

	// GridSpacing places a faint field marker every N cells
	GridSpacing = 8

	// OverlayWidth is the width of centered dialog boxes in cells
	OverlayWidth = 44

	// NameMaxLen bounds the game-over name prompt
	NameMaxLen = 16
)
