package render

import (
	"github.com/gdamore/tcell/v2"
)

// Palette
var (
	RgbBackground = tcell.NewRGBColor(16, 18, 24)
	RgbGrid       = tcell.NewRGBColor(40, 44, 56)
	RgbBorder     = tcell.NewRGBColor(70, 76, 96)

	RgbPlayer    = tcell.NewRGBColor(80, 220, 255)
	RgbPlayerAim = tcell.NewRGBColor(40, 120, 150)
	RgbEnemy     = tcell.NewRGBColor(255, 70, 70)
	RgbEnemyHurt = tcell.NewRGBColor(255, 160, 90)
	RgbGrenade   = tcell.NewRGBColor(170, 220, 90)
	RgbPickup    = tcell.NewRGBColor(120, 255, 120)
	RgbShot      = tcell.NewRGBColor(255, 240, 120)

	RgbExplosionHot  = tcell.NewRGBColor(255, 220, 80)
	RgbExplosionCool = tcell.NewRGBColor(160, 40, 20)

	RgbHeartFull  = tcell.NewRGBColor(230, 40, 60)
	RgbHeartEmpty = tcell.NewRGBColor(70, 40, 45)
	RgbHUDLabel   = tcell.NewRGBColor(0, 200, 120)
	RgbHUDValue   = tcell.NewRGBColor(230, 230, 230)
	RgbHUDDim     = tcell.NewRGBColor(120, 120, 130)

	RgbOverlayBg    = tcell.NewRGBColor(10, 12, 16)
	RgbOverlayText  = tcell.NewRGBColor(0, 255, 140)
	RgbOverlayAlert = tcell.NewRGBColor(255, 60, 60)
)

// Style returns a foreground style over the default background
func Style(fg tcell.Color) tcell.Style {
	return tcell.StyleDefault.Foreground(fg).Background(RgbBackground)
}

// StyleOn returns a style with explicit foreground and background
func StyleOn(fg, bg tcell.Color) tcell.Style {
	return tcell.StyleDefault.Foreground(fg).Background(bg)
}

// LerpColor blends two RGB colors, t in [0,1]
func LerpColor(a, b tcell.Color, t float64) tcell.Color {
	t = max(0, min(1, t))
	ar, ag, ab := a.RGB()
	br, bg, bb := b.RGB()
	mix := func(x, y int32) int32 {
		return x + int32(float64(y-x)*t)
	}
	return tcell.NewRGBColor(mix(ar, br), mix(ag, bg), mix(ab, bb))
}
