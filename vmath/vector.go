// Package vmath holds the float 2D geometry used by the simulation
// Positions are mgl64.Vec2 in world units, +Y pointing down
package vmath

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// Vec is the world-space point/vector type
type Vec = mgl64.Vec2

// V builds a Vec
func V(x, y float64) Vec {
	return Vec{x, y}
}

// Distance returns the Euclidean distance between a and b
func Distance(a, b Vec) float64 {
	return b.Sub(a).Len()
}

// Normalize2D returns the unit vector and the original length, zero-safe
func Normalize2D(v Vec) (Vec, float64) {
	l := v.Len()
	if l == 0 {
		return Vec{}, 0
	}
	return v.Mul(1 / l), l
}

// StepToward moves from toward to by at most step
// Returns the new position and whether the target was reached
func StepToward(from, to Vec, step float64) (Vec, bool) {
	dir, dist := Normalize2D(to.Sub(from))
	if dist <= step {
		return to, true
	}
	return from.Add(dir.Mul(step)), false
}

// ClampToArea clamps p into [0,w]x[0,h]
func ClampToArea(p Vec, w, h float64) Vec {
	return Vec{mgl64.Clamp(p.X(), 0, w), mgl64.Clamp(p.Y(), 0, h)}
}

// WithinBox reports whether p lies strictly inside the square of half-size eps centered on c
func WithinBox(c, p Vec, eps float64) bool {
	return c.X()-eps < p.X() && p.X() < c.X()+eps &&
		c.Y()-eps < p.Y() && p.Y() < c.Y()+eps
}

// RotateDegrees adds deg to angle (degrees) and wraps into [0,360)
func RotateDegrees(angle, deg float64) float64 {
	a := math.Mod(angle+deg, 360)
	if a < 0 {
		a += 360
	}
	return a
}
