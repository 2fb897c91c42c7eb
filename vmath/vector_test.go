package vmath

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStepTowardReachesTarget(t *testing.T) {
	p := V(0, 0)
	target := V(10, 0)

	steps := 0
	reached := false
	for !reached {
		p, reached = StepToward(p, target, 3)
		steps++
	}

	assert.Equal(t, 4, steps, "ceil(10/3) steps")
	assert.Equal(t, target, p)
}

func TestNormalize2DZero(t *testing.T) {
	v, l := Normalize2D(V(0, 0))
	assert.Equal(t, Vec{}, v)
	assert.Zero(t, l)
}

func TestClampToArea(t *testing.T) {
	assert.Equal(t, V(0, 100), ClampToArea(V(-5, 120), 50, 100))
	assert.Equal(t, V(25, 50), ClampToArea(V(25, 50), 50, 100))
}

func TestWithinBoxIsStrict(t *testing.T) {
	c := V(100, 100)
	assert.True(t, WithinBox(c, V(104.9, 95.1), 5))
	assert.False(t, WithinBox(c, V(105, 100), 5))
}

func TestInAngleCone(t *testing.T) {
	origin := V(500, 500)
	aim := V(600, 500)

	assert.True(t, InAngleCone(origin, aim, V(900, 510), 0.05))
	assert.False(t, InAngleCone(origin, aim, V(600, 600), 0.05))

	// Slope mirroring: aiming right-down also hits left-down at the same slope
	assert.True(t, InAngleCone(origin, V(600, 510), V(400, 510), 0.05))
	assert.False(t, InAngleCone(origin, V(600, 510), V(400, 490), 0.05))
}

func TestMirroredSlopeVertical(t *testing.T) {
	origin := V(0, 0)
	assert.InDelta(t, -math.Pi/2, MirroredSlope(origin, V(0, 10)), 1e-12)
	assert.True(t, math.IsNaN(MirroredSlope(origin, origin)))
	assert.False(t, InAngleCone(origin, V(10, 0), origin, 0.05))
}

func TestSegmentCircle(t *testing.T) {
	a, b := V(0, 0), V(100, 0)
	assert.True(t, SegmentCircle(a, b, V(50, 10), 15))
	assert.False(t, SegmentCircle(a, b, V(50, 20), 15))
	assert.False(t, SegmentCircle(a, b, V(130, 0), 15))
	assert.True(t, SegmentCircle(a, a, V(5, 0), 6))
}

func TestRotateDegreesWraps(t *testing.T) {
	assert.Equal(t, 2.0, RotateDegrees(357, 5))
	assert.Equal(t, 355.0, RotateDegrees(0, -5))
}
