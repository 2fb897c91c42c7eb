package vmath

import "math"

// MirroredSlope returns the atan-of-slope angle of p relative to origin, negated on the right half-plane
// Vertical alignment divides by zero: ±Inf maps to ∓π/2, 0/0 yields NaN which never compares equal
func MirroredSlope(origin, p Vec) float64 {
	a := math.Atan((p.Y() - origin.Y()) / (p.X() - origin.X()))
	if p.X() >= origin.X() {
		a = -a
	}
	return a
}

// InAngleCone reports whether target lies in the cone from origin through aim, half-width eps
// Matches by slope angle, so the cone is mirrored across the vertical through origin and widens with range
func InAngleCone(origin, aim, target Vec, eps float64) bool {
	angle := MirroredSlope(origin, aim)
	a := MirroredSlope(origin, target)
	return angle-eps < a && a < angle+eps
}

// SegmentCircle reports whether segment ab intersects the circle (c, r)
func SegmentCircle(a, b, c Vec, r float64) bool {
	ab := b.Sub(a)
	l2 := ab.Dot(ab)
	if l2 == 0 {
		return Distance(a, c) <= r
	}
	t := c.Sub(a).Dot(ab) / l2
	t = math.Max(0, math.Min(1, t))
	closest := a.Add(ab.Mul(t))
	return Distance(closest, c) <= r
}

// CirclesOverlap reports whether two circles strictly overlap
func CirclesOverlap(a Vec, ra float64, b Vec, rb float64) bool {
	return Distance(a, b) < ra+rb
}
