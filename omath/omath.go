package omath

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// parallelEpsilon is the relative threshold under which two segments are considered parallel.
const parallelEpsilon = 1e-12

// ClampFloat clamps num to the range [min, max].
func ClampFloat(num, min, max float64) float64 {
	if num < min {
		return min
	}
	return math.Min(num, max)
}

// cross returns the z component of the 3D cross product of a and b.
func cross(a, b mgl64.Vec2) float64 {
	return a.X()*b.Y() - a.Y()*b.X()
}

// SegmentIntersect returns the point where segment a1-a2 crosses segment b1-b2. Both segments must be
// crossed within their own extent; parallel, collinear and degenerate segments never intersect.
// The result does not depend on the order the segments are passed in.
func SegmentIntersect(a1, a2, b1, b2 mgl64.Vec2) (mgl64.Vec2, bool) {
	p, _, _, ok := SegmentIntersectParams(a1, a2, b1, b2)
	return p, ok
}

// SegmentIntersectParams works like SegmentIntersect, but also returns the parameters t and u of the
// intersection along a1-a2 and b1-b2 respectively, both in [0, 1].
func SegmentIntersectParams(a1, a2, b1, b2 mgl64.Vec2) (p mgl64.Vec2, t, u float64, ok bool) {
	r, s := a2.Sub(a1), b2.Sub(b1)
	denom := cross(r, s)
	if math.Abs(denom) <= parallelEpsilon*r.Len()*s.Len() {
		return mgl64.Vec2{}, 0, 0, false
	}

	q := b1.Sub(a1)
	t = cross(q, s) / denom
	u = cross(q, r) / denom
	if math.IsNaN(t) || math.IsNaN(u) || t < 0 || t > 1 || u < 0 || u > 1 {
		return mgl64.Vec2{}, 0, 0, false
	}

	// Both parametric points describe the same crossing. Averaging them keeps the result identical
	// when the segments are swapped, since floating point addition is commutative.
	pa := a1.Add(r.Mul(t))
	pb := b1.Add(s.Mul(u))
	return mgl64.Vec2{(pa.X() + pb.X()) / 2, (pa.Y() + pb.Y()) / 2}, t, u, true
}

// InverseSquareFalloff returns peak divided by the squared distance between a and b, capped at peak.
// Points that coincide receive the full peak.
func InverseSquareFalloff(a, b mgl64.Vec2, peak float64) float64 {
	d := a.Sub(b)
	distSqr := d.Dot(d)
	if distSqr == 0 {
		return peak
	}
	return math.Min(peak, peak/distSqr)
}

// CollinearMeet handles the head-on case SegmentIntersect leaves out: two collinear segments running
// in opposite directions. If their extents overlap it returns the middle of the overlap along with its
// parameters t and u along a1-a2 and b1-b2.
func CollinearMeet(a1, a2, b1, b2 mgl64.Vec2) (p mgl64.Vec2, t, u float64, ok bool) {
	r, s := a2.Sub(a1), b2.Sub(b1)
	rr, ss := r.Dot(r), s.Dot(s)
	if rr == 0 || ss == 0 || r.Dot(s) >= 0 {
		return mgl64.Vec2{}, 0, 0, false
	}
	q := b1.Sub(a1)
	if math.Abs(cross(r, s)) > parallelEpsilon*r.Len()*s.Len() || math.Abs(cross(q, r)) > parallelEpsilon*q.Len()*r.Len() {
		return mgl64.Vec2{}, 0, 0, false
	}

	// Project b onto a and overlap it with a's own extent.
	tb1, tb2 := q.Dot(r)/rr, b2.Sub(a1).Dot(r)/rr
	lo, hi := math.Max(0, math.Min(tb1, tb2)), math.Min(1, math.Max(tb1, tb2))
	if lo > hi {
		return mgl64.Vec2{}, 0, 0, false
	}
	t = (lo + hi) / 2
	p = a1.Add(r.Mul(t))
	u = clamp01(p.Sub(b1).Dot(s) / ss)
	return p, t, u, true
}

func clamp01(v float64) float64 {
	return ClampFloat(v, 0, 1)
}
