package omath

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// angleEpsilon widens the cone edge slightly so that points exactly on it are inside regardless of
// rounding in atan2.
const angleEpsilon = 1e-9

// NormalizeAngle wraps an angle in radians into [-π, π].
func NormalizeAngle(a float64) float64 {
	return math.Remainder(a, 2*math.Pi)
}

// AngleDiff returns the signed smallest difference b - a in radians, in [-π, π].
func AngleDiff(a, b float64) float64 {
	return NormalizeAngle(b - a)
}

// Direction returns the unit vector pointing along heading.
func Direction(heading float64) mgl64.Vec2 {
	return mgl64.Vec2{math.Cos(heading), math.Sin(heading)}
}

// Heading returns the angle of the vector from origin to target. It returns 0 when both are equal.
func Heading(origin, target mgl64.Vec2) float64 {
	d := target.Sub(origin)
	return math.Atan2(d.Y(), d.X())
}

// IsInAngle returns true if point lies within ±width/2 radians of heading, as seen from origin. The
// edge of the cone is inclusive and the comparison wraps around ±π. A point at the origin itself is
// always inside.
func IsInAngle(origin mgl64.Vec2, heading, width float64, point mgl64.Vec2) bool {
	if width >= 2*math.Pi || point == origin {
		return true
	}
	if width < 0 {
		return false
	}
	return math.Abs(AngleDiff(heading, Heading(origin, point))) <= width/2+angleEpsilon
}
