package game

import (
	"github.com/go-gl/mathgl/mgl64"
	"github.com/oomph-ac/robobattle/omath"
)

// Border identifies one of the four walls enclosing the arena.
type Border uint8

const (
	BorderLeft Border = iota
	BorderTop
	BorderRight
	BorderBottom
)

// Borders lists every wall in the order collisions are checked against them.
var Borders = [4]Border{BorderLeft, BorderTop, BorderRight, BorderBottom}

// String returns the name of the border as reported to controllers.
func (b Border) String() string {
	switch b {
	case BorderLeft:
		return "left"
	case BorderTop:
		return "top"
	case BorderRight:
		return "right"
	case BorderBottom:
		return "bottom"
	}
	return "unknown"
}

// InwardNormal returns the unit vector pointing from the border into the arena.
func (b Border) InwardNormal() mgl64.Vec2 {
	switch b {
	case BorderLeft:
		return mgl64.Vec2{1, 0}
	case BorderTop:
		return mgl64.Vec2{0, -1}
	case BorderRight:
		return mgl64.Vec2{-1, 0}
	default:
		return mgl64.Vec2{0, 1}
	}
}

// Segment is a straight line between two points.
type Segment struct {
	Start, End mgl64.Vec2
}

// Arena is the rectangle [0, Width] x [0, Height] that robots fight in. The y axis points up, so the top
// border lies at y = Height.
type Arena struct {
	Width, Height float64
}

// Segment returns the wall segment for the border passed.
func (a Arena) Segment(b Border) Segment {
	switch b {
	case BorderLeft:
		return Segment{mgl64.Vec2{0, 0}, mgl64.Vec2{0, a.Height}}
	case BorderTop:
		return Segment{mgl64.Vec2{0, a.Height}, mgl64.Vec2{a.Width, a.Height}}
	case BorderRight:
		return Segment{mgl64.Vec2{a.Width, a.Height}, mgl64.Vec2{a.Width, 0}}
	default:
		return Segment{mgl64.Vec2{a.Width, 0}, mgl64.Vec2{0, 0}}
	}
}

// Contains returns true if p lies inside the arena or on one of its borders.
func (a Arena) Contains(p mgl64.Vec2) bool {
	return p.X() >= 0 && p.X() <= a.Width && p.Y() >= 0 && p.Y() <= a.Height
}

// Clamp returns p moved onto the closest point inside the arena.
func (a Arena) Clamp(p mgl64.Vec2) mgl64.Vec2 {
	return mgl64.Vec2{omath.ClampFloat(p.X(), 0, a.Width), omath.ClampFloat(p.Y(), 0, a.Height)}
}
