package omath

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
)

func TestSegmentIntersect(t *testing.T) {
	tests := []struct {
		name           string
		a1, a2, b1, b2 mgl64.Vec2
		want           mgl64.Vec2
		ok             bool
	}{
		{"cross", mgl64.Vec2{0, 0}, mgl64.Vec2{10, 10}, mgl64.Vec2{0, 10}, mgl64.Vec2{10, 0}, mgl64.Vec2{5, 5}, true},
		{"touching endpoint", mgl64.Vec2{5, 5}, mgl64.Vec2{0, 5}, mgl64.Vec2{0, 0}, mgl64.Vec2{0, 10}, mgl64.Vec2{0, 5}, true},
		{"short of crossing", mgl64.Vec2{0, 0}, mgl64.Vec2{4, 4}, mgl64.Vec2{0, 10}, mgl64.Vec2{10, 0}, mgl64.Vec2{}, false},
		{"parallel", mgl64.Vec2{0, 0}, mgl64.Vec2{10, 0}, mgl64.Vec2{0, 1}, mgl64.Vec2{10, 1}, mgl64.Vec2{}, false},
		{"collinear overlap", mgl64.Vec2{0, 0}, mgl64.Vec2{10, 0}, mgl64.Vec2{5, 0}, mgl64.Vec2{15, 0}, mgl64.Vec2{}, false},
		{"degenerate", mgl64.Vec2{3, 3}, mgl64.Vec2{3, 3}, mgl64.Vec2{0, 0}, mgl64.Vec2{10, 10}, mgl64.Vec2{}, false},
		{"nearly parallel", mgl64.Vec2{0, 0}, mgl64.Vec2{1e6, 0}, mgl64.Vec2{0, 1}, mgl64.Vec2{1e6, 1 + 1e-10}, mgl64.Vec2{}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, ok := SegmentIntersect(tt.a1, tt.a2, tt.b1, tt.b2)
			if ok != tt.ok {
				t.Fatalf("ok = %v, want %v (point %v)", ok, tt.ok, p)
			}
			if ok && !p.ApproxEqualThreshold(tt.want, 1e-9) {
				t.Fatalf("point = %v, want %v", p, tt.want)
			}
			if math.IsNaN(p.X()) || math.IsInf(p.X(), 0) || math.IsNaN(p.Y()) || math.IsInf(p.Y(), 0) {
				t.Fatalf("point must be finite, got %v", p)
			}
		})
	}
}

func TestSegmentIntersectSymmetric(t *testing.T) {
	segments := [][2]mgl64.Vec2{
		{{0, 0}, {10, 0}},
		{{20, 0}, {10, 0.0001}},
		{{0.1, -3}, {7.3, 9.9}},
		{{1.0 / 3.0, 2}, {5, -1.0 / 7.0}},
		{{5, 5}, {-2, 5}},
		{{0, 0}, {0, 10}},
	}
	for i, a := range segments {
		for j, b := range segments {
			if i == j {
				continue
			}
			p1, ok1 := SegmentIntersect(a[0], a[1], b[0], b[1])
			p2, ok2 := SegmentIntersect(b[0], b[1], a[0], a[1])
			if ok1 != ok2 || p1 != p2 {
				t.Fatalf("segments %d and %d: (%v, %v) != (%v, %v)", i, j, p1, ok1, p2, ok2)
			}
		}
	}
}

func TestSegmentIntersectParams(t *testing.T) {
	_, ta, ub, ok := SegmentIntersectParams(mgl64.Vec2{0, 0}, mgl64.Vec2{10, 0}, mgl64.Vec2{2, -1}, mgl64.Vec2{2, 3})
	if !ok {
		t.Fatalf("expected intersection")
	}
	if math.Abs(ta-0.2) > 1e-12 || math.Abs(ub-0.25) > 1e-12 {
		t.Fatalf("params = (%f, %f), want (0.2, 0.25)", ta, ub)
	}
}

func TestIsInAngle(t *testing.T) {
	origin := mgl64.Vec2{0, 0}
	tests := []struct {
		name    string
		heading float64
		width   float64
		point   mgl64.Vec2
		want    bool
	}{
		{"ahead", 0, math.Pi / 4, mgl64.Vec2{10, 0}, true},
		{"behind", 0, math.Pi / 4, mgl64.Vec2{-10, 0}, false},
		{"just inside", 0, math.Pi / 2, mgl64.Vec2{10, 9.9}, true},
		{"on edge", 0, math.Pi / 2, mgl64.Vec2{10, 10}, true},
		{"just outside", 0, math.Pi / 2, mgl64.Vec2{10, 10.1}, false},
		{"straddles pi from above", math.Pi, math.Pi / 4, mgl64.Vec2{-10, -1}, true},
		{"straddles pi from below", -math.Pi, math.Pi / 4, mgl64.Vec2{-10, 1}, true},
		{"unnormalized heading", 4 * math.Pi, math.Pi / 4, mgl64.Vec2{10, 1}, true},
		{"negative unnormalized heading", -3 * math.Pi, math.Pi / 4, mgl64.Vec2{-10, 0}, true},
		{"full circle", 1, 2 * math.Pi, mgl64.Vec2{-3, -3}, true},
		{"point blank", 2, 0.1, mgl64.Vec2{0, 0}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsInAngle(origin, tt.heading, tt.width, tt.point); got != tt.want {
				t.Fatalf("IsInAngle = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestIsInAngleEdgeStableAcrossWrap(t *testing.T) {
	width := math.Pi / 3
	for _, heading := range []float64{0, math.Pi / 2, math.Pi, -math.Pi, 3 * math.Pi / 4, -5 * math.Pi / 6} {
		for _, side := range []float64{-1, 1} {
			edge := heading + side*width/2
			p := Direction(edge).Mul(25)
			if !IsInAngle(mgl64.Vec2{}, heading, width, p) {
				t.Fatalf("edge point for heading %f side %f must be inside", heading, side)
			}
			outside := Direction(edge + side*1e-6).Mul(25)
			if IsInAngle(mgl64.Vec2{}, heading, width, outside) {
				t.Fatalf("point past edge for heading %f side %f must be outside", heading, side)
			}
		}
	}
}

func TestInverseSquareFalloff(t *testing.T) {
	a := mgl64.Vec2{3, 4}
	if got := InverseSquareFalloff(a, a, 50); got != 50 {
		t.Fatalf("point blank = %f, want 50", got)
	}
	if got := InverseSquareFalloff(mgl64.Vec2{0, 0}, mgl64.Vec2{0, 0.5}, 50); got != 50 {
		t.Fatalf("close range must be capped at peak, got %f", got)
	}
	if got := InverseSquareFalloff(mgl64.Vec2{0, 0}, mgl64.Vec2{3, 4}, 50); math.Abs(got-2) > 1e-12 {
		t.Fatalf("falloff at 5 = %f, want 2", got)
	}

	prev := math.Inf(1)
	for d := 1.0; d < 100; d += 3.5 {
		got := InverseSquareFalloff(mgl64.Vec2{}, mgl64.Vec2{d, 0}, 100)
		if got > prev {
			t.Fatalf("falloff must not increase with distance: %f > %f at %f", got, prev, d)
		}
		prev = got
	}
}

func TestNormalizeAngle(t *testing.T) {
	for _, a := range []float64{0, 1, -1, 3 * math.Pi, -7 * math.Pi / 2, 100} {
		n := NormalizeAngle(a)
		if n < -math.Pi || n > math.Pi {
			t.Fatalf("NormalizeAngle(%f) = %f out of range", a, n)
		}
		if math.Abs(math.Sin(n)-math.Sin(a)) > 1e-9 || math.Abs(math.Cos(n)-math.Cos(a)) > 1e-9 {
			t.Fatalf("NormalizeAngle(%f) = %f changed the direction", a, n)
		}
	}
}

func TestClampFloat(t *testing.T) {
	if ClampFloat(-1, 0, 10) != 0 || ClampFloat(11, 0, 10) != 10 || ClampFloat(5, 0, 10) != 5 {
		t.Fatalf("ClampFloat failed")
	}
}

func TestCollinearMeet(t *testing.T) {
	p, ta, ub, ok := CollinearMeet(mgl64.Vec2{0, 0}, mgl64.Vec2{10, 0}, mgl64.Vec2{20, 0}, mgl64.Vec2{10, 0})
	if !ok || p != (mgl64.Vec2{10, 0}) || ta != 1 || ub != 1 {
		t.Fatalf("touching head-on: (%v, %f, %f, %v)", p, ta, ub, ok)
	}

	p, _, _, ok = CollinearMeet(mgl64.Vec2{0, 0}, mgl64.Vec2{15, 0}, mgl64.Vec2{20, 0}, mgl64.Vec2{5, 0})
	if !ok || !p.ApproxEqualThreshold(mgl64.Vec2{10, 0}, 1e-12) {
		t.Fatalf("overlapping head-on must meet in the middle, got (%v, %v)", p, ok)
	}

	if _, _, _, ok = CollinearMeet(mgl64.Vec2{0, 0}, mgl64.Vec2{4, 0}, mgl64.Vec2{20, 0}, mgl64.Vec2{10, 0}); ok {
		t.Fatalf("head-on paths that fall short must not meet")
	}
	if _, _, _, ok = CollinearMeet(mgl64.Vec2{0, 0}, mgl64.Vec2{10, 0}, mgl64.Vec2{5, 0}, mgl64.Vec2{15, 0}); ok {
		t.Fatalf("paths in the same direction must not meet")
	}
	if _, _, _, ok = CollinearMeet(mgl64.Vec2{0, 0}, mgl64.Vec2{10, 0}, mgl64.Vec2{20, 1}, mgl64.Vec2{10, 1}); ok {
		t.Fatalf("parallel but offset paths must not meet")
	}

	_, ta, ub, ok = CollinearMeet(mgl64.Vec2{10, 0}, mgl64.Vec2{20, 0}, mgl64.Vec2{10, 0}, mgl64.Vec2{0, 0})
	if !ok || ta != 0 || ub != 0 {
		t.Fatalf("separating from a shared point must meet at both starts: (%f, %f, %v)", ta, ub, ok)
	}
}
