package ledlayout

import (
	"math"
	"testing"
)

func TestNormalAtRing(t *testing.T) {
	r := Ring{Center: Pt(0, 0), Outer: 60, Inner: 40}

	// On a circle the normal is radial. Check a few arc-length offsets.
	for _, arclen := range []float64{0, 40, 100, 250} {
		n := NormalAt(r, arclen, 0.1)
		if n == (Vec2{}) {
			t.Fatalf("got degenerate normal at arclen %v", arclen)
		}
		radial := r.PointAt(arclen).Sub(r.Center).Normalize()
		if dot := math.Abs(n.Dot(radial)); !approxEqual(dot, 1, 1e-4) {
			t.Errorf("normal %v at arclen %v is not radial (|dot| = %v)", n, arclen, dot)
		}
	}
}

func TestNormalAtDegenerate(t *testing.T) {
	// A shape that collapses to a single point has a zero tangent window.
	pt := pointShape{Pt(3, 4)}
	diff(t, Vec2{}, NormalAt(pt, 0, 0.1))
}

// pointShape is a degenerate Shape whose boundary is a single point.
type pointShape struct {
	at Point
}

func (p pointShape) TotalLength() float64  { return 1 }
func (p pointShape) PointAt(float64) Point { return p.at }
func (p pointShape) Contains(Point) bool   { return false }

func TestNormalAtNonFinite(t *testing.T) {
	// A malformed boundary query yields NaN points; the tangent must read
	// as degenerate, not propagate into candidate rotations.
	diff(t, Vec2{}, NormalAt(nanShape{}, 10, 0.1))
}

// nanShape simulates a malformed shape whose boundary queries return NaN.
type nanShape struct{}

func (nanShape) TotalLength() float64  { return 100 }
func (nanShape) PointAt(float64) Point { return Pt(math.NaN(), math.NaN()) }
func (nanShape) Contains(Point) bool   { return true }

func TestEdgeDistanceRing(t *testing.T) {
	r := Ring{Center: Pt(0, 0), Outer: 60, Inner: 40}

	cases := []struct {
		start Point
		dir   Vec2
		want  float64
	}{
		{Pt(50, 0), Vec(1, 0), 10},   // outward to the outer circle
		{Pt(50, 0), Vec(-1, 0), 10},  // inward to the hole
		{Pt(58, 0), Vec(-1, 0), 18},  // across the stroke
		{Pt(0, 50), Vec(0, 1), 10},
	}
	for _, c := range cases {
		got := EdgeDistance(r, c.start, c.dir, 10, 1000)
		if !approxEqual(got, c.want, 0.05) {
			t.Errorf("EdgeDistance from %v along %v = %v, expected %v", c.start, c.dir, got, c.want)
		}
	}
}

func TestEdgeDistanceOutsideStart(t *testing.T) {
	r := Ring{Center: Pt(0, 0), Outer: 60, Inner: 40}
	if got := EdgeDistance(r, Pt(70, 0), Vec(-1, 0), 10, 1000); got != 0 {
		t.Errorf("got %v for a start outside the fill, expected 0", got)
	}
}

func TestEdgeDistanceUnbounded(t *testing.T) {
	// A fill with no boundary in range reports the search limit.
	full := fullShape{}
	if got := EdgeDistance(full, Pt(0, 0), Vec(1, 0), 10, 200); got != 200 {
		t.Errorf("got %v, expected the 200 unit search limit", got)
	}
}

// fullShape contains every point; its boundary is a unit circle placeholder.
type fullShape struct{}

func (fullShape) TotalLength() float64 { return 2 * math.Pi * 100 }
func (fullShape) PointAt(arclen float64) Point {
	s, c := math.Sincos(arclen / 100)
	return Pt(100*c, 100*s)
}
func (fullShape) Contains(Point) bool { return true }

func TestCapsuleInside(t *testing.T) {
	r := Ring{Center: Pt(0, 0), Outer: 60, Inner: 40}

	// A radial capsule on the centerline fits while it is shorter than
	// half the stroke width.
	if !CapsuleInside(r, Pt(50, 0), 0, 4) {
		t.Error("expected radial capsule of half-length 4 to fit the 20 unit stroke")
	}
	if CapsuleInside(r, Pt(50, 0), 0, 12) {
		t.Error("expected radial capsule of half-length 12 to poke out of the stroke")
	}
	// A tangential capsule at the same point fits even when long.
	if !CapsuleInside(r, Pt(50, 0), 90, 12) {
		t.Error("expected tangential capsule of half-length 12 to fit")
	}
	// Center outside the fill fails regardless of extent.
	if CapsuleInside(r, Pt(0, 0), 0, 1) {
		t.Error("expected capsule centered in the hole to fail")
	}
}

func TestContainsFailClosed(t *testing.T) {
	if contains(panickyShape{}, Pt(0, 0)) {
		t.Error("expected a panicking Contains to read as outside")
	}
}

// panickyShape simulates a malformed shape whose containment test blows up.
type panickyShape struct{}

func (panickyShape) TotalLength() float64  { return 100 }
func (panickyShape) PointAt(float64) Point { return Point{} }
func (panickyShape) Contains(Point) bool   { panic("malformed shape") }
