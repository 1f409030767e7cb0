package ledlayout

import (
	"math"
)

// Ring is an annulus: the filled region between two concentric circles. It is
// the analytic model of a channel letter "O" with a uniform stroke, and is
// exact everywhere, which makes it useful for calibrating the engine against
// known geometry.
//
// The boundary walked by PointAt is the outer circle, matching how a glyph
// outline presents its outermost contour first.
type Ring struct {
	Center Point
	Outer  float64
	Inner  float64
}

var _ Shape = Ring{}

// TotalLength implements [Shape]. It is the circumference of the outer circle.
func (r Ring) TotalLength() float64 {
	return 2 * math.Pi * math.Abs(r.Outer)
}

// PointAt implements [Shape].
func (r Ring) PointAt(arclen float64) Point {
	total := r.TotalLength()
	if total == 0 {
		return r.Center
	}
	arclen = max(0, min(arclen, total))
	s, c := math.Sincos(2 * math.Pi * arclen / total)
	return Point{
		X: r.Center.X + r.Outer*c,
		Y: r.Center.Y + r.Outer*s,
	}
}

// Contains implements [Shape].
func (r Ring) Contains(pt Point) bool {
	d := pt.Distance(r.Center)
	return d >= math.Abs(r.Inner) && d <= math.Abs(r.Outer)
}

// StrokeWidth returns the radial thickness of the annulus.
func (r Ring) StrokeWidth() float64 {
	return math.Abs(r.Outer) - math.Abs(r.Inner)
}

// Polyline approximates the ring as two polygonal contours with the given
// number of steps each. The inner contour is wound opposite to the outer one
// so that nonzero winding produces the hole.
func (r Ring) Polyline(steps int) *Polyline {
	if steps < 3 {
		steps = 3
	}
	outer := make([]Point, steps)
	inner := make([]Point, steps)
	for i := 0; i < steps; i++ {
		s, c := math.Sincos(2 * math.Pi * float64(i) / float64(steps))
		outer[i] = Pt(r.Center.X+r.Outer*c, r.Center.Y+r.Outer*s)
		// reversed angle direction for the opposite winding
		inner[i] = Pt(r.Center.X+r.Inner*c, r.Center.Y-r.Inner*s)
	}
	if r.Inner == 0 {
		return NewPolyline(outer)
	}
	return NewPolyline(outer, inner)
}
