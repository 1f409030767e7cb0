package ledlayout

import (
	"math"
	"testing"
)

func TestMeasureStroke(t *testing.T) {
	r := Ring{Center: Pt(0, 0), Outer: 60, Inner: 40}
	pl := newPlacer(r, Config{})

	probe := pl.measureStroke(Pt(50, 0), Vec(1, 0))
	if !approxEqual(probe.width, 20, 0.1) {
		t.Errorf("got width %v, expected 20", probe.width)
	}
	if !approxEqual(probe.forward, 10, 0.1) || !approxEqual(probe.backward, 10, 0.1) {
		t.Errorf("got forward %v, backward %v, expected 10 each", probe.forward, probe.backward)
	}

	// Off-center the two distances differ but the width is unchanged.
	probe = pl.measureStroke(Pt(58, 0), Vec(1, 0))
	if !approxEqual(probe.width, 20, 0.1) {
		t.Errorf("got width %v, expected 20", probe.width)
	}
	if !approxEqual(probe.forward, 2, 0.1) || !approxEqual(probe.backward, 18, 0.1) {
		t.Errorf("got forward %v, backward %v, expected 2 and 18", probe.forward, probe.backward)
	}
}

func TestStrokeCenterRecenters(t *testing.T) {
	r := Ring{Center: Pt(0, 0), Outer: 60, Inner: 40}
	pl := newPlacer(r, Config{})

	// Boundary sample on the outer circle; the outward inset lands outside
	// the fill, so centering flips to the inward direction and then pulls
	// the point onto the centerline at radius 50.
	c, ok := pl.strokeCenter(Pt(60, 0), Vec(1, 0))
	if !ok {
		t.Fatal("expected stroke centering to succeed")
	}
	if d := c.pos.Center.Distance(r.Center); !approxEqual(d, 50, 0.1) {
		t.Errorf("got centered radius %v, expected 50", d)
	}
	if !approxEqual(c.width, 20, 0.1) {
		t.Errorf("got stroke width %v, expected 20", c.width)
	}
	// The probe direction flipped inward, so the rotation points at 180°.
	if !approxEqual(math.Abs(c.pos.Rotation), 180, 0.5) {
		t.Errorf("got rotation %v, expected ±180", c.pos.Rotation)
	}
}

func TestStrokeCenterRejectsImplausibleWidth(t *testing.T) {
	// The fill extends past the measurement range, so the width comes back
	// as the 2000 unit search limit and is rejected as noise.
	pl := newPlacer(fullShape{}, Config{})
	if _, ok := pl.strokeCenter(Pt(0, 0), Vec(1, 0)); ok {
		t.Error("expected an unbounded width measurement to be rejected")
	}
}

func TestFallbackPosition(t *testing.T) {
	r := Ring{Center: Pt(0, 0), Outer: 60, Inner: 40}
	pl := newPlacer(r, Config{})

	c, ok := pl.fallbackPosition(Pt(60, 0), Vec(1, 0))
	if !ok {
		t.Fatal("expected fallback probing to find an inside point")
	}
	if !r.Contains(c.pos.Center) {
		t.Errorf("fallback position %v is outside the fill", c.pos.Center)
	}
	// The first offset landing inside is 3 units inward; the estimated
	// width is twice that.
	diff(t, Pt(57, 0), c.pos.Center)
	diff(t, 6.0, c.width)
}

func TestFallbackPositionFails(t *testing.T) {
	pl := newPlacer(emptyShape{}, Config{})
	if _, ok := pl.fallbackPosition(Pt(0, 0), Vec(1, 0)); ok {
		t.Error("expected fallback probing to fail on an empty fill")
	}
}

// emptyShape has a boundary but contains nothing.
type emptyShape struct{}

func (emptyShape) TotalLength() float64 { return 100 }
func (emptyShape) PointAt(arclen float64) Point {
	return Pt(arclen, 0)
}
func (emptyShape) Contains(Point) bool { return false }
