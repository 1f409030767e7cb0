package ledlayout

import (
	"math"
	"testing"
)

func TestRasterShapeAgreesWithPolyline(t *testing.T) {
	ring := Ring{Center: Pt(0, 0), Outer: 60, Inner: 40}
	src := ring.Polyline(512)
	rs := NewRasterShape(src)

	// Arc-length queries delegate to the source polyline.
	diff(t, src.TotalLength(), rs.TotalLength())
	diff(t, src.PointAt(100), rs.PointAt(100))

	// Containment matches the analytic ring away from the boundary, where
	// neither polygonization nor pixel quantization matters.
	const margin = 2.0
	for x := -70.0; x <= 70; x += 3.5 {
		for y := -70.0; y <= 70; y += 3.5 {
			pt := Pt(x, y)
			d := pt.Distance(ring.Center)
			if math.Abs(d-60) < margin || math.Abs(d-40) < margin {
				continue
			}
			if got, want := rs.Contains(pt), ring.Contains(pt); got != want {
				t.Errorf("containment disagreement at %v: raster %t, ring %t", pt, got, want)
			}
		}
	}
}

func TestRasterShapeOutOfBounds(t *testing.T) {
	rs := NewRasterShape(NewPolyline(square(0, 0, 10)))
	for _, pt := range []Point{Pt(-100, 5), Pt(100, 5), Pt(5, -100), Pt(5, 100)} {
		if rs.Contains(pt) {
			t.Errorf("expected %v outside the mask to be outside the fill", pt)
		}
	}
}

func TestRasterShapeDrivesPlacement(t *testing.T) {
	// The engine runs unchanged against the raster backend; results stay
	// inside the analytic fill with a small containment margin for the
	// mask quantization.
	ring := Ring{Center: Pt(0, 0), Outer: 60, Inner: 40}
	rs := NewRasterShape(ring.Polyline(512))

	positions := Place(rs, Config{Spacing: 15})
	if len(positions) < 10 {
		t.Fatalf("got %d positions from the raster backend, expected a full ring", len(positions))
	}
	for _, pos := range positions {
		d := pos.Center.Distance(ring.Center)
		if d < 39 || d > 61 {
			t.Errorf("position %v at radius %v, expected within the annulus", pos.Center, d)
		}
	}
}
