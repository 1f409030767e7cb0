package ledlayout

import (
	"testing"
)

func square(x0, y0, size float64) []Point {
	return []Point{
		Pt(x0, y0),
		Pt(x0+size, y0),
		Pt(x0+size, y0+size),
		Pt(x0, y0+size),
	}
}

// reversed returns the contour with opposite winding.
func reversed(pts []Point) []Point {
	out := make([]Point, len(pts))
	for i, pt := range pts {
		out[len(pts)-1-i] = pt
	}
	return out
}

func TestPolylineContains(t *testing.T) {
	p := NewPolyline(square(0, 0, 100))

	inside := []Point{Pt(50, 50), Pt(1, 1), Pt(99, 99)}
	for _, pt := range inside {
		if !p.Contains(pt) {
			t.Errorf("expected %v to be inside", pt)
		}
	}
	outside := []Point{Pt(-1, 50), Pt(101, 50), Pt(50, -1), Pt(50, 101)}
	for _, pt := range outside {
		if p.Contains(pt) {
			t.Errorf("expected %v to be outside", pt)
		}
	}
}

func TestPolylineContainsHole(t *testing.T) {
	// A counter wound opposite to the outer contour produces a hole under
	// the nonzero winding rule, like the inside of an "O".
	p := NewPolyline(square(0, 0, 100), reversed(square(30, 30, 40)))

	if !p.Contains(Pt(10, 50)) {
		t.Error("expected point in the stroke to be inside")
	}
	if p.Contains(Pt(50, 50)) {
		t.Error("expected point in the counter to be outside")
	}
	if w := p.Winding(Pt(50, 50)); w != 0 {
		t.Errorf("got winding number %d in the counter, expected 0", w)
	}
}

func TestPolylinePointAt(t *testing.T) {
	p := NewPolyline(square(0, 0, 100))

	if l := p.TotalLength(); l != 400 {
		t.Fatalf("got total length %v, expected 400", l)
	}
	cases := []struct {
		arclen float64
		want   Point
	}{
		{0, Pt(0, 0)},
		{50, Pt(50, 0)},
		{100, Pt(100, 0)},
		{150, Pt(100, 50)},
		{250, Pt(50, 100)},
		{400, Pt(0, 0)},
		{-10, Pt(0, 0)},  // clamped
		{450, Pt(0, 0)},  // clamped
	}
	for _, c := range cases {
		diff(t, c.want, p.PointAt(c.arclen))
	}
}

func TestPolylineDegenerate(t *testing.T) {
	if l := NewPolyline().TotalLength(); l != 0 {
		t.Errorf("got total length %v for empty polyline, expected 0", l)
	}
	// fewer than three points is not a closed contour
	if l := NewPolyline([]Point{Pt(0, 0), Pt(10, 0)}).TotalLength(); l != 0 {
		t.Errorf("got total length %v for two-point contour, expected 0", l)
	}
}

func TestPolylineTranslate(t *testing.T) {
	p := NewPolyline(square(0, 0, 10)).Translate(Vec(5, -5))
	diff(t, Pt(5, -5), p.PointAt(0))
	if !p.Contains(Pt(10, 0)) {
		t.Error("expected translated interior point to be inside")
	}
}
