package ledlayout

import (
	"math"
	"math/rand"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func diff(t *testing.T, want, got any, opts ...cmp.Option) {
	t.Helper()
	if d := cmp.Diff(want, got, opts...); d != "" {
		t.Error(d)
	}
}

func approxEqual(x, y, tol float64) bool {
	return math.Abs(x-y) <= tol
}

// starPolygon returns a closed star-convex polygon around center with vertex
// radii drawn from [minR, maxR] using the given seeded source, so tests stay
// deterministic.
func starPolygon(rng *rand.Rand, center Point, minR, maxR float64, vertices int) *Polyline {
	pts := make([]Point, vertices)
	for i := 0; i < vertices; i++ {
		th := 2 * math.Pi * float64(i) / float64(vertices)
		r := minR + rng.Float64()*(maxR-minR)
		s, c := math.Sincos(th)
		pts[i] = Pt(center.X+r*c, center.Y+r*s)
	}
	return NewPolyline(pts)
}
