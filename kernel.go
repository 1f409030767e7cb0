package ledlayout

// This file is the geometric kernel: normal estimation along the boundary,
// the capsule footprint predicate, and ray-marched edge distance. Everything
// here is a pure function of the shape queries it issues.

// NormalAt estimates the unit normal of the boundary at the given arc-length
// offset by sampling the tangent over a window of ±delta and rotating it a
// quarter turn. The zero vector is returned when the tangent degenerates or
// is not finite; callers must skip such samples.
func NormalAt(s Shape, arclen, delta float64) Vec2 {
	total := s.TotalLength()
	p0 := s.PointAt(max(0, min(arclen-delta, total)))
	p1 := s.PointAt(max(0, min(arclen+delta, total)))
	tangent := p1.Sub(p0)
	if tangent.Hypot2() == 0 || tangent.IsNaN() || tangent.IsInf() {
		return Vec2{}
	}
	return tangent.Normalize().Turn90()
}

// CapsuleInside reports whether a module footprint centered at pt with the
// given rotation (in degrees) and half-length lies inside the fill. The
// center and both capsule endpoints must independently pass the containment
// test. This is the single footprint-validity predicate; every emitted
// position goes through it.
func CapsuleInside(s Shape, pt Point, rotationDeg, halfLength float64) bool {
	d := VecFromAngle(radians(rotationDeg)).Mul(halfLength)
	return contains(s, pt) &&
		contains(s, pt.Translate(d)) &&
		contains(s, pt.Translate(d.Negate()))
}

// edgeDistanceRefineIters is the number of binary-search refinements of the
// bracketed boundary crossing. Ten iterations resolve the crossing to about
// a thousandth of the march step.
const edgeDistanceRefineIters = 10

// EdgeDistance measures the distance from start to the first fill boundary
// along dir, a unit vector. It returns 0 when start is already outside the
// fill, and maxDist when no boundary is found within that range.
//
// The boundary is bracketed by linear marching at the given step before
// binary refinement. Marching is required on concave outlines: a bare binary
// probe can land inside a different lobe of the same glyph and falsely
// register as still inside the local stroke.
func EdgeDistance(s Shape, start Point, dir Vec2, step, maxDist float64) float64 {
	if step <= 0 || maxDist <= 0 {
		return 0
	}
	if !contains(s, start) {
		return 0
	}
	for d := step; d <= maxDist; d += step {
		if contains(s, start.Translate(dir.Mul(d))) {
			continue
		}
		lo, hi := d-step, d
		for it := 0; it < edgeDistanceRefineIters; it++ {
			mid := 0.5 * (lo + hi)
			if contains(s, start.Translate(dir.Mul(mid))) {
				lo = mid
			} else {
				hi = mid
			}
		}
		return 0.5 * (lo + hi)
	}
	return maxDist
}

func (pl *placer) normalAt(arclen float64) Vec2 {
	return NormalAt(pl.shape, arclen, pl.params.NormalDelta)
}

func (pl *placer) edgeDistance(start Point, dir Vec2) float64 {
	return EdgeDistance(pl.shape, start, dir, pl.params.MarchStep, pl.params.MaxEdgeDistance)
}

func (pl *placer) capsuleInside(pt Point, rotationDeg, halfLength float64) bool {
	return CapsuleInside(pl.shape, pt, rotationDeg, halfLength)
}
