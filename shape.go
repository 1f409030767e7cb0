package ledlayout

// Shape is the outline contract the placement engine consumes. It describes
// the filled region of a single glyph as a closed planar curve, parameterized
// by arc length.
//
// Any backend capable of these three operations can serve as a Shape: a
// vector graphics path, a polygon rasterizer, a signed distance field. The
// engine never mutates a shape; it only issues queries.
//
// Implementations must answer Contains conservatively. If containment cannot
// be determined the answer must be false, so that no module is ever placed
// where containment is unverifiable. The engine additionally treats a
// panicking Contains as false.
type Shape interface {
	// TotalLength returns the total arc length of the shape's boundary.
	// A shape with zero total length admits no placement.
	TotalLength() float64

	// PointAt returns the point on the boundary at the given arc-length
	// offset from the boundary's start. Offsets outside [0, TotalLength]
	// are clamped.
	PointAt(arclen float64) Point

	// Contains reports whether the point lies inside the filled region.
	Contains(pt Point) bool
}

// contains is the fail-closed containment probe: a Shape whose Contains
// implementation panics is treated as answering false.
func contains(s Shape, pt Point) (inside bool) {
	defer func() {
		if recover() != nil {
			inside = false
		}
	}()
	return s.Contains(pt)
}
