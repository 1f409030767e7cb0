package ledlayout

import (
	"sort"
)

// Polyline is a [Shape] made of one or more closed polygonal contours. Glyph
// outlines arrive here after flattening: the outer contour plus any counters
// (the hole of an "O", the two holes of a "B").
//
// Containment uses the nonzero winding rule across all contours, so counters
// wound opposite to their outer contour produce holes. Arc-length queries
// walk the contours in construction order.
type Polyline struct {
	contours [][]Point
	segs     []segment
	cum      []float64 // cumulative arc length at the end of each segment
	length   float64
	bounds   Rect
}

type segment struct {
	start Point
	end   Point
}

var _ Shape = (*Polyline)(nil)

// NewPolyline returns a polyline over the given closed contours. Each contour
// is closed implicitly; a final point equal to the first is not required.
// Contours with fewer than three points contribute nothing.
func NewPolyline(contours ...[]Point) *Polyline {
	p := &Polyline{}
	first := true
	for _, contour := range contours {
		if len(contour) < 3 {
			continue
		}
		kept := make([]Point, len(contour), len(contour)+1)
		copy(kept, contour)
		if kept[len(kept)-1] != kept[0] {
			kept = append(kept, kept[0])
		}
		p.contours = append(p.contours, kept)
		for i := 1; i < len(kept); i++ {
			seg := segment{kept[i-1], kept[i]}
			p.length += seg.end.Distance(seg.start)
			p.segs = append(p.segs, seg)
			p.cum = append(p.cum, p.length)
		}
		for _, pt := range kept {
			if first {
				p.bounds = NewRectFromPoints(pt, pt)
				first = false
			} else {
				p.bounds = p.bounds.UnionPoint(pt)
			}
		}
	}
	return p
}

// Contours returns the closed contours the polyline was built from, each with
// an explicit closing point.
func (p *Polyline) Contours() [][]Point {
	return p.contours
}

// BoundingBox returns the smallest rectangle enclosing all contours.
func (p *Polyline) BoundingBox() Rect {
	return p.bounds
}

// Translate returns a copy of the polyline moved by v.
func (p *Polyline) Translate(v Vec2) *Polyline {
	contours := make([][]Point, len(p.contours))
	for i, contour := range p.contours {
		moved := make([]Point, len(contour))
		for j, pt := range contour {
			moved[j] = pt.Translate(v)
		}
		contours[i] = moved
	}
	return NewPolyline(contours...)
}

// TotalLength implements [Shape].
func (p *Polyline) TotalLength() float64 {
	return p.length
}

// PointAt implements [Shape].
func (p *Polyline) PointAt(arclen float64) Point {
	if len(p.segs) == 0 {
		return Point{}
	}
	if arclen <= 0 {
		return p.segs[0].start
	}
	if arclen >= p.length {
		return p.segs[len(p.segs)-1].end
	}
	i := sort.SearchFloat64s(p.cum, arclen)
	seg := p.segs[i]
	segStart := 0.0
	if i > 0 {
		segStart = p.cum[i-1]
	}
	segLen := p.cum[i] - segStart
	if segLen == 0 {
		return seg.start
	}
	return seg.start.Lerp(seg.end, (arclen-segStart)/segLen)
}

// Contains implements [Shape] using the nonzero winding rule.
func (p *Polyline) Contains(pt Point) bool {
	return p.Winding(pt) != 0
}

// Winding returns the winding number of pt with respect to all contours. It
// casts a ray to the left and sums signed crossings.
func (p *Polyline) Winding(pt Point) int {
	var w int
	for _, seg := range p.segs {
		w += seg.winding(pt)
	}
	return w
}

// winding returns the winding contribution of a single edge for a leftward
// ray from pt.
func (seg segment) winding(pt Point) int {
	start, end := seg.start, seg.end
	var sign int
	switch {
	case end.Y > start.Y:
		if pt.Y < start.Y || pt.Y >= end.Y {
			return 0
		}
		sign = -1
	case end.Y < start.Y:
		if pt.Y < end.Y || pt.Y >= start.Y {
			return 0
		}
		sign = 1
	default:
		return 0
	}
	if pt.X < min(start.X, end.X) {
		return 0
	}
	if pt.X >= max(start.X, end.X) {
		return sign
	}
	// line equation ax + by = c
	a := end.Y - start.Y
	b := start.X - end.X
	c := a*start.X + b*start.Y
	if (a*pt.X+b*pt.Y-c)*float64(sign) <= 0.0 {
		return sign
	}
	return 0
}
