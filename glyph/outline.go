// Package glyph turns font glyphs into placement-ready outlines. It sits on
// the shape-producing side of the engine's [ledlayout.Shape] seam: text is
// shaped with HarfBuzz via go-text/typesetting, glyph outlines are loaded
// with x/image's sfnt parser, and Bézier segments are flattened to
// [ledlayout.Polyline] contours in pixel units.
package glyph

import (
	"fmt"
	"math"

	"golang.org/x/image/font/sfnt"
	"golang.org/x/image/math/fixed"

	"github.com/lumineer/ledlayout"
)

// FlattenTolerance is the maximum distance between a glyph's Bézier segments
// and their polyline approximation, in pixels. A quarter pixel is invisible
// at placement scale.
const FlattenTolerance = 0.25

// maxSplitDepth bounds the recursive Bézier subdivision.
const maxSplitDepth = 10

// Outline loads a glyph's outline at the given pixel size and flattens it to
// a polyline. Glyphs without an outline (such as a space) yield nil with no
// error. Coordinates are y-down with the origin on the baseline, as reported
// by the font.
func Outline(f *sfnt.Font, buf *sfnt.Buffer, gid sfnt.GlyphIndex, ppem float64) (*ledlayout.Polyline, error) {
	segments, err := f.LoadGlyph(buf, gid, fixed.Int26_6(ppem*64), nil)
	if err != nil {
		return nil, fmt.Errorf("load glyph %d: %w", gid, err)
	}
	if len(segments) == 0 {
		return nil, nil
	}

	var contours [][]ledlayout.Point
	var contour []ledlayout.Point
	var pen ledlayout.Point
	closeContour := func() {
		if len(contour) >= 3 {
			contours = append(contours, contour)
		}
		contour = nil
	}

	for _, seg := range segments {
		switch seg.Op {
		case sfnt.SegmentOpMoveTo:
			closeContour()
			pen = fixedPt(seg.Args[0])
			contour = append(contour, pen)
		case sfnt.SegmentOpLineTo:
			pen = fixedPt(seg.Args[0])
			contour = append(contour, pen)
		case sfnt.SegmentOpQuadTo:
			ctrl, end := fixedPt(seg.Args[0]), fixedPt(seg.Args[1])
			contour = flattenQuad(contour, pen, ctrl, end, FlattenTolerance, 0)
			pen = end
		case sfnt.SegmentOpCubeTo:
			c1, c2, end := fixedPt(seg.Args[0]), fixedPt(seg.Args[1]), fixedPt(seg.Args[2])
			contour = flattenCubic(contour, pen, c1, c2, end, FlattenTolerance, 0)
			pen = end
		}
	}
	closeContour()

	if len(contours) == 0 {
		return nil, nil
	}
	return ledlayout.NewPolyline(contours...), nil
}

func fixedPt(p fixed.Point26_6) ledlayout.Point {
	return ledlayout.Pt(float64(p.X)/64, float64(p.Y)/64)
}

// flattenQuad appends a polyline approximation of the quadratic Bézier
// (p0, ctrl, p1), excluding p0 and including p1, by recursive midpoint
// subdivision until the control point deviates from the chord by less than
// tol.
func flattenQuad(dst []ledlayout.Point, p0, ctrl, p1 ledlayout.Point, tol float64, depth int) []ledlayout.Point {
	if depth >= maxSplitDepth || chordDeviation(p0, p1, ctrl) <= tol {
		return append(dst, p1)
	}
	// de Casteljau split at t = 1/2
	l := p0.Midpoint(ctrl)
	r := ctrl.Midpoint(p1)
	mid := l.Midpoint(r)
	dst = flattenQuad(dst, p0, l, mid, tol, depth+1)
	return flattenQuad(dst, mid, r, p1, tol, depth+1)
}

// flattenCubic appends a polyline approximation of the cubic Bézier
// (p0, c1, c2, p1), excluding p0 and including p1.
func flattenCubic(dst []ledlayout.Point, p0, c1, c2, p1 ledlayout.Point, tol float64, depth int) []ledlayout.Point {
	if depth >= maxSplitDepth ||
		(chordDeviation(p0, p1, c1) <= tol && chordDeviation(p0, p1, c2) <= tol) {
		return append(dst, p1)
	}
	// de Casteljau split at t = 1/2
	l1 := p0.Midpoint(c1)
	m := c1.Midpoint(c2)
	r2 := c2.Midpoint(p1)
	l2 := l1.Midpoint(m)
	r1 := m.Midpoint(r2)
	mid := l2.Midpoint(r1)
	dst = flattenCubic(dst, p0, l1, l2, mid, tol, depth+1)
	return flattenCubic(dst, mid, r1, r2, p1, tol, depth+1)
}

// chordDeviation returns the distance of ctrl from the chord p0–p1.
func chordDeviation(p0, p1, ctrl ledlayout.Point) float64 {
	chord := p1.Sub(p0)
	length := chord.Hypot()
	if length == 0 {
		return ctrl.Sub(p0).Hypot()
	}
	return math.Abs(chord.Cross(ctrl.Sub(p0))) / length
}
