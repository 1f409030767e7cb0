// Package ledlayout computes LED module placements inside filled glyph
// outlines, as used for illuminated channel-letter signage.
//
// Given a closed planar outline (anything implementing [Shape]), the engine
// walks the boundary at a fixed arc-length step, measures the local stroke
// width perpendicular to the boundary, and derives candidate module positions
// on the stroke centerline. A greedy maximin pass then selects a well-spaced
// subset, which can be driven to an exact module count and expanded into
// multiple parallel rows with a forced or outline-following orientation.
//
// The entry point is [Place]. Its output is a list of [Position] values whose
// capsule footprints lie inside the fill; an empty result is the signal that
// the shape admits no placement (a zero-length outline, for instance), never
// an error.
//
// # Shapes
//
// The [Shape] contract is three operations: total boundary arc length, point
// on the boundary at an arc-length offset, and point-in-fill containment. Any
// backend capable of these, such as a vector graphics library, a rasterizer,
// or a signed distance field, can drive the engine. Three implementations are
// provided: [Polyline] for closed polygonal contours (including multi-contour
// glyphs with counters), [Ring] for exact annuli, and [RasterShape], which
// answers containment from a scanline-rasterized coverage mask.
//
// Placement is a pure function of the shape and configuration: the engine
// keeps no state between calls, and identical inputs yield identical output.
package ledlayout
