package ledlayout

import (
	"image"
	"math"

	"golang.org/x/image/vector"
)

// RasterShape answers containment queries from a rasterized coverage mask
// rather than by analytic winding. It wraps a [Polyline]: the fill is drawn
// once into an alpha mask with x/image's scanline rasterizer, and Contains
// becomes a mask lookup. Arc-length queries delegate to the source polyline.
//
// The mask trades exactness near the boundary (half a pixel or so) for
// constant-time containment, which pays off on outlines with many edges.
type RasterShape struct {
	src    *Polyline
	mask   *image.Alpha
	origin Point // world position of the mask's (0, 0) pixel
}

var _ Shape = (*RasterShape)(nil)

// coverageThreshold is the alpha value at or above which a mask pixel counts
// as filled. Half coverage keeps the raster boundary close to the true one.
const coverageThreshold = 0x80

// NewRasterShape rasterizes the polyline's fill under the nonzero winding
// rule at one pixel per unit.
func NewRasterShape(src *Polyline) *RasterShape {
	bounds := src.BoundingBox().Inflate(1, 1)
	origin := Pt(math.Floor(bounds.MinX()), math.Floor(bounds.MinY()))
	w := int(math.Ceil(bounds.MaxX()-origin.X)) + 1
	h := int(math.Ceil(bounds.MaxY()-origin.Y)) + 1
	if w < 1 || h < 1 {
		w, h = 1, 1
	}

	z := vector.NewRasterizer(w, h)
	for _, contour := range src.Contours() {
		z.MoveTo(float32(contour[0].X-origin.X), float32(contour[0].Y-origin.Y))
		for _, pt := range contour[1:] {
			z.LineTo(float32(pt.X-origin.X), float32(pt.Y-origin.Y))
		}
		z.ClosePath()
	}
	mask := image.NewAlpha(image.Rect(0, 0, w, h))
	z.Draw(mask, mask.Bounds(), image.Opaque, image.Point{})

	return &RasterShape{
		src:    src,
		mask:   mask,
		origin: origin,
	}
}

// TotalLength implements [Shape].
func (rs *RasterShape) TotalLength() float64 {
	return rs.src.TotalLength()
}

// PointAt implements [Shape].
func (rs *RasterShape) PointAt(arclen float64) Point {
	return rs.src.PointAt(arclen)
}

// Contains implements [Shape] by sampling the coverage mask at the pixel
// containing pt. Points outside the mask are outside the fill.
func (rs *RasterShape) Contains(pt Point) bool {
	ix := int(math.Floor(pt.X - rs.origin.X))
	iy := int(math.Floor(pt.Y - rs.origin.Y))
	if !(image.Point{ix, iy}).In(rs.mask.Bounds()) {
		return false
	}
	return rs.mask.AlphaAt(ix, iy).A >= coverageThreshold
}
