package cli

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/lumineer/ledlayout"
)

// svgMargin is the padding around the drawing, in pixels.
const svgMargin = 10

// writeSVGFile renders the outlines and their placements as an SVG preview.
func writeSVGFile(path string, letters []letter, placements [][]ledlayout.Position, halfLength float64) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := writeSVG(f, letters, placements, halfLength); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

// writeSVG renders letter outlines as filled paths and each placed module as
// a rotated rectangle centered on its position. Glyph coordinates are y-down,
// matching SVG, so no axis flip is needed.
func writeSVG(w io.Writer, letters []letter, placements [][]ledlayout.Position, halfLength float64) error {
	if halfLength == 0 {
		halfLength = ledlayout.DefaultHalfLength
	}

	bounds, ok := outlineBounds(letters)
	if !ok {
		return fmt.Errorf("no outlines to render")
	}

	var b strings.Builder
	fmt.Fprintf(&b, `<svg xmlns="http://www.w3.org/2000/svg" viewBox="%.1f %.1f %.1f %.1f">`+"\n",
		bounds.MinX()-svgMargin, bounds.MinY()-svgMargin,
		bounds.Width()+2*svgMargin, bounds.Height()+2*svgMargin)

	for i, l := range letters {
		if l.Outline == nil {
			continue
		}
		fmt.Fprintf(&b, `  <path fill-rule="nonzero" fill="#dde4ee" stroke="#4a5568" stroke-width="1" d="%s"/>`+"\n",
			pathData(l.Outline))
		for _, pos := range placements[i] {
			fmt.Fprintf(&b, `  <rect x="%.2f" y="%.2f" width="%.2f" height="%.2f" rx="1" fill="#f6ad55" transform="rotate(%.1f %.2f %.2f)"/>`+"\n",
				pos.Center.X-halfLength, pos.Center.Y-halfLength/2,
				2*halfLength, halfLength,
				pos.Rotation, pos.Center.X, pos.Center.Y)
		}
	}

	b.WriteString("</svg>\n")
	_, err := io.WriteString(w, b.String())
	return err
}

// pathData builds an SVG path from the outline's contours, one closed
// subpath per contour.
func pathData(outline *ledlayout.Polyline) string {
	var b strings.Builder
	for _, contour := range outline.Contours() {
		// Contours carry an explicit closing point; Z closes the subpath.
		if len(contour) > 1 && contour[len(contour)-1] == contour[0] {
			contour = contour[:len(contour)-1]
		}
		for i, pt := range contour {
			cmd := byte('L')
			if i == 0 {
				cmd = 'M'
			}
			fmt.Fprintf(&b, "%c%.2f %.2f ", cmd, pt.X, pt.Y)
		}
		b.WriteString("Z ")
	}
	return strings.TrimSpace(b.String())
}

// outlineBounds unions the bounding boxes of all letter outlines.
func outlineBounds(letters []letter) (ledlayout.Rect, bool) {
	var bounds ledlayout.Rect
	found := false
	for _, l := range letters {
		if l.Outline == nil {
			continue
		}
		bb := l.Outline.BoundingBox()
		if !found {
			bounds = bb
			found = true
			continue
		}
		bounds = ledlayout.NewRectFromPoints(
			ledlayout.Pt(min(bounds.MinX(), bb.MinX()), min(bounds.MinY(), bb.MinY())),
			ledlayout.Pt(max(bounds.MaxX(), bb.MaxX()), max(bounds.MaxY(), bb.MaxY())),
		)
	}
	return bounds, found
}
