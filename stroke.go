package ledlayout

// Stroke analysis: at a boundary sample, determine the local fill thickness
// and the true centerline offset, producing a corrected candidate position
// plus the measured stroke width. When centering fails, fixed-offset probing
// provides a lower-precision fallback.

// candidate is an internal placement candidate. Candidates are ephemeral:
// generated, filtered, and consumed within one placement call.
type candidate struct {
	pos    Position
	width  float64 // measured (or estimated) local stroke width
	normal Vec2    // inward probe direction; columns offset along it
}

// strokeProbe is one perpendicular thickness measurement. The forward and
// backward distances are a probe-direction bookkeeping convention, not a
// geometric left or right; only their sum and difference carry meaning.
type strokeProbe struct {
	width    float64
	forward  float64 // distance to the boundary along +normal
	backward float64 // distance to the boundary along -normal
}

// measureStroke measures the local fill thickness at pt perpendicular to the
// boundary, probing along both normal directions.
func (pl *placer) measureStroke(pt Point, normal Vec2) strokeProbe {
	fwd := pl.edgeDistance(pt, normal)
	back := pl.edgeDistance(pt, normal.Negate())
	return strokeProbe{
		width:    fwd + back,
		forward:  fwd,
		backward: back,
	}
}

// strokeCenter derives a stroke-centered candidate from a boundary sample.
// It insets the sample inward, measures the stroke, rejects implausible
// widths, and recenters the point on the stroke's centerline. The reported
// rotation is the angle of the probe direction, so the module's capsule lies
// across the stroke.
func (pl *placer) strokeCenter(boundary Point, normal Vec2) (candidate, bool) {
	dir := normal
	pt := boundary.Translate(dir.Mul(pl.params.InsetDepth))
	if !pl.contains(pt) {
		dir = normal.Negate()
		pt = boundary.Translate(dir.Mul(pl.params.InsetDepth))
		if !pl.contains(pt) {
			return candidate{}, false
		}
	}

	probe := pl.measureStroke(pt, dir)
	if probe.width < pl.params.MinStrokeWidth || probe.width > pl.params.MaxStrokeWidth {
		return candidate{}, false
	}

	centered := pt.Translate(dir.Mul(0.5 * (probe.forward - probe.backward)))
	if !pl.contains(centered) {
		return candidate{}, false
	}

	return candidate{
		pos: Position{
			Center:   centered,
			Rotation: degrees(dir.Angle()),
		},
		width:  probe.width,
		normal: dir,
	}, true
}

// fallbackPosition probes fixed inward offsets in both normal directions and
// returns the first inside point found. The stroke width is estimated as
// twice the successful offset, not measured.
func (pl *placer) fallbackPosition(boundary Point, normal Vec2) (candidate, bool) {
	for _, offset := range pl.params.FallbackOffsets {
		for _, dir := range [2]Vec2{normal, normal.Negate()} {
			pt := boundary.Translate(dir.Mul(offset))
			if !pl.contains(pt) {
				continue
			}
			return candidate{
				pos: Position{
					Center:   pt,
					Rotation: degrees(dir.Angle()),
				},
				width:  2 * offset,
				normal: dir,
			}, true
		}
	}
	return candidate{}, false
}
