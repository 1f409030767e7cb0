package ledlayout

// Candidate generation: walk the boundary at a fixed arc-length step and run
// the stroke analyzer at each sample. Samples where neither centering nor
// fixed-offset probing finds an inside point are skipped; that is expected on
// noisy outlines, not an error.

func (pl *placer) generate() []candidate {
	total := pl.shape.TotalLength()
	if total <= 0 {
		return nil
	}

	var cands []candidate
	for arclen := 0.0; arclen < total; arclen += pl.params.SampleStep {
		normal := pl.normalAt(arclen)
		if normal == (Vec2{}) {
			continue
		}
		boundary := pl.shape.PointAt(arclen)
		if boundary.IsNaN() || boundary.IsInf() {
			continue
		}
		if c, ok := pl.strokeCenter(boundary, normal); ok {
			cands = append(cands, c)
			continue
		}
		if c, ok := pl.fallbackPosition(boundary, normal); ok {
			cands = append(cands, c)
		}
	}

	// Sparse or degenerate shapes can starve the fine walk. The coarse
	// walk guarantees a minimum yield for any shape with positive arc
	// length, at the cost of precision.
	if len(cands) < pl.params.MinFineYield {
		return pl.coarseWalk(total)
	}
	return cands
}

// coarseWalk samples the boundary at a coarse spacing and offsets each sample
// by a fixed inward inset, falling through +normal, -normal, and finally the
// raw boundary point itself.
func (pl *placer) coarseWalk(total float64) []candidate {
	spacing := max(pl.params.CoarseMinSpacing, total/pl.params.CoarseDivisor)
	var cands []candidate
	for arclen := 0.0; arclen < total; arclen += spacing {
		boundary := pl.shape.PointAt(arclen)
		if boundary.IsNaN() || boundary.IsInf() {
			continue
		}
		normal := pl.normalAt(arclen)

		pt := boundary
		dir := normal
		if normal != (Vec2{}) {
			if p := boundary.Translate(normal.Mul(pl.params.CoarseInset)); pl.contains(p) {
				pt = p
			} else if p := boundary.Translate(normal.Negate().Mul(pl.params.CoarseInset)); pl.contains(p) {
				pt = p
				dir = normal.Negate()
			}
		}
		cands = append(cands, candidate{
			pos: Position{
				Center:   pt,
				Rotation: degrees(dir.Angle()),
			},
			width:  2 * pl.params.CoarseInset,
			normal: dir,
		})
	}
	return cands
}
