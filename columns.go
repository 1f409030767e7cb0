package ledlayout

// Column expansion and orientation handling. Orientation is applied to the
// candidate pool before spacing selection; column expansion happens after it.

// orient applies the configured orientation to the candidate pool and keeps
// only candidates whose capsule passes containment under the resulting
// rotation.
//
// When a forced orientation fits nowhere, the pool reverts to the original
// stroke-following rotations rather than returning empty; the resolved
// orientation on the placer reverts with it so column expansion agrees. If
// even the stroke-following capsules fit nowhere, candidates with a
// verifiably inside center are returned as a last resort, so a shape with
// usable candidates is never reported as unplaceable while containment stays
// fail-closed.
func (pl *placer) orient(cands []candidate) []candidate {
	if pl.config.Orientation != FollowOutline {
		if forced := pl.validateRotated(cands, forcedRotation(pl.config.Orientation)); len(forced) > 0 {
			return forced
		}
		pl.orientation = FollowOutline
	}
	if followed := pl.validateFollowing(cands); len(followed) > 0 {
		return followed
	}
	out := make([]candidate, 0, len(cands))
	for _, c := range cands {
		if pl.contains(c.pos.Center) {
			out = append(out, c)
		}
	}
	return out
}

func forcedRotation(o Orientation) float64 {
	if o == Vertical {
		return 90
	}
	return 0
}

// validateRotated pins every candidate to the given rotation and drops those
// whose capsule no longer fits.
func (pl *placer) validateRotated(cands []candidate, rotation float64) []candidate {
	out := make([]candidate, 0, len(cands))
	for _, c := range cands {
		if !pl.capsuleInside(c.pos.Center, rotation, pl.capsuleHalf(c.width)) {
			continue
		}
		c.pos.Rotation = rotation
		out = append(out, c)
	}
	return out
}

// validateFollowing keeps candidates whose stroke-following capsule fits.
func (pl *placer) validateFollowing(cands []candidate) []candidate {
	out := make([]candidate, 0, len(cands))
	for _, c := range cands {
		if pl.capsuleInside(c.pos.Center, c.pos.Rotation, pl.capsuleHalf(c.width)) {
			out = append(out, c)
		}
	}
	return out
}

// expandColumns turns each selected single-row candidate into the configured
// number of parallel rows, offset along the candidate's normal across the
// usable stroke width. Every expanded position is re-validated; positions
// that fail are dropped, so thin strokes may legitimately yield fewer
// modules per column than requested.
func (pl *placer) expandColumns(selected []candidate) []Position {
	cols := pl.config.Columns
	if cols <= 1 {
		out := make([]Position, len(selected))
		for i, c := range selected {
			out[i] = c.pos
		}
		return out
	}

	out := make([]Position, 0, len(selected)*cols)
	for _, c := range selected {
		usable := pl.params.ColumnWidthFactor * c.width
		colSpacing := usable / float64(cols-1)
		for col := 0; col < cols; col++ {
			offset := (float64(col) - float64(cols-1)/2) * colSpacing
			pt := c.pos.Center.Translate(c.normal.Mul(offset))
			if !pl.capsuleInside(pt, c.pos.Rotation, pl.capsuleHalf(c.width)) {
				continue
			}
			out = append(out, Position{
				Center:   pt,
				Rotation: c.pos.Rotation,
			})
		}
	}
	return out
}
