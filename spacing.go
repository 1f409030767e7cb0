package ledlayout

// selectWellSpaced greedily selects a subset of candidates whose pairwise
// distances all meet minSpacing, maximizing the minimum separation. The first
// candidate is always accepted; each later candidate is checked against every
// previously accepted point, not just its arc-length neighbor. Candidates
// from self-intersecting or looping contours (the counter of an "O") can be
// spatially close while far apart along the boundary, and a neighbor-only
// check would let them cluster.
//
// The check is O(n²) in the number of accepted points, which is fine at the
// expected scale of tens of modules per glyph.
func selectWellSpaced(cands []candidate, minSpacing float64) []candidate {
	if len(cands) == 0 {
		return nil
	}
	minSq := minSpacing * minSpacing
	selected := make([]candidate, 0, len(cands))
	selected = append(selected, cands[0])
	for _, c := range cands[1:] {
		ok := true
		for _, accepted := range selected {
			if c.pos.Center.DistanceSquared(accepted.pos.Center) < minSq {
				ok = false
				break
			}
		}
		if ok {
			selected = append(selected, c)
		}
	}
	return selected
}
