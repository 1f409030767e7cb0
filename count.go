package ledlayout

import (
	"math"
)

// countSearchIters is the number of spacing binary-search iterations. The
// search interval is [0, 4×spacing], so twenty halvings resolve the
// threshold far below any meaningful geometric difference.
const countSearchIters = 20

// selectForCount selects candidates to hit an exact single-row target. It
// binary-searches the largest spacing threshold whose greedy selection still
// yields at least target candidates, preferring more modules on ties, and
// evenly subsamples any surplus down to the target.
func (pl *placer) selectForCount(cands []candidate, target int, baseSpacing float64) []candidate {
	if target <= 0 {
		return nil
	}

	// Spacing zero accepts every candidate; this is the fallback when the
	// shape cannot yield the target at any threshold.
	best := selectWellSpaced(cands, 0)

	lo, hi := 0.0, 4*baseSpacing
	for it := 0; it < countSearchIters; it++ {
		mid := 0.5 * (lo + hi)
		sel := selectWellSpaced(cands, mid)
		if len(sel) >= target {
			best = sel
			lo = mid
			if len(sel) == target {
				break
			}
		} else {
			hi = mid
		}
	}

	if len(best) > target {
		best = subsample(best, target)
	}
	return best
}

// subsample picks target candidates at a uniform index stride, keeping the
// first and last.
func subsample(cands []candidate, target int) []candidate {
	if target >= len(cands) {
		return cands
	}
	if target <= 1 {
		return cands[:1]
	}
	stride := float64(len(cands)-1) / float64(target-1)
	out := make([]candidate, 0, target)
	for i := 0; i < target; i++ {
		out = append(out, cands[int(math.Round(float64(i)*stride))])
	}
	return out
}
