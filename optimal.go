package alphashape

import (
	"fmt"
	"sort"
)

// FindOptimalAlpha returns an iterator to a critical alpha value at which
// every data point is on the boundary or in the interior of the regularized
// alpha shape, and the shape has at most nbComponents solid components.
// The coverage condition is monotone in alpha; the component count mostly
// is, so a binary search over the spectrum locates a satisfying position in
// O(log n) probes, each counting components in linear time, followed by a
// backward refinement. The preceding critical value never satisfies both
// conditions, but when the component count dips below the budget and rises
// again, an even smaller satisfying value may exist elsewhere.
//
// Returns the past-the-end iterator when no critical value satisfies both
// conditions (including the empty spectrum). Panics if nbComponents < 1.
func (s *AlphaShape) FindOptimalAlpha(nbComponents int) AlphaIterator {
	if nbComponents < 1 {
		panic(fmt.Sprintf("alphashape: nbComponents must be >= 1, got %d", nbComponents))
	}
	n := len(s.spectrum)
	if n == 0 {
		return s.AlphaEnd()
	}
	ok := func(i int) bool {
		alpha := s.spectrum[i]
		return alpha >= s.coverageAlpha && s.NumberOfSolidComponentsAt(alpha) <= nbComponents
	}
	if !ok(n - 1) {
		return s.AlphaEnd()
	}
	pos := sort.Search(n, ok)
	for pos > 0 && ok(pos-1) {
		pos--
	}
	return AlphaIterator{s, pos}
}
