package alphashape

import (
	"fmt"
	"math"
	"sort"
)

// AlphaIterator is a bidirectional, non-mutating position in the sorted
// sequence of critical alpha values. Iterators compare equal with == when
// they denote the same position of the same alpha shape.
type AlphaIterator struct {
	shape *AlphaShape
	pos   int
}

// Valid reports whether the iterator denotes an element (not past-the-end
// and not before-the-beginning).
func (it AlphaIterator) Valid() bool {
	return it.shape != nil && it.pos >= 0 && it.pos < len(it.shape.spectrum)
}

// Value returns the alpha value at the iterator. Panics if the iterator is
// not valid.
func (it AlphaIterator) Value() float64 {
	if !it.Valid() {
		panic("alphashape: dereferencing invalid AlphaIterator")
	}
	return it.shape.spectrum[it.pos]
}

// Index returns the position of the iterator in the spectrum.
func (it AlphaIterator) Index() int { return it.pos }

// Next returns an iterator advanced by one position.
func (it AlphaIterator) Next() AlphaIterator {
	return AlphaIterator{it.shape, it.pos + 1}
}

// Prev returns an iterator moved back by one position.
func (it AlphaIterator) Prev() AlphaIterator {
	return AlphaIterator{it.shape, it.pos - 1}
}

// AlphaBegin returns an iterator to the smallest critical alpha value.
func (s *AlphaShape) AlphaBegin() AlphaIterator {
	return AlphaIterator{s, 0}
}

// AlphaEnd returns the past-the-end iterator.
func (s *AlphaShape) AlphaEnd() AlphaIterator {
	return AlphaIterator{s, len(s.spectrum)}
}

// NumberOfAlphas returns the number of different critical alpha values.
func (s *AlphaShape) NumberOfAlphas() int { return len(s.spectrum) }

// NthAlpha returns the n-th critical alpha value in increasing order.
// Panics if n is out of range.
func (s *AlphaShape) NthAlpha(n int) float64 {
	if n < 0 || n >= len(s.spectrum) {
		panic(fmt.Sprintf("alphashape: alpha index %d out of range [0,%d)", n, len(s.spectrum)))
	}
	return s.spectrum[n]
}

// AlphaFind returns an iterator to an element matching alpha within the
// configured tolerance, or the past-the-end iterator if none matches.
// Linear search.
func (s *AlphaShape) AlphaFind(alpha float64) AlphaIterator {
	for i, v := range s.spectrum {
		if math.Abs(v-alpha) <= s.tol {
			return AlphaIterator{s, i}
		}
	}
	return s.AlphaEnd()
}

// AlphaLowerBound returns an iterator to the first element not less than
// alpha. Binary search.
func (s *AlphaShape) AlphaLowerBound(alpha float64) AlphaIterator {
	return AlphaIterator{s, sort.SearchFloat64s(s.spectrum, alpha)}
}

// AlphaUpperBound returns an iterator to the first element strictly greater
// than alpha. Binary search.
func (s *AlphaShape) AlphaUpperBound(alpha float64) AlphaIterator {
	pos := sort.Search(len(s.spectrum), func(i int) bool { return s.spectrum[i] > alpha })
	return AlphaIterator{s, pos}
}
