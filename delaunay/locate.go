package delaunay

// LocateType describes the kind of face a located point lies on.
type LocateType int

const (
	// OutsideHull means the point lies outside the convex hull, or the
	// triangulation has no cells.
	OutsideHull LocateType = iota
	OnVertex
	OnEdge
	OnFacet
	InCell
)

func (lt LocateType) String() string {
	switch lt {
	case OutsideHull:
		return "OUTSIDE_HULL"
	case OnVertex:
		return "ON_VERTEX"
	case OnEdge:
		return "ON_EDGE"
	case OnFacet:
		return "ON_FACET"
	case InCell:
		return "IN_CELL"
	}
	return "UNKNOWN"
}

// Locate finds the face containing p. It returns a finite cell index and
// the face within it: for OnVertex, li is the vertex position in the cell;
// for OnEdge, li and lj are the positions of the edge endpoints; for
// OnFacet, li is the position of the opposite vertex. For OutsideHull the
// cell index is -1.
//
// Degeneracy detection relies on exact floating-point orientation zeroes,
// so points merely close to a face are reported as InCell.
func (t *Triangulation) Locate(p Point) (cell int, lt LocateType, li, lj int) {
	if len(t.cells) == 0 {
		return -1, OutsideHull, -1, -1
	}
	ci := t.locateCell(p)
	c := t.cells[ci]
	if inf := c.InfiniteIndex(); inf >= 0 {
		// The walk stopped at an infinite cell; p may still lie exactly on
		// the hull facet, which belongs to the finite neighbor.
		fi := c.N[inf]
		if contained, li2, lj2, lt2 := t.classifyInCell(fi, p); contained && lt2 != InCell {
			return fi, lt2, li2, lj2
		}
		return -1, OutsideHull, -1, -1
	}
	contained, li, lj, lt := t.classifyInCell(ci, p)
	if !contained {
		return -1, OutsideHull, -1, -1
	}
	return ci, lt, li, lj
}

// classifyInCell determines where p sits relative to finite cell ci from
// the zero pattern of the four facet orientations. contained is false when
// p lies strictly outside the cell.
func (t *Triangulation) classifyInCell(ci int, p Point) (contained bool, li, lj int, lt LocateType) {
	c := t.cells[ci]
	var zero [4]bool
	nzero := 0
	for i := 0; i < 4; i++ {
		f := faceOpposite(c.V, i)
		fa, fb, fc := t.points[f[0]], t.points[f[1]], t.points[f[2]]
		s := Orient(fa, fb, fc, t.points[c.V[i]])
		o := Orient(fa, fb, fc, p)
		if s*o < 0 {
			return false, -1, -1, OutsideHull
		}
		if o == 0 {
			zero[i] = true
			nzero++
		}
	}
	switch nzero {
	case 0:
		return true, -1, -1, InCell
	case 1:
		for i := 0; i < 4; i++ {
			if zero[i] {
				return true, i, -1, OnFacet
			}
		}
	case 2:
		// p lies on the edge spanned by the two vertices whose opposite
		// facets are nonzero.
		li, lj = -1, -1
		for i := 0; i < 4; i++ {
			if !zero[i] {
				if li < 0 {
					li = i
				} else {
					lj = i
				}
			}
		}
		return true, li, lj, OnEdge
	case 3:
		// p coincides with the single vertex whose opposite facet is nonzero.
		for i := 0; i < 4; i++ {
			if !zero[i] {
				return true, i, -1, OnVertex
			}
		}
	}
	// All four orientations zero: degenerate cell; treat as containment.
	return true, -1, -1, InCell
}
