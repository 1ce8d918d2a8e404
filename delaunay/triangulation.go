package delaunay

// Infinity is the vertex index of the infinite vertex. Cells incident to the
// convex hull reference it; such cells are unbounded and carry no geometry.
const Infinity = -1

// Cell is a tetrahedral cell of the triangulation. V holds the four vertex
// indices (Infinity for the infinite vertex); N holds the four neighbor cell
// indices, where N[i] shares the facet opposite V[i].
type Cell struct {
	V [4]int
	N [4]int
}

// InfiniteIndex returns the position of the infinite vertex in c.V, or -1
// when the cell is finite.
func (c Cell) InfiniteIndex() int {
	for i, v := range c.V {
		if v == Infinity {
			return i
		}
	}
	return -1
}

// HasVertex reports whether v is one of the cell's vertices.
func (c Cell) HasVertex(v int) bool {
	return c.V[0] == v || c.V[1] == v || c.V[2] == v || c.V[3] == v
}

// Triangulation is an incremental 3D Delaunay triangulation. Points are
// inserted one at a time; once four affinely independent points exist the
// triangulation is three-dimensional and maintains tetrahedral cells,
// including infinite cells past each convex hull facet.
//
// Cospherical point groups are resolved by a fixed tie-break (a point
// exactly on a circumsphere is not in conflict), yielding one valid
// triangulation of the input rather than a symbolically perturbed one.
type Triangulation struct {
	points []Point
	index  map[Point]int

	cells []Cell
	dead  []bool
	free  []int

	// basis holds up to four affinely independent vertices collected while
	// the triangulation is still flat.
	basis []int
	last  int // walk start hint
}

// New returns an empty triangulation.
func New() *Triangulation {
	return &Triangulation{index: make(map[Point]int), last: -1}
}

// FromPoints builds a triangulation of the given points and compacts it.
func FromPoints(pts []Point) *Triangulation {
	t := New()
	for _, p := range pts {
		t.Insert(p)
	}
	t.Compact()
	return t
}

// NumVertices returns the number of distinct points inserted.
func (t *Triangulation) NumVertices() int { return len(t.points) }

// Vertex returns the point of vertex v. Panics if v is out of range.
func (t *Triangulation) Vertex(v int) Point {
	if v < 0 || v >= len(t.points) {
		panic("delaunay: vertex index out of range")
	}
	return t.points[v]
}

// Points returns the inserted points in vertex order. The returned slice is
// the internal storage and must not be modified.
func (t *Triangulation) Points() []Point { return t.points }

// NumCells returns the number of cell slots, live and dead. After Compact
// all slots are live.
func (t *Triangulation) NumCells() int { return len(t.cells) }

// Cell returns the cell at index ci. Panics if ci is out of range.
func (t *Triangulation) Cell(ci int) Cell {
	if ci < 0 || ci >= len(t.cells) {
		panic("delaunay: cell index out of range")
	}
	return t.cells[ci]
}

// Alive reports whether cell slot ci holds a live cell.
func (t *Triangulation) Alive(ci int) bool {
	return ci >= 0 && ci < len(t.cells) && !t.dead[ci]
}

// IsInfinite reports whether cell ci is incident to the infinite vertex.
func (t *Triangulation) IsInfinite(ci int) bool {
	return t.Cell(ci).InfiniteIndex() >= 0
}

// Dimension returns the affine dimension of the point set: -1 when empty,
// then 0 to 3 as independent directions appear. Cells exist only at 3.
func (t *Triangulation) Dimension() int {
	if len(t.cells) > 0 {
		return 3
	}
	return len(t.basis) - 1
}

// Insert adds p to the triangulation and returns its vertex index. If an
// identical point was inserted before, its existing index is returned.
func (t *Triangulation) Insert(p Point) int {
	if vi, ok := t.index[p]; ok {
		return vi
	}
	vi := len(t.points)
	t.points = append(t.points, p)
	t.index[p] = vi

	if len(t.cells) > 0 {
		t.insert3(vi)
		return vi
	}

	if t.extendBasis(vi); len(t.basis) == 4 {
		t.initTetrahedron()
		// Vertices collected while flat are now inserted for real.
		inBasis := map[int]bool{t.basis[0]: true, t.basis[1]: true, t.basis[2]: true, t.basis[3]: true}
		for v := range t.points {
			if !inBasis[v] {
				t.insert3(v)
			}
		}
	}
	return vi
}

// Compact drops dead cell slots and renumbers the survivors. Cell indices
// handed out before the call are invalidated.
func (t *Triangulation) Compact() {
	remap := make([]int, len(t.cells))
	j := 0
	for i := range t.cells {
		if t.dead[i] {
			remap[i] = -1
			continue
		}
		remap[i] = j
		t.cells[j] = t.cells[i]
		j++
	}
	t.cells = t.cells[:j]
	t.dead = t.dead[:j]
	for i := range t.dead {
		t.dead[i] = false
	}
	t.free = t.free[:0]
	for i := range t.cells {
		for k := 0; k < 4; k++ {
			if n := t.cells[i].N[k]; n >= 0 {
				t.cells[i].N[k] = remap[n]
			}
		}
	}
	if j > 0 {
		t.last = 0
	} else {
		t.last = -1
	}
}

// extendBasis grows the affinely independent vertex set with vi if it adds
// a new direction.
func (t *Triangulation) extendBasis(vi int) {
	b := t.basis
	p := t.points[vi]
	switch len(b) {
	case 0, 1:
		// Distinct points (duplicates were filtered) always extend.
		t.basis = append(b, vi)
	case 2:
		u := t.points[b[1]].Sub(t.points[b[0]])
		v := p.Sub(t.points[b[0]])
		if c := u.Cross(v); c.X != 0 || c.Y != 0 || c.Z != 0 {
			t.basis = append(b, vi)
		}
	case 3:
		if Orient(t.points[b[0]], t.points[b[1]], t.points[b[2]], p) != 0 {
			t.basis = append(b, vi)
		}
	}
}

func (t *Triangulation) newCell(v [4]int) int {
	c := Cell{V: v, N: [4]int{-1, -1, -1, -1}}
	if n := len(t.free); n > 0 {
		ci := t.free[n-1]
		t.free = t.free[:n-1]
		t.cells[ci] = c
		t.dead[ci] = false
		return ci
	}
	t.cells = append(t.cells, c)
	t.dead = append(t.dead, false)
	return len(t.cells) - 1
}

func (t *Triangulation) freeCell(ci int) {
	t.dead[ci] = true
	t.free = append(t.free, ci)
}

// faceOpposite returns the three vertices of v excluding position i, in
// stored order.
func faceOpposite(v [4]int, i int) [3]int {
	var f [3]int
	k := 0
	for j := 0; j < 4; j++ {
		if j != i {
			f[k] = v[j]
			k++
		}
	}
	return f
}

// initTetrahedron creates the first finite cell from the basis vertices
// plus the four infinite cells past its facets.
func (t *Triangulation) initTetrahedron() {
	b := [4]int{t.basis[0], t.basis[1], t.basis[2], t.basis[3]}
	if Orient(t.points[b[0]], t.points[b[1]], t.points[b[2]], t.points[b[3]]) < 0 {
		b[0], b[1] = b[1], b[0]
	}
	c := t.newCell(b)

	var infs [4]int
	for i := 0; i < 4; i++ {
		f := faceOpposite(b, i)
		infs[i] = t.newCell([4]int{f[0], f[1], f[2], Infinity})
	}
	pos := map[int]int{b[0]: 0, b[1]: 1, b[2]: 2, b[3]: 3}
	for i := 0; i < 4; i++ {
		t.cells[c].N[i] = infs[i]
		t.cells[infs[i]].N[3] = c
		// Infinite cells neighbor each other across facets through Infinity:
		// dropping finite vertex w of inf_i lands on the infinite cell
		// opposite w in the initial tetrahedron.
		for k := 0; k < 3; k++ {
			t.cells[infs[i]].N[k] = infs[pos[t.cells[infs[i]].V[k]]]
		}
	}
	t.last = c
}

// inConflict reports whether p lies inside the circumsphere of cell ci. For
// infinite cells the sphere degenerates to the half-space past the hull
// facet (plus the facet's own circumdisk for points exactly on its plane).
func (t *Triangulation) inConflict(ci int, p Point) bool {
	c := t.cells[ci]
	if inf := c.InfiniteIndex(); inf >= 0 {
		f := faceOpposite(c.V, inf)
		fa, fb, fc := t.points[f[0]], t.points[f[1]], t.points[f[2]]
		nf := t.cells[c.N[inf]]
		w := t.points[t.oppositeVertex(nf, f)]
		so := Orient(fa, fb, fc, w)
		op := Orient(fa, fb, fc, p)
		if so*op < 0 {
			return true
		}
		if op == 0 {
			cc, ok := CircumcenterOfTriangle(fa, fb, fc)
			return ok && SquaredDistance(p, cc) < SquaredDistance(cc, fa)
		}
		return false
	}
	a, b2, c2, d := t.points[c.V[0]], t.points[c.V[1]], t.points[c.V[2]], t.points[c.V[3]]
	return InSphere(a, b2, c2, d, p) > 0
}

// oppositeVertex returns the vertex of cell c that is not part of facet f.
func (t *Triangulation) oppositeVertex(c Cell, f [3]int) int {
	for _, v := range c.V {
		if v != f[0] && v != f[1] && v != f[2] {
			return v
		}
	}
	panic("delaunay: cell has no vertex outside facet")
}

func (t *Triangulation) mirrorIndex(ci, of int) int {
	for j := 0; j < 4; j++ {
		if t.cells[ci].N[j] == of {
			return j
		}
	}
	panic("delaunay: broken cell adjacency")
}

// insert3 inserts vertex vi into the three-dimensional triangulation using
// the Bowyer-Watson cavity algorithm: find the cells whose circumspheres
// contain the point, remove them, and star their boundary from the point.
func (t *Triangulation) insert3(vi int) {
	p := t.points[vi]
	start := t.locateCell(p)

	// Conflict region BFS. The located cell contains p, so it is in
	// conflict even when p sits exactly on its circumsphere.
	conflict := map[int]bool{start: true}
	queue := []int{start}
	for qi := 0; qi < len(queue); qi++ {
		c := t.cells[queue[qi]]
		for i := 0; i < 4; i++ {
			n := c.N[i]
			if conflict[n] {
				continue
			}
			if t.inConflict(n, p) {
				conflict[n] = true
				queue = append(queue, n)
			}
		}
	}

	type boundaryFacet struct {
		f       [3]int
		outside int
		inside  int
	}
	var boundary []boundaryFacet
	for _, ci := range queue {
		c := t.cells[ci]
		for i := 0; i < 4; i++ {
			if !conflict[c.N[i]] {
				boundary = append(boundary, boundaryFacet{faceOpposite(c.V, i), c.N[i], ci})
			}
		}
	}

	// Star the cavity boundary from vi. New cells sharing a facet through
	// vi are matched by the cavity-boundary edge they straddle.
	type halfFacet struct {
		cell, pos int
	}
	edgeMap := make(map[[2]int]halfFacet)
	firstFinite := -1
	for _, bf := range boundary {
		v4 := [4]int{bf.f[0], bf.f[1], bf.f[2], vi}
		infinite := bf.f[0] == Infinity || bf.f[1] == Infinity || bf.f[2] == Infinity
		if !infinite {
			if Orient(t.points[v4[0]], t.points[v4[1]], t.points[v4[2]], p) < 0 {
				v4[0], v4[1] = v4[1], v4[0]
			}
		}
		nc := t.newCell(v4)
		t.cells[nc].N[3] = bf.outside
		t.cells[bf.outside].N[t.mirrorIndex(bf.outside, bf.inside)] = nc
		for k := 0; k < 3; k++ {
			a, b := v4[(k+1)%3], v4[(k+2)%3]
			if a > b {
				a, b = b, a
			}
			key := [2]int{a, b}
			if prev, ok := edgeMap[key]; ok {
				t.cells[nc].N[k] = prev.cell
				t.cells[prev.cell].N[prev.pos] = nc
				delete(edgeMap, key)
			} else {
				edgeMap[key] = halfFacet{nc, k}
			}
		}
		if !infinite && firstFinite < 0 {
			firstFinite = nc
		}
	}

	for _, ci := range queue {
		t.freeCell(ci)
	}
	if firstFinite >= 0 {
		t.last = firstFinite
	}
}

// locateCell walks from the last insertion site toward p and returns a cell
// containing it: a finite cell when p is inside the hull, otherwise an
// infinite cell whose hull facet p sees.
func (t *Triangulation) locateCell(p Point) int {
	ci := t.last
	if ci < 0 || t.dead[ci] {
		ci = t.firstLiveFinite()
	}
	if inf := t.cells[ci].InfiniteIndex(); inf >= 0 {
		ci = t.cells[ci].N[inf]
	}

	maxSteps := 4*len(t.cells) + 64
	off := 0
	for step := 0; step < maxSteps; step++ {
		c := t.cells[ci]
		if c.InfiniteIndex() >= 0 {
			return ci
		}
		moved := false
		for k := 0; k < 4; k++ {
			i := (k + off) % 4
			f := faceOpposite(c.V, i)
			fa, fb, fc := t.points[f[0]], t.points[f[1]], t.points[f[2]]
			s := Orient(fa, fb, fc, t.points[c.V[i]])
			o := Orient(fa, fb, fc, p)
			if s*o < 0 {
				ci = c.N[i]
				moved = true
				break
			}
		}
		if !moved {
			return ci
		}
		off++
	}

	// Degenerate walk cycle: fall back to scanning for a conflict cell.
	for i := range t.cells {
		if !t.dead[i] && t.inConflict(i, p) {
			return i
		}
	}
	return ci
}

func (t *Triangulation) firstLiveFinite() int {
	for i := range t.cells {
		if !t.dead[i] && t.cells[i].InfiniteIndex() < 0 {
			return i
		}
	}
	panic("delaunay: no live finite cell")
}
