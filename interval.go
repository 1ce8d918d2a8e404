package alphashape

import (
	"math"
	"sort"

	"github.com/YaweiYe29/alphashape/delaunay"
)

// span records that a simplex holds Class for alpha in [From, next From).
// The spans of a simplex cover [0, +Inf) and are strictly increasing in
// From; General-mode classification of edges and vertices is answered by
// membership search over them.
type span struct {
	From  float64
	Class Classification
}

type facetStatus struct {
	// lower is the alpha at which the facet joins the complex and becomes
	// Regular. For interior facets this is mid; for convex hull facets it
	// is the facet's own critical value: its squared circumradius when the
	// facet is Gabriel, otherwise the incident cell's alpha.
	lower float64
	// mid is the smaller incident cell alpha.
	mid float64
	// max is the larger incident cell alpha, +Inf past the convex hull;
	// the facet is Interior from here.
	max float64
	// cells are the two incident cell indices; one may be infinite.
	cells [2]int
}

type edgeStatus struct {
	r2       float64 // squared radius of the diametral sphere
	attached bool    // a link vertex intrudes into the diametral sphere
	entry    float64 // alpha at which the edge joins the complex
	minFacet float64 // smallest incident facet lower bound
	minCell  float64 // smallest incident cell alpha
	maxCell  float64 // largest incident cell alpha; +Inf on the hull
	spans    []span
}

type vertexStatus struct {
	minEdge float64 // smallest incident edge entry
	minCell float64 // smallest incident cell alpha
	maxCell float64 // largest incident cell alpha; +Inf on the hull
	spans   []span
}

// assignIntervals computes the alpha interval of every simplex of the
// owned triangulation, the critical-value spectrum and the coverage
// threshold. It runs once per (re)build; alpha and mode changes never
// re-enter it.
func (s *AlphaShape) assignIntervals() {
	t := s.tri
	inf := math.Inf(1)
	n := t.NumCells()

	s.cellAlpha = make([]float64, n)
	s.facets = make(map[FacetKey]*facetStatus)
	s.edges = make(map[EdgeKey]*edgeStatus)
	s.verts = make([]vertexStatus, t.NumVertices())
	s.spectrum = nil
	s.coverageAlpha = inf

	if n == 0 {
		// Flat or empty triangulation: no cells, every simplex Exterior.
		return
	}

	// Cells: threshold is the squared circumradius.
	for i := 0; i < n; i++ {
		c := t.Cell(i)
		if c.InfiniteIndex() >= 0 {
			s.cellAlpha[i] = inf
			continue
		}
		r2, ok := delaunay.SquaredCircumradiusOfTetrahedron(
			t.Vertex(c.V[0]), t.Vertex(c.V[1]), t.Vertex(c.V[2]), t.Vertex(c.V[3]))
		if !ok {
			r2 = inf
		}
		s.cellAlpha[i] = r2
	}

	// Facets: collect the two incident cells of every finite facet.
	for i := 0; i < n; i++ {
		c := t.Cell(i)
		for fi := 0; fi < 4; fi++ {
			key, finite := s.cellFacetKey(c, fi)
			if !finite {
				continue
			}
			st, ok := s.facets[key]
			if !ok {
				st = &facetStatus{cells: [2]int{-1, -1}}
				s.facets[key] = st
			}
			if st.cells[0] < 0 {
				st.cells[0] = i
			} else if st.cells[0] != i {
				st.cells[1] = i
			}
		}
	}
	for key, st := range s.facets {
		a0 := s.cellAlphaOrInf(st.cells[0])
		a1 := s.cellAlphaOrInf(st.cells[1])
		st.mid = math.Min(a0, a1)
		st.max = math.Max(a0, a1)
		st.lower = st.mid
		if !math.IsInf(st.max, 1) {
			continue
		}
		// Convex hull facet: the lower bound is its own critical value, not
		// one derived from the fictitious outer cell.
		pa, pb, pc := t.Vertex(key.A), t.Vertex(key.B), t.Vertex(key.C)
		cc, ok := delaunay.CircumcenterOfTriangle(pa, pb, pc)
		if !ok {
			continue
		}
		r2 := delaunay.SquaredDistance(cc, pa)
		attached := false
		for _, ci := range st.cells {
			if ci < 0 || t.IsInfinite(ci) {
				continue
			}
			w := s.oppositeOfFacet(ci, key)
			if delaunay.SquaredDistance(t.Vertex(w), cc) < r2 {
				attached = true
				break
			}
		}
		if !attached {
			st.lower = math.Min(r2, st.mid)
		}
	}

	// Edges: fold incident cells, then incident facets, then decide entry.
	for i := 0; i < n; i++ {
		c := t.Cell(i)
		ca := s.cellAlpha[i]
		for a := 0; a < 4; a++ {
			for b := a + 1; b < 4; b++ {
				u, v := c.V[a], c.V[b]
				if u == delaunay.Infinity || v == delaunay.Infinity {
					continue
				}
				key := MakeEdgeKey(u, v)
				st, ok := s.edges[key]
				if !ok {
					st = &edgeStatus{
						r2:       delaunay.SquaredDiametralRadius(t.Vertex(u), t.Vertex(v)),
						minFacet: inf,
						minCell:  inf,
						maxCell:  math.Inf(-1),
					}
					s.edges[key] = st
				}
				st.minCell = math.Min(st.minCell, ca)
				st.maxCell = math.Max(st.maxCell, ca)
				if !st.attached {
					// Gabriel test against the link vertices of this cell.
					mid := delaunay.Midpoint(t.Vertex(u), t.Vertex(v))
					for _, w := range c.V {
						if w == u || w == v || w == delaunay.Infinity {
							continue
						}
						if delaunay.SquaredDistance(t.Vertex(w), mid) < st.r2 {
							st.attached = true
							break
						}
					}
				}
			}
		}
	}
	for key, st := range s.facets {
		for _, ek := range [3]EdgeKey{
			MakeEdgeKey(key.A, key.B),
			MakeEdgeKey(key.A, key.C),
			MakeEdgeKey(key.B, key.C),
		} {
			es := s.edges[ek]
			es.minFacet = math.Min(es.minFacet, st.lower)
		}
	}
	for _, st := range s.edges {
		if math.IsInf(st.maxCell, -1) {
			st.maxCell = inf
		}
		if st.attached {
			st.entry = st.minFacet
		} else {
			st.entry = math.Min(st.r2, st.minFacet)
		}
		st.spans = buildSpans(
			[]float64{0, st.entry, st.minFacet, st.maxCell},
			func(alpha float64) Classification { return generalEdgeClass(st, alpha) },
		)
	}

	// Vertices.
	for i := range s.verts {
		s.verts[i] = vertexStatus{minEdge: inf, minCell: inf, maxCell: math.Inf(-1)}
	}
	for i := 0; i < n; i++ {
		c := t.Cell(i)
		ca := s.cellAlpha[i]
		for _, v := range c.V {
			if v == delaunay.Infinity {
				continue
			}
			st := &s.verts[v]
			st.minCell = math.Min(st.minCell, ca)
			st.maxCell = math.Max(st.maxCell, ca)
		}
	}
	for key, st := range s.edges {
		for _, v := range [2]int{key.A, key.B} {
			if st.entry < s.verts[v].minEdge {
				s.verts[v].minEdge = st.entry
			}
		}
	}
	for i := range s.verts {
		st := &s.verts[i]
		if math.IsInf(st.maxCell, -1) {
			st.maxCell = inf
		}
		st.spans = buildSpans(
			[]float64{0, st.minEdge, st.maxCell},
			func(alpha float64) Classification { return generalVertexClass(st, alpha) },
		)
	}

	s.collectSpectrum()
	s.computeCoverage()
}

// generalEdgeClass classifies an edge in General mode directly from its
// thresholds; the stored spans are built from it.
func generalEdgeClass(st *edgeStatus, alpha float64) Classification {
	switch {
	case alpha < st.entry:
		return Exterior
	case alpha >= st.maxCell:
		return Interior
	case alpha >= st.minFacet:
		return Regular
	default:
		return Singular
	}
}

// generalVertexClass classifies a vertex in General mode. Vertices of a
// three-dimensional triangulation join the complex at alpha 0.
func generalVertexClass(st *vertexStatus, alpha float64) Classification {
	switch {
	case alpha >= st.maxCell:
		return Interior
	case alpha >= st.minEdge:
		return Regular
	default:
		return Singular
	}
}

// buildSpans evaluates eval on each elementary interval delimited by the
// given candidate thresholds and merges runs with equal classification.
func buildSpans(breaks []float64, eval func(alpha float64) Classification) []span {
	sort.Float64s(breaks)
	var spans []span
	prev := math.Inf(-1)
	for _, b := range breaks {
		if math.IsInf(b, 1) || b == prev {
			continue
		}
		prev = b
		cl := eval(b)
		if len(spans) == 0 || spans[len(spans)-1].Class != cl {
			spans = append(spans, span{From: b, Class: cl})
		}
	}
	return spans
}

// classifyBySpans returns the classification of the span containing alpha.
// Linear scan: the span count per simplex is small, bounded by the local
// triangulation degree.
func classifyBySpans(spans []span, alpha float64) Classification {
	for i := len(spans) - 1; i >= 0; i-- {
		if alpha >= spans[i].From {
			return spans[i].Class
		}
	}
	return Exterior
}

// collectSpectrum gathers every finite interval endpoint stored in any
// simplex into the sorted, deduplicated alpha spectrum.
func (s *AlphaShape) collectSpectrum() {
	var vals []float64
	add := func(v float64) {
		if !math.IsInf(v, 0) {
			vals = append(vals, v)
		}
	}
	for i, a := range s.cellAlpha {
		if !s.tri.IsInfinite(i) {
			add(a)
		}
	}
	for _, st := range s.facets {
		add(st.lower)
		add(st.mid)
		add(st.max)
	}
	for _, st := range s.edges {
		for _, sp := range st.spans {
			add(sp.From)
		}
	}
	for i := range s.verts {
		for _, sp := range s.verts[i].spans {
			add(sp.From)
		}
	}
	sort.Float64s(vals)
	spectrum := make([]float64, 0, len(vals))
	for _, v := range vals {
		if len(spectrum) == 0 || v-spectrum[len(spectrum)-1] > s.tol {
			spectrum = append(spectrum, v)
		}
	}
	s.spectrum = spectrum
}

// computeCoverage finds the smallest alpha at which every vertex is
// incident to a complex cell, i.e. no vertex is Exterior in the
// regularized view.
func (s *AlphaShape) computeCoverage() {
	cov := 0.0
	for i := range s.verts {
		if s.verts[i].minCell > cov {
			cov = s.verts[i].minCell
		}
	}
	s.coverageAlpha = cov
}

func (s *AlphaShape) cellAlphaOrInf(ci int) float64 {
	if ci < 0 {
		return math.Inf(1)
	}
	return s.cellAlpha[ci]
}

// cellFacetKey returns the canonical key of the fi-th facet of c; finite is
// false when the facet touches the infinite vertex.
func (s *AlphaShape) cellFacetKey(c delaunay.Cell, fi int) (key FacetKey, finite bool) {
	var f [3]int
	k := 0
	for j := 0; j < 4; j++ {
		if j != fi {
			if c.V[j] == delaunay.Infinity {
				return FacetKey{}, false
			}
			f[k] = c.V[j]
			k++
		}
	}
	return MakeFacetKey(f[0], f[1], f[2]), true
}

// oppositeOfFacet returns the vertex of cell ci that is not part of facet f.
func (s *AlphaShape) oppositeOfFacet(ci int, f FacetKey) int {
	c := s.tri.Cell(ci)
	for _, v := range c.V {
		if v != f.A && v != f.B && v != f.C {
			return v
		}
	}
	panic("alphashape: cell has no vertex outside facet")
}
