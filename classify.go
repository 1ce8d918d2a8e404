package alphashape

import (
	"fmt"

	"github.com/YaweiYe29/alphashape/delaunay"
)

// ClassifyCell classifies cell c at the current alpha.
func (s *AlphaShape) ClassifyCell(c int) Classification {
	return s.ClassifyCellAt(c, s.alpha)
}

// ClassifyCellAt classifies cell c at the given alpha: Interior once alpha
// reaches the cell's squared circumradius, Exterior before. Infinite cells
// are always Exterior. Panics if alpha < 0 or c is not a cell of the
// triangulation.
func (s *AlphaShape) ClassifyCellAt(c int, alpha float64) Classification {
	checkAlpha(alpha)
	if c < 0 || c >= len(s.cellAlpha) {
		panic(fmt.Sprintf("alphashape: invalid cell handle %d", c))
	}
	if alpha >= s.cellAlpha[c] {
		return Interior
	}
	return Exterior
}

// ClassifyFacet classifies facet f at the current alpha.
func (s *AlphaShape) ClassifyFacet(f FacetKey) Classification {
	return s.ClassifyFacetAt(f, s.alpha)
}

// ClassifyFacetAt classifies facet f at the given alpha against its
// two-sided interval: Exterior below the lower bound, Regular within,
// Interior from the upper bound on. The mapping is the same in both modes.
// Facets incident to the infinite vertex are always Exterior. Panics if
// alpha < 0 or f is not a facet of the triangulation.
func (s *AlphaShape) ClassifyFacetAt(f FacetKey, alpha float64) Classification {
	checkAlpha(alpha)
	if f.IsInfinite() {
		return Exterior
	}
	st, ok := s.facets[f]
	if !ok {
		panic(fmt.Sprintf("alphashape: invalid facet handle %v", f))
	}
	switch {
	case alpha < st.lower:
		return Exterior
	case alpha >= st.max:
		return Interior
	default:
		return Regular
	}
}

// ClassifyFacetOfCell classifies the facet of cell c opposite its i-th
// vertex at the current alpha.
func (s *AlphaShape) ClassifyFacetOfCell(c, i int) Classification {
	return s.ClassifyFacetOfCellAt(c, i, s.alpha)
}

// ClassifyFacetOfCellAt classifies the facet of cell c opposite its i-th
// vertex at the given alpha.
func (s *AlphaShape) ClassifyFacetOfCellAt(c, i int, alpha float64) Classification {
	return s.ClassifyFacetAt(s.FacetOf(c, i), alpha)
}

// ClassifyEdge classifies edge e at the current alpha.
func (s *AlphaShape) ClassifyEdge(e EdgeKey) Classification {
	return s.ClassifyEdgeAt(e, s.alpha)
}

// ClassifyEdgeAt classifies edge e at the given alpha. In General mode the
// stored classification spans are searched; in Regularized mode the edge is
// classified on the fly against its incident cell thresholds. Edges
// incident to the infinite vertex are always Exterior. Panics if alpha < 0
// or e is not an edge of the triangulation.
func (s *AlphaShape) ClassifyEdgeAt(e EdgeKey, alpha float64) Classification {
	checkAlpha(alpha)
	if e.IsInfinite() {
		return Exterior
	}
	st, ok := s.edges[e]
	if !ok {
		panic(fmt.Sprintf("alphashape: invalid edge handle %v", e))
	}
	if s.mode == General {
		return classifyBySpans(st.spans, alpha)
	}
	switch {
	case alpha < st.minCell:
		return Exterior
	case alpha >= st.maxCell:
		return Interior
	default:
		return Regular
	}
}

// ClassifyVertex classifies vertex v at the current alpha.
func (s *AlphaShape) ClassifyVertex(v int) Classification {
	return s.ClassifyVertexAt(v, s.alpha)
}

// ClassifyVertexAt classifies vertex v at the given alpha. The infinite
// vertex is always Exterior, as is every vertex of a triangulation without
// cells. Panics if alpha < 0 or v is not a vertex of the triangulation.
func (s *AlphaShape) ClassifyVertexAt(v int, alpha float64) Classification {
	checkAlpha(alpha)
	if v == delaunay.Infinity {
		return Exterior
	}
	if v < 0 || v >= len(s.verts) {
		panic(fmt.Sprintf("alphashape: invalid vertex handle %d", v))
	}
	if len(s.cellAlpha) == 0 {
		return Exterior
	}
	st := &s.verts[v]
	if s.mode == General {
		return classifyBySpans(st.spans, alpha)
	}
	switch {
	case alpha < st.minCell:
		return Exterior
	case alpha >= st.maxCell:
		return Interior
	default:
		return Regular
	}
}

// ClassifyPoint locates p in the triangulation and classifies the face it
// lies on at the current alpha.
func (s *AlphaShape) ClassifyPoint(p delaunay.Point) Classification {
	return s.ClassifyPointAt(p, s.alpha)
}

// ClassifyPointAt locates p and classifies the located face at the given
// alpha. Points outside the convex hull are Exterior.
func (s *AlphaShape) ClassifyPointAt(p delaunay.Point, alpha float64) Classification {
	checkAlpha(alpha)
	ci, lt, li, lj := s.tri.Locate(p)
	switch lt {
	case delaunay.OutsideHull:
		return Exterior
	case delaunay.OnVertex:
		return s.ClassifyVertexAt(s.tri.Cell(ci).V[li], alpha)
	case delaunay.OnEdge:
		cell := s.tri.Cell(ci)
		return s.ClassifyEdgeAt(MakeEdgeKey(cell.V[li], cell.V[lj]), alpha)
	case delaunay.OnFacet:
		return s.ClassifyFacetAt(s.FacetOf(ci, li), alpha)
	default:
		return s.ClassifyCellAt(ci, alpha)
	}
}
