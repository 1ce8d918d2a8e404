package alphashape

import "sort"

// AlphaShapeCells returns the finite cells classified as class at the
// current alpha.
func (s *AlphaShape) AlphaShapeCells(class Classification) []int {
	return s.AlphaShapeCellsAt(class, s.alpha)
}

// AlphaShapeCellsAt returns the finite cells classified as class at the
// given alpha, in increasing index order.
func (s *AlphaShape) AlphaShapeCellsAt(class Classification, alpha float64) []int {
	checkAlpha(alpha)
	var out []int
	for i := range s.cellAlpha {
		if s.tri.IsInfinite(i) {
			continue
		}
		if s.ClassifyCellAt(i, alpha) == class {
			out = append(out, i)
		}
	}
	return out
}

// AlphaShapeFacets returns the finite facets classified as class at the
// current alpha.
func (s *AlphaShape) AlphaShapeFacets(class Classification) []FacetKey {
	return s.AlphaShapeFacetsAt(class, s.alpha)
}

// AlphaShapeFacetsAt returns the finite facets classified as class at the
// given alpha, in increasing key order.
func (s *AlphaShape) AlphaShapeFacetsAt(class Classification, alpha float64) []FacetKey {
	checkAlpha(alpha)
	var out []FacetKey
	for key := range s.facets {
		if s.ClassifyFacetAt(key, alpha) == class {
			out = append(out, key)
		}
	}
	sort.Slice(out, func(i, j int) bool { return facetKeyLess(out[i], out[j]) })
	return out
}

// AlphaShapeEdges returns the finite edges classified as class at the
// current alpha.
func (s *AlphaShape) AlphaShapeEdges(class Classification) []EdgeKey {
	return s.AlphaShapeEdgesAt(class, s.alpha)
}

// AlphaShapeEdgesAt returns the finite edges classified as class at the
// given alpha, in increasing key order.
func (s *AlphaShape) AlphaShapeEdgesAt(class Classification, alpha float64) []EdgeKey {
	checkAlpha(alpha)
	var out []EdgeKey
	for key := range s.edges {
		if s.ClassifyEdgeAt(key, alpha) == class {
			out = append(out, key)
		}
	}
	sort.Slice(out, func(i, j int) bool { return edgeKeyLess(out[i], out[j]) })
	return out
}

// AlphaShapeVertices returns the vertices classified as class at the
// current alpha.
func (s *AlphaShape) AlphaShapeVertices(class Classification) []int {
	return s.AlphaShapeVerticesAt(class, s.alpha)
}

// AlphaShapeVerticesAt returns the vertices classified as class at the
// given alpha, in increasing index order.
func (s *AlphaShape) AlphaShapeVerticesAt(class Classification, alpha float64) []int {
	checkAlpha(alpha)
	var out []int
	for v := range s.verts {
		if s.ClassifyVertexAt(v, alpha) == class {
			out = append(out, v)
		}
	}
	return out
}

func edgeKeyLess(a, b EdgeKey) bool {
	if a.A != b.A {
		return a.A < b.A
	}
	return a.B < b.B
}

func facetKeyLess(a, b FacetKey) bool {
	if a.A != b.A {
		return a.A < b.A
	}
	if a.B != b.B {
		return a.B < b.B
	}
	return a.C < b.C
}
