package alphashape

import (
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/YaweiYe29/alphashape/delaunay"
)

func TestAlphaShapeFacets_UnitTetra(t *testing.T) {
	s := mustShape(t, unitTetraPoints(), DefaultConfig())

	// At 1/2 the three Gabriel hull facets are on the boundary.
	assert.Equal(t,
		[]FacetKey{{0, 1, 2}, {0, 1, 3}, {0, 2, 3}},
		s.AlphaShapeFacetsAt(Regular, 0.5))

	// At 3/4 the attached facet joins them.
	assert.Equal(t,
		[]FacetKey{{0, 1, 2}, {0, 1, 3}, {0, 2, 3}, {1, 2, 3}},
		s.AlphaShapeFacetsAt(Regular, 0.75))

	assert.Empty(t, s.AlphaShapeFacetsAt(Regular, 0.4))
	assert.Empty(t, s.AlphaShapeFacetsAt(Interior, 1e12), "hull facets are never Interior")
}

func TestAlphaShapeCells_UnitTetra(t *testing.T) {
	s := mustShape(t, unitTetraPoints(), DefaultConfig())
	c := finiteCellOf(t, s)

	assert.Empty(t, s.AlphaShapeCellsAt(Interior, 0.5))
	assert.Equal(t, []int{c}, s.AlphaShapeCellsAt(Interior, 0.75))
	assert.Equal(t, []int{c}, s.AlphaShapeCellsAt(Exterior, 0.5))
}

func TestAlphaShapeEdges_UnitTetra(t *testing.T) {
	s := mustShape(t, unitTetraPoints(), Config{Mode: General})

	assert.Equal(t,
		[]EdgeKey{{0, 1}, {0, 2}, {0, 3}},
		s.AlphaShapeEdgesAt(Singular, 0.3))
	assert.Equal(t,
		[]EdgeKey{{0, 1}, {0, 2}, {0, 3}, {1, 2}, {1, 3}, {2, 3}},
		s.AlphaShapeEdgesAt(Regular, 0.5))

	s.SetMode(Regularized)
	assert.Empty(t, s.AlphaShapeEdgesAt(Singular, 0.3))
	assert.Empty(t, s.AlphaShapeEdgesAt(Regular, 0.5))
	assert.Equal(t,
		[]EdgeKey{{0, 1}, {0, 2}, {0, 3}, {1, 2}, {1, 3}, {2, 3}},
		s.AlphaShapeEdgesAt(Regular, 0.75))
}

func TestAlphaShapeVertices_UnitTetra(t *testing.T) {
	s := mustShape(t, unitTetraPoints(), DefaultConfig())

	assert.Equal(t, []int{0, 1, 2, 3}, s.AlphaShapeVerticesAt(Exterior, 0.5))
	assert.Equal(t, []int{0, 1, 2, 3}, s.AlphaShapeVerticesAt(Regular, 0.75))

	s.SetMode(General)
	assert.Equal(t, []int{0, 1, 2, 3}, s.AlphaShapeVerticesAt(Singular, 0))
}

func TestAlphaShapeEnumeration_UsesCurrentAlpha(t *testing.T) {
	s := mustShape(t, unitTetraPoints(), Config{Alpha: 0.5})
	assert.Len(t, s.AlphaShapeFacets(Regular), 3)

	s.SetAlpha(0.75)
	assert.Len(t, s.AlphaShapeFacets(Regular), 4)
}

func TestFiltration_UnitTetra(t *testing.T) {
	s := mustShape(t, unitTetraPoints(), DefaultConfig())
	entries := s.Filtration()

	// 4 vertices + 6 edges + 4 facets + 1 cell.
	assert.Len(t, entries, 15)

	// Vertices first, at alpha zero, in index order.
	for v := 0; v < 4; v++ {
		assert.Equal(t, VertexSimplex(v), entries[v].Simplex)
		assert.Equal(t, 0.0, entries[v].Alpha)
	}
	// The cell comes last, tied with the attached facet but after it.
	last := entries[len(entries)-1]
	assert.Equal(t, 3, last.Simplex.Dim)
	assert.InDelta(t, 0.75, last.Alpha, 1e-12)
	assert.Equal(t, FacetSimplex(FacetKey{1, 2, 3}), entries[len(entries)-2].Simplex)
}

func TestFiltration_FaceBeforeCoface(t *testing.T) {
	s := mustShape(t, outlierPoints(), DefaultConfig())
	entries := s.Filtration()

	pos := make(map[Simplex]int, len(entries))
	for i, e := range entries {
		if i > 0 {
			assert.GreaterOrEqual(t, e.Alpha, entries[i-1].Alpha, "filtration out of order at %d", i)
		}
		pos[e.Simplex] = i
	}
	assert.Len(t, pos, len(entries), "duplicate simplices in filtration")

	for key := range s.facets {
		fp := pos[FacetSimplex(key)]
		for _, ek := range [3]EdgeKey{
			MakeEdgeKey(key.A, key.B),
			MakeEdgeKey(key.A, key.C),
			MakeEdgeKey(key.B, key.C),
		} {
			assert.Less(t, pos[EdgeSimplex(ek)], fp, "edge %v after facet %v", ek, key)
		}
	}
	tr := s.Triangulation()
	for ci := 0; ci < tr.NumCells(); ci++ {
		if tr.IsInfinite(ci) {
			continue
		}
		cp := pos[CellSimplex(ci)]
		c := tr.Cell(ci)
		for i := 0; i < 4; i++ {
			var f [3]int
			k := 0
			for j := 0; j < 4; j++ {
				if j != i {
					f[k] = c.V[j]
					k++
				}
			}
			sort.Ints(f[:])
			fk := FacetKey{f[0], f[1], f[2]}
			assert.Less(t, pos[FacetSimplex(fk)], cp, "facet %v after cell %d", fk, ci)
		}
	}
}

func TestFiltration_EmptyWithoutCells(t *testing.T) {
	s := mustShape(t, []delaunay.Point{{X: 0, Y: 0, Z: 0}, {X: 1, Y: 0, Z: 0}}, DefaultConfig())
	assert.Nil(t, s.Filtration())
}
