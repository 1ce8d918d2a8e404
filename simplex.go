package alphashape

import (
	"fmt"

	"github.com/YaweiYe29/alphashape/delaunay"
)

// EdgeKey identifies an edge by its endpoint vertex indices, A < B.
type EdgeKey struct {
	A, B int
}

// MakeEdgeKey returns the canonical key for the edge between vertices a and b.
func MakeEdgeKey(a, b int) EdgeKey {
	if a > b {
		a, b = b, a
	}
	return EdgeKey{a, b}
}

// FacetKey identifies a facet by its vertex indices, A < B < C.
type FacetKey struct {
	A, B, C int
}

// MakeFacetKey returns the canonical key for the facet on vertices a, b, c.
func MakeFacetKey(a, b, c int) FacetKey {
	if a > b {
		a, b = b, a
	}
	if b > c {
		b, c = c, b
	}
	if a > b {
		a, b = b, a
	}
	return FacetKey{a, b, c}
}

// IsInfinite reports whether the facet is incident to the infinite vertex.
func (f FacetKey) IsInfinite() bool { return f.A == delaunay.Infinity }

// IsInfinite reports whether the edge is incident to the infinite vertex.
func (e EdgeKey) IsInfinite() bool { return e.A == delaunay.Infinity }

// Simplex identifies a k-dimensional simplex of the triangulation by its
// vertex indices for k < 3, or by cell index for k = 3. Only the first
// Dim+1 entries of V are meaningful; for cells, V[0] is the cell index.
type Simplex struct {
	Dim int
	V   [4]int
}

// VertexSimplex wraps a vertex index.
func VertexSimplex(v int) Simplex { return Simplex{Dim: 0, V: [4]int{v, -1, -1, -1}} }

// EdgeSimplex wraps an edge key.
func EdgeSimplex(e EdgeKey) Simplex { return Simplex{Dim: 1, V: [4]int{e.A, e.B, -1, -1}} }

// FacetSimplex wraps a facet key.
func FacetSimplex(f FacetKey) Simplex { return Simplex{Dim: 2, V: [4]int{f.A, f.B, f.C, -1}} }

// CellSimplex wraps a cell index.
func CellSimplex(c int) Simplex { return Simplex{Dim: 3, V: [4]int{c, -1, -1, -1}} }

// FacetOf returns the key of the facet of cell c opposite its i-th vertex.
// Panics if c or i is out of range.
func (s *AlphaShape) FacetOf(c, i int) FacetKey {
	if i < 0 || i > 3 {
		panic(fmt.Sprintf("alphashape: facet index %d out of range", i))
	}
	cell := s.tri.Cell(c)
	var f [3]int
	k := 0
	for j := 0; j < 4; j++ {
		if j != i {
			f[k] = cell.V[j]
			k++
		}
	}
	return MakeFacetKey(f[0], f[1], f[2])
}

// EdgeOf returns the key of the edge of cell c between its i-th and j-th
// vertices. Panics if c, i or j is out of range or i == j.
func (s *AlphaShape) EdgeOf(c, i, j int) EdgeKey {
	if i < 0 || i > 3 || j < 0 || j > 3 || i == j {
		panic(fmt.Sprintf("alphashape: edge indices (%d,%d) out of range", i, j))
	}
	cell := s.tri.Cell(c)
	return MakeEdgeKey(cell.V[i], cell.V[j])
}
