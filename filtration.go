package alphashape

import "sort"

// FiltrationEntry is one simplex of the filtration, tagged with the alpha
// value at which it first joins the complex.
type FiltrationEntry struct {
	Alpha   float64
	Simplex Simplex
}

// Filtration returns every finite simplex of the triangulation in
// increasing order of the alpha at which it joins the complex. Ties are
// broken by increasing dimension, then by canonical simplex key (vertex
// index, sorted endpoint tuple, cell index), which makes the order
// deterministic.
//
// Vertices of a three-dimensional triangulation join at alpha 0; edges and
// facets at their entry threshold; cells at their squared circumradius. A
// triangulation without cells yields an empty filtration.
func (s *AlphaShape) Filtration() []FiltrationEntry {
	if len(s.cellAlpha) == 0 {
		return nil
	}
	entries := make([]FiltrationEntry, 0,
		len(s.verts)+len(s.edges)+len(s.facets)+len(s.cellAlpha))

	for v := range s.verts {
		entries = append(entries, FiltrationEntry{Alpha: 0, Simplex: VertexSimplex(v)})
	}
	for key, st := range s.edges {
		entries = append(entries, FiltrationEntry{Alpha: st.entry, Simplex: EdgeSimplex(key)})
	}
	for key, st := range s.facets {
		entries = append(entries, FiltrationEntry{Alpha: st.lower, Simplex: FacetSimplex(key)})
	}
	for i, a := range s.cellAlpha {
		if s.tri.IsInfinite(i) {
			continue
		}
		entries = append(entries, FiltrationEntry{Alpha: a, Simplex: CellSimplex(i)})
	}

	sort.Slice(entries, func(i, j int) bool {
		a, b := entries[i], entries[j]
		if a.Alpha != b.Alpha {
			return a.Alpha < b.Alpha
		}
		if a.Simplex.Dim != b.Simplex.Dim {
			return a.Simplex.Dim < b.Simplex.Dim
		}
		for k := 0; k < 4; k++ {
			if a.Simplex.V[k] != b.Simplex.V[k] {
				return a.Simplex.V[k] < b.Simplex.V[k]
			}
		}
		return false
	})
	return entries
}
