package alphashape

import (
	"bufio"
	"fmt"
	"io"
)

// countingWriter tracks how many bytes have been written through it.
type countingWriter struct {
	w io.Writer
	n int64
}

func (cw *countingWriter) Write(p []byte) (int, error) {
	n, err := cw.w.Write(p)
	cw.n += int64(n)
	return n, err
}

// boundaryFacets returns the facets forming the alpha shape surface at the
// current alpha, i.e. the Regular facets.
func (s *AlphaShape) boundaryFacets() []FacetKey {
	return s.AlphaShapeFacets(Regular)
}

// WriteTo writes the alpha shape for the current alpha value in its
// textual format: a header with the alpha value and mode, the vertex
// coordinates, and the facets of the shape as vertex index triples.
// Implements io.WriterTo.
func (s *AlphaShape) WriteTo(w io.Writer) (int64, error) {
	cw := &countingWriter{w: w}
	bw := bufio.NewWriter(cw)

	fmt.Fprintf(bw, "alphashape %v %s\n", s.alpha, s.mode)
	pts := s.tri.Points()
	fmt.Fprintf(bw, "%d\n", len(pts))
	for _, p := range pts {
		fmt.Fprintf(bw, "%v %v %v\n", p.X, p.Y, p.Z)
	}
	facets := s.boundaryFacets()
	fmt.Fprintf(bw, "%d\n", len(facets))
	for _, f := range facets {
		fmt.Fprintf(bw, "%d %d %d\n", f.A, f.B, f.C)
	}
	err := bw.Flush()
	return cw.n, err
}

// WriteOFF writes the alpha shape surface at the current alpha value in
// Geomview OFF format: every inserted point as a vertex, and the shape's
// boundary facets as triangles.
func (s *AlphaShape) WriteOFF(w io.Writer) error {
	bw := bufio.NewWriter(w)

	pts := s.tri.Points()
	facets := s.boundaryFacets()
	fmt.Fprintln(bw, "OFF")
	fmt.Fprintf(bw, "%d %d 0\n", len(pts), len(facets))
	for _, p := range pts {
		fmt.Fprintf(bw, "%v %v %v\n", p.X, p.Y, p.Z)
	}
	for _, f := range facets {
		fmt.Fprintf(bw, "3 %d %d %d\n", f.A, f.B, f.C)
	}
	return bw.Flush()
}
