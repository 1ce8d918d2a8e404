package alphashape

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/YaweiYe29/alphashape/delaunay"
)

// checkAllExterior verifies the contract for point sets that span fewer than
// three dimensions: a valid structure in which everything is Exterior and
// the spectrum is empty.
func checkAllExterior(t *testing.T, s *AlphaShape) {
	t.Helper()
	assert.Equal(t, 0, s.NumberOfAlphas())
	assert.Equal(t, s.AlphaEnd(), s.AlphaBegin())
	assert.Nil(t, s.Filtration())
	assert.Equal(t, 0, s.NumberOfSolidComponents())
	for v := 0; v < s.Triangulation().NumVertices(); v++ {
		assert.Equal(t, Exterior, s.ClassifyVertexAt(v, 1e9), "vertex %d", v)
	}
	assert.Equal(t, Exterior, s.ClassifyPointAt(delaunay.Point{X: 0.1, Y: 0.1, Z: 0.1}, 1e9))
}

func TestEdgeCase_NoPoints(t *testing.T) {
	s := mustShape(t, nil, DefaultConfig())
	checkAllExterior(t, s)
}

func TestEdgeCase_SinglePoint(t *testing.T) {
	s := mustShape(t, []delaunay.Point{{X: 1, Y: 2, Z: 3}}, DefaultConfig())
	assert.Equal(t, 1, s.Triangulation().NumVertices())
	checkAllExterior(t, s)
}

func TestEdgeCase_TwoPoints(t *testing.T) {
	s := mustShape(t, []delaunay.Point{{X: 0, Y: 0, Z: 0}, {X: 1, Y: 0, Z: 0}}, DefaultConfig())
	checkAllExterior(t, s)
}

func TestEdgeCase_Collinear(t *testing.T) {
	pts := make([]delaunay.Point, 10)
	for i := range pts {
		pts[i] = delaunay.Point{X: float64(i), Y: float64(2 * i), Z: float64(-i)}
	}
	s := mustShape(t, pts, DefaultConfig())
	checkAllExterior(t, s)
}

func TestEdgeCase_Coplanar(t *testing.T) {
	var pts []delaunay.Point
	for x := 0; x < 3; x++ {
		for y := 0; y < 3; y++ {
			pts = append(pts, delaunay.Point{X: float64(x), Y: float64(y), Z: 5})
		}
	}
	s := mustShape(t, pts, DefaultConfig())
	assert.Equal(t, 9, s.Triangulation().NumVertices())
	checkAllExterior(t, s)
}

func TestEdgeCase_AllIdenticalPoints(t *testing.T) {
	pts := make([]delaunay.Point, 10)
	for i := range pts {
		pts[i] = delaunay.Point{X: 5, Y: 5, Z: 5}
	}
	s := mustShape(t, pts, DefaultConfig())
	assert.Equal(t, 1, s.Triangulation().NumVertices())
	checkAllExterior(t, s)
}

func TestEdgeCase_DuplicatedTetrahedron(t *testing.T) {
	pts := append(unitTetraPoints(), unitTetraPoints()...)
	s := mustShape(t, pts, DefaultConfig())
	require.Equal(t, 4, s.Triangulation().NumVertices())
	assert.Equal(t, 4, s.NumberOfAlphas())
	assert.Equal(t, 1, s.NumberOfSolidComponentsAt(0.75))
}

func TestEdgeCase_CosphericalCube(t *testing.T) {
	var pts []delaunay.Point
	for x := 0; x < 2; x++ {
		for y := 0; y < 2; y++ {
			for z := 0; z < 2; z++ {
				pts = append(pts, delaunay.Point{X: float64(x), Y: float64(y), Z: float64(z)})
			}
		}
	}
	s := mustShape(t, pts, DefaultConfig())
	require.Equal(t, 8, s.Triangulation().NumVertices())

	// All cube cells share the circumsphere of squared radius 3/4: the whole
	// cube becomes solid at once.
	assert.Equal(t, 0, s.NumberOfSolidComponentsAt(0.74))
	assert.Equal(t, 1, s.NumberOfSolidComponentsAt(0.75))

	it := s.FindOptimalAlpha(1)
	require.True(t, it.Valid())
	assert.InDelta(t, 0.75, it.Value(), 1e-9)
}
