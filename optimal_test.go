package alphashape

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/YaweiYe29/alphashape/delaunay"
)

func TestFindOptimalAlpha_UnitTetra(t *testing.T) {
	s := mustShape(t, unitTetraPoints(), DefaultConfig())

	it := s.FindOptimalAlpha(1)
	require.True(t, it.Valid())
	assert.InDelta(t, 0.75, it.Value(), 1e-12)

	// The result is a spectrum position, usable to set the current alpha.
	s.SetAlpha(it.Value())
	assert.Equal(t, 1, s.NumberOfSolidComponents())
	assert.Empty(t, s.AlphaShapeVertices(Exterior))
}

func TestFindOptimalAlpha_OutlierNeedsSliver(t *testing.T) {
	s := mustShape(t, outlierPoints(), DefaultConfig())

	// The far point is covered only once the sliver cell is solid, which is
	// the largest critical value of the spectrum.
	it := s.FindOptimalAlpha(1)
	require.True(t, it.Valid())
	assert.Equal(t, s.NumberOfAlphas()-1, it.Index())
	assert.InDelta(t, 26643.0/484.0, it.Value(), 1e-9)
}

func TestFindOptimalAlpha_ComponentBudget(t *testing.T) {
	s := mustShape(t, twoClusterPoints(), DefaultConfig())

	two := s.FindOptimalAlpha(2)
	require.True(t, two.Valid())
	assert.InDelta(t, 3, two.Value(), 1e-12)

	// Demanding a single component forces the bridge cells in, at a much
	// larger alpha.
	one := s.FindOptimalAlpha(1)
	require.True(t, one.Valid())
	assert.Greater(t, one.Value(), two.Value())

	s.SetAlpha(one.Value())
	assert.Equal(t, 1, s.NumberOfSolidComponents())
}

func TestFindOptimalAlpha_LocallyMinimal(t *testing.T) {
	// On a generic point cloud the component count is not monotone in
	// alpha, so the result need not be the globally smallest satisfying
	// value; it must satisfy both conditions, and the critical value right
	// before it must not.
	rng := rand.New(rand.NewSource(4))
	pts := make([]delaunay.Point, 25)
	for i := range pts {
		pts[i] = delaunay.Point{X: rng.Float64() * 10, Y: rng.Float64() * 10, Z: rng.Float64() * 10}
	}
	s := mustShape(t, pts, DefaultConfig())

	it := s.FindOptimalAlpha(3)
	require.True(t, it.Valid())
	alpha := it.Value()
	assert.GreaterOrEqual(t, alpha, s.coverageAlpha)
	assert.LessOrEqual(t, s.NumberOfSolidComponentsAt(alpha), 3)

	if idx := it.Index(); idx > 0 {
		prev := s.NthAlpha(idx - 1)
		satisfied := prev >= s.coverageAlpha && s.NumberOfSolidComponentsAt(prev) <= 3
		assert.False(t, satisfied, "preceding critical value %v also satisfies both conditions", prev)
	}
}

func TestFindOptimalAlpha_Unsatisfiable(t *testing.T) {
	// A flat point set has an empty spectrum: nothing can be covered.
	s := mustShape(t, []delaunay.Point{
		{X: 0, Y: 0, Z: 0}, {X: 1, Y: 0, Z: 0}, {X: 0, Y: 1, Z: 0},
	}, DefaultConfig())

	assert.Equal(t, s.AlphaEnd(), s.FindOptimalAlpha(1))
}

func TestFindOptimalAlpha_PanicsOnBadCount(t *testing.T) {
	s := mustShape(t, unitTetraPoints(), DefaultConfig())
	require.Panics(t, func() { s.FindOptimalAlpha(0) })
	require.Panics(t, func() { s.FindOptimalAlpha(-2) })
}
