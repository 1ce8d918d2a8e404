// Package alphashape implements the family of 3D alpha shapes of a point
// set, built on a Delaunay triangulation.
//
// An alpha shape is a parametrized generalization of the convex hull: for a
// given alpha, the alpha complex is the subset of triangulation simplices
// whose smallest empty circumscribing sphere has squared radius at most
// alpha. The AlphaShape structure computes, once at construction, the
// alpha interval during which every vertex, edge, facet and cell of the
// triangulation belongs to the complex, and then answers classification,
// enumeration, filtration and component-count queries for any alpha.
//
// Basic usage:
//
//	points := []delaunay.Point{...}
//	shape, err := alphashape.NewFromPoints(points, alphashape.DefaultConfig())
//	shape.SetAlpha(0.5)
//	boundary := shape.AlphaShapeFacets(alphashape.Regular)
//	n := shape.NumberOfSolidComponents()
//
// To choose alpha automatically, FindOptimalAlpha returns the smallest
// alpha at which every point is covered and the shape has at most the
// requested number of solid components:
//
//	it := shape.FindOptimalAlpha(1)
//	if it.Valid() {
//		shape.SetAlpha(it.Value())
//	}
//
// # Modes
//
// In General mode, edges and vertices that are in the complex but not part
// of any higher-dimensional complex simplex are reported as Singular. In
// Regularized mode (the default) singular faces are dropped: the complex
// consists of the cells with circumsphere radius within alpha and their
// subfaces, and classifications are Exterior, Regular or Interior only.
// Cell and facet classifications are identical in both modes.
//
// The structure is not safe for concurrent mutation; read-only queries
// against a stable structure may run concurrently.
package alphashape
