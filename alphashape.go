package alphashape

import (
	"fmt"

	"github.com/YaweiYe29/alphashape/delaunay"
)

// Mode selects how singular faces are handled.
type Mode int

const (
	// Regularized drops singular faces: the complex contains only cells
	// within alpha and their subfaces.
	Regularized Mode = iota
	// General keeps singular faces, exposing the Singular classification
	// for vertices and edges.
	General
)

func (m Mode) String() string {
	switch m {
	case Regularized:
		return "REGULARIZED"
	case General:
		return "GENERAL"
	}
	return fmt.Sprintf("Mode(%d)", int(m))
}

// Classification is the state of a simplex with respect to the alpha
// complex at a given alpha.
type Classification int

const (
	// Exterior simplices are not part of the complex.
	Exterior Classification = iota
	// Singular simplices are on the boundary of the complex but not
	// included in any higher-dimensional simplex of it (General mode only).
	Singular
	// Regular simplices are on the boundary of the complex and included in
	// a higher-dimensional simplex of it.
	Regular
	// Interior simplices are in the complex and not on its boundary.
	Interior
)

func (c Classification) String() string {
	switch c {
	case Exterior:
		return "EXTERIOR"
	case Singular:
		return "SINGULAR"
	case Regular:
		return "REGULAR"
	case Interior:
		return "INTERIOR"
	}
	return fmt.Sprintf("Classification(%d)", int(c))
}

// Config controls alpha shape construction.
// Start with [DefaultConfig] and override the fields you need.
type Config struct {
	// Alpha is the initial current alpha value. Must be >= 0. Default: 0.
	Alpha float64

	// Mode selects General or Regularized classification. Default: Regularized.
	Mode Mode

	// Tolerance is the comparison slack used when deduplicating the alpha
	// spectrum and in AlphaFind. 0 means exact float64 comparison.
	// Must be >= 0. Default: 0.
	Tolerance float64
}

// DefaultConfig returns a Config with the defaults: alpha 0, Regularized
// mode, exact comparisons.
func DefaultConfig() Config {
	return Config{}
}

// validateConfig checks that cfg fields are valid and returns a descriptive error if not.
func validateConfig(cfg *Config) error {
	if cfg.Alpha < 0 {
		return fmt.Errorf("alphashape: Alpha must be >= 0, got %v", cfg.Alpha)
	}
	if cfg.Mode != Regularized && cfg.Mode != General {
		return fmt.Errorf("alphashape: invalid Mode %d", int(cfg.Mode))
	}
	if cfg.Tolerance < 0 {
		return fmt.Errorf("alphashape: Tolerance must be >= 0, got %v", cfg.Tolerance)
	}
	return nil
}

// AlphaShape holds the alpha intervals of every simplex of an owned
// Delaunay triangulation, the sorted spectrum of critical alpha values,
// and the current alpha and mode against which default queries run.
//
// All intervals are computed once at construction; SetAlpha and SetMode
// only change how queries interpret them.
type AlphaShape struct {
	tri   *delaunay.Triangulation
	alpha float64
	mode  Mode
	tol   float64

	// cellAlpha[i] is the squared circumradius of cell i, +Inf for
	// infinite cells.
	cellAlpha []float64
	facets    map[FacetKey]*facetStatus
	edges     map[EdgeKey]*edgeStatus
	verts     []vertexStatus

	spectrum []float64
	// coverageAlpha is the smallest alpha at which every vertex is incident
	// to a complex cell; +Inf when some vertex never is.
	coverageAlpha float64
}

// New returns an empty alpha shape. Populate it with MakeAlphaShape.
func New(cfg Config) (*AlphaShape, error) {
	if err := validateConfig(&cfg); err != nil {
		return nil, err
	}
	s := &AlphaShape{
		tri:   delaunay.New(),
		alpha: cfg.Alpha,
		mode:  cfg.Mode,
		tol:   cfg.Tolerance,
	}
	s.assignIntervals()
	return s, nil
}

// NewFromTriangulation builds an alpha shape over t. The alpha shape takes
// ownership of the triangulation: it compacts it in place and the caller
// must not mutate it afterwards.
func NewFromTriangulation(t *delaunay.Triangulation, cfg Config) (*AlphaShape, error) {
	if err := validateConfig(&cfg); err != nil {
		return nil, err
	}
	t.Compact()
	s := &AlphaShape{
		tri:   t,
		alpha: cfg.Alpha,
		mode:  cfg.Mode,
		tol:   cfg.Tolerance,
	}
	s.assignIntervals()
	return s, nil
}

// NewFromPoints builds an alpha shape of the given points. Duplicate points
// are inserted once. Point sets spanning fewer than three dimensions yield
// a valid structure in which every simplex is Exterior.
func NewFromPoints(pts []delaunay.Point, cfg Config) (*AlphaShape, error) {
	return NewFromTriangulation(delaunay.FromPoints(pts), cfg)
}

// Triangulation returns the underlying triangulation for read access.
func (s *AlphaShape) Triangulation() *delaunay.Triangulation { return s.tri }

// Alpha returns the current alpha value.
func (s *AlphaShape) Alpha() float64 { return s.alpha }

// SetAlpha sets the current alpha value and returns the previous one.
// Alpha changes are cheap: no interval is recomputed.
// Panics if alpha < 0.
func (s *AlphaShape) SetAlpha(alpha float64) float64 {
	checkAlpha(alpha)
	prev := s.alpha
	s.alpha = alpha
	return prev
}

// GetMode returns the current mode.
func (s *AlphaShape) GetMode() Mode { return s.mode }

// SetMode sets the mode and returns the previous one. Intervals are
// mode-independent, so switching only changes the classification mapping
// of vertices and edges.
func (s *AlphaShape) SetMode(m Mode) Mode {
	if m != Regularized && m != General {
		panic(fmt.Sprintf("alphashape: invalid Mode %d", int(m)))
	}
	prev := s.mode
	s.mode = m
	return prev
}

// Clear tears down the structure: the triangulation and all intervals are
// discarded. Alpha, mode and tolerance settings are kept.
func (s *AlphaShape) Clear() {
	s.tri = delaunay.New()
	s.assignIntervals()
}

// MakeAlphaShape clears the structure and rebuilds it for the given points.
// It returns the number of distinct points inserted into the underlying
// triangulation.
func (s *AlphaShape) MakeAlphaShape(pts []delaunay.Point) int {
	t := delaunay.FromPoints(pts)
	s.tri = t
	s.assignIntervals()
	return t.NumVertices()
}

func checkAlpha(alpha float64) {
	if alpha < 0 {
		panic(fmt.Sprintf("alphashape: alpha must be >= 0, got %v", alpha))
	}
}
