package alphashape

// UnionFind implements a disjoint-set data structure with path compression
// and union by size, used to count the solid components of the alpha shape.
type UnionFind struct {
	parent []int
	size   []int
}

// NewUnionFind creates a UnionFind over n elements, each in its own set.
func NewUnionFind(n int) *UnionFind {
	parent := make([]int, n)
	size := make([]int, n)
	for i := range parent {
		parent[i] = -1 // -1 means "is a root"
		size[i] = 1
	}
	return &UnionFind{parent: parent, size: size}
}

// Find returns the root of the set containing x, with path compression.
func (uf *UnionFind) Find(x int) int {
	root := x
	for uf.parent[root] != -1 {
		root = uf.parent[root]
	}
	for uf.parent[x] != -1 {
		x, uf.parent[x] = uf.parent[x], root
	}
	return root
}

// Union merges the sets containing x and y by attaching the smaller tree
// under the larger. Returns the new root.
func (uf *UnionFind) Union(x, y int) int {
	rootX := uf.Find(x)
	rootY := uf.Find(y)
	if rootX == rootY {
		return rootX
	}
	if uf.size[rootX] < uf.size[rootY] {
		rootX, rootY = rootY, rootX
	}
	uf.parent[rootY] = rootX
	uf.size[rootX] += uf.size[rootY]
	return rootX
}

// NumberOfSolidComponents counts the solid components at the current alpha.
func (s *AlphaShape) NumberOfSolidComponents() int {
	return s.NumberOfSolidComponentsAt(s.alpha)
}

// NumberOfSolidComponentsAt counts the connected components of the
// regularized alpha complex at the given alpha: cells within alpha are the
// nodes, shared facets between two such cells the edges. The traversal is
// linear in the number of cells and is recomputed on every call.
// Panics if alpha < 0.
func (s *AlphaShape) NumberOfSolidComponentsAt(alpha float64) int {
	checkAlpha(alpha)
	n := len(s.cellAlpha)
	if n == 0 {
		return 0
	}
	inComplex := func(ci int) bool { return ci >= 0 && alpha >= s.cellAlpha[ci] }

	uf := NewUnionFind(n)
	for ci := 0; ci < n; ci++ {
		if !inComplex(ci) {
			continue
		}
		for _, nb := range s.tri.Cell(ci).N {
			if inComplex(nb) {
				uf.Union(ci, nb)
			}
		}
	}
	count := 0
	for ci := 0; ci < n; ci++ {
		if inComplex(ci) && uf.Find(ci) == ci {
			count++
		}
	}
	return count
}
