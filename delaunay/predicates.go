package delaunay

import (
	"gonum.org/v1/gonum/mat"
)

// Orient returns the signed volume determinant of the tetrahedron (a,b,c,d):
// positive when d lies on the positive side of the plane through a, b, c
// (the side pointed to by (b-a) x (c-a)), negative on the other side, and
// zero when the four points are coplanar.
func Orient(a, b, c, d Point) float64 {
	u := b.Sub(a)
	v := c.Sub(a)
	w := d.Sub(a)
	return u.X*(v.Y*w.Z-v.Z*w.Y) - u.Y*(v.X*w.Z-v.Z*w.X) + u.Z*(v.X*w.Y-v.Y*w.X)
}

// InSphere returns a positive value when p lies strictly inside the
// circumsphere of the tetrahedron (a,b,c,d), negative when strictly outside,
// and zero when the five points are cospherical. The tetrahedron must be
// positively oriented (Orient(a,b,c,d) > 0).
func InSphere(a, b, c, d, p Point) float64 {
	rows := [4]Point{a, b, c, d}
	m := mat.NewDense(4, 4, nil)
	for i, v := range rows {
		r := v.Sub(p)
		m.Set(i, 0, r.X)
		m.Set(i, 1, r.Y)
		m.Set(i, 2, r.Z)
		m.Set(i, 3, r.Norm2())
	}
	return -mat.Det(m)
}

// CircumcenterOfTetrahedron returns the center of the sphere through the
// four points. ok is false when the points are coplanar.
func CircumcenterOfTetrahedron(a, b, c, d Point) (center Point, ok bool) {
	rows := [3]Point{b.Sub(a), c.Sub(a), d.Sub(a)}
	m := mat.NewDense(3, 3, nil)
	rhs := mat.NewVecDense(3, nil)
	for i, r := range rows {
		m.Set(i, 0, 2*r.X)
		m.Set(i, 1, 2*r.Y)
		m.Set(i, 2, 2*r.Z)
	}
	rhs.SetVec(0, b.Norm2()-a.Norm2())
	rhs.SetVec(1, c.Norm2()-a.Norm2())
	rhs.SetVec(2, d.Norm2()-a.Norm2())

	var x mat.VecDense
	if err := x.SolveVec(m, rhs); err != nil {
		return Point{}, false
	}
	return Point{x.AtVec(0), x.AtVec(1), x.AtVec(2)}, true
}

// SquaredCircumradiusOfTetrahedron returns the squared circumradius of the
// tetrahedron (a,b,c,d). ok is false when the points are coplanar.
func SquaredCircumradiusOfTetrahedron(a, b, c, d Point) (r2 float64, ok bool) {
	center, ok := CircumcenterOfTetrahedron(a, b, c, d)
	if !ok {
		return 0, false
	}
	return SquaredDistance(center, a), true
}

// CircumcenterOfTriangle returns the center of the smallest sphere through
// the three points, which lies in their common plane. ok is false when the
// points are collinear.
func CircumcenterOfTriangle(a, b, c Point) (center Point, ok bool) {
	u := b.Sub(a)
	v := c.Sub(a)
	n := u.Cross(v)

	m := mat.NewDense(3, 3, []float64{
		2 * u.X, 2 * u.Y, 2 * u.Z,
		2 * v.X, 2 * v.Y, 2 * v.Z,
		n.X, n.Y, n.Z,
	})
	rhs := mat.NewVecDense(3, []float64{
		b.Norm2() - a.Norm2(),
		c.Norm2() - a.Norm2(),
		n.Dot(a),
	})

	var x mat.VecDense
	if err := x.SolveVec(m, rhs); err != nil {
		return Point{}, false
	}
	return Point{x.AtVec(0), x.AtVec(1), x.AtVec(2)}, true
}

// SquaredCircumradiusOfTriangle returns the squared radius of the smallest
// sphere through the three points. ok is false when they are collinear.
func SquaredCircumradiusOfTriangle(a, b, c Point) (r2 float64, ok bool) {
	center, ok := CircumcenterOfTriangle(a, b, c)
	if !ok {
		return 0, false
	}
	return SquaredDistance(center, a), true
}

// SquaredDiametralRadius returns the squared radius of the smallest sphere
// through p and q, the diametral sphere of the segment.
func SquaredDiametralRadius(p, q Point) float64 {
	return SquaredDistance(p, q) / 4
}
