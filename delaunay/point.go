package delaunay

// Point is a point in 3D space.
type Point struct {
	X, Y, Z float64
}

// Sub returns p - q.
func (p Point) Sub(q Point) Point {
	return Point{p.X - q.X, p.Y - q.Y, p.Z - q.Z}
}

// Add returns p + q.
func (p Point) Add(q Point) Point {
	return Point{p.X + q.X, p.Y + q.Y, p.Z + q.Z}
}

// Scale returns p scaled by s.
func (p Point) Scale(s float64) Point {
	return Point{p.X * s, p.Y * s, p.Z * s}
}

// Dot returns the dot product of p and q.
func (p Point) Dot(q Point) float64 {
	return p.X*q.X + p.Y*q.Y + p.Z*q.Z
}

// Cross returns the cross product of p and q.
func (p Point) Cross(q Point) Point {
	return Point{
		p.Y*q.Z - p.Z*q.Y,
		p.Z*q.X - p.X*q.Z,
		p.X*q.Y - p.Y*q.X,
	}
}

// Norm2 returns the squared length of p viewed as a vector.
func (p Point) Norm2() float64 {
	return p.Dot(p)
}

// SquaredDistance returns the squared Euclidean distance between p and q.
func SquaredDistance(p, q Point) float64 {
	d := p.Sub(q)
	return d.Dot(d)
}

// Midpoint returns the midpoint of the segment pq.
func Midpoint(p, q Point) Point {
	return p.Add(q).Scale(0.5)
}
