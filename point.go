package tessellate

// Point is a 2D point in path space. Components are float32: the sweep and
// triangulation math runs at this precision everywhere except intersection
// solving (see Point64), which uses float64 to reduce cancellation.
type Point struct {
	X, Y float32
}

// Pt is a convenience constructor for Point.
func Pt(x, y float32) Point {
	return Point{X: x, Y: y}
}

// Add returns p+v.
func (p Point) Add(v Vector) Point {
	return Point{X: p.X + v.X, Y: p.Y + v.Y}
}

// Sub returns the vector from q to p.
func (p Point) Sub(q Point) Vector {
	return Vector{X: p.X - q.X, Y: p.Y - q.Y}
}

// Lerp performs linear interpolation between two points; t=0 returns p, t=1
// returns q.
func (p Point) Lerp(q Point, t float32) Point {
	return Point{
		X: p.X + (q.X-p.X)*t,
		Y: p.Y + (q.Y-p.Y)*t,
	}
}

// IsNaN reports whether either component is NaN.
func (p Point) IsNaN() bool {
	return p.X != p.X || p.Y != p.Y
}

// DistanceSquared returns the squared Euclidean distance between p and q.
func (p Point) DistanceSquared(q Point) float32 {
	return p.Sub(q).LengthSquared()
}

// Point64 is the float64 counterpart of Point, used only by the
// intersection solver (spec §4.5, §9 "numeric strategy").
type Point64 struct {
	X, Y float64
}

// ToPoint64 upgrades p to float64 precision.
func (p Point) ToPoint64() Point64 {
	return Point64{X: float64(p.X), Y: float64(p.Y)}
}

// ToPoint downgrades p back to float32 precision.
func (p Point64) ToPoint() Point {
	return Point{X: float32(p.X), Y: float32(p.Y)}
}
