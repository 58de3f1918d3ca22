package tessellate

import "math"

// Vector is a 2D displacement, distinct from Point so that "a point plus a
// vector is a point" and "a point minus a point is a vector" stay type-safe.
type Vector struct {
	X, Y float32
}

// Vec is a convenience constructor for Vector.
func Vec(x, y float32) Vector {
	return Vector{X: x, Y: y}
}

// Add returns the sum of two vectors.
func (v Vector) Add(w Vector) Vector {
	return Vector{X: v.X + w.X, Y: v.Y + w.Y}
}

// Sub returns the difference of two vectors.
func (v Vector) Sub(w Vector) Vector {
	return Vector{X: v.X - w.X, Y: v.Y - w.Y}
}

// Scale returns v scaled by s.
func (v Vector) Scale(s float32) Vector {
	return Vector{X: v.X * s, Y: v.Y * s}
}

// Neg returns the negated vector.
func (v Vector) Neg() Vector {
	return Vector{X: -v.X, Y: -v.Y}
}

// Dot returns the dot product of two vectors.
func (v Vector) Dot(w Vector) float32 {
	return v.X*w.X + v.Y*w.Y
}

// Cross returns the 2D cross product (the Z component of the 3D cross
// product of the two vectors extended into the XY plane).
func (v Vector) Cross(w Vector) float32 {
	return v.X*w.Y - v.Y*w.X
}

// Length returns the Euclidean length of v.
func (v Vector) Length() float32 {
	return float32(math.Sqrt(float64(v.LengthSquared())))
}

// LengthSquared returns the squared length of v, avoiding the sqrt.
func (v Vector) LengthSquared() float32 {
	return v.X*v.X + v.Y*v.Y
}

// Normalize returns a unit vector in the same direction as v, or the zero
// vector if v is (near) zero length.
func (v Vector) Normalize() Vector {
	length := v.Length()
	if length < 1e-10 {
		return Vector{}
	}
	return Vector{X: v.X / length, Y: v.Y / length}
}

// Perp returns v rotated 90 degrees counter-clockwise (in the Y-down
// coordinate convention, this points to the right of v on screen).
func (v Vector) Perp() Vector {
	return Vector{X: -v.Y, Y: v.X}
}

// Angle returns the angle of v in radians, per math.Atan2.
func (v Vector) Angle() float32 {
	return float32(math.Atan2(float64(v.Y), float64(v.X)))
}

// normal returns the bisector of two incoming/outgoing unit tangents at a
// join, scaled by 1/cos of half the turn angle and oriented so that extruding a vertex by ±normal*halfWidth produces
// the two stroke outlines (spec §4.10 step 1).
func normal(prevTangent, nextTangent Vector) Vector {
	n := prevTangent.Add(nextTangent)
	if n.LengthSquared() < 1e-12 {
		// The tangents point in opposite directions (near-180-degree turn):
		// fall back to the perpendicular of either tangent.
		return prevTangent.Perp().Normalize()
	}
	bisector := n.Normalize().Perp()
	// Scale so that the projection onto either side's perpendicular keeps
	// the offset distance constant regardless of the join angle.
	cosHalf := bisector.Dot(prevTangent.Perp().Normalize())
	if cosHalf < 1e-4 {
		cosHalf = 1e-4
	}
	return bisector.Scale(1 / cosHalf)
}
