package tessellate

// nearThresholdSq is the squared distance below which two points are
// considered coincident when fill merges coincident pending edges
// (fill/coincident.go; spec §4.1: "near").
// This threshold is never used for the primary sweep ordering.
const nearThresholdSq = 1e-9

// After reports whether a is ordered strictly after b in the sweep
// direction: top-to-bottom, then left-to-right on ties (spec §4.1).
func After(a, b Point) bool {
	return a.Y > b.Y || (a.Y == b.Y && a.X > b.X)
}

// Before reports whether a is ordered strictly before b.
func Before(a, b Point) bool {
	return After(b, a)
}

// Near reports whether a and b are within the snapping threshold of each
// other.
func Near(a, b Point) bool {
	return a.DistanceSquared(b) < nearThresholdSq
}

// Orientation selects which axis the sweep advances along. Horizontal is
// implemented by the public tessellators as an invertible coordinate swap
// at the input/output boundary (spec §4.1); the sweep core itself always
// operates in Vertical orientation.
type Orientation int

const (
	// Vertical sweeps top-to-bottom, ordering ties left-to-right.
	Vertical Orientation = iota
	// Horizontal sweeps left-to-right, ordering ties top-to-bottom.
	Horizontal
)

// String implements fmt.Stringer.
func (o Orientation) String() string {
	if o == Horizontal {
		return "Horizontal"
	}
	return "Vertical"
}

// ToSweepSpace swaps X and Y when the orientation is Horizontal, mapping a
// point from caller space into the sweep's native (Vertical) space.
func (o Orientation) ToSweepSpace(p Point) Point {
	if o == Horizontal {
		return Point{X: p.Y, Y: p.X}
	}
	return p
}

// FromSweepSpace is the inverse of ToSweepSpace.
func (o Orientation) FromSweepSpace(p Point) Point {
	return o.ToSweepSpace(p)
}
