package tessellate

import (
	"math"
	"testing"
)

func TestVectorDotCross(t *testing.T) {
	a, b := Vec(1, 0), Vec(0, 1)
	if got := a.Dot(b); got != 0 {
		t.Errorf("Dot = %v, want 0", got)
	}
	if got := a.Cross(b); got != 1 {
		t.Errorf("Cross = %v, want 1", got)
	}
}

func TestVectorLength(t *testing.T) {
	v := Vec(3, 4)
	if got := v.Length(); got != 5 {
		t.Errorf("Length = %v, want 5", got)
	}
	if got := v.LengthSquared(); got != 25 {
		t.Errorf("LengthSquared = %v, want 25", got)
	}
}

func TestVectorNormalize(t *testing.T) {
	v := Vec(3, 4).Normalize()
	if math.Abs(float64(v.Length()-1)) > 1e-6 {
		t.Errorf("Normalize length = %v, want 1", v.Length())
	}
	if zero := (Vector{}).Normalize(); zero != (Vector{}) {
		t.Errorf("Normalize of zero vector = %v, want zero", zero)
	}
}

func TestVectorPerpIsOrthogonal(t *testing.T) {
	v := Vec(2, 3)
	if got := v.Dot(v.Perp()); got != 0 {
		t.Errorf("v . v.Perp() = %v, want 0", got)
	}
}

func TestVectorNeg(t *testing.T) {
	if got := Vec(1, -2).Neg(); got != Vec(-1, 2) {
		t.Errorf("Neg = %v, want (-1, 2)", got)
	}
}
