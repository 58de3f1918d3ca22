package tessellate

import "testing"

func TestBeforeAfter(t *testing.T) {
	tests := []struct {
		name   string
		a, b   Point
		before bool
	}{
		{"higher y is before", Pt(0, 0), Pt(0, 1), true},
		{"lower y is not before", Pt(0, 1), Pt(0, 0), false},
		{"tie breaks left to right", Pt(0, 0), Pt(1, 0), true},
		{"tie breaks right not before left", Pt(1, 0), Pt(0, 0), false},
		{"identical points", Pt(1, 1), Pt(1, 1), false},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := Before(tc.a, tc.b); got != tc.before {
				t.Errorf("Before(%v, %v) = %v, want %v", tc.a, tc.b, got, tc.before)
			}
			if got := After(tc.b, tc.a); got != tc.before {
				t.Errorf("After(%v, %v) = %v, want %v", tc.b, tc.a, got, tc.before)
			}
		})
	}
}

func TestNear(t *testing.T) {
	if !Near(Pt(0, 0), Pt(0, 0)) {
		t.Error("identical points should be Near")
	}
	if Near(Pt(0, 0), Pt(1, 1)) {
		t.Error("distant points should not be Near")
	}
}

func TestOrientationSweepSpaceRoundTrip(t *testing.T) {
	p := Pt(3, 7)
	for _, o := range []Orientation{Vertical, Horizontal} {
		got := o.FromSweepSpace(o.ToSweepSpace(p))
		if got != p {
			t.Errorf("%v round trip = %v, want %v", o, got, p)
		}
	}
	if got := Horizontal.ToSweepSpace(p); got != Pt(7, 3) {
		t.Errorf("Horizontal.ToSweepSpace(%v) = %v, want (7, 3)", p, got)
	}
	if got := Vertical.ToSweepSpace(p); got != p {
		t.Errorf("Vertical.ToSweepSpace(%v) = %v, want unchanged", p, got)
	}
}

func TestOrientationString(t *testing.T) {
	if Vertical.String() != "Vertical" {
		t.Errorf("Vertical.String() = %q", Vertical.String())
	}
	if Horizontal.String() != "Horizontal" {
		t.Errorf("Horizontal.String() = %q", Horizontal.String())
	}
}
