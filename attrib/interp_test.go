package attrib

import "testing"

func TestInterpolateSingleEndpoint(t *testing.T) {
	set := Set{Values: [][]float32{{1, 2, 3}, {4, 5, 6}}, Components: 3}
	out := make([]float32, 3)
	Interpolate(out, []Source{{IsEndpoint: true, Endpoint: 1}}, set)
	want := []float32{4, 5, 6}
	for i := range want {
		if out[i] != want[i] {
			t.Fatalf("out = %v, want %v", out, want)
		}
	}
}

func TestInterpolateEdge(t *testing.T) {
	set := Set{Values: [][]float32{{0, 0}, {10, 20}}, Components: 2}
	out := make([]float32, 2)
	Interpolate(out, []Source{{From: 0, To: 1, T: 0.25}}, set)
	want := []float32{2.5, 5}
	for i := range want {
		if out[i] != want[i] {
			t.Fatalf("out = %v, want %v", out, want)
		}
	}
}

func TestInterpolateMultiSourceMean(t *testing.T) {
	set := Set{Values: [][]float32{{0}, {10}}, Components: 1}
	out := make([]float32, 1)
	Interpolate(out, []Source{
		{IsEndpoint: true, Endpoint: 0},
		{IsEndpoint: true, Endpoint: 1},
	}, set)
	if out[0] != 5 {
		t.Fatalf("out[0] = %v, want 5 (mean of 0 and 10)", out[0])
	}
}

func TestInterpolateNoSourcesZeroesOutput(t *testing.T) {
	set := Set{Values: [][]float32{{9}}, Components: 1}
	out := []float32{42}
	Interpolate(out, nil, set)
	if out[0] != 0 {
		t.Fatalf("out[0] = %v, want 0", out[0])
	}
}

func TestSetGetOutOfRange(t *testing.T) {
	set := Set{Values: [][]float32{{1}}, Components: 1}
	if got := set.Get(5); got != nil {
		t.Fatalf("Get(5) = %v, want nil", got)
	}
}
