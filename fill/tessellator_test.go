package fill

import (
	"errors"
	"math"
	"testing"

	"github.com/gogpu/tessellate"
	"github.com/gogpu/tessellate/attrib"
	"github.com/gogpu/tessellate/path"
)

// recordingBuilder implements Builder, keeping every vertex and triangle
// so tests can check positions, sources, and signed area.
type recordingBuilder struct {
	vertices []FillVertex
	tris     [][3]VertexID
	aborted  error
}

func (b *recordingBuilder) BeginGeometry() {
	b.vertices = nil
	b.tris = nil
	b.aborted = nil
}

func (b *recordingBuilder) EndGeometry() Count {
	return Count{Vertices: uint32(len(b.vertices)), Indices: uint32(3 * len(b.tris))}
}

func (b *recordingBuilder) AbortGeometry(err error) { b.aborted = err }

func (b *recordingBuilder) AddFillVertex(v FillVertex) (VertexID, error) {
	id := VertexID(len(b.vertices))
	b.vertices = append(b.vertices, v)
	return id, nil
}

func (b *recordingBuilder) AddTriangle(a, c, d VertexID) {
	b.tris = append(b.tris, [3]VertexID{a, c, d})
}

var _ Builder = (*recordingBuilder)(nil)

func (b *recordingBuilder) totalSignedArea() float32 {
	var area float32
	for _, tri := range b.tris {
		p0 := b.vertices[tri[0]].Position
		p1 := b.vertices[tri[1]].Position
		p2 := b.vertices[tri[2]].Position
		area += (p1.X-p0.X)*(p2.Y-p0.Y) - (p2.X-p0.X)*(p1.Y-p0.Y)
	}
	return area / 2
}

func trianglePath() *path.Path {
	b := path.NewBuilder()
	b.Begin(tessellate.Pt(0, 0))
	b.LineTo(tessellate.Pt(1, 1))
	b.LineTo(tessellate.Pt(0, 1))
	b.End(true)
	return b.Path()
}

func TestScenarioASimpleTriangle(t *testing.T) {
	b := &recordingBuilder{}
	opts := DefaultOptions().WithTolerance(0.05)
	if err := New().Tessellate(trianglePath(), opts, b); err != nil {
		t.Fatalf("Tessellate: %v", err)
	}
	if len(b.tris) != 1 {
		t.Fatalf("len(tris) = %d, want 1", len(b.tris))
	}
	for _, tri := range b.tris {
		if tri[0] == tri[1] || tri[0] == tri[2] || tri[1] == tri[2] {
			t.Fatalf("degenerate triangle %v", tri)
		}
	}
	const wantArea = 0.5
	if area := b.totalSignedArea(); absf(area) < wantArea-0.01 || absf(area) > wantArea+0.01 {
		t.Fatalf("total area = %v, want ~%v", area, wantArea)
	}
}

func squareWithHolePath() *path.Path {
	b := path.NewBuilder()
	b.Begin(tessellate.Pt(-11, 5))
	b.LineTo(tessellate.Pt(0, -5))
	b.LineTo(tessellate.Pt(10, 5))
	b.End(true)
	b.Begin(tessellate.Pt(-5, 2))
	b.LineTo(tessellate.Pt(0, -2))
	b.LineTo(tessellate.Pt(4, 2))
	b.End(true)
	return b.Path()
}

func TestScenarioCSquareWithHoleAreaMatches(t *testing.T) {
	b := &recordingBuilder{}
	opts := DefaultOptions().WithTolerance(0.05)
	if err := New().Tessellate(squareWithHolePath(), opts, b); err != nil {
		t.Fatalf("Tessellate: %v", err)
	}
	if len(b.tris) == 0 {
		t.Fatal("expected at least one triangle")
	}
	shoelace := func(pts [3]tessellate.Point) float32 {
		return ((pts[1].X-pts[0].X)*(pts[2].Y-pts[0].Y) - (pts[2].X-pts[0].X)*(pts[1].Y-pts[0].Y)) / 2
	}
	outerArea := shoelace([3]tessellate.Point{tessellate.Pt(-11, 5), tessellate.Pt(0, -5), tessellate.Pt(10, 5)})
	innerArea := shoelace([3]tessellate.Point{tessellate.Pt(-5, 2), tessellate.Pt(0, -2), tessellate.Pt(4, 2)})
	want := absf(outerArea) - absf(innerArea)

	if got := absf(b.totalSignedArea()); got < want-0.5 || got > want+0.5 {
		t.Fatalf("total area = %v, want ~%v (outer %v minus hole %v)", got, want, outerArea, innerArea)
	}
}

func TestIdempotence(t *testing.T) {
	opts := DefaultOptions().WithTolerance(0.05)
	b1 := &recordingBuilder{}
	if err := New().Tessellate(trianglePath(), opts, b1); err != nil {
		t.Fatalf("first Tessellate: %v", err)
	}
	b2 := &recordingBuilder{}
	if err := New().Tessellate(trianglePath(), opts, b2); err != nil {
		t.Fatalf("second Tessellate: %v", err)
	}
	if len(b1.vertices) != len(b2.vertices) || len(b1.tris) != len(b2.tris) {
		t.Fatalf("not idempotent: (%d verts, %d tris) vs (%d verts, %d tris)",
			len(b1.vertices), len(b1.tris), len(b2.vertices), len(b2.tris))
	}
}

func TestToleranceNaNRejected(t *testing.T) {
	nan := float32(0)
	nan = nan / nan
	err := New().Tessellate(trianglePath(), DefaultOptions().WithTolerance(nan), &recordingBuilder{})
	if err == nil {
		t.Fatal("expected an error for NaN tolerance")
	}
	if !errors.Is(err, tessellate.ErrToleranceIsNaN()) {
		t.Fatalf("err = %v, want ErrToleranceIsNaN", err)
	}
}

func absf(v float32) float32 {
	if v < 0 {
		return -v
	}
	return v
}

// bowTiePath builds spec §8 Scenario B: a self-intersecting quadrilateral
// whose two diagonals cross at (1,1).
func bowTiePath() *path.Path {
	b := path.NewBuilder()
	b.Begin(tessellate.Pt(0, 0))
	b.LineTo(tessellate.Pt(2, 2))
	b.LineTo(tessellate.Pt(2, 0))
	b.LineTo(tessellate.Pt(0, 2))
	b.End(true)
	return b.Path()
}

func TestScenarioBBowTieSelfIntersection(t *testing.T) {
	rec := &recordingBuilder{}
	opts := DefaultOptions().WithTolerance(0.05)
	if err := New().Tessellate(bowTiePath(), opts, rec); err != nil {
		t.Fatalf("Tessellate: %v", err)
	}
	if len(rec.tris) < 2 {
		t.Fatalf("len(tris) = %d, want >= 2", len(rec.tris))
	}
	for _, tri := range rec.tris {
		if tri[0] == tri[1] || tri[0] == tri[2] || tri[1] == tri[2] {
			t.Fatalf("degenerate triangle %v", tri)
		}
	}

	foundCrossing := false
	for _, v := range rec.vertices {
		if absf(v.Position.X-1) < 1e-3 && absf(v.Position.Y-1) < 1e-3 {
			for _, s := range v.Sources {
				if s.Kind == SourceEdge && absf(s.T-0.5) < 0.05 {
					foundCrossing = true
				}
			}
		}
	}
	if !foundCrossing {
		t.Fatal("expected a vertex at (1,1) with an Edge source at t ~= 0.5")
	}

	// Each lobe of the bow-tie is a right triangle of legs sqrt(2), area 1;
	// EvenOdd fills both lobes and excludes nothing, so the two lobes sum
	// to 2.0 of filled area (the sweep may further subdivide each lobe,
	// but the signed-area sum must still match).
	const wantArea = 2.0
	if got := absf(rec.totalSignedArea()); got < wantArea-0.05 || got > wantArea+0.05 {
		t.Fatalf("total area = %v, want ~%v", got, wantArea)
	}
}

// TestWindingConsistencyNonZero checks spec §8 property 3: under NonZero
// applied to a simple CCW polygon, every triangle has positive signed
// area under the default (Vertical) orientation.
func TestWindingConsistencyNonZero(t *testing.T) {
	b := path.NewBuilder()
	b.Begin(tessellate.Pt(0, 0))
	b.LineTo(tessellate.Pt(4, 0))
	b.LineTo(tessellate.Pt(4, 4))
	b.LineTo(tessellate.Pt(0, 4))
	b.End(true)

	rec := &recordingBuilder{}
	opts := DefaultOptions().WithTolerance(0.05).WithRule(NonZero)
	if err := New().Tessellate(b.Path(), opts, rec); err != nil {
		t.Fatalf("Tessellate: %v", err)
	}
	if len(rec.tris) == 0 {
		t.Fatal("expected at least one triangle")
	}
	for _, tri := range rec.tris {
		p0 := rec.vertices[tri[0]].Position
		p1 := rec.vertices[tri[1]].Position
		p2 := rec.vertices[tri[2]].Position
		area := (p1.X-p0.X)*(p2.Y-p0.Y) - (p2.X-p0.X)*(p1.Y-p0.Y)
		if area <= 0 {
			t.Fatalf("triangle %v has non-positive signed area %v", tri, area)
		}
	}
}

// TestScenarioFAttributeInterpolation checks spec §8 Scenario F: vertices
// at original endpoints carry their stored attribute exactly, and
// intersection vertices interpolate by the recorded edge t.
func TestScenarioFAttributeInterpolation(t *testing.T) {
	store := attrib.Set{
		Components: 3,
		Values: [][]float32{
			{1, 0, 0},
			{0, 1, 0},
			{0, 0, 1},
		},
	}

	rec := &recordingBuilder{}
	opts := DefaultOptions().WithTolerance(0.05)
	if err := New().Tessellate(trianglePath(), opts, rec); err != nil {
		t.Fatalf("Tessellate: %v", err)
	}

	out := make([]float32, store.Components)
	checked := 0
	for _, v := range rec.vertices {
		if len(v.Sources) != 1 || v.Sources[0].Kind != SourceEndpoint {
			continue
		}
		id := v.Sources[0].Endpoint
		if int(id) >= len(store.Values) {
			continue
		}
		attrib.Interpolate(out, ToAttribSources(v.Sources), store)
		want := store.Get(id)
		for i := range out {
			if out[i] != want[i] {
				t.Fatalf("endpoint %d: interpolated %v, want %v", id, out, want)
			}
		}
		checked++
	}
	if checked == 0 {
		t.Fatal("expected at least one endpoint-sourced vertex to check")
	}

	// A bow-tie crossing vertex has one Edge source per crossing edge;
	// check it interpolates to the mean of each source's convex
	// combination at its recorded t.
	rec2 := &recordingBuilder{}
	if err := New().Tessellate(bowTiePath(), opts, rec2); err != nil {
		t.Fatalf("Tessellate (bow-tie): %v", err)
	}
	edgeStore := attrib.Set{
		Components: 3,
		Values: [][]float32{
			{1, 0, 0},
			{0, 1, 0},
			{0, 0, 1},
			{1, 1, 0},
		},
	}
	checkedEdge := 0
	for _, v := range rec2.vertices {
		allEdge := len(v.Sources) > 0
		for _, s := range v.Sources {
			allEdge = allEdge && s.Kind == SourceEdge
		}
		if !allEdge {
			continue
		}
		attrib.Interpolate(out, ToAttribSources(v.Sources), edgeStore)
		for i := range out {
			var want float32
			for _, s := range v.Sources {
				want += (1-s.T)*edgeStore.Get(s.EdgeFrom)[i] + s.T*edgeStore.Get(s.EdgeTo)[i]
			}
			want /= float32(len(v.Sources))
			if absf(out[i]-want) > 1e-5 {
				t.Fatalf("edge sources %v: interpolated[%d] = %v, want %v", v.Sources, i, out[i], want)
			}
		}
		checkedEdge++
	}
	if checkedEdge == 0 {
		t.Fatal("expected at least one Edge-sourced vertex to check")
	}
}

// logoPath is a small non-convex, non-trivial polygon used for the
// rotation-robustness property (spec §8 property 7): tessellation must
// succeed across 360 degrees of rotation without error.
func logoPath(angle float64) *path.Path {
	pts := [][2]float32{
		{0, -10}, {3, -3}, {10, -3}, {4, 1},
		{6, 8}, {0, 4}, {-6, 8}, {-4, 1},
		{-10, -3}, {-3, -3},
	}
	cos, sin := float32(math.Cos(angle)), float32(math.Sin(angle))
	rot := func(x, y float32) tessellate.Point {
		return tessellate.Pt(x*cos-y*sin, x*sin+y*cos)
	}

	b := path.NewBuilder()
	b.Begin(rot(pts[0][0], pts[0][1]))
	for _, p := range pts[1:] {
		b.LineTo(rot(p[0], p[1]))
	}
	b.End(true)
	return b.Path()
}

func TestRotationRobustness(t *testing.T) {
	opts := DefaultOptions().WithTolerance(0.05)
	baseline := -1
	for deg := 0; deg < 360; deg += 15 {
		angle := float64(deg) * math.Pi / 180
		rec := &recordingBuilder{}
		if err := New().Tessellate(logoPath(angle), opts, rec); err != nil {
			t.Fatalf("angle %d deg: Tessellate: %v", deg, err)
		}
		for _, tri := range rec.tris {
			if tri[0] == tri[1] || tri[0] == tri[2] || tri[1] == tri[2] {
				t.Fatalf("angle %d deg: degenerate triangle %v", deg, tri)
			}
		}
		if baseline == -1 {
			baseline = len(rec.tris)
		} else if diff := len(rec.tris) - baseline; diff < -2 || diff > 2 {
			t.Fatalf("angle %d deg: triangle count %d far from baseline %d", deg, len(rec.tris), baseline)
		}
	}
}
