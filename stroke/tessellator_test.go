package stroke

import (
	"testing"

	"github.com/gogpu/tessellate"
	"github.com/gogpu/tessellate/path"
)

// recordingBuilder implements Builder, keeping every vertex and triangle
// so tests can check positions and counts (mirrors fill's test helper).
type recordingBuilder struct {
	vertices []StrokeVertex
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

func (b *recordingBuilder) AddStrokeVertex(v StrokeVertex) (VertexID, error) {
	id := VertexID(len(b.vertices))
	b.vertices = append(b.vertices, v)
	return id, nil
}

func (b *recordingBuilder) AddTriangle(a, c, d VertexID) {
	b.tris = append(b.tris, [3]VertexID{a, c, d})
}

var _ Builder = (*recordingBuilder)(nil)

func rectPath(x0, y0, x1, y1 float32) *path.Path {
	b := path.NewBuilder()
	b.Begin(tessellate.Pt(x0, y0))
	b.LineTo(tessellate.Pt(x1, y0))
	b.LineTo(tessellate.Pt(x1, y1))
	b.LineTo(tessellate.Pt(x0, y1))
	return b.End(true).Path()
}

// TestScenarioDStrokeRectangleMiter checks spec §8 Scenario D: a stroked
// 2x2 square with a miter join and width 2 emits 8 triangles (one quad
// per edge), and every offset vertex sits on the rectangle inflated by 1
// on every side.
func TestScenarioDStrokeRectangleMiter(t *testing.T) {
	rec := &recordingBuilder{}
	opts := DefaultOptions().WithWidth(2).WithJoin(JoinMiter).WithTolerance(0.05)
	if err := New().Tessellate(rectPath(-1, -1, 1, 1), opts, rec); err != nil {
		t.Fatalf("Tessellate: %v", err)
	}
	if len(rec.tris) != 8 {
		t.Fatalf("len(tris) = %d, want 8", len(rec.tris))
	}
	for _, tri := range rec.tris {
		if tri[0] == tri[1] || tri[0] == tri[2] || tri[1] == tri[2] {
			t.Fatalf("degenerate triangle %v", tri)
		}
	}
	sawOuterCorner := false
	for _, v := range rec.vertices {
		if absf(v.Position.X) > 2+1e-3 || absf(v.Position.Y) > 2+1e-3 {
			t.Fatalf("vertex %v outside the inflated-by-1 rectangle", v.Position)
		}
		if absf(v.Position.X) > 2-1e-3 && absf(v.Position.Y) > 2-1e-3 {
			sawOuterCorner = true
		}
	}
	if !sawOuterCorner {
		t.Fatal("expected at least one vertex at an outer miter corner (+-2,+-2)")
	}
}

// TestScenarioEStrokeRoundCapOnPoint checks spec §8 Scenario E: a
// zero-length sub-path with a round cap produces a disk-approximating
// triangle fan with at least 8 triangles and no degenerate triangles.
func TestScenarioEStrokeRoundCapOnPoint(t *testing.T) {
	b := path.NewBuilder()
	b.Begin(tessellate.Pt(0, 0))
	p := b.End(false).Path()

	rec := &recordingBuilder{}
	opts := DefaultOptions().WithWidth(1).WithCap(CapRound).WithTolerance(0.1)
	if err := New().Tessellate(p, opts, rec); err != nil {
		t.Fatalf("Tessellate: %v", err)
	}
	if len(rec.tris) < 8 {
		t.Fatalf("len(tris) = %d, want >= 8", len(rec.tris))
	}
	for _, tri := range rec.tris {
		if tri[0] == tri[1] || tri[0] == tri[2] || tri[1] == tri[2] {
			t.Fatalf("degenerate triangle %v", tri)
		}
		p0 := rec.vertices[tri[0]].Position
		p1 := rec.vertices[tri[1]].Position
		p2 := rec.vertices[tri[2]].Position
		area := (p1.X-p0.X)*(p2.Y-p0.Y) - (p2.X-p0.X)*(p1.Y-p0.Y)
		if absf(area) < 1e-6 {
			t.Fatalf("triangle %v has ~zero area", tri)
		}
	}
}

// TestStrokeWidthButtCaps checks spec §8 property 4: for a straight
// segment stroked with butt caps, every emitted vertex lies within
// tolerance of the exact offset curve at distance line_width/2.
func TestStrokeWidthButtCaps(t *testing.T) {
	b := path.NewBuilder()
	b.Begin(tessellate.Pt(0, 0))
	p := b.LineTo(tessellate.Pt(10, 0)).End(false).Path()

	rec := &recordingBuilder{}
	opts := DefaultOptions().WithWidth(2).WithCap(CapButt).WithTolerance(0.05)
	if err := New().Tessellate(p, opts, rec); err != nil {
		t.Fatalf("Tessellate: %v", err)
	}
	for _, v := range rec.vertices {
		dist := absf(v.Position.Y)
		if absf(dist-1) > opts.Tolerance+1e-4 {
			t.Fatalf("vertex %v at distance %v from centerline, want ~1", v.Position, dist)
		}
	}
}

func absf(v float32) float32 {
	if v < 0 {
		return -v
	}
	return v
}
