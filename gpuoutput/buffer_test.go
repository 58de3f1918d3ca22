package gpuoutput

import (
	"encoding/binary"
	"math"
	"testing"

	"github.com/gogpu/tessellate"
	"github.com/gogpu/tessellate/attrib"
	"github.com/gogpu/tessellate/fill"
	"github.com/gogpu/tessellate/stroke"
)

func decodeFloat32(b []byte, i int) float32 {
	return math.Float32frombits(binary.LittleEndian.Uint32(b[i*4:]))
}

func TestFillMeshBuilderPacksPositionAndAttrib(t *testing.T) {
	attrs := attrib.Set{
		Values:     [][]float32{{1, 0, 0}, {0, 1, 0}},
		Components: 3,
	}
	b := NewFillMeshBuilder(attrs)
	b.BeginGeometry()

	v0, err := b.AddFillVertex(fill.FillVertex{
		Position: tessellate.Pt(1, 2),
		Sources:  []fill.VertexSource{{Kind: fill.SourceEndpoint, Endpoint: 0}},
	})
	if err != nil {
		t.Fatalf("AddFillVertex: %v", err)
	}
	v1, err := b.AddFillVertex(fill.FillVertex{
		Position: tessellate.Pt(3, 4),
		Sources:  []fill.VertexSource{{Kind: fill.SourceEndpoint, Endpoint: 1}},
	})
	if err != nil {
		t.Fatalf("AddFillVertex: %v", err)
	}
	v2, err := b.AddFillVertex(fill.FillVertex{
		Position: tessellate.Pt(5, 6),
		Sources:  []fill.VertexSource{{Kind: fill.SourceEndpoint, Endpoint: 0}},
	})
	if err != nil {
		t.Fatalf("AddFillVertex: %v", err)
	}
	b.AddTriangle(v0, v1, v2)

	count := b.EndGeometry()
	if count.Vertices != 3 || count.Indices != 3 {
		t.Fatalf("Count = %+v, want {3 3}", count)
	}

	mesh := b.Mesh()
	if len(mesh.Layout.Attributes) != 4 {
		t.Fatalf("len(Attributes) = %d, want 4 (position + 3 components)", len(mesh.Layout.Attributes))
	}
	wantStride := uint64(2*floatSize + 3*floatSize)
	if mesh.Layout.ArrayStride != wantStride {
		t.Fatalf("ArrayStride = %d, want %d", mesh.Layout.ArrayStride, wantStride)
	}

	stride := int(mesh.Layout.ArrayStride)
	vert0 := mesh.Vertices[0:stride]
	if x, y := decodeFloat32(vert0, 0), decodeFloat32(vert0, 1); x != 1 || y != 2 {
		t.Fatalf("vertex 0 position = (%v, %v), want (1, 2)", x, y)
	}
	if r := decodeFloat32(vert0, 2); r != 1 {
		t.Fatalf("vertex 0 attrib[0] = %v, want 1 (endpoint 0's red)", r)
	}

	if len(mesh.Indices) != 12 {
		t.Fatalf("len(Indices) = %d, want 12 (3 uint32)", len(mesh.Indices))
	}
}

func TestStrokeMeshBuilderIncludesWidth(t *testing.T) {
	attrs := attrib.Set{Values: [][]float32{{9}}, Components: 1}
	b := NewStrokeMeshBuilder(attrs)
	b.BeginGeometry()

	id, err := b.AddStrokeVertex(stroke.StrokeVertex{
		Position: tessellate.Pt(0, 0),
		Width:    2.5,
		Source:   stroke.Source{Endpoint: 0},
	})
	if err != nil {
		t.Fatalf("AddStrokeVertex: %v", err)
	}
	if id != 0 {
		t.Fatalf("first vertex id = %d, want 0", id)
	}

	mesh := b.Mesh()
	stride := int(mesh.Layout.ArrayStride)
	vert0 := mesh.Vertices[0:stride]
	if width := decodeFloat32(vert0, 2); width != 2.5 {
		t.Fatalf("stroke width = %v, want 2.5", width)
	}
}
