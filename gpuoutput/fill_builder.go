package gpuoutput

import (
	"github.com/gogpu/gputypes"
	"github.com/gogpu/tessellate"
	"github.com/gogpu/tessellate/attrib"
	"github.com/gogpu/tessellate/fill"
)

// FillMeshBuilder implements fill.Builder, packing every emitted vertex
// into a gputypes-described interleaved buffer as it arrives rather than
// retaining fill.FillVertex values.
type FillMeshBuilder struct {
	Attrs attrib.Set

	vertices []byte
	indices  []byte
	scratch  []float32
	count    Count
	aborted  error
}

var _ fill.Builder = (*FillMeshBuilder)(nil)

func NewFillMeshBuilder(attrs attrib.Set) *FillMeshBuilder {
	return &FillMeshBuilder{Attrs: attrs, scratch: make([]float32, attrs.Components)}
}

func (b *FillMeshBuilder) BeginGeometry() {
	b.vertices = b.vertices[:0]
	b.indices = b.indices[:0]
	b.count = Count{}
	b.aborted = nil
}

func (b *FillMeshBuilder) EndGeometry() fill.Count {
	return fill.Count{Vertices: b.count.Vertices, Indices: b.count.Indices}
}

func (b *FillMeshBuilder) AbortGeometry(err error) {
	b.aborted = err
}

func (b *FillMeshBuilder) AddFillVertex(v fill.FillVertex) (fill.VertexID, error) {
	if b.count.Vertices == ^uint32(0) {
		return 0, tessellate.ErrTooManyVertices()
	}
	attrib.Interpolate(b.scratch, fill.ToAttribSources(v.Sources), b.Attrs)
	b.vertices = appendVertex(b.vertices, v.Position, b.scratch)
	id := fill.VertexID(b.count.Vertices)
	b.count.Vertices++
	return id, nil
}

func (b *FillMeshBuilder) AddTriangle(a, bb, c fill.VertexID) {
	b.indices = appendIndex(b.indices, uint32(a))
	b.indices = appendIndex(b.indices, uint32(bb))
	b.indices = appendIndex(b.indices, uint32(c))
	b.count.Indices += 3
}

// Mesh packs the accumulated run into a GPU-ready buffer pair. Call
// after EndGeometry.
func (b *FillMeshBuilder) Mesh() Mesh {
	return Mesh{
		Vertices:    append([]byte(nil), b.vertices...),
		Indices:     append([]byte(nil), b.indices...),
		Layout:      vertexLayout(b.Attrs.Components),
		IndexFormat: gputypes.IndexFormatUint32,
		Count:       b.count,
	}
}
