package gpuoutput

import (
	"github.com/gogpu/gputypes"
	"github.com/gogpu/tessellate"
	"github.com/gogpu/tessellate/attrib"
	"github.com/gogpu/tessellate/stroke"
)

// StrokeMeshBuilder implements stroke.Builder the same way
// FillMeshBuilder implements fill.Builder: interleave position, stroke
// width, and interpolated attributes straight into a gputypes-described
// buffer as vertices arrive.
type StrokeMeshBuilder struct {
	Attrs attrib.Set

	vertices []byte
	indices  []byte
	scratch  []float32
	count    Count
}

var _ stroke.Builder = (*StrokeMeshBuilder)(nil)

func NewStrokeMeshBuilder(attrs attrib.Set) *StrokeMeshBuilder {
	return &StrokeMeshBuilder{Attrs: attrs, scratch: make([]float32, attrs.Components+1)}
}

func (b *StrokeMeshBuilder) BeginGeometry() {
	b.vertices = b.vertices[:0]
	b.indices = b.indices[:0]
	b.count = Count{}
}

func (b *StrokeMeshBuilder) EndGeometry() stroke.Count {
	return stroke.Count{Vertices: b.count.Vertices, Indices: b.count.Indices}
}

func (b *StrokeMeshBuilder) AbortGeometry(err error) {}

func (b *StrokeMeshBuilder) AddStrokeVertex(v stroke.StrokeVertex) (stroke.VertexID, error) {
	if b.count.Vertices == ^uint32(0) {
		return 0, tessellate.ErrTooManyVertices()
	}
	attrib.Interpolate(b.scratch[1:], []attrib.Source{stroke.ToAttribSource(v.Source)}, b.Attrs)
	b.scratch[0] = v.Width
	b.vertices = appendVertex(b.vertices, v.Position, b.scratch)
	id := stroke.VertexID(b.count.Vertices)
	b.count.Vertices++
	return id, nil
}

func (b *StrokeMeshBuilder) AddTriangle(a, bb, c stroke.VertexID) {
	b.indices = appendIndex(b.indices, uint32(a))
	b.indices = appendIndex(b.indices, uint32(bb))
	b.indices = appendIndex(b.indices, uint32(c))
	b.count.Indices += 3
}

// Mesh packs the accumulated run into a GPU-ready buffer pair. The first
// interleaved float after position is always stroke width, followed by
// Attrs.Components interpolated attribute floats.
func (b *StrokeMeshBuilder) Mesh() Mesh {
	return Mesh{
		Vertices:    append([]byte(nil), b.vertices...),
		Indices:     append([]byte(nil), b.indices...),
		Layout:      vertexLayout(b.Attrs.Components + 1),
		IndexFormat: gputypes.IndexFormatUint32,
		Count:       b.count,
	}
}
