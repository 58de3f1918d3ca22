// Package gpuoutput adapts fill.Builder and stroke.Builder onto a
// gputypes-described interleaved vertex buffer and uint32 index buffer,
// so tessellated output can be uploaded to a GPU without an intermediate
// copy (spec §6.2's geometry output sink, concretely realized).
package gpuoutput

import (
	"encoding/binary"
	"math"

	"github.com/gogpu/gputypes"
	"github.com/gogpu/tessellate"
)

// Mesh is the packed result of one BeginGeometry/EndGeometry run: a
// vertex buffer laid out per Layout (position first, then Components
// attribute floats), a uint32 index buffer, and the gputypes descriptor
// a render pipeline needs to bind both.
type Mesh struct {
	Vertices    []byte
	Indices     []byte
	Layout      gputypes.VertexBufferLayout
	IndexFormat gputypes.IndexFormat
	Count       Count
}

// Count mirrors fill.Count/stroke.Count; kept local so this package
// doesn't need to pick one of the two as canonical.
type Count struct {
	Vertices uint32
	Indices  uint32
}

const floatSize = 4

// vertexLayout builds the gputypes.VertexBufferLayout for an interleaved
// [x, y, attrib0, attrib1, ...] vertex: float32x2 position at
// shaderLocation 0, followed by one float32 attribute per component at
// shaderLocation 1, 2, ....
func vertexLayout(components int) gputypes.VertexBufferLayout {
	attrs := make([]gputypes.VertexAttribute, 0, components+1)
	attrs = append(attrs, gputypes.VertexAttribute{
		Format:         gputypes.VertexFormatFloat32x2,
		Offset:         0,
		ShaderLocation: 0,
	})
	for i := 0; i < components; i++ {
		attrs = append(attrs, gputypes.VertexAttribute{
			Format:         gputypes.VertexFormatFloat32,
			Offset:         uint64(2*floatSize + i*floatSize),
			ShaderLocation: uint32(i + 1),
		})
	}
	return gputypes.VertexBufferLayout{
		ArrayStride: uint64(2*floatSize + components*floatSize),
		StepMode:    gputypes.VertexStepModeVertex,
		Attributes:  attrs,
	}
}

func appendVertex(dst []byte, pos tessellate.Point, attr []float32) []byte {
	var buf [floatSize]byte
	binary.LittleEndian.PutUint32(buf[:], math.Float32bits(pos.X))
	dst = append(dst, buf[:]...)
	binary.LittleEndian.PutUint32(buf[:], math.Float32bits(pos.Y))
	dst = append(dst, buf[:]...)
	for _, c := range attr {
		binary.LittleEndian.PutUint32(buf[:], math.Float32bits(c))
		dst = append(dst, buf[:]...)
	}
	return dst
}

func appendIndex(dst []byte, i uint32) []byte {
	var buf [4]byte
	binary.LittleEndian.PutUint32(buf[:], i)
	return append(dst, buf[:]...)
}
