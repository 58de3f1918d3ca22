package stroke

import "github.com/gogpu/tessellate"

// Source identifies which original path endpoint (or, for a point
// introduced by flattening, which edge and parameter) a stroke vertex's
// attributes should be interpolated from (spec §4.12, mirroring fill's
// VertexSource).
type Source struct {
	// Endpoint is the originating EndpointID when the vertex sits exactly
	// on an original path endpoint.
	Endpoint uint32
	// HasEdge reports whether EdgeFrom/EdgeTo/T should be used instead
	// (the vertex was introduced by curve flattening).
	HasEdge          bool
	EdgeFrom, EdgeTo uint32
	T                float32
}

// StrokeVertex is passed to Builder.AddStrokeVertex for every vertex the
// tessellator emits.
type StrokeVertex struct {
	Position tessellate.Point
	// Width is the stroke width in effect at this vertex, which varies
	// along the path when a VariableWidth callback is in use.
	Width  float32
	Source Source
}

// VertexID is the 32-bit id a geometry builder assigns to a vertex it has
// accepted.
type VertexID uint32
