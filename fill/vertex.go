package fill

import (
	"github.com/gogpu/tessellate"
	"github.com/gogpu/tessellate/internal/monotone"
)

// Side labels which side of a span a vertex event applies to (spec §4.4
// "vertex_events: pairs (span_index, Side)"). It is the same notion the
// monotone triangulator tracks per stack vertex, so fill reuses that type
// rather than keeping a parallel one.
type Side = monotone.Side

const (
	Left  = monotone.Left
	Right = monotone.Right
)

// SourceKind distinguishes the two shapes a VertexSource can take (spec
// §4.12).
type SourceKind int

const (
	// SourceEndpoint identifies an original path endpoint.
	SourceEndpoint SourceKind = iota
	// SourceEdge identifies a point strictly inside an edge, parameterized
	// by t against that edge's two original endpoints.
	SourceEdge
)

// VertexSource is one contributor to an output vertex's interpolated
// attributes (spec §4.12). A vertex created exactly at an original
// endpoint has exactly one Endpoint source; a vertex introduced by
// flattening has one Edge source; a vertex introduced by an intersection
// split has one Edge source per crossing edge; a vertex
// where multiple original features coincide (self-intersections,
// coincident endpoints) has more than one source and the value is their
// mean.
type VertexSource struct {
	Kind SourceKind

	// Endpoint is valid when Kind == SourceEndpoint.
	Endpoint uint32

	// EdgeFrom/EdgeTo/T are valid when Kind == SourceEdge: the vertex's
	// attributes are (1-T)*attrib(EdgeFrom) + T*attrib(EdgeTo).
	EdgeFrom, EdgeTo uint32
	T                float32
}

// FillVertex is passed to Builder.AddFillVertex for every vertex the
// sweep emits (spec §6.2).
type FillVertex struct {
	Position tessellate.Point
	Sources  []VertexSource
}

// VertexID is the 32-bit id a geometry builder assigns to a vertex it has
// accepted (spec §6.2).
type VertexID uint32
