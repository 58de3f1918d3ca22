package fill

import "github.com/gogpu/tessellate/internal/events"

// vertexSourceFor resolves the caller-facing VertexSource for a point
// produced during the sweep: a point that landed exactly on an original
// endpoint gets a single Endpoint source; anything introduced by
// flattening or by an intersection split gets an Edge source against its
// original edge's two endpoints, parameterized by t (spec §4.12).
func vertexSourceFor(id uint32, srcEdge uint32, t float32, sources events.SourceTable) VertexSource {
	if id != noEndpointID {
		return VertexSource{Kind: SourceEndpoint, Endpoint: id}
	}
	se := sources[srcEdge]
	return VertexSource{Kind: SourceEdge, EdgeFrom: se.From, EdgeTo: se.To, T: t}
}
