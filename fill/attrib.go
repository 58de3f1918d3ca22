package fill

import "github.com/gogpu/tessellate/attrib"

// ToAttribSources converts a FillVertex's VertexSource list to the shape
// package attrib interpolates over.
func ToAttribSources(srcs []VertexSource) []attrib.Source {
	out := make([]attrib.Source, len(srcs))
	for i, s := range srcs {
		if s.Kind == SourceEndpoint {
			out[i] = attrib.Source{IsEndpoint: true, Endpoint: s.Endpoint}
		} else {
			out[i] = attrib.Source{From: s.EdgeFrom, To: s.EdgeTo, T: s.T}
		}
	}
	return out
}
