package stroke

import "github.com/gogpu/tessellate/attrib"

// ToAttribSource converts a StrokeVertex's Source to the shape package
// attrib interpolates over.
func ToAttribSource(s Source) attrib.Source {
	if !s.HasEdge {
		return attrib.Source{IsEndpoint: true, Endpoint: s.Endpoint}
	}
	return attrib.Source{From: s.EdgeFrom, To: s.EdgeTo, T: s.T}
}
