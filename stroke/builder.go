package stroke

// Count reports how many vertices and indices a geometry builder produced
// over one tessellation run.
type Count struct {
	Vertices uint32
	Indices  uint32
}

// Builder is the output sink a Tessellator writes triangles and vertices
// to.
type Builder interface {
	BeginGeometry()
	EndGeometry() Count
	AbortGeometry(err error)
	AddStrokeVertex(v StrokeVertex) (VertexID, error)
	AddTriangle(a, b, c VertexID)
}
