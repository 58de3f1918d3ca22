package fill

// Count reports how many vertices and indices a geometry builder produced
// over one tessellation run (spec §6.2).
type Count struct {
	Vertices uint32
	Indices  uint32
}

// Builder is the output sink a Tessellator writes triangles and vertices
// to (spec §6.2's FillGeometryBuilder).
type Builder interface {
	// BeginGeometry prepares the builder for a new tessellation run.
	BeginGeometry()
	// EndGeometry finalizes the run and reports the totals produced.
	EndGeometry() Count
	// AbortGeometry is called instead of EndGeometry when tessellation
	// fails; already-emitted triangles are not guaranteed to survive it.
	AbortGeometry(err error)
	// AddFillVertex registers a vertex and returns the id later used in
	// AddTriangle. Returning a non-nil error aborts tessellation with
	// ErrGeometryBuilder(err), unless the error is ErrTooManyVertices, in
	// which case it is returned as-is (spec §7).
	AddFillVertex(v FillVertex) (VertexID, error)
	// AddTriangle records one output triangle by vertex id.
	AddTriangle(a, b, c VertexID)
}
