package fill

import "github.com/gogpu/tessellate"

// addFillVertex forwards v to b, wrapping a non-TooManyVertices failure as
// a GeometryBuilder error (spec §7), matching stroke's AddStrokeVertex
// error convention.
func addFillVertex(b Builder, v FillVertex) (VertexID, error) {
	id, err := b.AddFillVertex(v)
	if err == nil {
		return id, nil
	}
	if te, ok := err.(*tessellate.TessellationError); ok && te.Is(tessellate.ErrTooManyVertices()) {
		return 0, err
	}
	return 0, tessellate.ErrGeometryBuilder(err)
}
