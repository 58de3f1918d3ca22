package stroke

import "github.com/gogpu/tessellate"

// addStrokeVertex forwards a vertex to b, wrapping a non-TooManyVertices
// failure as a GeometryBuilder error (spec §7), matching fill's
// AddFillVertex error convention.
func addStrokeVertex(b Builder, pos tessellate.Point, width float32, src Source) (VertexID, error) {
	id, err := b.AddStrokeVertex(StrokeVertex{Position: pos, Width: width, Source: src})
	if err == nil {
		return id, nil
	}
	if te, ok := err.(*tessellate.TessellationError); ok && te.Is(tessellate.ErrTooManyVertices()) {
		return 0, err
	}
	return 0, tessellate.ErrGeometryBuilder(err)
}
