package stroke

import "github.com/gogpu/tessellate"

// VariableWidth lets a caller vary the stroke width along the path
// instead of using a single Options.Width for the whole stroke. Distance
// is measured in path-length units from the start of the current
// sub-path (supplemented feature, carried over from the original
// implementation's per-endpoint width support).
type VariableWidth interface {
	// WidthAt returns the stroke width at the given distance along the
	// current sub-path. It must return a finite, non-negative value.
	WidthAt(distanceAlongPath float32) float32
}

// ErrInvalidWidthCallback reports that a VariableWidth implementation
// returned a NaN or negative width.
func ErrInvalidWidthCallback() error {
	return tessellate.ErrInvalidWidthCallback()
}
