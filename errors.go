package tessellate

import "fmt"

// ErrorKind classifies a TessellationError per spec §7.
type ErrorKind int

const (
	// UnsupportedParameter covers NaN tolerances and positions.
	UnsupportedParameter ErrorKind = iota
	// InternalError covers sweep invariant violations recoverable once via
	// error-recovery (spec §4.7) before becoming fatal.
	InternalError
	// GeometryBuilder covers output-sink failures, including
	// TooManyVertices.
	GeometryBuilder
)

func (k ErrorKind) String() string {
	switch k {
	case UnsupportedParameter:
		return "UnsupportedParameter"
	case InternalError:
		return "InternalError"
	case GeometryBuilder:
		return "GeometryBuilder"
	default:
		return "Unknown"
	}
}

// TessellationError is the error type returned by both tessellators. Code
// identifies the specific condition within Kind (e.g. "PositionIsNaN",
// "IncorrectActiveEdgeOrder:3", "MergeVertexOutside").
type TessellationError struct {
	Kind ErrorKind
	Code string
	Err  error // wrapped cause, e.g. a GeometryBuilder failure from the caller
}

func (e *TessellationError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("tessellate: %s(%s): %v", e.Kind, e.Code, e.Err)
	}
	return fmt.Sprintf("tessellate: %s(%s)", e.Kind, e.Code)
}

func (e *TessellationError) Unwrap() error { return e.Err }

// Is reports whether target is a *TessellationError with the same Kind and
// Code, enabling errors.Is(err, ErrPositionIsNaN()) style checks.
func (e *TessellationError) Is(target error) bool {
	t, ok := target.(*TessellationError)
	if !ok {
		return false
	}
	return t.Kind == e.Kind && (t.Code == "" || t.Code == e.Code)
}

// ErrToleranceIsNaN reports that FillOptions.Tolerance or
// StrokeOptions.Tolerance was NaN.
func ErrToleranceIsNaN() *TessellationError {
	return &TessellationError{Kind: UnsupportedParameter, Code: "ToleranceIsNaN"}
}

// ErrPositionIsNaN reports that a path event produced a NaN position
// (spec §4.3 step 1).
func ErrPositionIsNaN() *TessellationError {
	return &TessellationError{Kind: UnsupportedParameter, Code: "PositionIsNaN"}
}

// ErrIncorrectActiveEdgeOrder reports an active-edge-list invariant
// violation; code distinguishes which check failed. The fill sweep's scan
// returns no errors, so nothing in this module constructs it.
func ErrIncorrectActiveEdgeOrder(code string) *TessellationError {
	return &TessellationError{Kind: InternalError, Code: "IncorrectActiveEdgeOrder:" + code}
}

// ErrMergeVertexOutside reports a merge marker found as the last connecting
// edge with nothing above or to its right. The fill sweep's scan returns
// no errors, so nothing in this module constructs it.
func ErrMergeVertexOutside() *TessellationError {
	return &TessellationError{Kind: InternalError, Code: "MergeVertexOutside"}
}

// ErrInsufficientNumberOfSpans reports that the fill sweep drained its
// event queue with spans still open.
func ErrInsufficientNumberOfSpans() *TessellationError {
	return &TessellationError{Kind: InternalError, Code: "InsufficientNumberOfSpans"}
}

// ErrTooManyVertices reports that a geometry builder rejected a vertex
// because it exceeded its capacity (spec §6.2, §7).
func ErrTooManyVertices() *TessellationError {
	return &TessellationError{Kind: GeometryBuilder, Code: "TooManyVertices"}
}

// ErrGeometryBuilder wraps an arbitrary failure returned by a caller-supplied
// geometry builder.
func ErrGeometryBuilder(cause error) *TessellationError {
	return &TessellationError{Kind: GeometryBuilder, Code: "BuilderError", Err: cause}
}

// ErrInvalidWidthCallback reports that a stroke.VariableWidth
// implementation returned a NaN or negative width.
func ErrInvalidWidthCallback() *TessellationError {
	return &TessellationError{Kind: UnsupportedParameter, Code: "InvalidWidthCallback"}
}
