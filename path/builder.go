package path

import "github.com/gogpu/tessellate"

// Builder provides a fluent interface for path construction, mirroring the
// teacher's PathBuilder (begin/line_to/quadratic_bezier_to/cubic_bezier_to/
// end convention) but emitting the opaque-id event stream both
// tessellators consume.
type Builder struct {
	path         Path
	ids          idGen
	subStart     EndpointID
	subPathOpen  bool
}

// NewBuilder starts a new, empty path builder.
func NewBuilder() *Builder {
	return &Builder{}
}

// Begin starts a new sub-path at p. Must be paired with a later End.
func (b *Builder) Begin(p tessellate.Point) *Builder {
	id := b.ids.take()
	b.subStart = id
	b.subPathOpen = true
	b.path.events = append(b.path.events, Begin{At: id, Pt: p})
	return b
}

// LineTo appends a straight segment to p.
func (b *Builder) LineTo(p tessellate.Point) *Builder {
	id := b.ids.take()
	b.path.events = append(b.path.events, Line{To: id, Pt: p})
	return b
}

// QuadraticTo appends a quadratic Bézier segment through ctrl to p.
func (b *Builder) QuadraticTo(ctrl, p tessellate.Point) *Builder {
	cid := b.ids.take()
	tid := b.ids.take()
	b.path.events = append(b.path.events, Quadratic{
		Control: cid, ControlPt: ctrl,
		To: tid, Pt: p,
	})
	return b
}

// CubicTo appends a cubic Bézier segment through ctrl1/ctrl2 to p.
func (b *Builder) CubicTo(ctrl1, ctrl2, p tessellate.Point) *Builder {
	c1 := b.ids.take()
	c2 := b.ids.take()
	tid := b.ids.take()
	b.path.events = append(b.path.events, Cubic{
		Control1: c1, Control1Pt: ctrl1,
		Control2: c2, Control2Pt: ctrl2,
		To: tid, Pt: p,
	})
	return b
}

// End closes the current sub-path. When close is true, an edge back to the
// sub-path's starting point is added (spec §4.2).
func (b *Builder) End(close bool) *Builder {
	b.subPathOpen = false
	b.path.events = append(b.path.events, End{Close: close})
	return b
}

// Rect appends a closed rectangle sub-path.
func (b *Builder) Rect(x, y, w, h float32) *Builder {
	b.Begin(tessellate.Pt(x, y))
	b.LineTo(tessellate.Pt(x+w, y))
	b.LineTo(tessellate.Pt(x+w, y+h))
	b.LineTo(tessellate.Pt(x, y+h))
	return b.End(true)
}

// Circle approximates a circle of the given radius centered at (cx, cy)
// with four cubic Bézier quadrants (the standard kappa = 0.5522847498
// approximation used throughout the retrieval pack).
func (b *Builder) Circle(cx, cy, r float32) *Builder {
	const k = 0.5522847498 * 1
	b.Begin(tessellate.Pt(cx+r, cy))
	b.CubicTo(tessellate.Pt(cx+r, cy+r*k), tessellate.Pt(cx+r*k, cy+r), tessellate.Pt(cx, cy+r))
	b.CubicTo(tessellate.Pt(cx-r*k, cy+r), tessellate.Pt(cx-r, cy+r*k), tessellate.Pt(cx-r, cy))
	b.CubicTo(tessellate.Pt(cx-r, cy-r*k), tessellate.Pt(cx-r*k, cy-r), tessellate.Pt(cx, cy-r))
	b.CubicTo(tessellate.Pt(cx+r*k, cy-r), tessellate.Pt(cx+r, cy-r*k), tessellate.Pt(cx+r, cy))
	return b.End(true)
}

// Path returns the built path. The builder can keep being used afterward;
// further calls append more sub-paths to the same underlying event stream.
func (b *Builder) Path() *Path {
	p := b.path
	return &p
}

// IsOpen reports whether a sub-path is currently open (Begin called without
// a matching End).
func (b *Builder) IsOpen() bool {
	return b.subPathOpen
}
