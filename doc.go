// Package tessellate provides the geometric core shared by the fill and
// stroke tessellators: 2D points and vectors, the sweep ordering
// comparators, and Bézier splitting and flattening.
//
// # Overview
//
// tessellate converts filled and stroked planar paths — line segments and
// quadratic/cubic Bézier curves — into indexed triangle meshes. The two
// tessellators live in their own packages:
//
//	fill.Tessellator    a plane-sweep fill tessellator (package fill)
//	stroke.Tessellator  a streaming stroke-to-triangle-strip builder (package stroke)
//
// This root package holds only what both share: Point/Vector arithmetic,
// the sweep ordering comparator, and the slog-based logging convention used
// across the module.
//
// # Quick start
//
//	b := path.NewBuilder()
//	b.Begin(tessellate.Pt(0, 0))
//	b.LineTo(tessellate.Pt(100, 0))
//	b.LineTo(tessellate.Pt(100, 100))
//	b.End(true)
//
//	ft := fill.New()
//	err := ft.Tessellate(b.Path(), fill.DefaultOptions(), myFillGeometryBuilder)
//
// # Architecture
//
//   - Public API: this package (geometry), path (path construction),
//     fill and stroke (tessellators), attrib (attribute interpolation).
//   - Internal: internal/events (sweep event queue), internal/monotone
//     (per-span triangulator).
//   - Consumers: gpuoutput (GPU vertex-buffer adapter), cmd/tessellate (CLI).
//
// # Coordinate system
//
// Origin at top-left, X increases right, Y increases down — the sweep
// direction is top-to-bottom, left-to-right (see Orientation for the
// horizontal variant).
package tessellate
