package fill

import "github.com/gogpu/tessellate"

// noEndpointID marks an active edge endpoint synthesized by flattening or
// by an intersection split, as opposed to an original path endpoint. It
// shares path.NoEndpointID's all-ones bit pattern without importing the
// path package here.
const noEndpointID = ^uint32(0)

// activeEdge is an edge currently crossing the sweep line (spec §3
// "Active edge"). Edges are kept in a single slice, ordered left-to-right
// at the current sweep position; index into that slice is the span
// boundary each edge belongs to.
type activeEdge struct {
	from, to tessellate.Point
	winding  int8
	isMerge  bool

	fromID  uint32
	toID    uint32
	srcEdge uint32
	// tStart/tEnd is this edge's remaining live attribute range: when the
	// edge is split at an intersection, the portion still active keeps
	// [tSplit, tEnd] (spec §4.5 "range_end").
	tStart, tEnd float32

	minX, maxX float32
}

func newActiveEdge(from, to tessellate.Point, winding int8, fromID, toID, srcEdge uint32, tStart, tEnd float32) activeEdge {
	e := activeEdge{
		from: from, to: to, winding: winding,
		fromID: fromID, toID: toID, srcEdge: srcEdge,
		tStart: tStart, tEnd: tEnd,
	}
	e.updateBounds()
	return e
}

func (e *activeEdge) updateBounds() {
	if e.from.X < e.to.X {
		e.minX, e.maxX = e.from.X, e.to.X
	} else {
		e.minX, e.maxX = e.to.X, e.from.X
	}
}

// solvedX returns the edge's X coordinate at sweep position y, clamped to
// the edge's own Y range.
func (e *activeEdge) solvedX(y float32) float32 {
	if e.isMerge {
		return e.from.X
	}
	dy := e.to.Y - e.from.Y
	if dy == 0 {
		return e.from.X
	}
	t := (y - e.from.Y) / dy
	if t < 0 {
		t = 0
	}
	if t > 1 {
		t = 1
	}
	return e.from.X + (e.to.X-e.from.X)*t
}

// slope returns dx/dy, used for tie-breaking edges that cross the same
// point (spec §4.1 "stable tie-break on slope").
func (e *activeEdge) slope() float32 {
	dy := e.to.Y - e.from.Y
	if dy == 0 {
		return 0
	}
	return (e.to.X - e.from.X) / dy
}

// invSlopeOrSlope returns 1/slope when |slope| > 1, else slope, matching
// the coincident-edge comparison convention of spec §4.8.
func (e *activeEdge) invSlopeOrSlope() float32 {
	s := e.slope()
	if s > 1 || s < -1 {
		return 1 / s
	}
	return s
}
