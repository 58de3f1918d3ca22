package events

import (
	"github.com/gogpu/tessellate"
	"github.com/gogpu/tessellate/path"
)

// SourceEdge records the two caller-facing endpoint ids of one original
// (pre-flatten) path edge, keyed by the srcEdge id minted while building
// the queue. Attribute interpolation (spec §4.12) uses this table to go
// from a flattened/split edge's SrcEdge id back to the pair of endpoints
// its "Edge{from, to, t}" vertex source should interpolate between.
type SourceEdge struct {
	From, To uint32
}

// SourceTable maps a srcEdge id to its original endpoints.
type SourceTable []SourceEdge

// polyPoint is one vertex of a flattened sub-path: its position, its
// caller-facing endpoint id (NoEndpointID for interior flatten/synthetic
// points), and the Bézier parameter range leading into it.
type polyPoint struct {
	pos     tessellate.Point
	id      uint32
	tFrom   float32
	tTo     float32
	srcEdge uint32
}

// builder holds Build's mutable state.
type builder struct {
	q       *Queue
	tol     float32
	sources SourceTable

	subStart  polyPoint
	prev      polyPoint
	haveStart bool
	subPts    []polyPoint
}

func (b *builder) nextSrcEdge(from, to uint32) uint32 {
	id := uint32(len(b.sources))
	b.sources = append(b.sources, SourceEdge{From: from, To: to})
	return id
}

// Build flattens p's curves at tolerance and inserts one sibling edge per
// resulting line segment into q, plus synthetic vertex-only events at
// local Y-maxima with no edge below them (spec §4.2). It returns the
// source-edge table used by package attrib to resolve Edge{from,to,t}
// vertex sources.
func Build(q *Queue, p *path.Path, tolerance float32) (SourceTable, error) {
	if tolerance <= 0 || tolerance != tolerance {
		return nil, tessellate.ErrToleranceIsNaN()
	}

	b := &builder{q: q, tol: tolerance}

	flush := func(closed bool) error {
		if !b.haveStart {
			return nil
		}
		if closed && b.prev.pos != b.subStart.pos {
			srcEdge := b.nextSrcEdge(b.prev.id, b.subStart.id)
			closing := polyPoint{pos: b.subStart.pos, id: b.subStart.id, tTo: 1, srcEdge: srcEdge}
			if err := emitLine(q, b.prev, closing, srcEdge); err != nil {
				return err
			}
			b.subPts = append(b.subPts, closing)
		}
		insertMergeMarkers(q, b.subPts, closed)
		b.subPts = nil
		b.haveStart = false
		return nil
	}

	for _, ev := range p.Events() {
		switch e := ev.(type) {
		case path.Begin:
			if err := flush(false); err != nil {
				return nil, err
			}
			if e.Pt.IsNaN() {
				return nil, tessellate.ErrPositionIsNaN()
			}
			b.subStart = polyPoint{pos: e.Pt, id: uint32(e.At)}
			b.prev = b.subStart
			b.haveStart = true
			b.subPts = append(b.subPts[:0], b.subStart)

		case path.Line:
			if e.Pt.IsNaN() {
				return nil, tessellate.ErrPositionIsNaN()
			}
			srcEdge := b.nextSrcEdge(b.prev.id, uint32(e.To))
			cur := polyPoint{pos: e.Pt, id: uint32(e.To), tTo: 1, srcEdge: srcEdge}
			if err := emitLine(q, b.prev, cur, srcEdge); err != nil {
				return nil, err
			}
			b.subPts = append(b.subPts, cur)
			b.prev = cur

		case path.Quadratic:
			if e.Pt.IsNaN() || e.ControlPt.IsNaN() {
				return nil, tessellate.ErrPositionIsNaN()
			}
			srcEdge := b.nextSrcEdge(b.prev.id, uint32(e.To))
			curve := tessellate.QuadraticBezier{From: b.prev.pos, Control: e.ControlPt, To: e.Pt}
			from := b.prev
			curve.ForEachFlattenedWithT(tolerance, func(seg tessellate.FlatSegment) {
				to := polyPoint{pos: seg.To, id: uint32(path.NoEndpointID), tFrom: seg.TFrom, tTo: seg.TTo, srcEdge: srcEdge}
				if seg.To == e.Pt {
					to.id = uint32(e.To)
				}
				_ = emitLine(q, from, to, srcEdge)
				b.subPts = append(b.subPts, to)
				from = to
			})
			b.prev = from

		case path.Cubic:
			if e.Pt.IsNaN() || e.Control1Pt.IsNaN() || e.Control2Pt.IsNaN() {
				return nil, tessellate.ErrPositionIsNaN()
			}
			srcEdge := b.nextSrcEdge(b.prev.id, uint32(e.To))
			curve := tessellate.CubicBezier{From: b.prev.pos, Control1: e.Control1Pt, Control2: e.Control2Pt, To: e.Pt}
			from := b.prev
			curve.ForEachFlattenedWithT(tolerance, func(seg tessellate.FlatSegment) {
				to := polyPoint{pos: seg.To, id: uint32(path.NoEndpointID), tFrom: seg.TFrom, tTo: seg.TTo, srcEdge: srcEdge}
				if seg.To == e.Pt {
					to.id = uint32(e.To)
				}
				_ = emitLine(q, from, to, srcEdge)
				b.subPts = append(b.subPts, to)
				from = to
			})
			b.prev = from

		case path.End:
			if err := flush(e.Close); err != nil {
				return nil, err
			}
		}
	}
	if err := flush(false); err != nil {
		return nil, err
	}
	return b.sources, nil
}

// emitLine orients from->to downward per spec §4.2 and inserts the
// resulting edge at its upper endpoint. The attribute range always comes
// from `to`, the geometric endpoint of this particular flattened
// sub-segment, regardless of which of from/to ends up "upper" once
// oriented for the sweep.
func emitLine(q *Queue, from, to polyPoint, srcEdge uint32) error {
	if from.pos == to.pos {
		return nil // zero-length, nothing to sweep over
	}
	if from.pos.IsNaN() || to.pos.IsNaN() {
		return tessellate.ErrPositionIsNaN()
	}

	var upperPos, lowerPos tessellate.Point
	var upperID, lowerID uint32
	var winding int8
	if tessellate.Before(from.pos, to.pos) {
		upperPos, lowerPos, upperID, lowerID, winding = from.pos, to.pos, from.id, to.id, -1
	} else {
		upperPos, lowerPos, upperID, lowerID, winding = to.pos, from.pos, to.id, from.id, +1
	}

	q.InsertSorted(upperPos, Edge{
		IsEdge:  true,
		To:      lowerPos,
		FromID:  upperID,
		ToID:    lowerID,
		Winding: winding,
		TFrom:   to.tFrom,
		TTo:     to.tTo,
		SrcEdge: srcEdge,
	})
	return nil
}

// insertMergeMarkers scans the collected sub-path polyline for interior
// points ordered after both neighbors (local Y-maxima with no edge
// starting below them) and inserts a synthetic vertex-only event there
// (spec §4.2).
func insertMergeMarkers(q *Queue, pts []polyPoint, closed bool) {
	n := len(pts)
	if n < 3 {
		return
	}
	for i := 0; i < n; i++ {
		if !closed && (i == 0 || i == n-1) {
			continue
		}
		prevIdx := (i - 1 + n) % n
		nextIdx := (i + 1) % n
		p := pts[i].pos
		if tessellate.After(p, pts[prevIdx].pos) && tessellate.After(p, pts[nextIdx].pos) {
			q.VertexEventSorted(p)
		}
	}
}
