package stroke

import (
	"github.com/gogpu/tessellate"
	"github.com/gogpu/tessellate/path"
)

// noEndpointID marks a stroke point synthesized by curve flattening,
// sharing path.NoEndpointID's all-ones bit pattern without importing the
// path package's EndpointID type into Source.
const noEndpointID = ^uint32(0)

// strokePoint is one vertex of a flattened sub-path: its centerline
// position, attribute provenance, and cumulative distance along the
// sub-path (used by VariableWidth).
type strokePoint struct {
	pos  tessellate.Point
	src  Source
	dist float32
}

// subpath is one flattened, possibly-closed polyline extracted from a
// path's event stream.
type subpath struct {
	points []strokePoint
	closed bool
}

// flattenSubpaths walks p's event stream, flattening every curve at
// tolerance, and returns one subpath per Begin/End pair.
func flattenSubpaths(p *path.Path, tolerance float32) ([]subpath, error) {
	var subs []subpath
	var cur subpath
	haveStart := false
	var distance float32
	var prevPos tessellate.Point
	var lastRealID uint32

	appendPoint := func(pos tessellate.Point, id uint32, edgeFrom, edgeTo uint32, t float32) {
		if len(cur.points) > 0 {
			distance += pos.Sub(prevPos).Length()
		} else {
			distance = 0
		}
		prevPos = pos
		src := Source{Endpoint: id}
		if id == noEndpointID {
			src = Source{HasEdge: true, EdgeFrom: edgeFrom, EdgeTo: edgeTo, T: t}
		}
		cur.points = append(cur.points, strokePoint{pos: pos, src: src, dist: distance})
	}

	flush := func(closed bool) {
		if !haveStart {
			return
		}
		cur.closed = closed
		if len(cur.points) > 0 {
			subs = append(subs, cur)
		}
		cur = subpath{}
		haveStart = false
	}

	for _, ev := range p.Events() {
		switch e := ev.(type) {
		case path.Begin:
			flush(false)
			if e.Pt.IsNaN() {
				return nil, tessellate.ErrPositionIsNaN()
			}
			cur = subpath{}
			appendPoint(e.Pt, uint32(e.At), 0, 0, 0)
			lastRealID = uint32(e.At)
			haveStart = true

		case path.Line:
			if e.Pt.IsNaN() {
				return nil, tessellate.ErrPositionIsNaN()
			}
			appendPoint(e.Pt, uint32(e.To), 0, 0, 0)
			lastRealID = uint32(e.To)

		case path.Quadratic:
			if e.Pt.IsNaN() || e.ControlPt.IsNaN() {
				return nil, tessellate.ErrPositionIsNaN()
			}
			edgeFrom := lastRealID
			curve := tessellate.QuadraticBezier{From: prevPos, Control: e.ControlPt, To: e.Pt}
			curve.ForEachFlattenedWithT(tolerance, func(seg tessellate.FlatSegment) {
				id := uint32(noEndpointID)
				if seg.To == e.Pt {
					id = uint32(e.To)
				}
				appendPoint(seg.To, id, edgeFrom, uint32(e.To), seg.TTo)
			})
			lastRealID = uint32(e.To)

		case path.Cubic:
			if e.Pt.IsNaN() || e.Control1Pt.IsNaN() || e.Control2Pt.IsNaN() {
				return nil, tessellate.ErrPositionIsNaN()
			}
			edgeFrom := lastRealID
			curve := tessellate.CubicBezier{From: prevPos, Control1: e.Control1Pt, Control2: e.Control2Pt, To: e.Pt}
			curve.ForEachFlattenedWithT(tolerance, func(seg tessellate.FlatSegment) {
				id := uint32(noEndpointID)
				if seg.To == e.Pt {
					id = uint32(e.To)
				}
				appendPoint(seg.To, id, edgeFrom, uint32(e.To), seg.TTo)
			})
			lastRealID = uint32(e.To)

		case path.End:
			flush(e.Close)
		}
	}
	flush(false)
	return subs, nil
}
