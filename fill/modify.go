package fill

import (
	"github.com/gogpu/tessellate"
	"github.com/gogpu/tessellate/internal/monotone"
)

// triangleSink adapts a Builder to monotone.Sink so a span's triangulator
// can emit triangles directly in terms of the builder's VertexID values.
type triangleSink struct {
	b Builder
}

func (s triangleSink) Triangle(a, b, c uint32) {
	s.b.AddTriangle(VertexID(a), VertexID(b), VertexID(c))
}

// spliceEdges replaces the active edges in [res.firstActive,
// res.lastActive) with newEdges, preserving the left-to-right order that
// scan established (spec §4.6).
func (t *Tessellator) spliceEdges(res scanResult, newEdges []activeEdge) {
	tail := append([]activeEdge{}, t.edges.edges[res.lastActive:]...)
	t.edges.edges = append(t.edges.edges[:res.firstActive], newEdges...)
	t.edges.edges = append(t.edges.edges, tail...)
}

// applyConnecting handles the "above" half of spec §4.4/§4.6: it ends
// every span that scan found strictly between two or more connecting
// edges (a merge, or the inner closures of a multi-edge coincidence) and
// records the current vertex on whichever spans border the whole
// connecting run on the left and right. This subsumes the vertex/left/
// right/merge/merge-split distinctions of the prose spec into one
// winding-driven routine: which spans exist to close or touch falls out
// of windingBeforePoint/windingAfter rather than being special-cased per
// event kind.
func (t *Tessellator) applyConnecting(res scanResult, p tessellate.Point, vid VertexID, sink monotone.Sink) {
	if !res.connecting {
		return
	}

	var offset int32
	for _, idx := range res.spansToEnd {
		i := idx - offset
		t.spans.list[i].end(p, uint32(vid), sink)
		t.spans.removeAt(int(i))
		offset++
	}

	if res.windingBeforePoint.isIn {
		t.spans.list[res.windingBeforePoint.spanIndex].vertex(p, uint32(vid), Right, sink)
	}
	if res.windingAfter.isIn {
		t.spans.list[res.windingAfter.spanIndex-offset].vertex(p, uint32(vid), Left, sink)
	}
}

// applySplitEnclosing implements spec §4.6's split-event apex rule: "open
// a new span using the later of the two enclosing edges' from as the new
// span's upper vertex so the new monotone triangulator starts from the
// correct apex". The two edges immediately bordering the live span at
// windingBeforePoint.spanIndex are split into two spans; whichever
// enclosing edge started more recently (its `from` is ordered after the
// other's) lends its origin as the brand-new span's apex, while the
// existing span keeps accumulating on the other side.
func (t *Tessellator) applySplitEnclosing(res scanResult, p tessellate.Point, vid VertexID, sink monotone.Sink) {
	if res.firstActive <= 0 || res.firstActive >= len(t.edges.edges) {
		// Malformed input (e.g. an unbounded "in" region running off the
		// end of the active list) — nothing sane to split against.
		return
	}

	leftEdge := t.edges.edges[res.firstActive-1]
	rightEdge := t.edges.edges[res.firstActive]
	leftSpan := int(res.windingBeforePoint.spanIndex)
	rightSpan := leftSpan + 1

	apex, apexID, newIdx := rightEdge.from, rightEdge.fromID, rightSpan
	if tessellate.After(leftEdge.from, rightEdge.from) {
		apex, apexID, newIdx = leftEdge.from, leftEdge.fromID, leftSpan
	}

	t.spans.insertAt(newIdx)
	t.spans.list[newIdx].vertex(apex, apexID, Left, sink)

	t.spans.list[leftSpan].vertex(p, uint32(vid), Right, sink)
	t.spans.list[rightSpan].vertex(p, uint32(vid), Left, sink)
}

// applyPendingOpen handles the "below" half of spec §4.4/§4.6: for each
// adjacent in-out pair among the edges newly starting at p, a new span
// opens (spec §4.6 "for each adjacent in-out pair of pending edges, begin
// a new span"). A genuine interior split additionally divides the
// existing enclosing span first via applySplitEnclosing; both a subpath
// start (winding starts "out") and an interior split (winding starts
// "in") fall out of the same walk over newEdges because the loop's
// open-the-next-span decision is driven purely by windingBeforePoint and
// each edge's own winding contribution.
func (t *Tessellator) applyPendingOpen(res scanResult, rule Rule, newEdges []activeEdge, p tessellate.Point, vid VertexID, sink monotone.Sink) {
	if res.splitEvent {
		t.applySplitEnclosing(res, p, vid, sink)
	}

	winding := res.windingBeforePoint
	for k, e := range newEdges {
		if k > 0 && winding.isIn {
			idx := int(winding.spanIndex)
			t.spans.insertAt(idx)
			t.spans.list[idx].vertex(p, uint32(vid), Left, sink)
		}
		winding.update(rule, e.winding)
	}
}
