package fill

import (
	"github.com/gogpu/tessellate"
	"github.com/gogpu/tessellate/internal/events"
	"github.com/gogpu/tessellate/path"
)

// Tessellator turns a filled path into triangles by a plane sweep over an
// event queue: an active edge list tracks which edges cross the current
// sweep position, and one monotone triangulator per open span emits
// triangles as the sweep passes each vertex (spec §4.3-§4.9).
type Tessellator struct {
	queue *events.Queue
	edges activeEdgeList
	spans spans

	sources     events.SourceTable
	sweepY      float32
	orientation tessellate.Orientation
	rule        Rule

	recovered bool
}

// New returns a ready-to-use Tessellator.
func New() *Tessellator {
	return &Tessellator{queue: events.New()}
}

// Reset releases per-run state so the Tessellator can be reused for a
// fresh Tessellate call without reallocating its internal structures
// (spec §5).
func (t *Tessellator) Reset() {
	t.queue.Reset()
	t.edges.reset()
	t.spans.reset()
	t.sources = nil
	t.sweepY = 0
	t.recovered = false
}

// Tessellate fills p according to opts, writing the resulting triangles
// and vertices to b.
func (t *Tessellator) Tessellate(p *path.Path, opts Options, b Builder) error {
	t.Reset()

	tol := opts.Tolerance
	if tol != tol || tol <= 0 {
		return tessellate.ErrToleranceIsNaN()
	}

	t.orientation = opts.Orientation
	t.rule = opts.Rule
	work := p
	if opts.Orientation == tessellate.Horizontal {
		work = swapOrientation(p)
	}

	sources, err := events.Build(t.queue, work, tol)
	if err != nil {
		return err
	}
	t.sources = sources

	b.BeginGeometry()
	sink := triangleSink{b: b}
	if err := t.run(opts, b, sink); err != nil {
		b.AbortGeometry(err)
		return err
	}
	b.EndGeometry()
	return nil
}

// run drains the event queue, pre-empting each popped event with any
// intersection that the active edge list shows happening strictly
// before it (spec §4.5), then dispatching the event to the scan/modify
// machinery (spec §4.4/§4.6). On a processing error it attempts the
// one-shot recovery pass of spec §4.7 before giving up.
func (t *Tessellator) run(opts Options, b Builder, sink triangleSink) error {
	for {
		if opts.HandleIntersections {
			if handled, err := t.preemptIntersection(); err != nil {
				return err
			} else if handled {
				continue
			}
		}

		pos, siblings, ok := t.queue.PopFront()
		if !ok {
			break
		}
		t.sweepY = pos.Y

		if err := t.processEvent(pos, siblings, sink); err != nil {
			te, ok := err.(*tessellate.TessellationError)
			if !t.recovered && ok && te.Kind == tessellate.InternalError {
				t.recovered = true
				if rerr := t.recoverAfterError(opts); rerr == nil {
					continue
				}
			}
			return err
		}
	}
	if t.spans.len() != 0 {
		return tessellate.ErrInsufficientNumberOfSpans()
	}
	return nil
}

// preemptIntersection looks for the topmost crossing among the currently
// active edges that lands strictly before the queue's next event, and if
// found, splits both edges there and enqueues the continuations plus a
// vertex event at the crossing (spec §4.5).
func (t *Tessellator) preemptIntersection() (bool, error) {
	if len(t.edges.edges) < 2 {
		return false, nil
	}
	nextPos, _, ok := t.queue.First()
	if !ok {
		return false, nil
	}

	i, j, hit, found := topmostIntersection(t.edges.edges, t.sweepY)
	if !found {
		return false, nil
	}
	if !tessellate.Before(hit.pos, nextPos) {
		return false, nil
	}

	a := &t.edges.edges[i]
	b := &t.edges.edges[j]
	tailA := splitAt(a, hit.pos, hit.tOnFirst)
	tailB := splitAt(b, hit.pos, hit.tOnSecond)

	t.queue.InsertSorted(hit.pos, events.Edge{
		IsEdge: true, To: tailA.to, FromID: noEndpointID, ToID: tailA.toID,
		Winding: tailA.winding, TFrom: tailA.tStart, TTo: tailA.tEnd, SrcEdge: tailA.srcEdge,
	})
	t.queue.InsertSorted(hit.pos, events.Edge{
		IsEdge: true, To: tailB.to, FromID: noEndpointID, ToID: tailB.toID,
		Winding: tailB.winding, TFrom: tailB.tStart, TTo: tailB.tEnd, SrcEdge: tailB.srcEdge,
	})
	t.queue.VertexEventSorted(hit.pos)

	a.to = hit.pos
	a.toID = noEndpointID
	a.tEnd = tailA.tStart
	a.updateBounds()

	b.to = hit.pos
	b.toID = noEndpointID
	b.tEnd = tailB.tStart
	b.updateBounds()

	return true, nil
}

// processEvent scans the active edge list against pos, resolves the
// vertex's attribute sources, closes and opens spans per the resulting
// winding state, and splices any new edges into the active edge list.
func (t *Tessellator) processEvent(pos tessellate.Point, siblings []events.Edge, sink triangleSink) error {
	t.edges.sortAt(pos.Y)

	newEdges := make([]activeEdge, 0, len(siblings))
	for _, s := range siblings {
		if !s.IsEdge {
			continue
		}
		newEdges = append(newEdges, newActiveEdge(pos, s.To, s.Winding, s.FromID, s.ToID, s.SrcEdge, s.TFrom, s.TTo))
	}
	newEdges = mergeCoincident(newEdges)
	sortPendingEdges(newEdges)

	res := scan(&t.edges, t.rule, pos, len(newEdges))

	vertex := t.buildFillVertex(pos, res, siblings)
	vid, err := addFillVertex(sink.b, vertex)
	if err != nil {
		return err
	}

	t.applyConnecting(res, pos, vid, sink)
	t.applyPendingOpen(res, t.rule, newEdges, pos, vid, sink)

	t.spliceEdges(res, newEdges)

	return nil
}

// buildFillVertex resolves pos's attribute sources from the active
// edges ending there and the sibling edges starting there, deduplicating
// identical sources (spec §4.12).
func (t *Tessellator) buildFillVertex(pos tessellate.Point, res scanResult, siblings []events.Edge) FillVertex {
	var srcs []VertexSource
	add := func(s VertexSource) {
		for _, existing := range srcs {
			if existing == s {
				return
			}
		}
		srcs = append(srcs, s)
	}

	for i := res.firstActive; i < res.lastActive; i++ {
		e := &t.edges.edges[i]
		add(vertexSourceFor(e.toID, e.srcEdge, e.tEnd, t.sources))
	}
	for _, s := range siblings {
		if !s.IsEdge {
			continue
		}
		add(vertexSourceFor(s.FromID, s.SrcEdge, s.TFrom, t.sources))
	}
	if len(srcs) == 0 {
		// A synthetic merge-marker vertex event carries no edge of its
		// own to source attributes from; fall back to the event point
		// having no endpoint identity.
		add(VertexSource{Kind: SourceEndpoint, Endpoint: noEndpointID})
	}

	return FillVertex{Position: t.orientation.FromSweepSpace(pos), Sources: srcs}
}

// swapOrientation returns a copy of p with every coordinate's X and Y
// swapped, used to implement Horizontal sweeps as a Vertical sweep under
// the hood (spec §4's orientation-agnostic sweep). It preserves the
// original EndpointIDs so attribute provenance survives the swap.
func swapOrientation(p *path.Path) *path.Path {
	src := p.Events()
	out := make([]path.Event, len(src))
	for i, ev := range src {
		switch e := ev.(type) {
		case path.Begin:
			e.Pt = tessellate.Horizontal.ToSweepSpace(e.Pt)
			out[i] = e
		case path.Line:
			e.Pt = tessellate.Horizontal.ToSweepSpace(e.Pt)
			out[i] = e
		case path.Quadratic:
			e.ControlPt = tessellate.Horizontal.ToSweepSpace(e.ControlPt)
			e.Pt = tessellate.Horizontal.ToSweepSpace(e.Pt)
			out[i] = e
		case path.Cubic:
			e.Control1Pt = tessellate.Horizontal.ToSweepSpace(e.Control1Pt)
			e.Control2Pt = tessellate.Horizontal.ToSweepSpace(e.Control2Pt)
			e.Pt = tessellate.Horizontal.ToSweepSpace(e.Pt)
			out[i] = e
		case path.End:
			out[i] = e
		}
	}
	return path.FromEvents(out)
}
