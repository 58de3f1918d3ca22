// Package events implements the sweep event queue (spec §3 "Event queue",
// §4.2): a totally ordered, siblinged list of edge events built from a path,
// supporting sorted insertion of future events as the sweep discovers
// intersections.
//
// The queue is backed by a google/btree ordered tree keyed by sweep
// position (spec §4.1's After/Before comparator); events that share a
// position are grouped into one node's sibling chain rather than addressed
// by a separate sibling-id scheme, since Go's btree already gives us
// O(log n) sorted find-or-insert at a position.
package events

import (
	"github.com/google/btree"

	"github.com/gogpu/tessellate"
)

// Edge is one sibling at an event position: either a real directed edge
// ("is_edge" true, spec §3) or a synthetic vertex-only marker used to force
// the sweep to stop at a local Y-maximum with no edge below it.
type Edge struct {
	IsEdge bool

	To      tessellate.Point
	FromID  uint32
	ToID    uint32
	Winding int8 // +1 or -1

	// TFrom/TTo is this edge's live parameter range within its originating
	// Bézier, used to interpolate attributes for vertices introduced by
	// flattening or intersection (spec §3 "range").
	TFrom, TTo float32

	// SrcEdge identifies the original edge this sub-segment came from, so
	// that splits can be traced back for attribute interpolation.
	SrcEdge uint32
}

// node is one queue entry: a sweep position plus every sibling event at
// that exact position.
type node struct {
	pos      tessellate.Point
	siblings []Edge
}

// Queue is the sweep event queue. Zero value is not usable; use New.
type Queue struct {
	tree *btree.BTreeG[*node]
}

func nodeLess(a, b *node) bool {
	return tessellate.Before(a.pos, b.pos)
}

// New creates an empty event queue.
func New() *Queue {
	return &Queue{tree: btree.NewG[*node](32, nodeLess)}
}

// Reset empties the queue for reuse without releasing the underlying tree
// (spec §5 "the event queue ... is reset (but not deallocated) between
// runs").
func (q *Queue) Reset() {
	q.tree.Clear(false)
}

// Len returns the number of distinct sweep positions still queued.
func (q *Queue) Len() int {
	return q.tree.Len()
}

// Empty reports whether the queue has no more positions to visit.
func (q *Queue) Empty() bool {
	return q.tree.Len() == 0
}

// InsertSorted adds e as a sibling at pos, creating the position's node if
// this is the first event there. Callers may insert at any position that
// is not strictly before the current sweep position (enforced by the
// caller, spec §3).
func (q *Queue) InsertSorted(pos tessellate.Point, e Edge) {
	q.nodeAt(pos).siblings = append(q.nodeAt(pos).siblings, e)
}

// VertexEventSorted inserts a synthetic vertex-only event at pos: one with
// no edge below, used to force the sweep to stop at a local Y-maximum
// (spec §4.2).
func (q *Queue) VertexEventSorted(pos tessellate.Point) {
	q.InsertSorted(pos, Edge{IsEdge: false})
}

// nodeAt returns the node for pos, creating it if absent.
func (q *Queue) nodeAt(pos tessellate.Point) *node {
	key := &node{pos: pos}
	if existing, ok := q.tree.Get(key); ok {
		return existing
	}
	q.tree.ReplaceOrInsert(key)
	return key
}

// First returns the current (topmost/leftmost-on-ties) position and its
// sibling chain without removing it.
func (q *Queue) First() (pos tessellate.Point, siblings []Edge, ok bool) {
	n, ok := q.tree.Min()
	if !ok {
		return tessellate.Point{}, nil, false
	}
	return n.pos, n.siblings, true
}

// PopFront removes and returns the current position and its siblings. The
// sweep loop calls this once it has fully processed the position (spec
// §4.3 step 5, "advance to the next event id").
func (q *Queue) PopFront() (pos tessellate.Point, siblings []Edge, ok bool) {
	n, ok := q.tree.DeleteMin()
	if !ok {
		return tessellate.Point{}, nil, false
	}
	return n.pos, n.siblings, true
}
