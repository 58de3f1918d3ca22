// Package monotone implements the per-span monotone triangulator (spec
// §4.9): given a Y-monotone chain of vertices labeled by which side of the
// span they sit on, it greedily emits triangles as a stack of annotated
// vertices.
package monotone

import (
	"github.com/emirpasic/gods/v2/stacks/arraystack"

	"github.com/gogpu/tessellate"
)

// Side labels which of a span's two boundary chains a vertex belongs to.
type Side int

const (
	Left Side = iota
	Right
)

// Opposite returns the other side.
func (s Side) Opposite() Side {
	if s == Left {
		return Right
	}
	return Left
}

// stackVertex is one entry of the triangulator's vertex stack.
type stackVertex struct {
	pos  tessellate.Point
	id   uint32
	side Side
}

// Sink receives triangles as the triangulator resolves them. Vertex ids are
// whatever the caller's geometry builder assigned (spec §6.2).
type Sink interface {
	Triangle(a, b, c uint32)
}

// Triangulator accumulates one span's Y-monotone polygon and emits
// triangles greedily as new vertices arrive in sweep order. The backing
// stack is an emirpasic/gods arraystack, reused across spans via Reset so
// a fill tessellation run needs at most one allocation per concurrently
// open span (spec §5 "pool recycles allocations between spans").
type Triangulator struct {
	stack *arraystack.Stack[stackVertex]
}

// New creates an empty triangulator.
func New() *Triangulator {
	return &Triangulator{stack: arraystack.New[stackVertex]()}
}

// Reset empties the triangulator so it can be handed to a new span (spec
// §5: closed spans return their backing storage to the pool).
func (t *Triangulator) Reset() {
	t.stack.Clear()
}

// Vertex feeds the next vertex of the monotone chain to the triangulator,
// emitting any triangles that become resolvable (spec §4.9).
func (t *Triangulator) Vertex(p tessellate.Point, id uint32, side Side, sink Sink) {
	if t.stack.Empty() {
		t.stack.Push(stackVertex{pos: p, id: id, side: side})
		return
	}

	top, _ := t.stack.Peek()

	if top.side == side {
		// Same side as the top of the stack: pop while the triangle formed
		// by the new vertex and the two most recent stack entries is
		// convex with the correct winding for this side, emitting a
		// triangle for each pop.
		cur := top
		t.stack.Pop()
		for !t.stack.Empty() {
			prev, _ := t.stack.Peek()
			if !convex(prev.pos, cur.pos, p, side) {
				break
			}
			t.stack.Pop()
			emitTriangle(sink, prev, cur, stackVertex{pos: p, id: id, side: side})
			cur = prev
		}
		t.stack.Push(cur)
		t.stack.Push(stackVertex{pos: p, id: id, side: side})
		return
	}

	// Opposite side: the new vertex sees every vertex currently on the
	// stack across the span's interior, so fan a triangle to each
	// consecutive pair, then collapse the stack down to the old top plus
	// the new vertex. Values lists the stack top first.
	values := t.stack.Values()
	for i := 0; i < len(values)-1; i++ {
		emitTriangle(sink, values[i], values[i+1], stackVertex{pos: p, id: id, side: side})
	}
	last := values[0]
	t.stack.Clear()
	t.stack.Push(last)
	t.stack.Push(stackVertex{pos: p, id: id, side: side})
}

// End closes the span at its final vertex p, treating it as being on the
// side opposite whatever the most recent vertex was (spec §4.9).
func (t *Triangulator) End(p tessellate.Point, id uint32, sink Sink) {
	top, ok := t.stack.Peek()
	side := Left
	if ok {
		side = top.side.Opposite()
	}
	t.Vertex(p, id, side, sink)
}

// convex reports whether the triangle (prev, cur, next) turns the way
// expected for side: a left-chain fan must turn counter-clockwise, a
// right-chain fan clockwise, so that every emitted triangle has the same
// (CCW, in the default Vertical orientation) winding regardless of which
// chain produced it.
func convex(prev, cur, next tessellate.Point, side Side) bool {
	cross := cur.Sub(prev).Cross(next.Sub(prev))
	if side == Left {
		return cross > 0
	}
	return cross < 0
}

// emitTriangle orders the three vertices so the winding comes out
// consistent regardless of which side produced them.
func emitTriangle(sink Sink, a, b, c stackVertex) {
	if a.side == Left {
		sink.Triangle(a.id, b.id, c.id)
		return
	}
	sink.Triangle(b.id, a.id, c.id)
}
