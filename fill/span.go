package fill

import (
	"github.com/gogpu/tessellate"
	"github.com/gogpu/tessellate/internal/monotone"
)

// span tracks one Y-monotone region between two adjacent active edges,
// together with the in-progress monotone triangulation of the fill
// vertices swept along its boundary so far (spec §4.3 "spans", §4.9).
type span struct {
	tess *monotone.Triangulator
}

func newSpan() *span {
	return &span{tess: monotone.New()}
}

func (s *span) reset() {
	s.tess.Reset()
}

func (s *span) vertex(p tessellate.Point, id uint32, side Side, sink monotone.Sink) {
	s.tess.Vertex(p, id, side, sink)
}

func (s *span) end(p tessellate.Point, id uint32, sink monotone.Sink) {
	s.tess.End(p, id, sink)
}

// spanPool lets a Tessellator reuse *span allocations across the many
// spans opened and closed within one sweep, and across repeated calls to
// Tessellate (spec §5 "resource reuse").
type spanPool struct {
	free []*span
}

func (p *spanPool) get() *span {
	if n := len(p.free); n > 0 {
		s := p.free[n-1]
		p.free = p.free[:n-1]
		s.reset()
		return s
	}
	return newSpan()
}

func (p *spanPool) put(s *span) {
	p.free = append(p.free, s)
}

// spans is the ordered list of live spans, left to right: spans.list[i]
// is the i-th gap between adjacent active edges that lies inside the
// shape under the fill rule.
type spans struct {
	list []*span
	pool spanPool
}

func (ss *spans) reset() {
	for _, s := range ss.list {
		ss.pool.put(s)
	}
	ss.list = ss.list[:0]
}

func (ss *spans) len() int { return len(ss.list) }

// insertAt opens a new span at index i, shifting existing spans right.
func (ss *spans) insertAt(i int) {
	s := ss.pool.get()
	ss.list = append(ss.list, nil)
	copy(ss.list[i+1:], ss.list[i:])
	ss.list[i] = s
}

// removeAt closes the span at index i, returning its triangulator to the
// pool and shifting subsequent spans left.
func (ss *spans) removeAt(i int) {
	s := ss.list[i]
	ss.pool.put(s)
	ss.list = append(ss.list[:i], ss.list[i+1:]...)
}
