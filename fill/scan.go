package fill

import (
	"sort"

	"github.com/gogpu/tessellate"
)

// activeEdgeList holds the edges currently crossing the sweep line,
// ordered left-to-right at the sweep's current Y (spec §4.1).
type activeEdgeList struct {
	edges []activeEdge
}

func (l *activeEdgeList) len() int { return len(l.edges) }

func (l *activeEdgeList) reset() { l.edges = l.edges[:0] }

// sortAt re-establishes left-to-right order at sweep position y. Edges
// sharing an X at y are tie-broken by slope so coincident-at-a-point
// edges still land in a stable, deterministic order (spec §4.1 invariant
// 1).
func (l *activeEdgeList) sortAt(y float32) {
	sort.SliceStable(l.edges, func(i, j int) bool {
		xi, xj := l.edges[i].solvedX(y), l.edges[j].solvedX(y)
		if xi != xj {
			return xi < xj
		}
		return l.edges[i].slope() < l.edges[j].slope()
	})
}

func (l *activeEdgeList) removeAt(i int) {
	l.edges = append(l.edges[:i], l.edges[i+1:]...)
}

func (l *activeEdgeList) insertAt(i int, e activeEdge) {
	l.edges = append(l.edges, activeEdge{})
	copy(l.edges[i+1:], l.edges[i:])
	l.edges[i] = e
}

// edgeClass categorizes one active edge's relationship to the point
// currently being processed during the scan of spec §4.4.
type edgeClass int

const (
	classBefore     edgeClass = iota // strictly left of the event at this Y
	classConnecting                  // ends exactly at the event point
	classAfter                       // strictly right of the event at this Y
)

func classify(e *activeEdge, p tessellate.Point) edgeClass {
	if e.to == p {
		return classConnecting
	}
	x := e.solvedX(p.Y)
	switch {
	case x < p.X:
		return classBefore
	case x > p.X:
		return classAfter
	default:
		return classConnecting
	}
}

// windingState is the running winding-number accumulator of spec §3
// ("Winding state"): `number` is the signed crossing count so far in a
// left-to-right walk of the active edge list, `isIn` is the fill rule
// applied to it, and `spanIndex` counts how many "in" gaps have been
// entered, giving the index into the live span list (spec §4.4, GLOSSARY
// "Winding number"). It starts at span_index -1 so that the first IN
// transition yields span 0.
type windingState struct {
	spanIndex int32
	number    int16
	isIn      bool
}

func newWindingState() windingState { return windingState{spanIndex: -1} }

// update folds one more edge's winding contribution into the state,
// applying rule to decide whether the gap to this edge's right is inside
// the shape and, if so, counting it as the next live span (spec §4.4).
func (w *windingState) update(rule Rule, edgeWinding int8) {
	w.number += int16(edgeWinding)
	w.isIn = rule.isIn(w.number)
	if w.isIn {
		w.spanIndex++
	}
}

// scanResult describes where an event point falls relative to the
// active edge list: the index range of connecting edges [firstActive,
// lastActive), how many new (pending) edges start at the point, and the
// winding state immediately left of and right of that connecting range
// so the modify step (fill/modify.go) knows exactly which spans to close
// and open (spec §4.4).
type scanResult struct {
	firstActive int // index of first connecting active edge, or insertion point
	lastActive  int // index one past the last connecting active edge
	numPending  int // number of new edges starting at the event point

	connecting bool // true when [firstActive, lastActive) is non-empty

	windingBeforePoint windingState // winding state just left of firstActive
	windingAfter       windingState // winding state after folding in the connecting edges' own windings

	// spansToEnd holds the span indices (strictly increasing, computed
	// before any removal) that close because they sit strictly between
	// two or more connecting edges at this vertex (spec §4.4 "the vertex
	// is a local Y-maximum... merge vertex", and the general multi-edge
	// case).
	spansToEnd []int32

	// splitEvent is true for a genuine interior split: no connecting
	// edges, and the point lies inside a live span (spec §4.4 "split
	// event": "the vertex lies inside a span with no edge above but >=2
	// edges below").
	splitEvent bool
}

// scan walks l (already sorted at p.Y) to find the contiguous run of
// edges connecting to p and accumulates the winding state (spec §3, §4.4)
// that tells fill/modify.go which spans the vertex touches.
func scan(l *activeEdgeList, rule Rule, p tessellate.Point, numPending int) scanResult {
	var res scanResult
	res.numPending = numPending

	n := len(l.edges)
	winding := newWindingState()

	i := 0
	for i < n && classify(&l.edges[i], p) == classBefore {
		winding.update(rule, l.edges[i].winding)
		i++
	}
	res.firstActive = i
	res.windingBeforePoint = winding

	first := true
	for i < n && classify(&l.edges[i], p) == classConnecting {
		if !first && winding.isIn {
			res.spansToEnd = append(res.spansToEnd, winding.spanIndex)
		}
		winding.update(rule, l.edges[i].winding)
		first = false
		i++
	}
	res.lastActive = i
	res.windingAfter = winding
	res.connecting = !first

	res.splitEvent = !res.connecting && res.windingBeforePoint.isIn

	return res
}
