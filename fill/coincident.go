package fill

import (
	"sort"

	"github.com/gogpu/tessellate"
)

// mergeCoincident collapses pending edges that share both endpoints and
// direction (duplicate or overlapping edges produced by a path that
// retraces itself) into one edge per distinct (to, slope) pair, summing
// their winding contributions. An edge whose summed winding cancels to
// zero carries no boundary and is dropped outright (spec §4.8).
func mergeCoincident(edges []activeEdge) []activeEdge {
	if len(edges) < 2 {
		return edges
	}
	out := edges[:0]
outer:
	for _, e := range edges {
		for i := range out {
			if tessellate.Near(out[i].to, e.to) && out[i].invSlopeOrSlope() == e.invSlopeOrSlope() {
				out[i].winding += e.winding
				continue outer
			}
		}
		out = append(out, e)
	}

	kept := out[:0]
	for _, e := range out {
		if e.winding != 0 {
			kept = append(kept, e)
		}
	}
	return kept
}

// sortPendingEdges orders a vertex's newly-starting edges left-to-right by
// slope (spec §4.6 "sort pending edges by slope"), the order
// applyPendingOpen and spliceEdges assume when walking in/out transitions
// and splicing the run into the active edge list.
func sortPendingEdges(edges []activeEdge) {
	sort.SliceStable(edges, func(i, j int) bool {
		return edges[i].slope() < edges[j].slope()
	})
}
