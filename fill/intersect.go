package fill

import "github.com/gogpu/tessellate"

// intersection is a point where two active edges cross, computed in
// float64 to limit cancellation error (spec §9, "Point64 reserved for
// intersection math").
type intersection struct {
	pos        tessellate.Point
	tOnFirst   float32
	tOnSecond  float32
}

// boundsOverlap is the fast rejection test of the supplemented
// bounding-box pruning pass: two edges can only intersect if their axis-
// aligned bounding boxes overlap.
func boundsOverlap(a, b *activeEdge) bool {
	aMinY, aMaxY := a.from.Y, a.to.Y
	if aMinY > aMaxY {
		aMinY, aMaxY = aMaxY, aMinY
	}
	bMinY, bMaxY := b.from.Y, b.to.Y
	if bMinY > bMaxY {
		bMinY, bMaxY = bMaxY, bMinY
	}
	if a.maxX < b.minX || b.maxX < a.minX {
		return false
	}
	if aMaxY < bMinY || bMaxY < aMinY {
		return false
	}
	return true
}

// segmentIntersection finds the crossing point of two line segments in
// float64, or reports ok=false when they're parallel or don't cross
// within both segments' parameter ranges (0,1).
func segmentIntersection(a0, a1, b0, b1 tessellate.Point64) (pos tessellate.Point64, tA, tB float64, ok bool) {
	dax := a1.X - a0.X
	day := a1.Y - a0.Y
	dbx := b1.X - b0.X
	dby := b1.Y - b0.Y

	denom := dax*dby - day*dbx
	if denom == 0 {
		return tessellate.Point64{}, 0, 0, false
	}

	ex := b0.X - a0.X
	ey := b0.Y - a0.Y

	t := (ex*dby - ey*dbx) / denom
	u := (ex*day - ey*dax) / denom

	const epsilon = 1e-6
	if t < epsilon || t > 1-epsilon || u < epsilon || u > 1-epsilon {
		return tessellate.Point64{}, 0, 0, false
	}

	pos = tessellate.Point64{X: a0.X + t*dax, Y: a0.Y + t*day}
	return pos, t, u, true
}

// findIntersection tests a against b for a crossing strictly inside the
// sweep region still ahead (below the current sweep Y for both edges),
// using the bounding-box pruning fast path before falling to the
// float64 segment test.
func findIntersection(a, b *activeEdge, sweepY float32) (intersection, bool) {
	if !boundsOverlap(a, b) {
		return intersection{}, false
	}

	a0 := a.from.ToPoint64()
	a1 := a.to.ToPoint64()
	b0 := b.from.ToPoint64()
	b1 := b.to.ToPoint64()

	pos, tA, tB, ok := segmentIntersection(a0, a1, b0, b1)
	if !ok {
		return intersection{}, false
	}
	p32 := pos.ToPoint()
	if p32.Y <= sweepY {
		// Already behind the sweep line; nothing left to do about it.
		return intersection{}, false
	}

	return intersection{pos: p32, tOnFirst: float32(tA), tOnSecond: float32(tB)}, true
}

// topmostIntersection scans all pairs among the edges currently active
// and returns the single
// topmost (nearest to the sweep line) intersection found, per the spec's
// "one intersection resolved per pass, then re-scan" policy (spec §4.5).
func topmostIntersection(edges []activeEdge, sweepY float32) (i, j int, hit intersection, found bool) {
	best := intersection{}
	bestI, bestJ := -1, -1
	for a := 0; a < len(edges); a++ {
		for b := a + 1; b < len(edges); b++ {
			hit, ok := findIntersection(&edges[a], &edges[b], sweepY)
			if !ok {
				continue
			}
			if bestI == -1 || tessellate.Before(hit.pos, best.pos) {
				best = hit
				bestI, bestJ = a, b
			}
		}
	}
	if bestI == -1 {
		return 0, 0, intersection{}, false
	}
	return bestI, bestJ, best, true
}

// splitAt splits an active edge at an intersection point, returning the
// portion still ahead of the sweep (the edge continues from pos to its
// original `to`) and the attribute parameter range to carry forward.
func splitAt(e *activeEdge, pos tessellate.Point, t float32) activeEdge {
	tSplit := e.tStart + (e.tEnd-e.tStart)*t
	out := newActiveEdge(pos, e.to, e.winding, noEndpointID, e.toID, e.srcEdge, tSplit, e.tEnd)
	return out
}
