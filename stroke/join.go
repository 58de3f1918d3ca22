package stroke

import "github.com/gogpu/tessellate"

// emitJoin draws the wedge of triangles bridging segment (prevTan)
// arriving at p to segment (nextTan) leaving p, on the convex (outer)
// side of the turn; the concave side needs no extra geometry since the
// two segments' quads already overlap there (spec §4.11).
func (t *Tessellator) emitJoin(b Builder, p tessellate.Point, prevTan, nextTan tessellate.Vector, halfWidth float32, src Source) error {
	cross := prevTan.Cross(nextTan)
	dot := prevTan.Dot(nextTan)
	if cross == 0 && dot >= 0 {
		return nil // collinear, no turn to bridge
	}

	prevN := prevTan.Perp().Normalize().Scale(halfWidth)
	nextN := nextTan.Perp().Normalize().Scale(halfWidth)

	var outerPrev, outerNext tessellate.Point
	if cross < 0 {
		outerPrev = p.Add(prevN)
		outerNext = p.Add(nextN)
	} else {
		outerPrev = p.Add(prevN.Neg())
		outerNext = p.Add(nextN.Neg())
	}

	centerID, err := addStrokeVertex(b, p, 2*halfWidth, src)
	if err != nil {
		return err
	}
	outerPrevID, err := addStrokeVertex(b, outerPrev, 2*halfWidth, src)
	if err != nil {
		return err
	}
	outerNextID, err := addStrokeVertex(b, outerNext, 2*halfWidth, src)
	if err != nil {
		return err
	}

	switch t.opts.Join {
	case JoinBevel:
		b.AddTriangle(centerID, outerPrevID, outerNextID)
		return nil

	case JoinRound:
		return t.emitRoundArc(b, p, outerPrev, outerNext, halfWidth, outerPrevID, outerNextID, src, false)

	default: // JoinMiter, JoinMiterClip
		tip, ok := miterTip(p, outerPrev, prevTan, outerNext, nextTan, halfWidth, t.opts.MiterLimit)
		if ok {
			tipID, err := addStrokeVertex(b, tip, 2*halfWidth, src)
			if err != nil {
				return err
			}
			b.AddTriangle(centerID, outerPrevID, tipID)
			b.AddTriangle(centerID, tipID, outerNextID)
			return nil
		}
		if t.opts.Join == JoinMiterClip {
			clipA, clipB, clipOK := miterClip(p, outerPrev, prevTan, outerNext, nextTan, halfWidth, t.opts.MiterLimit)
			if clipOK {
				clipAID, err := addStrokeVertex(b, clipA, 2*halfWidth, src)
				if err != nil {
					return err
				}
				clipBID, err := addStrokeVertex(b, clipB, 2*halfWidth, src)
				if err != nil {
					return err
				}
				b.AddTriangle(centerID, outerPrevID, clipAID)
				b.AddTriangle(centerID, clipAID, clipBID)
				b.AddTriangle(centerID, clipBID, outerNextID)
				return nil
			}
		}
		b.AddTriangle(centerID, outerPrevID, outerNextID)
		return nil
	}
}

// lineIntersect finds the intersection of the infinite line through p1
// along d1 and the infinite line through p2 along d2.
func lineIntersect(p1 tessellate.Point, d1 tessellate.Vector, p2 tessellate.Point, d2 tessellate.Vector) (tessellate.Point, bool) {
	denom := d1.Cross(d2)
	if denom == 0 {
		return tessellate.Point{}, false
	}
	diff := p2.Sub(p1)
	t := diff.Cross(d2) / denom
	return p1.Add(d1.Scale(t)), true
}

// miterTip returns the point where the two outer offset lines meet, or
// ok=false when the turn is too sharp for miterLimit (spec §4.11).
func miterTip(p, outerPrev tessellate.Point, prevTan tessellate.Vector, outerNext tessellate.Point, nextTan tessellate.Vector, halfWidth, miterLimit float32) (tessellate.Point, bool) {
	tip, ok := lineIntersect(outerPrev, prevTan, outerNext, nextTan)
	if !ok {
		return tessellate.Point{}, false
	}
	miterLen := tip.Sub(p).Length()
	if miterLen > halfWidth*miterLimit {
		return tessellate.Point{}, false
	}
	return tip, true
}

// miterClip returns the two points where the miter tip would be clipped
// at the limit, bridging outerPrev/outerNext with a short trapezoid edge
// instead of falling all the way back to a bevel (spec SPEC_FULL §0,
// JoinMiterClip).
func miterClip(p, outerPrev tessellate.Point, prevTan tessellate.Vector, outerNext tessellate.Point, nextTan tessellate.Vector, halfWidth, miterLimit float32) (tessellate.Point, tessellate.Point, bool) {
	tip, ok := lineIntersect(outerPrev, prevTan, outerNext, nextTan)
	if !ok {
		return tessellate.Point{}, tessellate.Point{}, false
	}
	limit := halfWidth * miterLimit
	dir := tip.Sub(p)
	length := dir.Length()
	if length == 0 {
		return tessellate.Point{}, tessellate.Point{}, false
	}
	clipCenter := p.Add(dir.Normalize().Scale(limit))
	clipDir := dir.Normalize().Perp()
	clipA, okA := lineIntersect(outerPrev, prevTan, clipCenter, clipDir)
	clipB, okB := lineIntersect(outerNext, nextTan, clipCenter, clipDir)
	if !okA || !okB {
		return tessellate.Point{}, tessellate.Point{}, false
	}
	return clipA, clipB, true
}
