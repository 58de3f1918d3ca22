package stroke

import "github.com/gogpu/tessellate"

// emitDegenerateSubpath draws a sub-path that flattened to a single
// point (or whose points are all coincident): a true stroke tessellator
// would otherwise emit nothing, but most 2D stroke conventions still draw
// the configured cap at that point, so this lays down the same cap
// geometry used at a normal sub-path's ends, with an arbitrary outward
// tangent since there is no direction to take one from (SPEC_FULL.md
// §3). This is the only degenerate-stroke handling: a rectangle narrower
// than the stroke width goes through the normal per-segment path, with no
// thin-rectangle substitution.
func (t *Tessellator) emitDegenerateSubpath(b Builder, sp subpath, halfWidth float32) error {
	if len(sp.points) == 0 {
		return nil
	}
	p := sp.points[0]

	switch t.opts.Cap {
	case CapButt:
		return nil // zero-area stroke: nothing to draw
	case CapRound:
		leftPos := p.pos.Add(tessellate.Vec(0, -halfWidth))
		rightPos := p.pos.Add(tessellate.Vec(0, halfWidth))
		leftID, err := addStrokeVertex(b, leftPos, 2*halfWidth, p.src)
		if err != nil {
			return err
		}
		rightID, err := addStrokeVertex(b, rightPos, 2*halfWidth, p.src)
		if err != nil {
			return err
		}
		if err := t.emitRoundArc(b, p.pos, leftPos, rightPos, halfWidth, leftID, rightID, p.src, true); err != nil {
			return err
		}
		return t.emitRoundArc(b, p.pos, rightPos, leftPos, halfWidth, rightID, leftID, p.src, true)
	case CapSquare:
		// a thin square around the point, side = stroke width.
		tl := p.pos.Add(tessellate.Vec(-halfWidth, -halfWidth))
		tr := p.pos.Add(tessellate.Vec(halfWidth, -halfWidth))
		bl := p.pos.Add(tessellate.Vec(-halfWidth, halfWidth))
		br := p.pos.Add(tessellate.Vec(halfWidth, halfWidth))
		tlID, err := addStrokeVertex(b, tl, 2*halfWidth, p.src)
		if err != nil {
			return err
		}
		trID, err := addStrokeVertex(b, tr, 2*halfWidth, p.src)
		if err != nil {
			return err
		}
		blID, err := addStrokeVertex(b, bl, 2*halfWidth, p.src)
		if err != nil {
			return err
		}
		brID, err := addStrokeVertex(b, br, 2*halfWidth, p.src)
		if err != nil {
			return err
		}
		b.AddTriangle(tlID, trID, brID)
		b.AddTriangle(tlID, brID, blID)
		return nil
	}
	return nil
}
