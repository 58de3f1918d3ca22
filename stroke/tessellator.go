package stroke

import (
	"github.com/gogpu/tessellate"
	"github.com/gogpu/tessellate/path"
)

// Tessellator streams a flattened path through a three-point sliding
// window and emits a triangle strip per segment, with join/cap geometry
// bridging consecutive segments (spec §4.10-§4.11).
type Tessellator struct {
	opts          Options
	variableWidth VariableWidth
}

// New returns a ready-to-use Tessellator.
func New() *Tessellator { return &Tessellator{} }

// Reset clears any previously installed VariableWidth callback.
func (t *Tessellator) Reset() {
	t.variableWidth = nil
}

// SetVariableWidth installs a per-distance width callback used by every
// later Tessellate call until Reset, overriding Options.Width (supplemented feature; see
// SPEC_FULL.md §3).
func (t *Tessellator) SetVariableWidth(w VariableWidth) {
	t.variableWidth = w
}

// Tessellate strokes p according to opts, writing the resulting
// triangles and vertices to b.
func (t *Tessellator) Tessellate(p *path.Path, opts Options, b Builder) error {
	if opts.Tolerance != opts.Tolerance || opts.Tolerance <= 0 {
		return tessellate.ErrToleranceIsNaN()
	}
	t.opts = opts

	subs, err := flattenSubpaths(p, opts.Tolerance)
	if err != nil {
		return err
	}

	b.BeginGeometry()
	for _, sp := range subs {
		if err := t.strokeSubpath(b, sp); err != nil {
			b.AbortGeometry(err)
			return err
		}
	}
	b.EndGeometry()
	return nil
}

func (t *Tessellator) widthAt(sp strokePoint) float32 {
	if t.variableWidth == nil {
		return t.opts.Width
	}
	return t.variableWidth.WidthAt(sp.dist)
}

// strokeSubpath expands one flattened polyline into triangles: a quad
// per segment, join geometry at interior vertices, and caps (or a wrap-
// around join) at the ends.
func (t *Tessellator) strokeSubpath(b Builder, sp subpath) error {
	pts := dedupe(sp.points)
	if t.variableWidth != nil {
		for _, p := range pts {
			if w := t.widthAt(p); w != w || w < 0 {
				return tessellate.ErrInvalidWidthCallback()
			}
		}
	}
	if len(pts) < 2 {
		return t.emitDegenerateSubpath(b, subpath{points: pts, closed: sp.closed}, t.opts.halfWidth())
	}

	n := len(pts)
	segments := n - 1
	if sp.closed {
		segments = n
	}

	type corner struct {
		leftID, rightID     VertexID
		leftPos, rightPos   tessellate.Point
	}
	corners := make([]corner, n)

	for i := 0; i < segments; i++ {
		p0 := pts[i]
		p1 := pts[(i+1)%n]
		tangent := p1.pos.Sub(p0.pos)
		if tangent.Length() == 0 {
			continue
		}
		hw0 := t.widthAt(p0) / 2
		hw1 := t.widthAt(p1) / 2
		normal := tangent.Perp().Normalize()

		left0 := p0.pos.Add(normal.Scale(hw0))
		right0 := p0.pos.Add(normal.Scale(-hw0))
		left1 := p1.pos.Add(normal.Scale(hw1))
		right1 := p1.pos.Add(normal.Scale(-hw1))

		left0ID, err := addStrokeVertex(b, left0, 2*hw0, p0.src)
		if err != nil {
			return err
		}
		right0ID, err := addStrokeVertex(b, right0, 2*hw0, p0.src)
		if err != nil {
			return err
		}
		left1ID, err := addStrokeVertex(b, left1, 2*hw1, p1.src)
		if err != nil {
			return err
		}
		right1ID, err := addStrokeVertex(b, right1, 2*hw1, p1.src)
		if err != nil {
			return err
		}

		b.AddTriangle(left0ID, right0ID, right1ID)
		b.AddTriangle(left0ID, right1ID, left1ID)

		corners[i] = corner{leftID: left0ID, rightID: right0ID, leftPos: left0, rightPos: right0}
		corners[(i+1)%n] = corner{leftID: left1ID, rightID: right1ID, leftPos: left1, rightPos: right1}
	}

	// Interior joins, and the wrap-around join for a closed sub-path.
	joinCount := n - 2
	startJoin := 1
	if sp.closed {
		joinCount = n
		startJoin = 0
	}
	for k := 0; k < joinCount; k++ {
		i := startJoin + k
		prev := pts[(i-1+n)%n]
		cur := pts[i%n]
		next := pts[(i+1)%n]
		prevTan := cur.pos.Sub(prev.pos)
		nextTan := next.pos.Sub(cur.pos)
		if prevTan.Length() == 0 || nextTan.Length() == 0 {
			continue
		}
		hw := t.widthAt(cur) / 2
		if err := t.emitJoin(b, cur.pos, prevTan, nextTan, hw, cur.src); err != nil {
			return err
		}
	}

	if !sp.closed {
		first, last := pts[0], pts[n-1]
		startOutward := first.pos.Sub(pts[1].pos)
		endOutward := last.pos.Sub(pts[n-2].pos)

		c0 := corners[0]
		if err := t.emitCap(b, startOutward, t.widthAt(first)/2, c0.leftID, c0.rightID, c0.leftPos, c0.rightPos, first.pos, first.src); err != nil {
			return err
		}
		cN := corners[n-1]
		if err := t.emitCap(b, endOutward, t.widthAt(last)/2, cN.leftID, cN.rightID, cN.leftPos, cN.rightPos, last.pos, last.src); err != nil {
			return err
		}
	}

	return nil
}

// dedupe drops consecutive coincident points, which would otherwise
// produce zero-length segments with undefined tangents.
func dedupe(pts []strokePoint) []strokePoint {
	if len(pts) < 2 {
		return pts
	}
	out := pts[:1]
	for _, p := range pts[1:] {
		if p.pos != out[len(out)-1].pos {
			out = append(out, p)
		}
	}
	return out
}
