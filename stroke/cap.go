package stroke

import (
	"math"

	"github.com/gogpu/tessellate"
)

// emitCap draws the shape at an open sub-path's start or end: p is the
// path endpoint, outward points away from the sub-path body, and
// leftPos/rightPos/leftID/rightID are the endpoint's already-emitted
// offset corners (spec §4.11).
func (t *Tessellator) emitCap(b Builder, outward tessellate.Vector, halfWidth float32, leftID, rightID VertexID, leftPos, rightPos tessellate.Point, center tessellate.Point, src Source) error {
	switch t.opts.Cap {
	case CapButt:
		return nil
	case CapSquare:
		offset := outward.Normalize().Scale(halfWidth)
		farLeft := leftPos.Add(offset)
		farRight := rightPos.Add(offset)
		farLeftID, err := addStrokeVertex(b, farLeft, 2*halfWidth, src)
		if err != nil {
			return err
		}
		farRightID, err := addStrokeVertex(b, farRight, 2*halfWidth, src)
		if err != nil {
			return err
		}
		b.AddTriangle(leftID, farLeftID, farRightID)
		b.AddTriangle(leftID, farRightID, rightID)
		return nil
	case CapRound:
		// The cap arc turns by increasing angle from its first corner, so
		// start from whichever corner makes that half-turn face outward.
		if leftPos.Sub(center).Perp().Dot(outward) < 0 {
			return t.emitRoundArc(b, center, rightPos, leftPos, halfWidth, rightID, leftID, src, true)
		}
		return t.emitRoundArc(b, center, leftPos, rightPos, halfWidth, leftID, rightID, src, true)
	}
	return nil
}

// emitRoundArc fans triangles from center out across the arc running
// from "from" to "to" at radius. When isCap is true the arc is always a
// half-turn by increasing angle from "from" (emitCap orders the corners
// so it lies outward, away from the path body); otherwise it takes the
// short way (the convex side of a join).
func (t *Tessellator) emitRoundArc(b Builder, center, from, to tessellate.Point, radius float32, fromID, toID VertexID, src Source, isCap bool) error {
	centerID, err := addStrokeVertex(b, center, 2*radius, src)
	if err != nil {
		return err
	}

	startAngle := float64(from.Sub(center).Angle())
	endAngle := float64(to.Sub(center).Angle())
	sweep := endAngle - startAngle
	for sweep <= 0 {
		sweep += 2 * math.Pi
	}
	if isCap {
		// a cap always sweeps the half-turn away from the path body.
		sweep = math.Pi
	} else if sweep > math.Pi {
		sweep -= 2 * math.Pi
	}

	steps := arcSteps(radius, math.Abs(sweep), t.opts.Tolerance)

	prevID := fromID
	for i := 1; i < steps; i++ {
		a := startAngle + sweep*float64(i)/float64(steps)
		p := tessellate.Pt(
			center.X+radius*float32(math.Cos(a)),
			center.Y+radius*float32(math.Sin(a)),
		)
		pid, err := addStrokeVertex(b, p, 2*radius, src)
		if err != nil {
			return err
		}
		b.AddTriangle(centerID, prevID, pid)
		prevID = pid
	}
	b.AddTriangle(centerID, prevID, toID)
	return nil
}

// arcSteps picks a subdivision count for an arc of the given radius and
// total angle (radians) so each chord deviates from the true arc by at
// most tolerance.
func arcSteps(radius float32, angle float64, tolerance float32) int {
	if radius <= 0 || tolerance <= 0 || angle <= 0 {
		return 1
	}
	r := float64(radius)
	ratio := 1 - float64(tolerance)/r
	if ratio < -1 {
		return 8
	}
	maxStepAngle := 2 * math.Acos(ratio)
	if maxStepAngle <= 0 || math.IsNaN(maxStepAngle) {
		return 8
	}
	n := int(math.Ceil(angle / maxStepAngle))
	if n < 1 {
		n = 1
	}
	if n > 256 {
		n = 256
	}
	return n
}
