package tessellate

// QuadraticBezier is a quadratic Bézier curve from From to To via Control.
type QuadraticBezier struct {
	From, Control, To Point
}

// CubicBezier is a cubic Bézier curve from From to To via Control1/Control2.
type CubicBezier struct {
	From, Control1, Control2, To Point
}

// FlatSegment is one sub-segment produced by flattening, carrying the
// parameter range it covers within the originating curve so that vertices
// introduced by flattening (or later intersection, see fill/intersect.go)
// can interpolate attributes (spec §3 "range", §4.2).
type FlatSegment struct {
	To      Point
	TFrom   float32
	TTo     float32
}

// ForEachFlattenedWithT recursively subdivides q using De Casteljau's
// algorithm until the control point's deviation from the chord is within
// tolerance, then calls emit once per resulting line segment in order.
// This is the "for_each_flattened_with_t" collaborator named in spec §1.
func (q QuadraticBezier) ForEachFlattenedWithT(tolerance float32, emit func(FlatSegment)) {
	flattenQuad(q.From, q.Control, q.To, 0, 1, tolerance, emit)
}

func flattenQuad(p0, p1, p2 Point, t0, t1, tolerance float32, emit func(FlatSegment)) {
	if quadIsFlat(p0, p1, p2, tolerance) {
		emit(FlatSegment{To: p2, TFrom: t0, TTo: t1})
		return
	}
	tm := (t0 + t1) / 2

	q0 := p0.Lerp(p1, 0.5)
	q1 := p1.Lerp(p2, 0.5)
	mid := q0.Lerp(q1, 0.5)

	flattenQuad(p0, q0, mid, t0, tm, tolerance, emit)
	flattenQuad(mid, q1, p2, tm, t1, tolerance, emit)
}

// quadIsFlat tests the deviation of the control point's projection from the
// true curve against tolerance (matches the de Casteljau midpoint test used
// throughout the retrieval pack, e.g. internal gogpu/gg fan tessellator).
func quadIsFlat(p0, p1, p2 Point, tolerance float32) bool {
	midX := 0.25*p0.X + 0.5*p1.X + 0.25*p2.X
	midY := 0.25*p0.Y + 0.5*p1.Y + 0.25*p2.Y
	chordMidX := 0.5 * (p0.X + p2.X)
	chordMidY := 0.5 * (p0.Y + p2.Y)

	dx := midX - chordMidX
	dy := midY - chordMidY
	return dx*dx+dy*dy <= tolerance*tolerance
}

// ForEachFlattenedWithT flattens c, emitting one FlatSegment per resulting
// line segment.
func (c CubicBezier) ForEachFlattenedWithT(tolerance float32, emit func(FlatSegment)) {
	flattenCubic(c.From, c.Control1, c.Control2, c.To, 0, 1, tolerance, emit)
}

func flattenCubic(p0, p1, p2, p3 Point, t0, t1, tolerance float32, emit func(FlatSegment)) {
	if cubicIsFlat(p0, p1, p2, p3, tolerance) {
		emit(FlatSegment{To: p3, TFrom: t0, TTo: t1})
		return
	}
	tm := (t0 + t1) / 2

	ab1 := p0.Lerp(p1, 0.5)
	ab2 := p1.Lerp(p2, 0.5)
	ab3 := p2.Lerp(p3, 0.5)
	bc1 := ab1.Lerp(ab2, 0.5)
	bc2 := ab2.Lerp(ab3, 0.5)
	mid := bc1.Lerp(bc2, 0.5)

	flattenCubic(p0, ab1, bc1, mid, t0, tm, tolerance, emit)
	flattenCubic(mid, bc2, ab3, p3, tm, t1, tolerance, emit)
}

// cubicIsFlat uses the standard control-polygon deviation bound for cubics:
// both control points must be within tolerance of the chord, scaled by the
// factor of 16 in the cubic approximation error bound.
func cubicIsFlat(p0, p1, p2, p3 Point, tolerance float32) bool {
	ux := 3*p1.X - 2*p0.X - p3.X
	uy := 3*p1.Y - 2*p0.Y - p3.Y
	vx := 3*p2.X - p0.X - 2*p3.X
	vy := 3*p2.Y - p0.Y - 2*p3.Y

	du := ux*ux + uy*uy
	dv := vx*vx + vy*vy
	d := du
	if dv > d {
		d = dv
	}
	return d <= 16*tolerance*tolerance
}

// Split divides q at parameter t into two quadratic Béziers covering
// [0,t] and [t,1] of the original, using De Casteljau's algorithm.
func (q QuadraticBezier) Split(t float32) (QuadraticBezier, QuadraticBezier) {
	ab := q.From.Lerp(q.Control, t)
	bc := q.Control.Lerp(q.To, t)
	mid := ab.Lerp(bc, t)
	return QuadraticBezier{From: q.From, Control: ab, To: mid},
		QuadraticBezier{From: mid, Control: bc, To: q.To}
}

// Split divides c at parameter t into two cubic Béziers covering [0,t] and
// [t,1] of the original.
func (c CubicBezier) Split(t float32) (CubicBezier, CubicBezier) {
	ab1 := c.From.Lerp(c.Control1, t)
	ab2 := c.Control1.Lerp(c.Control2, t)
	ab3 := c.Control2.Lerp(c.To, t)
	bc1 := ab1.Lerp(ab2, t)
	bc2 := ab2.Lerp(ab3, t)
	mid := bc1.Lerp(bc2, t)
	return CubicBezier{From: c.From, Control1: ab1, Control2: bc1, To: mid},
		CubicBezier{From: mid, Control1: bc2, Control2: ab3, To: c.To}
}
