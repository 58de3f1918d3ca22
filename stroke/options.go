// Package stroke implements the streaming stroke tessellator: it walks a
// flattened path through a three-point sliding window and emits a
// triangle strip per segment, with dedicated geometry at joins and caps
// (spec §4.10-§4.11).
package stroke

// Cap selects the shape drawn at an open sub-path's two ends.
type Cap int

const (
	// CapButt ends the stroke flush with the path's endpoint.
	CapButt Cap = iota
	// CapSquare extends the stroke half a width past the endpoint.
	CapSquare
	// CapRound draws a half-disc past the endpoint.
	CapRound
)

// Join selects the shape drawn at an interior vertex where two segments
// meet.
type Join int

const (
	// JoinMiter extends both segment edges to their intersection, falling
	// back to a bevel when MiterLimit is exceeded.
	JoinMiter Join = iota
	// JoinMiterClip behaves like JoinMiter but clips the miter tip at the
	// limit instead of falling all the way back to a bevel.
	JoinMiterClip
	// JoinBevel connects the two segment edges directly.
	JoinBevel
	// JoinRound draws a circular arc between the two segment edges.
	JoinRound
)

// Options configures a Tessellator (spec §6.3).
type Options struct {
	// Width is the full stroke width; each side extends Width/2 from the
	// path's centerline.
	Width float32
	// Tolerance is the maximum deviation between a curve (or a round join
	// / round cap arc) and its polyline approximation.
	Tolerance float32
	Cap       Cap
	Join      Join
	// MiterLimit bounds how far a miter join's tip may extend, as a
	// multiple of half the stroke width, before falling back per Join's
	// rule (spec §4.11).
	MiterLimit float32
}

// DefaultOptions returns a 1-unit-wide butt-capped miter-joined stroke at
// a tolerance of 0.1 and the conventional miter limit of 4.
func DefaultOptions() Options {
	return Options{
		Width:      1,
		Tolerance:  0.1,
		Cap:        CapButt,
		Join:       JoinMiter,
		MiterLimit: 4,
	}
}

func (o Options) WithWidth(w float32) Options      { o.Width = w; return o }
func (o Options) WithTolerance(t float32) Options   { o.Tolerance = t; return o }
func (o Options) WithCap(c Cap) Options             { o.Cap = c; return o }
func (o Options) WithJoin(j Join) Options           { o.Join = j; return o }
func (o Options) WithMiterLimit(l float32) Options  { o.MiterLimit = l; return o }

// halfWidth returns half of Width, the distance each offset edge sits
// from the centerline.
func (o Options) halfWidth() float32 { return o.Width / 2 }
