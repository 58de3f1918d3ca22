// Package fill implements the plane-sweep fill tessellator (spec §4.3-4.8):
// an event queue drives an active-edge scan that maintains Y-monotone spans
// and emits triangles through per-span monotone triangulators, resolving
// self-intersections as they're discovered.
package fill

import "github.com/gogpu/tessellate"

// Rule selects which winding numbers are considered "inside" the shape
// (spec GLOSSARY "Fill rule").
type Rule int

const (
	// EvenOdd treats a point as inside when winding.number is odd.
	EvenOdd Rule = iota
	// NonZero treats a point as inside when winding.number is non-zero.
	NonZero
)

func (r Rule) isIn(number int16) bool {
	if r == NonZero {
		return number != 0
	}
	return number&1 != 0
}

// Options configures a Tessellator (spec §6.3).
type Options struct {
	// Tolerance is the maximum deviation between a curve and the polyline
	// used to approximate it, in the same units as input coordinates.
	Tolerance float32
	// Rule selects EvenOdd or NonZero winding.
	Rule Rule
	// Orientation selects whether the sweep advances along Y (Vertical,
	// the default) or X (Horizontal).
	Orientation tessellate.Orientation
	// HandleIntersections enables the intersection-discovery pass of
	// §4.5. Disabling it is only correct for inputs already known to be
	// free of self-intersections; it skips §4.5 entirely as an
	// optimization.
	HandleIntersections bool
}

// DefaultOptions returns EvenOdd fill at a tolerance of 0.1, matching the
// default used across the retrieval pack's flattening code.
func DefaultOptions() Options {
	return Options{
		Tolerance:           0.1,
		Rule:                EvenOdd,
		Orientation:         tessellate.Vertical,
		HandleIntersections: true,
	}
}

// WithTolerance returns a copy of o with Tolerance set.
func (o Options) WithTolerance(t float32) Options { o.Tolerance = t; return o }

// WithRule returns a copy of o with Rule set.
func (o Options) WithRule(r Rule) Options { o.Rule = r; return o }

// WithOrientation returns a copy of o with Orientation set.
func (o Options) WithOrientation(or tessellate.Orientation) Options { o.Orientation = or; return o }

// WithIntersections returns a copy of o with HandleIntersections set.
func (o Options) WithIntersections(enabled bool) Options {
	o.HandleIntersections = enabled
	return o
}
