// Package path provides the path construction front-end named as an
// external collaborator in the tessellator spec: a builder API accepting
// begin/line_to/quadratic_bezier_to/cubic_bezier_to/end(close) and the
// resulting event stream that fill.Tessellator and stroke.Tessellator
// consume (spec §6.1).
package path

import "github.com/gogpu/tessellate"

// EndpointID opaquely identifies an original path endpoint for attribute
// lookup (spec §3 "from_id, to_id").
type EndpointID uint32

// NoEndpointID marks a control point or synthetic vertex with no caller
// endpoint identity.
const NoEndpointID EndpointID = ^EndpointID(0)

// Event is one element of a path event stream (spec §6.1).
type Event interface {
	isEvent()
}

// Begin starts a new sub-path at At.
type Begin struct {
	At EndpointID
	Pt tessellate.Point
}

// Line draws a straight segment to To.
type Line struct {
	To   EndpointID
	Pt   tessellate.Point
}

// Quadratic draws a quadratic Bézier segment through Control to To.
type Quadratic struct {
	Control   EndpointID
	ControlPt tessellate.Point
	To        EndpointID
	Pt        tessellate.Point
}

// Cubic draws a cubic Bézier segment through Control1/Control2 to To.
type Cubic struct {
	Control1   EndpointID
	Control1Pt tessellate.Point
	Control2   EndpointID
	Control2Pt tessellate.Point
	To         EndpointID
	Pt         tessellate.Point
}

// End closes the current sub-path; if Close is true an additional edge is
// emitted back to the sub-path's starting endpoint (spec §4.2).
type End struct {
	Close bool
}

func (Begin) isEvent()     {}
func (Line) isEvent()      {}
func (Quadratic) isEvent() {}
func (Cubic) isEvent()     {}
func (End) isEvent()       {}

// Path is an immutable sequence of path events, the common input to both
// tessellators.
type Path struct {
	events []Event
}

// Events returns the path's event stream in recorded order.
func (p *Path) Events() []Event {
	return p.events
}

// FromEvents wraps an explicit event slice as a Path, preserving whatever
// EndpointIDs the caller already assigned. Used internally to transform
// a path's coordinates (e.g. for the orientation swap in fill's sweep)
// without losing the original endpoint identities a Builder would mint
// fresh ones for.
func FromEvents(events []Event) *Path {
	return &Path{events: events}
}

// idGen assigns sequential EndpointIDs as path events are appended with
// the "Pt"-only convenience methods (see Builder).
type idGen struct{ next EndpointID }

func (g *idGen) take() EndpointID {
	id := g.next
	g.next++
	return id
}
