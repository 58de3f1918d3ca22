package fill

import "github.com/gogpu/tessellate"

// recoverAfterError implements the one-shot recovery pass of spec §4.7:
// re-sort the active edge list at the current sweep position and rebuild
// the span list to match its new shape, discarding whatever partial
// triangulation state the old spans held. Tessellator.run only calls this
// once per Tessellate; a second failure after recovery is returned as-is.
func (t *Tessellator) recoverAfterError(opts Options) error {
	tessellate.Logger().Warn("fill: recovering from sweep error",
		"sweepY", t.sweepY, "activeEdges", len(t.edges.edges))

	t.edges.sortAt(t.sweepY)
	t.spans.reset()

	winding := newWindingState()
	for i := range t.edges.edges {
		winding.update(t.rule, t.edges.edges[i].winding)
	}
	n := int(winding.spanIndex) + 1
	if n < 0 {
		n = 0
	}
	for i := 0; i < n; i++ {
		t.spans.insertAt(i)
	}
	return nil
}
