package main

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/gogpu/tessellate"
	"github.com/gogpu/tessellate/path"
)

// pathDoc is the on-disk JSON shape accepted by the fill/stroke
// subcommands: a list of sub-paths, each a list of segments ending at
// (x, y). A segment with hasControl2 is a cubic, one with hasControl
// (only) is a quadratic, and one with neither is a straight line. The
// first segment of a sub-path carries only its starting point and
// becomes the Begin.
type pathDoc struct {
	SubPaths []subPathDoc `json:"subpaths"`
}

type subPathDoc struct {
	Close    bool         `json:"close"`
	Segments []segmentDoc `json:"segments"`
}

type segmentDoc struct {
	X           float32 `json:"x"`
	Y           float32 `json:"y"`
	ControlX    float32 `json:"cx,omitempty"`
	ControlY    float32 `json:"cy,omitempty"`
	HasControl  bool    `json:"hasControl,omitempty"`
	Control2X   float32 `json:"cx2,omitempty"`
	Control2Y   float32 `json:"cy2,omitempty"`
	HasControl2 bool    `json:"hasControl2,omitempty"`
}

func readPath(r io.Reader) (*path.Path, error) {
	var doc pathDoc
	if err := json.NewDecoder(r).Decode(&doc); err != nil {
		return nil, fmt.Errorf("decode path JSON: %w", err)
	}
	b := path.NewBuilder()
	for i, sp := range doc.SubPaths {
		if len(sp.Segments) == 0 {
			return nil, fmt.Errorf("subpath %d has no segments", i)
		}
		first := sp.Segments[0]
		b.Begin(tessellate.Pt(first.X, first.Y))
		for _, seg := range sp.Segments[1:] {
			switch {
			case seg.HasControl2:
				b.CubicTo(
					tessellate.Pt(seg.ControlX, seg.ControlY),
					tessellate.Pt(seg.Control2X, seg.Control2Y),
					tessellate.Pt(seg.X, seg.Y),
				)
			case seg.HasControl:
				b.QuadraticTo(tessellate.Pt(seg.ControlX, seg.ControlY), tessellate.Pt(seg.X, seg.Y))
			default:
				b.LineTo(tessellate.Pt(seg.X, seg.Y))
			}
		}
		b.End(sp.Close)
	}
	return b.Path(), nil
}
