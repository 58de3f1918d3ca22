// Command tessellate runs the fill or stroke tessellator over a JSON path
// document read from stdin or -input, reporting the resulting vertex and
// index counts and optionally rendering a debug PNG preview.
package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"os"

	"github.com/urfave/cli/v3"

	"github.com/gogpu/tessellate/attrib"
	"github.com/gogpu/tessellate/fill"
	"github.com/gogpu/tessellate/gpuoutput"
	"github.com/gogpu/tessellate/stroke"
)

func main() {
	cmd := &cli.Command{
		Name:  "tessellate",
		Usage: "Tessellates a 2D vector path into triangles",
		Commands: []*cli.Command{
			fillCommand(),
			strokeCommand(),
		},
	}
	if err := cmd.Run(context.Background(), os.Args); err != nil {
		log.Fatal(err)
	}
}

func commonFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{Name: "input", Usage: "path JSON file (default: stdin)"},
		&cli.FloatFlag{Name: "tolerance", Usage: "flattening tolerance", Value: 0.1},
		&cli.StringFlag{Name: "preview", Usage: "write a debug PNG preview to this path"},
	}
}

func openInput(cmd *cli.Command) (*os.File, error) {
	if in := cmd.String("input"); in != "" {
		return os.Open(in)
	}
	return os.Stdin, nil
}

func fillCommand() *cli.Command {
	return &cli.Command{
		Name:  "fill",
		Usage: "Tessellate a path for filling",
		Flags: append(commonFlags(),
			&cli.StringFlag{Name: "fill-rule", Usage: "evenodd or nonzero", Value: "nonzero"},
			&cli.BoolFlag{Name: "handle-intersections", Value: true},
		),
		Action: runFill,
	}
}

func strokeCommand() *cli.Command {
	return &cli.Command{
		Name:  "stroke",
		Usage: "Tessellate a path for stroking",
		Flags: append(commonFlags(),
			&cli.FloatFlag{Name: "width", Value: 1},
			&cli.StringFlag{Name: "cap", Usage: "butt, square, or round", Value: "butt"},
			&cli.StringFlag{Name: "join", Usage: "miter, miterclip, bevel, or round", Value: "miter"},
			&cli.FloatFlag{Name: "miter-limit", Value: 4},
		),
		Action: runStroke,
	}
}

func parseFillRule(s string) (fill.Rule, error) {
	switch s {
	case "evenodd":
		return fill.EvenOdd, nil
	case "nonzero":
		return fill.NonZero, nil
	default:
		return 0, fmt.Errorf("unknown fill-rule %q", s)
	}
}

func parseCap(s string) (stroke.Cap, error) {
	switch s {
	case "butt":
		return stroke.CapButt, nil
	case "square":
		return stroke.CapSquare, nil
	case "round":
		return stroke.CapRound, nil
	default:
		return 0, fmt.Errorf("unknown cap %q", s)
	}
}

func parseJoin(s string) (stroke.Join, error) {
	switch s {
	case "miter":
		return stroke.JoinMiter, nil
	case "miterclip":
		return stroke.JoinMiterClip, nil
	case "bevel":
		return stroke.JoinBevel, nil
	case "round":
		return stroke.JoinRound, nil
	default:
		return 0, fmt.Errorf("unknown join %q", s)
	}
}

func runFill(_ context.Context, cmd *cli.Command) error {
	f, err := openInput(cmd)
	if err != nil {
		return err
	}
	defer f.Close()
	p, err := readPath(f)
	if err != nil {
		return err
	}

	rule, err := parseFillRule(cmd.String("fill-rule"))
	if err != nil {
		return err
	}
	opts := fill.DefaultOptions().
		WithTolerance(float32(cmd.Float("tolerance"))).
		WithRule(rule).
		WithIntersections(cmd.Bool("handle-intersections"))

	b := gpuoutput.NewFillMeshBuilder(attrib.Set{})
	if err := fill.New().Tessellate(p, opts, b); err != nil {
		return fmt.Errorf("fill: %w", err)
	}
	mesh := b.Mesh()
	return reportAndPreview(cmd, mesh)
}

func runStroke(_ context.Context, cmd *cli.Command) error {
	f, err := openInput(cmd)
	if err != nil {
		return err
	}
	defer f.Close()
	p, err := readPath(f)
	if err != nil {
		return err
	}

	capStyle, err := parseCap(cmd.String("cap"))
	if err != nil {
		return err
	}
	join, err := parseJoin(cmd.String("join"))
	if err != nil {
		return err
	}
	opts := stroke.DefaultOptions().
		WithWidth(float32(cmd.Float("width"))).
		WithTolerance(float32(cmd.Float("tolerance"))).
		WithCap(capStyle).
		WithJoin(join).
		WithMiterLimit(float32(cmd.Float("miter-limit")))

	b := gpuoutput.NewStrokeMeshBuilder(attrib.Set{})
	if err := stroke.New().Tessellate(p, opts, b); err != nil {
		return fmt.Errorf("stroke: %w", err)
	}
	mesh := b.Mesh()
	return reportAndPreview(cmd, mesh)
}

func reportAndPreview(cmd *cli.Command, mesh gpuoutput.Mesh) error {
	enc := json.NewEncoder(os.Stdout)
	if err := enc.Encode(mesh.Count); err != nil {
		return err
	}
	if preview := cmd.String("preview"); preview != "" {
		if err := writePreview(preview, mesh); err != nil {
			return fmt.Errorf("preview: %w", err)
		}
	}
	return nil
}
