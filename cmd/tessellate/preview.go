package main

import (
	"encoding/binary"
	"image"
	"image/color"
	"image/png"
	"math"
	"os"

	"golang.org/x/image/vector"

	"github.com/gogpu/tessellate/gpuoutput"
)

const previewSize = 512

func decodeVertexXY(mesh gpuoutput.Mesh, i int) (float32, float32) {
	stride := int(mesh.Layout.ArrayStride)
	off := i * stride
	x := math.Float32frombits(binary.LittleEndian.Uint32(mesh.Vertices[off:]))
	y := math.Float32frombits(binary.LittleEndian.Uint32(mesh.Vertices[off+4:]))
	return x, y
}

func decodeIndex(mesh gpuoutput.Mesh, i int) uint32 {
	return binary.LittleEndian.Uint32(mesh.Indices[i*4:])
}

// writePreview rasterizes every triangle in mesh as a filled outline onto
// a fixed-size canvas and writes it to path as a PNG, for visually
// sanity-checking the -preview flag's output.
func writePreview(path string, mesh gpuoutput.Mesh) error {
	minX, minY, maxX, maxY := boundsOf(mesh)
	w, h := maxX-minX, maxY-minY
	if w <= 0 || h <= 0 {
		w, h = 1, 1
	}
	scale := float32(previewSize-2) / max32(w, h)

	ras := vector.NewRasterizer(previewSize, previewSize)
	triCount := len(mesh.Indices) / 4 / 3
	for t := 0; t < triCount; t++ {
		a := decodeIndex(mesh, t*3)
		b := decodeIndex(mesh, t*3+1)
		c := decodeIndex(mesh, t*3+2)
		ax, ay := project(mesh, a, minX, minY, scale)
		bx, by := project(mesh, b, minX, minY, scale)
		cx, cy := project(mesh, c, minX, minY, scale)
		ras.MoveTo(ax, ay)
		ras.LineTo(bx, by)
		ras.LineTo(cx, cy)
		ras.ClosePath()
	}

	img := image.NewRGBA(image.Rect(0, 0, previewSize, previewSize))
	ras.Draw(img, img.Bounds(), image.NewUniform(color.RGBA{R: 80, G: 160, B: 255, A: 255}), image.Point{})

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return png.Encode(f, img)
}

func project(mesh gpuoutput.Mesh, idx uint32, minX, minY, scale float32) (float32, float32) {
	x, y := decodeVertexXY(mesh, int(idx))
	return (x - minX) * scale, (y - minY) * scale
}

func boundsOf(mesh gpuoutput.Mesh) (minX, minY, maxX, maxY float32) {
	stride := int(mesh.Layout.ArrayStride)
	n := len(mesh.Vertices) / stride
	if n == 0 {
		return 0, 0, 0, 0
	}
	minX, minY = decodeVertexXY(mesh, 0)
	maxX, maxY = minX, minY
	for i := 1; i < n; i++ {
		x, y := decodeVertexXY(mesh, i)
		if x < minX {
			minX = x
		}
		if y < minY {
			minY = y
		}
		if x > maxX {
			maxX = x
		}
		if y > maxY {
			maxY = y
		}
	}
	return
}

func max32(a, b float32) float32 {
	if a > b {
		return a
	}
	return b
}
