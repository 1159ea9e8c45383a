package gizmo

import (
	"image"
	"math"

	"github.com/golang/geo/r3"

	"github.com/ihmcroboticsdocs/euclid-core/geometry"
)

type axisColor struct {
	r, g, b uint8
}

// World axes drawn by the triad, colored in the usual XYZ = RGB scheme.
var axes = []struct {
	dir   r3.Vector
	color axisColor
}{
	{r3.Vector{X: 1}, axisColor{230, 60, 60}},
	{r3.Vector{Y: 1}, axisColor{60, 200, 60}},
	{r3.Vector{Z: 1}, axisColor{70, 110, 240}},
}

// RenderTriad draws the three body axes of the orientation q into an NRGBA
// image of renderSize*supersample pixels per side. The camera looks down +Y:
// world X maps to screen right, world Z to screen up, and Y is depth toward
// the viewer. bg may be nil; when present it must already match the
// supersampled size.
func RenderTriad(q *geometry.Quaternion, size, supersample int, bg *image.NRGBA) *image.NRGBA {
	renderSize := size * supersample
	fb := NewFrameBuffer(renderSize, renderSize)
	fb.Fill(bg)

	margin := 16 * supersample
	scale := float64(renderSize)/2 - float64(margin)
	cx := float64(renderSize) / 2
	cy := float64(renderSize) / 2

	thickness := float64(supersample) * 2.5

	for _, ax := range axes {
		tip := q.TransformTuple(ax.dir)
		drawSegment(fb, r3.Vector{}, tip, cx, cy, scale, thickness, ax.color)
	}

	// Origin knob on top of the axis roots.
	drawDisc(fb, cx, cy, math.Inf(1), thickness*1.4, axisColor{235, 235, 235})

	return fb.ToImage()
}

// drawSegment rasterizes a 3D segment by stamping depth-tested discs along
// its projection. Step size stays under half the line thickness so the
// stamps overlap into a solid stroke.
func drawSegment(fb *FrameBuffer, from, to r3.Vector, cx, cy, scale, thickness float64, c axisColor) {
	x0, y0 := cx+scale*from.X, cy-scale*from.Z
	x1, y1 := cx+scale*to.X, cy-scale*to.Z

	dx, dy := x1-x0, y1-y0
	length := math.Hypot(dx, dy)
	steps := int(length/(thickness*0.4)) + 1

	for i := 0; i <= steps; i++ {
		t := float64(i) / float64(steps)
		px := x0 + t*dx
		py := y0 + t*dy
		depth := from.Y + t*(to.Y-from.Y)
		// Taper toward the tip so the axes read as arrows.
		r := thickness * (1 - 0.55*t)
		drawDisc(fb, px, py, depth, r, c)
	}
}

func drawDisc(fb *FrameBuffer, cx, cy, depth, radius float64, c axisColor) {
	x0 := int(math.Floor(cx - radius))
	x1 := int(math.Ceil(cx + radius))
	y0 := int(math.Floor(cy - radius))
	y1 := int(math.Ceil(cy + radius))
	r2 := radius * radius

	for y := y0; y <= y1; y++ {
		for x := x0; x <= x1; x++ {
			dx := float64(x) + 0.5 - cx
			dy := float64(y) + 0.5 - cy
			if dx*dx+dy*dy > r2 {
				continue
			}
			fb.Set(x, y, depth, c.r, c.g, c.b, 255)
		}
	}
}
