package gizmo

import (
	"image"
	"math"
)

// FrameBuffer holds the rendering target as flat slices for cache locality.
type FrameBuffer struct {
	Width  int
	Height int
	Color  []uint8   // RGBA interleaved, len = W*H*4
	ZBuf   []float64 // depth per pixel, len = W*H, initialized to -inf
}

// NewFrameBuffer allocates a zeroed color buffer and -inf z-buffer.
func NewFrameBuffer(w, h int) *FrameBuffer {
	n := w * h
	zbuf := make([]float64, n)
	for i := range zbuf {
		zbuf[i] = math.Inf(-1)
	}
	return &FrameBuffer{
		Width:  w,
		Height: h,
		Color:  make([]uint8, n*4),
		ZBuf:   zbuf,
	}
}

// Fill copies an opaque backdrop into the color buffer. The z-buffer stays at
// -inf so any drawn geometry lands on top.
func (fb *FrameBuffer) Fill(bg *image.NRGBA) {
	if bg == nil {
		return
	}
	b := bg.Bounds()
	for y := 0; y < fb.Height && y < b.Dy(); y++ {
		src := bg.Pix[y*bg.Stride:]
		dst := fb.Color[y*fb.Width*4:]
		n := fb.Width * 4
		if len(src) < n {
			n = len(src)
		}
		copy(dst[:n], src[:n])
	}
}

// Set writes one pixel if it passes the depth test.
func (fb *FrameBuffer) Set(x, y int, depth float64, r, g, b, a uint8) {
	if x < 0 || y < 0 || x >= fb.Width || y >= fb.Height {
		return
	}
	zi := y*fb.Width + x
	if depth < fb.ZBuf[zi] {
		return
	}
	fb.ZBuf[zi] = depth
	ci := zi * 4
	fb.Color[ci] = r
	fb.Color[ci+1] = g
	fb.Color[ci+2] = b
	fb.Color[ci+3] = a
}

// ToImage copies the framebuffer into a freshly allocated NRGBA image.
func (fb *FrameBuffer) ToImage() *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, fb.Width, fb.Height))
	copy(img.Pix, fb.Color)
	return img
}
