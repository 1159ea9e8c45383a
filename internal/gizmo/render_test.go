package gizmo

import (
	"image"
	"image/color"
	"testing"

	"github.com/ihmcroboticsdocs/euclid-core/geometry"
)

func TestFrameBufferDepthTest(t *testing.T) {
	fb := NewFrameBuffer(4, 4)
	fb.Set(1, 1, 0.5, 10, 20, 30, 255)
	fb.Set(1, 1, -0.5, 99, 99, 99, 255) // behind, must lose
	i := (1*4 + 1) * 4
	if fb.Color[i] != 10 || fb.Color[i+1] != 20 || fb.Color[i+2] != 30 {
		t.Errorf("deeper pixel overwrote a nearer one: %v", fb.Color[i:i+4])
	}

	fb.Set(1, 1, 0.9, 1, 2, 3, 255) // in front, must win
	if fb.Color[i] != 1 {
		t.Error("nearer pixel lost the depth test")
	}

	// Out of bounds is a no-op.
	fb.Set(-1, 0, 0, 1, 1, 1, 255)
	fb.Set(4, 4, 0, 1, 1, 1, 255)
}

func TestRenderTriadIdentity(t *testing.T) {
	q := geometry.NewQuaternion()
	img := RenderTriad(q, 64, 1, nil)

	if got := img.Bounds().Dx(); got != 64 {
		t.Fatalf("frame width = %d, want 64", got)
	}

	// With the identity orientation the X axis runs from the center toward
	// the right edge: expect red-dominant pixels there.
	found := false
	for x := 40; x < 60 && !found; x++ {
		c := img.NRGBAAt(x, 32)
		if c.A == 255 && c.R > c.G && c.R > c.B {
			found = true
		}
	}
	if !found {
		t.Error("no red X-axis pixels right of center for the identity orientation")
	}

	// And the Z axis runs upward: green must not be there, blue must.
	found = false
	for y := 4; y < 24 && !found; y++ {
		c := img.NRGBAAt(32, y)
		if c.A == 255 && c.B > c.R && c.B > c.G {
			found = true
		}
	}
	if !found {
		t.Error("no blue Z-axis pixels above center for the identity orientation")
	}
}

func TestRenderTriadBackground(t *testing.T) {
	bg := SolidBackground(color.NRGBA{R: 7, G: 8, B: 9, A: 255}, 64)
	q := geometry.NewQuaternion()
	img := RenderTriad(q, 64, 1, bg)

	// Corners stay background.
	if c := img.NRGBAAt(1, 1); c.R != 7 || c.G != 8 || c.B != 9 {
		t.Errorf("corner pixel = %v, want the backdrop color", c)
	}
}

func TestDownsampleHalvesSize(t *testing.T) {
	src := image.NewNRGBA(image.Rect(0, 0, 128, 128))
	for i := range src.Pix {
		src.Pix[i] = 200
	}
	dst := Downsample(src, 64, 64)
	if dst.Bounds().Dx() != 64 || dst.Bounds().Dy() != 64 {
		t.Fatalf("downsampled bounds = %v", dst.Bounds())
	}

	// A uniform opaque frame stays uniform through the premultiply cycle.
	c := dst.NRGBAAt(32, 32)
	if c.R != 200 || c.A != 200 {
		t.Errorf("uniform frame drifted to %v", c)
	}

	// Already small enough: returned untouched.
	same := Downsample(dst, 64, 64)
	if same != dst {
		t.Error("Downsample of an in-budget image must be a no-op")
	}
}

func TestDownsampleNonSquare(t *testing.T) {
	src := image.NewNRGBA(image.Rect(0, 0, 256, 128))
	dst := Downsample(src, 64, 32)
	if dst.Bounds().Dx() != 64 || dst.Bounds().Dy() != 32 {
		t.Fatalf("downsampled bounds = %v", dst.Bounds())
	}
}
