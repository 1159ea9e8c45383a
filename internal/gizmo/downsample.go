package gizmo

import (
	"image"

	"golang.org/x/image/draw"
)

// Downsample shrinks a supersampled frame to targetW x targetH with
// CatmullRom filtering in premultiplied-alpha space, so partially covered
// stroke edges blend without dark halos. Frames already within the target
// are returned untouched.
func Downsample(img *image.NRGBA, targetW, targetH int) *image.NRGBA {
	b := img.Bounds()
	if b.Dx() <= targetW && b.Dy() <= targetH {
		return img
	}

	scaled := image.NewRGBA(image.Rect(0, 0, targetW, targetH))
	draw.CatmullRom.Scale(scaled, scaled.Bounds(), premultiply(img), b, draw.Src, nil)
	return unpremultiply(scaled)
}

func premultiply(img *image.NRGBA) *image.RGBA {
	b := img.Bounds()
	out := image.NewRGBA(b)
	for i := 0; i+3 < len(img.Pix); i += 4 {
		a := uint32(img.Pix[i+3])
		out.Pix[i] = uint8((uint32(img.Pix[i])*a + 127) / 255)
		out.Pix[i+1] = uint8((uint32(img.Pix[i+1])*a + 127) / 255)
		out.Pix[i+2] = uint8((uint32(img.Pix[i+2])*a + 127) / 255)
		out.Pix[i+3] = uint8(a)
	}
	return out
}

func unpremultiply(img *image.RGBA) *image.NRGBA {
	out := image.NewNRGBA(img.Bounds())
	for i := 0; i+3 < len(img.Pix); i += 4 {
		a := uint32(img.Pix[i+3])
		if a > 1 {
			out.Pix[i] = clamp8((uint32(img.Pix[i])*255 + a/2) / a)
			out.Pix[i+1] = clamp8((uint32(img.Pix[i+1])*255 + a/2) / a)
			out.Pix[i+2] = clamp8((uint32(img.Pix[i+2])*255 + a/2) / a)
		}
		out.Pix[i+3] = uint8(a)
	}
	return out
}

func clamp8(v uint32) uint8 {
	if v > 255 {
		return 255
	}
	return uint8(v)
}
