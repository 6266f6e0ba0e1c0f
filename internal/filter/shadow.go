package filter

import (
	"image"
	"math"

	"github.com/gogpu/fx"
)

// ShadowSigma converts a shadow blur radius to a Gaussian standard
// deviation.
func ShadowSigma(blur float64) float64 {
	return blur / 2
}

// DropShadow renders the shadow that src casts under params.
//
// The algorithm:
//  1. Extract the alpha channel of src, shifted by the offset
//  2. Apply Gaussian blur to the alpha
//  3. Colorize with the shadow color (premultiplied)
//
// params.Offset is in backend space (y up) and is flipped to image rows.
func DropShadow(src *image.RGBA, params fx.ShadowParams) *image.RGBA {
	b := src.Bounds()
	w, h := b.Dx(), b.Dy()
	dx := int(math.Round(params.Offset.X))
	dy := int(math.Round(-params.Offset.Y))

	mask := image.NewAlpha(b)
	for y := 0; y < h; y++ {
		sy := y - dy
		if sy < 0 || sy >= h {
			continue
		}
		for x := 0; x < w; x++ {
			sx := x - dx
			if sx < 0 || sx >= w {
				continue
			}
			mask.Pix[y*mask.Stride+x] = src.Pix[sy*src.Stride+sx*4+3]
		}
	}
	mask = BlurAlpha(mask, ShadowSigma(params.Blur))

	c := params.Color.Premultiply()
	out := image.NewRGBA(b)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			a := mask.Pix[y*mask.Stride+x]
			if a == 0 {
				continue
			}
			k := float64(a)
			i := y*out.Stride + x*4
			out.Pix[i+0] = clampUint8(c.R * k)
			out.Pix[i+1] = clampUint8(c.G * k)
			out.Pix[i+2] = clampUint8(c.B * k)
			out.Pix[i+3] = clampUint8(c.A * k)
		}
	}
	return out
}
