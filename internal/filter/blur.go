package filter

import (
	"image"
	"math"
)

// BlurAlpha returns a Gaussian-blurred copy of mask. Pixels outside the
// mask count as transparent, so coverage fades out at the canvas edge
// instead of smearing.
func BlurAlpha(mask *image.Alpha, sigma float64) *image.Alpha {
	b := mask.Bounds()
	out := image.NewAlpha(b)
	if sigma <= 0 {
		copy(out.Pix, mask.Pix)
		return out
	}

	kernel := GaussianKernel(sigma)
	half := len(kernel) / 2
	w, h := b.Dx(), b.Dy()
	temp := make([]float64, w*h)

	// Horizontal pass: mask -> temp.
	for y := 0; y < h; y++ {
		row := mask.Pix[y*mask.Stride : y*mask.Stride+w]
		for x := 0; x < w; x++ {
			var sum float64
			for k, weight := range kernel {
				kx := x + k - half
				if kx < 0 || kx >= w {
					continue
				}
				sum += float64(row[kx]) * weight
			}
			temp[y*w+x] = sum
		}
	}

	// Vertical pass: temp -> out.
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			var sum float64
			for k, weight := range kernel {
				ky := y + k - half
				if ky < 0 || ky >= h {
					continue
				}
				sum += temp[ky*w+x] * weight
			}
			out.Pix[y*out.Stride+x] = clampUint8(sum)
		}
	}
	return out
}

func clampUint8(v float64) uint8 {
	return uint8(math.Max(0, math.Min(255, math.Round(v))))
}
