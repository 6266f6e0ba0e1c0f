package filter

import (
	"image"
	"image/color"
	"math"
	"testing"

	"github.com/gogpu/fx"
)

func TestGaussianKernel(t *testing.T) {
	if k := GaussianKernel(0); len(k) != 1 || k[0] != 1 {
		t.Errorf("GaussianKernel(0) = %v, want [1]", k)
	}

	k := GaussianKernel(2)
	if len(k) != 13 {
		t.Fatalf("len = %d, want 13", len(k))
	}
	sum := 0.0
	for _, v := range k {
		sum += v
	}
	if math.Abs(sum-1) > 1e-9 {
		t.Errorf("kernel sum = %v, want 1", sum)
	}
	if k[6] <= k[5] || k[0] >= k[1] {
		t.Errorf("kernel not peaked at center: %v", k)
	}
}

func TestBlurAlphaSpreadsAndConserves(t *testing.T) {
	m := image.NewAlpha(image.Rect(0, 0, 21, 21))
	m.SetAlpha(10, 10, color.Alpha{A: 255})

	out := BlurAlpha(m, 1.5)
	if out.AlphaAt(10, 10).A >= 255 {
		t.Error("blur left center fully opaque")
	}
	if out.AlphaAt(11, 10).A == 0 {
		t.Error("blur did not spread to neighbor")
	}
	if out.AlphaAt(10, 11).A != out.AlphaAt(10, 9).A {
		t.Error("blur is not symmetric")
	}
}

func TestBlurAlphaZeroSigmaCopies(t *testing.T) {
	m := image.NewAlpha(image.Rect(0, 0, 3, 3))
	m.SetAlpha(1, 1, color.Alpha{A: 200})
	out := BlurAlpha(m, 0)
	if out.AlphaAt(1, 1).A != 200 || out.AlphaAt(0, 0).A != 0 {
		t.Errorf("zero sigma changed mask: %v", out.Pix)
	}
	out.Pix[0] = 9
	if m.Pix[0] != 0 {
		t.Error("BlurAlpha aliased its input")
	}
}

func TestDropShadowOffset(t *testing.T) {
	src := image.NewRGBA(image.Rect(0, 0, 10, 10))
	src.Set(2, 2, color.RGBA{255, 0, 0, 255})

	// Backend offset (3, -4) is 3 right and 4 down on the image.
	out := DropShadow(src, fx.ShadowParams{Color: fx.Black, Offset: fx.Pt(3, -4)})

	if got := out.RGBAAt(5, 6); got != (color.RGBA{0, 0, 0, 255}) {
		t.Errorf("shadow pixel = %v, want opaque black", got)
	}
	if got := out.RGBAAt(2, 2); got.A != 0 {
		t.Errorf("source position shadowed: %v", got)
	}
}

func TestDropShadowColorAlpha(t *testing.T) {
	src := image.NewRGBA(image.Rect(0, 0, 4, 4))
	src.Set(1, 1, color.RGBA{0, 255, 0, 255})

	out := DropShadow(src, fx.ShadowParams{Color: fx.RGBA(1, 0, 0, 0.5)})
	got := out.RGBAAt(1, 1)
	if got.A != 128 || got.R != 128 || got.G != 0 {
		t.Errorf("shadow pixel = %v, want premultiplied half red", got)
	}
}
