// Package blend composites premultiplied pixels with the fx blend modes.
//
// Porter-Duff modes are evaluated through their fixed-function
// gputypes.BlendState. The separable and non-separable modes follow the
// W3C Compositing and Blending Level 1 formulas.
//
// References:
//   - W3C Compositing and Blending Level 1: https://www.w3.org/TR/compositing-1/
//   - PDF Blend Modes: Addendum (ISO 32000-1:2008)
package blend

import (
	"math"

	"github.com/gogpu/gputypes"

	"github.com/gogpu/fx"
)

// Pixel is a premultiplied color with components in [0, 1].
type Pixel struct {
	R, G, B, A float64
}

// Scale multiplies every component by k.
func (p Pixel) Scale(k float64) Pixel {
	return Pixel{p.R * k, p.G * k, p.B * k, p.A * k}
}

// Lerp interpolates from p to q.
func (p Pixel) Lerp(q Pixel, t float64) Pixel {
	return Pixel{
		R: p.R + (q.R-p.R)*t,
		G: p.G + (q.G-p.G)*t,
		B: p.B + (q.B-p.B)*t,
		A: p.A + (q.A-p.A)*t,
	}
}

// Composite blends source s over backdrop d.
func Composite(mode fx.BlendMode, s, d Pixel) Pixel {
	if state, ok := mode.GPUBlendState(); ok {
		return clampPixel(factorBlend(state, s, d))
	}
	if mode == fx.BlendPlusDarker {
		return plusDarker(s, d)
	}
	if fn, ok := separable[mode]; ok {
		return clampPixel(separableBlend(s, d, fn))
	}
	if fn, ok := nonSeparable[mode]; ok {
		return clampPixel(nonSeparableBlend(s, d, fn))
	}
	return clampPixel(factorBlend(normalState, s, d))
}

var normalState, _ = fx.BlendNormal.GPUBlendState()

// factorBlend evaluates a fixed-function blend state.
func factorBlend(state gputypes.BlendState, s, d Pixel) Pixel {
	cf := func(f gputypes.BlendFactor, sc, dc float64) float64 {
		return factor(f, s.A, d.A, sc, dc)
	}
	c, a := state.Color, state.Alpha
	return Pixel{
		R: operate(c.Operation, s.R*cf(c.SrcFactor, s.R, d.R), d.R*cf(c.DstFactor, s.R, d.R)),
		G: operate(c.Operation, s.G*cf(c.SrcFactor, s.G, d.G), d.G*cf(c.DstFactor, s.G, d.G)),
		B: operate(c.Operation, s.B*cf(c.SrcFactor, s.B, d.B), d.B*cf(c.DstFactor, s.B, d.B)),
		A: operate(a.Operation, s.A*cf(a.SrcFactor, s.A, d.A), d.A*cf(a.DstFactor, s.A, d.A)),
	}
}

func factor(f gputypes.BlendFactor, sa, da, sc, dc float64) float64 {
	switch f {
	case gputypes.BlendFactorZero:
		return 0
	case gputypes.BlendFactorOne:
		return 1
	case gputypes.BlendFactorSrc:
		return sc
	case gputypes.BlendFactorOneMinusSrc:
		return 1 - sc
	case gputypes.BlendFactorSrcAlpha:
		return sa
	case gputypes.BlendFactorOneMinusSrcAlpha:
		return 1 - sa
	case gputypes.BlendFactorDst:
		return dc
	case gputypes.BlendFactorOneMinusDst:
		return 1 - dc
	case gputypes.BlendFactorDstAlpha:
		return da
	case gputypes.BlendFactorOneMinusDstAlpha:
		return 1 - da
	case gputypes.BlendFactorSrcAlphaSaturated:
		return math.Min(sa, 1-da)
	}
	return 0
}

func operate(op gputypes.BlendOperation, s, d float64) float64 {
	switch op {
	case gputypes.BlendOperationSubtract:
		return s - d
	case gputypes.BlendOperationReverseSubtract:
		return d - s
	case gputypes.BlendOperationMin:
		return math.Min(s, d)
	case gputypes.BlendOperationMax:
		return math.Max(s, d)
	}
	return s + d
}

// plusDarker is max(0, 1 - ((1 - D) + (1 - S))) on premultiplied values,
// as CoreGraphics defines it.
func plusDarker(s, d Pixel) Pixel {
	a := math.Min(1, s.A+d.A)
	ch := func(sc, dc float64) float64 {
		return math.Max(0, a-((d.A-dc)+(s.A-sc)))
	}
	return Pixel{ch(s.R, d.R), ch(s.G, d.G), ch(s.B, d.B), a}
}

// separableBlend applies
//
//	Result = (1 - Sa) * D + (1 - Da) * S + Sa * Da * B(Sc, Dc)
//
// where B operates on unpremultiplied channels.
func separableBlend(s, d Pixel, fn func(sc, dc float64) float64) Pixel {
	if s.A == 0 {
		return d
	}
	if d.A == 0 {
		return s
	}
	ch := func(sc, dc float64) float64 {
		b := fn(sc/s.A, dc/d.A)
		return (1-s.A)*dc + (1-d.A)*sc + s.A*d.A*b
	}
	return Pixel{
		R: ch(s.R, d.R),
		G: ch(s.G, d.G),
		B: ch(s.B, d.B),
		A: s.A + d.A - s.A*d.A,
	}
}

func nonSeparableBlend(s, d Pixel, fn func(sr, sg, sb, dr, dg, db float64) (float64, float64, float64)) Pixel {
	if s.A == 0 {
		return d
	}
	if d.A == 0 {
		return s
	}
	r, g, b := fn(s.R/s.A, s.G/s.A, s.B/s.A, d.R/d.A, d.G/d.A, d.B/d.A)
	ch := func(sc, dc, bc float64) float64 {
		return (1-s.A)*dc + (1-d.A)*sc + s.A*d.A*bc
	}
	return Pixel{
		R: ch(s.R, d.R, r),
		G: ch(s.G, d.G, g),
		B: ch(s.B, d.B, b),
		A: s.A + d.A - s.A*d.A,
	}
}

var separable = map[fx.BlendMode]func(s, d float64) float64{
	fx.BlendMultiply:   func(s, d float64) float64 { return s * d },
	fx.BlendScreen:     func(s, d float64) float64 { return s + d - s*d },
	fx.BlendOverlay:    func(s, d float64) float64 { return hardLight(d, s) },
	fx.BlendDarken:     math.Min,
	fx.BlendLighten:    math.Max,
	fx.BlendColorDodge: colorDodge,
	fx.BlendColorBurn:  colorBurn,
	fx.BlendHardLight:  hardLight,
	fx.BlendSoftLight:  softLight,
	fx.BlendDifference: func(s, d float64) float64 { return math.Abs(s - d) },
	fx.BlendExclusion:  func(s, d float64) float64 { return s + d - 2*s*d },
}

var nonSeparable = map[fx.BlendMode]func(sr, sg, sb, dr, dg, db float64) (float64, float64, float64){
	fx.BlendHue:        hslBlendHue,
	fx.BlendSaturation: hslBlendSaturation,
	fx.BlendColor:      hslBlendColor,
	fx.BlendLuminosity: hslBlendLuminosity,
}

func hardLight(s, d float64) float64 {
	if s <= 0.5 {
		return 2 * s * d
	}
	return 1 - 2*(1-s)*(1-d)
}

func colorDodge(s, d float64) float64 {
	switch {
	case d == 0:
		return 0
	case s >= 1:
		return 1
	}
	return math.Min(1, d/(1-s))
}

func colorBurn(s, d float64) float64 {
	switch {
	case d >= 1:
		return 1
	case s <= 0:
		return 0
	}
	return 1 - math.Min(1, (1-d)/s)
}

func softLight(s, d float64) float64 {
	if s <= 0.5 {
		return d - (1-2*s)*d*(1-d)
	}
	var dd float64
	if d <= 0.25 {
		dd = ((16*d-12)*d + 4) * d
	} else {
		dd = math.Sqrt(d)
	}
	return d + (2*s-1)*(dd-d)
}

func clampPixel(p Pixel) Pixel {
	c := func(v float64) float64 { return math.Max(0, math.Min(1, v)) }
	p.A = c(p.A)
	p.R = math.Min(c(p.R), p.A)
	p.G = math.Min(c(p.G), p.A)
	p.B = math.Min(c(p.B), p.A)
	return p
}
