package fx

import (
	"fmt"
	"image/color"
	"math"
	"strconv"
	"strings"

	"golang.org/x/image/colornames"
)

// Color represents a color with red, green, blue, and alpha components.
// Each component is in the range [0, 1] and is not premultiplied.
type Color struct {
	R, G, B, A float64
}

// Common colors.
var (
	Black       = Color{A: 1}
	White       = Color{R: 1, G: 1, B: 1, A: 1}
	Transparent = Color{}
)

// RGB creates an opaque color from RGB components.
func RGB(r, g, b float64) Color {
	return RGBA(r, g, b, 1)
}

// RGBA creates a color from RGBA components. Components are clamped to [0, 1].
func RGBA(r, g, b, a float64) Color {
	return Color{R: clamp01(r), G: clamp01(g), B: clamp01(b), A: clamp01(a)}
}

// Grey creates a grey color with the given brightness and alpha.
func Grey(v, a float64) Color {
	return RGBA(v, v, v, a)
}

// HSB creates a color from hue, saturation, and brightness, all in [0, 1].
func HSB(h, s, v, a float64) Color {
	h = math.Mod(clamp01(h)*6, 6)
	s, v = clamp01(s), clamp01(v)
	c := v * s
	x := c * (1 - math.Abs(math.Mod(h, 2)-1))
	var r, g, b float64
	switch int(h) {
	case 0:
		r, g, b = c, x, 0
	case 1:
		r, g, b = x, c, 0
	case 2:
		r, g, b = 0, c, x
	case 3:
		r, g, b = 0, x, c
	case 4:
		r, g, b = x, 0, c
	default:
		r, g, b = c, 0, x
	}
	m := v - c
	return RGBA(r+m, g+m, b+m, a)
}

// CMYK creates a color from cyan, magenta, yellow, and key components.
func CMYK(c, m, y, k, a float64) Color {
	k = clamp01(k)
	return RGBA((1-clamp01(c))*(1-k), (1-clamp01(m))*(1-k), (1-clamp01(y))*(1-k), a)
}

// Hex parses "#RGB", "#RGBA", "#RRGGBB" or "#RRGGBBAA" (the # is optional).
func Hex(s string) (Color, error) {
	hex := strings.TrimPrefix(s, "#")
	var digits int
	switch len(hex) {
	case 3, 4:
		digits = 1
	case 6, 8:
		digits = 2
	default:
		return Color{}, fmt.Errorf("%w: %q", ErrInvalidColor, s)
	}

	comps := [4]float64{1, 1, 1, 1}
	for i := 0; i*digits < len(hex); i++ {
		v, err := strconv.ParseUint(hex[i*digits:(i+1)*digits], 16, 8)
		if err != nil {
			return Color{}, fmt.Errorf("%w: %q", ErrInvalidColor, s)
		}
		if digits == 1 {
			v *= 17
		}
		comps[i] = float64(v) / 255
	}
	return Color{R: comps[0], G: comps[1], B: comps[2], A: comps[3]}, nil
}

// Named looks up an SVG/CSS color name such as "steelblue".
// Case, spaces, dashes, and underscores are ignored.
func Named(name string) (Color, bool) {
	key := strings.ToLower(strings.NewReplacer(" ", "", "-", "", "_", "").Replace(name))
	c, ok := colornames.Map[key]
	if !ok {
		return Color{}, false
	}
	return FromColor(c), true
}

// FromColor converts a standard color.Color.
func FromColor(c color.Color) Color {
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	return Color{
		R: float64(n.R) / 255,
		G: float64(n.G) / 255,
		B: float64(n.B) / 255,
		A: float64(n.A) / 255,
	}
}

// ParseColor coerces a color spec:
//
//	ParseColor(c)               // Color or image/color.Color
//	ParseColor(0.5)             // grey
//	ParseColor(0.5, 0.25)       // grey, alpha
//	ParseColor(1, 0, 0)         // RGB
//	ParseColor(1, 0, 0, 0.5)    // RGBA
//	ParseColor("#a00")          // hex
//	ParseColor("orange")        // named
//	ParseColor([]float64{...})  // any of the numeric forms
func ParseColor(spec ...any) (Color, error) {
	if len(spec) == 1 {
		switch v := spec[0].(type) {
		case Color:
			return v, nil
		case *Color:
			if v != nil {
				return *v, nil
			}
		case string:
			if c, ok := Named(v); ok {
				return c, nil
			}
			return Hex(v)
		case color.Color:
			return FromColor(v), nil
		case []float64:
			spec = make([]any, len(v))
			for i, f := range v {
				spec[i] = f
			}
		case []any:
			spec = v
		}
	}

	vals := make([]float64, len(spec))
	for i, s := range spec {
		f, ok := toFloat(s)
		if !ok {
			return Color{}, fmt.Errorf("%w: %v", ErrInvalidColor, spec)
		}
		vals[i] = f
	}
	switch len(vals) {
	case 1:
		return Grey(vals[0], 1), nil
	case 2:
		return Grey(vals[0], vals[1]), nil
	case 3:
		return RGB(vals[0], vals[1], vals[2]), nil
	case 4:
		return RGBA(vals[0], vals[1], vals[2], vals[3]), nil
	}
	return Color{}, fmt.Errorf("%w: %v", ErrInvalidColor, spec)
}

// NRGBA converts the color to the backend-native 8-bit representation.
func (c Color) NRGBA() color.NRGBA {
	return color.NRGBA{
		R: uint8(math.Round(clamp01(c.R) * 255)),
		G: uint8(math.Round(clamp01(c.G) * 255)),
		B: uint8(math.Round(clamp01(c.B) * 255)),
		A: uint8(math.Round(clamp01(c.A) * 255)),
	}
}

// Premultiply returns a premultiplied color.
func (c Color) Premultiply() Color {
	return Color{R: c.R * c.A, G: c.G * c.A, B: c.B * c.A, A: c.A}
}

func (c Color) String() string {
	return fmt.Sprintf("Color(%.3g, %.3g, %.3g, %.3g)", c.R, c.G, c.B, c.A)
}

func clamp01(x float64) float64 {
	if x < 0 || math.IsNaN(x) {
		return 0
	}
	if x > 1 {
		return 1
	}
	return x
}

// toFloat converts the numeric kinds a script author is likely to pass.
func toFloat(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int32:
		return float64(n), true
	case int64:
		return float64(n), true
	case uint8:
		return float64(n), true
	}
	return 0, false
}
