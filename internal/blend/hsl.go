package blend

// Lum returns the luminosity of an unpremultiplied color.
func Lum(r, g, b float64) float64 {
	return 0.30*r + 0.59*g + 0.11*b
}

// Sat returns the saturation of an unpremultiplied color.
func Sat(r, g, b float64) float64 {
	return max(r, g, b) - min(r, g, b)
}

// ClipColor brings a color with out-of-range components back into
// [0, 1] while keeping its luminosity.
func ClipColor(r, g, b float64) (float64, float64, float64) {
	l := Lum(r, g, b)
	n := min(r, g, b)
	x := max(r, g, b)

	if n < 0 && l != n {
		r = l + (r-l)*l/(l-n)
		g = l + (g-l)*l/(l-n)
		b = l + (b-l)*l/(l-n)
	}
	if x > 1 && x != l {
		r = l + (r-l)*(1-l)/(x-l)
		g = l + (g-l)*(1-l)/(x-l)
		b = l + (b-l)*(1-l)/(x-l)
	}
	return r, g, b
}

// SetLum shifts a color to luminosity l.
func SetLum(r, g, b, l float64) (float64, float64, float64) {
	d := l - Lum(r, g, b)
	return ClipColor(r+d, g+d, b+d)
}

// SetSat rescales a color to saturation s.
func SetSat(r, g, b, s float64) (float64, float64, float64) {
	minPtr, midPtr, maxPtr := sortRGB(&r, &g, &b)
	if *maxPtr > *minPtr {
		*midPtr = (*midPtr - *minPtr) * s / (*maxPtr - *minPtr)
		*maxPtr = s
	} else {
		*midPtr, *maxPtr = 0, 0
	}
	*minPtr = 0
	return r, g, b
}

func sortRGB(r, g, b *float64) (minPtr, midPtr, maxPtr *float64) {
	switch {
	case *r <= *g && *g <= *b:
		return r, g, b
	case *r <= *b && *b <= *g:
		return r, b, g
	case *b <= *r && *r <= *g:
		return b, r, g
	case *g <= *r && *r <= *b:
		return g, r, b
	case *g <= *b && *b <= *r:
		return g, b, r
	default:
		return b, g, r
	}
}

func hslBlendHue(sr, sg, sb, dr, dg, db float64) (float64, float64, float64) {
	r, g, b := SetSat(sr, sg, sb, Sat(dr, dg, db))
	return SetLum(r, g, b, Lum(dr, dg, db))
}

func hslBlendSaturation(sr, sg, sb, dr, dg, db float64) (float64, float64, float64) {
	r, g, b := SetSat(dr, dg, db, Sat(sr, sg, sb))
	return SetLum(r, g, b, Lum(dr, dg, db))
}

func hslBlendColor(sr, sg, sb, dr, dg, db float64) (float64, float64, float64) {
	return SetLum(sr, sg, sb, Lum(dr, dg, db))
}

func hslBlendLuminosity(sr, sg, sb, dr, dg, db float64) (float64, float64, float64) {
	return SetLum(dr, dg, db, Lum(sr, sg, sb))
}
