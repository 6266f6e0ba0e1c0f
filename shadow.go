package fx

import (
	"errors"
	"fmt"
	"math"
)

// DefaultShadowBlur is the blur radius given to shadows with a visible color
// when no radius is specified.
const DefaultShadowBlur = 10

// Shadow is a drop shadow: a color, a blur radius, and an offset.
//
// Shadow is a value-like type: Effects hold their own copy, and Copy returns
// an independent one. All three attributes are always defined.
//
// The offset is stored the way the backend consumes it, with the y axis
// pointing up. Offset and SetOffset convert to and from authoring space,
// where positive dy moves the shadow down.
type Shadow struct {
	color  Color
	blur   float64
	offset Point // backend space
}

// ShadowOption configures a Shadow in NewShadow and Derive.
type ShadowOption func(*shadowConfig)

type shadowConfig struct {
	blur   *float64
	offset *Point
}

// WithBlur sets the blur radius.
func WithBlur(radius float64) ShadowOption {
	return func(c *shadowConfig) { c.blur = &radius }
}

// WithOffset sets the shadow offset in authoring space.
func WithOffset(dx, dy float64) ShadowOption {
	return func(c *shadowConfig) { c.offset = &Point{X: dx, Y: dy} }
}

// WithUniformOffset sets the same offset on both axes.
func WithUniformOffset(d float64) ShadowOption {
	return WithOffset(d, d)
}

// NewShadow creates a shadow of the given color.
//
// Without WithBlur the radius is DefaultShadowBlur if the color has any
// opacity and 0 otherwise. Without an offset option the offset is
// (blur, blur).
func NewShadow(c Color, opts ...ShadowOption) (*Shadow, error) {
	var cfg shadowConfig
	for _, opt := range opts {
		opt(&cfg)
	}

	s := &Shadow{color: c}
	blur := 0.0
	if c.A > 0 {
		blur = DefaultShadowBlur
	}
	if cfg.blur != nil {
		blur = *cfg.blur
	}
	if err := s.SetBlur(blur); err != nil {
		return nil, err
	}
	offset := Pt(blur, blur)
	if cfg.offset != nil {
		offset = *cfg.offset
	}
	s.SetOffset(offset.X, offset.Y)
	return s, nil
}

// ParseShadow coerces a positional shadow spec: (color, blur?, offset?).
//
// The color is anything ParseColor accepts as a single value (a Color, a
// number, a string, or a []float64 tuple). The offset may be a number,
// which is used for both axes, a Point, or a one- or two-element slice.
// A *Shadow as the first argument is copied and the remaining arguments
// override its blur and offset.
//
// Failures are reported as a *ShadowSpecError.
func ParseShadow(args ...any) (*Shadow, error) {
	s, err := parseShadow(args)
	if err != nil {
		return nil, &ShadowSpecError{Args: args, Err: err}
	}
	return s, nil
}

func parseShadow(args []any) (*Shadow, error) {
	if len(args) == 0 {
		return nil, errors.New("missing color")
	}
	if len(args) > 3 {
		return nil, fmt.Errorf("want at most 3 parameters, got %d", len(args))
	}

	var opts []ShadowOption
	if len(args) > 1 {
		blur, ok := toFloat(args[1])
		if !ok {
			return nil, fmt.Errorf("blur %v is not a number", args[1])
		}
		opts = append(opts, WithBlur(blur))
	}
	if len(args) > 2 {
		off, err := parseOffset(args[2])
		if err != nil {
			return nil, err
		}
		opts = append(opts, WithOffset(off.X, off.Y))
	}

	if base, ok := args[0].(*Shadow); ok && base != nil {
		return base.Derive(opts...)
	}
	c, err := ParseColor(args[0])
	if err != nil {
		return nil, err
	}
	return NewShadow(c, opts...)
}

func parseOffset(v any) (Point, error) {
	if d, ok := toFloat(v); ok {
		return Pt(d, d), nil
	}
	switch o := v.(type) {
	case Point:
		return o, nil
	case [2]float64:
		return Pt(o[0], o[1]), nil
	case []float64:
		switch len(o) {
		case 1:
			return Pt(o[0], o[0]), nil
		case 2:
			return Pt(o[0], o[1]), nil
		}
	}
	return Point{}, fmt.Errorf("offset %v is not a number or (dx, dy) pair", v)
}

// Derive returns a copy of s with opts applied on top.
func (s *Shadow) Derive(opts ...ShadowOption) (*Shadow, error) {
	var cfg shadowConfig
	for _, opt := range opts {
		opt(&cfg)
	}
	d := s.Copy()
	if cfg.blur != nil {
		if err := d.SetBlur(*cfg.blur); err != nil {
			return nil, err
		}
	}
	if cfg.offset != nil {
		d.SetOffset(cfg.offset.X, cfg.offset.Y)
	}
	return d, nil
}

// Copy returns an independent copy of the shadow.
func (s *Shadow) Copy() *Shadow {
	c := *s
	return &c
}

// Color returns the shadow color.
func (s *Shadow) Color() Color { return s.color }

// SetColor sets the shadow color.
func (s *Shadow) SetColor(c Color) { s.color = c }

// SetColorSpec sets the shadow color from anything ParseColor accepts.
func (s *Shadow) SetColorSpec(spec ...any) error {
	c, err := ParseColor(spec...)
	if err != nil {
		return err
	}
	s.color = c
	return nil
}

// Blur returns the blur radius.
func (s *Shadow) Blur() float64 { return s.blur }

// SetBlur sets the blur radius. Negative or NaN radii are rejected.
func (s *Shadow) SetBlur(radius float64) error {
	if radius < 0 || math.IsNaN(radius) {
		return &ValueError{Attr: "blur", Value: radius, Reason: "blur radius must be >= 0"}
	}
	s.blur = radius
	return nil
}

// Offset returns the offset in authoring space (y down).
func (s *Shadow) Offset() Point {
	return Pt(s.offset.X, -s.offset.Y)
}

// SetOffset sets the offset in authoring space (y down).
func (s *Shadow) SetOffset(dx, dy float64) {
	s.offset = Pt(dx, -dy)
}

// Params returns the backend form of the shadow.
func (s *Shadow) Params() ShadowParams {
	return ShadowParams{Color: s.color, Blur: s.blur, Offset: s.offset}
}

// Equal reports whether two shadows have identical attributes.
// Two nil shadows are equal.
func (s *Shadow) Equal(other *Shadow) bool {
	if s == nil || other == nil {
		return s == other
	}
	return *s == *other
}

func (s *Shadow) String() string {
	off := s.Offset()
	return fmt.Sprintf("Shadow(%v, blur=%g, offset=(%g, %g))", s.color, s.blur, off.X, off.Y)
}
