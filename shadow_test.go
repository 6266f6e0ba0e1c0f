package fx

import (
	"errors"
	"testing"
)

func TestNewShadowDefaults(t *testing.T) {
	tests := []struct {
		name       string
		color      Color
		opts       []ShadowOption
		wantBlur   float64
		wantOffset Point
	}{
		{"visible color", Black, nil, 10, Pt(10, 10)},
		{"transparent color", Transparent, nil, 0, Pt(0, 0)},
		{"explicit blur", Black, []ShadowOption{WithBlur(3)}, 3, Pt(3, 3)},
		{"explicit offset", Black, []ShadowOption{WithOffset(2, -5)}, 10, Pt(2, -5)},
		{"uniform offset", Black, []ShadowOption{WithBlur(1), WithUniformOffset(4)}, 1, Pt(4, 4)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, err := NewShadow(tt.color, tt.opts...)
			if err != nil {
				t.Fatalf("NewShadow: %v", err)
			}
			if s.Blur() != tt.wantBlur {
				t.Errorf("Blur() = %v, want %v", s.Blur(), tt.wantBlur)
			}
			if s.Offset() != tt.wantOffset {
				t.Errorf("Offset() = %v, want %v", s.Offset(), tt.wantOffset)
			}
		})
	}
}

func TestShadowOffsetFlipsY(t *testing.T) {
	s := mustShadow(t, "black", 0, []float64{3, 4})
	if got := s.Offset(); got != Pt(3, 4) {
		t.Errorf("Offset() = %v, want (3, 4)", got)
	}
	if got := s.Params().Offset; got != Pt(3, -4) {
		t.Errorf("Params().Offset = %v, want (3, -4)", got)
	}
	s.SetOffset(-1, -2)
	if got := s.Params().Offset; got != Pt(-1, 2) {
		t.Errorf("Params().Offset after SetOffset = %v, want (-1, 2)", got)
	}
}

func TestParseShadowOffsets(t *testing.T) {
	tests := []struct {
		name   string
		offset any
		want   Point
	}{
		{"number", 5, Pt(5, 5)},
		{"float", 2.5, Pt(2.5, 2.5)},
		{"point", Pt(1, 2), Pt(1, 2)},
		{"array", [2]float64{3, 4}, Pt(3, 4)},
		{"one element", []float64{6}, Pt(6, 6)},
		{"two elements", []float64{7, 8}, Pt(7, 8)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := mustShadow(t, "black", 1, tt.offset)
			if got := s.Offset(); got != tt.want {
				t.Errorf("Offset() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestParseShadowColor(t *testing.T) {
	s := mustShadow(t, []float64{1, 0, 0, 0.5})
	if got, want := s.Color(), RGBA(1, 0, 0, 0.5); got != want {
		t.Errorf("Color() = %v, want %v", got, want)
	}
	if s.Blur() != DefaultShadowBlur {
		t.Errorf("Blur() = %v, want default", s.Blur())
	}
}

func TestParseShadowFromShadow(t *testing.T) {
	base := mustShadow(t, "red", 4, 2)
	s := mustShadow(t, base, 8)
	if s.Blur() != 8 || s.Offset() != Pt(2, 2) || s.Color() != base.Color() {
		t.Errorf("derived shadow = %v", s)
	}
	if base.Blur() != 4 {
		t.Error("deriving modified the base shadow")
	}
}

func TestParseShadowErrors(t *testing.T) {
	tests := []struct {
		name string
		args []any
	}{
		{"empty", nil},
		{"too many", []any{"black", 1, 2, 3}},
		{"bad color", []any{"not-a-color"}},
		{"bad blur", []any{"black", "wide"}},
		{"negative blur", []any{"black", -1}},
		{"bad offset", []any{"black", 1, "far"}},
		{"three element offset", []any{"black", 1, []float64{1, 2, 3}}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, err := ParseShadow(tt.args...)
			if err == nil {
				t.Fatalf("ParseShadow(%v) = %v, want error", tt.args, s)
			}
			if !errors.Is(err, ErrMalformedShadow) {
				t.Errorf("error %v does not wrap ErrMalformedShadow", err)
			}
			var serr *ShadowSpecError
			if !errors.As(err, &serr) {
				t.Errorf("error %T is not a *ShadowSpecError", err)
			}
		})
	}
}

func TestParseShadowErrorCause(t *testing.T) {
	_, err := ParseShadow("#12")
	if !errors.Is(err, ErrInvalidColor) {
		t.Errorf("error %v does not wrap ErrInvalidColor", err)
	}
	_, err = ParseShadow("black", -2)
	if !errors.Is(err, ErrInvalidValue) {
		t.Errorf("error %v does not wrap ErrInvalidValue", err)
	}
}

func TestShadowCopy(t *testing.T) {
	s := mustShadow(t, "black", 2, 3)
	c := s.Copy()
	if !c.Equal(s) {
		t.Fatalf("Copy() = %v, want %v", c, s)
	}
	c.SetColor(White)
	_ = c.SetBlur(5)
	c.SetOffset(0, 0)
	if s.Color() != Black || s.Blur() != 2 || s.Offset() != Pt(3, 3) {
		t.Errorf("mutating the copy changed the original: %v", s)
	}
}

func TestShadowSetBlurRejectsNegative(t *testing.T) {
	s := mustShadow(t, "black", 2)
	if err := s.SetBlur(-1); !errors.Is(err, ErrInvalidValue) {
		t.Errorf("SetBlur(-1) = %v, want ErrInvalidValue", err)
	}
	if s.Blur() != 2 {
		t.Errorf("Blur() = %v after rejected set", s.Blur())
	}
}

func TestShadowSetColorSpec(t *testing.T) {
	s := mustShadow(t, "black")
	if err := s.SetColorSpec(1, 1, 1); err != nil {
		t.Fatal(err)
	}
	if s.Color() != White {
		t.Errorf("Color() = %v, want white", s.Color())
	}
	if err := s.SetColorSpec("nope"); !errors.Is(err, ErrInvalidColor) {
		t.Errorf("SetColorSpec(nope) = %v, want ErrInvalidColor", err)
	}
}

func TestShadowEqualNil(t *testing.T) {
	var a, b *Shadow
	if !a.Equal(b) {
		t.Error("nil shadows are not equal")
	}
	if a.Equal(mustShadow(t, "black")) {
		t.Error("nil equals a shadow")
	}
}

func TestShadowString(t *testing.T) {
	s := mustShadow(t, Black, 2, []float64{1, 3})
	want := "Shadow(Color(0, 0, 0, 1), blur=2, offset=(1, 3))"
	if got := s.String(); got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
}
