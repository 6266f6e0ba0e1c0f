package fx

import (
	"errors"
	"math"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func mustEffect(t *testing.T, opts ...EffectOption) *Effect {
	t.Helper()
	e, err := NewEffect(opts...)
	if err != nil {
		t.Fatalf("NewEffect: %v", err)
	}
	return e
}

func mustShadow(t *testing.T, args ...any) *Shadow {
	t.Helper()
	s, err := ParseShadow(args...)
	if err != nil {
		t.Fatalf("ParseShadow(%v): %v", args, err)
	}
	return s
}

func TestEffectDefaultsOmitted(t *testing.T) {
	tests := []struct {
		name string
		opts []EffectOption
	}{
		{"empty", nil},
		{"alpha 1", []EffectOption{WithAlpha(1)}},
		{"normal blend", []EffectOption{WithBlend("normal")}},
		{"nil shadow", []EffectOption{WithShadow(nil)}},
		{"all defaults", []EffectOption{WithAlpha(1), WithBlendMode(BlendNormal), WithShadow(nil)}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := mustEffect(t, tt.opts...)
			if !e.IsDefault() {
				t.Errorf("IsDefault() = false for %v", e)
			}
			if attrs := e.Attrs(); len(attrs) != 0 {
				t.Errorf("Attrs() = %v, want none", attrs)
			}
			if got := e.String(); got != "Effect()" {
				t.Errorf("String() = %q, want %q", got, "Effect()")
			}
		})
	}
}

func TestEffectAccessorsDefault(t *testing.T) {
	e := mustEffect(t)
	if e.Alpha() != 1 || e.BlendMode() != BlendNormal || e.Shadow() != nil {
		t.Errorf("defaults = (%v, %v, %v)", e.Alpha(), e.BlendMode(), e.Shadow())
	}
}

func TestSetAlpha(t *testing.T) {
	tests := []struct {
		alpha   float64
		wantErr bool
		isSet   bool
	}{
		{0, false, true},
		{0.5, false, true},
		{1, false, false},
		{-0.1, true, false},
		{1.5, true, false},
		{math.NaN(), true, false},
	}
	for _, tt := range tests {
		e := &Effect{}
		err := e.SetAlpha(tt.alpha)
		if tt.wantErr {
			if !errors.Is(err, ErrInvalidValue) {
				t.Errorf("SetAlpha(%v) = %v, want ErrInvalidValue", tt.alpha, err)
			} else if !strings.Contains(err.Error(), "alpha must be a number between 0 and 1.0") {
				t.Errorf("SetAlpha(%v) message = %q", tt.alpha, err)
			}
			continue
		}
		if err != nil {
			t.Errorf("SetAlpha(%v) = %v", tt.alpha, err)
		}
		if got := e.IsSet(AttrAlpha); got != tt.isSet {
			t.Errorf("SetAlpha(%v): IsSet = %v, want %v", tt.alpha, got, tt.isSet)
		}
	}
}

func TestSetAlphaErrorKeepsValue(t *testing.T) {
	e := mustEffect(t, WithAlpha(0.4))
	if err := e.SetAlpha(2); err == nil {
		t.Fatal("SetAlpha(2) succeeded")
	}
	if e.Alpha() != 0.4 {
		t.Errorf("Alpha() = %v after rejected set, want 0.4", e.Alpha())
	}
}

func TestSetBlend(t *testing.T) {
	e := &Effect{}
	if err := e.SetBlend("Color Dodge"); err != nil {
		t.Fatalf("SetBlend: %v", err)
	}
	if e.BlendMode() != BlendColorDodge {
		t.Errorf("BlendMode() = %v, want color-dodge", e.BlendMode())
	}

	err := e.SetBlend("sparkle")
	var verr *ValueError
	if !errors.As(err, &verr) || verr.Attr != "blend" {
		t.Fatalf("SetBlend(sparkle) = %v, want blend ValueError", err)
	}
	if e.BlendMode() != BlendColorDodge {
		t.Error("failed SetBlend changed the mode")
	}
	if err := e.SetBlendMode(BlendMode(200)); !errors.Is(err, ErrInvalidValue) {
		t.Errorf("SetBlendMode(200) = %v, want ErrInvalidValue", err)
	}
}

func TestEffectShadowIsCopied(t *testing.T) {
	s := mustShadow(t, "black", 4)
	e := mustEffect(t, WithShadow(s))

	_ = s.SetBlur(9)
	if e.Shadow().Blur() != 4 {
		t.Errorf("effect shadow followed caller mutation: blur %v", e.Shadow().Blur())
	}

	c := e.Copy()
	_ = c.Shadow().SetBlur(7)
	if e.Shadow().Blur() != 4 {
		t.Errorf("copy shares shadow with original: blur %v", e.Shadow().Blur())
	}
}

func TestEffectCopyOmitsContents(t *testing.T) {
	e := mustEffect(t, WithAlpha(0.5))
	e.Append(GrobFunc(func(Backend) error { return nil }))
	c := e.Copy()
	if len(c.Contents()) != 0 {
		t.Errorf("Copy kept %d grobs", len(c.Contents()))
	}
	if !c.Equal(e) {
		t.Errorf("Copy() = %v, want %v", c, e)
	}
}

func TestEffectMerge(t *testing.T) {
	base := mustEffect(t, WithAlpha(0.5), WithBlend("screen"))
	over := mustEffect(t, WithBlend("multiply"), WithShadowSpec("black"))

	got := base.Merge(over)
	want := mustEffect(t, WithAlpha(0.5), WithBlend("multiply"), WithShadowSpec("black"))
	if !got.Equal(want) {
		t.Errorf("Merge = %v, want %v", got, want)
	}
	if base.BlendMode() != BlendScreen {
		t.Error("Merge modified receiver")
	}
}

func TestEffectUnset(t *testing.T) {
	e := mustEffect(t, WithAlpha(0.2), WithBlend("xor"), WithShadowSpec("red"))
	if diff := cmp.Diff([]Attr{AttrAlpha, AttrBlend, AttrShadow}, e.Attrs()); diff != "" {
		t.Errorf("Attrs mismatch (-want +got):\n%s", diff)
	}
	for _, a := range effectAttrs {
		e.Unset(a)
	}
	if !e.IsDefault() {
		t.Errorf("after Unset: %v", e)
	}
}

func TestEffectString(t *testing.T) {
	e := mustEffect(t, WithAlpha(0.5), WithBlend("multiply"))
	if got, want := e.String(), "Effect(alpha=0.5, blend=multiply)"; got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
	e.SetShadow(mustShadow(t, "black", 2, 3))
	if got := e.String(); !strings.Contains(got, "shadow=Shadow(") {
		t.Errorf("String() = %q, missing shadow", got)
	}
}

func TestEffectSet(t *testing.T) {
	e := mustEffect(t, WithAlpha(0.5), WithBlend("multiply"), WithShadowSpec("black", 2, 3))

	tests := []struct {
		name     string
		attrs    []Attr
		want     []string
		shadowed bool
	}{
		{
			name:     "all",
			want:     []string{"alpha 0.5", "blend multiply", "shadow blur=2 offset=(3, -3)"},
			shadowed: true,
		},
		{
			name:  "blend only",
			attrs: []Attr{AttrBlend},
			want:  []string{"blend multiply"},
		},
		{
			name:     "order is fixed",
			attrs:    []Attr{AttrShadow, AttrAlpha},
			want:     []string{"alpha 0.5", "shadow blur=2 offset=(3, -3)"},
			shadowed: true,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := &callLog{}
			if got := e.Set(b, tt.attrs...); got != tt.shadowed {
				t.Errorf("Set() = %v, want %v", got, tt.shadowed)
			}
			if diff := cmp.Diff(tt.want, b.calls); diff != "" {
				t.Errorf("calls mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestEffectSetSkipsUnset(t *testing.T) {
	b := &callLog{}
	if mustEffect(t).Set(b) {
		t.Error("default effect reported a shadow")
	}
	if len(b.calls) != 0 {
		t.Errorf("default effect pushed %v", b.calls)
	}
}

// Alpha and blend are pushed before the first layer opens: the layer
// captures them at begin and composites the whole group with them at end,
// so overlapping contents fade and blend as one unit. Setting them inside
// the layer would apply them to each grob separately. The outer
// save/restore pair is intentional; Set has no rollback of its own, and
// without it the alpha and blend would stay on the backend after the
// layers close.
func TestEffectApplied(t *testing.T) {
	tests := []struct {
		name string
		opts []EffectOption
		want []string
	}{
		{
			name: "default",
			want: []string{"draw"},
		},
		{
			name: "alpha",
			opts: []EffectOption{WithAlpha(0.5)},
			want: []string{"save", "alpha 0.5", "begin-layer", "draw", "end-layer", "restore"},
		},
		{
			name: "blend",
			opts: []EffectOption{WithBlend("overlay")},
			want: []string{"save", "blend overlay", "begin-layer", "draw", "end-layer", "restore"},
		},
		{
			name: "shadow",
			opts: []EffectOption{WithShadowSpec("black", 0, 1)},
			want: []string{
				"save", "begin-layer",
				"shadow blur=0 offset=(1, -1)", "begin-layer",
				"draw",
				"end-layer", "end-layer", "restore",
			},
		},
		{
			name: "alpha and shadow",
			opts: []EffectOption{WithAlpha(0.5), WithShadowSpec("black", 0, 1)},
			want: []string{
				"save", "alpha 0.5", "begin-layer",
				"shadow blur=0 offset=(1, -1)", "begin-layer",
				"draw",
				"end-layer", "end-layer", "restore",
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := &callLog{}
			if err := mustEffect(t, tt.opts...).Applied(b, b.draw); err != nil {
				t.Fatalf("Applied: %v", err)
			}
			if diff := cmp.Diff(tt.want, b.calls); diff != "" {
				t.Errorf("calls mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestEffectAppliedUnwinds(t *testing.T) {
	e := mustEffect(t, WithAlpha(0.5), WithShadowSpec("black"))
	want := []string{"end-layer", "end-layer", "restore"}

	t.Run("error", func(t *testing.T) {
		b := &callLog{}
		boom := errors.New("boom")
		if err := e.Applied(b, func() error { return boom }); !errors.Is(err, boom) {
			t.Fatalf("Applied() = %v, want %v", err, boom)
		}
		if diff := cmp.Diff(want, b.calls[len(b.calls)-3:]); diff != "" {
			t.Errorf("tail mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("panic", func(t *testing.T) {
		b := &callLog{}
		func() {
			defer func() {
				if recover() == nil {
					t.Error("panic was swallowed")
				}
			}()
			_ = e.Applied(b, func() error { panic("boom") })
		}()
		if diff := cmp.Diff(want, b.calls[len(b.calls)-3:]); diff != "" {
			t.Errorf("tail mismatch (-want +got):\n%s", diff)
		}
	})
}

func TestEffectScopeOnContext(t *testing.T) {
	c := NewContext(100, 100)
	outer := mustEffect(t, WithAlpha(0.5))
	inner := mustEffect(t, WithBlend("multiply"))

	err := c.With(outer, func() error {
		if c.Effect().Alpha() != 0.5 {
			t.Errorf("outer alpha = %v", c.Effect().Alpha())
		}
		err := c.With(inner, func() error {
			want := mustEffect(t, WithAlpha(0.5), WithBlend("multiply"))
			if got := c.Effect(); !got.Equal(want) {
				t.Errorf("nested effect = %v, want %v", got, want)
			}
			return nil
		})
		if err != nil {
			return err
		}
		if got := c.Effect(); !got.Equal(outer) {
			t.Errorf("after inner = %v, want %v", got, outer)
		}
		return nil
	})
	if err != nil {
		t.Fatal(err)
	}
	if !c.Effect().IsDefault() {
		t.Errorf("effect leaked: %v", c.Effect())
	}
}

func TestEffectScopeRestoresOnError(t *testing.T) {
	c := NewContext(100, 100)
	boom := errors.New("boom")
	err := c.With(mustEffect(t, WithAlpha(0.1)), func() error { return boom })
	if !errors.Is(err, boom) {
		t.Fatalf("With() = %v, want %v", err, boom)
	}
	if !c.Effect().IsDefault() {
		t.Errorf("effect leaked after error: %v", c.Effect())
	}
}

func TestEffectReusableScope(t *testing.T) {
	c := NewContext(100, 100)
	e := mustEffect(t, WithAlpha(0.3))
	for i := 0; i < 2; i++ {
		_ = c.With(e, func() error { return nil })
		if !c.Effect().IsDefault() {
			t.Fatalf("pass %d: effect leaked: %v", i, c.Effect())
		}
	}
}

func TestEffectDrawsContents(t *testing.T) {
	e := mustEffect(t, WithAlpha(0.5))
	b := &callLog{}
	e.Append(GrobFunc(func(b Backend) error {
		b.(*callLog).log("A")
		return nil
	}))
	e.Append(GrobFunc(func(b Backend) error {
		b.(*callLog).log("B")
		return nil
	}))
	if err := e.Draw(b); err != nil {
		t.Fatal(err)
	}
	want := []string{"save", "alpha 0.5", "begin-layer", "A", "B", "end-layer", "restore"}
	if diff := cmp.Diff(want, b.calls); diff != "" {
		t.Errorf("calls mismatch (-want +got):\n%s", diff)
	}
}

func TestAttrString(t *testing.T) {
	for a, want := range map[Attr]string{AttrAlpha: "alpha", AttrBlend: "blend", AttrShadow: "shadow", Attr(9): "Attr(9)"} {
		if got := a.String(); got != want {
			t.Errorf("Attr(%d).String() = %q, want %q", a, got, want)
		}
	}
}
