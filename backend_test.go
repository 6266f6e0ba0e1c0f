package fx

import (
	"errors"
	"fmt"
	"image"
	"slices"
	"testing"

	"github.com/google/go-cmp/cmp"
)

// callLog is a Backend that records each call as a short string.
type callLog struct {
	calls []string
}

func (b *callLog) log(format string, args ...any) {
	b.calls = append(b.calls, fmt.Sprintf(format, args...))
}

func (b *callLog) Bounds() Rect                  { return RectXYWH(0, 0, 100, 80) }
func (b *callLog) SaveState()                    { b.log("save") }
func (b *callLog) RestoreState()                 { b.log("restore") }
func (b *callLog) SetAlpha(a float64)            { b.log("alpha %g", a) }
func (b *callLog) SetBlendMode(m BlendMode)      { b.log("blend %v", m) }
func (b *callLog) BeginTransparencyLayer()       { b.log("begin-layer") }
func (b *callLog) EndTransparencyLayer()         { b.log("end-layer") }
func (b *callLog) BeginPath()                    { b.log("begin-path") }
func (b *callLog) AddRect(r Rect)                { b.log("add-rect %g %g %g %g", r.Min.X, r.Min.Y, r.Max.X, r.Max.Y) }
func (b *callLog) AddPath(p *Path)               { b.log("add-path") }
func (b *callLog) Clip()                         { b.log("clip") }
func (b *callLog) EOClip()                       { b.log("eoclip") }
func (b *callLog) DrawImage(image.Image, Matrix) { b.log("image") }

func (b *callLog) SetShadow(s ShadowParams) {
	b.log("shadow blur=%g offset=(%g, %g)", s.Blur, s.Offset.X, s.Offset.Y)
}

func (b *callLog) FillPath(p *Path, c Color, rule FillRule) {
	b.log("fill %v", rule)
}

func (b *callLog) StrokePath(p *Path, c Color, width float64) {
	b.log("stroke %g", width)
}

// draw is a body that logs a marker call.
func (b *callLog) draw() error {
	b.log("draw")
	return nil
}

func TestSavedStateRestoresOnError(t *testing.T) {
	b := &callLog{}
	boom := errors.New("boom")
	err := SavedState(b, func() error { return boom })
	if !errors.Is(err, boom) {
		t.Fatalf("SavedState() = %v, want %v", err, boom)
	}
	if diff := cmp.Diff([]string{"save", "restore"}, b.calls); diff != "" {
		t.Errorf("calls mismatch (-want +got):\n%s", diff)
	}
}

func TestTransparencyLayerClosesOnPanic(t *testing.T) {
	b := &callLog{}
	func() {
		defer func() { _ = recover() }()
		_ = TransparencyLayer(b, func() error { panic("boom") })
	}()
	if diff := cmp.Diff([]string{"begin-layer", "end-layer"}, b.calls); diff != "" {
		t.Errorf("calls mismatch (-want +got):\n%s", diff)
	}
}

func TestRegistry(t *testing.T) {
	Register("test-calllog", func(w, h int) Backend { return &callLog{} })

	b, err := NewBackend("test-calllog", 1, 1)
	if err != nil {
		t.Fatalf("NewBackend: %v", err)
	}
	if _, ok := b.(*callLog); !ok {
		t.Errorf("NewBackend returned %T", b)
	}
	if !slices.Contains(Backends(), "test-calllog") {
		t.Errorf("Backends() = %v, missing test-calllog", Backends())
	}

	if _, err := NewBackend("no-such-backend", 1, 1); !errors.Is(err, ErrUnknownBackend) {
		t.Errorf("unknown backend error = %v, want ErrUnknownBackend", err)
	}
}

func TestRegisterPanics(t *testing.T) {
	tests := []struct {
		name    string
		factory BackendFactory
	}{
		{"nil factory", nil},
		{"duplicate", func(w, h int) Backend { return &callLog{} }},
	}
	Register("test-dup", func(w, h int) Backend { return &callLog{} })
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			defer func() {
				if recover() == nil {
					t.Error("Register did not panic")
				}
			}()
			Register("test-dup", tt.factory)
		})
	}
}

func TestFillRuleString(t *testing.T) {
	if FillNonZero.String() != "nonzero" || FillEvenOdd.String() != "evenodd" {
		t.Errorf("FillRule strings = %q, %q", FillNonZero, FillEvenOdd)
	}
}
