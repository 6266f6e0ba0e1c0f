package fx

import (
	"math"
	"testing"
)

func TestMatrixMultiplyOrder(t *testing.T) {
	// Scale first, then translate.
	m := Translate(10, 0).Multiply(Scale(2, 2))
	approxPoint(t, m.TransformPoint(Pt(1, 1)), Pt(12, 2))

	// Translate first, then scale.
	m = Scale(2, 2).Multiply(Translate(10, 0))
	approxPoint(t, m.TransformPoint(Pt(1, 1)), Pt(22, 2))
}

func TestMatrixInvert(t *testing.T) {
	m := Translate(3, -4).Multiply(Rotate(0.7)).Multiply(Scale(2, 5))
	p := Pt(1.5, -2)
	approxPoint(t, m.Invert().TransformPoint(m.TransformPoint(p)), p)

	if !Scale(0, 1).Invert().IsIdentity() {
		t.Error("singular matrix did not invert to identity")
	}
}

func TestMatrixTransformVector(t *testing.T) {
	m := Translate(100, 100).Multiply(Scale(2, 3))
	if got := m.TransformVector(Pt(1, 1)); got != Pt(2, 3) {
		t.Errorf("TransformVector = %v, want (2, 3)", got)
	}
}

func TestMatrixRotate(t *testing.T) {
	approxPoint(t, Rotate(math.Pi/2).TransformPoint(Pt(1, 0)), Pt(0, 1))
}

func TestMatrixAff3(t *testing.T) {
	m := Matrix{A: 1, B: 2, C: 3, D: 4, E: 5, F: 6}
	got := m.Aff3()
	for i, want := range []float64{1, 2, 3, 4, 5, 6} {
		if got[i] != want {
			t.Errorf("Aff3()[%d] = %v, want %v", i, got[i], want)
		}
	}
}
