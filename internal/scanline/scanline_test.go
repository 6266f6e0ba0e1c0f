package scanline

import (
	"testing"

	"github.com/gogpu/fx"
)

func square(x, y, s float64) []fx.Point {
	return []fx.Point{{X: x, Y: y}, {X: x + s, Y: y}, {X: x + s, Y: y + s}, {X: x, Y: y + s}}
}

func reversed(p []fx.Point) []fx.Point {
	r := make([]fx.Point, len(p))
	for i := range p {
		r[i] = p[len(p)-1-i]
	}
	return r
}

func TestRasterizeSquare(t *testing.T) {
	m := Rasterize([][]fx.Point{square(2, 2, 4)}, 10, 10, NonZero)

	tests := []struct {
		x, y int
		want uint8
	}{
		{3, 3, 255},
		{5, 5, 255},
		{1, 1, 0},
		{6, 3, 0},
		{3, 6, 0},
	}
	for _, tt := range tests {
		if got := m.AlphaAt(tt.x, tt.y).A; got != tt.want {
			t.Errorf("coverage at (%d, %d) = %d, want %d", tt.x, tt.y, got, tt.want)
		}
	}
}

func TestRasterizePartialCoverage(t *testing.T) {
	m := Rasterize([][]fx.Point{{{X: 0, Y: 0}, {X: 2.5, Y: 0}, {X: 2.5, Y: 4}, {X: 0, Y: 4}}}, 4, 4, NonZero)
	if got := m.AlphaAt(2, 1).A; got != 128 {
		t.Errorf("half-covered pixel = %d, want 128", got)
	}
}

func TestRasterizeRules(t *testing.T) {
	outer := square(0, 0, 10)
	hole := square(3, 3, 4)

	tests := []struct {
		name  string
		polys [][]fx.Point
		rule  Rule
		want  uint8 // coverage at the center
	}{
		{"nonzero same direction fills hole", [][]fx.Point{outer, hole}, NonZero, 255},
		{"nonzero opposite direction keeps hole", [][]fx.Point{outer, reversed(hole)}, NonZero, 0},
		{"evenodd same direction keeps hole", [][]fx.Point{outer, hole}, EvenOdd, 0},
		{"evenodd opposite direction keeps hole", [][]fx.Point{outer, reversed(hole)}, EvenOdd, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := Rasterize(tt.polys, 10, 10, tt.rule)
			if got := m.AlphaAt(5, 5).A; got != tt.want {
				t.Errorf("center = %d, want %d", got, tt.want)
			}
			if got := m.AlphaAt(1, 1).A; got != 255 {
				t.Errorf("ring = %d, want 255", got)
			}
		})
	}
}

func TestRasterizeClipsToCanvas(t *testing.T) {
	m := Rasterize([][]fx.Point{square(-5, -5, 20)}, 4, 4, NonZero)
	for y := 0; y < 4; y++ {
		for x := 0; x < 4; x++ {
			if got := m.AlphaAt(x, y).A; got != 255 {
				t.Fatalf("coverage at (%d, %d) = %d, want 255", x, y, got)
			}
		}
	}
}

func TestRasterizeEmpty(t *testing.T) {
	m := Rasterize(nil, 3, 3, EvenOdd)
	if m.Bounds().Dx() != 3 {
		t.Errorf("bounds = %v", m.Bounds())
	}
	for _, a := range m.Pix {
		if a != 0 {
			t.Fatal("empty input produced coverage")
		}
	}
}
