package stroke

import (
	"testing"

	"github.com/gogpu/fx"
)

func TestExpandOpenLine(t *testing.T) {
	line := fx.Polyline{Points: []fx.Point{{X: 0, Y: 0}, {X: 10, Y: 0}}}
	polys := Expand([]fx.Polyline{line}, 2)

	// One segment quad plus a disc per end point.
	if len(polys) != 3 {
		t.Fatalf("got %d polygons, want 3", len(polys))
	}
	quad := polys[0]
	if len(quad) != 4 {
		t.Fatalf("segment polygon has %d points, want 4", len(quad))
	}
	for _, p := range quad {
		if p.Y != 1 && p.Y != -1 {
			t.Errorf("quad point %v not at half width", p)
		}
	}
}

func TestExpandClosedAddsClosingSegment(t *testing.T) {
	tri := []fx.Point{{X: 0, Y: 0}, {X: 10, Y: 0}, {X: 0, Y: 10}}
	open := Expand([]fx.Polyline{{Points: tri}}, 1)
	closed := Expand([]fx.Polyline{{Points: tri, Closed: true}}, 1)
	if len(closed) != len(open)+1 {
		t.Errorf("closed = %d polygons, open = %d; want one more segment", len(closed), len(open))
	}
}

func TestExpandOrientation(t *testing.T) {
	line := fx.Polyline{Points: []fx.Point{{X: 10, Y: 5}, {X: 0, Y: 5}, {X: 0, Y: 0}}}
	for i, poly := range Expand([]fx.Polyline{line}, 3) {
		if SignedArea(poly) <= 0 {
			t.Errorf("polygon %d has non-positive orientation", i)
		}
	}
}

func TestExpandZeroWidth(t *testing.T) {
	line := fx.Polyline{Points: []fx.Point{{X: 0, Y: 0}, {X: 1, Y: 1}}}
	if polys := Expand([]fx.Polyline{line}, 0); polys != nil {
		t.Errorf("zero width produced %d polygons", len(polys))
	}
}
