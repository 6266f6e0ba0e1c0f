package stroke

import (
	"math"

	"github.com/gogpu/fx"
)

// maxDiscSegments bounds the polygon used for joins and caps.
const maxDiscSegments = 64

// Expand returns polygons covering lines stroked at width.
func Expand(lines []fx.Polyline, width float64) [][]fx.Point {
	if width <= 0 {
		return nil
	}
	hw := width / 2
	var polys [][]fx.Point
	for _, l := range lines {
		pts := l.Points
		n := len(pts)
		if n == 0 {
			continue
		}
		segs := n - 1
		if l.Closed && n > 2 {
			segs = n
		}
		for i := 0; i < segs; i++ {
			if q := segmentQuad(pts[i], pts[(i+1)%n], hw); q != nil {
				polys = append(polys, q)
			}
		}
		for _, p := range pts {
			polys = append(polys, disc(p, hw))
		}
	}
	return polys
}

func segmentQuad(a, b fx.Point, hw float64) []fx.Point {
	d := b.Sub(a)
	length := d.Length()
	if length == 0 {
		return nil
	}
	nrm := fx.Pt(-d.Y/length*hw, d.X/length*hw)
	return orient([]fx.Point{a.Add(nrm), b.Add(nrm), b.Sub(nrm), a.Sub(nrm)})
}

func disc(c fx.Point, r float64) []fx.Point {
	n := int(math.Ceil(2 * math.Pi * r))
	n = max(8, min(n, maxDiscSegments))
	pts := make([]fx.Point, n)
	for i := range pts {
		sin, cos := math.Sincos(2 * math.Pi * float64(i) / float64(n))
		pts[i] = fx.Pt(c.X+r*cos, c.Y+r*sin)
	}
	return pts
}

// SignedArea returns twice the signed area of poly; positive is clockwise
// on a y-down canvas.
func SignedArea(poly []fx.Point) float64 {
	var a float64
	for i, p := range poly {
		q := poly[(i+1)%len(poly)]
		a += p.X*q.Y - q.X*p.Y
	}
	return a
}

func orient(poly []fx.Point) []fx.Point {
	if SignedArea(poly) < 0 {
		for i, j := 0, len(poly)-1; i < j; i, j = i+1, j-1 {
			poly[i], poly[j] = poly[j], poly[i]
		}
	}
	return poly
}
