// Package scanline rasterizes flattened polygons into coverage masks with
// either fill rule.
//
// Each pixel row is sampled on four horizontal scanlines. Along a
// scanline, spans are covered exactly, so vertical edges stay sharp while
// slanted edges get four levels of vertical anti-aliasing.
package scanline

import (
	"image"
	"math"
	"sort"

	"github.com/gogpu/fx"
)

// Rule selects how winding numbers map to inside.
type Rule uint8

const (
	NonZero Rule = iota
	EvenOdd
)

const subsamples = 4

type edge struct {
	x0, y0, x1, y1 float64
	dir            int
}

type crossing struct {
	x   float64
	dir int
}

// Rasterize returns the coverage of polys over a w by h canvas. Each
// polygon is closed implicitly.
func Rasterize(polys [][]fx.Point, w, h int, rule Rule) *image.Alpha {
	mask := image.NewAlpha(image.Rect(0, 0, w, h))
	if w <= 0 || h <= 0 {
		return mask
	}

	edges := buildEdges(polys)
	if len(edges) == 0 {
		return mask
	}
	minY, maxY := math.Inf(1), math.Inf(-1)
	for _, e := range edges {
		minY = math.Min(minY, e.y0)
		maxY = math.Max(maxY, e.y1)
	}
	y0 := max(0, int(math.Floor(minY)))
	y1 := min(h, int(math.Ceil(maxY)))

	cov := make([]float64, w)
	var xs []crossing
	for y := y0; y < y1; y++ {
		clear(cov)
		for s := 0; s < subsamples; s++ {
			sy := float64(y) + (float64(s)+0.5)/subsamples
			xs = xs[:0]
			for _, e := range edges {
				if sy < e.y0 || sy >= e.y1 {
					continue
				}
				t := (sy - e.y0) / (e.y1 - e.y0)
				xs = append(xs, crossing{x: e.x0 + t*(e.x1-e.x0), dir: e.dir})
			}
			sort.Slice(xs, func(i, j int) bool { return xs[i].x < xs[j].x })
			accumulate(cov, xs, rule)
		}
		row := mask.Pix[y*mask.Stride : y*mask.Stride+w]
		for x, c := range cov {
			row[x] = uint8(math.Round(math.Min(c, 1) * 255))
		}
	}
	return mask
}

func buildEdges(polys [][]fx.Point) []edge {
	var edges []edge
	for _, poly := range polys {
		n := len(poly)
		if n < 2 {
			continue
		}
		for i := 0; i < n; i++ {
			a, b := poly[i], poly[(i+1)%n]
			if a.Y == b.Y {
				continue
			}
			if a.Y < b.Y {
				edges = append(edges, edge{a.X, a.Y, b.X, b.Y, 1})
			} else {
				edges = append(edges, edge{b.X, b.Y, a.X, a.Y, -1})
			}
		}
	}
	return edges
}

// accumulate adds one scanline's inside spans to cov.
func accumulate(cov []float64, xs []crossing, rule Rule) {
	winding := 0
	for i := 0; i+1 < len(xs); i++ {
		winding += xs[i].dir
		inside := winding != 0
		if rule == EvenOdd {
			inside = winding%2 != 0
		}
		if inside {
			addSpan(cov, xs[i].x, xs[i+1].x)
		}
	}
}

func addSpan(cov []float64, a, b float64) {
	w := float64(len(cov))
	a, b = math.Max(a, 0), math.Min(b, w)
	if b <= a {
		return
	}
	const weight = 1.0 / subsamples
	first, last := int(a), int(math.Ceil(b))-1
	for x := first; x <= last; x++ {
		lo := math.Max(a, float64(x))
		hi := math.Min(b, float64(x+1))
		cov[x] += (hi - lo) * weight
	}
}
