package fx

import "math"

// PathElement represents a single element in a path.
type PathElement interface {
	isPathElement()
}

// MoveTo moves to a point without drawing.
type MoveTo struct {
	Point Point
}

func (MoveTo) isPathElement() {}

// LineTo draws a line to a point.
type LineTo struct {
	Point Point
}

func (LineTo) isPathElement() {}

// QuadTo draws a quadratic Bezier curve.
type QuadTo struct {
	Control Point
	Point   Point
}

func (QuadTo) isPathElement() {}

// CubicTo draws a cubic Bezier curve.
type CubicTo struct {
	Control1 Point
	Control2 Point
	Point    Point
}

func (CubicTo) isPathElement() {}

// Close closes the current subpath.
type Close struct{}

func (Close) isPathElement() {}

// Path represents a vector path.
//
// Paths handed to the core are plain geometry: they carry no transform of
// their own. Grobs and masks bake the ambient transform into a copy with
// Transform when they are constructed.
type Path struct {
	elements []PathElement
	start    Point
	current  Point
}

// NewPath creates a new empty path.
func NewPath() *Path {
	return &Path{
		elements: make([]PathElement, 0, 16),
	}
}

// MoveTo moves to a point without drawing.
func (p *Path) MoveTo(x, y float64) {
	pt := Pt(x, y)
	p.elements = append(p.elements, MoveTo{Point: pt})
	p.start = pt
	p.current = pt
}

// LineTo draws a line to a point.
func (p *Path) LineTo(x, y float64) {
	pt := Pt(x, y)
	p.elements = append(p.elements, LineTo{Point: pt})
	p.current = pt
}

// QuadTo draws a quadratic Bezier curve.
func (p *Path) QuadTo(cx, cy, x, y float64) {
	pt := Pt(x, y)
	p.elements = append(p.elements, QuadTo{Control: Pt(cx, cy), Point: pt})
	p.current = pt
}

// CubicTo draws a cubic Bezier curve.
func (p *Path) CubicTo(c1x, c1y, c2x, c2y, x, y float64) {
	pt := Pt(x, y)
	p.elements = append(p.elements, CubicTo{
		Control1: Pt(c1x, c1y),
		Control2: Pt(c2x, c2y),
		Point:    pt,
	})
	p.current = pt
}

// Close closes the current subpath by drawing a line to the start point.
func (p *Path) Close() {
	p.elements = append(p.elements, Close{})
	p.current = p.start
}

// Clear removes all elements from the path.
func (p *Path) Clear() {
	p.elements = p.elements[:0]
	p.start = Point{}
	p.current = Point{}
}

// Elements returns the path elements.
func (p *Path) Elements() []PathElement {
	return p.elements
}

// Len returns the number of elements in the path.
func (p *Path) Len() int {
	return len(p.elements)
}

// Append adds every element of other to p.
func (p *Path) Append(other *Path) {
	for _, elem := range other.elements {
		p.add(elem)
	}
}

func (p *Path) add(elem PathElement) {
	switch e := elem.(type) {
	case MoveTo:
		p.MoveTo(e.Point.X, e.Point.Y)
	case LineTo:
		p.LineTo(e.Point.X, e.Point.Y)
	case QuadTo:
		p.QuadTo(e.Control.X, e.Control.Y, e.Point.X, e.Point.Y)
	case CubicTo:
		p.CubicTo(e.Control1.X, e.Control1.Y, e.Control2.X, e.Control2.Y, e.Point.X, e.Point.Y)
	case Close:
		p.Close()
	}
}

// Transform returns a copy of the path with m applied to every point.
func (p *Path) Transform(m Matrix) *Path {
	result := NewPath()
	for _, elem := range p.elements {
		switch e := elem.(type) {
		case MoveTo:
			pt := m.TransformPoint(e.Point)
			result.MoveTo(pt.X, pt.Y)
		case LineTo:
			pt := m.TransformPoint(e.Point)
			result.LineTo(pt.X, pt.Y)
		case QuadTo:
			ctrl := m.TransformPoint(e.Control)
			pt := m.TransformPoint(e.Point)
			result.QuadTo(ctrl.X, ctrl.Y, pt.X, pt.Y)
		case CubicTo:
			c1 := m.TransformPoint(e.Control1)
			c2 := m.TransformPoint(e.Control2)
			pt := m.TransformPoint(e.Point)
			result.CubicTo(c1.X, c1.Y, c2.X, c2.Y, pt.X, pt.Y)
		case Close:
			result.Close()
		}
	}
	return result
}

// Clone creates a deep copy of the path.
func (p *Path) Clone() *Path {
	result := NewPath()
	result.elements = append(result.elements, p.elements...)
	result.start = p.start
	result.current = p.current
	return result
}

// Rectangle adds a closed rectangle to the path.
func (p *Path) Rectangle(x, y, w, h float64) {
	p.MoveTo(x, y)
	p.LineTo(x+w, y)
	p.LineTo(x+w, y+h)
	p.LineTo(x, y+h)
	p.Close()
}

// Ellipse adds a closed ellipse inscribed in the given box.
func (p *Path) Ellipse(x, y, w, h float64) {
	const k = 0.5522847498307936 // 4/3 * (sqrt(2) - 1)
	rx, ry := w/2, h/2
	cx, cy := x+rx, y+ry
	ox, oy := rx*k, ry*k

	p.MoveTo(cx+rx, cy)
	p.CubicTo(cx+rx, cy+oy, cx+ox, cy+ry, cx, cy+ry)
	p.CubicTo(cx-ox, cy+ry, cx-rx, cy+oy, cx-rx, cy)
	p.CubicTo(cx-rx, cy-oy, cx-ox, cy-ry, cx, cy-ry)
	p.CubicTo(cx+ox, cy-ry, cx+rx, cy-oy, cx+rx, cy)
	p.Close()
}

// Bounds returns the bounding box of all on-curve and control points.
// It is never smaller than the true bounds of the curve.
func (p *Path) Bounds() Rect {
	if len(p.elements) == 0 {
		return Rect{}
	}
	r := Rect{
		Min: Point{X: math.MaxFloat64, Y: math.MaxFloat64},
		Max: Point{X: -math.MaxFloat64, Y: -math.MaxFloat64},
	}
	grow := func(pt Point) {
		r.Min.X = math.Min(r.Min.X, pt.X)
		r.Min.Y = math.Min(r.Min.Y, pt.Y)
		r.Max.X = math.Max(r.Max.X, pt.X)
		r.Max.Y = math.Max(r.Max.Y, pt.Y)
	}
	for _, elem := range p.elements {
		switch e := elem.(type) {
		case MoveTo:
			grow(e.Point)
		case LineTo:
			grow(e.Point)
		case QuadTo:
			grow(e.Control)
			grow(e.Point)
		case CubicTo:
			grow(e.Control1)
			grow(e.Control2)
			grow(e.Point)
		}
	}
	if r.Min.X == math.MaxFloat64 {
		return Rect{}
	}
	return r
}

// Polyline is one flattened subpath.
type Polyline struct {
	Points []Point
	Closed bool
}

// Polygons flattens the path into one closed polyline per subpath.
// tolerance is the maximum distance between a curve and its chords;
// values <= 0 select 0.1.
func (p *Path) Polygons(tolerance float64) [][]Point {
	lines := p.Flatten(tolerance)
	polys := make([][]Point, len(lines))
	for i, l := range lines {
		polys[i] = l.Points
	}
	return polys
}

// Flatten converts the path into polylines, one per subpath, recording
// which subpaths were closed. See Polygons for tolerance.
func (p *Path) Flatten(tolerance float64) []Polyline {
	if tolerance <= 0 {
		tolerance = 0.1
	}
	var (
		lines   []Polyline
		poly    []Point
		current Point
	)
	flush := func(closed bool) {
		if len(poly) > 1 {
			lines = append(lines, Polyline{Points: poly, Closed: closed})
		}
		poly = nil
	}
	for _, elem := range p.elements {
		switch e := elem.(type) {
		case MoveTo:
			flush(false)
			poly = append(poly, e.Point)
			current = e.Point
		case LineTo:
			if poly == nil {
				poly = append(poly, current)
			}
			poly = append(poly, e.Point)
			current = e.Point
		case QuadTo:
			if poly == nil {
				poly = append(poly, current)
			}
			// Elevate to a cubic so both curve kinds share one flattener.
			c1 := current.Lerp(e.Control, 2.0/3)
			c2 := e.Point.Lerp(e.Control, 2.0/3)
			poly = flattenCubic(poly, current, c1, c2, e.Point, tolerance*tolerance, 0)
			current = e.Point
		case CubicTo:
			if poly == nil {
				poly = append(poly, current)
			}
			poly = flattenCubic(poly, current, e.Control1, e.Control2, e.Point, tolerance*tolerance, 0)
			current = e.Point
		case Close:
			if len(poly) > 0 {
				current = poly[0]
			}
			flush(true)
		}
	}
	flush(false)
	return lines
}

// maxFlattenDepth bounds subdivision for degenerate control polygons.
const maxFlattenDepth = 16

// flattenCubic appends the end points of chords approximating the cubic
// p0..p3 to dst, subdividing at t=0.5 until the control points lie within
// the tolerance of the chord.
func flattenCubic(dst []Point, p0, p1, p2, p3 Point, tolSq float64, depth int) []Point {
	if depth >= maxFlattenDepth || cubicFlatEnough(p0, p1, p2, p3, tolSq) {
		return append(dst, p3)
	}
	p01 := p0.Lerp(p1, 0.5)
	p12 := p1.Lerp(p2, 0.5)
	p23 := p2.Lerp(p3, 0.5)
	p012 := p01.Lerp(p12, 0.5)
	p123 := p12.Lerp(p23, 0.5)
	mid := p012.Lerp(p123, 0.5)
	dst = flattenCubic(dst, p0, p01, p012, mid, tolSq, depth+1)
	return flattenCubic(dst, mid, p123, p23, p3, tolSq, depth+1)
}

func cubicFlatEnough(p0, p1, p2, p3 Point, tolSq float64) bool {
	return segmentDistSq(p1, p0, p3) <= tolSq && segmentDistSq(p2, p0, p3) <= tolSq
}

// segmentDistSq returns the squared distance from pt to the segment a-b.
func segmentDistSq(pt, a, b Point) float64 {
	ab := b.Sub(a)
	lenSq := ab.X*ab.X + ab.Y*ab.Y
	if lenSq == 0 {
		d := pt.Sub(a)
		return d.X*d.X + d.Y*d.Y
	}
	t := ((pt.X-a.X)*ab.X + (pt.Y-a.Y)*ab.Y) / lenSq
	t = math.Max(0, math.Min(1, t))
	d := pt.Sub(a.Lerp(b, t))
	return d.X*d.X + d.Y*d.Y
}
