package fx

import (
	"errors"
	"image"
	"math"
)

// Shape is a path grob painted with an optional fill and stroke.
// Its path is in device coordinates.
type Shape struct {
	Path        *Path
	Rule        FillRule
	Fill        *Color
	Stroke      *Color
	StrokeWidth float64
}

// Draw fills, then strokes, the shape. Missing paint is skipped.
func (s *Shape) Draw(b Backend) error {
	if s.Path == nil || s.Path.Len() == 0 {
		return nil
	}
	if s.Fill != nil {
		b.FillPath(s.Path, *s.Fill, s.Rule)
	}
	if s.Stroke != nil && s.StrokeWidth > 0 {
		b.StrokePath(s.Path, *s.Stroke, s.StrokeWidth)
	}
	return nil
}

var errNoImageSource = errors.New("fx: image grob has no source")

// Image is a raster grob drawn through Transform, which maps image pixel
// coordinates to device coordinates.
type Image struct {
	Src       image.Image
	Transform Matrix
}

// Draw draws the image.
func (i *Image) Draw(b Backend) error {
	if i.Src == nil {
		return errNoImageSource
	}
	b.DrawImage(i.Src, i.Transform)
	return nil
}

// strokeScale is the factor a transform applies to line widths.
func strokeScale(m Matrix) float64 {
	return math.Sqrt(math.Abs(m.A*m.E - m.B*m.D))
}
