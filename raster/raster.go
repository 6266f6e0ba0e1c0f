package raster

import (
	"image"
	"image/png"
	"io"
	"math"

	xdraw "golang.org/x/image/draw"
	"golang.org/x/image/vector"

	"github.com/gogpu/fx"
	"github.com/gogpu/fx/internal/blend"
	"github.com/gogpu/fx/internal/filter"
	"github.com/gogpu/fx/internal/scanline"
	"github.com/gogpu/fx/internal/stroke"
)

func init() {
	fx.Register("raster", func(width, height int) fx.Backend {
		return New(width, height)
	})
}

// flattenTolerance is the maximum chord error, in pixels, when curves are
// rasterized.
const flattenTolerance = 0.25

// gstate is the part of the graphics state saved by SaveState.
type gstate struct {
	alpha  float64
	blend  fx.BlendMode
	shadow *fx.ShadowParams
	clip   *image.Alpha // nil means unclipped
}

// layer is an open transparency layer.
type layer struct {
	buf   *image.RGBA
	saved gstate
	depth int // state stack depth at begin
}

// Backend is a software fx.Backend over an *image.RGBA.
// It is not safe for concurrent use.
type Backend struct {
	canvas   *image.RGBA
	state    gstate
	stack    []gstate
	layers   []*layer
	clipPath *fx.Path
}

var _ fx.Backend = (*Backend)(nil)

// New creates a backend with a transparent canvas of the given size.
func New(width, height int) *Backend {
	return NewFromImage(image.NewRGBA(image.Rect(0, 0, width, height)))
}

// NewFromImage creates a backend that draws onto img. The canvas origin
// must be (0, 0).
func NewFromImage(img *image.RGBA) *Backend {
	return &Backend{
		canvas:   img,
		state:    gstate{alpha: 1},
		clipPath: fx.NewPath(),
	}
}

// Image returns the canvas.
func (b *Backend) Image() *image.RGBA {
	return b.canvas
}

// EncodePNG writes the canvas as PNG.
func (b *Backend) EncodePNG(w io.Writer) error {
	return png.Encode(w, b.canvas)
}

// Bounds implements fx.Backend.
func (b *Backend) Bounds() fx.Rect {
	r := b.canvas.Bounds()
	return fx.RectXYWH(0, 0, float64(r.Dx()), float64(r.Dy()))
}

// target is the buffer drawing currently lands in.
func (b *Backend) target() *image.RGBA {
	if n := len(b.layers); n > 0 {
		return b.layers[n-1].buf
	}
	return b.canvas
}

// --------------------------------------------------------------------------
// Graphics state
// --------------------------------------------------------------------------

// SaveState implements fx.Backend.
func (b *Backend) SaveState() {
	b.stack = append(b.stack, b.state)
}

// RestoreState implements fx.Backend. A restore that would cross the
// start of the innermost open layer is ignored.
func (b *Backend) RestoreState() {
	floor := 0
	if n := len(b.layers); n > 0 {
		floor = b.layers[n-1].depth
	}
	if len(b.stack) <= floor {
		fx.Logger().Warn("raster: RestoreState without SaveState")
		return
	}
	b.state = b.stack[len(b.stack)-1]
	b.stack = b.stack[:len(b.stack)-1]
}

// SetAlpha implements fx.Backend.
func (b *Backend) SetAlpha(alpha float64) {
	b.state.alpha = math.Max(0, math.Min(1, alpha))
}

// SetBlendMode implements fx.Backend.
func (b *Backend) SetBlendMode(mode fx.BlendMode) {
	b.state.blend = mode
}

// SetShadow implements fx.Backend.
func (b *Backend) SetShadow(shadow fx.ShadowParams) {
	b.state.shadow = &shadow
}

// BeginTransparencyLayer implements fx.Backend. The current graphics
// state, clip included, is captured for the composite at
// EndTransparencyLayer and reset inside the layer. The clip is applied
// once, when the layer is composited.
func (b *Backend) BeginTransparencyLayer() {
	b.layers = append(b.layers, &layer{
		buf:   image.NewRGBA(b.canvas.Bounds()),
		saved: b.state,
		depth: len(b.stack),
	})
	b.state = gstate{alpha: 1}
	fx.Logger().Debug("raster: begin layer", "depth", len(b.layers))
}

// EndTransparencyLayer implements fx.Backend. The layer is composited onto
// its parent with the state captured at begin, which is also restored.
func (b *Backend) EndTransparencyLayer() {
	n := len(b.layers)
	if n == 0 {
		fx.Logger().Warn("raster: EndTransparencyLayer without BeginTransparencyLayer")
		return
	}
	l := b.layers[n-1]
	b.layers = b.layers[:n-1]
	if len(b.stack) > l.depth {
		fx.Logger().Warn("raster: layer ended with unrestored state", "saves", len(b.stack)-l.depth)
		b.stack = b.stack[:l.depth]
	}
	b.state = l.saved
	b.paint(l.buf, l.buf.Bounds())
}

// --------------------------------------------------------------------------
// Clipping
// --------------------------------------------------------------------------

// BeginPath implements fx.Backend.
func (b *Backend) BeginPath() {
	b.clipPath = fx.NewPath()
}

// AddRect implements fx.Backend.
func (b *Backend) AddRect(r fx.Rect) {
	b.clipPath.Rectangle(r.Min.X, r.Min.Y, r.Width(), r.Height())
}

// AddPath implements fx.Backend.
func (b *Backend) AddPath(p *fx.Path) {
	b.clipPath.Append(p)
}

// Clip implements fx.Backend.
func (b *Backend) Clip() {
	b.clip(fx.FillNonZero)
}

// EOClip implements fx.Backend.
func (b *Backend) EOClip() {
	b.clip(fx.FillEvenOdd)
}

// clip intersects the clip with the current path, which it consumes.
func (b *Backend) clip(rule fx.FillRule) {
	cov := b.coverage(b.clipPath.Polygons(flattenTolerance), rule)
	b.clipPath = fx.NewPath()
	if b.state.clip == nil {
		b.state.clip = cov
		return
	}
	for i, a := range b.state.clip.Pix {
		cov.Pix[i] = uint8((uint32(cov.Pix[i])*uint32(a) + 127) / 255)
	}
	b.state.clip = cov
}

// --------------------------------------------------------------------------
// Drawing
// --------------------------------------------------------------------------

// FillPath implements fx.Backend.
func (b *Backend) FillPath(p *fx.Path, c fx.Color, rule fx.FillRule) {
	b.paintCoverage(b.coverage(p.Polygons(flattenTolerance), rule), c)
}

// StrokePath implements fx.Backend.
func (b *Backend) StrokePath(p *fx.Path, c fx.Color, width float64) {
	polys := stroke.Expand(p.Flatten(flattenTolerance), width)
	b.paintCoverage(b.coverage(polys, fx.FillNonZero), c)
}

// DrawImage implements fx.Backend.
func (b *Backend) DrawImage(img image.Image, m fx.Matrix) {
	src := image.NewRGBA(b.canvas.Bounds())
	xdraw.BiLinear.Transform(src, m.Aff3(), img, img.Bounds(), xdraw.Over, nil)
	b.paint(src, src.Bounds())
}

// coverage rasterizes polygons into an anti-aliased mask. Nonzero fills
// use x/image/vector; even-odd fills use the scanline rasterizer.
func (b *Backend) coverage(polys [][]fx.Point, rule fx.FillRule) *image.Alpha {
	r := b.canvas.Bounds()
	if rule == fx.FillEvenOdd {
		return scanline.Rasterize(polys, r.Dx(), r.Dy(), scanline.EvenOdd)
	}

	mask := image.NewAlpha(r)
	z := vector.NewRasterizer(r.Dx(), r.Dy())
	for _, poly := range polys {
		z.MoveTo(float32(poly[0].X), float32(poly[0].Y))
		for _, p := range poly[1:] {
			z.LineTo(float32(p.X), float32(p.Y))
		}
		z.ClosePath()
	}
	z.Draw(mask, r, image.Opaque, image.Point{})
	return mask
}

func (b *Backend) paintCoverage(cov *image.Alpha, c fx.Color) {
	src := image.NewRGBA(cov.Bounds())
	xdraw.DrawMask(src, src.Bounds(), image.NewUniform(c.NRGBA()), image.Point{}, cov, image.Point{}, xdraw.Src)
	b.paint(src, opaqueBounds(cov))
}

// paint composites src onto the current target under the graphics state:
// the shadow first, then src itself. r bounds the nonzero pixels of src.
func (b *Backend) paint(src *image.RGBA, r image.Rectangle) {
	st := b.state
	dst := b.target()
	if st.shadow != nil && st.shadow.Color.A > 0 {
		b.composite(dst, filter.DropShadow(src, *st.shadow), dst.Bounds(), st)
	}
	b.composite(dst, src, r, st)
}

func (b *Backend) composite(dst, src *image.RGBA, r image.Rectangle, st gstate) {
	r = r.Intersect(dst.Bounds())
	for y := r.Min.Y; y < r.Max.Y; y++ {
		for x := r.Min.X; x < r.Max.X; x++ {
			i := y*src.Stride + x*4
			if src.Pix[i+3] == 0 {
				continue
			}
			k := 1.0
			if st.clip != nil {
				a := st.clip.Pix[y*st.clip.Stride+x]
				if a == 0 {
					continue
				}
				k = float64(a) / 255
			}
			s := pixelAt(src.Pix[i:i+4]).Scale(st.alpha)
			j := y*dst.Stride + x*4
			d := pixelAt(dst.Pix[j : j+4])
			out := d.Lerp(blend.Composite(st.blend, s, d), k)
			setPixel(dst.Pix[j:j+4], out)
		}
	}
}

func pixelAt(p []uint8) blend.Pixel {
	return blend.Pixel{
		R: float64(p[0]) / 255,
		G: float64(p[1]) / 255,
		B: float64(p[2]) / 255,
		A: float64(p[3]) / 255,
	}
}

func setPixel(p []uint8, c blend.Pixel) {
	p[0] = toByte(c.R)
	p[1] = toByte(c.G)
	p[2] = toByte(c.B)
	p[3] = toByte(c.A)
}

func toByte(v float64) uint8 {
	return uint8(math.Round(math.Max(0, math.Min(1, v)) * 255))
}

// opaqueBounds returns the smallest rectangle holding every nonzero
// pixel of m.
func opaqueBounds(m *image.Alpha) image.Rectangle {
	b := m.Bounds()
	minX, minY, maxX, maxY := b.Max.X, b.Max.Y, b.Min.X, b.Min.Y
	for y := b.Min.Y; y < b.Max.Y; y++ {
		row := m.Pix[(y-b.Min.Y)*m.Stride : (y-b.Min.Y)*m.Stride+b.Dx()]
		for x, a := range row {
			if a == 0 {
				continue
			}
			minX, maxX = min(minX, b.Min.X+x), max(maxX, b.Min.X+x+1)
			minY, maxY = min(minY, y), max(maxY, y+1)
		}
	}
	if minX >= maxX {
		return image.Rectangle{}
	}
	return image.Rect(minX, minY, maxX, maxY)
}
