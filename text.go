package fx

import (
	"sync"

	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/sfnt"
	"golang.org/x/image/math/fixed"

	"github.com/gogpu/fx/internal/cache"
)

type glyphKey struct {
	font  *sfnt.Font
	glyph sfnt.GlyphIndex
	ppem  fixed.Int26_6
}

// glyphOutlines caches glyph paths at the origin.
var glyphOutlines = cache.New[glyphKey, *Path](4096)

var (
	defaultFontOnce sync.Once
	defaultFont     *sfnt.Font
	defaultFontErr  error
)

// DefaultFont returns Go Regular, parsed once.
func DefaultFont() (*sfnt.Font, error) {
	defaultFontOnce.Do(func() {
		defaultFont, defaultFontErr = sfnt.Parse(goregular.TTF)
	})
	return defaultFont, defaultFontErr
}

// TextPath returns the glyph outlines of s set on a single line in f at
// size pixels per em. The baseline starts at the origin and y grows down.
// Kerning is applied when the font has it; shaping is not.
func TextPath(f *sfnt.Font, size float64, s string) (*Path, error) {
	var (
		buf     sfnt.Buffer
		ppem    = fixed.Int26_6(size * 64)
		path    = NewPath()
		x       float64
		prev    sfnt.GlyphIndex
		hasPrev bool
	)
	for _, r := range s {
		gi, err := f.GlyphIndex(&buf, r)
		if err != nil {
			return nil, err
		}
		if hasPrev {
			// Fonts without kerning data report an error; treat as zero.
			if k, err := f.Kern(&buf, prev, gi, ppem, font.HintingNone); err == nil {
				x += fix(k)
			}
		}

		glyph, err := glyphOutlines.GetOrCreate(glyphKey{f, gi, ppem}, func() (*Path, error) {
			return glyphPath(f, &buf, gi, ppem)
		})
		if err != nil {
			return nil, err
		}
		path.Append(glyph.Transform(Translate(x, 0)))

		adv, err := f.GlyphAdvance(&buf, gi, ppem, font.HintingNone)
		if err != nil {
			return nil, err
		}
		x += fix(adv)
		prev, hasPrev = gi, true
	}
	return path, nil
}

func glyphPath(f *sfnt.Font, buf *sfnt.Buffer, gi sfnt.GlyphIndex, ppem fixed.Int26_6) (*Path, error) {
	segs, err := f.LoadGlyph(buf, gi, ppem, nil)
	if err != nil {
		return nil, err
	}
	p := NewPath()
	for _, seg := range segs {
		a := seg.Args
		switch seg.Op {
		case sfnt.SegmentOpMoveTo:
			p.MoveTo(fix(a[0].X), fix(a[0].Y))
		case sfnt.SegmentOpLineTo:
			p.LineTo(fix(a[0].X), fix(a[0].Y))
		case sfnt.SegmentOpQuadTo:
			p.QuadTo(fix(a[0].X), fix(a[0].Y), fix(a[1].X), fix(a[1].Y))
		case sfnt.SegmentOpCubeTo:
			p.CubicTo(fix(a[0].X), fix(a[0].Y), fix(a[1].X), fix(a[1].Y), fix(a[2].X), fix(a[2].Y))
		}
	}
	return p, nil
}

func fix(v fixed.Int26_6) float64 {
	return float64(v) / 64
}
