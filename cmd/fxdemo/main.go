// Command fxdemo renders a scene exercising fx effects, shadows, and masks
// to a PNG file.
package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"

	"github.com/gogpu/fx"
	"github.com/gogpu/fx/raster"
)

func main() {
	var (
		width   = flag.Int("width", 800, "image width")
		height  = flag.Int("height", 600, "image height")
		output  = flag.String("output", "fxdemo.png", "output file")
		styles  = flag.String("styles", "", "TOML style sheet")
		verbose = flag.Bool("v", false, "log backend activity")
	)
	flag.Parse()

	level := slog.LevelInfo
	if *verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	fx.SetLogger(logger)

	if err := run(*width, *height, *output, *styles); err != nil {
		logger.Error("fxdemo failed", "err", err)
		os.Exit(1)
	}
	logger.Info("demo saved", "output", *output, "width", *width, "height", *height)
}

func run(width, height int, output, stylePath string) error {
	opts := []fx.ContextOption{}
	sheet := fx.Styles{}
	if stylePath != "" {
		f, err := os.Open(stylePath)
		if err != nil {
			return err
		}
		sheet, err = fx.LoadStyles(f)
		f.Close()
		if err != nil {
			return err
		}
	}
	opts = append(opts, fx.WithStyles(sheet))

	b := raster.New(width, height)
	c := fx.NewContext(width, height, append(opts, fx.WithBackend(b))...)

	if err := drawScene(c, sheet); err != nil {
		return err
	}
	if err := c.Flush(); err != nil {
		return err
	}

	f, err := os.Create(output)
	if err != nil {
		return err
	}
	if err := b.EncodePNG(f); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

func drawScene(c *fx.Context, sheet fx.Styles) error {
	w, h := float64(c.Width()), float64(c.Height())

	bg, err := c.Fill("whitesmoke")
	if err != nil {
		return err
	}
	c.Rect(0, 0, w, h)
	bg.Exit(c)

	steps := []func(*fx.Context) error{
		drawShadowed,
		drawBlends,
		drawMasks,
		drawCaption,
	}
	for _, step := range steps {
		if err := step(c); err != nil {
			return err
		}
	}

	for i, name := range sheet.Names() {
		style, err := c.Style(name)
		if err != nil {
			return err
		}
		err = c.With(style, func() error {
			c.Oval(40+float64(i)*70, h-120, 60, 60)
			return nil
		})
		if err != nil {
			return err
		}
	}
	return nil
}

// drawShadowed draws overlapping shapes that share one shadow.
func drawShadowed(c *fx.Context) error {
	e, err := fx.NewEffect(fx.WithShadowSpec(fx.RGBA(0, 0, 0, 0.5), 8, []float64{6, 6}))
	if err != nil {
		return err
	}
	return c.With(e, func() error {
		for i, name := range []string{"tomato", "gold", "steelblue"} {
			fill, err := c.Fill(name)
			if err != nil {
				return err
			}
			c.Oval(60+float64(i)*60, 60, 120, 120)
			fill.Exit(c)
		}
		return nil
	})
}

// drawBlends shows a few blend modes over a shared backdrop.
func drawBlends(c *fx.Context) error {
	t := c.Translate(380, 60)
	defer t.Exit(c)

	for i, mode := range []string{"multiply", "screen", "difference", "luminosity"} {
		x := float64(i) * 90
		fill, err := c.Fill("darkcyan")
		if err != nil {
			return err
		}
		c.Rect(x, 0, 80, 80)
		fill.Exit(c)

		blend, err := c.Blend(mode)
		if err != nil {
			return err
		}
		err = c.With(blend, func() error {
			fill, err := c.Fill("orange")
			if err != nil {
				return err
			}
			defer fill.Exit(c)
			c.Oval(x+20, 20, 80, 80)
			return nil
		})
		if err != nil {
			return err
		}
	}
	return nil
}

// drawMasks clips rotated stripes to a circle and to its complement.
func drawMasks(c *fx.Context) error {
	circle := fx.NewPath()
	circle.Ellipse(0, 0, 160, 160)

	for i, invert := range []bool{false, true} {
		err := c.With(c.Translate(60+float64(i)*260, 260), func() error {
			m := c.Clip(circle, invert)
			return c.With(m, func() error {
				return c.With(c.Rotate(30), func() error {
					for s := -4; s < 8; s++ {
						fill, err := c.Fill(fx.HSB(float64(s+4)/12, 0.7, 0.9, 1))
						if err != nil {
							return err
						}
						c.Rect(float64(s)*20, -60, 10, 300)
						fill.Exit(c)
					}
					return nil
				})
			})
		})
		if err != nil {
			return err
		}
	}
	return nil
}

func drawCaption(c *fx.Context) error {
	e, err := c.Alpha(0.8)
	if err != nil {
		return err
	}
	return c.With(e, func() error {
		_, err := c.Text(fmt.Sprintf("fx %s", fx.Version), 560, 380)
		return err
	})
}
