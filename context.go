package fx

import (
	"image"
	"math"

	"golang.org/x/image/font/sfnt"
)

// Context is a deferred drawing surface.
//
// It keeps a transform stack, paint state, exactly one current Effect, and
// a canvas of grobs. Drawing methods bake geometry against the current
// transform and plot grobs into the innermost open container (a Mask
// scope) or onto the canvas. Nothing reaches the backend until Flush.
type Context struct {
	width   int
	height  int
	backend Backend

	// backendErr is the registry error from WithBackendName, reported by Flush.
	backendErr error

	// Transform and state stack
	matrix Matrix
	stack  []Matrix

	// Paint state
	fill        *Color
	stroke      *Color
	strokeWidth float64
	font        *sfnt.Font
	fontSize    float64

	effect *Effect
	styles Styles

	canvas     []Grob
	containers []Frob
}

// NewContext creates a new drawing context with the given dimensions.
// Optional ContextOption arguments select the backend, style sheet, and font:
//
//	c := fx.NewContext(800, 600, fx.WithBackend(b))
func NewContext(width, height int, opts ...ContextOption) *Context {
	options := defaultOptions()
	for _, opt := range opts {
		opt(&options)
	}

	black := Black
	c := &Context{
		width:       width,
		height:      height,
		backend:     options.backend,
		matrix:      Identity(),
		stack:       make([]Matrix, 0, 8),
		fill:        &black,
		strokeWidth: 1,
		font:        options.font,
		fontSize:    options.fontSize,
		effect:      &Effect{},
		styles:      options.styles,
	}
	if c.backend == nil && options.backendName != "" {
		c.backend, c.backendErr = NewBackend(options.backendName, width, height)
	}
	return c
}

// Width returns the width of the context.
func (c *Context) Width() int { return c.width }

// Height returns the height of the context.
func (c *Context) Height() int { return c.height }

// Backend returns the backend Flush draws onto, or nil.
func (c *Context) Backend() Backend { return c.backend }

// Scope is a reversible change to a Context, bracketed by With.
type Scope interface {
	Enter(c *Context)
	Exit(c *Context)
}

// stateScope is returned by methods that change the context immediately.
// Entering it is a no-op; exiting restores the prior state once.
type stateScope struct {
	restore func(*Context)
}

func (s *stateScope) Enter(*Context) {}

func (s *stateScope) Exit(c *Context) {
	if s.restore != nil {
		s.restore(c)
		s.restore = nil
	}
}

type scopeList []Scope

// Scopes combines scopes into one that enters them in order and exits them
// in reverse order.
func Scopes(s ...Scope) Scope {
	return scopeList(s)
}

func (l scopeList) Enter(c *Context) {
	for _, s := range l {
		s.Enter(c)
	}
}

func (l scopeList) Exit(c *Context) {
	for i := len(l) - 1; i >= 0; i-- {
		l[i].Exit(c)
	}
}

// With enters s, runs fn, and exits s on every exit path, including a
// panic in fn. fn's error is returned unchanged.
func (c *Context) With(s Scope, fn func() error) error {
	s.Enter(c)
	defer s.Exit(c)
	return fn()
}

// Transform returns the current transformation matrix.
func (c *Context) Transform() Matrix {
	return c.matrix
}

// Push saves the current transform.
func (c *Context) Push() {
	c.stack = append(c.stack, c.matrix)
}

// Pop restores the transform saved by the matching Push.
func (c *Context) Pop() {
	if len(c.stack) == 0 {
		Logger().Warn("fx: pop on empty transform stack")
		return
	}
	c.matrix = c.stack[len(c.stack)-1]
	c.stack = c.stack[:len(c.stack)-1]
}

func (c *Context) transform(m Matrix) Scope {
	prev := c.matrix
	c.matrix = c.matrix.Multiply(m)
	return &stateScope{restore: func(c *Context) { c.matrix = prev }}
}

// Translate moves the origin by (x, y).
func (c *Context) Translate(x, y float64) Scope {
	return c.transform(Translate(x, y))
}

// Rotate rotates by angle degrees.
func (c *Context) Rotate(angle float64) Scope {
	return c.transform(Rotate(angle * math.Pi / 180))
}

// Scale scales by (x, y).
func (c *Context) Scale(x, y float64) Scope {
	return c.transform(Scale(x, y))
}

// Skew shears by x and y degrees.
func (c *Context) Skew(x, y float64) Scope {
	return c.transform(Shear(math.Tan(x*math.Pi/180), math.Tan(y*math.Pi/180)))
}

// Reset replaces the transform with the identity.
func (c *Context) Reset() Scope {
	prev := c.matrix
	c.matrix = Identity()
	return &stateScope{restore: func(c *Context) { c.matrix = prev }}
}

func (c *Context) paint(set func(*Context)) Scope {
	fill, stroke, width := c.fill, c.stroke, c.strokeWidth
	set(c)
	return &stateScope{restore: func(c *Context) {
		c.fill, c.stroke, c.strokeWidth = fill, stroke, width
	}}
}

// Fill sets the fill color from anything ParseColor accepts.
func (c *Context) Fill(spec ...any) (Scope, error) {
	col, err := ParseColor(spec...)
	if err != nil {
		return nil, err
	}
	return c.paint(func(c *Context) { c.fill = &col }), nil
}

// NoFill disables filling.
func (c *Context) NoFill() Scope {
	return c.paint(func(c *Context) { c.fill = nil })
}

// Stroke sets the stroke color from anything ParseColor accepts.
func (c *Context) Stroke(spec ...any) (Scope, error) {
	col, err := ParseColor(spec...)
	if err != nil {
		return nil, err
	}
	return c.paint(func(c *Context) { c.stroke = &col }), nil
}

// NoStroke disables stroking.
func (c *Context) NoStroke() Scope {
	return c.paint(func(c *Context) { c.stroke = nil })
}

// StrokeWidth sets the line width in user units.
func (c *Context) StrokeWidth(w float64) (Scope, error) {
	if w < 0 || math.IsNaN(w) {
		return nil, &ValueError{Attr: "stroke width", Value: w, Reason: "width must be >= 0"}
	}
	return c.paint(func(c *Context) { c.strokeWidth = w }), nil
}

// Font sets the font and size used by Text. A nil font selects the
// default face.
func (c *Context) Font(f *sfnt.Font, size float64) Scope {
	font, fontSize := c.font, c.fontSize
	c.font, c.fontSize = f, size
	return &stateScope{restore: func(c *Context) { c.font, c.fontSize = font, fontSize }}
}

// Effect returns a copy of the current effect.
func (c *Context) Effect() *Effect {
	return c.effect.Copy()
}

// applyEffect replaces the current effect with next. The returned Effect
// carries next's attributes and rolls the context back to the previous
// effect when used as a scope.
func (c *Context) applyEffect(next *Effect) *Effect {
	prev := c.effect
	c.effect = next
	ret := next.Copy()
	ret.rollback = prev
	return ret
}

// Alpha sets the opacity of subsequent drawing.
func (c *Context) Alpha(alpha float64) (*Effect, error) {
	next, err := c.effect.Derive(WithAlpha(alpha))
	if err != nil {
		return nil, err
	}
	return c.applyEffect(next), nil
}

// Blend sets the blend mode of subsequent drawing by name.
func (c *Context) Blend(name string) (*Effect, error) {
	next, err := c.effect.Derive(WithBlend(name))
	if err != nil {
		return nil, err
	}
	return c.applyEffect(next), nil
}

// Shadow sets the drop shadow of subsequent drawing from a ParseShadow
// spec.
func (c *Context) Shadow(spec ...any) (*Effect, error) {
	next, err := c.effect.Derive(WithShadowSpec(spec...))
	if err != nil {
		return nil, err
	}
	return c.applyEffect(next), nil
}

// NoShadow removes the drop shadow.
func (c *Context) NoShadow() *Effect {
	next, _ := c.effect.Derive(withoutShadow())
	return c.applyEffect(next)
}

// Style lays the named style sheet effect over the current effect.
func (c *Context) Style(name string) (*Effect, error) {
	style, err := c.styles.Lookup(name)
	if err != nil {
		return nil, err
	}
	return c.applyEffect(c.effect.Merge(style)), nil
}

// Clip returns a Mask for path under the current transform. Use it as a
// scope to clip the grobs plotted inside the block.
func (c *Context) Clip(path *Path, invert bool) *Mask {
	return NewMask(path, c.matrix, invert)
}

// Mask is Clip.
func (c *Context) Mask(path *Path, invert bool) *Mask {
	return c.Clip(path, invert)
}

// shape bakes p against the transform and current paint.
func (c *Context) shape(p *Path) *Shape {
	s := &Shape{Path: p.Transform(c.matrix)}
	if c.fill != nil {
		fill := *c.fill
		s.Fill = &fill
	}
	if c.stroke != nil && c.strokeWidth > 0 {
		stroke := *c.stroke
		s.Stroke = &stroke
		s.StrokeWidth = c.strokeWidth * strokeScale(c.matrix)
	}
	return s
}

// Rect plots a rectangle.
func (c *Context) Rect(x, y, w, h float64) *Shape {
	p := NewPath()
	p.Rectangle(x, y, w, h)
	return c.plotShape(c.shape(p))
}

// Oval plots the ellipse inscribed in the given box.
func (c *Context) Oval(x, y, w, h float64) *Shape {
	p := NewPath()
	p.Ellipse(x, y, w, h)
	return c.plotShape(c.shape(p))
}

// Line plots a stroked line segment. Lines are never filled.
func (c *Context) Line(x1, y1, x2, y2 float64) *Shape {
	p := NewPath()
	p.MoveTo(x1, y1)
	p.LineTo(x2, y2)
	s := c.shape(p)
	s.Fill = nil
	return c.plotShape(s)
}

// Path plots an arbitrary path.
func (c *Context) Path(p *Path) *Shape {
	return c.plotShape(c.shape(p))
}

// Image plots img with its top-left corner at (x, y).
func (c *Context) Image(img image.Image, x, y float64) *Image {
	g := &Image{Src: img, Transform: c.matrix.Multiply(Translate(x, y))}
	c.Plot(g)
	return g
}

// Text plots s as filled glyph outlines with the baseline starting at
// (x, y).
func (c *Context) Text(s string, x, y float64) (*Shape, error) {
	f := c.font
	if f == nil {
		var err error
		if f, err = DefaultFont(); err != nil {
			return nil, err
		}
	}
	p, err := TextPath(f, c.fontSize, s)
	if err != nil {
		return nil, err
	}
	return c.plotShape(c.shape(p.Transform(Translate(x, y)))), nil
}

func (c *Context) plotShape(s *Shape) *Shape {
	c.Plot(s)
	return s
}

// Plot adds g to the current container, or to the canvas when no
// container scope is open. When the current effect is not the default, g
// is wrapped in a copy of it so it is drawn under that effect.
func (c *Context) Plot(g Grob) {
	if !c.effect.IsDefault() {
		e := c.effect.Copy()
		e.Append(g)
		g = e
	}
	c.append(g)
}

func (c *Context) append(g Grob) {
	if n := len(c.containers); n > 0 {
		c.containers[n-1].Append(g)
		return
	}
	c.canvas = append(c.canvas, g)
}

func (c *Context) pushContainer(f Frob) {
	c.append(f)
	c.containers = append(c.containers, f)
}

func (c *Context) popContainer(f Frob) {
	n := len(c.containers)
	if n == 0 {
		Logger().Warn("fx: container scope closed twice")
		return
	}
	if c.containers[n-1] != f {
		Logger().Warn("fx: container scopes closed out of order")
	}
	c.containers = c.containers[:n-1]
}

// Canvas returns the root grobs in plot order.
func (c *Context) Canvas() []Grob {
	return c.canvas
}

// Clear drops everything plotted so far.
func (c *Context) Clear() {
	c.canvas = nil
}

// Flush draws the canvas onto the context's backend and clears it.
func (c *Context) Flush() error {
	if c.backend == nil {
		if c.backendErr != nil {
			return c.backendErr
		}
		return ErrNoBackend
	}
	return c.FlushTo(c.backend)
}

// FlushTo draws the canvas onto b in plot order and clears it. The first
// failing grob stops the flush and leaves the canvas in place.
func (c *Context) FlushTo(b Backend) error {
	if len(c.containers) > 0 {
		return ErrUnbalancedScope
	}
	for _, g := range c.canvas {
		if err := g.Draw(b); err != nil {
			return err
		}
	}
	Logger().Debug("fx: flush", "grobs", len(c.canvas))
	c.canvas = nil
	return nil
}
