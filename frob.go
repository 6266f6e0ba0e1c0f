package fx

// Grob is a drawable graphics object. Shapes, text, images, and Frobs are
// all Grobs; a Grob draws itself onto a backend under whatever compositing
// and clip state is active.
type Grob interface {
	Draw(b Backend) error
}

// GrobFunc adapts an ordinary function to the Grob interface.
type GrobFunc func(b Backend) error

// Draw calls f(b).
func (f GrobFunc) Draw(b Backend) error { return f(b) }

// Frob is a formatting object: a reversible change to the compositing or
// clip state. A Frob can be applied as a one-shot change with its own Set
// method, or act as a container whose contents are drawn under the change
// when the Frob itself is drawn.
type Frob interface {
	Grob

	// Append adds g to the Frob's contents. Order is preserved.
	Append(g Grob)

	// Contents returns the appended grobs in order.
	Contents() []Grob

	// Applied runs fn with the Frob's change in effect and rolls the
	// change back on every exit path.
	Applied(b Backend, fn func() error) error
}

// contents is the container half shared by Effect and Mask.
type contents struct {
	grobs []Grob
}

func (c *contents) Append(g Grob) {
	c.grobs = append(c.grobs, g)
}

func (c *contents) Contents() []Grob {
	return c.grobs
}

// drawFrob draws f's contents inside f's applied scope. The first failing
// grob aborts the rest; the scope still closes.
func drawFrob(f Frob, b Backend) error {
	return f.Applied(b, func() error {
		for _, g := range f.Contents() {
			if err := g.Draw(b); err != nil {
				return err
			}
		}
		return nil
	})
}
