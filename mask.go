package fx

// Mask clips drawing to a path, or with invert to everything outside it.
//
// The path is resolved against a transform when the Mask is built, so a
// mask authored inside a rotated or scaled block keeps its device-space
// shape when it is applied after that block has ended.
//
// Used as a Scope on a Context, a Mask collects the grobs plotted inside the
// block into a fresh copy of itself, which is drawn under the clip at flush
// time. The same Mask can be entered again; each block gets its own copy.
type Mask struct {
	contents

	path    *Path // device space
	evenOdd bool

	// blocks holds the containers of the scopes currently open on m.
	blocks []*Mask
}

// ClippingPath is the older name for Mask.
type ClippingPath = Mask

// NewMask creates a mask from path, baking m into a private copy of it.
// With invert the mask keeps everything except the path's interior.
func NewMask(path *Path, m Matrix, invert bool) *Mask {
	return &Mask{
		path:    path.Transform(m),
		evenOdd: invert,
	}
}

// NewClippingPath is NewMask under its older name.
func NewClippingPath(path *Path, m Matrix, invert bool) *ClippingPath {
	return NewMask(path, m, invert)
}

// Path returns a copy of the device-space clip path.
func (m *Mask) Path() *Path {
	return m.path.Clone()
}

// Inverted reports whether the mask keeps the outside of its path.
func (m *Mask) Inverted() bool {
	return m.evenOdd
}

// Set intersects the backend's clip with the mask. An inverted mask adds
// the canvas rectangle and the path to one clip path and clips with the
// even-odd rule; otherwise the path alone is clipped with the nonzero rule.
//
// Set does not save the backend state, so the clip stays in place until
// the caller restores it. Applied is the scoped form.
func (m *Mask) Set(b Backend) {
	b.BeginPath()
	if m.evenOdd {
		b.AddRect(b.Bounds())
		b.AddPath(m.path)
		b.EOClip()
		return
	}
	b.AddPath(m.path)
	b.Clip()
}

// Applied saves the backend state, sets the clip, runs fn, and restores the
// state on every exit path, so the clip never outlives fn.
func (m *Mask) Applied(b Backend, fn func() error) error {
	return SavedState(b, func() error {
		m.Set(b)
		Logger().Debug("fx: clip", "invert", m.evenOdd, "elements", m.path.Len())
		return fn()
	})
}

// Draw draws the contents inside the clip.
func (m *Mask) Draw(b Backend) error {
	return drawFrob(m, b)
}

// Enter appends a copy of the mask, without contents, to the context's
// current container and makes the copy the container for grobs plotted
// until Exit.
func (m *Mask) Enter(c *Context) {
	block := &Mask{path: m.path, evenOdd: m.evenOdd}
	m.blocks = append(m.blocks, block)
	c.pushContainer(block)
}

// Exit closes the container opened by the matching Enter.
func (m *Mask) Exit(c *Context) {
	n := len(m.blocks)
	if n == 0 {
		Logger().Warn("fx: mask scope closed without Enter")
		return
	}
	block := m.blocks[n-1]
	m.blocks = m.blocks[:n-1]
	c.popContainer(block)
}
