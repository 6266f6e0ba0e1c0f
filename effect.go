package fx

import (
	"fmt"
	"math"
	"strings"
)

// Attr names one of the compositing modifiers carried by an Effect.
type Attr uint8

const (
	AttrAlpha Attr = iota
	AttrBlend
	AttrShadow
)

// effectAttrs lists the attributes in the order they are pushed to a backend.
var effectAttrs = [...]Attr{AttrAlpha, AttrBlend, AttrShadow}

func (a Attr) String() string {
	switch a {
	case AttrAlpha:
		return "alpha"
	case AttrBlend:
		return "blend"
	case AttrShadow:
		return "shadow"
	}
	return fmt.Sprintf("Attr(%d)", uint8(a))
}

// Effect bundles optional compositing modifiers: opacity, blend mode, and a
// drop shadow.
//
// An attribute holding its default value (alpha 1, blend normal, no shadow)
// is not set: it is omitted from copies, merges, and String, and applying
// the Effect leaves it untouched on the backend.
//
// An Effect is a Frob. Used as a Scope on a Context it replaces the current
// effect for the duration of the block; drawn as a Grob it composites its
// contents through one transparency layer, or two when a shadow is set, so
// overlapping contents are shadowed as a unit.
type Effect struct {
	contents

	alpha    float64
	hasAlpha bool
	blend    BlendMode
	shadow   *Shadow

	// rollback is the context effect to restore on Exit.
	rollback *Effect
}

// EffectOption sets one attribute in NewEffect and Derive.
type EffectOption func(*Effect) error

// WithAlpha sets the opacity.
func WithAlpha(alpha float64) EffectOption {
	return func(e *Effect) error { return e.SetAlpha(alpha) }
}

// WithBlend sets the blend mode by name.
func WithBlend(name string) EffectOption {
	return func(e *Effect) error { return e.SetBlend(name) }
}

// WithBlendMode sets the blend mode.
func WithBlendMode(mode BlendMode) EffectOption {
	return func(e *Effect) error { return e.SetBlendMode(mode) }
}

// WithShadow sets the shadow; nil removes it.
func WithShadow(s *Shadow) EffectOption {
	return func(e *Effect) error {
		e.SetShadow(s)
		return nil
	}
}

// WithShadowSpec sets the shadow from a ParseShadow spec.
func WithShadowSpec(args ...any) EffectOption {
	return func(e *Effect) error { return e.SetShadowSpec(args...) }
}

// withoutShadow removes the shadow.
func withoutShadow() EffectOption {
	return WithShadow(nil)
}

// NewEffect creates an Effect with the given attributes set. With no
// options every attribute is at its default.
func NewEffect(opts ...EffectOption) (*Effect, error) {
	return (&Effect{}).Derive(opts...)
}

// Derive returns a copy of e's set attributes with opts applied on top.
func (e *Effect) Derive(opts ...EffectOption) (*Effect, error) {
	d := e.Copy()
	for _, opt := range opts {
		if err := opt(d); err != nil {
			return nil, err
		}
	}
	return d, nil
}

// Copy returns a new Effect with the same set attributes. The shadow is
// copied; contents and scope state are not.
func (e *Effect) Copy() *Effect {
	d := &Effect{
		alpha:    e.alpha,
		hasAlpha: e.hasAlpha,
		blend:    e.blend,
	}
	if e.shadow != nil {
		d.shadow = e.shadow.Copy()
	}
	return d
}

// Merge returns a copy of e with every attribute set on other laid on top.
func (e *Effect) Merge(other *Effect) *Effect {
	d := e.Copy()
	if other.hasAlpha {
		d.alpha, d.hasAlpha = other.alpha, true
	}
	if other.blend != BlendNormal {
		d.blend = other.blend
	}
	if other.shadow != nil {
		d.shadow = other.shadow.Copy()
	}
	return d
}

// Alpha returns the opacity, 1 when unset.
func (e *Effect) Alpha() float64 {
	if !e.hasAlpha {
		return 1
	}
	return e.alpha
}

// SetAlpha sets the opacity. Values outside [0, 1] and NaN are rejected;
// 1 unsets the attribute.
func (e *Effect) SetAlpha(alpha float64) error {
	if math.IsNaN(alpha) || alpha < 0 || alpha > 1 {
		return &ValueError{Attr: "alpha", Value: alpha, Reason: "alpha must be a number between 0 and 1.0"}
	}
	e.alpha, e.hasAlpha = alpha, alpha != 1
	return nil
}

// BlendMode returns the blend mode, BlendNormal when unset.
func (e *Effect) BlendMode() BlendMode {
	return e.blend
}

// SetBlend sets the blend mode by name; see ParseBlendMode.
func (e *Effect) SetBlend(name string) error {
	mode, err := ParseBlendMode(name)
	if err != nil {
		return err
	}
	e.blend = mode
	return nil
}

// SetBlendMode sets the blend mode. BlendNormal unsets the attribute.
func (e *Effect) SetBlendMode(mode BlendMode) error {
	if !mode.Valid() {
		return &ValueError{Attr: "blend", Value: mode, Reason: "unknown blend mode"}
	}
	e.blend = mode
	return nil
}

// Shadow returns the shadow, or nil when unset. The returned shadow belongs
// to e; mutating it changes e.
func (e *Effect) Shadow() *Shadow {
	return e.shadow
}

// SetShadow stores a copy of s. nil unsets the attribute.
func (e *Effect) SetShadow(s *Shadow) {
	if s == nil {
		e.shadow = nil
		return
	}
	e.shadow = s.Copy()
}

// SetShadowSpec sets the shadow from a ParseShadow spec.
func (e *Effect) SetShadowSpec(args ...any) error {
	s, err := ParseShadow(args...)
	if err != nil {
		return err
	}
	e.shadow = s
	return nil
}

// Unset returns an attribute to its default.
func (e *Effect) Unset(a Attr) {
	switch a {
	case AttrAlpha:
		e.alpha, e.hasAlpha = 0, false
	case AttrBlend:
		e.blend = BlendNormal
	case AttrShadow:
		e.shadow = nil
	}
}

// IsSet reports whether a holds a non-default value.
func (e *Effect) IsSet(a Attr) bool {
	switch a {
	case AttrAlpha:
		return e.hasAlpha
	case AttrBlend:
		return e.blend != BlendNormal
	case AttrShadow:
		return e.shadow != nil
	}
	return false
}

// Attrs returns the set attributes in backend order.
func (e *Effect) Attrs() []Attr {
	var attrs []Attr
	for _, a := range effectAttrs {
		if e.IsSet(a) {
			attrs = append(attrs, a)
		}
	}
	return attrs
}

// IsDefault reports whether no attribute is set.
func (e *Effect) IsDefault() bool {
	return !e.hasAlpha && e.blend == BlendNormal && e.shadow == nil
}

// Equal reports whether e and other set the same attributes to the same
// values. Contents are not compared.
func (e *Effect) Equal(other *Effect) bool {
	return e.hasAlpha == other.hasAlpha &&
		(!e.hasAlpha || e.alpha == other.alpha) &&
		e.blend == other.blend &&
		e.shadow.Equal(other.shadow)
}

// Set pushes the requested attributes (all of them when none are named) to
// the backend, in the order alpha, blend, shadow. Unset attributes are
// skipped. It reports whether a shadow was activated, since a shadowed
// drawing needs its own transparency layer to avoid seams where
// overlapping parts are shadowed individually.
//
// Set has no automatic rollback; wrap it in SavedState or use Applied.
func (e *Effect) Set(b Backend, attrs ...Attr) bool {
	want := func(a Attr) bool {
		if len(attrs) == 0 {
			return true
		}
		for _, x := range attrs {
			if x == a {
				return true
			}
		}
		return false
	}

	shadowed := false
	if e.hasAlpha && want(AttrAlpha) {
		b.SetAlpha(e.alpha)
	}
	if e.blend != BlendNormal && want(AttrBlend) {
		b.SetBlendMode(e.blend)
	}
	if e.shadow != nil && want(AttrShadow) {
		b.SetShadow(e.shadow.Params())
		shadowed = true
	}
	return shadowed
}

// Applied runs fn with the effect composited around it. A default effect
// runs fn directly. Otherwise alpha and blend are set and a transparency
// layer is opened; when a shadow is set it is activated and a second,
// nested layer is opened. Layers close in reverse order and the backend
// state is restored on every exit path; fn's error is returned unchanged.
func (e *Effect) Applied(b Backend, fn func() error) error {
	if e.IsDefault() {
		return fn()
	}
	return SavedState(b, func() error {
		e.Set(b, AttrAlpha, AttrBlend)
		return TransparencyLayer(b, func() error {
			if !e.Set(b, AttrShadow) {
				return fn()
			}
			Logger().Debug("fx: nested shadow layer", "effect", e.String())
			return TransparencyLayer(b, fn)
		})
	})
}

// Draw draws the contents under the effect.
func (e *Effect) Draw(b Backend) error {
	return drawFrob(e, b)
}

// Enter makes the context's current effect a merge of itself and e,
// remembering the previous value unless e already carries one (as effects
// returned by Context.Alpha and friends do).
func (e *Effect) Enter(c *Context) {
	if e.rollback == nil {
		e.rollback = c.effect
	}
	c.effect = c.effect.Merge(e)
}

// Exit restores the effect that was current before Enter and forgets it.
func (e *Effect) Exit(c *Context) {
	if e.rollback != nil {
		c.effect = e.rollback
	}
	e.rollback = nil
}

func (e *Effect) String() string {
	var parts []string
	if e.hasAlpha {
		parts = append(parts, fmt.Sprintf("alpha=%g", e.alpha))
	}
	if e.blend != BlendNormal {
		parts = append(parts, "blend="+e.blend.String())
	}
	if e.shadow != nil {
		parts = append(parts, "shadow="+e.shadow.String())
	}
	return "Effect(" + strings.Join(parts, ", ") + ")"
}
