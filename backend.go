package fx

import (
	"fmt"
	"image"
	"sort"
	"sync"
)

// FillRule selects which regions of a path count as inside.
type FillRule uint8

const (
	// FillNonZero treats a point as inside when the path winds around it
	// a non-zero number of times.
	FillNonZero FillRule = iota
	// FillEvenOdd treats a point as inside when a ray from it crosses the
	// path an odd number of times.
	FillEvenOdd
)

func (r FillRule) String() string {
	if r == FillEvenOdd {
		return "evenodd"
	}
	return "nonzero"
}

// ShadowParams is the backend-facing form of a Shadow.
// Offset is in backend space, where the y axis points up; see Shadow.Offset.
type ShadowParams struct {
	Color  Color
	Blur   float64
	Offset Point
}

// Backend is the immediate-mode rendering surface the core composites onto.
//
// Compositing parameters (alpha, blend mode, shadow) and the clip region are
// part of the graphics state saved by SaveState. BeginTransparencyLayer
// captures the current compositing parameters, resets them to their defaults
// inside the layer, and applies the captured values when EndTransparencyLayer
// composites the layer onto its parent. Clip operations intersect the
// current clip with the path built since BeginPath.
//
// Paths passed to a Backend are in device coordinates.
// Backends are used from a single goroutine.
type Backend interface {
	// Bounds returns the canvas extent.
	Bounds() Rect

	SaveState()
	RestoreState()

	SetAlpha(alpha float64)
	SetBlendMode(mode BlendMode)
	SetShadow(shadow ShadowParams)

	BeginTransparencyLayer()
	EndTransparencyLayer()

	BeginPath()
	AddRect(r Rect)
	AddPath(p *Path)
	Clip()
	EOClip()

	FillPath(p *Path, c Color, rule FillRule)
	StrokePath(p *Path, c Color, width float64)
	DrawImage(img image.Image, m Matrix)
}

// BackendFactory creates a backend for a canvas of the given size.
type BackendFactory func(width, height int) Backend

var (
	registryMu sync.RWMutex
	backends   = make(map[string]BackendFactory)
)

// Register makes a backend available by name, following the database/sql
// driver pattern. Backend packages call it from init:
//
//	func init() {
//	    fx.Register("raster", func(w, h int) fx.Backend { return raster.New(w, h) })
//	}
//
// Register panics if factory is nil or name is already registered.
func Register(name string, factory BackendFactory) {
	registryMu.Lock()
	defer registryMu.Unlock()

	if factory == nil {
		panic("fx: Register factory is nil")
	}
	if _, dup := backends[name]; dup {
		panic("fx: Register called twice for " + name)
	}
	backends[name] = factory
}

// NewBackend creates a registered backend by name.
func NewBackend(name string, width, height int) (Backend, error) {
	registryMu.RLock()
	factory, ok := backends[name]
	registryMu.RUnlock()

	if !ok {
		return nil, fmt.Errorf("%w: %q (registered: %v)", ErrUnknownBackend, name, Backends())
	}
	return factory(width, height), nil
}

// Backends returns the sorted names of all registered backends.
func Backends() []string {
	registryMu.RLock()
	defer registryMu.RUnlock()

	names := make([]string, 0, len(backends))
	for name := range backends {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// SavedState runs fn between SaveState and RestoreState. The restore runs
// on every exit path, including a panic in fn, and fn's error is returned
// unchanged.
func SavedState(b Backend, fn func() error) error {
	b.SaveState()
	defer b.RestoreState()
	return fn()
}

// TransparencyLayer runs fn inside a transparency layer so everything fn
// draws is composited onto the parent as one unit. The layer is closed on
// every exit path.
func TransparencyLayer(b Backend, fn func() error) error {
	b.BeginTransparencyLayer()
	defer b.EndTransparencyLayer()
	return fn()
}
