// Package fx provides the compositing core of a procedural 2D drawing
// toolkit: effects, drop shadows, clipping masks, and the scoped state
// helpers that tie them to a backend.
//
// # Overview
//
// Scripts draw into a Context. Drawing is deferred: shapes, text, and
// images become grobs on the context's canvas, and Flush replays the canvas
// onto a Backend. Formatting objects (Frobs) wrap grobs in a reversible
// change to the backend state:
//   - Effect: opacity, blend mode, and a drop shadow, composited through
//     transparency layers
//   - Mask (ClippingPath): a clip to a path or to its complement
//
// # Quick Start
//
//	import (
//	    "github.com/gogpu/fx"
//	    "github.com/gogpu/fx/raster"
//	)
//
//	b := raster.New(512, 512)
//	c := fx.NewContext(512, 512, fx.WithBackend(b))
//
//	e, _ := c.Shadow("black", 8, 4)
//	c.With(e, func() error {
//	    c.Rect(100, 100, 200, 120)
//	    return nil
//	})
//	c.Flush()
//	b.EncodePNG(w)
//
// # Scopes
//
// Every state change that can be undone returns a Scope. Context.With
// enters a scope, runs a function, and exits the scope on every exit path,
// so effects, clips, and transforms never leak past their block. The
// one-shot form (calling c.Alpha without With) keeps the change until it
// is replaced.
//
// # Coordinate System
//
// Authoring coordinates have the origin at the top-left with y increasing
// down. Backends receive device-space paths. Shadow offsets are handed to
// the backend with the y axis pointing up; Shadow converts on the way in
// and out.
//
// # Backends
//
// Backends register by name (see Register). The recording package captures
// backend calls as typed commands; the raster package composites onto an
// *image.RGBA.
package fx

// Version information
const (
	// Version is the current version of the library
	Version = "0.1.0"

	// VersionMajor is the major version
	VersionMajor = 0

	// VersionMinor is the minor version
	VersionMinor = 1

	// VersionPatch is the patch version
	VersionPatch = 0
)
